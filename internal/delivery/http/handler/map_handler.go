package handler

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/rovyapp/rovy-backend/internal/usecase/nearby"
	"github.com/rovyapp/rovy-backend/internal/usecase/profile"
)

type MapHandler struct {
	nearbyUseCase  *nearby.NearbyUseCase
	profileUseCase *profile.ProfileUseCase
}

func NewMapHandler(nearbyUseCase *nearby.NearbyUseCase, profileUseCase *profile.ProfileUseCase) *MapHandler {
	return &MapHandler{
		nearbyUseCase:  nearbyUseCase,
		profileUseCase: profileUseCase,
	}
}

// Nearby handles GET /map/nearby
// @Summary Proximity query across events, people, work and safety
// @Tags map
// @Security BearerAuth
// @Produce json
// @Param lat query number true "Latitude"
// @Param lon query number true "Longitude"
// @Param radiusKm query number false "Radius in km (default 25)"
// @Param include query string false "Comma-separated kinds (EVENTS,PEOPLE,WORK,SAFETY)"
// @Success 200 {object} map[string]nearby.Result
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /map/nearby [get]
func (h *MapHandler) Nearby(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	center, radiusKm, ok := parseGeoQuery(c)
	if !ok {
		return
	}

	include := parseIncludeParam(c.Query("include"))

	result, err := h.nearbyUseCase.Nearby(c.Request.Context(), userID, center, radiusKm, include)
	if err != nil {
		c.JSON(http.StatusInternalServerError, ErrorResponse{
			Error: "failed to run proximity query",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": result})
}

// UpdateLocation handles POST /map/location
// @Summary Report the caller's current position
// @Tags map
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body profile.UpdateLocationRequest true "Coordinates"
// @Success 200 {object} SuccessResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /map/location [post]
func (h *MapHandler) UpdateLocation(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	var req profile.UpdateLocationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Error: "latitude and longitude are required numeric coordinates",
		})
		return
	}

	if err := h.profileUseCase.UpdateLocation(c.Request.Context(), userID, &req); err != nil {
		c.JSON(http.StatusInternalServerError, ErrorResponse{
			Error: "failed to update location",
		})
		return
	}

	c.JSON(http.StatusOK, SuccessResponse{
		Message: "location updated",
	})
}

// parseIncludeParam turns "EVENTS,people" into kinds; unknown names are
// dropped and an empty param means all kinds.
func parseIncludeParam(raw string) []nearby.Kind {
	all := []nearby.Kind{nearby.KindEvents, nearby.KindPeople, nearby.KindWork, nearby.KindSafety}
	if raw == "" {
		return all
	}

	known := make(map[nearby.Kind]bool, len(all))
	for _, k := range all {
		known[k] = true
	}

	var kinds []nearby.Kind
	for _, part := range strings.Split(raw, ",") {
		k := nearby.Kind(strings.ToUpper(strings.TrimSpace(part)))
		if known[k] {
			kinds = append(kinds, k)
		}
	}
	if len(kinds) == 0 {
		return all
	}
	return kinds
}
