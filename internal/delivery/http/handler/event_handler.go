package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/rovyapp/rovy-backend/internal/domain"
	"github.com/rovyapp/rovy-backend/internal/geo"
	"github.com/rovyapp/rovy-backend/internal/usecase/event"
	"github.com/rovyapp/rovy-backend/internal/usecase/nearby"
)

type EventHandler struct {
	eventUseCase  *event.EventUseCase
	nearbyUseCase *nearby.NearbyUseCase
}

func NewEventHandler(eventUseCase *event.EventUseCase, nearbyUseCase *nearby.NearbyUseCase) *EventHandler {
	return &EventHandler{
		eventUseCase:  eventUseCase,
		nearbyUseCase: nearbyUseCase,
	}
}

// Create handles POST /events
// @Summary Create an event
// @Tags events
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body event.CreateEventRequest true "Event data"
// @Success 201 {object} domain.Event
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /events [post]
func (h *EventHandler) Create(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	var req event.CreateEventRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Error: "invalid request body",
		})
		return
	}

	created, err := h.eventUseCase.Create(c.Request.Context(), userID, &req)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidInput) {
			c.JSON(http.StatusBadRequest, ErrorResponse{
				Error: "invalid event dates",
			})
			return
		}
		c.JSON(http.StatusInternalServerError, ErrorResponse{
			Error: "failed to create event",
		})
		return
	}

	c.JSON(http.StatusCreated, created)
}

// ListMine handles GET /events/me
// @Summary List my hosted events
// @Tags events
// @Security BearerAuth
// @Produce json
// @Success 200 {array} domain.Event
// @Failure 401 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /events/me [get]
func (h *EventHandler) ListMine(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	events, err := h.eventUseCase.ListMine(c.Request.Context(), userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, ErrorResponse{
			Error: "failed to list events",
		})
		return
	}

	c.JSON(http.StatusOK, events)
}

// ListNearby handles GET /events/nearby
// @Summary List upcoming events near a point
// @Tags events
// @Security BearerAuth
// @Produce json
// @Param lat query number true "Latitude"
// @Param lon query number true "Longitude"
// @Param radiusKm query number false "Radius in km (default 25)"
// @Success 200 {array} nearby.EventResult
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /events/nearby [get]
func (h *EventHandler) ListNearby(c *gin.Context) {
	if _, ok := currentUserID(c); !ok {
		return
	}

	center, radiusKm, ok := parseGeoQuery(c)
	if !ok {
		return
	}

	events, err := h.nearbyUseCase.NearbyEvents(c.Request.Context(), center, radiusKm)
	if err != nil {
		c.JSON(http.StatusInternalServerError, ErrorResponse{
			Error: "failed to list nearby events",
		})
		return
	}

	c.JSON(http.StatusOK, events)
}

// Delete handles DELETE /events/:id
// @Summary Delete a hosted event
// @Tags events
// @Security BearerAuth
// @Produce json
// @Param id path string true "Event ID"
// @Success 200 {object} SuccessResponse
// @Failure 401 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /events/{id} [delete]
func (h *EventHandler) Delete(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	eventID := c.Param("id")
	if err := h.eventUseCase.Delete(c.Request.Context(), userID, eventID); err != nil {
		switch err {
		case domain.ErrEventNotFound:
			c.JSON(http.StatusNotFound, ErrorResponse{
				Error: "event not found",
			})
		case domain.ErrNotOwner:
			c.JSON(http.StatusForbidden, ErrorResponse{
				Error: "only the host can delete an event",
			})
		default:
			c.JSON(http.StatusInternalServerError, ErrorResponse{
				Error: "failed to delete event",
			})
		}
		return
	}

	c.JSON(http.StatusOK, SuccessResponse{
		Message: "event deleted",
	})
}

// parseGeoQuery reads lat/lon/radiusKm query params, defaulting the radius.
// Coordinates only need to parse as numbers; a radius of 0 is allowed and
// matches exact-position candidates.
func parseGeoQuery(c *gin.Context) (geo.Point, float64, bool) {
	var query struct {
		Lat      *float64 `form:"lat" binding:"required"`
		Lon      *float64 `form:"lon" binding:"required"`
		RadiusKm *float64 `form:"radiusKm" binding:"omitempty,gte=0"`
	}
	if err := c.ShouldBindQuery(&query); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Error: "lat and lon must be numbers and radiusKm, if given, non-negative",
		})
		return geo.Point{}, 0, false
	}

	radiusKm := nearby.DefaultRadiusKm
	if query.RadiusKm != nil {
		radiusKm = *query.RadiusKm
	}
	return geo.Point{Lat: *query.Lat, Lon: *query.Lon}, radiusKm, true
}
