package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/rovyapp/rovy-backend/internal/domain"
	"github.com/rovyapp/rovy-backend/internal/usecase/garage"
)

type GarageHandler struct {
	garageUseCase *garage.GarageUseCase
}

func NewGarageHandler(garageUseCase *garage.GarageUseCase) *GarageHandler {
	return &GarageHandler{
		garageUseCase: garageUseCase,
	}
}

// List handles GET /garage
// @Summary List garage pros
// @Tags garage
// @Produce json
// @Param category query string false "Category filter"
// @Success 200 {array} domain.GaragePro
// @Failure 500 {object} ErrorResponse
// @Router /garage [get]
func (h *GarageHandler) List(c *gin.Context) {
	// Public route: exclude the caller's own listing only when a caller
	// is known.
	excludeUserID := ""
	if userID, exists := c.Get("user_id"); exists {
		if id, ok := userID.(string); ok {
			excludeUserID = id
		}
	}

	pros, err := h.garageUseCase.List(c.Request.Context(), c.Query("category"), excludeUserID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, ErrorResponse{
			Error: "failed to list garage pros",
		})
		return
	}

	c.JSON(http.StatusOK, pros)
}

// GetMine handles GET /garage/me
// @Summary Get my garage listing
// @Tags garage
// @Security BearerAuth
// @Produce json
// @Success 200 {object} domain.GaragePro
// @Failure 401 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /garage/me [get]
func (h *GarageHandler) GetMine(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	pro, err := h.garageUseCase.GetMine(c.Request.Context(), userID)
	if err != nil {
		if err == domain.ErrGarageProNotFound {
			c.JSON(http.StatusNotFound, ErrorResponse{
				Error: "garage listing not found",
			})
			return
		}
		c.JSON(http.StatusInternalServerError, ErrorResponse{
			Error: "failed to get garage listing",
		})
		return
	}

	c.JSON(http.StatusOK, pro)
}

// GetByID handles GET /garage/:id
// @Summary Get a garage pro
// @Tags garage
// @Produce json
// @Param id path string true "Garage pro ID"
// @Success 200 {object} domain.GaragePro
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /garage/{id} [get]
func (h *GarageHandler) GetByID(c *gin.Context) {
	pro, err := h.garageUseCase.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		if err == domain.ErrGarageProNotFound {
			c.JSON(http.StatusNotFound, ErrorResponse{
				Error: "garage pro not found",
			})
			return
		}
		c.JSON(http.StatusInternalServerError, ErrorResponse{
			Error: "failed to get garage pro",
		})
		return
	}

	c.JSON(http.StatusOK, pro)
}

// Create handles POST /garage
// @Summary Create my garage listing
// @Tags garage
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body garage.ProRequest true "Listing data"
// @Success 201 {object} domain.GaragePro
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /garage [post]
func (h *GarageHandler) Create(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	var req garage.ProRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Error: "invalid request body",
		})
		return
	}

	pro, err := h.garageUseCase.Create(c.Request.Context(), userID, &req)
	if err != nil {
		if err == domain.ErrGarageProExists {
			c.JSON(http.StatusConflict, ErrorResponse{
				Error: "garage listing already exists",
			})
			return
		}
		c.JSON(http.StatusInternalServerError, ErrorResponse{
			Error: "failed to create garage listing",
		})
		return
	}

	c.JSON(http.StatusCreated, pro)
}

// Update handles PUT /garage/:id
// @Summary Update my garage listing
// @Tags garage
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path string true "Garage pro ID"
// @Param request body garage.ProRequest true "Listing data"
// @Success 200 {object} domain.GaragePro
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /garage/{id} [put]
func (h *GarageHandler) Update(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	var req garage.ProRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Error: "invalid request body",
		})
		return
	}

	pro, err := h.garageUseCase.Update(c.Request.Context(), userID, c.Param("id"), &req)
	if err != nil {
		switch err {
		case domain.ErrGarageProNotFound:
			c.JSON(http.StatusNotFound, ErrorResponse{
				Error: "garage pro not found",
			})
		case domain.ErrNotOwner:
			c.JSON(http.StatusForbidden, ErrorResponse{
				Error: "only the owner can update a listing",
			})
		default:
			c.JSON(http.StatusInternalServerError, ErrorResponse{
				Error: "failed to update garage listing",
			})
		}
		return
	}

	c.JSON(http.StatusOK, pro)
}

// Delete handles DELETE /garage/:id
// @Summary Delete my garage listing
// @Tags garage
// @Security BearerAuth
// @Produce json
// @Param id path string true "Garage pro ID"
// @Success 200 {object} SuccessResponse
// @Failure 401 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /garage/{id} [delete]
func (h *GarageHandler) Delete(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	if err := h.garageUseCase.Delete(c.Request.Context(), userID, c.Param("id")); err != nil {
		switch err {
		case domain.ErrGarageProNotFound:
			c.JSON(http.StatusNotFound, ErrorResponse{
				Error: "garage pro not found",
			})
		case domain.ErrNotOwner:
			c.JSON(http.StatusForbidden, ErrorResponse{
				Error: "only the owner can delete a listing",
			})
		default:
			c.JSON(http.StatusInternalServerError, ErrorResponse{
				Error: "failed to delete garage listing",
			})
		}
		return
	}

	c.JSON(http.StatusOK, SuccessResponse{
		Message: "garage listing deleted",
	})
}
