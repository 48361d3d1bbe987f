package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/rovyapp/rovy-backend/internal/domain"
	"github.com/rovyapp/rovy-backend/internal/usecase/build"
)

type BuildHandler struct {
	buildUseCase *build.BuildUseCase
}

func NewBuildHandler(buildUseCase *build.BuildUseCase) *BuildHandler {
	return &BuildHandler{
		buildUseCase: buildUseCase,
	}
}

// List handles GET /builds
// @Summary List van builds
// @Tags builds
// @Produce json
// @Success 200 {array} domain.Build
// @Failure 500 {object} ErrorResponse
// @Router /builds [get]
func (h *BuildHandler) List(c *gin.Context) {
	// Public route: drop the caller's own builds only when a caller is
	// known.
	excludeUserID := ""
	if userID, exists := c.Get("user_id"); exists {
		if id, ok := userID.(string); ok {
			excludeUserID = id
		}
	}

	builds, err := h.buildUseCase.List(c.Request.Context(), excludeUserID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, ErrorResponse{
			Error: "failed to list builds",
		})
		return
	}

	c.JSON(http.StatusOK, builds)
}

// ListMine handles GET /builds/me
// @Summary List my builds
// @Tags builds
// @Security BearerAuth
// @Produce json
// @Success 200 {array} domain.Build
// @Failure 401 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /builds/me [get]
func (h *BuildHandler) ListMine(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	builds, err := h.buildUseCase.ListMine(c.Request.Context(), userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, ErrorResponse{
			Error: "failed to list builds",
		})
		return
	}

	c.JSON(http.StatusOK, builds)
}

// GetByID handles GET /builds/:id
// @Summary Get a build
// @Tags builds
// @Produce json
// @Param id path string true "Build ID"
// @Success 200 {object} domain.Build
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /builds/{id} [get]
func (h *BuildHandler) GetByID(c *gin.Context) {
	b, err := h.buildUseCase.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		if err == domain.ErrBuildNotFound {
			c.JSON(http.StatusNotFound, ErrorResponse{
				Error: "build not found",
			})
			return
		}
		c.JSON(http.StatusInternalServerError, ErrorResponse{
			Error: "failed to get build",
		})
		return
	}

	c.JSON(http.StatusOK, b)
}

// Create handles POST /builds
// @Summary Create a build
// @Tags builds
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body build.CreateBuildRequest true "Build data"
// @Success 201 {object} domain.Build
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /builds [post]
func (h *BuildHandler) Create(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	var req build.CreateBuildRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Error: "invalid request body",
		})
		return
	}

	created, err := h.buildUseCase.Create(c.Request.Context(), userID, &req)
	if err != nil {
		c.JSON(http.StatusInternalServerError, ErrorResponse{
			Error: "failed to create build",
		})
		return
	}

	c.JSON(http.StatusCreated, created)
}

// Update handles PUT /builds/:id
// @Summary Update a build
// @Tags builds
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path string true "Build ID"
// @Param request body build.UpdateBuildRequest true "Build data"
// @Success 200 {object} domain.Build
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /builds/{id} [put]
func (h *BuildHandler) Update(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	var req build.UpdateBuildRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Error: "invalid request body",
		})
		return
	}

	updated, err := h.buildUseCase.Update(c.Request.Context(), userID, c.Param("id"), &req)
	if err != nil {
		switch err {
		case domain.ErrBuildNotFound:
			c.JSON(http.StatusNotFound, ErrorResponse{
				Error: "build not found",
			})
		case domain.ErrNotOwner:
			c.JSON(http.StatusForbidden, ErrorResponse{
				Error: "only the owner can update a build",
			})
		default:
			c.JSON(http.StatusInternalServerError, ErrorResponse{
				Error: "failed to update build",
			})
		}
		return
	}

	c.JSON(http.StatusOK, updated)
}

// Delete handles DELETE /builds/:id
// @Summary Delete a build
// @Tags builds
// @Security BearerAuth
// @Produce json
// @Param id path string true "Build ID"
// @Success 200 {object} SuccessResponse
// @Failure 401 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /builds/{id} [delete]
func (h *BuildHandler) Delete(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	if err := h.buildUseCase.Delete(c.Request.Context(), userID, c.Param("id")); err != nil {
		switch err {
		case domain.ErrBuildNotFound:
			c.JSON(http.StatusNotFound, ErrorResponse{
				Error: "build not found",
			})
		case domain.ErrNotOwner:
			c.JSON(http.StatusForbidden, ErrorResponse{
				Error: "only the owner can delete a build",
			})
		default:
			c.JSON(http.StatusInternalServerError, ErrorResponse{
				Error: "failed to delete build",
			})
		}
		return
	}

	c.JSON(http.StatusOK, SuccessResponse{
		Message: "build deleted",
	})
}
