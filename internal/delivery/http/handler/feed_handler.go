package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/rovyapp/rovy-backend/internal/domain"
	"github.com/rovyapp/rovy-backend/internal/usecase/feed"
)

type FeedHandler struct {
	feedUseCase *feed.FeedUseCase
}

func NewFeedHandler(feedUseCase *feed.FeedUseCase) *FeedHandler {
	return &FeedHandler{
		feedUseCase: feedUseCase,
	}
}

// Get handles GET /feed
// @Summary Get the dashboard feed
// @Tags feed
// @Security BearerAuth
// @Produce json
// @Success 200 {object} feed.DashboardFeed
// @Failure 401 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /feed [get]
func (h *FeedHandler) Get(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	dashboard, err := h.feedUseCase.Get(c.Request.Context(), userID)
	if err != nil {
		if err == domain.ErrUserNotFound {
			c.JSON(http.StatusNotFound, ErrorResponse{
				Error: "user not found",
			})
			return
		}
		c.JSON(http.StatusInternalServerError, ErrorResponse{
			Error: "failed to build feed",
		})
		return
	}

	c.JSON(http.StatusOK, dashboard)
}

// PinEvent handles POST /feed/events/:id/pin
// @Summary Pin an event to the dashboard
// @Tags feed
// @Security BearerAuth
// @Produce json
// @Param id path string true "Event ID"
// @Success 200 {object} SuccessResponse
// @Failure 401 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /feed/events/{id}/pin [post]
func (h *FeedHandler) PinEvent(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	eventID := c.Param("id")
	if err := h.feedUseCase.PinEvent(c.Request.Context(), userID, eventID); err != nil {
		if err == domain.ErrEventNotFound {
			c.JSON(http.StatusNotFound, ErrorResponse{
				Error: "event not found",
			})
			return
		}
		c.JSON(http.StatusInternalServerError, ErrorResponse{
			Error: "failed to pin event",
		})
		return
	}

	c.JSON(http.StatusOK, SuccessResponse{
		Message: "event pinned",
	})
}

// UnpinEvent handles DELETE /feed/events/:id/pin
// @Summary Unpin an event from the dashboard
// @Tags feed
// @Security BearerAuth
// @Produce json
// @Param id path string true "Event ID"
// @Success 200 {object} SuccessResponse
// @Failure 401 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /feed/events/{id}/pin [delete]
func (h *FeedHandler) UnpinEvent(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	eventID := c.Param("id")
	if err := h.feedUseCase.UnpinEvent(c.Request.Context(), userID, eventID); err != nil {
		c.JSON(http.StatusInternalServerError, ErrorResponse{
			Error: "failed to unpin event",
		})
		return
	}

	c.JSON(http.StatusOK, SuccessResponse{
		Message: "event unpinned",
	})
}
