package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/rovyapp/rovy-backend/internal/domain"
	"github.com/rovyapp/rovy-backend/internal/usecase/copilot"
)

type CoPilotHandler struct {
	copilotUseCase *copilot.CoPilotUseCase
}

func NewCoPilotHandler(copilotUseCase *copilot.CoPilotUseCase) *CoPilotHandler {
	return &CoPilotHandler{
		copilotUseCase: copilotUseCase,
	}
}

// UpsertProfile handles POST /copilot
// @Summary Create or update copilot profile
// @Tags copilot
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body copilot.UpsertProfileRequest true "Profile data"
// @Success 200 {object} domain.CoPilotProfile
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /copilot [post]
func (h *CoPilotHandler) UpsertProfile(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	var req copilot.UpsertProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Error: "invalid request body",
		})
		return
	}

	profile, err := h.copilotUseCase.UpsertProfile(c.Request.Context(), userID, &req)
	if err != nil {
		c.JSON(http.StatusInternalServerError, ErrorResponse{
			Error: "failed to save copilot profile",
		})
		return
	}

	c.JSON(http.StatusOK, profile)
}

// GetMyProfile handles GET /copilot/me
// @Summary Get my copilot profile
// @Tags copilot
// @Security BearerAuth
// @Produce json
// @Success 200 {object} domain.CoPilotProfile
// @Failure 401 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /copilot/me [get]
func (h *CoPilotHandler) GetMyProfile(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	profile, err := h.copilotUseCase.GetProfile(c.Request.Context(), userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, ErrorResponse{
			Error: "failed to get copilot profile",
		})
		return
	}

	// nil means no profile yet; the client treats that as "not enrolled".
	c.JSON(http.StatusOK, gin.H{"profile": profile})
}

// Feed handles GET /copilot/feed
// @Summary Get swipe feed
// @Tags copilot
// @Security BearerAuth
// @Produce json
// @Success 200 {array} copilot.FeedCard
// @Failure 401 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /copilot/feed [get]
func (h *CoPilotHandler) Feed(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	cards, err := h.copilotUseCase.Feed(c.Request.Context(), userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, ErrorResponse{
			Error: "failed to build feed",
		})
		return
	}

	c.JSON(http.StatusOK, cards)
}

// Swipe handles POST /copilot/swipe
// @Summary Swipe on another user
// @Tags copilot
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body copilot.SwipeRequest true "Swipe data"
// @Success 200 {object} copilot.SwipeResult
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /copilot/swipe [post]
func (h *CoPilotHandler) Swipe(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	var req copilot.SwipeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Error: "invalid request body",
		})
		return
	}

	result, err := h.copilotUseCase.Swipe(c.Request.Context(), userID, &req)
	if err != nil {
		switch err {
		case domain.ErrInvalidAction, domain.ErrCannotSwipeSelf:
			c.JSON(http.StatusBadRequest, ErrorResponse{
				Error: err.Error(),
			})
		case domain.ErrUserNotFound:
			c.JSON(http.StatusNotFound, ErrorResponse{
				Error: "user not found",
			})
		default:
			c.JSON(http.StatusInternalServerError, ErrorResponse{
				Error: "failed to record swipe",
			})
		}
		return
	}

	if result.AlreadySwiped {
		c.JSON(http.StatusOK, SuccessResponse{
			Message: "Already swiped",
		})
		return
	}

	c.JSON(http.StatusOK, result)
}

// SendMessage handles POST /copilot/message
// @Summary Send a message to a match
// @Tags copilot
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body copilot.MessageRequest true "Message data"
// @Success 201 {object} domain.Message
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /copilot/message [post]
func (h *CoPilotHandler) SendMessage(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	var req copilot.MessageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Error: "invalid request body",
		})
		return
	}

	message, err := h.copilotUseCase.SendMessage(c.Request.Context(), userID, &req)
	if err != nil {
		if err == domain.ErrNotMatched {
			c.JSON(http.StatusForbidden, ErrorResponse{
				Error: "you can only message matched users",
			})
			return
		}
		c.JSON(http.StatusInternalServerError, ErrorResponse{
			Error: "failed to send message",
		})
		return
	}

	c.JSON(http.StatusCreated, message)
}

// ListMessages handles GET /copilot/messages/:userId
// @Summary Get message thread with a match
// @Tags copilot
// @Security BearerAuth
// @Produce json
// @Param userId path string true "Other user ID"
// @Success 200 {array} domain.Message
// @Failure 401 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /copilot/messages/{userId} [get]
func (h *CoPilotHandler) ListMessages(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	otherID := c.Param("userId")
	messages, err := h.copilotUseCase.ListMessages(c.Request.Context(), userID, otherID)
	if err != nil {
		if err == domain.ErrNotMatched {
			c.JSON(http.StatusForbidden, ErrorResponse{
				Error: "you can only view messages with matched users",
			})
			return
		}
		c.JSON(http.StatusInternalServerError, ErrorResponse{
			Error: "failed to get messages",
		})
		return
	}

	c.JSON(http.StatusOK, messages)
}

// ListMatches handles GET /copilot/matches
// @Summary List mutual matches
// @Tags copilot
// @Security BearerAuth
// @Produce json
// @Success 200 {array} copilot.MatchEntry
// @Failure 401 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /copilot/matches [get]
func (h *CoPilotHandler) ListMatches(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	matches, err := h.copilotUseCase.ListMatches(c.Request.Context(), userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, ErrorResponse{
			Error: "failed to get matches",
		})
		return
	}

	c.JSON(http.StatusOK, matches)
}

// ListInbox handles GET /copilot/inbox
// @Summary List newest message per sender
// @Tags copilot
// @Security BearerAuth
// @Produce json
// @Success 200 {array} copilot.InboxEntry
// @Failure 401 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /copilot/inbox [get]
func (h *CoPilotHandler) ListInbox(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	entries, err := h.copilotUseCase.ListInbox(c.Request.Context(), userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, ErrorResponse{
			Error: "failed to get inbox",
		})
		return
	}

	c.JSON(http.StatusOK, entries)
}

// ListChats handles GET /copilot/chats
// @Summary List conversations including fresh matches
// @Tags copilot
// @Security BearerAuth
// @Produce json
// @Success 200 {array} copilot.ChatEntry
// @Failure 401 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /copilot/chats [get]
func (h *CoPilotHandler) ListChats(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	chats, err := h.copilotUseCase.ListChats(c.Request.Context(), userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, ErrorResponse{
			Error: "failed to get chats",
		})
		return
	}

	c.JSON(http.StatusOK, chats)
}

// DeepDive handles GET /copilot/:id
// @Summary Get full copilot profile for one user
// @Tags copilot
// @Security BearerAuth
// @Produce json
// @Param id path string true "User ID"
// @Success 200 {object} copilot.DeepDiveCard
// @Failure 401 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /copilot/{id} [get]
func (h *CoPilotHandler) DeepDive(c *gin.Context) {
	if _, ok := currentUserID(c); !ok {
		return
	}

	targetID := c.Param("id")
	card, err := h.copilotUseCase.DeepDive(c.Request.Context(), targetID)
	if err != nil {
		if err == domain.ErrProfileNotFound || err == domain.ErrUserNotFound {
			c.JSON(http.StatusNotFound, ErrorResponse{
				Error: "profile not found",
			})
			return
		}
		c.JSON(http.StatusInternalServerError, ErrorResponse{
			Error: "failed to get profile",
		})
		return
	}

	c.JSON(http.StatusOK, card)
}
