package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/rovyapp/rovy-backend/internal/usecase/search"
)

type SearchHandler struct {
	searchUseCase *search.SearchUseCase
}

func NewSearchHandler(searchUseCase *search.SearchUseCase) *SearchHandler {
	return &SearchHandler{
		searchUseCase: searchUseCase,
	}
}

// Search handles GET /search
// @Summary Search users, builds and garage pros
// @Tags search
// @Produce json
// @Param q query string true "Search query"
// @Success 200 {array} search.Result
// @Failure 500 {object} ErrorResponse
// @Router /search [get]
func (h *SearchHandler) Search(c *gin.Context) {
	results, err := h.searchUseCase.Search(c.Request.Context(), c.Query("q"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, ErrorResponse{
			Error: "search failed",
		})
		return
	}

	c.JSON(http.StatusOK, results)
}
