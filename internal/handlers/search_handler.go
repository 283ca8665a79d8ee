package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"modelboard_backend/internal/dto"
	"modelboard_backend/internal/services"
)

type SearchHandler struct {
	*BaseHandler
	searchService services.SearchService
}

func NewSearchHandler(base *BaseHandler, searchService services.SearchService) *SearchHandler {
	return &SearchHandler{
		BaseHandler:   base,
		searchService: searchService,
	}
}

func (h *SearchHandler) RegisterRoutes(r *gin.RouterGroup) {
	r.GET("/search-profiles", h.SearchProfiles)
}

func (h *SearchHandler) SearchProfiles(c *gin.Context) {
	var req dto.SearchProfilesRequest
	if !h.BindAndValidate_Query(c, &req) {
		return
	}

	response, err := h.searchService.SearchProfiles(&req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, response)
}
