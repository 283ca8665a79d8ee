package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"modelboard_backend/internal/dto"
	"modelboard_backend/internal/services"
)

type ReviewHandler struct {
	*BaseHandler
	reviewService services.ReviewService
}

func NewReviewHandler(base *BaseHandler, reviewService services.ReviewService) *ReviewHandler {
	return &ReviewHandler{
		BaseHandler:   base,
		reviewService: reviewService,
	}
}

func (h *ReviewHandler) RegisterRoutes(r *gin.RouterGroup) {
	r.POST("/submit-model-review", h.SubmitReview)
	r.GET("/models/:modelId/reviews", h.GetModelReviews)
}

func (h *ReviewHandler) SubmitReview(c *gin.Context) {
	var req dto.SubmitReviewRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	review, err := h.reviewService.SubmitReview(&req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, review)
}

func (h *ReviewHandler) GetModelReviews(c *gin.Context) {
	modelID, err := ParseParamUint(c, "modelId")
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	page, err := ParseQueryInt(c, "page", 1)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	reviews, err := h.reviewService.GetModelReviews(modelID, page)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, reviews)
}
