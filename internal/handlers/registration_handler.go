package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"modelboard_backend/internal/dto"
	"modelboard_backend/internal/services"
)

type RegistrationHandler struct {
	*BaseHandler
	registrationService services.RegistrationService
}

func NewRegistrationHandler(base *BaseHandler, registrationService services.RegistrationService) *RegistrationHandler {
	return &RegistrationHandler{
		BaseHandler:         base,
		registrationService: registrationService,
	}
}

func (h *RegistrationHandler) RegisterRoutes(r *gin.RouterGroup) {
	r.POST("/register-model", h.RegisterModel)
	r.POST("/register-photographer", h.RegisterPhotographer)
}

func (h *RegistrationHandler) RegisterModel(c *gin.Context) {
	var req dto.RegisterModelRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	result, err := h.registrationService.RegisterModel(&req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	writeRegisterResult(c, result)
}

func (h *RegistrationHandler) RegisterPhotographer(c *gin.Context) {
	var req dto.RegisterPhotographerRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	result, err := h.registrationService.RegisterPhotographer(&req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	writeRegisterResult(c, result)
}

// writeRegisterResult maps the dedup outcome to the status contract:
// 201 for a fresh row, 200 plus a message when the phone already existed.
func writeRegisterResult(c *gin.Context, result *dto.RegisterResult) {
	if result.Created {
		c.JSON(http.StatusCreated, result.Summary)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"id":        result.Summary.ID,
		"fullName":  result.Summary.FullName,
		"phone":     result.Summary.Phone,
		"city":      result.Summary.City,
		"createdAt": result.Summary.CreatedAt,
		"message":   "Profile with this phone number already exists",
	})
}
