package services

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	"andaman/internal/pkg/response"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	my := rg.Group("/vendor/my-services")
	{
		my.POST("", h.Create)
		my.PUT("/:id", h.AttachImages)
	}
}

// Create handles phase 1: persist the details, answer with the new id. The
// envelope {success, data:{id}} is what the wizard transitions on.
func (h *Handler) Create(c *gin.Context) {
	var req CreateServiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	svc, err := h.service.Create(c.Request.Context(), c.GetInt64("user_id"), req)
	if err != nil {
		switch {
		case errors.Is(err, ErrValidation):
			response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", validationMessage(err))
		case errors.Is(err, ErrWrongVendorType):
			response.Error(c, http.StatusForbidden, "WRONG_VENDOR_TYPE", "Hotel vendors manage listings via /my-hotels")
		case errors.Is(err, ErrNoVendorProfile):
			response.Error(c, http.StatusForbidden, "FORBIDDEN", "No vendor profile for this user")
		case errors.Is(err, ErrDuplicateService):
			response.Error(c, http.StatusConflict, "DUPLICATE_SERVICE", "A service with this name already exists")
		default:
			response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to create service")
		}
		return
	}

	response.SuccessWithMessage(c, http.StatusCreated, gin.H{"id": svc.ID}, "Service created")
}

// AttachImages handles phase 2. Failure here leaves the created service
// untouched; the client may retry with the same id.
func (h *Handler) AttachImages(c *gin.Context) {
	serviceID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid service id")
		return
	}

	var req AttachImagesRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	err = h.service.AttachImages(c.Request.Context(), c.GetInt64("user_id"), serviceID, req.Images)
	if err != nil {
		switch {
		case errors.Is(err, ErrValidation):
			response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", validationMessage(err))
		case errors.Is(err, ErrNotFound):
			response.Error(c, http.StatusNotFound, "NOT_FOUND", "Service not found")
		case errors.Is(err, ErrForbidden):
			response.Error(c, http.StatusForbidden, "FORBIDDEN", "You don't own this service")
		default:
			response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to associate images")
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Images associated",
	})
}

// validationMessage extracts the human part of a wrapped ErrValidation.
func validationMessage(err error) string {
	msg := err.Error()
	if i := strings.Index(msg, ": "); i >= 0 {
		return msg[i+2:]
	}
	return "Validation failed"
}
