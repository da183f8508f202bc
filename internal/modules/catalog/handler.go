package catalog

import (
	"net/http"

	"andaman/internal/pkg/response"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) RegisterRoutes(api *gin.RouterGroup) {
	api.GET("/islands", h.ListIslands)
}

// ListIslands returns the islands available in the service form selector.
// The payload is a bare array, matching what the form consumes directly.
func (h *Handler) ListIslands(c *gin.Context) {
	islands, err := h.service.ListIslands(c.Request.Context())
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to load islands")
		return
	}

	c.JSON(http.StatusOK, islands)
}
