package upload

import (
	"errors"
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

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/uploads/images", h.UploadImages)
}

// UploadImages accepts multipart images and returns their public URLs. The
// service form collects these URLs and associates them in its second phase.
func (h *Handler) UploadImages(c *gin.Context) {
	if err := c.Request.ParseMultipartForm(MaxFileSize); err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_FORM", "Failed to parse form")
		return
	}

	files := c.Request.MultipartForm.File["images"]
	if len(files) == 0 {
		response.Error(c, http.StatusBadRequest, "NO_FILES", "No files uploaded")
		return
	}

	urls, err := h.service.SaveAll(files)
	if err != nil {
		switch {
		case errors.Is(err, ErrTooManyFiles):
			response.Error(c, http.StatusBadRequest, "TOO_MANY_FILES", "Too many files in one request")
		case errors.Is(err, ErrFileTooLarge):
			response.Error(c, http.StatusRequestEntityTooLarge, "FILE_TOO_LARGE", "File exceeds the size limit")
		case errors.Is(err, ErrInvalidMimeType):
			response.Error(c, http.StatusBadRequest, "INVALID_TYPE", "Only image files are accepted")
		case errors.Is(err, ErrEmptyFile):
			response.Error(c, http.StatusBadRequest, "EMPTY_FILE", "Empty file")
		default:
			response.Error(c, http.StatusInternalServerError, "STORAGE_ERROR", "Failed to save files")
		}
		return
	}

	response.Success(c, http.StatusOK, gin.H{"urls": urls})
}
