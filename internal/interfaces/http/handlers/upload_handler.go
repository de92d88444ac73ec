package handlers

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"lawconnect.backend/internal/domain/entities"
	"lawconnect.backend/internal/interfaces/http/response"
	"lawconnect.backend/internal/usecases"
	"lawconnect.backend/internal/validation"
)

type uploadService interface {
	UploadAvatar(ctx context.Context, userID uuid.UUID, upload *usecases.AvatarUpload) (*entities.UploadedAvatar, error)
}

// UploadHandler accepts avatar uploads
type UploadHandler struct {
	service     uploadService
	constraints validation.FileConstraints
}

// NewUploadHandler caps uploads at maxBytes; zero keeps the image default.
func NewUploadHandler(service uploadService, maxBytes int64) *UploadHandler {
	return &UploadHandler{
		service:     service,
		constraints: validation.ImageConstraints.WithMaxSize(maxBytes),
	}
}

// UploadAvatar stores a new profile picture for the caller
// POST /api/upload/avatar
func (h *UploadHandler) UploadAvatar(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	upload, body, err := readAvatar(c, h.constraints)
	if err != nil {
		response.Error(c, err)
		return
	}
	if body != nil {
		defer func() { _ = body.Close() }()
	}

	file, err := h.service.UploadAvatar(c.Request.Context(), userID, upload)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{
		"message": "File uploaded successfully",
		"file":    file,
	})
}
