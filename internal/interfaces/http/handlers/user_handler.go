package handlers

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"lawconnect.backend/internal/domain/entities"
	domainerrors "lawconnect.backend/internal/domain/errors"
	"lawconnect.backend/internal/interfaces/http/response"
	"lawconnect.backend/internal/usecases"
	"lawconnect.backend/internal/validation"
	"lawconnect.backend/pkg/utils"
)

type profileService interface {
	GetProfile(ctx context.Context, userID uuid.UUID) (*entities.Profile, error)
	UpdateProfile(ctx context.Context, userID uuid.UUID, input *entities.UpdateProfileInput, upload *usecases.AvatarUpload) (*entities.User, error)
	DeleteUser(ctx context.Context, email string) error
	ListUsers(ctx context.Context, params utils.PaginationParams) ([]*entities.User, utils.PaginationMeta, error)
}

// UserHandler serves the advocate profile and admin user management
type UserHandler struct {
	service     profileService
	constraints validation.FileConstraints
}

func NewUserHandler(service profileService, maxBytes int64) *UserHandler {
	return &UserHandler{
		service:     service,
		constraints: validation.ImageConstraints.WithMaxSize(maxBytes),
	}
}

// GetProfile returns the caller's public profile
// GET /api/users/profile
func (h *UserHandler) GetProfile(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}
	profile, err := h.service.GetProfile(c.Request.Context(), userID)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusOK, profile)
}

// UpdateProfile edits name, age and contact, and optionally the avatar
// PUT /api/users/updateProfile
func (h *UserHandler) UpdateProfile(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	var input entities.UpdateProfileInput
	if err := c.ShouldBind(&input); err != nil {
		response.Error(c, domainerrors.BadRequest("Invalid profile fields"))
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

	user, err := h.service.UpdateProfile(c.Request.Context(), userID, &input, upload)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusOK, user)
}

// DeleteUser removes an advocate by email. Admin only.
// DELETE /api/users/deleteadv/:email
func (h *UserHandler) DeleteUser(c *gin.Context) {
	if err := h.service.DeleteUser(c.Request.Context(), c.Param("email")); err != nil {
		response.Error(c, err)
		return
	}
	response.Message(c, http.StatusOK, "User deleted successfully")
}

// ListUsers pages through all advocates. Admin only.
// GET /api/users/toknow?page=1&limit=20
func (h *UserHandler) ListUsers(c *gin.Context) {
	pagination := utils.ParsePagination(c.Query("page"), c.Query("limit"))

	users, meta, err := h.service.ListUsers(c.Request.Context(), pagination)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{
		"items": orEmpty(users),
		"meta":  meta,
	})
}
