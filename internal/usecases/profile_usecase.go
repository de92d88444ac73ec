package usecases

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"lawconnect.backend/internal/domain/entities"
	domainerrors "lawconnect.backend/internal/domain/errors"
	"lawconnect.backend/internal/domain/repositories"
	"lawconnect.backend/pkg/utils"
)

type avatarApplier interface {
	ApplyAvatar(ctx context.Context, userID uuid.UUID, upload *AvatarUpload, mutate func(*entities.User)) (*entities.User, *entities.UploadedAvatar, error)
}

// ProfileUsecase handles the advocate profile and admin user management
type ProfileUsecase struct {
	userRepo repositories.UserRepository
	avatars  avatarApplier
}

func NewProfileUsecase(userRepo repositories.UserRepository, avatars avatarApplier) *ProfileUsecase {
	return &ProfileUsecase{userRepo: userRepo, avatars: avatars}
}

func (u *ProfileUsecase) GetProfile(ctx context.Context, userID uuid.UUID) (*entities.Profile, error) {
	user, err := u.userRepo.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, domainerrors.ErrNotFound) {
			return nil, domainerrors.NotFound("User not found")
		}
		return nil, err
	}
	profile := user.Profile()
	return &profile, nil
}

// UpdateProfile sets the given fields and, when upload is set, the avatar
func (u *ProfileUsecase) UpdateProfile(ctx context.Context, userID uuid.UUID, input *entities.UpdateProfileInput, upload *AvatarUpload) (*entities.User, error) {
	if input.Age != nil && *input.Age < 0 {
		return nil, domainerrors.BadRequest("Invalid age")
	}

	user, _, err := u.avatars.ApplyAvatar(ctx, userID, upload, func(user *entities.User) {
		if input.Name != nil {
			user.Name = *input.Name
		}
		if input.Age != nil {
			user.Age = *input.Age
		}
		if input.Contact != nil {
			user.Contact = *input.Contact
		}
	})
	if err != nil {
		return nil, err
	}
	return user, nil
}

// DeleteUser removes an account by email. Owned rows stay.
func (u *ProfileUsecase) DeleteUser(ctx context.Context, email string) error {
	email = normalizeEmail(email)
	if email == "" {
		return domainerrors.BadRequest("Email parameter is required for deletion.")
	}
	if err := u.userRepo.DeleteByEmail(ctx, email); err != nil {
		if errors.Is(err, domainerrors.ErrNotFound) {
			return domainerrors.NotFound("User not found")
		}
		return err
	}
	return nil
}

// ListUsers returns one page of accounts
func (u *ProfileUsecase) ListUsers(ctx context.Context, params utils.PaginationParams) ([]*entities.User, utils.PaginationMeta, error) {
	users, total, err := u.userRepo.List(ctx, params.Limit, params.CalculateOffset())
	if err != nil {
		return nil, utils.PaginationMeta{}, err
	}
	return users, utils.CalculateMeta(total, params.Page, params.Limit), nil
}
