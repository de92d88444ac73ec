package usecases

import (
	"context"
	"errors"
	"fmt"
	"io"
	"math/rand/v2"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"lawconnect.backend/internal/domain/entities"
	domainerrors "lawconnect.backend/internal/domain/errors"
	"lawconnect.backend/internal/domain/repositories"
	"lawconnect.backend/pkg/logger"
)

const avatarField = "profilePic"

// ObjectStore persists uploaded bytes under a key and reports the URL
// clients fetch them from.
type ObjectStore interface {
	Save(ctx context.Context, key string, r io.Reader) error
	Delete(ctx context.Context, key string) error
	URL(key string) string
}

// AvatarUpload is a validated image ready to be stored
type AvatarUpload struct {
	OriginalName string
	Ext          string
	ContentType  string
	Size         int64
	Body         io.Reader
}

var avatarSuffix = func() int64 {
	return rand.Int64N(1_000_000_000)
}

// UploadUsecase stores avatars and records them on the user
type UploadUsecase struct {
	userRepo repositories.UserRepository
	fileRepo repositories.FileRepository
	store    ObjectStore
	uow      repositories.UnitOfWork
	now      func() time.Time
}

func NewUploadUsecase(
	userRepo repositories.UserRepository,
	fileRepo repositories.FileRepository,
	store ObjectStore,
	uow repositories.UnitOfWork,
) *UploadUsecase {
	return &UploadUsecase{
		userRepo: userRepo,
		fileRepo: fileRepo,
		store:    store,
		uow:      uow,
		now:      time.Now,
	}
}

// UploadAvatar replaces the caller's avatar
func (u *UploadUsecase) UploadAvatar(ctx context.Context, userID uuid.UUID, upload *AvatarUpload) (*entities.UploadedAvatar, error) {
	if upload == nil {
		return nil, domainerrors.BadRequest("No file uploaded")
	}
	_, avatar, err := u.ApplyAvatar(ctx, userID, upload, nil)
	return avatar, err
}

// ApplyAvatar loads the user, applies mutate, and saves it together with the
// optional avatar. The object is stored first and removed again if the
// database write fails. The old avatar is deleted only after commit.
func (u *UploadUsecase) ApplyAvatar(
	ctx context.Context,
	userID uuid.UUID,
	upload *AvatarUpload,
	mutate func(*entities.User),
) (*entities.User, *entities.UploadedAvatar, error) {
	user, err := u.userRepo.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, domainerrors.ErrNotFound) {
			return nil, nil, domainerrors.NotFound("User not found")
		}
		return nil, nil, err
	}
	if mutate != nil {
		mutate(user)
	}

	if upload == nil {
		if err := u.userRepo.Update(ctx, user); err != nil {
			return nil, nil, err
		}
		return user, nil, nil
	}

	filename := fmt.Sprintf("%s-%d-%d%s", avatarField, u.now().UnixNano(), avatarSuffix(), strings.ToLower(upload.Ext))
	key := avatarField + "/" + filename
	if err := u.store.Save(ctx, key, upload.Body); err != nil {
		return nil, nil, fmt.Errorf("store avatar: %w", err)
	}

	previous := user.ProfilePic
	user.ProfilePic = u.store.URL(key)
	file := &entities.File{
		UserID:       user.ID,
		OriginalName: upload.OriginalName,
		Filename:     filename,
		Path:         key,
		Size:         upload.Size,
		Type:         upload.ContentType,
	}

	err = u.uow.Do(ctx, func(txCtx context.Context) error {
		if err := u.userRepo.Update(txCtx, user); err != nil {
			return err
		}
		return u.fileRepo.Create(txCtx, file)
	})
	if err != nil {
		if delErr := u.store.Delete(ctx, key); delErr != nil {
			logger.Warn(ctx, "Failed to remove orphaned avatar", zap.String("key", key), zap.Error(delErr))
		}
		return nil, nil, err
	}

	if old, ok := avatarKey(previous); ok && old != key {
		if err := u.store.Delete(ctx, old); err != nil {
			logger.Warn(ctx, "Failed to delete previous avatar", zap.String("key", old), zap.Error(err))
		}
	}

	return user, &entities.UploadedAvatar{
		OriginalName: file.OriginalName,
		Filename:     file.Filename,
		UserAvatar:   user.ProfilePic,
	}, nil
}

// avatarKey recovers the storage key from a stored avatar URL, whether it is
// a local path or an absolute object URL.
func avatarKey(url string) (string, bool) {
	i := strings.LastIndex(url, "/"+avatarField+"/")
	if i < 0 {
		return "", false
	}
	key := url[i+1:]
	if key == avatarField+"/" {
		return "", false
	}
	return key, true
}
