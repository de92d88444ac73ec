package repositories

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"lawconnect.backend/internal/domain/entities"
	"lawconnect.backend/internal/infrastructure/models"
	"lawconnect.backend/pkg/utils"
)

// FileRepository implements upload metadata storage
type FileRepository struct {
	db *gorm.DB
}

// NewFileRepository creates a new file repository
func NewFileRepository(db *gorm.DB) *FileRepository {
	return &FileRepository{db: db}
}

// Create inserts a file row
func (r *FileRepository) Create(ctx context.Context, file *entities.File) error {
	if file.ID == uuid.Nil {
		file.ID = utils.GenerateUUIDv7()
	}
	m := &models.File{
		ID:           file.ID,
		UserID:       file.UserID,
		OriginalName: file.OriginalName,
		Filename:     file.Filename,
		Path:         file.Path,
		Size:         file.Size,
		Type:         file.Type,
	}
	if err := GetDB(ctx, r.db).Create(m).Error; err != nil {
		return translateError(err)
	}
	file.CreatedAt = m.CreatedAt
	return nil
}
