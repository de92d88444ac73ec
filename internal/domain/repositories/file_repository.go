package repositories

import (
	"context"

	"lawconnect.backend/internal/domain/entities"
)

// FileRepository stores upload metadata
type FileRepository interface {
	Create(ctx context.Context, file *entities.File) error
}
