package repositories

import (
	"context"

	"github.com/google/uuid"
	"lawconnect.backend/internal/domain/entities"
)

// FeeRepository defines fee record operations
type FeeRepository interface {
	Create(ctx context.Context, fee *entities.Fee) error
	GetByID(ctx context.Context, userID, id uuid.UUID) (*entities.Fee, error)
	ListByUser(ctx context.Context, userID uuid.UUID) ([]*entities.Fee, error)
	Update(ctx context.Context, fee *entities.Fee) error
	Delete(ctx context.Context, userID, id uuid.UUID) error
}
