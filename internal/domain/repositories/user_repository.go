package repositories

import (
	"context"

	"github.com/google/uuid"
	"lawconnect.backend/internal/domain/entities"
)

// UserRepository defines advocate account operations
type UserRepository interface {
	Create(ctx context.Context, user *entities.User) error
	GetByID(ctx context.Context, id uuid.UUID) (*entities.User, error)
	GetByEmail(ctx context.Context, email string) (*entities.User, error)
	Update(ctx context.Context, user *entities.User) error
	UpdatePassword(ctx context.Context, id uuid.UUID, passwordHash string) error
	// IncrementCounters adds the deltas to the case counters atomically.
	IncrementCounters(ctx context.Context, id uuid.UUID, handled, won, lost int) error
	DeleteByEmail(ctx context.Context, email string) error
	List(ctx context.Context, limit, offset int) ([]*entities.User, int64, error)
}
