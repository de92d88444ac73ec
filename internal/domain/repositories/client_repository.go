package repositories

import (
	"context"

	"github.com/google/uuid"
	"lawconnect.backend/internal/domain/entities"
)

// ClientRepository defines client operations
type ClientRepository interface {
	Create(ctx context.Context, client *entities.Client) error
	GetByRef(ctx context.Context, userID uuid.UUID, caseRefNo int64) (*entities.Client, error)
	ExistsByRef(ctx context.Context, caseRefNo int64) (bool, error)
	ListByUser(ctx context.Context, userID uuid.UUID) ([]*entities.Client, error)
	ListAll(ctx context.Context) ([]*entities.Client, error)
}
