package repositories

import (
	"context"

	"github.com/google/uuid"
	"lawconnect.backend/internal/domain/entities"
)

// CaseRepository defines case operations. Every per-user call is scoped to userID.
type CaseRepository interface {
	Create(ctx context.Context, c *entities.Case) error
	GetByRef(ctx context.Context, userID uuid.UUID, caseRefNo int64) (*entities.Case, error)
	ListByUser(ctx context.Context, userID uuid.UUID) ([]*entities.Case, error)
	ListPending(ctx context.Context, userID uuid.UUID) ([]*entities.Case, error)
	ListAll(ctx context.Context) ([]*entities.Case, error)
	Update(ctx context.Context, c *entities.Case) error
	ChangeStatus(ctx context.Context, id, userID uuid.UUID, status entities.CaseStatus) (bool, error)
	DeleteByRef(ctx context.Context, userID uuid.UUID, caseRefNo int64) error
}
