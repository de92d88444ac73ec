package repositories

import (
	"context"
)

// UnitOfWork defines the interface for atomic operations
type UnitOfWork interface {
	// Do executes fn in one transaction. Repositories called with the
	// context passed to fn join that transaction.
	Do(ctx context.Context, fn func(ctx context.Context) error) error
}
