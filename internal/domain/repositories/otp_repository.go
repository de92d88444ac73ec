package repositories

import (
	"context"
	"time"

	"lawconnect.backend/internal/domain/entities"
)

// OTPRepository stores signup codes keyed by email
type OTPRepository interface {
	// Upsert replaces any pending code for the email and resets its creation time.
	Upsert(ctx context.Context, otp *entities.OTP) error
	// GetLive returns the code for email only if it was created after notBefore.
	GetLive(ctx context.Context, email string, notBefore time.Time) (*entities.OTP, error)
	Delete(ctx context.Context, email string) error
	DeleteExpired(ctx context.Context, notBefore time.Time) (int64, error)
}
