package repositories

import (
	"context"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	"lawconnect.backend/internal/domain/entities"
	domainerrors "lawconnect.backend/internal/domain/errors"
	"lawconnect.backend/internal/infrastructure/models"
)

// OTPRepository implements signup code storage
type OTPRepository struct {
	db *gorm.DB
}

// NewOTPRepository creates a new OTP repository
func NewOTPRepository(db *gorm.DB) *OTPRepository {
	return &OTPRepository{db: db}
}

// Upsert stores the code, replacing any pending one for the same email
func (r *OTPRepository) Upsert(ctx context.Context, otp *entities.OTP) error {
	if otp.CreatedAt.IsZero() {
		otp.CreatedAt = time.Now()
	}
	if otp.Type == "" {
		otp.Type = entities.OTPTypeEmail
	}
	m := &models.OTP{
		Email:     otp.Email,
		Code:      otp.Code,
		Type:      string(otp.Type),
		CreatedAt: otp.CreatedAt.UTC(),
	}
	return GetDB(ctx, r.db).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "email"}},
		DoUpdates: clause.AssignmentColumns([]string{"otp", "type", "created_at"}),
	}).Create(m).Error
}

// GetLive returns the code for email if it was created after notBefore
func (r *OTPRepository) GetLive(ctx context.Context, email string, notBefore time.Time) (*entities.OTP, error) {
	var m models.OTP
	err := GetDB(ctx, r.db).
		Where("email = ? AND created_at > ?", email, notBefore.UTC()).
		First(&m).Error
	if err != nil {
		return nil, translateError(err)
	}
	return &entities.OTP{
		Email:     m.Email,
		Code:      m.Code,
		Type:      entities.OTPType(m.Type),
		CreatedAt: m.CreatedAt,
	}, nil
}

// Delete removes the code for email
func (r *OTPRepository) Delete(ctx context.Context, email string) error {
	result := GetDB(ctx, r.db).Where("email = ?", email).Delete(&models.OTP{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerrors.ErrNotFound
	}
	return nil
}

// DeleteExpired removes codes created at or before notBefore
func (r *OTPRepository) DeleteExpired(ctx context.Context, notBefore time.Time) (int64, error) {
	result := GetDB(ctx, r.db).Where("created_at <= ?", notBefore.UTC()).Delete(&models.OTP{})
	return result.RowsAffected, result.Error
}
