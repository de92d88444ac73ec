package repositories

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/volatiletech/null/v8"
	"gorm.io/gorm"
	"lawconnect.backend/internal/domain/entities"
	domainerrors "lawconnect.backend/internal/domain/errors"
	"lawconnect.backend/internal/infrastructure/models"
	"lawconnect.backend/pkg/utils"
)

// FeeRepository implements fee record storage
type FeeRepository struct {
	db *gorm.DB
}

// NewFeeRepository creates a new fee repository
func NewFeeRepository(db *gorm.DB) *FeeRepository {
	return &FeeRepository{db: db}
}

// Create inserts a fee record
func (r *FeeRepository) Create(ctx context.Context, fee *entities.Fee) error {
	if fee.ID == uuid.Nil {
		fee.ID = utils.GenerateUUIDv7()
	}
	m := toFeeModel(fee)
	if err := GetDB(ctx, r.db).Create(m).Error; err != nil {
		return translateError(err)
	}
	fee.CreatedAt = m.CreatedAt
	fee.UpdatedAt = m.UpdatedAt
	return nil
}

// GetByID loads one of the caller's fee records
func (r *FeeRepository) GetByID(ctx context.Context, userID, id uuid.UUID) (*entities.Fee, error) {
	var m models.Fee
	if err := GetDB(ctx, r.db).Where("id = ? AND user_id = ?", id, userID).First(&m).Error; err != nil {
		return nil, translateError(err)
	}
	return toFeeEntity(&m), nil
}

// ListByUser returns the caller's fee records
func (r *FeeRepository) ListByUser(ctx context.Context, userID uuid.UUID) ([]*entities.Fee, error) {
	var rows []models.Fee
	if err := GetDB(ctx, r.db).Where("user_id = ?", userID).Order("created_at ASC").Find(&rows).Error; err != nil {
		return nil, err
	}
	out := make([]*entities.Fee, 0, len(rows))
	for i := range rows {
		out = append(out, toFeeEntity(&rows[i]))
	}
	return out, nil
}

// Update writes every mutable column of the fee record
func (r *FeeRepository) Update(ctx context.Context, fee *entities.Fee) error {
	result := GetDB(ctx, r.db).Model(&models.Fee{}).
		Where("id = ? AND user_id = ?", fee.ID, fee.UserID).
		Updates(map[string]interface{}{
			"case_ref_no":  fee.CaseRefNo,
			"client_name":  fee.ClientName,
			"fees":         fee.Fees,
			"amount_paid":  fee.AmountPaid,
			"pending_fees": fee.PendingFees,
			"payment_mode": string(fee.PaymentMode),
			"due_date":     fee.DueDate,
			"remarks":      fee.Remarks.Ptr(),
			"updated_at":   time.Now(),
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerrors.ErrNotFound
	}
	return nil
}

// Delete removes one of the caller's fee records
func (r *FeeRepository) Delete(ctx context.Context, userID, id uuid.UUID) error {
	result := GetDB(ctx, r.db).Where("id = ? AND user_id = ?", id, userID).Delete(&models.Fee{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerrors.ErrNotFound
	}
	return nil
}

func toFeeModel(f *entities.Fee) *models.Fee {
	return &models.Fee{
		ID:          f.ID,
		UserID:      f.UserID,
		CaseRefNo:   f.CaseRefNo,
		ClientName:  f.ClientName,
		Fees:        f.Fees,
		AmountPaid:  f.AmountPaid,
		PendingFees: f.PendingFees,
		PaymentMode: string(f.PaymentMode),
		DueDate:     f.DueDate,
		Remarks:     f.Remarks.Ptr(),
		CreatedAt:   f.CreatedAt,
		UpdatedAt:   f.UpdatedAt,
	}
}

func toFeeEntity(m *models.Fee) *entities.Fee {
	return &entities.Fee{
		ID:          m.ID,
		UserID:      m.UserID,
		CaseRefNo:   m.CaseRefNo,
		ClientName:  m.ClientName,
		Fees:        m.Fees,
		AmountPaid:  m.AmountPaid,
		PendingFees: m.PendingFees,
		PaymentMode: entities.PaymentMode(m.PaymentMode),
		DueDate:     m.DueDate,
		Remarks:     null.StringFromPtr(m.Remarks),
		CreatedAt:   m.CreatedAt,
		UpdatedAt:   m.UpdatedAt,
	}
}
