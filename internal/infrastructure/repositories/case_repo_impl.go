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

// CaseRepository implements case storage
type CaseRepository struct {
	db *gorm.DB
}

// NewCaseRepository creates a new case repository
func NewCaseRepository(db *gorm.DB) *CaseRepository {
	return &CaseRepository{db: db}
}

// Create inserts a case; a duplicate (owner, ref) pair yields ErrAlreadyExists
func (r *CaseRepository) Create(ctx context.Context, c *entities.Case) error {
	if c.ID == uuid.Nil {
		c.ID = utils.GenerateUUIDv7()
	}
	m := toCaseModel(c)
	if err := GetDB(ctx, r.db).Create(m).Error; err != nil {
		return translateError(err)
	}
	c.CreatedAt = m.CreatedAt
	c.UpdatedAt = m.UpdatedAt
	return nil
}

// GetByRef loads the caller's case by reference number
func (r *CaseRepository) GetByRef(ctx context.Context, userID uuid.UUID, caseRefNo int64) (*entities.Case, error) {
	var m models.Case
	err := GetDB(ctx, r.db).
		Where("user_id = ? AND case_ref_no = ?", userID, caseRefNo).
		First(&m).Error
	if err != nil {
		return nil, translateError(err)
	}
	return toCaseEntity(&m), nil
}

// ListByUser returns the caller's cases in creation order
func (r *CaseRepository) ListByUser(ctx context.Context, userID uuid.UUID) ([]*entities.Case, error) {
	return r.find(GetDB(ctx, r.db).Where("user_id = ?", userID))
}

// ListPending returns the caller's cases with status Pending
func (r *CaseRepository) ListPending(ctx context.Context, userID uuid.UUID) ([]*entities.Case, error) {
	return r.find(GetDB(ctx, r.db).Where("user_id = ? AND status = ?", userID, string(entities.CaseStatusPending)))
}

// ListAll returns every case
func (r *CaseRepository) ListAll(ctx context.Context) ([]*entities.Case, error) {
	return r.find(GetDB(ctx, r.db))
}

// Update writes every mutable column of the case except status, which only
// moves through ChangeStatus.
func (r *CaseRepository) Update(ctx context.Context, c *entities.Case) error {
	result := GetDB(ctx, r.db).Model(&models.Case{}).
		Where("id = ? AND user_id = ?", c.ID, c.UserID).
		Updates(map[string]interface{}{
			"case_title":   c.CaseTitle,
			"client_name":  c.ClientName,
			"next_hearing": c.NextHearing.Ptr(),
			"fees":         c.Fees,
			"pending_fees": c.PendingFees,
			"updated_at":   time.Now(),
		})
	if result.Error != nil {
		return translateError(result.Error)
	}
	if result.RowsAffected == 0 {
		return domainerrors.ErrNotFound
	}
	return nil
}

// ChangeStatus sets the status only if it differs from the stored one and
// reports whether this call made the change. Concurrent writers of the same
// status serialize on the row, so exactly one of them sees true.
func (r *CaseRepository) ChangeStatus(ctx context.Context, id, userID uuid.UUID, status entities.CaseStatus) (bool, error) {
	result := GetDB(ctx, r.db).Model(&models.Case{}).
		Where("id = ? AND user_id = ? AND status <> ?", id, userID, string(status)).
		Updates(map[string]interface{}{
			"status":     string(status),
			"updated_at": time.Now(),
		})
	if result.Error != nil {
		return false, translateError(result.Error)
	}
	return result.RowsAffected == 1, nil
}

// DeleteByRef removes the caller's case
func (r *CaseRepository) DeleteByRef(ctx context.Context, userID uuid.UUID, caseRefNo int64) error {
	result := GetDB(ctx, r.db).
		Where("user_id = ? AND case_ref_no = ?", userID, caseRefNo).
		Delete(&models.Case{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerrors.ErrNotFound
	}
	return nil
}

func (r *CaseRepository) find(query *gorm.DB) ([]*entities.Case, error) {
	var rows []models.Case
	if err := query.Order("created_at ASC").Find(&rows).Error; err != nil {
		return nil, err
	}
	out := make([]*entities.Case, 0, len(rows))
	for i := range rows {
		out = append(out, toCaseEntity(&rows[i]))
	}
	return out, nil
}

func toCaseModel(c *entities.Case) *models.Case {
	return &models.Case{
		ID:          c.ID,
		UserID:      c.UserID,
		CaseRefNo:   c.CaseRefNo,
		CaseTitle:   c.CaseTitle,
		ClientName:  c.ClientName,
		Status:      string(c.Status),
		NextHearing: c.NextHearing.Ptr(),
		Fees:        c.Fees,
		PendingFees: c.PendingFees,
		CreatedAt:   c.CreatedAt,
		UpdatedAt:   c.UpdatedAt,
	}
}

func toCaseEntity(m *models.Case) *entities.Case {
	return &entities.Case{
		ID:          m.ID,
		UserID:      m.UserID,
		CaseRefNo:   m.CaseRefNo,
		CaseTitle:   m.CaseTitle,
		ClientName:  m.ClientName,
		Status:      entities.CaseStatus(m.Status),
		NextHearing: null.TimeFromPtr(m.NextHearing),
		Fees:        m.Fees,
		PendingFees: m.PendingFees,
		CreatedAt:   m.CreatedAt,
		UpdatedAt:   m.UpdatedAt,
	}
}
