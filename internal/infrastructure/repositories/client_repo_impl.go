package repositories

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"lawconnect.backend/internal/domain/entities"
	"lawconnect.backend/internal/infrastructure/models"
	"lawconnect.backend/pkg/utils"
)

// ClientRepository implements client storage
type ClientRepository struct {
	db *gorm.DB
}

// NewClientRepository creates a new client repository
func NewClientRepository(db *gorm.DB) *ClientRepository {
	return &ClientRepository{db: db}
}

// Create inserts a client; a reference number used by any client yields ErrAlreadyExists
func (r *ClientRepository) Create(ctx context.Context, client *entities.Client) error {
	if client.ID == uuid.Nil {
		client.ID = utils.GenerateUUIDv7()
	}
	m := &models.Client{
		ID:         client.ID,
		UserID:     client.UserID,
		ClientName: client.ClientName,
		Phone:      client.Phone,
		CaseRefNo:  client.CaseRefNo,
	}
	if err := GetDB(ctx, r.db).Create(m).Error; err != nil {
		return translateError(err)
	}
	client.CreatedAt = m.CreatedAt
	client.UpdatedAt = m.UpdatedAt
	return nil
}

// GetByRef loads the caller's client by case reference
func (r *ClientRepository) GetByRef(ctx context.Context, userID uuid.UUID, caseRefNo int64) (*entities.Client, error) {
	var m models.Client
	err := GetDB(ctx, r.db).
		Where("user_id = ? AND case_ref_no = ?", userID, caseRefNo).
		First(&m).Error
	if err != nil {
		return nil, translateError(err)
	}
	return toClientEntity(&m), nil
}

// ExistsByRef reports whether any client already uses the reference
func (r *ClientRepository) ExistsByRef(ctx context.Context, caseRefNo int64) (bool, error) {
	var count int64
	if err := GetDB(ctx, r.db).Model(&models.Client{}).Where("case_ref_no = ?", caseRefNo).Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

// ListByUser returns the caller's clients
func (r *ClientRepository) ListByUser(ctx context.Context, userID uuid.UUID) ([]*entities.Client, error) {
	return r.find(GetDB(ctx, r.db).Where("user_id = ?", userID))
}

// ListAll returns every client
func (r *ClientRepository) ListAll(ctx context.Context) ([]*entities.Client, error) {
	return r.find(GetDB(ctx, r.db))
}

func (r *ClientRepository) find(query *gorm.DB) ([]*entities.Client, error) {
	var rows []models.Client
	if err := query.Order("created_at ASC").Find(&rows).Error; err != nil {
		return nil, err
	}
	out := make([]*entities.Client, 0, len(rows))
	for i := range rows {
		out = append(out, toClientEntity(&rows[i]))
	}
	return out, nil
}

func toClientEntity(m *models.Client) *entities.Client {
	return &entities.Client{
		ID:         m.ID,
		UserID:     m.UserID,
		ClientName: m.ClientName,
		Phone:      m.Phone,
		CaseRefNo:  m.CaseRefNo,
		CreatedAt:  m.CreatedAt,
		UpdatedAt:  m.UpdatedAt,
	}
}
