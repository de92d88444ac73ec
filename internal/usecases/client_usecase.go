package usecases

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"lawconnect.backend/internal/domain/entities"
	domainerrors "lawconnect.backend/internal/domain/errors"
	"lawconnect.backend/internal/domain/repositories"
)

const duplicateClientRefMessage = "Case reference number already exists"

// ClientUsecase manages an advocate's clients
type ClientUsecase struct {
	clientRepo repositories.ClientRepository
}

func NewClientUsecase(clientRepo repositories.ClientRepository) *ClientUsecase {
	return &ClientUsecase{clientRepo: clientRepo}
}

func (u *ClientUsecase) List(ctx context.Context, userID uuid.UUID) ([]*entities.Client, error) {
	return u.clientRepo.ListByUser(ctx, userID)
}

func (u *ClientUsecase) ListAll(ctx context.Context) ([]*entities.Client, error) {
	return u.clientRepo.ListAll(ctx)
}

// Create rejects a case_ref_no already used by any client, whoever owns it
func (u *ClientUsecase) Create(ctx context.Context, userID uuid.UUID, input *entities.CreateClientInput) (*entities.Client, error) {
	if input.ClientName == "" || input.Phone == "" || input.CaseRefNo.Int64() <= 0 {
		return nil, domainerrors.BadRequest("Missing required client fields")
	}

	exists, err := u.clientRepo.ExistsByRef(ctx, input.CaseRefNo.Int64())
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, domainerrors.AlreadyExists(duplicateClientRefMessage)
	}

	client := &entities.Client{
		UserID:     userID,
		ClientName: input.ClientName,
		Phone:      input.Phone.String(),
		CaseRefNo:  input.CaseRefNo.Int64(),
	}
	if err := u.clientRepo.Create(ctx, client); err != nil {
		// a concurrent insert can still win the unique index
		if errors.Is(err, domainerrors.ErrAlreadyExists) {
			return nil, domainerrors.AlreadyExists(duplicateClientRefMessage)
		}
		return nil, err
	}
	return client, nil
}

// GetByCaseRef returns the caller's client for the reference number
func (u *ClientUsecase) GetByCaseRef(ctx context.Context, userID uuid.UUID, caseRefNo int64) (*entities.Client, error) {
	client, err := u.clientRepo.GetByRef(ctx, userID, caseRefNo)
	if err != nil {
		if errors.Is(err, domainerrors.ErrNotFound) {
			return nil, domainerrors.NotFound("Client not found")
		}
		return nil, err
	}
	return client, nil
}
