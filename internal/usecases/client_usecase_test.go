package usecases_test

import (
	"context"
	"net/http"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"lawconnect.backend/internal/domain/entities"
	domainerrors "lawconnect.backend/internal/domain/errors"
	"lawconnect.backend/internal/usecases"
)

func TestClientUsecase_Create(t *testing.T) {
	repo := new(MockClientRepository)
	uc := usecases.NewClientUsecase(repo)
	owner := uuid.New()

	repo.On("ExistsByRef", mock.Anything, int64(42)).Return(false, nil).Once()
	repo.On("Create", mock.Anything, mock.MatchedBy(func(c *entities.Client) bool {
		return c.UserID == owner && c.Phone == "9876543210" && c.CaseRefNo == 42
	})).Return(nil).Once()

	client, err := uc.Create(context.Background(), owner, &entities.CreateClientInput{ClientName: "Jane", Phone: "9876543210", CaseRefNo: 42})
	require.NoError(t, err)
	assert.Equal(t, "Jane", client.ClientName)
}

func TestClientUsecase_Create_GlobalDuplicateRef(t *testing.T) {
	repo := new(MockClientRepository)
	uc := usecases.NewClientUsecase(repo)

	repo.On("ExistsByRef", mock.Anything, int64(42)).Return(true, nil).Once()
	_, err := uc.Create(context.Background(), uuid.New(), &entities.CreateClientInput{ClientName: "Other", Phone: "9876543210", CaseRefNo: 42})
	assert.Equal(t, http.StatusBadRequest, statusOf(err))
	assert.ErrorIs(t, err, domainerrors.ErrAlreadyExists)
	repo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)

	repo.On("ExistsByRef", mock.Anything, int64(43)).Return(false, nil).Once()
	repo.On("Create", mock.Anything, mock.Anything).Return(domainerrors.ErrAlreadyExists).Once()
	_, err = uc.Create(context.Background(), uuid.New(), &entities.CreateClientInput{ClientName: "Racer", Phone: "9876543210", CaseRefNo: 43})
	assert.Equal(t, http.StatusBadRequest, statusOf(err))
}

func TestClientUsecase_Create_MissingFields(t *testing.T) {
	repo := new(MockClientRepository)
	uc := usecases.NewClientUsecase(repo)
	_, err := uc.Create(context.Background(), uuid.New(), &entities.CreateClientInput{ClientName: "x"})
	assert.Equal(t, http.StatusBadRequest, statusOf(err))
}

func TestClientUsecase_GetByCaseRef(t *testing.T) {
	repo := new(MockClientRepository)
	uc := usecases.NewClientUsecase(repo)
	owner := uuid.New()
	repo.On("GetByRef", mock.Anything, owner, int64(1)).Return(&entities.Client{CaseRefNo: 1}, nil).Once()
	repo.On("GetByRef", mock.Anything, owner, int64(2)).Return(nil, domainerrors.ErrNotFound).Once()

	c, err := uc.GetByCaseRef(context.Background(), owner, 1)
	require.NoError(t, err)
	assert.Equal(t, int64(1), c.CaseRefNo)

	_, err = uc.GetByCaseRef(context.Background(), owner, 2)
	assert.Equal(t, http.StatusNotFound, statusOf(err))
	assert.Equal(t, "Client not found", domainerrors.FromError(err).Message)
}
