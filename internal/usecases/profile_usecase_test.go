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
	"lawconnect.backend/pkg/utils"
)

func newProfileUsecaseForTest() (*usecases.ProfileUsecase, *MockUserRepository, *MockFileRepository, *memStore) {
	users := new(MockUserRepository)
	files := new(MockFileRepository)
	store := newMemStore()
	uow := new(MockUnitOfWork)
	uow.On("Do", mock.Anything, mock.Anything).Return(nil)
	uploads := usecases.NewUploadUsecase(users, files, store, uow)
	return usecases.NewProfileUsecase(users, uploads), users, files, store
}

func TestProfileUsecase_GetProfile(t *testing.T) {
	uc, users, _, _ := newProfileUsecaseForTest()
	user := &entities.User{ID: uuid.New(), Name: "A", Email: "a@example.com", CasesHandled: 3, CasesWon: 1, CasesLost: 1}
	users.On("GetByID", mock.Anything, user.ID).Return(user, nil).Once()

	profile, err := uc.GetProfile(context.Background(), user.ID)
	require.NoError(t, err)
	assert.Equal(t, 3, profile.CasesHandled)
	assert.Equal(t, 1, profile.CasesLost)
}

func TestProfileUsecase_UpdateProfile_FieldsOnly(t *testing.T) {
	uc, users, files, _ := newProfileUsecaseForTest()
	user := &entities.User{ID: uuid.New(), Name: "Old", Contact: "111", Age: 30}
	users.On("GetByID", mock.Anything, user.ID).Return(user, nil).Once()
	users.On("Update", mock.Anything, mock.MatchedBy(func(u *entities.User) bool {
		return u.Name == "New" && u.Contact == "111" && u.Age == 31
	})).Return(nil).Once()

	name, age := "New", 31
	updated, err := uc.UpdateProfile(context.Background(), user.ID, &entities.UpdateProfileInput{Name: &name, Age: &age}, nil)
	require.NoError(t, err)
	assert.Equal(t, "New", updated.Name)
	files.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestProfileUsecase_UpdateProfile_WithAvatar(t *testing.T) {
	uc, users, files, store := newProfileUsecaseForTest()
	user := &entities.User{ID: uuid.New(), Name: "Old"}
	users.On("GetByID", mock.Anything, user.ID).Return(user, nil).Once()
	users.On("Update", mock.Anything, mock.Anything).Return(nil).Once()
	files.On("Create", mock.Anything, mock.Anything).Return(nil).Once()

	contact := "9876543210"
	updated, err := uc.UpdateProfile(context.Background(), user.ID, &entities.UpdateProfileInput{Contact: &contact}, pngUpload())
	require.NoError(t, err)
	assert.Equal(t, contact, updated.Contact)
	assert.Contains(t, updated.ProfilePic, "/uploads/profilePic/profilePic-")
	assert.Len(t, store.objects, 1)
}

func TestProfileUsecase_UpdateProfile_Invalid(t *testing.T) {
	uc, _, _, _ := newProfileUsecaseForTest()
	age := -1
	_, err := uc.UpdateProfile(context.Background(), uuid.New(), &entities.UpdateProfileInput{Age: &age}, nil)
	assert.Equal(t, http.StatusBadRequest, statusOf(err))
}

func TestProfileUsecase_DeleteUser(t *testing.T) {
	uc, users, _, _ := newProfileUsecaseForTest()
	users.On("DeleteByEmail", mock.Anything, "a@example.com").Return(nil).Once()
	users.On("DeleteByEmail", mock.Anything, "none@example.com").Return(domainerrors.ErrNotFound).Once()

	require.NoError(t, uc.DeleteUser(context.Background(), "A@example.com"))
	assert.Equal(t, http.StatusNotFound, statusOf(uc.DeleteUser(context.Background(), "none@example.com")))
	assert.Equal(t, http.StatusBadRequest, statusOf(uc.DeleteUser(context.Background(), " ")))
}

func TestProfileUsecase_ListUsers(t *testing.T) {
	uc, users, _, _ := newProfileUsecaseForTest()
	page := []*entities.User{{Email: "a@example.com"}, {Email: "b@example.com"}}
	users.On("List", mock.Anything, 2, 2).Return(page, int64(5), nil).Once()

	got, meta, err := uc.ListUsers(context.Background(), utils.GetPaginationParams(2, 2))
	require.NoError(t, err)
	assert.Len(t, got, 2)
	assert.Equal(t, utils.PaginationMeta{Page: 2, Limit: 2, TotalCount: 5, TotalPages: 3}, meta)
}
