package repositories

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"lawconnect.backend/internal/domain/entities"
	"lawconnect.backend/internal/infrastructure/models"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:%s_%d?mode=memory&cache=shared", t.Name(), time.Now().UnixNano())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{TranslateError: true})
	require.NoError(t, err, "open sqlite")
	require.NoError(t, db.AutoMigrate(models.All()...), "migrate")
	return db
}

func seedUser(t *testing.T, repo *UserRepository, email string) *entities.User {
	t.Helper()
	u := &entities.User{
		Email:        email,
		Name:         "Advocate",
		Age:          30,
		PasswordHash: "hash",
		SecretHash:   "secret",
	}
	require.NoError(t, repo.Create(context.Background(), u))
	require.NotEqual(t, uuid.Nil, u.ID)
	return u
}

func seedUserCtx(t *testing.T, ctx context.Context, repo *UserRepository, email string) *entities.User {
	t.Helper()
	u := &entities.User{Email: email, Name: "Advocate", Age: 30, PasswordHash: "hash", SecretHash: "secret"}
	require.NoError(t, repo.Create(ctx, u))
	return u
}
