package repositories

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"lawconnect.backend/internal/domain/entities"
)

func TestFileRepository_Create(t *testing.T) {
	db := newTestDB(t)
	repo := NewFileRepository(db)

	f := &entities.File{
		UserID:       uuid.New(),
		OriginalName: "me.png",
		Filename:     "profilePic-1-2.png",
		Path:         "profilePic/profilePic-1-2.png",
		Size:         42,
		Type:         "image/png",
	}
	require.NoError(t, repo.Create(context.Background(), f))
	require.NotEqual(t, uuid.Nil, f.ID)
	require.False(t, f.CreatedAt.IsZero())

	var count int64
	require.NoError(t, db.Table("files").Count(&count).Error)
	require.Equal(t, int64(1), count)
}
