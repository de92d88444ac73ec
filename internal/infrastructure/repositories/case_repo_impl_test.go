package repositories

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"github.com/volatiletech/null/v8"
	"lawconnect.backend/internal/domain/entities"
	domainerrors "lawconnect.backend/internal/domain/errors"
)

func TestCaseRepository_ScopedCRUD(t *testing.T) {
	db := newTestDB(t)
	users := NewUserRepository(db)
	repo := NewCaseRepository(db)
	ctx := context.Background()

	alice := seedUser(t, users, "alice@example.com")
	bob := seedUser(t, users, "bob@example.com")

	hearing := time.Date(2026, 5, 1, 10, 0, 0, 0, time.UTC)
	c := &entities.Case{
		UserID:      alice.ID,
		CaseRefNo:   101,
		CaseTitle:   "State v. Doe",
		ClientName:  "Doe",
		Status:      entities.CaseStatusPending,
		NextHearing: null.TimeFrom(hearing),
		Fees:        1000,
		PendingFees: 500,
	}
	require.NoError(t, repo.Create(ctx, c))
	require.NotEqual(t, uuid.Nil, c.ID)

	require.NoError(t, repo.Create(ctx, &entities.Case{UserID: alice.ID, CaseRefNo: 102, CaseTitle: "B", ClientName: "B", Status: entities.CaseStatusActive}))
	require.NoError(t, repo.Create(ctx, &entities.Case{UserID: bob.ID, CaseRefNo: 101, CaseTitle: "Bob's", ClientName: "X"}))

	aliceCases, err := repo.ListByUser(ctx, alice.ID)
	require.NoError(t, err)
	require.Len(t, aliceCases, 2)

	bobCases, err := repo.ListByUser(ctx, bob.ID)
	require.NoError(t, err)
	require.Len(t, bobCases, 1)
	require.Equal(t, "Bob's", bobCases[0].CaseTitle)

	pending, err := repo.ListPending(ctx, alice.ID)
	require.NoError(t, err)
	require.Len(t, pending, 1)
	require.Equal(t, int64(101), pending[0].CaseRefNo)
	require.True(t, pending[0].NextHearing.Valid)
	require.True(t, hearing.Equal(pending[0].NextHearing.Time))

	all, err := repo.ListAll(ctx)
	require.NoError(t, err)
	require.Len(t, all, 3)

	got, err := repo.GetByRef(ctx, alice.ID, 101)
	require.NoError(t, err)
	got.NextHearing = null.Time{}
	require.NoError(t, repo.Update(ctx, got))
	changed, err := repo.ChangeStatus(ctx, got.ID, alice.ID, entities.CaseStatusWon)
	require.NoError(t, err)
	require.True(t, changed)

	got, err = repo.GetByRef(ctx, alice.ID, 101)
	require.NoError(t, err)
	require.Equal(t, entities.CaseStatusWon, got.Status)
	require.False(t, got.NextHearing.Valid)

	require.ErrorIs(t, repo.DeleteByRef(ctx, bob.ID, 102), domainerrors.ErrNotFound)
	require.NoError(t, repo.DeleteByRef(ctx, alice.ID, 101))
	_, err = repo.GetByRef(ctx, alice.ID, 101)
	require.ErrorIs(t, err, domainerrors.ErrNotFound)

	_, err = repo.GetByRef(ctx, bob.ID, 101)
	require.NoError(t, err, "other owner's case with the same ref is untouched")
}

func TestCaseRepository_DuplicateRefPerOwner(t *testing.T) {
	db := newTestDB(t)
	users := NewUserRepository(db)
	repo := NewCaseRepository(db)
	ctx := context.Background()

	alice := seedUser(t, users, "alice@example.com")
	require.NoError(t, repo.Create(ctx, &entities.Case{UserID: alice.ID, CaseRefNo: 7, CaseTitle: "A", ClientName: "A"}))
	err := repo.Create(ctx, &entities.Case{UserID: alice.ID, CaseRefNo: 7, CaseTitle: "B", ClientName: "B"})
	require.ErrorIs(t, err, domainerrors.ErrAlreadyExists)
}

func TestCaseRepository_UpdateForeignCase(t *testing.T) {
	db := newTestDB(t)
	users := NewUserRepository(db)
	repo := NewCaseRepository(db)
	ctx := context.Background()

	alice := seedUser(t, users, "alice@example.com")
	c := &entities.Case{UserID: alice.ID, CaseRefNo: 1, CaseTitle: "A", ClientName: "A"}
	require.NoError(t, repo.Create(ctx, c))

	c.UserID = uuid.New()
	require.ErrorIs(t, repo.Update(ctx, c), domainerrors.ErrNotFound)
}

func TestCaseRepository_ChangeStatusOnlyOnce(t *testing.T) {
	db := newTestDB(t)
	users := NewUserRepository(db)
	repo := NewCaseRepository(db)
	ctx := context.Background()

	alice := seedUser(t, users, "alice@example.com")
	c := &entities.Case{UserID: alice.ID, CaseRefNo: 3, CaseTitle: "A", ClientName: "A", Status: entities.CaseStatusActive}
	require.NoError(t, repo.Create(ctx, c))

	// two writers that both read Active: only the first flips the row
	stale1, err := repo.GetByRef(ctx, alice.ID, 3)
	require.NoError(t, err)
	stale2, err := repo.GetByRef(ctx, alice.ID, 3)
	require.NoError(t, err)

	changed, err := repo.ChangeStatus(ctx, stale1.ID, alice.ID, entities.CaseStatusWon)
	require.NoError(t, err)
	require.True(t, changed)
	changed, err = repo.ChangeStatus(ctx, stale2.ID, alice.ID, entities.CaseStatusWon)
	require.NoError(t, err)
	require.False(t, changed)

	changed, err = repo.ChangeStatus(ctx, c.ID, uuid.New(), entities.CaseStatusLost)
	require.NoError(t, err)
	require.False(t, changed, "foreign owner cannot change status")

	// Update leaves status alone
	stale1.Status = entities.CaseStatusPending
	stale1.CaseTitle = "renamed"
	require.NoError(t, repo.Update(ctx, stale1))
	got, err := repo.GetByRef(ctx, alice.ID, 3)
	require.NoError(t, err)
	require.Equal(t, entities.CaseStatusWon, got.Status)
	require.Equal(t, "renamed", got.CaseTitle)
}
