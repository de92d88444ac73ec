package usecases

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/volatiletech/null/v8"
	"lawconnect.backend/internal/domain/entities"
	domainerrors "lawconnect.backend/internal/domain/errors"
	"lawconnect.backend/internal/domain/repositories"
)

// CaseUsecase manages an advocate's cases and the counters they drive
type CaseUsecase struct {
	caseRepo repositories.CaseRepository
	userRepo repositories.UserRepository
	uow      repositories.UnitOfWork
}

func NewCaseUsecase(caseRepo repositories.CaseRepository, userRepo repositories.UserRepository, uow repositories.UnitOfWork) *CaseUsecase {
	return &CaseUsecase{caseRepo: caseRepo, userRepo: userRepo, uow: uow}
}

// List returns the caller's cases
func (u *CaseUsecase) List(ctx context.Context, userID uuid.UUID) ([]*entities.Case, error) {
	return u.caseRepo.ListByUser(ctx, userID)
}

// ListAll returns every case regardless of owner
func (u *CaseUsecase) ListAll(ctx context.Context) ([]*entities.Case, error) {
	return u.caseRepo.ListAll(ctx)
}

// Create stores the case and bumps the owner's casesHandled in one transaction
func (u *CaseUsecase) Create(ctx context.Context, userID uuid.UUID, input *entities.CreateCaseInput) (*entities.Case, error) {
	if input.CaseRefNo.Int64() <= 0 || input.CaseTitle == "" || input.ClientName == "" {
		return nil, domainerrors.BadRequest("Missing required case fields")
	}

	c := &entities.Case{
		UserID:     userID,
		CaseRefNo:  input.CaseRefNo.Int64(),
		CaseTitle:  input.CaseTitle,
		ClientName: input.ClientName,
	}
	if input.Status != "" {
		status, ok := entities.ParseCaseStatus(input.Status)
		if !ok {
			return nil, domainerrors.BadRequest("Invalid case status")
		}
		c.Status = status
	}
	hearing, err := parseHearing(input.NextHearing)
	if err != nil {
		return nil, err
	}
	c.NextHearing = hearing
	if input.Fees != nil {
		c.Fees = *input.Fees
	}
	if input.PendingFees != nil {
		c.PendingFees = *input.PendingFees
	}

	err = u.uow.Do(ctx, func(txCtx context.Context) error {
		if err := u.caseRepo.Create(txCtx, c); err != nil {
			return err
		}
		return u.userRepo.IncrementCounters(txCtx, userID, 1, 0, 0)
	})
	if err != nil {
		if errors.Is(err, domainerrors.ErrAlreadyExists) {
			return nil, domainerrors.AlreadyExists("Case reference number already exists")
		}
		return nil, err
	}
	return c, nil
}

// Update edits the caller's case. Moving into Won or Lost bumps the matching counter once.
func (u *CaseUsecase) Update(ctx context.Context, userID uuid.UUID, caseRefNo int64, input *entities.UpdateCaseInput) (*entities.Case, error) {
	var updated *entities.Case
	err := u.uow.Do(ctx, func(txCtx context.Context) error {
		c, err := u.caseRepo.GetByRef(txCtx, userID, caseRefNo)
		if err != nil {
			return err
		}
		previous := c.Status

		if input.CaseTitle != nil {
			c.CaseTitle = *input.CaseTitle
		}
		if input.ClientName != nil {
			c.ClientName = *input.ClientName
		}
		if input.Status != nil {
			if *input.Status == "" {
				c.Status = ""
			} else {
				status, ok := entities.ParseCaseStatus(*input.Status)
				if !ok {
					return domainerrors.BadRequest("Invalid case status")
				}
				c.Status = status
			}
		}
		hearing, err := parseHearing(input.NextHearing)
		if err != nil {
			return err
		}
		c.NextHearing = hearing
		if input.Fees != nil {
			c.Fees = *input.Fees
		}
		if input.PendingFees != nil {
			c.PendingFees = *input.PendingFees
		}

		if err := u.caseRepo.Update(txCtx, c); err != nil {
			return err
		}
		if c.Status == previous {
			updated = c
			return nil
		}

		changed, err := u.caseRepo.ChangeStatus(txCtx, c.ID, userID, c.Status)
		if err != nil {
			return err
		}
		if changed && c.Status.IsOutcome() {
			won, lost := 0, 0
			if c.Status == entities.CaseStatusWon {
				won = 1
			} else {
				lost = 1
			}
			if err := u.userRepo.IncrementCounters(txCtx, userID, 0, won, lost); err != nil {
				return err
			}
		}
		updated = c
		return nil
	})
	if err != nil {
		if errors.Is(err, domainerrors.ErrNotFound) {
			return nil, domainerrors.NotFound("Case not found")
		}
		return nil, err
	}
	return updated, nil
}

// Delete removes the caller's case by reference number
func (u *CaseUsecase) Delete(ctx context.Context, userID uuid.UUID, caseRefNo int64) error {
	if err := u.caseRepo.DeleteByRef(ctx, userID, caseRefNo); err != nil {
		if errors.Is(err, domainerrors.ErrNotFound) {
			return domainerrors.NotFound("Case not found")
		}
		return err
	}
	return nil
}

// Hearings lists the next hearing of each of the caller's cases, null when unset
func (u *CaseUsecase) Hearings(ctx context.Context, userID uuid.UUID) ([]null.Time, error) {
	cases, err := u.caseRepo.ListByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	hearings := make([]null.Time, 0, len(cases))
	for _, c := range cases {
		hearings = append(hearings, c.NextHearing)
	}
	return hearings, nil
}

// Pending lists the caller's cases in Pending status
func (u *CaseUsecase) Pending(ctx context.Context, userID uuid.UUID) ([]entities.PendingCase, error) {
	cases, err := u.caseRepo.ListPending(ctx, userID)
	if err != nil {
		return nil, err
	}
	pending := make([]entities.PendingCase, 0, len(cases))
	for _, c := range cases {
		pending = append(pending, entities.PendingCase{
			ID:          c.ID,
			CaseTitle:   c.CaseTitle,
			ClientName:  c.ClientName,
			NextHearing: c.NextHearing,
		})
	}
	return pending, nil
}

// parseHearing maps an empty value to no hearing
func parseHearing(s string) (null.Time, error) {
	if s == "" {
		return null.Time{}, nil
	}
	t, err := entities.ParseDate(s)
	if err != nil {
		return null.Time{}, domainerrors.BadRequest("Invalid nextHearing date")
	}
	return null.TimeFrom(t), nil
}
