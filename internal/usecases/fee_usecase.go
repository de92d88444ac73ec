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

// FeeUsecase manages fee records. Amounts are stored as supplied.
type FeeUsecase struct {
	feeRepo repositories.FeeRepository
}

func NewFeeUsecase(feeRepo repositories.FeeRepository) *FeeUsecase {
	return &FeeUsecase{feeRepo: feeRepo}
}

func (u *FeeUsecase) List(ctx context.Context, userID uuid.UUID) ([]*entities.Fee, error) {
	return u.feeRepo.ListByUser(ctx, userID)
}

func (u *FeeUsecase) Create(ctx context.Context, userID uuid.UUID, input *entities.CreateFeeInput) (*entities.Fee, error) {
	if input.CaseRefNo == "" || input.ClientName == "" || input.Fees == nil || input.AmountPaid == nil ||
		input.PendingFees == nil || input.PaymentMode == "" || input.DueDate == "" {
		return nil, domainerrors.BadRequest("All required fields (case_ref_no, clientName, fees, amount_paid, pending_fees, payment_mode, due_date) are required.")
	}

	mode := entities.PaymentMode(input.PaymentMode)
	if !mode.IsValid() {
		return nil, domainerrors.BadRequest("Invalid payment mode")
	}
	due, err := entities.ParseDate(input.DueDate)
	if err != nil {
		return nil, domainerrors.BadRequest("Invalid due_date")
	}

	fee := &entities.Fee{
		UserID:      userID,
		CaseRefNo:   input.CaseRefNo.String(),
		ClientName:  input.ClientName,
		Fees:        *input.Fees,
		AmountPaid:  *input.AmountPaid,
		PendingFees: *input.PendingFees,
		PaymentMode: mode,
		DueDate:     due,
		Remarks:     null.StringFromPtr(input.Remarks),
	}
	if err := u.feeRepo.Create(ctx, fee); err != nil {
		return nil, err
	}
	return fee, nil
}

// Update applies the non-nil fields to the caller's fee record
func (u *FeeUsecase) Update(ctx context.Context, userID, id uuid.UUID, input *entities.UpdateFeeInput) (*entities.Fee, error) {
	fee, err := u.feeRepo.GetByID(ctx, userID, id)
	if err != nil {
		return nil, feeNotFound(err)
	}

	if input.CaseRefNo != nil {
		fee.CaseRefNo = input.CaseRefNo.String()
	}
	if input.ClientName != nil {
		fee.ClientName = *input.ClientName
	}
	if input.Fees != nil {
		fee.Fees = *input.Fees
	}
	if input.AmountPaid != nil {
		fee.AmountPaid = *input.AmountPaid
	}
	if input.PendingFees != nil {
		fee.PendingFees = *input.PendingFees
	}
	if input.PaymentMode != nil {
		mode := entities.PaymentMode(*input.PaymentMode)
		if !mode.IsValid() {
			return nil, domainerrors.BadRequest("Invalid payment mode")
		}
		fee.PaymentMode = mode
	}
	if input.DueDate != nil {
		due, err := entities.ParseDate(*input.DueDate)
		if err != nil {
			return nil, domainerrors.BadRequest("Invalid due_date")
		}
		fee.DueDate = due
	}
	if input.Remarks != nil {
		fee.Remarks = null.StringFrom(*input.Remarks)
	}

	if err := u.feeRepo.Update(ctx, fee); err != nil {
		return nil, feeNotFound(err)
	}
	return fee, nil
}

func (u *FeeUsecase) Delete(ctx context.Context, userID, id uuid.UUID) error {
	if err := u.feeRepo.Delete(ctx, userID, id); err != nil {
		return feeNotFound(err)
	}
	return nil
}

func feeNotFound(err error) error {
	if errors.Is(err, domainerrors.ErrNotFound) {
		return domainerrors.NotFound("Fee record not found")
	}
	return err
}
