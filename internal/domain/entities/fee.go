package entities

import (
	"time"

	"github.com/google/uuid"
	"github.com/volatiletech/null/v8"
)

// PaymentMode is how a fee instalment was paid
type PaymentMode string

// "creadit_card" is kept as spelled; stored records and clients use it.
const (
	PaymentModeCash         PaymentMode = "cash"
	PaymentModeCard         PaymentMode = "card"
	PaymentModeOnline       PaymentMode = "online_payment"
	PaymentModeBankTransfer PaymentMode = "bank_transfer"
	PaymentModeCreditCard   PaymentMode = "creadit_card"
	PaymentModeOther        PaymentMode = "other"
)

// IsValid reports whether m is a known payment mode
func (m PaymentMode) IsValid() bool {
	switch m {
	case PaymentModeCash, PaymentModeCard, PaymentModeOnline,
		PaymentModeBankTransfer, PaymentModeCreditCard, PaymentModeOther:
		return true
	}
	return false
}

// Fee is a billing record. PendingFees is stored as given, never derived.
type Fee struct {
	ID          uuid.UUID   `json:"_id"`
	UserID      uuid.UUID   `json:"user"`
	CaseRefNo   string      `json:"case_ref_no"`
	ClientName  string      `json:"clientName"`
	Fees        float64     `json:"fees"`
	AmountPaid  float64     `json:"amount_paid"`
	PendingFees float64     `json:"pending_fees"`
	PaymentMode PaymentMode `json:"payment_mode"`
	DueDate     time.Time   `json:"due_date"`
	Remarks     null.String `json:"remarks"`
	CreatedAt   time.Time   `json:"createdAt"`
	UpdatedAt   time.Time   `json:"updatedAt"`
}

// CreateFeeInput represents input for creating a fee record
type CreateFeeInput struct {
	CaseRefNo   FlexString `json:"case_ref_no" binding:"required"`
	ClientName  string     `json:"clientName" binding:"required"`
	Fees        *float64   `json:"fees" binding:"required"`
	AmountPaid  *float64   `json:"amount_paid" binding:"required"`
	PendingFees *float64   `json:"pending_fees" binding:"required"`
	PaymentMode string     `json:"payment_mode" binding:"required,paymentmode"`
	DueDate     string     `json:"due_date" binding:"required"`
	Remarks     *string    `json:"remarks"`
}

// UpdateFeeInput is a partial update; nil fields are kept
type UpdateFeeInput struct {
	CaseRefNo   *FlexString `json:"case_ref_no"`
	ClientName  *string     `json:"clientName"`
	Fees        *float64    `json:"fees"`
	AmountPaid  *float64    `json:"amount_paid"`
	PendingFees *float64    `json:"pending_fees"`
	PaymentMode *string     `json:"payment_mode" binding:"omitempty,paymentmode"`
	DueDate     *string     `json:"due_date"`
	Remarks     *string     `json:"remarks"`
}
