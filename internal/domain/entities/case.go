package entities

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/volatiletech/null/v8"
)

// CaseStatus is the lifecycle state of a case
type CaseStatus string

const (
	CaseStatusActive  CaseStatus = "Active"
	CaseStatusPending CaseStatus = "Pending"
	CaseStatusClosed  CaseStatus = "Closed"
	CaseStatusWon     CaseStatus = "Won"
	CaseStatusLost    CaseStatus = "Lost"
)

var caseStatuses = []CaseStatus{
	CaseStatusActive,
	CaseStatusPending,
	CaseStatusClosed,
	CaseStatusWon,
	CaseStatusLost,
}

// ParseCaseStatus matches s case-insensitively against the known statuses
func ParseCaseStatus(s string) (CaseStatus, bool) {
	s = strings.TrimSpace(s)
	for _, status := range caseStatuses {
		if strings.EqualFold(s, string(status)) {
			return status, true
		}
	}
	return "", false
}

// IsOutcome reports whether the status records a verdict
func (s CaseStatus) IsOutcome() bool {
	return s == CaseStatusWon || s == CaseStatusLost
}

// Case is a matter handled by an advocate
type Case struct {
	ID          uuid.UUID  `json:"_id"`
	UserID      uuid.UUID  `json:"user"`
	CaseRefNo   int64      `json:"case_ref_no"`
	CaseTitle   string     `json:"caseTitle"`
	ClientName  string     `json:"clientName"`
	Status      CaseStatus `json:"status,omitempty"`
	NextHearing null.Time  `json:"nextHearing"`
	Fees        float64    `json:"fees"`
	PendingFees float64    `json:"pending_fees"`
	CreatedAt   time.Time  `json:"createdAt"`
	UpdatedAt   time.Time  `json:"updatedAt"`
}

// PendingCase is the projection served to the dashboard
type PendingCase struct {
	ID          uuid.UUID `json:"_id"`
	CaseTitle   string    `json:"caseTitle"`
	ClientName  string    `json:"clientName"`
	NextHearing null.Time `json:"nextHearing"`
}

// CreateCaseInput represents input for creating a case
type CreateCaseInput struct {
	CaseRefNo   FlexInt  `json:"case_ref_no" binding:"required"`
	CaseTitle   string   `json:"caseTitle" binding:"required"`
	ClientName  string   `json:"clientName" binding:"required"`
	Status      string   `json:"status" binding:"omitempty,casestatus"`
	NextHearing string   `json:"nextHearing"`
	Fees        *float64 `json:"fees"`
	PendingFees *float64 `json:"pending_fees"`
}

// UpdateCaseInput edits a case. Nil fields are kept; an empty NextHearing clears the date.
type UpdateCaseInput struct {
	CaseTitle   *string  `json:"caseTitle"`
	ClientName  *string  `json:"clientName"`
	Status      *string  `json:"status" binding:"omitempty,casestatus"`
	NextHearing string   `json:"nextHearing"`
	Fees        *float64 `json:"fees"`
	PendingFees *float64 `json:"pending_fees"`
}
