package entities

import (
	"time"

	"github.com/google/uuid"
)

// Client is a person represented in one case. CaseRefNo is unique across all clients.
type Client struct {
	ID         uuid.UUID `json:"_id"`
	UserID     uuid.UUID `json:"user"`
	ClientName string    `json:"client_name"`
	Phone      string    `json:"phone"`
	CaseRefNo  int64     `json:"case_ref_no"`
	CreatedAt  time.Time `json:"createdAt"`
	UpdatedAt  time.Time `json:"updatedAt"`
}

// CreateClientInput represents input for creating a client
type CreateClientInput struct {
	ClientName string     `json:"client_name" binding:"required"`
	Phone      FlexString `json:"phone" binding:"required,phone10"`
	CaseRefNo  FlexInt    `json:"case_ref_no" binding:"required"`
}
