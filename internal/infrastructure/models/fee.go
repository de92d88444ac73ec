package models

import (
	"time"

	"github.com/google/uuid"
)

type Fee struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey"`
	UserID      uuid.UUID `gorm:"type:uuid;not null;index"`
	CaseRefNo   string    `gorm:"type:varchar(64);not null"`
	ClientName  string    `gorm:"type:varchar(255);not null"`
	Fees        float64   `gorm:"not null"`
	AmountPaid  float64   `gorm:"not null"`
	PendingFees float64   `gorm:"not null"`
	PaymentMode string    `gorm:"type:varchar(32);not null"`
	DueDate     time.Time `gorm:"not null"`
	Remarks     *string   `gorm:"type:text"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
