package models

import (
	"time"

	"github.com/google/uuid"
)

type Client struct {
	ID         uuid.UUID `gorm:"type:uuid;primaryKey"`
	UserID     uuid.UUID `gorm:"type:uuid;not null;index"`
	ClientName string    `gorm:"type:varchar(255);not null"`
	Phone      string    `gorm:"type:varchar(10);not null"`
	CaseRefNo  int64     `gorm:"not null;uniqueIndex"`
	CreatedAt  time.Time
	UpdatedAt  time.Time
}
