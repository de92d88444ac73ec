package models

import (
	"time"

	"github.com/google/uuid"
)

// Case rows are unique per (user_id, case_ref_no).
type Case struct {
	ID          uuid.UUID  `gorm:"type:uuid;primaryKey"`
	UserID      uuid.UUID  `gorm:"type:uuid;not null;uniqueIndex:idx_cases_user_ref"`
	CaseRefNo   int64      `gorm:"not null;uniqueIndex:idx_cases_user_ref"`
	CaseTitle   string     `gorm:"type:varchar(255);not null"`
	ClientName  string     `gorm:"type:varchar(255);not null"`
	Status      string     `gorm:"type:varchar(20);index"`
	NextHearing *time.Time `gorm:"type:timestamp"`
	Fees        float64    `gorm:"not null;default:0"`
	PendingFees float64    `gorm:"not null;default:0"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

func (Case) TableName() string {
	return "cases"
}
