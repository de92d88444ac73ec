package models

import (
	"time"

	"github.com/google/uuid"
)

type File struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey"`
	UserID       uuid.UUID `gorm:"type:uuid;not null;index"`
	OriginalName string    `gorm:"type:varchar(255);not null"`
	Filename     string    `gorm:"type:varchar(255);not null"`
	Path         string    `gorm:"type:varchar(512);not null"`
	Size         int64     `gorm:"not null"`
	Type         string    `gorm:"type:varchar(100)"`
	CreatedAt    time.Time
}
