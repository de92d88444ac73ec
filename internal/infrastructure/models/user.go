package models

import (
	"time"

	"github.com/google/uuid"
)

type User struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey"`
	Email        string    `gorm:"type:varchar(255);uniqueIndex;not null"`
	Name         string    `gorm:"type:varchar(100);not null"`
	Age          int       `gorm:"not null"`
	Contact      string    `gorm:"type:varchar(50);not null;default:''"`
	PasswordHash string    `gorm:"type:varchar(255);not null"`
	SecretHash   string    `gorm:"type:varchar(255);not null"`
	ProfilePic   string    `gorm:"type:varchar(512);not null;default:''"`
	CasesHandled int       `gorm:"not null;default:0"`
	CasesWon     int       `gorm:"not null;default:0"`
	CasesLost    int       `gorm:"not null;default:0"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
