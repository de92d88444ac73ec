package models

import "time"

// OTP holds at most one pending code per email.
type OTP struct {
	Email     string    `gorm:"type:varchar(255);primaryKey"`
	Code      int       `gorm:"column:otp;not null"`
	Type      string    `gorm:"type:varchar(10);not null;default:'email'"`
	CreatedAt time.Time `gorm:"not null;index"`
}

func (OTP) TableName() string {
	return "otps"
}
