package entities

import (
	"time"

	"github.com/google/uuid"
)

// User is a registered advocate. Cases, clients and fees reference it by UserID.
type User struct {
	ID           uuid.UUID `json:"id"`
	Email        string    `json:"email"`
	Name         string    `json:"name"`
	Age          int       `json:"age"`
	Contact      string    `json:"contact"`
	PasswordHash string    `json:"-"`
	SecretHash   string    `json:"-"`
	ProfilePic   string    `json:"profilePic"`
	CasesHandled int       `json:"casesHandled"`
	CasesWon     int       `json:"casesWon"`
	CasesLost    int       `json:"casesLost"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

// Profile is the public view of a user
type Profile struct {
	Name         string `json:"name"`
	Email        string `json:"email"`
	Age          int    `json:"age"`
	Contact      string `json:"contact"`
	CasesHandled int    `json:"casesHandled"`
	CasesWon     int    `json:"casesWon"`
	CasesLost    int    `json:"casesLost"`
	ProfilePic   string `json:"profilePic"`
}

// Profile projects the user onto its public view
func (u *User) Profile() Profile {
	return Profile{
		Name:         u.Name,
		Email:        u.Email,
		Age:          u.Age,
		Contact:      u.Contact,
		CasesHandled: u.CasesHandled,
		CasesWon:     u.CasesWon,
		CasesLost:    u.CasesLost,
		ProfilePic:   u.ProfilePic,
	}
}

// RegisterInput represents input for creating an advocate account
type RegisterInput struct {
	Name         string  `json:"name" binding:"required"`
	Age          FlexInt `json:"age" binding:"required"`
	Email        string  `json:"email" binding:"required,emailaddr"`
	Password     string  `json:"password" binding:"required"`
	SecretString string  `json:"secretString" binding:"required"`
}

// LoginInput represents input for user login
type LoginInput struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// SignupOTPInput requests a verification code for a new email
type SignupOTPInput struct {
	Name  string  `json:"name" binding:"required"`
	Email string  `json:"email" binding:"required,emailaddr"`
	Age   FlexInt `json:"age" binding:"required"`
}

// VerifyOTPInput carries the code typed by the user
type VerifyOTPInput struct {
	Email string  `json:"email" binding:"required"`
	OTP   FlexInt `json:"otp" binding:"required"`
}

// RecoverySecretInput carries the recovery secret, or the new password on reset
type RecoverySecretInput struct {
	Email        string `json:"email" binding:"required"`
	SecretString string `json:"secretString" binding:"required"`
}

// UpdateProfileInput holds the editable profile fields; nil leaves a field unchanged
type UpdateProfileInput struct {
	Name    *string `form:"name"`
	Age     *int    `form:"age"`
	Contact *string `form:"contact"`
}
