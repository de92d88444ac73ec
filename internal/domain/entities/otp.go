package entities

import "time"

// OTPType is the delivery channel of a code
type OTPType string

const (
	OTPTypeEmail OTPType = "email"
	OTPTypeSMS   OTPType = "sms"
)

// OTP is a pending signup verification code, one per email
type OTP struct {
	Email     string
	Code      int
	Type      OTPType
	CreatedAt time.Time
}

// Expired reports whether the code is older than ttl at now
func (o *OTP) Expired(now time.Time, ttl time.Duration) bool {
	return !o.CreatedAt.After(now.Add(-ttl))
}
