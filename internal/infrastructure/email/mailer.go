package email

import (
	"context"
	"errors"
	"fmt"

	"github.com/resend/resend-go/v2"
	"go.uber.org/zap"
	"lawconnect.backend/pkg/logger"
)

// Mailer delivers one-time signup codes.
type Mailer interface {
	SendOTP(ctx context.Context, to string, code int) error
}

type resendSender interface {
	SendWithContext(ctx context.Context, params *resend.SendEmailRequest) (*resend.SendEmailResponse, error)
}

// ResendMailer sends through Resend. Without an API key it only logs the code.
type ResendMailer struct {
	sender resendSender
	from   string
}

func NewResendMailer(apiKey, from string) *ResendMailer {
	m := &ResendMailer{from: from}
	if apiKey != "" {
		m.sender = resend.NewClient(apiKey).Emails
	}
	return m
}

// DevMode reports whether mail is logged instead of sent.
func (m *ResendMailer) DevMode() bool {
	return m.sender == nil
}

func (m *ResendMailer) SendOTP(ctx context.Context, to string, code int) error {
	if to == "" {
		return errors.New("recipient is required")
	}
	subject, text, html := otpEmail(code)

	if m.DevMode() {
		logger.Info(ctx, "Email sent (dev mode)",
			zap.String("type", "signup_otp"),
			zap.String("to", to),
			zap.String("subject", subject),
			zap.Int("otp", code),
		)
		return nil
	}

	_, err := m.sender.SendWithContext(ctx, &resend.SendEmailRequest{
		From:    m.from,
		To:      []string{to},
		Subject: subject,
		Text:    text,
		Html:    html,
	})
	if err != nil {
		return fmt.Errorf("failed to send otp email: %w", err)
	}
	logger.Info(ctx, "Email sent", zap.String("type", "signup_otp"), zap.String("to", to))
	return nil
}

func otpEmail(code int) (subject, text, html string) {
	subject = "Your LawConnect verification code"
	text = fmt.Sprintf("Your OTP for LawConnect signup is %d. It expires in 5 minutes.", code)
	html = fmt.Sprintf("<p>Your OTP for LawConnect signup is <strong>%d</strong>.</p><p>It expires in 5 minutes.</p>", code)
	return subject, text, html
}
