package handlers

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"lawconnect.backend/internal/domain/entities"
	"lawconnect.backend/internal/interfaces/http/middleware"
	"lawconnect.backend/internal/interfaces/http/response"
	"lawconnect.backend/internal/usecases"
	"lawconnect.backend/pkg/jwt"
	"lawconnect.backend/pkg/logger"
)

type authService interface {
	Register(ctx context.Context, input *entities.RegisterInput) (*usecases.AuthSession, error)
	Login(ctx context.Context, input *entities.LoginInput) (*usecases.AuthSession, error)
	RequestSignupOTP(ctx context.Context, input *entities.SignupOTPInput) error
	VerifySignupOTP(ctx context.Context, input *entities.VerifyOTPInput) error
	VerifyRecoverySecret(ctx context.Context, input *entities.RecoverySecretInput) error
	ResetPassword(ctx context.Context, input *entities.RecoverySecretInput) error
	Logout(ctx context.Context, token string) error
	VerifyToken(ctx context.Context, token string) (*jwt.Claims, error)
	SessionTTL() time.Duration
}

// AuthHandler handles authentication endpoints
type AuthHandler struct {
	authUsecase authService
	production  bool
}

// NewAuthHandler creates a new auth handler. In production the session
// cookie is Secure and SameSite=None so the SPA can live on another origin.
func NewAuthHandler(authUsecase authService, production bool) *AuthHandler {
	return &AuthHandler{
		authUsecase: authUsecase,
		production:  production,
	}
}

func (h *AuthHandler) setSessionCookie(c *gin.Context, token string, maxAge int) {
	sameSite := http.SameSiteLaxMode
	if h.production {
		sameSite = http.SameSiteNoneMode
	}
	c.SetSameSite(sameSite)
	c.SetCookie(middleware.TokenCookie, token, maxAge, "/", "", h.production, true)
}

func (h *AuthHandler) startSession(c *gin.Context, session *usecases.AuthSession) {
	h.setSessionCookie(c, session.Token, int(h.authUsecase.SessionTTL()/time.Second))
}

// Register handles advocate registration
// POST /api/auth/register
func (h *AuthHandler) Register(c *gin.Context) {
	var input entities.RegisterInput
	if !bindJSON(c, &input, "All fields are required") {
		return
	}

	session, err := h.authUsecase.Register(c.Request.Context(), &input)
	if err != nil {
		response.Error(c, err)
		return
	}

	h.startSession(c, session)
	response.Message(c, http.StatusOK, "User registered successfully")
}

// Login handles user login
// POST /api/auth/login
func (h *AuthHandler) Login(c *gin.Context) {
	var input entities.LoginInput
	if !bindJSON(c, &input, "Email and password are required") {
		return
	}

	session, err := h.authUsecase.Login(c.Request.Context(), &input)
	if err != nil {
		response.Error(c, err)
		return
	}

	h.startSession(c, session)
	response.Success(c, http.StatusOK, gin.H{
		"message": "Login successful",
		"token":   session.Token,
	})
}

// RequestOTP emails a signup verification code
// POST /api/auth/advocate
func (h *AuthHandler) RequestOTP(c *gin.Context) {
	var input entities.SignupOTPInput
	if !bindJSON(c, &input, "Name, email and age are required") {
		return
	}

	if err := h.authUsecase.RequestSignupOTP(c.Request.Context(), &input); err != nil {
		response.Error(c, err)
		return
	}
	response.Message(c, http.StatusOK, "OTP sent successfully")
}

// VerifyOTP consumes a signup code
// POST /api/auth/verifyotp
func (h *AuthHandler) VerifyOTP(c *gin.Context) {
	var input entities.VerifyOTPInput
	if !bindJSON(c, &input, "Email and OTP are required") {
		return
	}

	if err := h.authUsecase.VerifySignupOTP(c.Request.Context(), &input); err != nil {
		response.Error(c, err)
		return
	}
	response.Message(c, http.StatusOK, "OTP verified successfully. You can now complete your registration.")
}

// VerifySecret checks the recovery secret before a password reset
// POST /api/auth/existing
func (h *AuthHandler) VerifySecret(c *gin.Context) {
	var input entities.RecoverySecretInput
	if !bindJSON(c, &input, "Email and secret phrase are required") {
		return
	}

	if err := h.authUsecase.VerifyRecoverySecret(c.Request.Context(), &input); err != nil {
		response.Error(c, err)
		return
	}
	response.Message(c, http.StatusOK, "Verification successful")
}

// ResetPassword sets a new password
// POST /api/auth/reset-password
func (h *AuthHandler) ResetPassword(c *gin.Context) {
	var input entities.RecoverySecretInput
	if !bindJSON(c, &input, "Email and new password are required.") {
		return
	}

	if err := h.authUsecase.ResetPassword(c.Request.Context(), &input); err != nil {
		response.Error(c, err)
		return
	}
	response.Message(c, http.StatusOK, "Password reset successfully")
}

// Logout clears the session cookie and revokes the token
// POST /api/auth/logout
func (h *AuthHandler) Logout(c *gin.Context) {
	if err := h.authUsecase.Logout(c.Request.Context(), middleware.TokenFromRequest(c)); err != nil {
		// the cookie is cleared regardless
		logger.Error(c.Request.Context(), "Failed to revoke session", zap.Error(err))
	}

	h.setSessionCookie(c, "", -1)
	response.Message(c, http.StatusOK, "Logged out successfully")
}

// VerifyToken reports whether the caller's token is still valid
// GET /api/auth/verify-token
func (h *AuthHandler) VerifyToken(c *gin.Context) {
	claims, err := h.authUsecase.VerifyToken(c.Request.Context(), middleware.TokenFromRequest(c))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{
		"valid": true,
		"user":  claims,
	})
}
