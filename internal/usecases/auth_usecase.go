package usecases

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"lawconnect.backend/internal/domain/entities"
	domainerrors "lawconnect.backend/internal/domain/errors"
	"lawconnect.backend/internal/domain/repositories"
	"lawconnect.backend/pkg/crypto"
	"lawconnect.backend/pkg/jwt"
)

// OTPMailer delivers signup codes
type OTPMailer interface {
	SendOTP(ctx context.Context, to string, code int) error
}

// TokenRevoker denylists session token ids until they expire
type TokenRevoker interface {
	Revoke(ctx context.Context, tokenID string, ttl time.Duration) error
	IsRevoked(ctx context.Context, tokenID string) (bool, error)
}

// AuthSession is an issued session token and the user it belongs to
type AuthSession struct {
	User   *entities.User
	Token  string
	Claims *jwt.Claims
}

var (
	hashPassword  = crypto.HashPassword
	checkPassword = crypto.CheckPassword
	generateOTP   = crypto.GenerateOTP
)

// AuthUsecase handles registration, login, signup codes and recovery
type AuthUsecase struct {
	userRepo   repositories.UserRepository
	otpRepo    repositories.OTPRepository
	mailer     OTPMailer
	jwtService *jwt.JWTService
	revoker    TokenRevoker
	otpTTL     time.Duration
	now        func() time.Time
}

// NewAuthUsecase creates a new auth usecase. revoker may be nil.
func NewAuthUsecase(
	userRepo repositories.UserRepository,
	otpRepo repositories.OTPRepository,
	mailer OTPMailer,
	jwtService *jwt.JWTService,
	revoker TokenRevoker,
	otpTTL time.Duration,
) *AuthUsecase {
	return &AuthUsecase{
		userRepo:   userRepo,
		otpRepo:    otpRepo,
		mailer:     mailer,
		jwtService: jwtService,
		revoker:    revoker,
		otpTTL:     otpTTL,
		now:        time.Now,
	}
}

// SessionTTL is the lifetime of issued tokens
func (u *AuthUsecase) SessionTTL() time.Duration {
	return u.jwtService.Expiry()
}

// Register creates an advocate account and signs them in
func (u *AuthUsecase) Register(ctx context.Context, input *entities.RegisterInput) (*AuthSession, error) {
	email := normalizeEmail(input.Email)
	if input.Name == "" || email == "" || input.Password == "" || input.SecretString == "" || input.Age <= 0 {
		return nil, domainerrors.BadRequest("All fields are required")
	}

	if err := u.ensureEmailFree(ctx, email, "User with this email already exists."); err != nil {
		return nil, err
	}

	passwordHash, err := hashPassword(input.Password)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}
	secretHash, err := hashPassword(input.SecretString)
	if err != nil {
		return nil, fmt.Errorf("hash secret: %w", err)
	}

	user := &entities.User{
		Email:        email,
		Name:         input.Name,
		Age:          int(input.Age),
		PasswordHash: passwordHash,
		SecretHash:   secretHash,
	}
	if err := u.userRepo.Create(ctx, user); err != nil {
		if errors.Is(err, domainerrors.ErrAlreadyExists) {
			return nil, domainerrors.AlreadyExists("User with this email already exists.")
		}
		return nil, err
	}

	return u.issue(user)
}

// Login checks the password and issues a fresh token
func (u *AuthUsecase) Login(ctx context.Context, input *entities.LoginInput) (*AuthSession, error) {
	user, err := u.userRepo.GetByEmail(ctx, normalizeEmail(input.Email))
	if err != nil {
		if errors.Is(err, domainerrors.ErrNotFound) {
			return nil, domainerrors.Unauthorized("Invalid credentials")
		}
		return nil, err
	}

	if !checkPassword(input.Password, user.PasswordHash) {
		return nil, domainerrors.Unauthorized("Invalid credentials")
	}

	return u.issue(user)
}

// RequestSignupOTP emails a fresh code, replacing any pending one for the address
func (u *AuthUsecase) RequestSignupOTP(ctx context.Context, input *entities.SignupOTPInput) error {
	email := normalizeEmail(input.Email)
	if input.Name == "" || email == "" || input.Age <= 0 {
		return domainerrors.BadRequest("Name, email and age are required")
	}

	if err := u.ensureEmailFree(ctx, email, "User with this email already exists. Please login."); err != nil {
		return err
	}

	code, err := generateOTP()
	if err != nil {
		return fmt.Errorf("generate otp: %w", err)
	}
	if err := u.mailer.SendOTP(ctx, email, code); err != nil {
		return fmt.Errorf("send otp: %w", err)
	}

	return u.otpRepo.Upsert(ctx, &entities.OTP{
		Email:     email,
		Code:      code,
		Type:      entities.OTPTypeEmail,
		CreatedAt: u.now(),
	})
}

// VerifySignupOTP consumes a live code. The account itself is created by Register.
func (u *AuthUsecase) VerifySignupOTP(ctx context.Context, input *entities.VerifyOTPInput) error {
	email := normalizeEmail(input.Email)
	otp, err := u.otpRepo.GetLive(ctx, email, u.now().Add(-u.otpTTL))
	if err != nil {
		if errors.Is(err, domainerrors.ErrNotFound) {
			return domainerrors.NotFound("OTP not found or expired. Please request a new one.")
		}
		return err
	}

	if int64(otp.Code) != input.OTP.Int64() {
		return domainerrors.NewError("Incorrect OTP. Please try again.", domainerrors.ErrInvalidOTP)
	}

	return u.otpRepo.Delete(ctx, email)
}

// VerifyRecoverySecret compares the supplied secret with the stored hash
func (u *AuthUsecase) VerifyRecoverySecret(ctx context.Context, input *entities.RecoverySecretInput) error {
	user, err := u.userRepo.GetByEmail(ctx, normalizeEmail(input.Email))
	if err != nil {
		if errors.Is(err, domainerrors.ErrNotFound) {
			return domainerrors.NotFound("Email not found")
		}
		return err
	}

	if !checkPassword(input.SecretString, user.SecretHash) {
		return domainerrors.Unauthorized("Incorrect secret phrase")
	}
	return nil
}

// ResetPassword sets the password to the value carried in SecretString
func (u *AuthUsecase) ResetPassword(ctx context.Context, input *entities.RecoverySecretInput) error {
	email := normalizeEmail(input.Email)
	if email == "" || input.SecretString == "" {
		return domainerrors.BadRequest("Email and new password are required.")
	}

	user, err := u.userRepo.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, domainerrors.ErrNotFound) {
			return domainerrors.NotFound("User not found")
		}
		return err
	}

	passwordHash, err := hashPassword(input.SecretString)
	if err != nil {
		return fmt.Errorf("hash password: %w", err)
	}
	return u.userRepo.UpdatePassword(ctx, user.ID, passwordHash)
}

// Logout denylists the token for the rest of its lifetime. Unparseable tokens are ignored.
func (u *AuthUsecase) Logout(ctx context.Context, token string) error {
	if token == "" || u.revoker == nil {
		return nil
	}
	claims, err := u.jwtService.ValidateToken(token)
	if err != nil {
		return nil
	}
	return u.revoker.Revoke(ctx, claims.TokenID(), claims.ExpiresIn(u.now()))
}

// VerifyToken validates the token and checks the denylist
func (u *AuthUsecase) VerifyToken(ctx context.Context, token string) (*jwt.Claims, error) {
	if token == "" {
		return nil, domainerrors.Unauthorized("Unauthorized: No token provided")
	}

	claims, err := u.jwtService.ValidateToken(token)
	if err != nil {
		return nil, domainerrors.NewAppError(http.StatusForbidden, domainerrors.CodeForbidden, "Forbidden: Invalid token", err)
	}

	if u.revoker != nil {
		revoked, err := u.revoker.IsRevoked(ctx, claims.TokenID())
		if err != nil {
			return nil, fmt.Errorf("check revocation: %w", err)
		}
		if revoked {
			return nil, domainerrors.Forbidden("Forbidden: Token revoked")
		}
	}
	return claims, nil
}

// ResolveUser verifies the token and loads the user it names
func (u *AuthUsecase) ResolveUser(ctx context.Context, token string) (*entities.User, *jwt.Claims, error) {
	claims, err := u.VerifyToken(ctx, token)
	if err != nil {
		return nil, nil, err
	}

	user, err := u.userRepo.GetByID(ctx, claims.UserID)
	if err != nil {
		if errors.Is(err, domainerrors.ErrNotFound) {
			return nil, nil, domainerrors.Unauthorized("Unauthorized: User not found")
		}
		return nil, nil, err
	}
	return user, claims, nil
}

func (u *AuthUsecase) ensureEmailFree(ctx context.Context, email, message string) error {
	_, err := u.userRepo.GetByEmail(ctx, email)
	if err == nil {
		return domainerrors.AlreadyExists(message)
	}
	if !errors.Is(err, domainerrors.ErrNotFound) {
		return err
	}
	return nil
}

func (u *AuthUsecase) issue(user *entities.User) (*AuthSession, error) {
	token, claims, err := u.jwtService.Issue(user.ID, user.Email)
	if err != nil {
		return nil, fmt.Errorf("issue token: %w", err)
	}
	return &AuthSession{User: user, Token: token, Claims: claims}, nil
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
