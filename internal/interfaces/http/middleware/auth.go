package middleware

import (
	"context"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"lawconnect.backend/internal/domain/entities"
	domainerrors "lawconnect.backend/internal/domain/errors"
	"lawconnect.backend/internal/interfaces/http/response"
	"lawconnect.backend/pkg/jwt"
	"lawconnect.backend/pkg/logger"
)

const (
	// TokenCookie is the session cookie name
	TokenCookie = "token"
	// AuthorizationHeader is the header key for authorization
	AuthorizationHeader = "Authorization"
	// BearerPrefix is the prefix for bearer tokens
	BearerPrefix = "Bearer "
	// UserKey is the context key for the resolved user
	UserKey = "user"
	// UserIDKey is the context key for user ID
	UserIDKey = "userId"
)

// SessionResolver turns a session token into the user it names
type SessionResolver interface {
	ResolveUser(ctx context.Context, token string) (*entities.User, *jwt.Claims, error)
}

// TokenFromRequest reads the session cookie, falling back to a bearer header
func TokenFromRequest(c *gin.Context) string {
	if token, err := c.Cookie(TokenCookie); err == nil && token != "" {
		return token
	}
	if header := c.GetHeader(AuthorizationHeader); strings.HasPrefix(header, BearerPrefix) {
		return strings.TrimSpace(strings.TrimPrefix(header, BearerPrefix))
	}
	return ""
}

// AuthMiddleware admits requests carrying a valid, unrevoked token for an existing user
func AuthMiddleware(resolver SessionResolver) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := TokenFromRequest(c)
		if token == "" {
			response.Abort(c, domainerrors.Unauthorized("Unauthorized: No token provided"))
			return
		}

		user, _, err := resolver.ResolveUser(c.Request.Context(), token)
		if err != nil {
			logger.Debug(c.Request.Context(), "Authentication rejected")
			response.Abort(c, err)
			return
		}

		c.Set(UserKey, user)
		c.Set(UserIDKey, user.ID)

		ctx := context.WithValue(c.Request.Context(), logger.UserIDKey, user.ID.String())
		c.Request = c.Request.WithContext(ctx)

		c.Next()
	}
}

// CurrentUser returns the user stored by AuthMiddleware
func CurrentUser(c *gin.Context) (*entities.User, bool) {
	v, exists := c.Get(UserKey)
	if !exists {
		return nil, false
	}
	user, ok := v.(*entities.User)
	return user, ok && user != nil
}

// GetUserID gets the user ID from context
func GetUserID(c *gin.Context) (uuid.UUID, bool) {
	v, exists := c.Get(UserIDKey)
	if !exists {
		return uuid.Nil, false
	}
	id, ok := v.(uuid.UUID)
	return id, ok
}
