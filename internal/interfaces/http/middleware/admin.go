package middleware

import (
	"crypto/subtle"

	"github.com/gin-gonic/gin"
	domainerrors "lawconnect.backend/internal/domain/errors"
	"lawconnect.backend/internal/interfaces/http/response"
)

// AdminTokenHeader carries the operator token for admin routes
const AdminTokenHeader = "X-Admin-Token"

// AdminMiddleware guards admin routes. An empty token disables them.
func AdminMiddleware(adminToken string) gin.HandlerFunc {
	return func(c *gin.Context) {
		if adminToken == "" {
			response.Abort(c, domainerrors.Forbidden("Admin access is disabled"))
			return
		}

		supplied := c.GetHeader(AdminTokenHeader)
		if subtle.ConstantTimeCompare([]byte(supplied), []byte(adminToken)) != 1 {
			response.Abort(c, domainerrors.Forbidden("Forbidden: Invalid admin token"))
			return
		}

		c.Next()
	}
}
