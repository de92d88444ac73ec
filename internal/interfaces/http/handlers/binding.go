package handlers

import (
	"errors"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	domainerrors "lawconnect.backend/internal/domain/errors"
	"lawconnect.backend/internal/interfaces/http/middleware"
	"lawconnect.backend/internal/interfaces/http/response"
)

var tagMessages = map[string]string{
	"phone10":     "Phone number must be exactly 10 digits",
	"paymentmode": "Invalid payment mode",
	"casestatus":  "Invalid case status",
	"emailaddr":   "Invalid email address",
}

// bindError turns a binding failure into a 400. Missing fields report
// fallback; custom validators report their own message.
func bindError(err error, fallback string) error {
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) {
		for _, fe := range verrs {
			if msg, ok := tagMessages[fe.Tag()]; ok {
				return domainerrors.BadRequest(msg)
			}
		}
		return domainerrors.BadRequest(fallback)
	}
	return domainerrors.BadRequest(fallback)
}

func bindJSON(c *gin.Context, dst interface{}, fallback string) bool {
	if err := c.ShouldBindJSON(dst); err != nil {
		response.Error(c, bindError(err, fallback))
		return false
	}
	return true
}

func requireUserID(c *gin.Context) (uuid.UUID, bool) {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		response.Error(c, domainerrors.Unauthorized("Unauthorized: No token provided"))
		return uuid.Nil, false
	}
	return user.ID, true
}

func caseRefParam(c *gin.Context) (int64, bool) {
	ref, err := strconv.ParseInt(c.Param("case_ref_no"), 10, 64)
	if err != nil {
		response.Error(c, domainerrors.BadRequest("Invalid case reference number"))
		return 0, false
	}
	return ref, true
}

// orEmpty keeps list endpoints returning [] rather than null
func orEmpty[T any](items []T) []T {
	if items == nil {
		return []T{}
	}
	return items
}
