package validation

import (
	"fmt"
	"regexp"
	"strings"
	"sync"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"lawconnect.backend/internal/domain/entities"
)

var (
	phone10Pattern = regexp.MustCompile(`^[0-9]{10}$`)
	registerOnce   sync.Once
	registerErr    error
	emailChecker   = validator.New()
)

// RegisterValidators installs the domain tags on gin's binding engine.
// Safe to call more than once.
func RegisterValidators() error {
	registerOnce.Do(func() {
		v, ok := binding.Validator.Engine().(*validator.Validate)
		if !ok {
			registerErr = fmt.Errorf("unexpected binding engine %T", binding.Validator.Engine())
			return
		}
		registerErr = Register(v)
	})
	return registerErr
}

// Register adds phone10, paymentmode, casestatus and emailaddr to v.
func Register(v *validator.Validate) error {
	if err := v.RegisterValidation("emailaddr", validateEmailAddr); err != nil {
		return err
	}
	if err := v.RegisterValidation("phone10", validatePhone10); err != nil {
		return err
	}
	if err := v.RegisterValidation("paymentmode", validatePaymentMode); err != nil {
		return err
	}
	return v.RegisterValidation("casestatus", validateCaseStatus)
}

func validatePhone10(fl validator.FieldLevel) bool {
	return phone10Pattern.MatchString(fl.Field().String())
}

func validatePaymentMode(fl validator.FieldLevel) bool {
	return entities.PaymentMode(fl.Field().String()).IsValid()
}

func validateCaseStatus(fl validator.FieldLevel) bool {
	_, ok := entities.ParseCaseStatus(fl.Field().String())
	return ok
}

// emailaddr checks the address after trimming, so padded input reaches the
// usecase's normalization instead of failing here.
func validateEmailAddr(fl validator.FieldLevel) bool {
	return emailChecker.Var(strings.TrimSpace(fl.Field().String()), "email") == nil
}
