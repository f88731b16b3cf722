package ticket

import (
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"
)

var (
	ErrStatusRequired = errors.New("status is required")
	ErrInvalidForm    = errors.New("invalid update form")
)

var (
	validateOnce sync.Once
	validate     *validator.Validate
)

func formValidator() *validator.Validate {
	validateOnce.Do(func() {
		v := validator.New()
		_ = v.RegisterValidation("ticket_status", func(fl validator.FieldLevel) bool {
			return Status(fl.Field().String()).Valid()
		})
		validate = v
	})
	return validate
}

// Normalize returns the form as it is sent upstream: status lower-cased, text trimmed.
func (f UpdateForm) Normalize() UpdateForm {
	f.Status, _ = ParseStatus(string(f.Status))
	f.Comment = strings.TrimSpace(f.Comment)
	return f
}

// Validate checks the normalized form before anything is sent upstream.
func (f UpdateForm) Validate() error {
	f = f.Normalize()
	if f.Status == "" {
		return ErrStatusRequired
	}
	err := formValidator().Struct(f)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) && len(verrs) > 0 {
		fe := verrs[0]
		switch fe.Tag() {
		case "ticket_status":
			return fmt.Errorf("%w: unknown status %q", ErrInvalidForm, fe.Value())
		case "max":
			return fmt.Errorf("%w: %s must be at most %s characters", ErrInvalidForm, strings.ToLower(fe.Field()), fe.Param())
		}
		return fmt.Errorf("%w: %s failed %s", ErrInvalidForm, strings.ToLower(fe.Field()), fe.Tag())
	}
	return fmt.Errorf("%w: %v", ErrInvalidForm, err)
}
