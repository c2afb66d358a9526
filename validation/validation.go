// Package validation holds the format rules for contact fields.
package validation

import (
	"log"
	"regexp"

	"github.com/go-playground/validator"

	"github.com/aplata/agenda/models"
)

var (
	// 7 to 15 decimal digits, nothing else.
	phoneRegexp = regexp.MustCompile(`^\d{7,15}$`)

	// local@domain.tld shape: no spaces, no extra '@', a dot after the '@'.
	emailRegexp = regexp.MustCompile(`^[^@\s]+@[^@\s]+\.[^@\s]+$`)

	validate = newValidator()
)

func newValidator() *validator.Validate {
	v := validator.New()
	if err := RegisterValidators(v); err != nil {
		log.Panic(err)
	}
	return v
}

// RegisterValidators adds the agenda's custom field rules to the given
// validator instance.
func RegisterValidators(validate *validator.Validate) error {
	err := validate.RegisterValidation("contact_phone", func(fl validator.FieldLevel) bool {
		return phoneRegexp.MatchString(fl.Field().String())
	})
	if err != nil {
		return err
	}

	return validate.RegisterValidation("contact_email", func(fl validator.FieldLevel) bool {
		return emailRegexp.MatchString(fl.Field().String())
	})
}

// IsValidPhone reports whether phone consists of 7 to 15 digits.
func IsValidPhone(phone string) bool {
	return validate.Var(phone, "required,contact_phone") == nil
}

// IsValidEmail reports whether email has the minimal user@domain.tld shape.
func IsValidEmail(email string) bool {
	return validate.Var(email, "required,contact_email") == nil
}

// Record checks a whole contact against the field rules.
func Record(c models.Contact) error {
	return validate.Struct(c)
}
