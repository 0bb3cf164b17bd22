// utils/validation.go
package utils

import (
	"errors"
	"fmt"
	"reflect"
	"regexp"
	"strings"
	"sync"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

var (
	phoneRegex   = regexp.MustCompile(`^\+?[0-9]{10,13}$`)
	upperRegex   = regexp.MustCompile(`[A-Z]`)
	lowerRegex   = regexp.MustCompile(`[a-z]`)
	digitRegex   = regexp.MustCompile(`[0-9]`)
	specialRegex = regexp.MustCompile(`[!@#$%^&*(),.?":{}|<>]`)

	registerOnce sync.Once
)

// maxPasswordBytes is the most bcrypt will hash.
const maxPasswordBytes = 72

// ValidatePhone accepts 10 to 13 digits with an optional leading +.
// Spaces are ignored.
func ValidatePhone(phone string) bool {
	cleaned := strings.ReplaceAll(phone, " ", "")
	return phoneRegex.MatchString(cleaned)
}

// ValidatePassword enforces the password policy and returns the first rule
// the password breaks.
func ValidatePassword(password string) error {
	switch {
	case len(password) < 8:
		return errors.New("Password must be at least 8 characters long")
	case len(password) > maxPasswordBytes:
		return errors.New("Password must be at most 72 bytes long")
	case !upperRegex.MatchString(password):
		return errors.New("Password must contain at least one uppercase letter")
	case !lowerRegex.MatchString(password):
		return errors.New("Password must contain at least one lowercase letter")
	case !digitRegex.MatchString(password):
		return errors.New("Password must contain at least one number")
	case !specialRegex.MatchString(password):
		return errors.New("Password must contain at least one special character")
	}
	return nil
}

// RegisterValidators hooks the custom rules into gin's validator and makes
// error messages use JSON field names.
func RegisterValidators() {
	registerOnce.Do(func() {
		v, ok := binding.Validator.Engine().(*validator.Validate)
		if !ok {
			return
		}
		v.RegisterTagNameFunc(func(fld reflect.StructField) string {
			name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
			if name == "-" {
				return ""
			}
			return name
		})
		_ = v.RegisterValidation("phone", func(fl validator.FieldLevel) bool {
			return ValidatePhone(fl.Field().String())
		})
	})
}

// ValidationMessage turns a binding error into a message fit for the client.
func ValidationMessage(err error) string {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) || len(verrs) == 0 {
		return "Invalid request body"
	}

	fe := verrs[0]
	field := fe.Field()
	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("%s is required", field)
	case "email":
		return "Invalid email address"
	case "phone":
		return "Invalid phone number"
	case "min":
		if fe.Kind() == reflect.String {
			return fmt.Sprintf("%s must be at least %s characters", field, fe.Param())
		}
		return fmt.Sprintf("%s must be at least %s", field, fe.Param())
	case "max":
		if fe.Kind() == reflect.String {
			return fmt.Sprintf("%s must be at most %s characters", field, fe.Param())
		}
		return fmt.Sprintf("%s must be at most %s", field, fe.Param())
	case "gt":
		return fmt.Sprintf("%s must be greater than %s", field, fe.Param())
	case "oneof":
		return fmt.Sprintf("%s must be one of: %s", field, strings.ReplaceAll(fe.Param(), " ", ", "))
	default:
		return fmt.Sprintf("%s is invalid", field)
	}
}
