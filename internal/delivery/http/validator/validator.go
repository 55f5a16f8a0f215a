// Package validator adapts go-playground/validator to echo and to the application error model.
package validator

import (
	"fmt"
	"reflect"
	"strings"
	"unicode"

	domainerrors "tnp/internal/domain/errors"

	"github.com/go-playground/validator/v10"
	"github.com/pkg/errors"
)

// PasswordMessage is reported when a password misses a required character class.
const PasswordMessage = "Password must include uppercase, lowercase, number, and special character"

// Validator implements echo.Validator.
type Validator struct {
	validate *validator.Validate
}

// New creates a Validator with the project's custom rules registered.
func New() *Validator {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(jsonName)
	if err := v.RegisterValidation("password", isStrongPassword); err != nil {
		panic(err)
	}

	return &Validator{validate: v}
}

// Validate checks i and converts rule failures into a validation error (422)
// whose fields are keyed by JSON name.
func (v *Validator) Validate(i any) error {
	err := v.validate.Struct(i)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return domainerrors.BadRequest("Invalid request body").WithCause(err)
	}

	items := make([]domainerrors.ValidationItem, 0, len(verrs))
	for _, fe := range verrs {
		items = append(items, domainerrors.ValidationItem{
			Path: fieldPath(fe),
			Msg:  message(fe),
		})
	}

	return domainerrors.Validation("", items)
}

// isStrongPassword requires at least one lowercase, uppercase, digit and special character.
func isStrongPassword(fl validator.FieldLevel) bool {
	var lower, upper, digit, special bool
	for _, r := range fl.Field().String() {
		switch {
		case unicode.IsLower(r):
			lower = true
		case unicode.IsUpper(r):
			upper = true
		case unicode.IsDigit(r):
			digit = true
		default:
			special = true
		}
	}

	return lower && upper && digit && special
}

func jsonName(fld reflect.StructField) string {
	name, _, _ := strings.Cut(fld.Tag.Get("json"), ",")
	switch name {
	case "-":
		return ""
	case "":
		return fld.Name
	default:
		return name
	}
}

// fieldPath drops the root struct name: "SigninRequest.email" -> "email".
func fieldPath(fe validator.FieldError) string {
	ns := fe.Namespace()
	if _, rest, ok := strings.Cut(ns, "."); ok {
		return rest
	}

	return fe.Field()
}

func message(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "Required"
	case "email":
		return "Invalid email"
	case "url":
		return "Invalid url"
	case "uuid", "uuid4":
		return "Invalid uuid"
	case "password":
		return PasswordMessage
	case "oneof":
		return fmt.Sprintf("Invalid enum value. Expected one of: %s", strings.ReplaceAll(fe.Param(), " ", ", "))
	case "len":
		if isString(fe) {
			return fmt.Sprintf("String must contain exactly %s character(s)", fe.Param())
		}

		return fmt.Sprintf("Must have exactly %s item(s)", fe.Param())
	case "min", "gte":
		if isString(fe) {
			return fmt.Sprintf("String must contain at least %s character(s)", fe.Param())
		}

		return fmt.Sprintf("Number must be greater than or equal to %s", fe.Param())
	case "max", "lte":
		if isString(fe) {
			return fmt.Sprintf("String must contain at most %s character(s)", fe.Param())
		}

		return fmt.Sprintf("Number must be less than or equal to %s", fe.Param())
	case "gt":
		return fmt.Sprintf("Number must be greater than %s", fe.Param())
	default:
		return fmt.Sprintf("Failed on the '%s' rule", fe.Tag())
	}
}

func isString(fe validator.FieldError) bool {
	return fe.Kind() == reflect.String
}
