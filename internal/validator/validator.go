package validator

import (
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/metinatakli/cinema-ticket-service/internal/domain"
)

func NewValidator() *validator.Validate {
	validator := validator.New(validator.WithRequiredStructEnabled())

	validator.RegisterTagNameFunc(jsonFieldName)
	validator.RegisterValidation("ticket_type", validateTicketType)

	return validator
}

func jsonFieldName(field reflect.StructField) string {
	name := strings.SplitN(field.Tag.Get("json"), ",", 2)[0]
	if name == "-" {
		return ""
	}

	return name
}

func validateTicketType(fl validator.FieldLevel) bool {
	return domain.TicketType(fl.Field().String()).Valid()
}

// FieldName returns the path of the failed field without the name of the
// top level struct, e.g. "tickets[0].type".
func FieldName(err validator.FieldError) string {
	namespace := err.Namespace()

	_, field, found := strings.Cut(namespace, ".")
	if !found {
		return namespace
	}

	return field
}

// ValidationMessage converts validator errors into readable messages
func ValidationMessage(err validator.FieldError) string {
	switch err.Tag() {
	case "required":
		return "is required"
	case "gte":
		return fmt.Sprintf("must be greater than or equal to %s", err.Param())
	case "gt":
		return fmt.Sprintf("must be greater than %s", err.Param())
	case "ticket_type":
		return "must be one of INFANT, CHILD, ADULT"
	default:
		return "is invalid"
	}
}
