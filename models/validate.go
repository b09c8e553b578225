package models

import (
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New(validator.WithRequiredStructEnabled())

// ValidationError blocks a save with a field-named, user-facing message.
type ValidationError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

func (e *ValidationError) Error() string { return e.Message }

var fieldMessages = map[string]string{
	"CustomerName":  "Please enter customer name",
	"Number":        "Please enter document number",
	"Date":          "Please select document date",
	"DueDate":       "Please select due date",
	"ValidUntil":    "Please select valid until date",
	"StartDate":     "Please select start date",
	"EndDate":       "Please select end date",
	"ProjectName":   "Please enter project name",
	"VehicleNumber": "Please enter vehicle number",
}

// checkRequired runs struct-tag validation and converts the first failure
// into a user-facing ValidationError.
func checkRequired(v interface{}) error {
	err := validate.Struct(v)
	if err == nil {
		return nil
	}
	errs, ok := err.(validator.ValidationErrors)
	if !ok || len(errs) == 0 {
		return err
	}
	fe := errs[0]
	msg, ok := fieldMessages[fe.Field()]
	if !ok {
		msg = fmt.Sprintf("Please provide %s", strings.ToLower(fe.Field()))
	}
	return &ValidationError{Field: fe.Field(), Message: msg}
}

func hasText(s string) bool {
	return strings.TrimSpace(s) != ""
}
