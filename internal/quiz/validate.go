package quiz

import (
	"errors"
	"strings"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

// Validate checks the non-empty invariants on question and answer. It returns
// a *ValidationError with one message per failed field, so callers can print
// them individually. Whitespace-only values count as empty.
func Validate(q *Quiz) error {
	checked := *q
	checked.Question = strings.TrimSpace(checked.Question)
	checked.Answer = strings.TrimSpace(checked.Answer)

	err := validate.Struct(checked)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return err
	}

	verr := &ValidationError{}
	for _, fe := range fieldErrs {
		verr.Messages = append(verr.Messages, strings.ToLower(fe.Field())+" must not be empty")
	}
	return verr
}
