package serrors

import (
	"errors"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

// FieldViolation names an input field and the validation rule it broke.
type FieldViolation struct {
	Field string `json:"field"`
	Rule  string `json:"rule"`
}

// NewValidator returns a validator reporting fields by their JSON names, so
// violations match what clients sent.
func NewValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name, _, _ := strings.Cut(f.Tag.Get("json"), ",")
		if name == "-" {
			return ""
		}

		return name
	})

	return v
}

// Invalid reports a failed validation of subject as ErrBadRequest. The
// violations of a validator.ValidationErrors are listed per field; errors of
// validator.Var carry no field name and are attributed to subject.
func Invalid(err error, subject string) *Error {
	e := Wrap(ErrBadRequest, err, "invalid %s", subject)

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return e
	}
	for _, fe := range fieldErrs {
		field := fe.Namespace()
		// drop the struct name heading the namespace
		if _, rest, ok := strings.Cut(field, "."); ok {
			field = rest
		}
		if field == "" {
			field = subject
		}
		e.violations = append(e.violations, FieldViolation{Field: field, Rule: fe.Tag()})
	}

	return e
}

// Violations returns the field violations of e.
func (e *Error) Violations() []FieldViolation { return e.violations }

// ViolationsOf returns the field violations of the first *Error in err's chain
// that has any.
func ViolationsOf(err error) []FieldViolation {
	for err != nil {
		var e *Error
		if !errors.As(err, &e) {
			return nil
		}
		if len(e.violations) > 0 {
			return e.violations
		}
		err = e.err
	}

	return nil
}

// Retryable reports whether err is of a kind worth retrying unchanged later.
func Retryable(err error) bool {
	switch KindOf(err) {
	case ErrTimeout, ErrUnavailable, ErrRateLimited:
		return true
	default:
		return false
	}
}

// WithViolations attaches field violations to e and returns it.
func (e *Error) WithViolations(violations ...FieldViolation) *Error {
	e.violations = append(e.violations, violations...)

	return e
}
