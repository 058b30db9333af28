package entities

import "errors"

var (
	ErrOrderNotFound    = errors.New("order not found")
	ErrCustomerNotFound = errors.New("customer not found")
	ErrMealNotFound     = errors.New("meal not found")
)

// ValidationError reports a rejected request field with a human-readable
// reason. Checks short-circuit, so the reason always names the first failing
// field.
type ValidationError struct {
	Reason string
}

func NewValidationError(reason string) ValidationError {
	return ValidationError{Reason: reason}
}

func (e ValidationError) Error() string {
	return e.Reason
}

// IsValidation reports whether err is (or wraps) a ValidationError.
func IsValidation(err error) bool {
	var ve ValidationError
	return errors.As(err, &ve)
}
