package validate

import "fmt"

// Principal is a validated, address-like actor identity. Values are only
// produced by a Validator, so holding a Principal implies the underlying
// string already passed network-specific validation.
type Principal string

// String returns the principal as the raw address string.
func (p Principal) String() string {
	return string(p)
}

// Validator turns wire-format principal strings into validated Principals.
// Implementations are supplied by the embedding system (for example, wrapping
// the chain's bech32 address check).
type Validator interface {
	Validate(raw string) (Principal, error)
}

// ValidatorFunc adapts a plain function to the Validator interface.
type ValidatorFunc func(raw string) (Principal, error)

// Validate calls the wrapped function.
func (f ValidatorFunc) Validate(raw string) (Principal, error) {
	return f(raw)
}

// NotValidError reports a value that failed validation, carrying the kind of
// value expected and the validator's reason.
type NotValidError struct {
	Kind   string
	Reason string
}

// Error returns the formatted validation error string.
func (e NotValidError) Error() string {
	return fmt.Sprintf("not a valid %s: %s", e.Kind, e.Reason)
}

// NewNotValidError creates a validation error with kind and reason.
func NewNotValidError(kind, reason string) error {
	return NotValidError{Kind: kind, Reason: reason}
}
