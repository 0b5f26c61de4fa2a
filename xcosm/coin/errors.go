package coin

import "fmt"

// ErrorCode is a domain error code used by coin validations.
type ErrorCode string

const (
	// ErrorDuplicateDenom indicates a coin list contains the same denom twice.
	ErrorDuplicateDenom ErrorCode = "DUPLICATE_DENOM"
	// ErrorInsufficient indicates a denom is missing or below the expected amount.
	ErrorInsufficient ErrorCode = "INSUFFICIENT"
	// ErrorNotExact indicates the set differs from the exact expected coins.
	ErrorNotExact ErrorCode = "NOT_EXACT"
	// ErrorNotEmpty indicates coins were provided where none are allowed.
	ErrorNotEmpty ErrorCode = "NOT_EMPTY"
	// ErrorEmpty indicates coins are required but none are present.
	ErrorEmpty ErrorCode = "EMPTY"
	// ErrorIoMismatch indicates input and output coins of a transfer differ in value.
	ErrorIoMismatch ErrorCode = "IO_MISMATCH"
	// ErrorUnexpected indicates an internal invariant violation; treat as a defect.
	ErrorUnexpected ErrorCode = "UNEXPECTED"
)

// Error represents a structured coin domain validation error.
type Error struct {
	Code    ErrorCode
	Denom   string
	Message string
}

// Error returns the formatted domain error string.
func (e Error) Error() string {
	if e.Denom == "" {
		return fmt.Sprintf("%s: %s", e.Code, e.Message)
	}

	return fmt.Sprintf("%s: %s (%s)", e.Code, e.Message, e.Denom)
}

// NewError creates a coin domain error with code, denom, and message.
func NewError(code ErrorCode, denom, message string) error {
	return Error{Code: code, Denom: denom, Message: message}
}
