package xcosm

import (
	"errors"

	"github.com/mintthemoon/xcosm/xcosm/auth"
	"github.com/mintthemoon/xcosm/xcosm/coin"
	"github.com/mintthemoon/xcosm/xcosm/fund"
	"github.com/mintthemoon/xcosm/xcosm/safe"
	"github.com/mintthemoon/xcosm/xcosm/validate"
)

// Response represents a business error with code, title, and message. The
// original module error stays wrapped so errors.Is/As classification keeps
// working through the business layer.
type Response struct {
	EntityType string `json:"entityType,omitempty"`
	Title      string `json:"title,omitempty"`
	Message    string `json:"message,omitempty"`
	Code       string `json:"code,omitempty"`
	Err        error  `json:"err,omitempty"`
}

func (e Response) Error() string {
	return e.Message
}

// Unwrap exposes the underlying module error.
func (e Response) Unwrap() error {
	return e.Err
}

// ValidateBusinessError maps a module error to the appropriate business error
// with code, title, and message. Defect-class errors (internal invariant
// violations) map to an internal error response so embedding systems can tell
// bugs apart from bad caller input. Unrecognized errors pass through
// unchanged.
//
// Parameters:
//   - err: the error to be classified.
//   - entityType: the type of the entity related to the error.
func ValidateBusinessError(err error, entityType string) error {
	switch {
	case errors.Is(err, auth.ErrUnauthorized):
		return Response{
			EntityType: entityType,
			Code:       "UNAUTHORIZED",
			Title:      "Unauthorized Request",
			Message:    "The requestor is not permitted to perform this action. Please verify the configured authorization policy.",
			Err:        err,
		}
	case errors.Is(err, fund.ErrOverclaimed):
		return Response{
			EntityType: entityType,
			Code:       "DISTRIBUTION_OVERCLAIMED",
			Title:      "Distribution Overclaimed",
			Message:    "Distribution claims exceed 100% of the available share. Please reduce the claims and try again.",
			Err:        err,
		}
	case errors.Is(err, fund.ErrUnclaimed):
		return Response{
			EntityType: entityType,
			Code:       "DISTRIBUTION_UNCLAIMED",
			Title:      "Distribution Unclaimed",
			Message:    "The distribution has no claimants. Add at least one claim before distributing funds.",
			Err:        err,
		}
	case errors.Is(err, safe.ErrOverflow):
		return Response{
			EntityType: entityType,
			Code:       "AMOUNT_OVERFLOW",
			Title:      "Amount Overflow",
			Message:    "The operation could not be completed because an amount exceeded the representable range. Please check the values and try again.",
			Err:        err,
		}
	case errors.Is(err, safe.ErrUnderflow):
		return Response{
			EntityType: entityType,
			Code:       "AMOUNT_UNDERFLOW",
			Title:      "Amount Underflow",
			Message:    "The operation could not be completed because an amount would become negative. Please check the values and try again.",
			Err:        err,
		}
	case errors.Is(err, safe.ErrDivisionByZero), errors.Is(err, safe.ErrAmountOutOfRange):
		return Response{
			EntityType: entityType,
			Code:       "AMOUNT_INVALID",
			Title:      "Invalid Amount",
			Message:    "The operation received an amount outside the accepted range. Please check the values and try again.",
			Err:        err,
		}
	}

	var coinErr coin.Error
	if errors.As(err, &coinErr) {
		return coinBusinessError(coinErr, entityType, err)
	}

	var notValid validate.NotValidError
	if errors.As(err, &notValid) {
		return Response{
			EntityType: entityType,
			Code:       "NOT_VALID",
			Title:      "Validation Failed",
			Message:    notValid.Error(),
			Err:        err,
		}
	}

	return err
}

func coinBusinessError(coinErr coin.Error, entityType string, err error) error {
	switch coinErr.Code {
	case coin.ErrorDuplicateDenom:
		return Response{
			EntityType: entityType,
			Code:       string(coin.ErrorDuplicateDenom),
			Title:      "Duplicate Denomination",
			Message:    "The provided coins contain the same denomination more than once. Please merge the entries and try again.",
			Err:        err,
		}
	case coin.ErrorInsufficient:
		return Response{
			EntityType: entityType,
			Code:       string(coin.ErrorInsufficient),
			Title:      "Insufficient Coins",
			Message:    "The operation could not be completed due to insufficient coins. Please provide the expected denominations and amounts.",
			Err:        err,
		}
	case coin.ErrorNotExact:
		return Response{
			EntityType: entityType,
			Code:       string(coin.ErrorNotExact),
			Title:      "Exact Coins Required",
			Message:    "The provided coins do not exactly match the expected coins. Please adjust the amounts and try again.",
			Err:        err,
		}
	case coin.ErrorNotEmpty:
		return Response{
			EntityType: entityType,
			Code:       string(coin.ErrorNotEmpty),
			Title:      "Unexpected Coins",
			Message:    "This action does not accept coins, but some were provided. Please retry without attaching funds.",
			Err:        err,
		}
	case coin.ErrorEmpty:
		return Response{
			EntityType: entityType,
			Code:       string(coin.ErrorEmpty),
			Title:      "Coins Required",
			Message:    "This action requires coins, but none were provided. Please attach funds and try again.",
			Err:        err,
		}
	case coin.ErrorIoMismatch, coin.ErrorUnexpected:
		// Internal invariant violations: surface as a defect, not user input.
		return Response{
			EntityType: entityType,
			Code:       "INTERNAL_ERROR",
			Title:      "Internal Error",
			Message:    "An internal inconsistency was detected while processing coins. This indicates a defect; please report it.",
			Err:        err,
		}
	default:
		return err
	}
}
