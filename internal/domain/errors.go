package domain

import "errors"

// Business-rule rejections. These are returned as values, surfaced to the
// end user as readable messages, and never escape as faults. Storage
// failures are the exception: they are wrapped and propagate to the
// generic handler instead.
var (
	ErrInvalidSymbol      = errors.New("symbol must not be blank")
	ErrInvalidShares      = errors.New("shares must be a positive whole number")
	ErrInvalidAction      = errors.New("action must be buy or sell")
	ErrInvalidPrice       = errors.New("price must be positive")
	ErrQuoteUnavailable   = errors.New("symbol unavailable")
	ErrInsufficientFunds  = errors.New("not enough cash")
	ErrInsufficientShares = errors.New("cannot sell more shares than owned")
	ErrNotFound           = errors.New("not found")
	ErrUsernameTaken      = errors.New("username not available")
)

// IsRejection reports whether err is a business-rule rejection rather
// than an internal failure.
func IsRejection(err error) bool {
	for _, rejection := range []error{
		ErrInvalidSymbol,
		ErrInvalidShares,
		ErrInvalidAction,
		ErrInvalidPrice,
		ErrQuoteUnavailable,
		ErrInsufficientFunds,
		ErrInsufficientShares,
		ErrNotFound,
		ErrUsernameTaken,
	} {
		if errors.Is(err, rejection) {
			return true
		}
	}
	return false
}
