package errs

import "errors"

// Domain-specific sentinel errors shared by command/query usecases
var (
	// Search errors
	ErrUnsupportedSortKey   = errors.New("unsupported sort key")
	ErrInvalidSortDirection = errors.New("invalid sort direction")
	ErrInvalidAmount        = errors.New("amount is not a decimal number")

	// Lookup errors
	ErrUserNotFound  = errors.New("user not found")
	ErrOfferNotFound = errors.New("offer not found")
	ErrCarNotFound   = errors.New("car not found")

	// Input errors
	ErrEmptyUserID   = errors.New("empty user id")
	ErrInvalidUserID = errors.New("invalid user id")

	// Quote errors
	ErrQuoteDeclined = errors.New("quote declined")
)
