package interest

import "errors"

var (
	ErrInterestNotFound  = errors.New("interest not found")
	ErrDuplicateInterest = errors.New("driver already registered interest in this freight")
	ErrInvalidTransition = errors.New("invalid interest status transition")
)
