package domain

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidCustomer = errors.New("invalid customer")
	ErrInvalidOrder    = errors.New("invalid order")
	ErrInvalidAsset    = errors.New("invalid asset")
	ErrInvalidArgument = errors.New("invalid argument")

	ErrBalanceNotFound = errors.New("balance not found")
	ErrOrderNotFound   = errors.New("order not found")
)

// SystemError wraps an unexpected store failure so that business errors
// stay distinguishable from infrastructure ones at the boundary.
type SystemError struct {
	Op    string
	Cause error
}

func NewSystemError(op string, cause error) *SystemError {
	return &SystemError{Op: op, Cause: cause}
}

func (e *SystemError) Error() string {
	return fmt.Sprintf("%s failed due to system error: %v", e.Op, e.Cause)
}

func (e *SystemError) Unwrap() error {
	return e.Cause
}

// IsBusinessError reports whether err is a business-rule violation that
// must be surfaced to the caller verbatim.
func IsBusinessError(err error) bool {
	return errors.Is(err, ErrInvalidCustomer) ||
		errors.Is(err, ErrInvalidOrder) ||
		errors.Is(err, ErrInvalidAsset) ||
		errors.Is(err, ErrInvalidArgument)
}
