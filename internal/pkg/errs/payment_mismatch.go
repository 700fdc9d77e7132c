package errs

import (
	"errors"
	"fmt"
)

var ErrPaymentMismatch = errors.New("payment mismatch")

// PaymentMismatchError reports a completion payment that differs from the agreed price.
type PaymentMismatchError struct {
	Expected int64
	Actual   int64
}

func NewPaymentMismatchError(expected, actual int64) *PaymentMismatchError {
	return &PaymentMismatchError{
		Expected: expected,
		Actual:   actual,
	}
}

func (e *PaymentMismatchError) Error() string {
	return fmt.Sprintf("%s: expected %d, got %d", ErrPaymentMismatch, e.Expected, e.Actual)
}

func (e *PaymentMismatchError) Unwrap() error {
	return ErrPaymentMismatch
}
