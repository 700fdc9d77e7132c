package errs

import (
	"errors"
	"fmt"
)

var ErrStateIsInvalid = errors.New("state is invalid")

// StateIsInvalidError reports an operation that is not allowed in the current lifecycle status.
// Nothing is changed when it is returned.
type StateIsInvalidError struct {
	State  string
	Action string
	Cause  error
}

func NewStateIsInvalidError(state, action string) *StateIsInvalidError {
	return &StateIsInvalidError{
		State:  state,
		Action: action,
	}
}

func NewStateIsInvalidErrorWithCause(state, action string, cause error) *StateIsInvalidError {
	return &StateIsInvalidError{
		State:  state,
		Action: action,
		Cause:  cause,
	}
}

func (e *StateIsInvalidError) Error() string {
	msg := fmt.Sprintf("%s: %s is not a valid status to %s", ErrStateIsInvalid, e.State, e.Action)
	if e.Cause != nil {
		return fmt.Sprintf("%s (cause: %v)", msg, e.Cause)
	}
	return msg
}

func (e *StateIsInvalidError) Unwrap() error {
	return ErrStateIsInvalid
}
