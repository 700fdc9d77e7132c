package errs

import (
	"errors"
	"fmt"
)

var ErrRemoteCallFailed = errors.New("remote call failed")

// RemoteCallFailedError reports that a call into another registry was rejected or did not complete.
type RemoteCallFailedError struct {
	Target    string
	Operation string
	Cause     error
}

func NewRemoteCallFailedError(target, operation string, cause error) *RemoteCallFailedError {
	return &RemoteCallFailedError{
		Target:    target,
		Operation: operation,
		Cause:     cause,
	}
}

func (e *RemoteCallFailedError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s on %s (cause: %v)", ErrRemoteCallFailed, e.Operation, e.Target, e.Cause)
	}
	return fmt.Sprintf("%s: %s on %s", ErrRemoteCallFailed, e.Operation, e.Target)
}

func (e *RemoteCallFailedError) Unwrap() error {
	return ErrRemoteCallFailed
}
