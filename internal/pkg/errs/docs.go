// Package errs provides standardized error types for the tracking application.
// It implements a consistent pattern for error creation, formatting, and unwrapping
// that is used throughout the application.
//
// The package includes one error type per failure kind:
//   - ObjectNotFoundError: an item, container or other record does not exist
//   - ValueIsRequiredError, ValueIsInvalidError, ValueIsOutOfRangeError: malformed input
//   - StateIsInvalidError: an operation is not allowed in the current lifecycle status
//   - PaymentMismatchError: a completion payment differs from the agreed price
//   - RemoteCallFailedError: a call into another registry was rejected or did not complete
//
// Each error type follows a consistent pattern:
//   - A sentinel error variable (e.g., ErrValueIsRequired)
//   - A struct type with fields for error details
//   - Constructor functions with and without cause
//   - Error() method for formatting the error message
//   - Unwrap() method returning the sentinel, so errors.Is classifies the failure
//
// Transports map failures to their own status codes by sentinel; see the HTTP adapter.
package errs
