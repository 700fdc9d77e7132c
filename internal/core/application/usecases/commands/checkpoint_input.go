package commands

import (
	"errors"
	"strings"
	"unicode/utf8"

	"tracking/internal/pkg/errs"
)

const (
	maxStatusLabelLength = 64
	maxLocationLength    = 255
)

var (
	ErrStatusLabelIsRequired = errs.NewValueIsRequiredError("status label")

	errTextHasNUL         = errors.New("must not contain NUL characters")
	errTextIsNotValidUTF8 = errors.New("must be valid UTF-8")
)

// checkpointInput holds the free-text part of a checkpoint supplied by the caller.
// The handler and timestamp are filled in by the command handler.
type checkpointInput struct {
	statusLabel string
	description string
	location    string
}

func newCheckpointInput(statusLabel, description, location string) (checkpointInput, error) {
	if statusLabel == "" {
		return checkpointInput{}, ErrStatusLabelIsRequired
	}
	if err := errors.Join(
		validateText("status label", statusLabel, maxStatusLabelLength),
		validateText("description", description, 0),
		validateText("location", location, maxLocationLength),
	); err != nil {
		return checkpointInput{}, err
	}
	return checkpointInput{
		statusLabel: statusLabel,
		description: description,
		location:    location,
	}, nil
}

func validateID(name string, id uint64) error {
	if id == 0 {
		return errs.NewValueIsInvalidErrorWithCause(name, errors.New("must be greater than 0"))
	}
	return nil
}

// validateText rejects values the store cannot hold: invalid UTF-8, NUL characters
// and, when maxLen is positive, more than maxLen characters.
func validateText(name, value string, maxLen int) error {
	if !utf8.ValidString(value) {
		return errs.NewValueIsInvalidErrorWithCause(name, errTextIsNotValidUTF8)
	}
	if strings.ContainsRune(value, 0) {
		return errs.NewValueIsInvalidErrorWithCause(name, errTextHasNUL)
	}
	if n := utf8.RuneCountInString(value); maxLen > 0 && n > maxLen {
		return errs.NewValueIsOutOfRangeError(name, n, 0, maxLen)
	}
	return nil
}
