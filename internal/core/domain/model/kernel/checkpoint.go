package kernel

import (
	"time"
	"unicode/utf8"

	"tracking/internal/pkg/errs"
)

const maxStatusLabelLength = 64

// Checkpoint is one immutable entry of an item's or container's audit trail.
//
// Checkpoints are only ever appended; once recorded they are never reordered,
// edited or removed. The handler may be the zero Address for self-reported events.
type Checkpoint struct {
	statusLabel string
	description string
	handler     Address
	location    string
	recordedAt  time.Time
}

// NewCheckpoint validates the label and normalizes the timestamp to UTC.
//
// Example:
//
//	cp, err := NewCheckpoint("Arrived at hub", "Sorted for outbound", handler, "Kuala Lumpur", time.Now())
func NewCheckpoint(statusLabel, description string, handler Address, location string, recordedAt time.Time) (Checkpoint, error) {
	if statusLabel == "" {
		return Checkpoint{}, errs.NewValueIsRequiredError("status label")
	}
	if n := utf8.RuneCountInString(statusLabel); n > maxStatusLabelLength {
		return Checkpoint{}, errs.NewValueIsOutOfRangeError("status label length", n, 1, maxStatusLabelLength)
	}
	if recordedAt.IsZero() {
		return Checkpoint{}, errs.NewValueIsRequiredError("recorded at")
	}

	return Checkpoint{
		statusLabel: statusLabel,
		description: description,
		handler:     handler,
		location:    location,
		recordedAt:  recordedAt.UTC(),
	}, nil
}

func (c Checkpoint) StatusLabel() string {
	return c.statusLabel
}

func (c Checkpoint) Description() string {
	return c.description
}

// Handler returns the party that reported the checkpoint, or the zero Address.
func (c Checkpoint) Handler() Address {
	return c.handler
}

func (c Checkpoint) Location() string {
	return c.location
}

func (c Checkpoint) RecordedAt() time.Time {
	return c.recordedAt
}

// Validate rejects the zero value.
func (c Checkpoint) Validate() error {
	if c.statusLabel == "" {
		return errs.NewValueIsRequiredError("status label")
	}
	return nil
}
