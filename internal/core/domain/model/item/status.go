package item

import (
	"fmt"

	"tracking/internal/pkg/errs"
)

// Status represents the lifecycle state of an item.
// It implements a state machine with defined transitions to ensure
// items follow the custody workflow.
//
// State transitions:
//
//	Processing ──> Ongoing ──> Completed
//	     │          │  ▲
//	     │          └──┘ (re-forward)
//	     │          │
//	     └──────────┴──> Missing
//
// Completed and Missing are terminal. The numeric values are part of the
// public API and are stored as-is.
type Status int

const (
	// Processing is the initial status of a newly created item.
	Processing Status = iota

	// Ongoing indicates the item has been handed to a container registry.
	Ongoing

	// Completed indicates delivery was confirmed and the escrowed payment released.
	Completed

	// Missing indicates the item was reported lost.
	Missing
)

func getStatusStrings() map[Status]string {
	return map[Status]string{
		Processing: "Processing",
		Ongoing:    "Ongoing",
		Completed:  "Completed",
		Missing:    "Missing",
	}
}

// Validate checks that the Status value is one of the defined statuses.
// Used when restoring items from storage.
func (s Status) Validate() error {
	if _, ok := getStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status is invalid", fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

// String returns the human-readable name of the status, or "Unknown".
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "Unknown"
}

// IsTerminal reports whether no further transitions or checkpoints are allowed.
func (s Status) IsTerminal() bool {
	return s == Completed || s == Missing
}

// ValidateCheckpoint checks that checkpoints may still be appended.
func (s Status) ValidateCheckpoint() error {
	if s.IsTerminal() {
		return errs.NewStateIsInvalidError(s.String(), "add a checkpoint")
	}
	return nil
}

// Forward transitions the status to Ongoing.
//
// Valid transitions:
//   - Processing -> Ongoing (first handoff)
//   - Ongoing -> Ongoing (handoff to a further container registry)
func (s Status) Forward() (Status, error) {
	if s != Processing && s != Ongoing {
		return 0, errs.NewStateIsInvalidError(s.String(), "forward")
	}
	return Ongoing, nil
}

// Complete transitions the status to Completed.
//
// Valid transitions:
//   - Ongoing -> Completed
//
// A Processing item has never left the courier registry, so it cannot be completed.
func (s Status) Complete() (Status, error) {
	if s != Ongoing {
		return 0, errs.NewStateIsInvalidError(s.String(), "complete")
	}
	return Completed, nil
}

// MarkMissing transitions the status to Missing.
//
// Valid transitions:
//   - Processing -> Missing
//   - Ongoing -> Missing
func (s Status) MarkMissing() (Status, error) {
	if s != Processing && s != Ongoing {
		return 0, errs.NewStateIsInvalidError(s.String(), "mark missing")
	}
	return Missing, nil
}
