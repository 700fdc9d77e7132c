package container

import (
	"fmt"

	"tracking/internal/pkg/errs"
)

// Status represents the lifecycle state of a container.
//
// State transitions:
//
//	Processing ──> Ongoing ──> Completed
//
// Completed is terminal. The numeric values are part of the public API.
type Status int

const (
	// Processing is the initial status; the container is being loaded.
	Processing Status = iota

	// Ongoing indicates the bulk shipment is in transit.
	Ongoing

	// Completed indicates the bulk shipment arrived.
	Completed
)

func getStatusStrings() map[Status]string {
	return map[Status]string{
		Processing: "Processing",
		Ongoing:    "Ongoing",
		Completed:  "Completed",
	}
}

// Validate checks that the Status value is one of the defined statuses.
func (s Status) Validate() error {
	if _, ok := getStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status is invalid", fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "Unknown"
}

// InitShipment transitions Processing -> Ongoing.
func (s Status) InitShipment() (Status, error) {
	if s != Processing {
		return 0, errs.NewStateIsInvalidError(s.String(), "initiate shipment")
	}
	return Ongoing, nil
}

// Complete transitions Ongoing -> Completed.
func (s Status) Complete() (Status, error) {
	if s != Ongoing {
		return 0, errs.NewStateIsInvalidError(s.String(), "complete")
	}
	return Completed, nil
}
