package kernel

import (
	"fmt"
	"strings"

	"tracking/internal/pkg/errs"
)

const maxDestinationLength = 16

// Destination is the country or region code that groups forwarded items into containers.
// Codes are trimmed and upper-cased so "my" and "MY" batch together.
type Destination struct {
	code string
}

// NewDestination validates a destination code: 1 to 16 characters of A-Z, 0-9 or '-'.
func NewDestination(code string) (Destination, error) {
	normalized := strings.ToUpper(strings.TrimSpace(code))
	if normalized == "" {
		return Destination{}, errs.NewValueIsRequiredError("destination")
	}
	if len(normalized) > maxDestinationLength {
		return Destination{}, errs.NewValueIsOutOfRangeError("destination length", len(normalized), 1, maxDestinationLength)
	}
	for _, r := range normalized {
		if (r < 'A' || r > 'Z') && (r < '0' || r > '9') && r != '-' {
			return Destination{}, errs.NewValueIsInvalidErrorWithCause(
				"destination",
				fmt.Errorf("%q contains %q", normalized, r),
			)
		}
	}
	return Destination{code: normalized}, nil
}

// MustNewDestination panics on an invalid code.
func MustNewDestination(code string) Destination {
	d, err := NewDestination(code)
	if err != nil {
		panic(err)
	}
	return d
}

func (d Destination) String() string {
	return d.code
}

func (d Destination) IsEqual(other Destination) bool {
	return d.code == other.code
}

// Validate rejects the zero value.
func (d Destination) Validate() error {
	if d.code == "" {
		return errs.NewValueIsRequiredError("destination")
	}
	return nil
}
