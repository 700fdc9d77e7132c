package kernel

import (
	"encoding/hex"
	"fmt"
	"strings"

	"tracking/internal/pkg/errs"

	"golang.org/x/crypto/sha3"
)

const addressLength = 20

// Address is a 20-byte account identifier written as 0x followed by 40 hex digits.
// It identifies registries, receivers, payees and checkpoint handlers.
//
// Parsing accepts all-lowercase and all-uppercase hex digits as-is. Mixed case
// must match the EIP-55 checksum, which catches most typing mistakes.
//
// The zero value is the "no handler" address used for self-reported checkpoints.
// It is never a valid receiver, payee or registry.
type Address struct {
	raw [addressLength]byte
}

// NewAddress parses a non-zero account identifier.
//
// Example:
//
//	addr, err := NewAddress("0x5B38Da6a701c568545dCfcB03FcB875f56beddC4")
//	if err != nil {
//	    // malformed or bad checksum
//	}
//	fmt.Println(addr.Hex()) // 0x5b38da6a701c568545dcfcb03fcb875f56beddc4
func NewAddress(s string) (Address, error) {
	addr, err := parseAddress(s)
	if err != nil {
		return Address{}, err
	}
	if addr.IsZero() {
		return Address{}, errs.NewValueIsInvalidErrorWithCause("address", fmt.Errorf("%s is the zero address", s))
	}
	return addr, nil
}

// ParseOptionalAddress parses a handler identifier. The empty string and the
// all-zero address both yield the zero Address.
func ParseOptionalAddress(s string) (Address, error) {
	if strings.TrimSpace(s) == "" {
		return Address{}, nil
	}
	return parseAddress(s)
}

// MustNewAddress is NewAddress for constants and tests; it panics on invalid input.
func MustNewAddress(s string) Address {
	addr, err := NewAddress(s)
	if err != nil {
		panic(err)
	}
	return addr
}

func parseAddress(s string) (Address, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return Address{}, errs.NewValueIsRequiredError("address")
	}
	if len(s) != 2+2*addressLength || (s[:2] != "0x" && s[:2] != "0X") {
		return Address{}, errs.NewValueIsInvalidErrorWithCause(
			"address",
			fmt.Errorf("%q is not 0x followed by %d hex digits", s, 2*addressLength),
		)
	}

	digits := s[2:]
	decoded, err := hex.DecodeString(digits)
	if err != nil {
		return Address{}, errs.NewValueIsInvalidErrorWithCause("address", err)
	}

	var addr Address
	copy(addr.raw[:], decoded)

	if isMixedCase(digits) && checksumDigits(addr.raw) != digits {
		return Address{}, errs.NewValueIsInvalidErrorWithCause(
			"address",
			fmt.Errorf("%s has an invalid checksum", s),
		)
	}

	return addr, nil
}

// IsZero reports whether a is the "no handler" address.
func (a Address) IsZero() bool {
	return a.raw == [addressLength]byte{}
}

func (a Address) IsEqual(other Address) bool {
	return a.raw == other.raw
}

// Validate rejects the zero address.
func (a Address) Validate() error {
	if a.IsZero() {
		return errs.NewValueIsRequiredError("address")
	}
	return nil
}

// Hex returns the lowercase form used as a storage key.
// The zero address renders as an empty string.
func (a Address) Hex() string {
	if a.IsZero() {
		return ""
	}
	return "0x" + hex.EncodeToString(a.raw[:])
}

// String returns the EIP-55 checksummed form.
func (a Address) String() string {
	if a.IsZero() {
		return ""
	}
	return "0x" + checksumDigits(a.raw)
}

func checksumDigits(raw [addressLength]byte) string {
	lower := hex.EncodeToString(raw[:])

	hasher := sha3.NewLegacyKeccak256()
	_, _ = hasher.Write([]byte(lower))
	hash := hasher.Sum(nil)

	out := []byte(lower)
	for i, c := range out {
		if c < 'a' || c > 'f' {
			continue
		}
		nibble := hash[i/2]
		if i%2 == 0 {
			nibble >>= 4
		}
		if nibble&0x0f >= 8 {
			out[i] = c - 'a' + 'A'
		}
	}
	return string(out)
}

func isMixedCase(digits string) bool {
	return strings.ToLower(digits) != digits && strings.ToUpper(digits) != digits
}
