package ports

import (
	"context"

	"tracking/internal/core/domain/model/kernel"
)

// EscrowLedger is the single settlement primitive: it moves an escrowed payment
// to the payee's account.
type EscrowLedger interface {
	// Release credits amount to payee and records the release against ref.
	// It takes part in the surrounding transaction.
	Release(ctx context.Context, payee kernel.Address, amount int64, ref kernel.ItemRef) error
}
