package queries

import (
	"context"
	"database/sql"
	"errors"

	"tracking/internal/core/domain/model/kernel"
	"tracking/internal/pkg/guard"

	"gorm.io/gorm"
)

var (
	ErrGetBalanceQueryIsNotConstructed = errors.New(
		"GetBalanceQuery must be created via NewGetBalanceQuery constructor",
	)
)

// GetBalanceQuery reads the escrow balance released to an account.
type GetBalanceQuery struct {
	address kernel.Address

	guard guard.ConstructorGuard
}

func NewGetBalanceQuery(address string) (GetBalanceQuery, error) {
	addr, err := kernel.NewAddress(address)
	if err != nil {
		return GetBalanceQuery{}, err
	}
	return GetBalanceQuery{address: addr, guard: guard.NewConstructorGuard()}, nil
}

func (q GetBalanceQuery) Validate() error {
	return q.guard.Validate(ErrGetBalanceQueryIsNotConstructed)
}

func (q GetBalanceQuery) Address() kernel.Address {
	return q.address
}

type GetBalanceQueryHandler struct {
	db *gorm.DB
}

func NewGetBalanceQueryHandler(db *gorm.DB) GetBalanceQueryHandler {
	return GetBalanceQueryHandler{db: db}
}

// Handle returns 0 for an account that never received a release.
func (h GetBalanceQueryHandler) Handle(ctx context.Context, query GetBalanceQuery) (int64, error) {
	if err := query.Validate(); err != nil {
		return 0, err
	}

	var balance int64
	err := h.db.WithContext(ctx).
		Raw(`SELECT balance FROM escrow_accounts WHERE address = ?`, query.Address().Hex()).
		Row().
		Scan(&balance)
	if errors.Is(err, sql.ErrNoRows) {
		return 0, nil
	}
	if err != nil {
		return 0, err
	}
	return balance, nil
}
