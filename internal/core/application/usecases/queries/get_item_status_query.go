package queries

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"tracking/internal/core/domain/model/item"
	"tracking/internal/core/domain/model/kernel"
	"tracking/internal/pkg/errs"
	"tracking/internal/pkg/guard"

	"gorm.io/gorm"
)

var (
	ErrGetItemStatusQueryIsNotConstructed = errors.New(
		"GetItemStatusQuery must be created via NewGetItemStatusQuery constructor",
	)
)

// GetItemStatusQuery retrieves only the lifecycle status of an item.
type GetItemStatusQuery struct {
	itemID uint64

	guard guard.ConstructorGuard
}

func NewGetItemStatusQuery(itemID uint64) (GetItemStatusQuery, error) {
	if err := validateQueryID("item id", itemID); err != nil {
		return GetItemStatusQuery{}, err
	}
	return GetItemStatusQuery{itemID: itemID, guard: guard.NewConstructorGuard()}, nil
}

func (q GetItemStatusQuery) Validate() error {
	return q.guard.Validate(ErrGetItemStatusQueryIsNotConstructed)
}

func (q GetItemStatusQuery) ItemID() uint64 {
	return q.itemID
}

type GetItemStatusQueryHandler struct {
	db       *gorm.DB
	registry kernel.Address
}

func NewGetItemStatusQueryHandler(db *gorm.DB, registryAddress kernel.Address) GetItemStatusQueryHandler {
	return GetItemStatusQueryHandler{db: db, registry: registryAddress}
}

func (h GetItemStatusQueryHandler) Handle(ctx context.Context, query GetItemStatusQuery) (item.Status, error) {
	if err := query.Validate(); err != nil {
		return 0, err
	}

	var status item.Status
	err := h.db.WithContext(ctx).
		Raw(`SELECT status FROM items WHERE registry = ? AND id = ?`, h.registry.Hex(), query.ItemID()).
		Row().
		Scan(&status)
	if errors.Is(err, sql.ErrNoRows) {
		return 0, errs.NewObjectNotFoundError("item", fmt.Sprintf("%s/%d", h.registry, query.ItemID()))
	}
	if err != nil {
		return 0, err
	}
	return status, nil
}
