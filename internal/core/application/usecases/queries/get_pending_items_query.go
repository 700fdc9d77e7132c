package queries

import (
	"context"
	"errors"

	"tracking/internal/core/domain/model/kernel"
	"tracking/internal/pkg/guard"

	"gorm.io/gorm"
)

var (
	ErrGetPendingItemsQueryIsNotConstructed = errors.New(
		"GetPendingItemsQuery must be created via NewGetPendingItemsQuery constructor",
	)
)

// GetPendingItemsQuery lists entries waiting for a container. An empty destination lists
// every destination.
type GetPendingItemsQuery struct {
	destination kernel.Destination
	all         bool

	guard guard.ConstructorGuard
}

// NewGetPendingItemsQuery validates destination unless it is empty.
func NewGetPendingItemsQuery(destination string) (GetPendingItemsQuery, error) {
	if destination == "" {
		return GetPendingItemsQuery{all: true, guard: guard.NewConstructorGuard()}, nil
	}

	dest, err := kernel.NewDestination(destination)
	if err != nil {
		return GetPendingItemsQuery{}, err
	}
	return GetPendingItemsQuery{destination: dest, guard: guard.NewConstructorGuard()}, nil
}

func (q GetPendingItemsQuery) Validate() error {
	return q.guard.Validate(ErrGetPendingItemsQueryIsNotConstructed)
}

// PendingItemResponse is one queued entry in enqueue order.
type PendingItemResponse struct {
	Destination    kernel.Destination
	OriginRegistry kernel.Address
	OriginItemID   uint64
}

// PendingBacklogResponse is the queue depth of one destination.
type PendingBacklogResponse struct {
	Destination string
	Count       int64
}

type GetPendingItemsQueryHandler struct {
	db       *gorm.DB
	registry kernel.Address
}

func NewGetPendingItemsQueryHandler(db *gorm.DB, registryAddress kernel.Address) GetPendingItemsQueryHandler {
	return GetPendingItemsQueryHandler{db: db, registry: registryAddress}
}

// Handle returns queued entries ordered by enqueue sequence.
func (h GetPendingItemsQueryHandler) Handle(
	ctx context.Context,
	query GetPendingItemsQuery,
) ([]PendingItemResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	db := h.db.WithContext(ctx).
		Table("pending_items").
		Select("destination, origin_registry, origin_item_id").
		Where("registry = ?", h.registry.Hex())
	if !query.all {
		db = db.Where("destination = ?", query.destination.String())
	}

	rows, err := db.Order("seq").Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := make([]PendingItemResponse, 0)
	for rows.Next() {
		var destination, origin string
		var p PendingItemResponse
		if err = rows.Scan(&destination, &origin, &p.OriginItemID); err != nil {
			return nil, err
		}
		if p.Destination, err = kernel.NewDestination(destination); err != nil {
			return nil, err
		}
		if p.OriginRegistry, err = kernel.NewAddress(origin); err != nil {
			return nil, err
		}
		items = append(items, p)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}

// Backlog returns the queue depth per destination, largest first.
func (h GetPendingItemsQueryHandler) Backlog(ctx context.Context) ([]PendingBacklogResponse, error) {
	backlog := make([]PendingBacklogResponse, 0)
	err := h.db.WithContext(ctx).Raw(`
		SELECT destination, COUNT(*) AS count
		FROM pending_items
		WHERE registry = ?
		GROUP BY destination
		ORDER BY count DESC, destination
	`, h.registry.Hex()).Scan(&backlog).Error
	if err != nil {
		return nil, err
	}
	return backlog, nil
}
