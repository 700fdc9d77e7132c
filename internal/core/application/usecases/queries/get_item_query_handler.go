package queries

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"tracking/internal/core/domain/model/kernel"
	"tracking/internal/pkg/errs"

	"gorm.io/gorm"
)

// GetItemQueryHandler reads items of one courier registry.
//
// Example:
//
//	handler := NewGetItemQueryHandler(db, courierRegistryAddress)
//	query, _ := NewGetItemQuery(id)
//
//	it, err := handler.Handle(ctx, query)
//	if errors.Is(err, errs.ErrObjectNotFound) {
//	    // unknown id
//	}
type GetItemQueryHandler struct {
	db       *gorm.DB
	registry kernel.Address
}

// NewGetItemQueryHandler creates a handler bound to the courier registry at registryAddress.
func NewGetItemQueryHandler(db *gorm.DB, registryAddress kernel.Address) GetItemQueryHandler {
	return GetItemQueryHandler{db: db, registry: registryAddress}
}

// Handle returns the item snapshot including the number of recorded checkpoints.
func (h GetItemQueryHandler) Handle(ctx context.Context, query GetItemQuery) (GetItemQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetItemQueryResponse{}, err
	}

	var resp GetItemQueryResponse
	var registry, destination, receiver, payee string

	row := h.db.WithContext(ctx).Raw(`
		SELECT
			i.registry,
			i.id,
			i.shipment_type,
			i.destination,
			i.receiver,
			i.receiver_location,
			i.payee,
			i.price,
			i.status,
			(SELECT COUNT(*) FROM item_checkpoints c WHERE c.registry = i.registry AND c.item_id = i.id)
		FROM items i
		WHERE i.registry = ? AND i.id = ?
	`, h.registry.Hex(), query.ItemID()).Row()

	err := row.Scan(
		&registry,
		&resp.ID,
		&resp.ShipmentType,
		&destination,
		&receiver,
		&resp.ReceiverLocation,
		&payee,
		&resp.Price,
		&resp.Status,
		&resp.CheckpointCount,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return GetItemQueryResponse{}, errs.NewObjectNotFoundError(
				"item", fmt.Sprintf("%s/%d", h.registry, query.ItemID()))
		}
		return GetItemQueryResponse{}, err
	}

	if resp.Registry, err = kernel.NewAddress(registry); err != nil {
		return GetItemQueryResponse{}, err
	}
	if resp.Destination, err = kernel.NewDestination(destination); err != nil {
		return GetItemQueryResponse{}, err
	}
	if resp.Receiver, err = kernel.NewAddress(receiver); err != nil {
		return GetItemQueryResponse{}, err
	}
	if resp.Payee, err = kernel.NewAddress(payee); err != nil {
		return GetItemQueryResponse{}, err
	}

	return resp, nil
}
