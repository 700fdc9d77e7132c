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

// GetContainerQueryHandler serves every container read of one container registry.
//
// Example:
//
//	handler := NewGetContainerQueryHandler(db, containerRegistryAddress)
//	query, _ := NewGetContainerItemsQuery(1)
//	refs, err := handler.HandleItems(ctx, query)
type GetContainerQueryHandler struct {
	db       *gorm.DB
	registry kernel.Address
}

func NewGetContainerQueryHandler(db *gorm.DB, registryAddress kernel.Address) GetContainerQueryHandler {
	return GetContainerQueryHandler{db: db, registry: registryAddress}
}

// Handle returns the container snapshot with item and checkpoint counts.
func (h GetContainerQueryHandler) Handle(
	ctx context.Context,
	query GetContainerQuery,
) (GetContainerQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetContainerQueryResponse{}, err
	}

	var resp GetContainerQueryResponse
	var registry, destination, receiver string

	err := h.db.WithContext(ctx).Raw(`
		SELECT
			c.registry,
			c.id,
			c.shipment_type,
			c.destination,
			c.receiver,
			c.location_name,
			c.status,
			(SELECT COUNT(*) FROM container_items i WHERE i.registry = c.registry AND i.container_id = c.id),
			(SELECT COUNT(*) FROM container_checkpoints p WHERE p.registry = c.registry AND p.container_id = c.id)
		FROM containers c
		WHERE c.registry = ? AND c.id = ?
	`, h.registry.Hex(), query.ContainerID()).Row().Scan(
		&registry,
		&resp.ID,
		&resp.ShipmentType,
		&destination,
		&receiver,
		&resp.LocationName,
		&resp.Status,
		&resp.ItemCount,
		&resp.CheckpointCount,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return GetContainerQueryResponse{}, h.notFound(query.ContainerID())
		}
		return GetContainerQueryResponse{}, err
	}

	if resp.Registry, err = kernel.NewAddress(registry); err != nil {
		return GetContainerQueryResponse{}, err
	}
	if resp.Destination, err = kernel.NewDestination(destination); err != nil {
		return GetContainerQueryResponse{}, err
	}
	if resp.Receiver, err = kernel.NewAddress(receiver); err != nil {
		return GetContainerQueryResponse{}, err
	}

	return resp, nil
}

// HandleItems returns the loaded item references in load order.
func (h GetContainerQueryHandler) HandleItems(
	ctx context.Context,
	query GetContainerItemsQuery,
) ([]ItemRefResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	if err := h.ensureExists(ctx, query.ContainerID()); err != nil {
		return nil, err
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT origin_registry, origin_item_id
		FROM container_items
		WHERE registry = ? AND container_id = ?
		ORDER BY position
	`, h.registry.Hex(), query.ContainerID()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	refs := make([]ItemRefResponse, 0)
	for rows.Next() {
		var origin string
		var ref ItemRefResponse
		if err = rows.Scan(&origin, &ref.OriginItemID); err != nil {
			return nil, err
		}
		if ref.OriginRegistry, err = kernel.NewAddress(origin); err != nil {
			return nil, err
		}
		refs = append(refs, ref)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}
	return refs, nil
}

// HandleCheckpoints returns the container's checkpoints in recording order.
func (h GetContainerQueryHandler) HandleCheckpoints(
	ctx context.Context,
	query GetContainerCheckpointsQuery,
) ([]CheckpointResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	if err := h.ensureExists(ctx, query.ContainerID()); err != nil {
		return nil, err
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT status_label, description, handler, location, recorded_at
		FROM container_checkpoints
		WHERE registry = ? AND container_id = ?
		ORDER BY position
	`, h.registry.Hex(), query.ContainerID()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanCheckpoints(rows)
}

func (h GetContainerQueryHandler) ensureExists(ctx context.Context, id uint64) error {
	var exists bool
	if err := h.db.WithContext(ctx).
		Raw(`SELECT EXISTS (SELECT 1 FROM containers WHERE registry = ? AND id = ?)`, h.registry.Hex(), id).
		Row().Scan(&exists); err != nil {
		return err
	}
	if !exists {
		return h.notFound(id)
	}
	return nil
}

func (h GetContainerQueryHandler) notFound(id uint64) error {
	return errs.NewObjectNotFoundError("container", fmt.Sprintf("%s/%d", h.registry, id))
}
