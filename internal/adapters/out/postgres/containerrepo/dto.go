// Package containerrepo provides data transfer objects and mapping functions for container persistence.
package containerrepo

import (
	"time"

	"tracking/internal/core/domain/model/container"
	"tracking/internal/core/domain/model/kernel"
)

// ContainerDTO represents the database structure for persisting container aggregates.
type ContainerDTO struct {
	Registry     string              `gorm:"type:varchar(42);primaryKey"`
	ID           uint64              `gorm:"type:bigint;primaryKey;autoIncrement:false"`
	ShipmentType kernel.ShipmentType `gorm:"type:smallint;not null"`
	Destination  string              `gorm:"type:varchar(16);not null"`
	Receiver     string              `gorm:"type:varchar(42);not null"`
	LocationName string              `gorm:"type:varchar(255);not null"`
	Status       container.Status    `gorm:"type:smallint;not null"`
	Items        []ItemRefDTO        `gorm:"foreignKey:Registry,ContainerID;references:Registry,ID;constraint:OnDelete:CASCADE"`
	Checkpoints  []CheckpointDTO     `gorm:"foreignKey:Registry,ContainerID;references:Registry,ID;constraint:OnDelete:CASCADE"`
}

func (ContainerDTO) TableName() string {
	return "containers"
}

// ItemRefDTO is one loaded item reference. Position keeps the enqueue order.
type ItemRefDTO struct {
	Registry       string `gorm:"type:varchar(42);primaryKey"`
	ContainerID    uint64 `gorm:"type:bigint;primaryKey;autoIncrement:false"`
	Position       int    `gorm:"type:int;primaryKey;autoIncrement:false"`
	OriginRegistry string `gorm:"type:varchar(42);not null"`
	OriginItemID   uint64 `gorm:"type:bigint;not null"`
}

func (ItemRefDTO) TableName() string {
	return "container_items"
}

// CheckpointDTO is one audit trail entry of a container.
type CheckpointDTO struct {
	Registry    string    `gorm:"type:varchar(42);primaryKey"`
	ContainerID uint64    `gorm:"type:bigint;primaryKey;autoIncrement:false"`
	Position    int       `gorm:"type:int;primaryKey;autoIncrement:false"`
	StatusLabel string    `gorm:"type:varchar(64);not null"`
	Description string    `gorm:"type:text;not null"`
	Handler     string    `gorm:"type:varchar(42);not null"`
	Location    string    `gorm:"type:varchar(255);not null"`
	RecordedAt  time.Time `gorm:"type:timestamptz;not null"`
}

func (CheckpointDTO) TableName() string {
	return "container_checkpoints"
}

func fromDomain(c *container.Container) ContainerDTO {
	registry := c.Registry().Hex()

	items := make([]ItemRefDTO, 0, len(c.Items()))
	for i, ref := range c.Items() {
		items = append(items, ItemRefDTO{
			Registry:       registry,
			ContainerID:    c.ID(),
			Position:       i,
			OriginRegistry: ref.Origin().Hex(),
			OriginItemID:   ref.ItemID(),
		})
	}

	checkpoints := make([]CheckpointDTO, 0, c.CheckpointCount())
	for i, cp := range c.Checkpoints() {
		checkpoints = append(checkpoints, CheckpointDTO{
			Registry:    registry,
			ContainerID: c.ID(),
			Position:    i,
			StatusLabel: cp.StatusLabel(),
			Description: cp.Description(),
			Handler:     cp.Handler().Hex(),
			Location:    cp.Location(),
			RecordedAt:  cp.RecordedAt(),
		})
	}

	return ContainerDTO{
		Registry:     registry,
		ID:           c.ID(),
		ShipmentType: c.ShipmentType(),
		Destination:  c.Destination().String(),
		Receiver:     c.Receiver().Hex(),
		LocationName: c.LocationName(),
		Status:       c.Status(),
		Items:        items,
		Checkpoints:  checkpoints,
	}
}

func toDomain(dto ContainerDTO) (*container.Container, error) {
	registry, err := kernel.NewAddress(dto.Registry)
	if err != nil {
		return nil, err
	}
	destination, err := kernel.NewDestination(dto.Destination)
	if err != nil {
		return nil, err
	}
	receiver, err := kernel.NewAddress(dto.Receiver)
	if err != nil {
		return nil, err
	}

	items, err := ItemRefsToDomain(dto.Items)
	if err != nil {
		return nil, err
	}

	checkpoints := make([]kernel.Checkpoint, 0, len(dto.Checkpoints))
	for _, cpDto := range dto.Checkpoints {
		handler, handlerErr := kernel.ParseOptionalAddress(cpDto.Handler)
		if handlerErr != nil {
			return nil, handlerErr
		}
		cp, cpErr := kernel.NewCheckpoint(cpDto.StatusLabel, cpDto.Description, handler, cpDto.Location, cpDto.RecordedAt)
		if cpErr != nil {
			return nil, cpErr
		}
		checkpoints = append(checkpoints, cp)
	}

	return container.RestoreContainer(
		registry,
		dto.ID,
		dto.ShipmentType,
		destination,
		receiver,
		dto.LocationName,
		dto.Status,
		items,
		checkpoints,
	)
}

// ItemRefsToDomain converts stored references, already ordered by position.
func ItemRefsToDomain(dtos []ItemRefDTO) ([]kernel.ItemRef, error) {
	refs := make([]kernel.ItemRef, 0, len(dtos))
	for _, dto := range dtos {
		origin, err := kernel.NewAddress(dto.OriginRegistry)
		if err != nil {
			return nil, err
		}
		ref, err := kernel.NewItemRef(origin, dto.OriginItemID)
		if err != nil {
			return nil, err
		}
		refs = append(refs, ref)
	}
	return refs, nil
}
