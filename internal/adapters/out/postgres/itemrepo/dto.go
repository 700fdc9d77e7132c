// Package itemrepo provides data transfer objects and mapping functions for item persistence.
// Items are keyed by (registry, id); their checkpoints live in a child table ordered by position.
package itemrepo

import (
	"time"

	"tracking/internal/core/domain/model/item"
	"tracking/internal/core/domain/model/kernel"
)

// ItemDTO represents the database structure for persisting item aggregates.
type ItemDTO struct {
	Registry         string              `gorm:"type:varchar(42);primaryKey"`
	ID               uint64              `gorm:"type:bigint;primaryKey;autoIncrement:false"`
	ShipmentType     kernel.ShipmentType `gorm:"type:smallint;not null"`
	Destination      string              `gorm:"type:varchar(16);not null"`
	Receiver         string              `gorm:"type:varchar(42);not null"`
	ReceiverLocation string              `gorm:"type:varchar(255);not null"`
	Payee            string              `gorm:"type:varchar(42);not null"`
	Price            int64               `gorm:"type:bigint;not null"`
	Status           item.Status         `gorm:"type:smallint;not null;index"`
	Checkpoints      []CheckpointDTO     `gorm:"foreignKey:Registry,ItemID;references:Registry,ID;constraint:OnDelete:CASCADE"`
}

// TableName overrides GORM's default naming convention.
func (ItemDTO) TableName() string {
	return "items"
}

// CheckpointDTO is one audit trail entry of an item. Position starts at 0 and never changes.
type CheckpointDTO struct {
	Registry    string    `gorm:"type:varchar(42);primaryKey"`
	ItemID      uint64    `gorm:"type:bigint;primaryKey;autoIncrement:false"`
	Position    int       `gorm:"type:int;primaryKey;autoIncrement:false"`
	StatusLabel string    `gorm:"type:varchar(64);not null"`
	Description string    `gorm:"type:text;not null"`
	Handler     string    `gorm:"type:varchar(42);not null"`
	Location    string    `gorm:"type:varchar(255);not null"`
	RecordedAt  time.Time `gorm:"type:timestamptz;not null"`
}

func (CheckpointDTO) TableName() string {
	return "item_checkpoints"
}

func fromDomain(it *item.Item) ItemDTO {
	registry := it.Registry().Hex()
	checkpoints := make([]CheckpointDTO, 0, it.CheckpointCount())
	for i, cp := range it.Checkpoints() {
		checkpoints = append(checkpoints, CheckpointDTO{
			Registry:    registry,
			ItemID:      it.ID(),
			Position:    i,
			StatusLabel: cp.StatusLabel(),
			Description: cp.Description(),
			Handler:     cp.Handler().Hex(),
			Location:    cp.Location(),
			RecordedAt:  cp.RecordedAt(),
		})
	}

	return ItemDTO{
		Registry:         registry,
		ID:               it.ID(),
		ShipmentType:     it.ShipmentType(),
		Destination:      it.Destination().String(),
		Receiver:         it.Receiver().Hex(),
		ReceiverLocation: it.ReceiverLocation(),
		Payee:            it.Payee().Hex(),
		Price:            it.Price(),
		Status:           it.Status(),
		Checkpoints:      checkpoints,
	}
}

func toDomain(dto ItemDTO) (*item.Item, error) {
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
	payee, err := kernel.NewAddress(dto.Payee)
	if err != nil {
		return nil, err
	}

	checkpoints, err := CheckpointsToDomain(dto.Checkpoints)
	if err != nil {
		return nil, err
	}

	return item.RestoreItem(
		registry,
		dto.ID,
		dto.ShipmentType,
		destination,
		receiver,
		dto.ReceiverLocation,
		payee,
		dto.Price,
		dto.Status,
		checkpoints,
	)
}

// CheckpointsToDomain converts stored rows, already ordered by position, into checkpoints.
func CheckpointsToDomain(dtos []CheckpointDTO) ([]kernel.Checkpoint, error) {
	checkpoints := make([]kernel.Checkpoint, 0, len(dtos))
	for _, dto := range dtos {
		handler, err := kernel.ParseOptionalAddress(dto.Handler)
		if err != nil {
			return nil, err
		}
		cp, err := kernel.NewCheckpoint(dto.StatusLabel, dto.Description, handler, dto.Location, dto.RecordedAt)
		if err != nil {
			return nil, err
		}
		checkpoints = append(checkpoints, cp)
	}
	return checkpoints, nil
}
