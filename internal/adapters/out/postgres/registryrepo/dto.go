// Package registryrepo persists registry identities and their id counters.
package registryrepo

import (
	"tracking/internal/core/domain/model/kernel"
	"tracking/internal/core/domain/model/registry"
)

// RegistryDTO is one row per registry address. LastID is the counter ids are allocated from.
type RegistryDTO struct {
	Address string        `gorm:"type:varchar(42);primaryKey"`
	Kind    registry.Kind `gorm:"type:smallint;not null"`
	LastID  uint64        `gorm:"type:bigint;not null;default:0"`
}

func (RegistryDTO) TableName() string {
	return "registries"
}

func fromDomain(reg *registry.Registry) RegistryDTO {
	return RegistryDTO{
		Address: reg.Address().Hex(),
		Kind:    reg.Kind(),
		LastID:  reg.LastID(),
	}
}

func toDomain(dto RegistryDTO) (*registry.Registry, error) {
	address, err := kernel.NewAddress(dto.Address)
	if err != nil {
		return nil, err
	}
	return registry.RestoreRegistry(address, dto.Kind, dto.LastID)
}
