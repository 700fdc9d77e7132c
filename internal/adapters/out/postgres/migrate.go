package postgres

import (
	"tracking/internal/adapters/out/postgres/containerrepo"
	"tracking/internal/adapters/out/postgres/itemrepo"
	"tracking/internal/adapters/out/postgres/ledgerrepo"
	"tracking/internal/adapters/out/postgres/outboxrepo"
	"tracking/internal/adapters/out/postgres/pendingrepo"
	"tracking/internal/adapters/out/postgres/registryrepo"

	"gorm.io/gorm"
)

// Models lists every table owned by the registries, parents before children.
func Models() []any {
	return []any{
		&registryrepo.RegistryDTO{},
		&itemrepo.ItemDTO{},
		&itemrepo.CheckpointDTO{},
		&containerrepo.ContainerDTO{},
		&containerrepo.ItemRefDTO{},
		&containerrepo.CheckpointDTO{},
		&pendingrepo.PendingItemDTO{},
		&ledgerrepo.AccountDTO{},
		&ledgerrepo.ReleaseDTO{},
		&outboxrepo.EventDTO{},
	}
}

// Migrate creates or updates the schema.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(Models()...)
}

// TableNames lists the tables created by Migrate, used to reset state in tests.
const TableNames = "registries, items, item_checkpoints, containers, container_items, " +
	"container_checkpoints, pending_items, escrow_accounts, escrow_releases, outbox_events"
