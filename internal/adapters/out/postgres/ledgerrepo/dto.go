// Package ledgerrepo implements the escrow ledger: account balances and one release
// record per settled item.
package ledgerrepo

import (
	"time"

	"github.com/google/uuid"
)

// AccountDTO holds the released balance of one payee.
type AccountDTO struct {
	Address   string    `gorm:"type:varchar(42);primaryKey"`
	Balance   int64     `gorm:"type:bigint;not null;default:0"`
	UpdatedAt time.Time `gorm:"type:timestamptz;not null"`
}

func (AccountDTO) TableName() string {
	return "escrow_accounts"
}

// ReleaseDTO records a single release. An item is released at most once.
type ReleaseDTO struct {
	ID         uuid.UUID `gorm:"type:uuid;primaryKey"`
	Registry   string    `gorm:"type:varchar(42);not null;uniqueIndex:idx_release_item"`
	ItemID     uint64    `gorm:"type:bigint;not null;uniqueIndex:idx_release_item"`
	Payee      string    `gorm:"type:varchar(42);not null;index"`
	Amount     int64     `gorm:"type:bigint;not null"`
	ReleasedAt time.Time `gorm:"type:timestamptz;not null"`
}

func (ReleaseDTO) TableName() string {
	return "escrow_releases"
}
