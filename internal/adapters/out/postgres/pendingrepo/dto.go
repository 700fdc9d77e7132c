// Package pendingrepo stores the per-destination pending queues of container registries.
package pendingrepo

// PendingItemDTO is one queue entry. Seq is assigned by the database and orders entries
// across all destinations of all registries.
type PendingItemDTO struct {
	Seq            uint64 `gorm:"type:bigserial;primaryKey;autoIncrement"`
	Registry       string `gorm:"type:varchar(42);not null;index:idx_pending_queue"`
	Destination    string `gorm:"type:varchar(16);not null;index:idx_pending_queue"`
	OriginRegistry string `gorm:"type:varchar(42);not null"`
	OriginItemID   uint64 `gorm:"type:bigint;not null"`
}

func (PendingItemDTO) TableName() string {
	return "pending_items"
}
