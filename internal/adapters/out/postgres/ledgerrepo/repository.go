package ledgerrepo

import (
	"context"
	"time"

	"tracking/internal/core/domain/model/kernel"
	"tracking/internal/pkg/errs"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

var ErrAmountIsInvalid = errs.NewValueIsInvalidError("release amount must be greater than 0")

// GormEscrowLedger implements ports.EscrowLedger using GORM.
type GormEscrowLedger struct {
	db *gorm.DB
}

func NewGormEscrowLedger(db *gorm.DB) *GormEscrowLedger {
	return &GormEscrowLedger{db: db}
}

// Release records the release for ref and adds amount to the payee's balance.
// A second release for the same item fails on the unique index.
func (l *GormEscrowLedger) Release(ctx context.Context, payee kernel.Address, amount int64, ref kernel.ItemRef) error {
	if err := payee.Validate(); err != nil {
		return err
	}
	if amount <= 0 {
		return ErrAmountIsInvalid
	}

	now := time.Now().UTC()
	db := l.db.WithContext(ctx)

	release := ReleaseDTO{
		ID:         kernel.NewUUID().Bytes(),
		Registry:   ref.Origin().Hex(),
		ItemID:     ref.ItemID(),
		Payee:      payee.Hex(),
		Amount:     amount,
		ReleasedAt: now,
	}
	if err := db.Create(&release).Error; err != nil {
		return err
	}

	account := AccountDTO{
		Address:   payee.Hex(),
		Balance:   amount,
		UpdatedAt: now,
	}
	return db.Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "address"}},
		DoUpdates: clause.Assignments(map[string]any{
			"balance":    gorm.Expr("escrow_accounts.balance + EXCLUDED.balance"),
			"updated_at": gorm.Expr("EXCLUDED.updated_at"),
		}),
	}).Create(&account).Error
}
