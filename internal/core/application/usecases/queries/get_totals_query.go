package queries

import (
	"context"
	"errors"

	"tracking/internal/core/domain/model/kernel"
	"tracking/internal/pkg/guard"

	"gorm.io/gorm"
)

var (
	ErrGetTotalItemsQueryIsNotConstructed = errors.New(
		"GetTotalItemsQuery must be created via NewGetTotalItemsQuery constructor",
	)
	ErrGetTotalContainersQueryIsNotConstructed = errors.New(
		"GetTotalContainersQuery must be created via NewGetTotalContainersQuery constructor",
	)
)

// GetTotalItemsQuery counts the items ever created by the local courier registry.
// Ids run from 1 to the total.
type GetTotalItemsQuery struct {
	guard guard.ConstructorGuard
}

func NewGetTotalItemsQuery() GetTotalItemsQuery {
	return GetTotalItemsQuery{guard: guard.NewConstructorGuard()}
}

func (q GetTotalItemsQuery) Validate() error {
	return q.guard.Validate(ErrGetTotalItemsQueryIsNotConstructed)
}

// GetTotalContainersQuery counts the containers ever created by the local container registry.
type GetTotalContainersQuery struct {
	guard guard.ConstructorGuard
}

func NewGetTotalContainersQuery() GetTotalContainersQuery {
	return GetTotalContainersQuery{guard: guard.NewConstructorGuard()}
}

func (q GetTotalContainersQuery) Validate() error {
	return q.guard.Validate(ErrGetTotalContainersQueryIsNotConstructed)
}

type GetTotalItemsQueryHandler struct {
	db       *gorm.DB
	registry kernel.Address
}

func NewGetTotalItemsQueryHandler(db *gorm.DB, registryAddress kernel.Address) GetTotalItemsQueryHandler {
	return GetTotalItemsQueryHandler{db: db, registry: registryAddress}
}

func (h GetTotalItemsQueryHandler) Handle(ctx context.Context, query GetTotalItemsQuery) (uint64, error) {
	if err := query.Validate(); err != nil {
		return 0, err
	}
	return countRows(ctx, h.db, "items", h.registry)
}

type GetTotalContainersQueryHandler struct {
	db       *gorm.DB
	registry kernel.Address
}

func NewGetTotalContainersQueryHandler(db *gorm.DB, registryAddress kernel.Address) GetTotalContainersQueryHandler {
	return GetTotalContainersQueryHandler{db: db, registry: registryAddress}
}

func (h GetTotalContainersQueryHandler) Handle(ctx context.Context, query GetTotalContainersQuery) (uint64, error) {
	if err := query.Validate(); err != nil {
		return 0, err
	}
	return countRows(ctx, h.db, "containers", h.registry)
}

func countRows(ctx context.Context, db *gorm.DB, table string, registry kernel.Address) (uint64, error) {
	var total int64
	if err := db.WithContext(ctx).Table(table).Where("registry = ?", registry.Hex()).Count(&total).Error; err != nil {
		return 0, err
	}
	return uint64(total), nil //nolint:gosec // COUNT is never negative
}
