package registry_test

import (
	"testing"

	"tracking/internal/core/domain/model/kernel"
	"tracking/internal/core/domain/model/registry"
	"tracking/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var address = kernel.MustNewAddress("0x4444444444444444444444444444444444444444")

func TestNewRegistry(t *testing.T) {
	r, err := registry.NewRegistry(address, registry.Container)

	require.NoError(t, err)
	require.NoError(t, r.Validate())
	assert.Equal(t, registry.Container, r.Kind())
	assert.Zero(t, r.LastID())

	_, err = registry.NewRegistry(kernel.Address{}, registry.Courier)
	require.ErrorIs(t, err, errs.ErrValueIsRequired)

	_, err = registry.NewRegistry(address, registry.Kind(0))
	require.ErrorIs(t, err, errs.ErrValueIsInvalid)
}

func TestRegistry_NextID(t *testing.T) {
	r, err := registry.RestoreRegistry(address, registry.Courier, 41)
	require.NoError(t, err)

	assert.Equal(t, uint64(42), r.NextID())
	assert.Equal(t, uint64(43), r.NextID())
	assert.Equal(t, uint64(43), r.LastID())
}

func TestRegistry_ExpectKind(t *testing.T) {
	r, err := registry.NewRegistry(address, registry.Courier)
	require.NoError(t, err)

	require.NoError(t, r.ExpectKind(registry.Courier))
	err = r.ExpectKind(registry.Container)
	require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	assert.Contains(t, err.Error(), "Courier registry")
}

func TestRegistry_RecordPendingItem(t *testing.T) {
	origin := kernel.MustNewAddress("0x1111111111111111111111111111111111111111")
	ref, err := kernel.NewItemRef(origin, 3)
	require.NoError(t, err)

	t.Run("container_registry_records_event", func(t *testing.T) {
		r, _ := registry.NewRegistry(address, registry.Container)

		require.NoError(t, r.RecordPendingItem(kernel.MustNewDestination("MY"), ref))

		require.Len(t, r.DomainEvents(), 1)
		event := r.DomainEvents()[0]
		assert.Equal(t, registry.EventPendingItemEnqueued, event.Name)
		assert.Equal(t, "MY", event.Payload["destination"])
		assert.Equal(t, uint64(3), event.Payload["originItemId"])

		r.ClearDomainEvents()
		assert.Empty(t, r.DomainEvents())
	})

	t.Run("courier_registry_has_no_queue", func(t *testing.T) {
		r, _ := registry.NewRegistry(address, registry.Courier)

		require.ErrorIs(t, r.RecordPendingItem(kernel.MustNewDestination("MY"), ref), errs.ErrValueIsInvalid)
	})
}
