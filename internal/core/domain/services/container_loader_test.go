package services_test

import (
	"testing"

	"tracking/internal/core/domain/model/container"
	"tracking/internal/core/domain/model/kernel"
	"tracking/internal/core/domain/model/registry"
	"tracking/internal/core/domain/services"
	"tracking/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	containerRegistry = kernel.MustNewAddress("0x4444444444444444444444444444444444444444")
	courierRegistry   = kernel.MustNewAddress("0x1111111111111111111111111111111111111111")
	receiver          = kernel.MustNewAddress("0x2222222222222222222222222222222222222222")
	my                = kernel.MustNewDestination("MY")
	sg                = kernel.MustNewDestination("SG")
)

func pending(t *testing.T, destination kernel.Destination, itemID uint64) services.PendingItem {
	t.Helper()
	ref, err := kernel.NewItemRef(courierRegistry, itemID)
	require.NoError(t, err)
	return services.PendingItem{Destination: destination, Ref: ref}
}

func attributes() services.ContainerAttributes {
	return services.ContainerAttributes{ShipmentType: 1, Destination: my, Receiver: receiver, LocationName: "Port Klang"}
}

func TestContainerLoader_Load(t *testing.T) {
	t.Run("loads_pending_items_in_order", func(t *testing.T) {
		reg, err := registry.RestoreRegistry(containerRegistry, registry.Container, 4)
		require.NoError(t, err)

		c, err := services.NewContainerLoader().Load(reg, attributes(), []services.PendingItem{
			pending(t, my, 7),
			pending(t, my, 3),
		})

		require.NoError(t, err)
		assert.Equal(t, uint64(5), c.ID())
		assert.Equal(t, uint64(5), reg.LastID())
		assert.Equal(t, container.Processing, c.Status())
		require.Len(t, c.Items(), 2)
		assert.Equal(t, uint64(7), c.Items()[0].ItemID())
		assert.Equal(t, uint64(3), c.Items()[1].ItemID())
	})

	t.Run("empty_queue", func(t *testing.T) {
		reg, _ := registry.NewRegistry(containerRegistry, registry.Container)

		c, err := services.NewContainerLoader().Load(reg, attributes(), nil)

		require.NoError(t, err)
		assert.Equal(t, uint64(1), c.ID())
		assert.Empty(t, c.Items())
	})

	t.Run("foreign_destination_is_rejected", func(t *testing.T) {
		reg, _ := registry.NewRegistry(containerRegistry, registry.Container)

		_, err := services.NewContainerLoader().Load(reg, attributes(), []services.PendingItem{pending(t, sg, 1)})

		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
		assert.Zero(t, reg.LastID())
	})

	t.Run("courier_registry_is_rejected", func(t *testing.T) {
		reg, _ := registry.NewRegistry(courierRegistry, registry.Courier)

		_, err := services.NewContainerLoader().Load(reg, attributes(), nil)

		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("invalid_receiver_does_not_consume_an_id", func(t *testing.T) {
		reg, _ := registry.NewRegistry(containerRegistry, registry.Container)
		s := attributes()
		s.Receiver = kernel.Address{}

		_, err := services.NewContainerLoader().Load(reg, s, nil)

		require.Error(t, err)
		assert.Zero(t, reg.LastID())
	})

	t.Run("unconstructed_registry", func(t *testing.T) {
		_, err := services.NewContainerLoader().Load(&registry.Registry{}, attributes(), nil)

		require.ErrorIs(t, err, registry.ErrRegistryIsNotConstructed)
	})
}
