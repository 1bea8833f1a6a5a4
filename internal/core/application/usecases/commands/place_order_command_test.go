package commands_test

import (
	"testing"

	"delify/internal/core/application/usecases/commands"
	"delify/internal/core/domain/model/kernel"
	"delify/internal/core/domain/model/order"
	"delify/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testItems(t *testing.T) []order.Item {
	t.Helper()
	item, err := order.NewItem(kernel.NewUUID(), 2, 100)
	require.NoError(t, err)
	return []order.Item{item}
}

func TestNewPlaceOrderCommand(t *testing.T) {
	t.Run("creates valid command", func(t *testing.T) {
		restaurantID := kernel.NewUUID()
		items := testItems(t)

		cmd, err := commands.NewPlaceOrderCommand("uid-1", restaurantID, items, 200, "Flat 1")

		require.NoError(t, err)
		require.NoError(t, cmd.Validate())
		assert.Equal(t, "uid-1", cmd.ExternalUID())
		assert.True(t, cmd.RestaurantID().IsEqual(restaurantID))
		assert.Len(t, cmd.Items(), 1)
		assert.InDelta(t, 200.0, cmd.TotalAmount(), 1e-9)
		assert.Equal(t, "Flat 1", cmd.DeliveryAddress())
	})

	t.Run("requires user identity", func(t *testing.T) {
		_, err := commands.NewPlaceOrderCommand("", kernel.NewUUID(), testItems(t), 200, "Flat 1")
		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("requires restaurant reference", func(t *testing.T) {
		_, err := commands.NewPlaceOrderCommand("uid-1", kernel.UUID{}, testItems(t), 200, "Flat 1")
		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("requires non-empty items", func(t *testing.T) {
		_, err := commands.NewPlaceOrderCommand("uid-1", kernel.NewUUID(), nil, 200, "Flat 1")
		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("requires delivery address", func(t *testing.T) {
		_, err := commands.NewPlaceOrderCommand("uid-1", kernel.NewUUID(), testItems(t), 200, "")
		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("zero value fails validation", func(t *testing.T) {
		var cmd commands.PlaceOrderCommand
		require.ErrorIs(t, cmd.Validate(), commands.ErrPlaceOrderCommandIsNotConstructed)
	})
}
