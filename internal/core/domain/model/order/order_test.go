package order_test

import (
	"testing"
	"time"

	"delify/internal/core/domain/model/kernel"
	"delify/internal/core/domain/model/order"
	"delify/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustItem(t *testing.T, quantity int, unitPrice float64) order.Item {
	t.Helper()
	item, err := order.NewItem(kernel.NewUUID(), quantity, unitPrice)
	require.NoError(t, err)
	return item
}

func TestNewItem(t *testing.T) {
	t.Run("creates a valid line", func(t *testing.T) {
		id := kernel.NewUUID()
		item, err := order.NewItem(id, 2, 100)

		require.NoError(t, err)
		assert.True(t, item.MenuItemID().IsEqual(id))
		assert.Equal(t, 2, item.Quantity())
		assert.InDelta(t, 100.0, item.UnitPrice(), 1e-9)
		assert.InDelta(t, 200.0, item.Extension(), 1e-9)
	})

	t.Run("rejects zero quantity", func(t *testing.T) {
		_, err := order.NewItem(kernel.NewUUID(), 0, 100)
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("rejects negative unit price", func(t *testing.T) {
		_, err := order.NewItem(kernel.NewUUID(), 1, -5)
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("rejects unconstructed menu item id", func(t *testing.T) {
		_, err := order.NewItem(kernel.UUID{}, 1, 100)
		require.Error(t, err)
	})
}

func TestNewOrder(t *testing.T) {
	t.Run("creates order in placed status", func(t *testing.T) {
		items := []order.Item{mustItem(t, 2, 100)}

		o, err := order.NewOrder(
			kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(),
			items, 200, "Flat 1",
		)

		require.NoError(t, err)
		require.NoError(t, o.Validate())
		assert.Equal(t, order.Placed, o.Status())
		assert.InDelta(t, 200.0, o.TotalAmount(), 1e-9)
		assert.Equal(t, "Flat 1", o.DeliveryAddress())
		assert.Empty(t, o.EstimatedDeliveryTime())
		assert.False(t, o.CreatedAt().IsZero())
		assert.False(t, o.UpdatedAt().Before(o.CreatedAt()))
	})

	t.Run("rejects empty item list", func(t *testing.T) {
		_, err := order.NewOrder(
			kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(),
			nil, 0, "Flat 1",
		)
		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("rejects empty delivery address", func(t *testing.T) {
		items := []order.Item{mustItem(t, 1, 50)}
		_, err := order.NewOrder(
			kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(),
			items, 50, "",
		)
		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("rejects total that does not match line extensions", func(t *testing.T) {
		items := []order.Item{mustItem(t, 2, 100)}
		_, err := order.NewOrder(
			kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(),
			items, 150, "Flat 1",
		)
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("rejects unconstructed references", func(t *testing.T) {
		items := []order.Item{mustItem(t, 1, 10)}

		_, err := order.NewOrder(kernel.UUID{}, kernel.NewUUID(), kernel.NewUUID(), items, 10, "a")
		require.Error(t, err)

		_, err = order.NewOrder(kernel.NewUUID(), kernel.UUID{}, kernel.NewUUID(), items, 10, "a")
		require.ErrorIs(t, err, errs.ErrValueIsRequired)

		_, err = order.NewOrder(kernel.NewUUID(), kernel.NewUUID(), kernel.UUID{}, items, 10, "a")
		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("items accessor returns a copy", func(t *testing.T) {
		items := []order.Item{mustItem(t, 1, 10)}
		o, err := order.NewOrder(
			kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(),
			items, 10, "Flat 1",
		)
		require.NoError(t, err)

		got := o.Items()
		require.Len(t, got, 1)
		got[0] = order.Item{}
		assert.Equal(t, 1, o.Items()[0].Quantity())
	})
}

func TestRestoreOrder(t *testing.T) {
	t.Run("restores persisted state without recomputing the total", func(t *testing.T) {
		items := []order.Item{mustItem(t, 2, 100)}
		created := time.Now().UTC().Add(-time.Hour)
		updated := created.Add(30 * time.Minute)

		// The stored total deliberately differs from the line sum: restores
		// trust what the database holds.
		o, err := order.RestoreOrder(
			kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(),
			items, 175, order.Preparing, "30-40 min", "Flat 1",
			created, updated,
		)

		require.NoError(t, err)
		assert.Equal(t, order.Preparing, o.Status())
		assert.InDelta(t, 175.0, o.TotalAmount(), 1e-9)
		assert.Equal(t, "30-40 min", o.EstimatedDeliveryTime())
		assert.Equal(t, created, o.CreatedAt())
		assert.Equal(t, updated, o.UpdatedAt())
	})

	t.Run("rejects invalid stored status", func(t *testing.T) {
		items := []order.Item{mustItem(t, 1, 10)}
		_, err := order.RestoreOrder(
			kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(),
			items, 10, order.Unknown, "", "Flat 1",
			time.Now(), time.Now(),
		)
		require.Error(t, err)
	})
}

func TestOrder_ChangeStatus(t *testing.T) {
	newPlacedOrder := func(t *testing.T) *order.Order {
		t.Helper()
		items := []order.Item{mustItem(t, 1, 100)}
		o, err := order.NewOrder(
			kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(),
			items, 100, "Flat 1",
		)
		require.NoError(t, err)
		return o
	}

	t.Run("advances along the forward chain", func(t *testing.T) {
		o := newPlacedOrder(t)
		before := o.UpdatedAt()

		require.NoError(t, o.ChangeStatus(order.Preparing))
		assert.Equal(t, order.Preparing, o.Status())
		assert.False(t, o.UpdatedAt().Before(before))
	})

	t.Run("same status twice is idempotent", func(t *testing.T) {
		o := newPlacedOrder(t)
		require.NoError(t, o.ChangeStatus(order.Preparing))
		require.NoError(t, o.ChangeStatus(order.Preparing))
		assert.Equal(t, order.Preparing, o.Status())
	})

	t.Run("operator override is allowed from any state", func(t *testing.T) {
		o := newPlacedOrder(t)
		require.NoError(t, o.ChangeStatus(order.Delivered))
		// Resurrecting a terminal order is permitted on purpose.
		require.NoError(t, o.ChangeStatus(order.Preparing))
		require.NoError(t, o.ChangeStatus(order.Cancelled))
		assert.Equal(t, order.Cancelled, o.Status())
	})

	t.Run("rejects unknown status", func(t *testing.T) {
		o := newPlacedOrder(t)
		require.Error(t, o.ChangeStatus(order.Unknown))
		assert.Equal(t, order.Placed, o.Status())
	})
}

func TestOrder_SetEstimatedDeliveryTime(t *testing.T) {
	items := []order.Item{mustItem(t, 1, 100)}
	o, err := order.NewOrder(
		kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(),
		items, 100, "Flat 1",
	)
	require.NoError(t, err)

	o.SetEstimatedDeliveryTime("25-35 min")
	assert.Equal(t, "25-35 min", o.EstimatedDeliveryTime())
}

func TestOrder_Validate(t *testing.T) {
	t.Run("zero value fails validation", func(t *testing.T) {
		var o order.Order
		require.ErrorIs(t, o.Validate(), order.ErrOrderIsNotConstructed)
	})

	t.Run("nil order fails validation", func(t *testing.T) {
		var o *order.Order
		require.ErrorIs(t, o.Validate(), order.ErrOrderIsNotConstructed)
	})
}
