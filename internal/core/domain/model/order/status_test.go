package order_test

import (
	"testing"

	"delify/internal/core/domain/model/order"
	"delify/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatus_Validate(t *testing.T) {
	t.Run("valid statuses pass validation", func(t *testing.T) {
		for _, s := range []order.Status{
			order.Placed,
			order.Preparing,
			order.OutForDelivery,
			order.Delivered,
			order.Cancelled,
			order.OutOfStock,
		} {
			assert.NoError(t, s.Validate(), s.String())
		}
	})

	t.Run("unknown status fails validation", func(t *testing.T) {
		err := order.Unknown.Validate()
		require.Error(t, err)
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("out of range status fails validation", func(t *testing.T) {
		err := order.Status(42).Validate()
		require.Error(t, err)
	})
}

func TestStatus_String(t *testing.T) {
	tests := []struct {
		status   order.Status
		expected string
	}{
		{order.Placed, "placed"},
		{order.Preparing, "preparing"},
		{order.OutForDelivery, "out_for_delivery"},
		{order.Delivered, "delivered"},
		{order.Cancelled, "cancelled"},
		{order.OutOfStock, "out_of_stock"},
		{order.Unknown, "unknown"},
		{order.Status(99), "unknown"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.expected, tt.status.String())
	}
}

func TestParseStatus(t *testing.T) {
	t.Run("parses every wire name", func(t *testing.T) {
		for _, name := range []string{
			"placed", "preparing", "out_for_delivery", "delivered", "cancelled", "out_of_stock",
		} {
			s, err := order.ParseStatus(name)
			require.NoError(t, err)
			assert.Equal(t, name, s.String())
		}
	})

	t.Run("rejects unrecognized names", func(t *testing.T) {
		_, err := order.ParseStatus("teleported")
		require.Error(t, err)
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("rejects the reserved unknown name", func(t *testing.T) {
		_, err := order.ParseStatus("unknown")
		require.Error(t, err)
	})
}

func TestStatus_IsTerminal(t *testing.T) {
	assert.False(t, order.Placed.IsTerminal())
	assert.False(t, order.Preparing.IsTerminal())
	assert.False(t, order.OutForDelivery.IsTerminal())
	assert.True(t, order.Delivered.IsTerminal())
	assert.True(t, order.Cancelled.IsTerminal())
	assert.True(t, order.OutOfStock.IsTerminal())
}

func TestStatus_Next(t *testing.T) {
	t.Run("forward chain", func(t *testing.T) {
		next, ok := order.Placed.Next()
		require.True(t, ok)
		assert.Equal(t, order.Preparing, next)

		next, ok = order.Preparing.Next()
		require.True(t, ok)
		assert.Equal(t, order.OutForDelivery, next)

		next, ok = order.OutForDelivery.Next()
		require.True(t, ok)
		assert.Equal(t, order.Delivered, next)
	})

	t.Run("terminal and invalid statuses have no successor", func(t *testing.T) {
		for _, s := range []order.Status{
			order.Delivered, order.Cancelled, order.OutOfStock, order.Unknown,
		} {
			_, ok := s.Next()
			assert.False(t, ok, s.String())
		}
	})
}
