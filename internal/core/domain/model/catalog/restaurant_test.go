package catalog_test

import (
	"testing"

	"delify/internal/core/domain/model/catalog"
	"delify/internal/core/domain/model/kernel"
	"delify/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewRestaurant(t *testing.T) {
	t.Run("valid", func(t *testing.T) {
		id := kernel.NewUUID()
		r, err := catalog.NewRestaurant(id, "Tasty Corner", "1 Food St")
		require.NoError(t, err)
		assert.Equal(t, id, r.ID())
		assert.Nil(t, r.OwnerID())
		assert.Empty(t, r.OwnerEmail())
	})

	t.Run("empty name", func(t *testing.T) {
		_, err := catalog.NewRestaurant(kernel.NewUUID(), "", "1 Food St")
		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})
}

func TestRestoreRestaurant_CarriesOwnerLink(t *testing.T) {
	ownerID := kernel.NewUUID()
	r, err := catalog.RestoreRestaurant(
		kernel.NewUUID(), &ownerID, "owner@example.com",
		"Tasty Corner", "Neapolitan pizza", "img.png",
		[]string{"italian"}, "1 Food St", 4.5, "25-30 min", 600)
	require.NoError(t, err)

	require.NotNil(t, r.OwnerID())
	assert.Equal(t, ownerID, *r.OwnerID())
	assert.Equal(t, "owner@example.com", r.OwnerEmail())
}

func TestNewMenuItem(t *testing.T) {
	restaurantID := kernel.NewUUID()

	t.Run("valid", func(t *testing.T) {
		m, err := catalog.NewMenuItem(kernel.NewUUID(), restaurantID, "Margherita", 250)
		require.NoError(t, err)
		assert.Equal(t, restaurantID, m.RestaurantID())
		assert.True(t, m.IsAvailable())
	})

	t.Run("negative price", func(t *testing.T) {
		_, err := catalog.NewMenuItem(kernel.NewUUID(), restaurantID, "Margherita", -1)
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("empty name", func(t *testing.T) {
		_, err := catalog.NewMenuItem(kernel.NewUUID(), restaurantID, "", 250)
		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})
}
