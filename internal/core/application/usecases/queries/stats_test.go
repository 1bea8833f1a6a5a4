package queries

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestComputeStats(t *testing.T) {
	orders := []OrderView{
		{Status: "placed", TotalAmount: 100},
		{Status: "preparing", TotalAmount: 200},
		{Status: "out_for_delivery", TotalAmount: 300},
		{Status: "delivered", TotalAmount: 400},
		{Status: "cancelled", TotalAmount: 500},
		{Status: "out_of_stock", TotalAmount: 600},
	}

	stats := computeStats(orders)

	assert.Equal(t, 6, stats.TotalOrders)
	assert.Equal(t, 4, stats.ActiveOrders)
	assert.Equal(t, 1, stats.CompletedOrders)
	assert.InDelta(t, 1600.0, stats.TotalRevenue, 1e-9)
}

func TestComputeStats_Empty(t *testing.T) {
	stats := computeStats(nil)
	assert.Equal(t, DashboardStats{}, stats)
}
