package services_test

import (
	"testing"

	"dispatch/internal/core/domain/model/courier"
	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/core/domain/model/order"
	"dispatch/internal/core/domain/services"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Test helper functions.
func buildCourier(
	t *testing.T,
	id int64, transportType courier.TransportType, regions []int64, workingHours ...string,
) *courier.Courier {
	t.Helper()
	windows, err := kernel.ParseTimeWindows(workingHours)
	require.NoError(t, err)

	c, err := courier.NewCourier(courier.ID(id), transportType, regions, windows)
	require.NoError(t, err)
	return c
}

func buildOrder(
	t *testing.T,
	id int64, weight float64, region int64, deliveryHours ...string,
) *order.Order {
	t.Helper()
	windows, err := kernel.ParseTimeWindows(deliveryHours)
	require.NoError(t, err)

	o, err := order.NewOrder(order.ID(id), weight, region, windows)
	require.NoError(t, err)
	return o
}

func TestReconciliationPolicy_OrdersToEvict(t *testing.T) {
	policy := services.NewReconciliationPolicy()

	t.Run("should keep orders that conform to the profile", func(t *testing.T) {
		c := buildCourier(t, 1, courier.TransportBike, []int64{1}, "09:00-12:00")
		assigned := []*order.Order{
			buildOrder(t, 10, 5, 1, "13:00-14:00"),
			buildOrder(t, 11, 15, 1, "14:00-15:00"),
		}

		evicted, err := policy.OrdersToEvict(c, assigned)

		require.NoError(t, err)
		assert.Empty(t, evicted)
	})

	t.Run("should evict orders heavier than the carrying capacity", func(t *testing.T) {
		c := buildCourier(t, 1, courier.TransportFoot, []int64{1}, "09:00-12:00")
		assigned := []*order.Order{
			buildOrder(t, 10, 10, 1, "13:00-14:00"),
			buildOrder(t, 11, 10.5, 1, "14:00-15:00"),
		}

		evicted, err := policy.OrdersToEvict(c, assigned)

		require.NoError(t, err)
		assert.Equal(t, []order.ID{11}, evicted)
	})

	t.Run("should evict orders whose delivery hours overlap the working hours", func(t *testing.T) {
		c := buildCourier(t, 1, courier.TransportCar, []int64{1}, "09:00-12:00")
		assigned := []*order.Order{
			buildOrder(t, 10, 5, 1, "11:00-13:00"),
			buildOrder(t, 11, 5, 1, "12:00-14:00"),
		}

		evicted, err := policy.OrdersToEvict(c, assigned)

		require.NoError(t, err)
		// Windows are half-open: touching at 12:00 is not an overlap
		assert.Equal(t, []order.ID{10}, evicted)
	})

	t.Run("should detect overlap across midnight", func(t *testing.T) {
		c := buildCourier(t, 1, courier.TransportCar, []int64{1}, "22:00-02:00")
		assigned := []*order.Order{
			buildOrder(t, 10, 5, 1, "01:00-03:00"),
			buildOrder(t, 11, 5, 1, "03:00-05:00"),
		}

		evicted, err := policy.OrdersToEvict(c, assigned)

		require.NoError(t, err)
		assert.Equal(t, []order.ID{10}, evicted)
	})

	t.Run("should preserve assignment order in the eviction list", func(t *testing.T) {
		c := buildCourier(t, 1, courier.TransportFoot, []int64{1}, "09:00-12:00")
		assigned := []*order.Order{
			buildOrder(t, 30, 40, 1, "13:00-14:00"),
			buildOrder(t, 10, 5, 1, "10:00-11:00"),
			buildOrder(t, 20, 50, 1, "14:00-15:00"),
		}

		evicted, err := policy.OrdersToEvict(c, assigned)

		require.NoError(t, err)
		assert.Equal(t, []order.ID{30, 10, 20}, evicted)
	})

	t.Run("should handle empty assignment set", func(t *testing.T) {
		c := buildCourier(t, 1, courier.TransportBike, []int64{1}, "09:00-12:00")

		evicted, err := policy.OrdersToEvict(c, nil)

		require.NoError(t, err)
		assert.Empty(t, evicted)
	})

	t.Run("should return error for unconstructed courier", func(t *testing.T) {
		var c courier.Courier

		_, err := policy.OrdersToEvict(&c, nil)

		require.Error(t, err)
		assert.ErrorIs(t, err, courier.ErrCourierIsNotConstructed)
	})

	t.Run("should return error for unconstructed assigned order", func(t *testing.T) {
		c := buildCourier(t, 1, courier.TransportBike, []int64{1}, "09:00-12:00")

		_, err := policy.OrdersToEvict(c, []*order.Order{{}})

		require.Error(t, err)
		assert.ErrorIs(t, err, order.ErrOrderIsNotConstructed)
	})
}
