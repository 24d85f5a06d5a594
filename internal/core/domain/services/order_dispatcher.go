package services

import (
	"errors"

	"dispatch/internal/core/domain/model/courier"
	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/core/domain/model/order"
)

// ErrNoCompatibleCourier is returned when no provided courier can take the order.
// This occurs when either no couriers are provided or none of them covers the
// order's region, can carry its weight, and is free of schedule conflicts.
var ErrNoCompatibleCourier = errors.New("no compatible courier")

// OrderDispatcher is a domain service that selects a courier for an unassigned
// order. It is the inverse of ReconciliationPolicy: a courier is compatible
// with an order exactly when the reconciliation engine would NOT evict that
// order from that courier, so a freshly assigned order always survives a
// no-op profile update.
//
// Compatibility rules:
//   - The courier covers the order's region
//   - The order weight is within the courier's carrying capacity
//   - No delivery window of the order overlaps the courier's working hours
//
// Example usage:
//
//	dispatcher := NewOrderDispatcher()
//	chosen, err := dispatcher.Dispatch(order, couriers)
//	if errors.Is(err, ErrNoCompatibleCourier) {
//	    // Leave the order in the pool for a later pass
//	    return
//	}
type OrderDispatcher struct{}

// NewOrderDispatcher creates a new OrderDispatcher instance.
func NewOrderDispatcher() OrderDispatcher {
	return OrderDispatcher{}
}

// Dispatch finds a courier compatible with the given order.
// Returns ErrNoCompatibleCourier if no provided courier qualifies.
func (d OrderDispatcher) Dispatch(o *order.Order, couriers []*courier.Courier) (*courier.Courier, error) {
	if err := o.Validate(); err != nil {
		return nil, err
	}

	for _, c := range couriers {
		if err := c.Validate(); err != nil {
			return nil, err
		}

		compatible, err := d.isCompatible(o, c)
		if err != nil {
			return nil, err
		}
		if compatible {
			return c, nil
		}
	}

	return nil, ErrNoCompatibleCourier
}

// isCompatible applies the compatibility rules for a single courier-order pair.
func (d OrderDispatcher) isCompatible(o *order.Order, c *courier.Courier) (bool, error) {
	if !c.CoversRegion(o.Region()) {
		return false, nil
	}

	capacity, err := c.Capacity()
	if err != nil {
		return false, err
	}
	if o.Weight() > float64(capacity) {
		return false, nil
	}

	conflicts, err := kernel.AnyOverlap(o.DeliveryHours(), c.WorkingHours())
	if err != nil {
		return false, err
	}

	return !conflicts, nil
}
