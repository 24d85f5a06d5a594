package services

import (
	"dispatch/internal/core/domain/model/courier"
	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/core/domain/model/order"
)

// ReconciliationPolicy is a domain service that decides which of a courier's
// assigned orders no longer conform to the courier's (prospective) profile
// and must be evicted back to the unassigned pool.
//
// An order is disqualified when either:
//   - its weight exceeds the carrying capacity of the courier's vehicle, or
//   - any of its delivery windows overlaps any of the courier's working hours.
//
// The second rule is conflict detection, not fit detection: an overlap between
// delivery hours and working hours disqualifies the order. Assignment applies
// the inverse rule (see OrderDispatcher), so the two policies agree.
type ReconciliationPolicy struct{}

// NewReconciliationPolicy creates a new ReconciliationPolicy instance.
func NewReconciliationPolicy() ReconciliationPolicy {
	return ReconciliationPolicy{}
}

// OrdersToEvict evaluates every assigned order against the courier's profile
// and returns the ids of the orders that must be evicted. The input slice is
// expected to come from a single consistent snapshot taken under the
// courier's exclusive lock; the policy itself is pure.
func (p ReconciliationPolicy) OrdersToEvict(
	prospective *courier.Courier,
	assigned []*order.Order,
) ([]order.ID, error) {
	if err := prospective.Validate(); err != nil {
		return nil, err
	}

	capacity, err := prospective.Capacity()
	if err != nil {
		return nil, err
	}

	workingHours := prospective.WorkingHours()

	var evicted []order.ID
	for _, o := range assigned {
		if err := o.Validate(); err != nil {
			return nil, err
		}

		if o.Weight() > float64(capacity) {
			evicted = append(evicted, o.ID())
			continue
		}

		conflicts, err := kernel.AnyOverlap(o.DeliveryHours(), workingHours)
		if err != nil {
			return nil, err
		}
		if conflicts {
			evicted = append(evicted, o.ID())
		}
	}

	return evicted, nil
}
