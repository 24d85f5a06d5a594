package order

import (
	"errors"
	"math"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/pkg/errs"
	"dispatch/internal/pkg/guard"
)

// Domain errors for order operations.
var (
	// ErrWeightIsRequired is returned when attempting to create an order with non-positive weight.
	ErrWeightIsRequired = errs.NewValueIsRequiredError("weight")
	// ErrOrderIsNotConstructed is returned when using an improperly initialized Order.
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder constructor")
)

// ID uniquely identifies an order. Identifiers are assigned by the client at
// import time and are never reused.
type ID int64

// Order represents a delivery task in the dispatch system.
// Its physical attributes (weight, region, delivery hours) are immutable once
// created; only the assignment state changes, and that state lives in the
// assignment relation rather than on the entity itself. An order is either
// assigned to exactly one courier or sitting in the unassigned pool.
//
// Example usage:
//
//	hours, _ := kernel.ParseTimeWindows([]string{"11:00-13:00"})
//	order, err := NewOrder(4, 7.5, 12, hours)
//	if err != nil {
//	    // Handle construction error
//	}
type Order struct {
	// id uniquely identifies the order
	id ID
	// weight is the order weight checked against courier carrying capacity
	weight float64
	// region is the delivery region the order belongs to
	region int64
	// deliveryHours are the windows the order must be delivered within
	deliveryHours []kernel.TimeWindow
	// guard ensures the order was properly constructed
	guard guard.ConstructorGuard
}

// NewOrder creates a new Order with the specified attributes.
// Weight must be strictly positive; the region must be non-negative; every
// delivery window must be a constructed TimeWindow. Construction fails with
// the aggregated validation errors if any parameter is invalid.
func NewOrder(
	id ID,
	weight float64,
	region int64,
	deliveryHours []kernel.TimeWindow,
) (*Order, error) {
	order := &Order{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		order.setID(id),
		order.setWeight(weight),
		order.setRegion(region),
		order.setDeliveryHours(deliveryHours),
	); err != nil {
		return nil, err
	}

	return order, nil
}

// IsEqual compares two orders for equality based on their unique identifiers.
func (o *Order) IsEqual(other *Order) bool {
	if other == nil {
		return false
	}
	return o.id == other.id
}

// Validate checks if the Order was properly constructed using the NewOrder constructor.
// The zero value of Order is invalid and will fail this validation.
func (o *Order) Validate() error {
	if o == nil {
		return ErrOrderIsNotConstructed
	}
	return o.guard.Validate(ErrOrderIsNotConstructed)
}

// ID returns the unique identifier of the order.
func (o *Order) ID() ID {
	return o.id
}

// Weight returns the order weight.
func (o *Order) Weight() float64 {
	return o.weight
}

// Region returns the delivery region of the order.
func (o *Order) Region() int64 {
	return o.region
}

// DeliveryHours returns the windows the order must be delivered within.
// The returned slice is a copy to prevent external modification.
func (o *Order) DeliveryHours() []kernel.TimeWindow {
	out := make([]kernel.TimeWindow, len(o.deliveryHours))
	copy(out, o.deliveryHours)
	return out
}

// setID assigns the identifier after validating it is non-negative.
func (o *Order) setID(id ID) error {
	if id < 0 {
		return errs.NewValueIsOutOfRangeError("order_id", id, 0, int64(math.MaxInt64))
	}
	o.id = id
	return nil
}

// setWeight assigns the weight after validating it is strictly positive.
func (o *Order) setWeight(weight float64) error {
	if weight <= 0 {
		return ErrWeightIsRequired
	}
	o.weight = weight
	return nil
}

// setRegion assigns the region after validating it is non-negative.
func (o *Order) setRegion(region int64) error {
	if region < 0 {
		return errs.NewValueIsOutOfRangeError("region", region, 0, int64(math.MaxInt64))
	}
	o.region = region
	return nil
}

// setDeliveryHours assigns the delivery windows after validating each was
// constructed through a kernel constructor.
func (o *Order) setDeliveryHours(deliveryHours []kernel.TimeWindow) error {
	for _, w := range deliveryHours {
		if err := w.Validate(); err != nil {
			return err
		}
	}

	o.deliveryHours = make([]kernel.TimeWindow, len(deliveryHours))
	copy(o.deliveryHours, deliveryHours)
	return nil
}
