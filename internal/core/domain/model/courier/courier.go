package courier

import (
	"errors"
	"math"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/pkg/errs"
	"dispatch/internal/pkg/guard"
)

// Domain errors for courier operations.
var (
	// ErrRegionsAreRequired is returned when attempting to create a courier without regions.
	ErrRegionsAreRequired = errs.NewValueIsRequiredError("regions")
	// ErrRegionsAreNotUnique is returned when the regions set contains duplicates.
	ErrRegionsAreNotUnique = errs.NewValueIsInvalidError("regions")
	// ErrCourierIsNotConstructed is returned when using an improperly initialized Courier.
	ErrCourierIsNotConstructed = errors.New("Courier must be created via NewCourier constructor")
)

// ID uniquely identifies a courier. Identifiers are assigned by the client at
// import time, are non-negative, and are never reused.
type ID int64

// Courier represents a delivery agent in the dispatch system.
// It is an aggregate root that manages courier identity, availability, and
// carrying constraints used by the reconciliation engine.
//
// Key responsibilities:
//   - Managing courier identity (client-assigned integer id)
//   - Holding the vehicle type that bounds order weight via carrying capacity
//   - Holding the coverage regions and daily working hours
//   - Merging partial profile updates while preserving untouched fields
//
// Business rules:
//   - Courier id must be non-negative and is immutable after construction
//   - Transport type must be one of the known vehicle kinds
//   - Regions must be present, non-negative, and free of duplicates
//   - Every working-hours entry must be a constructed TimeWindow
//   - Rating and earnings are optional and non-negative when present
//
// Example usage:
//
//	hours, _ := kernel.ParseTimeWindows([]string{"09:00-18:00"})
//	courier, err := NewCourier(7, TransportBike, []int64{1, 12, 22}, hours)
//	if err != nil {
//	    // Handle construction error
//	}
type Courier struct {
	// id uniquely identifies the courier
	id ID
	// transportType determines the courier's carrying capacity
	transportType TransportType
	// regions are the delivery regions the courier covers
	regions []int64
	// workingHours are the daily windows the courier is on shift
	workingHours []kernel.TimeWindow
	// rating is the optional service rating, absent until first computed
	rating *float64
	// earnings is the optional accumulated earnings counter
	earnings *int64
	// guard ensures the courier was properly constructed
	guard guard.ConstructorGuard
}

// NewCourier creates a new Courier with the specified profile.
// This is the constructor used for imported couriers: rating and earnings
// start absent and appear later through other flows.
//
// All parameters are validated; construction fails with the aggregated
// validation errors if any of them is invalid.
func NewCourier(
	id ID,
	transportType TransportType,
	regions []int64,
	workingHours []kernel.TimeWindow,
) (*Courier, error) {
	courier := &Courier{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		courier.setID(id),
		courier.setTransportType(transportType),
		courier.setRegions(regions),
		courier.setWorkingHours(workingHours),
	); err != nil {
		return nil, err
	}

	return courier, nil
}

// RestoreCourier reconstructs a Courier aggregate from persistent storage,
// including the optional rating and earnings fields. The restored courier
// behaves identically to one created through normal domain operations.
func RestoreCourier(
	id ID,
	transportType TransportType,
	regions []int64,
	workingHours []kernel.TimeWindow,
	rating *float64,
	earnings *int64,
) (*Courier, error) {
	courier := &Courier{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		courier.setID(id),
		courier.setTransportType(transportType),
		courier.setRegions(regions),
		courier.setWorkingHours(workingHours),
		courier.setRating(rating),
		courier.setEarnings(earnings),
	); err != nil {
		return nil, err
	}

	return courier, nil
}

// Patch carries a partial courier update. A nil field means "leave the stored
// value untouched"; a non-nil field (including an empty slice) replaces it.
// Rating is deliberately absent: it is derived elsewhere and never written by
// profile updates.
type Patch struct {
	TransportType *TransportType
	Regions       []int64
	WorkingHours  []kernel.TimeWindow
	Earnings      *int64
}

// IsEmpty reports whether the patch carries no fields at all.
func (p Patch) IsEmpty() bool {
	return p.TransportType == nil && p.Regions == nil && p.WorkingHours == nil && p.Earnings == nil
}

// ApplyPatch merges the fields present in the patch into the aggregate,
// validating each incoming value. Fields absent from the patch keep their
// current values. The merged state is the "prospective" profile the
// reconciliation engine evaluates assigned orders against before persisting.
func (c *Courier) ApplyPatch(patch Patch) error {
	if err := c.Validate(); err != nil {
		return err
	}

	if patch.TransportType != nil {
		if err := c.setTransportType(*patch.TransportType); err != nil {
			return err
		}
	}

	if patch.Regions != nil {
		if err := c.setRegions(patch.Regions); err != nil {
			return err
		}
	}

	if patch.WorkingHours != nil {
		if err := c.setWorkingHours(patch.WorkingHours); err != nil {
			return err
		}
	}

	if patch.Earnings != nil {
		if err := c.setEarnings(patch.Earnings); err != nil {
			return err
		}
	}

	return nil
}

// IsEqual compares two couriers for equality based on their unique identifiers.
func (c *Courier) IsEqual(other *Courier) bool {
	if other == nil {
		return false
	}
	return c.id == other.id
}

// Validate checks if the Courier was properly constructed using a constructor.
// The zero value of Courier is invalid and will fail this validation.
func (c *Courier) Validate() error {
	if c == nil {
		return ErrCourierIsNotConstructed
	}
	return c.guard.Validate(ErrCourierIsNotConstructed)
}

// ID returns the unique identifier of the courier.
func (c *Courier) ID() ID {
	return c.id
}

// TransportType returns the courier's vehicle type.
func (c *Courier) TransportType() TransportType {
	return c.transportType
}

// Capacity returns the maximum order weight the courier's vehicle may carry.
func (c *Courier) Capacity() (int, error) {
	return c.transportType.Capacity()
}

// Regions returns the delivery regions the courier covers.
// The returned slice is a copy to prevent external modification.
func (c *Courier) Regions() []int64 {
	out := make([]int64, len(c.regions))
	copy(out, c.regions)
	return out
}

// CoversRegion reports whether the courier serves the given region.
func (c *Courier) CoversRegion(region int64) bool {
	for _, r := range c.regions {
		if r == region {
			return true
		}
	}
	return false
}

// WorkingHours returns the courier's daily shift windows.
// The returned slice is a copy to prevent external modification.
func (c *Courier) WorkingHours() []kernel.TimeWindow {
	out := make([]kernel.TimeWindow, len(c.workingHours))
	copy(out, c.workingHours)
	return out
}

// Rating returns the courier's service rating, or nil when not yet computed.
func (c *Courier) Rating() *float64 {
	if c.rating == nil {
		return nil
	}
	rating := *c.rating
	return &rating
}

// Earnings returns the courier's accumulated earnings, or nil when absent.
func (c *Courier) Earnings() *int64 {
	if c.earnings == nil {
		return nil
	}
	earnings := *c.earnings
	return &earnings
}

// setID assigns the identifier after validating it is non-negative.
func (c *Courier) setID(id ID) error {
	if id < 0 {
		return errs.NewValueIsOutOfRangeError("courier_id", id, 0, int64(math.MaxInt64))
	}
	c.id = id
	return nil
}

// setTransportType assigns the vehicle type after validating it is a known kind.
func (c *Courier) setTransportType(transportType TransportType) error {
	if _, err := transportType.Capacity(); err != nil {
		return err
	}
	c.transportType = transportType
	return nil
}

// setRegions assigns the coverage regions, rejecting missing sets, negative
// regions, and duplicates.
func (c *Courier) setRegions(regions []int64) error {
	if regions == nil {
		return ErrRegionsAreRequired
	}

	seen := make(map[int64]struct{}, len(regions))
	for _, region := range regions {
		if region < 0 {
			return errs.NewValueIsOutOfRangeError("region", region, 0, int64(math.MaxInt64))
		}
		if _, ok := seen[region]; ok {
			return ErrRegionsAreNotUnique
		}
		seen[region] = struct{}{}
	}

	c.regions = make([]int64, len(regions))
	copy(c.regions, regions)
	return nil
}

// setWorkingHours assigns the shift windows after validating each was
// constructed through a kernel constructor.
func (c *Courier) setWorkingHours(workingHours []kernel.TimeWindow) error {
	for _, w := range workingHours {
		if err := w.Validate(); err != nil {
			return err
		}
	}

	c.workingHours = make([]kernel.TimeWindow, len(workingHours))
	copy(c.workingHours, workingHours)
	return nil
}

// setRating assigns the optional rating, rejecting negative values.
func (c *Courier) setRating(rating *float64) error {
	if rating == nil {
		c.rating = nil
		return nil
	}
	if *rating < 0 {
		return errs.NewValueIsOutOfRangeError("rating", *rating, 0, math.MaxFloat64)
	}
	value := *rating
	c.rating = &value
	return nil
}

// setEarnings assigns the optional earnings counter, rejecting negative values.
func (c *Courier) setEarnings(earnings *int64) error {
	if earnings == nil {
		c.earnings = nil
		return nil
	}
	if *earnings < 0 {
		return errs.NewValueIsOutOfRangeError("earnings", *earnings, 0, int64(math.MaxInt64))
	}
	value := *earnings
	c.earnings = &value
	return nil
}
