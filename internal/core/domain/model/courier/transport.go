package courier

import (
	"dispatch/internal/pkg/errs"
)

// ErrInvalidTransportType is returned when a transport type tag is not one of
// the known vehicle kinds. Request validation is expected to reject unknown
// tags before they reach the domain, so hitting this error indicates a bug
// upstream rather than bad user input.
var ErrInvalidTransportType = errs.NewValueIsInvalidError("transport type")

// TransportType identifies the vehicle a courier delivers with.
// The vehicle determines carrying capacity: the heaviest single order
// the courier may be assigned.
type TransportType string

// Known transport types.
const (
	// TransportFoot is a courier on foot, carrying up to 10 weight units.
	TransportFoot TransportType = "foot"
	// TransportBike is a courier on a bike, carrying up to 15 weight units.
	TransportBike TransportType = "bike"
	// TransportCar is a courier with a car, carrying up to 50 weight units.
	TransportCar TransportType = "car"
)

// transportCapacities maps each known transport type to its carrying capacity.
var transportCapacities = map[TransportType]int{
	TransportFoot: 10,
	TransportBike: 15,
	TransportCar:  50,
}

// NewTransportType converts a raw tag into a TransportType.
// Returns ErrInvalidTransportType for any tag outside the known set.
func NewTransportType(tag string) (TransportType, error) {
	t := TransportType(tag)
	if _, ok := transportCapacities[t]; !ok {
		return "", ErrInvalidTransportType
	}
	return t, nil
}

// Capacity returns the maximum order weight this transport type may carry.
// It is a pure total function over the known types; unknown tags always
// fail with ErrInvalidTransportType.
func (t TransportType) Capacity() (int, error) {
	capacity, ok := transportCapacities[t]
	if !ok {
		return 0, ErrInvalidTransportType
	}
	return capacity, nil
}

// String returns the wire tag of the transport type.
func (t TransportType) String() string {
	return string(t)
}
