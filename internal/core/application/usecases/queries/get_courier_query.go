// Package queries contains read operations for retrieving system state.
// Implements the Query pattern for read operations in the CQRS architecture.
// Queries return optimized read models for specific use cases.
package queries

import (
	"errors"
	"math"

	"dispatch/internal/core/domain/model/courier"
	"dispatch/internal/pkg/errs"
	"dispatch/internal/pkg/guard"
)

var (
	ErrGetCourierQueryIsNotConstructed = errors.New(
		"GetCourierQuery must be created via NewGetCourierQuery constructor",
	)
)

// GetCourierQuery retrieves the stored view of a single courier profile.
// The read takes no lock, so it may observe the state just before or just
// after an in-flight profile update, never in between.
//
// Example:
//
//	query, err := NewGetCourierQuery(courierID)
//	if err != nil {
//	    return err
//	}
//
//	handler := NewGetCourierQueryHandler(db)
//	view, err := handler.Handle(ctx, query)
type GetCourierQuery struct { //nolint:recvcheck //using for validation
	courierID courier.ID

	guard guard.ConstructorGuard
}

// NewGetCourierQuery creates a query for the given courier id.
func NewGetCourierQuery(courierID courier.ID) (GetCourierQuery, error) {
	query := GetCourierQuery{
		guard: guard.NewConstructorGuard(),
	}

	if err := query.setCourierID(courierID); err != nil {
		return GetCourierQuery{}, err
	}

	return query, nil
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetCourierQueryIsNotConstructed if validation fails.
func (q GetCourierQuery) Validate() error {
	return q.guard.Validate(ErrGetCourierQueryIsNotConstructed)
}

// CourierID returns the courier id from the query.
func (q GetCourierQuery) CourierID() courier.ID {
	return q.courierID
}

func (q *GetCourierQuery) setCourierID(id courier.ID) error {
	if id < 0 {
		return errs.NewValueIsOutOfRangeError("courierId", id, 0, int64(math.MaxInt64))
	}

	q.courierID = id
	return nil
}

// GetCourierQueryResponse represents a courier profile in the read model.
// Working hours carry the canonical "HH:MM-HH:MM" form used on the wire.
type GetCourierQueryResponse struct {
	ID            int64
	TransportType string
	Regions       []int64
	WorkingHours  []string
	Rating        *float64
	Earnings      *int64
}
