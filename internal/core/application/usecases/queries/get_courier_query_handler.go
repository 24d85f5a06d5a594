package queries

import (
	"context"
	"database/sql"
	"errors"

	"dispatch/internal/pkg/errs"

	"github.com/lib/pq"
	"gorm.io/gorm"
)

// GetCourierQueryHandler retrieves a courier read model from the database.
// Uses direct SQL for optimal read performance in the CQRS pattern.
//
// Example:
//
//	handler := NewGetCourierQueryHandler(db)
//	query, _ := NewGetCourierQuery(courierID)
//
//	view, err := handler.Handle(ctx, query)
//	if err != nil {
//	    log.Printf("Failed to get courier: %v", err)
//	    return err
//	}
type GetCourierQueryHandler struct {
	db *gorm.DB
}

// NewGetCourierQueryHandler creates a handler for courier retrieval queries.
// Requires a GORM database connection for query execution.
func NewGetCourierQueryHandler(db *gorm.DB) GetCourierQueryHandler {
	return GetCourierQueryHandler{db: db}
}

// Handle executes the query for a single courier profile.
// Returns a not-found error for unknown ids.
func (h GetCourierQueryHandler) Handle(
	ctx context.Context,
	query GetCourierQuery,
) (GetCourierQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetCourierQueryResponse{}, err
	}

	var response GetCourierQueryResponse
	var regions pq.Int64Array
	var workingHours pq.StringArray

	row := h.db.WithContext(ctx).Raw(`
		SELECT
			courier_id,
			transport_type,
			regions,
			working_hours,
			rating,
			earnings
		FROM couriers
		WHERE courier_id = ?
	`, int64(query.CourierID())).Row()

	err := row.Scan(
		&response.ID,
		&response.TransportType,
		&regions,
		&workingHours,
		&response.Rating,
		&response.Earnings,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return GetCourierQueryResponse{}, errs.NewObjectNotFoundError("courier", int64(query.CourierID()))
		}
		return GetCourierQueryResponse{}, err
	}

	response.Regions = []int64(regions)
	response.WorkingHours = []string(workingHours)

	return response, nil
}
