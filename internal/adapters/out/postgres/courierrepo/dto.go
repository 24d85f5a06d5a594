// Package courierrepo provides data transfer objects and mapping functions for courier persistence.
// This package implements the repository pattern for the courier domain aggregate, handling
// the conversion between domain entities and database representations.
package courierrepo

import (
	"dispatch/internal/core/domain/model/courier"
	"dispatch/internal/core/domain/model/kernel"

	"github.com/lib/pq"
)

// CourierDTO represents the database structure for persisting courier aggregates.
// Regions and working hours are kept in postgres array columns; working hours
// are stored in the canonical "HH:MM-HH:MM" form and parsed back on load.
type CourierDTO struct {
	CourierID     int64          `gorm:"primaryKey;autoIncrement:false"`
	TransportType string         `gorm:"type:varchar(16);not null"`
	Regions       pq.Int64Array  `gorm:"type:integer[];not null"`
	WorkingHours  pq.StringArray `gorm:"type:text[];not null"`
	Rating        *float64       `gorm:"type:double precision"`
	Earnings      *int64         `gorm:"type:bigint"`
}

// TableName specifies the database table name for courier entities.
// Overrides GORM's default naming convention to use "couriers" instead of "courier_dtos".
func (CourierDTO) TableName() string {
	return "couriers"
}

// courierColumnCount is the number of bind parameters one courier row consumes.
// Used to size insert chunks against the postgres protocol limit.
const courierColumnCount = 6

// fromDomain converts a courier domain aggregate to its database representation.
func fromDomain(aggregate *courier.Courier) CourierDTO {
	return CourierDTO{
		CourierID:     int64(aggregate.ID()),
		TransportType: aggregate.TransportType().String(),
		Regions:       pq.Int64Array(aggregate.Regions()),
		WorkingHours:  pq.StringArray(kernel.FormatTimeWindows(aggregate.WorkingHours())),
		Rating:        aggregate.Rating(),
		Earnings:      aggregate.Earnings(),
	}
}

// toDomain converts a database DTO to a courier domain aggregate.
// Reconstructs the complete aggregate using RestoreCourier.
func toDomain(dto CourierDTO) (*courier.Courier, error) {
	transportType, err := courier.NewTransportType(dto.TransportType)
	if err != nil {
		return nil, err
	}

	workingHours, err := kernel.ParseTimeWindows(dto.WorkingHours)
	if err != nil {
		return nil, err
	}

	return courier.RestoreCourier(
		courier.ID(dto.CourierID),
		transportType,
		[]int64(dto.Regions),
		workingHours,
		dto.Rating,
		dto.Earnings,
	)
}
