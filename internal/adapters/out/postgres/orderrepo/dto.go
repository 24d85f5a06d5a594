// Package orderrepo provides data transfer objects and mapping functions for order persistence.
// Orders and their assignment relation live in separate tables: an order row
// describes the physical delivery, and an assigned_orders row links it to the
// courier currently responsible for it. An order without a relation row is pooled.
package orderrepo

import (
	"time"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/core/domain/model/order"

	"github.com/lib/pq"
)

// OrderDTO represents the database structure for persisting orders.
type OrderDTO struct {
	OrderID       int64          `gorm:"primaryKey;autoIncrement:false"`
	Weight        float64        `gorm:"not null"`
	Region        int64          `gorm:"not null;index"`
	DeliveryHours pq.StringArray `gorm:"type:text[];not null"`
}

// TableName specifies the database table name for order entities.
func (OrderDTO) TableName() string {
	return "orders"
}

// AssignmentDTO represents the relation row linking an assigned order to its courier.
// The order id is the primary key, so an order can be assigned to at most one courier.
type AssignmentDTO struct {
	OrderID    int64     `gorm:"primaryKey;autoIncrement:false"`
	CourierID  int64     `gorm:"not null;index"`
	AssignTime time.Time `gorm:"not null"`
}

// TableName specifies the database table name for assignment rows.
func (AssignmentDTO) TableName() string {
	return "assigned_orders"
}

// orderColumnCount is the number of bind parameters one order row consumes.
const orderColumnCount = 4

// fromDomain converts an order domain entity to its database representation.
func fromDomain(o *order.Order) OrderDTO {
	return OrderDTO{
		OrderID:       int64(o.ID()),
		Weight:        o.Weight(),
		Region:        o.Region(),
		DeliveryHours: pq.StringArray(kernel.FormatTimeWindows(o.DeliveryHours())),
	}
}

// toDomain converts a database DTO to an order domain entity.
func toDomain(dto OrderDTO) (*order.Order, error) {
	deliveryHours, err := kernel.ParseTimeWindows(dto.DeliveryHours)
	if err != nil {
		return nil, err
	}

	return order.NewOrder(order.ID(dto.OrderID), dto.Weight, dto.Region, deliveryHours)
}
