package orderrepo

import (
	"context"
	"errors"
	"time"

	"dispatch/internal/core/domain/model/courier"
	"dispatch/internal/core/domain/model/order"
	"dispatch/internal/pkg/errs"

	"gorm.io/gorm"
)

// maxQueryArgs is the postgres wire protocol limit on bind parameters per statement.
const maxQueryArgs = 32767

// insertChunkSize keeps every generated INSERT under the bind parameter limit.
const insertChunkSize = maxQueryArgs / orderColumnCount

// GormOrderRepository implements OrderRepository using GORM.
type GormOrderRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id int64, aggregate any)
}

// NewGormOrderRepository creates a new GORM order repository.
func NewGormOrderRepository(db *gorm.DB, tracker aggregateTracker) *GormOrderRepository {
	return &GormOrderRepository{
		db:      db,
		tracker: tracker,
	}
}

// AddAll saves a batch of new orders into the unassigned pool. The batch is
// written in chunks sized to the bind parameter limit, but remains
// all-or-nothing within the surrounding transaction.
func (r *GormOrderRepository) AddAll(ctx context.Context, orders []*order.Order) error {
	if len(orders) == 0 {
		return nil
	}

	dtos := make([]OrderDTO, 0, len(orders))
	for _, o := range orders {
		if err := o.Validate(); err != nil {
			return err
		}
		dtos = append(dtos, fromDomain(o))
	}

	if err := r.db.WithContext(ctx).CreateInBatches(&dtos, insertChunkSize).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return errs.NewObjectAlreadyExistsErrorWithCause("order", "orderId", err)
		}
		return err
	}

	for _, o := range orders {
		r.tracker.TrackAggregate(int64(o.ID()), o)
	}
	return nil
}

// Get retrieves an order by ID.
func (r *GormOrderRepository) Get(ctx context.Context, id order.ID) (*order.Order, error) {
	var dto OrderDTO
	if err := r.db.WithContext(ctx).First(&dto, "order_id = ?", int64(id)).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("order", int64(id))
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetAssignedToCourier retrieves all orders currently assigned to the courier.
// Reads the assignment relation joined with order attributes so the caller
// sees a snapshot consistent with the surrounding transaction.
func (r *GormOrderRepository) GetAssignedToCourier(ctx context.Context, courierID courier.ID) ([]*order.Order, error) {
	var dtos []OrderDTO
	if err := r.db.WithContext(ctx).
		Table("orders").
		Select("orders.*").
		Joins("JOIN assigned_orders ON assigned_orders.order_id = orders.order_id").
		Where("assigned_orders.courier_id = ?", int64(courierID)).
		Order("orders.order_id").
		Find(&dtos).Error; err != nil {
		return nil, err
	}

	return toDomainAll(dtos)
}

// Unassign removes the given orders from the assignment relation, returning
// them to the pool. Ids without a relation row are ignored. No-op when ids is empty.
func (r *GormOrderRepository) Unassign(ctx context.Context, ids []order.ID) error {
	if len(ids) == 0 {
		return nil
	}

	raw := make([]int64, 0, len(ids))
	for _, id := range ids {
		raw = append(raw, int64(id))
	}

	return r.db.WithContext(ctx).Where("order_id IN ?", raw).Delete(&AssignmentDTO{}).Error
}

// Assign links an order to a courier with the given assignment time.
// Fails with an already-exists error if the order already has a relation row.
func (r *GormOrderRepository) Assign(ctx context.Context, orderID order.ID, courierID courier.ID, assignTime time.Time) error {
	dto := AssignmentDTO{
		OrderID:    int64(orderID),
		CourierID:  int64(courierID),
		AssignTime: assignTime,
	}

	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return errs.NewObjectAlreadyExistsErrorWithCause("assignment", int64(orderID), err)
		}
		return err
	}
	return nil
}

// GetUnassigned retrieves up to limit pooled orders, smallest ids first.
// A non-positive limit returns the whole pool.
func (r *GormOrderRepository) GetUnassigned(ctx context.Context, limit int) ([]*order.Order, error) {
	query := r.db.WithContext(ctx).
		Table("orders").
		Select("orders.*").
		Joins("LEFT JOIN assigned_orders ON assigned_orders.order_id = orders.order_id").
		Where("assigned_orders.order_id IS NULL").
		Order("orders.order_id")

	if limit > 0 {
		query = query.Limit(limit)
	}

	var dtos []OrderDTO
	if err := query.Find(&dtos).Error; err != nil {
		return nil, err
	}

	return toDomainAll(dtos)
}

func toDomainAll(dtos []OrderDTO) ([]*order.Order, error) {
	orders := make([]*order.Order, 0, len(dtos))
	for _, dto := range dtos {
		o, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		orders = append(orders, o)
	}
	return orders, nil
}
