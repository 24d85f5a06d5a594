package courierrepo

import (
	"context"
	"errors"

	"dispatch/internal/core/domain/model/courier"
	"dispatch/internal/pkg/errs"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// maxQueryArgs is the postgres wire protocol limit on bind parameters per statement.
const maxQueryArgs = 32767

// insertChunkSize keeps every generated INSERT under the bind parameter limit.
const insertChunkSize = maxQueryArgs / courierColumnCount

// GormCourierRepository implements CourierRepository using GORM.
type GormCourierRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id int64, aggregate any)
}

// NewGormCourierRepository creates a new GORM courier repository.
func NewGormCourierRepository(db *gorm.DB, tracker aggregateTracker) *GormCourierRepository {
	return &GormCourierRepository{
		db:      db,
		tracker: tracker,
	}
}

// AddAll saves a batch of new couriers to the database. The batch is written
// in chunks sized to the bind parameter limit, but remains all-or-nothing
// within the surrounding transaction. An id collision with a stored courier
// fails the whole batch with an already-exists error.
func (r *GormCourierRepository) AddAll(ctx context.Context, couriers []*courier.Courier) error {
	if len(couriers) == 0 {
		return nil
	}

	dtos := make([]CourierDTO, 0, len(couriers))
	for _, aggregate := range couriers {
		if err := aggregate.Validate(); err != nil {
			return err
		}
		dtos = append(dtos, fromDomain(aggregate))
	}

	if err := r.db.WithContext(ctx).CreateInBatches(&dtos, insertChunkSize).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return errs.NewObjectAlreadyExistsErrorWithCause("courier", "courierId", err)
		}
		return err
	}

	for _, aggregate := range couriers {
		r.tracker.TrackAggregate(int64(aggregate.ID()), aggregate)
	}
	return nil
}

// Update saves an existing courier to the database.
func (r *GormCourierRepository) Update(ctx context.Context, aggregate *courier.Courier) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)

	// Save would insert a missing row, so update explicitly and treat zero
	// affected rows as not found.
	result := r.db.WithContext(ctx).
		Model(&CourierDTO{}).
		Where("courier_id = ?", dto.CourierID).
		Select("*").
		Updates(dto)
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("courier", int64(aggregate.ID()))
	}

	r.tracker.TrackAggregate(int64(aggregate.ID()), aggregate)
	return nil
}

// Get retrieves a courier by ID.
func (r *GormCourierRepository) Get(ctx context.Context, id courier.ID) (*courier.Courier, error) {
	return r.get(ctx, r.db, id)
}

// GetForUpdate retrieves a courier by ID while taking an exclusive row lock.
// Concurrent transactions locking the same courier block until this one
// commits or rolls back, which serializes every update path for that courier.
func (r *GormCourierRepository) GetForUpdate(ctx context.Context, id courier.ID) (*courier.Courier, error) {
	locked := r.db.Clauses(clause.Locking{Strength: clause.LockingStrengthUpdate})
	return r.get(ctx, locked, id)
}

func (r *GormCourierRepository) get(ctx context.Context, db *gorm.DB, id courier.ID) (*courier.Courier, error) {
	var dto CourierDTO
	if err := db.WithContext(ctx).First(&dto, "courier_id = ?", int64(id)).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("courier", int64(id))
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetAll retrieves every stored courier ordered by id.
func (r *GormCourierRepository) GetAll(ctx context.Context) ([]*courier.Courier, error) {
	var dtos []CourierDTO
	if err := r.db.WithContext(ctx).Order("courier_id").Find(&dtos).Error; err != nil {
		return nil, err
	}

	couriers := make([]*courier.Courier, 0, len(dtos))
	for _, dto := range dtos {
		c, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		couriers = append(couriers, c)
	}

	return couriers, nil
}
