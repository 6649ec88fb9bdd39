package boxrepo

import (
	"context"
	"errors"

	"waterinfra/internal/core/domain/model/kernel"
	"waterinfra/internal/core/domain/model/waterbox"
	"waterinfra/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormWaterBoxRepository implements WaterBoxRepository using GORM.
type GormWaterBoxRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormWaterBoxRepository creates a new GORM water box repository.
func NewGormWaterBoxRepository(db *gorm.DB, tracker aggregateTracker) *GormWaterBoxRepository {
	return &GormWaterBoxRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new water box to the database.
func (r *GormWaterBoxRepository) Add(ctx context.Context, aggregate *waterbox.WaterBox) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return err
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Update saves an existing water box to the database.
// Select("*") forces all columns to be written so that a cleared current
// assignment pointer persists as NULL.
func (r *GormWaterBoxRepository) Update(ctx context.Context, aggregate *waterbox.WaterBox) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	result := r.db.WithContext(ctx).Model(&WaterBoxDTO{}).Where("id = ?", dto.ID).Select("*").Updates(&dto)
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Get retrieves a water box by ID.
func (r *GormWaterBoxRepository) Get(ctx context.Context, id kernel.UUID) (*waterbox.WaterBox, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto WaterBoxDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("waterBox", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetByCurrentAssignment retrieves the box whose current assignment pointer
// references the given assignment.
func (r *GormWaterBoxRepository) GetByCurrentAssignment(
	ctx context.Context,
	assignmentID kernel.UUID,
) (*waterbox.WaterBox, error) {
	if err := assignmentID.Validate(); err != nil {
		return nil, err
	}

	var dto WaterBoxDTO
	if err := r.db.WithContext(ctx).
		First(&dto, "current_assignment_id = ?", assignmentID.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("currentAssignmentId", assignmentID.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetAllInStatus retrieves all boxes with the given status.
func (r *GormWaterBoxRepository) GetAllInStatus(
	ctx context.Context,
	status kernel.Status,
) ([]*waterbox.WaterBox, error) {
	var dtos []WaterBoxDTO
	if err := r.db.WithContext(ctx).Find(&dtos, "status = ?", int(status)).Error; err != nil {
		return nil, err
	}

	boxes := make([]*waterbox.WaterBox, 0, len(dtos))
	for _, dto := range dtos {
		b, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		boxes = append(boxes, b)
	}

	return boxes, nil
}
