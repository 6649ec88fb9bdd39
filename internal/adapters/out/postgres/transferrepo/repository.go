package transferrepo

import (
	"context"
	"errors"

	"waterinfra/internal/core/domain/model/kernel"
	"waterinfra/internal/core/domain/model/transfer"
	"waterinfra/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormTransferRepository implements TransferRepository using GORM.
type GormTransferRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormTransferRepository creates a new GORM transfer repository.
func NewGormTransferRepository(db *gorm.DB, tracker aggregateTracker) *GormTransferRepository {
	return &GormTransferRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new transfer record to the database.
func (r *GormTransferRepository) Add(ctx context.Context, aggregate *transfer.Transfer) error {
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

// Get retrieves a transfer record by ID.
func (r *GormTransferRepository) Get(ctx context.Context, id kernel.UUID) (*transfer.Transfer, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto TransferDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("transfer", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}
