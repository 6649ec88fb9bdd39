package ports

import (
	"context"

	"waterinfra/internal/core/domain/model/kernel"
	"waterinfra/internal/core/domain/model/waterbox"
)

// WaterBoxRepository defines the persistence contract for water box aggregates.
// Provides methods for storing, retrieving, and querying boxes based on their
// status and current assignment reference.
type WaterBoxRepository interface {
	// Add persists a new water box aggregate to storage.
	// The box must be valid and not already exist in the repository.
	Add(ctx context.Context, aggregate *waterbox.WaterBox) error

	// Update persists changes to an existing water box aggregate.
	// The box must exist in the repository and be valid.
	Update(ctx context.Context, aggregate *waterbox.WaterBox) error

	// Get retrieves a water box aggregate by its unique identifier.
	// Returns the complete box with its status and current assignment reference.
	Get(ctx context.Context, id kernel.UUID) (*waterbox.WaterBox, error)

	// GetByCurrentAssignment retrieves the box whose current assignment
	// reference points to the given assignment, if any.
	GetByCurrentAssignment(ctx context.Context, assignmentID kernel.UUID) (*waterbox.WaterBox, error)

	// GetAllInStatus retrieves all boxes in the given status.
	GetAllInStatus(ctx context.Context, status kernel.Status) ([]*waterbox.WaterBox, error)
}
