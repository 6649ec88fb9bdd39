// Package commands contains business operations that modify system state.
// Implements the Command pattern for write operations in the CQRS architecture.
// All commands follow a consistent pattern: validation, transaction management, and persistence.
package commands

import (
	"context"

	"waterinfra/internal/core/ports"
)

// Unit of Work interfaces provide transaction management for command handlers.
// These abstractions ensure data consistency across aggregate boundaries.
type (
	// TxManager handles database transaction lifecycle.
	// Ensures atomic operations across multiple repository calls.
	TxManager interface {
		Begin(ctx context.Context) error
		Commit(ctx context.Context) error
		Rollback(ctx context.Context) error
	}

	// WaterBoxRepoFactory provides access to the water box repository within a transaction.
	WaterBoxRepoFactory interface {
		WaterBoxRepository() ports.WaterBoxRepository
	}

	// AssignmentRepoFactory provides access to the assignment repository within a transaction.
	AssignmentRepoFactory interface {
		AssignmentRepository() ports.AssignmentRepository
	}

	// TransferRepoFactory provides access to the transfer repository within a transaction.
	TransferRepoFactory interface {
		TransferRepository() ports.TransferRepository
	}

	// WaterBoxUoW manages transactions for box-only operations.
	// Used when commands only modify water box aggregates.
	WaterBoxUoW interface {
		TxManager
		WaterBoxRepoFactory
	}

	// WaterBoxUoWFactory creates new water box unit of work instances.
	WaterBoxUoWFactory interface {
		Create() WaterBoxUoW
	}

	// AssignmentUoW manages transactions for operations that touch an
	// assignment and the box that references it. Every assignment write can
	// move the box's current assignment pointer, so the box repository is
	// always part of the boundary.
	AssignmentUoW interface {
		TxManager
		AssignmentRepoFactory
		WaterBoxRepoFactory
	}

	// AssignmentUoWFactory creates new assignment unit of work instances.
	AssignmentUoWFactory interface {
		Create() AssignmentUoW
	}

	// UoW manages transactions across all three aggregates.
	// Used for the transfer command, which writes a transfer record, retires
	// the old assignment, and re-points the box in one atomic step.
	//
	// Example:
	//   uow := factory.Create()
	//   err := uow.Begin(ctx)
	//   defer uow.Rollback(ctx)
	//
	//   boxRepo := uow.WaterBoxRepository()
	//   assignmentRepo := uow.AssignmentRepository()
	//   transferRepo := uow.TransferRepository()
	//   // ... perform operations
	//
	//   err = uow.Commit(ctx)
	UoW interface {
		TxManager
		WaterBoxRepoFactory
		AssignmentRepoFactory
		TransferRepoFactory
	}

	// UoWFactory creates new unit of work instances for cross-aggregate operations.
	UoWFactory interface {
		Create() UoW
	}
)
