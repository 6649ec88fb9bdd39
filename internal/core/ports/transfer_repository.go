package ports

import (
	"context"

	"waterinfra/internal/core/domain/model/kernel"
	"waterinfra/internal/core/domain/model/transfer"
)

// TransferRepository defines the persistence contract for transfer records.
// Transfers are append-only: there is no update operation.
type TransferRepository interface {
	// Add persists a new transfer record to storage.
	Add(ctx context.Context, aggregate *transfer.Transfer) error

	// Get retrieves a transfer record by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*transfer.Transfer, error)
}
