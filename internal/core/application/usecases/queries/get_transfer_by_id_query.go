package queries

import (
	"errors"

	"waterinfra/internal/core/domain/model/kernel"
	"waterinfra/internal/pkg/guard"
)

var ErrGetTransferByIDQueryIsNotConstructed = errors.New(
	"GetTransferByIDQuery must be created via NewGetTransferByIDQuery constructor",
)

// GetTransferByIDQuery retrieves a single transfer record by its identifier.
type GetTransferByIDQuery struct {
	transferID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetTransferByIDQuery creates a query to fetch one transfer.
func NewGetTransferByIDQuery(transferID kernel.UUID) (GetTransferByIDQuery, error) {
	if err := transferID.Validate(); err != nil {
		return GetTransferByIDQuery{}, err
	}

	return GetTransferByIDQuery{
		transferID: transferID,
		guard:      guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetTransferByIDQueryIsNotConstructed if validation fails.
func (q GetTransferByIDQuery) Validate() error {
	return q.guard.Validate(ErrGetTransferByIDQueryIsNotConstructed)
}

// TransferID returns the identifier of the transfer to fetch.
func (q GetTransferByIDQuery) TransferID() kernel.UUID {
	return q.transferID
}
