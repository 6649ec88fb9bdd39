package queries

import (
	"errors"

	"waterinfra/internal/pkg/guard"
)

var ErrGetAllTransfersQueryIsNotConstructed = errors.New(
	"GetAllTransfersQuery must be created via NewGetAllTransfersQuery constructor",
)

// GetAllTransfersQuery retrieves the full transfer audit log.
type GetAllTransfersQuery struct {
	guard guard.ConstructorGuard
}

// NewGetAllTransfersQuery creates a query to list all transfers.
// This is a parameterless query that fetches the complete audit log.
func NewGetAllTransfersQuery() GetAllTransfersQuery {
	return GetAllTransfersQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetAllTransfersQueryIsNotConstructed if validation fails.
func (q GetAllTransfersQuery) Validate() error {
	return q.guard.Validate(ErrGetAllTransfersQueryIsNotConstructed)
}
