package queries

import (
	"errors"

	"waterinfra/internal/core/domain/model/kernel"
	"waterinfra/internal/pkg/guard"
)

var ErrGetAssignmentsByStatusQueryIsNotConstructed = errors.New(
	"GetAssignmentsByStatusQuery must be created via NewGetAssignmentsByStatusQuery constructor",
)

// GetAssignmentsByStatusQuery retrieves all assignments in a given status.
// Backs the list-active and list-inactive read endpoints.
type GetAssignmentsByStatusQuery struct {
	status kernel.Status

	guard guard.ConstructorGuard
}

// NewGetAssignmentsByStatusQuery creates a query to list assignments by status.
func NewGetAssignmentsByStatusQuery(status kernel.Status) (GetAssignmentsByStatusQuery, error) {
	if err := status.Validate(); err != nil {
		return GetAssignmentsByStatusQuery{}, err
	}

	return GetAssignmentsByStatusQuery{
		status: status,
		guard:  guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetAssignmentsByStatusQueryIsNotConstructed if validation fails.
func (q GetAssignmentsByStatusQuery) Validate() error {
	return q.guard.Validate(ErrGetAssignmentsByStatusQueryIsNotConstructed)
}

// Status returns the status to filter by.
func (q GetAssignmentsByStatusQuery) Status() kernel.Status {
	return q.status
}
