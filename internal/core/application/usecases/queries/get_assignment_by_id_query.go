package queries

import (
	"errors"

	"waterinfra/internal/core/domain/model/kernel"
	"waterinfra/internal/pkg/guard"
)

var ErrGetAssignmentByIDQueryIsNotConstructed = errors.New(
	"GetAssignmentByIDQuery must be created via NewGetAssignmentByIDQuery constructor",
)

// GetAssignmentByIDQuery retrieves a single assignment by its identifier.
type GetAssignmentByIDQuery struct {
	assignmentID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetAssignmentByIDQuery creates a query to fetch one assignment.
func NewGetAssignmentByIDQuery(assignmentID kernel.UUID) (GetAssignmentByIDQuery, error) {
	if err := assignmentID.Validate(); err != nil {
		return GetAssignmentByIDQuery{}, err
	}

	return GetAssignmentByIDQuery{
		assignmentID: assignmentID,
		guard:        guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetAssignmentByIDQueryIsNotConstructed if validation fails.
func (q GetAssignmentByIDQuery) Validate() error {
	return q.guard.Validate(ErrGetAssignmentByIDQueryIsNotConstructed)
}

// AssignmentID returns the identifier of the assignment to fetch.
func (q GetAssignmentByIDQuery) AssignmentID() kernel.UUID {
	return q.assignmentID
}
