package queries

import (
	"errors"

	"waterinfra/internal/core/domain/model/kernel"
	"waterinfra/internal/pkg/guard"
)

var ErrGetWaterBoxesByStatusQueryIsNotConstructed = errors.New(
	"GetWaterBoxesByStatusQuery must be created via NewGetWaterBoxesByStatusQuery constructor",
)

// GetWaterBoxesByStatusQuery retrieves all water boxes in a given status.
// Backs the list-active and list-inactive read endpoints.
type GetWaterBoxesByStatusQuery struct {
	status kernel.Status

	guard guard.ConstructorGuard
}

// NewGetWaterBoxesByStatusQuery creates a query to list boxes by status.
func NewGetWaterBoxesByStatusQuery(status kernel.Status) (GetWaterBoxesByStatusQuery, error) {
	if err := status.Validate(); err != nil {
		return GetWaterBoxesByStatusQuery{}, err
	}

	return GetWaterBoxesByStatusQuery{
		status: status,
		guard:  guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetWaterBoxesByStatusQueryIsNotConstructed if validation fails.
func (q GetWaterBoxesByStatusQuery) Validate() error {
	return q.guard.Validate(ErrGetWaterBoxesByStatusQueryIsNotConstructed)
}

// Status returns the status to filter by.
func (q GetWaterBoxesByStatusQuery) Status() kernel.Status {
	return q.status
}
