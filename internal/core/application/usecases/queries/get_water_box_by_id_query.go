package queries

import (
	"errors"

	"waterinfra/internal/core/domain/model/kernel"
	"waterinfra/internal/pkg/guard"
)

var ErrGetWaterBoxByIDQueryIsNotConstructed = errors.New(
	"GetWaterBoxByIDQuery must be created via NewGetWaterBoxByIDQuery constructor",
)

// GetWaterBoxByIDQuery retrieves a single water box by its identifier.
type GetWaterBoxByIDQuery struct {
	waterBoxID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetWaterBoxByIDQuery creates a query to fetch one box.
func NewGetWaterBoxByIDQuery(waterBoxID kernel.UUID) (GetWaterBoxByIDQuery, error) {
	if err := waterBoxID.Validate(); err != nil {
		return GetWaterBoxByIDQuery{}, err
	}

	return GetWaterBoxByIDQuery{
		waterBoxID: waterBoxID,
		guard:      guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetWaterBoxByIDQueryIsNotConstructed if validation fails.
func (q GetWaterBoxByIDQuery) Validate() error {
	return q.guard.Validate(ErrGetWaterBoxByIDQueryIsNotConstructed)
}

// WaterBoxID returns the identifier of the box to fetch.
func (q GetWaterBoxByIDQuery) WaterBoxID() kernel.UUID {
	return q.waterBoxID
}
