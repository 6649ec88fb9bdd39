package queries

import (
	"context"

	"waterinfra/internal/pkg/errs"

	"gorm.io/gorm"
)

// GetWaterBoxByIDQueryHandler retrieves a single water box read model.
type GetWaterBoxByIDQueryHandler struct {
	db *gorm.DB
}

// NewGetWaterBoxByIDQueryHandler creates a handler for single-box queries.
// Requires a GORM database connection for query execution.
func NewGetWaterBoxByIDQueryHandler(db *gorm.DB) GetWaterBoxByIDQueryHandler {
	return GetWaterBoxByIDQueryHandler{db: db}
}

// Handle executes the query to retrieve one box.
// Returns an ObjectNotFoundError when no box has the requested id.
func (h GetWaterBoxByIDQueryHandler) Handle(
	ctx context.Context,
	query GetWaterBoxByIDQuery,
) (WaterBoxResponse, error) {
	if err := query.Validate(); err != nil {
		return WaterBoxResponse{}, err
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			organization_id,
			box_code,
			box_type,
			installation_date,
			current_assignment_id,
			status,
			created_at
		FROM water_boxes
		WHERE id = ?
	`, query.WaterBoxID().Bytes()).Rows()
	if err != nil {
		return WaterBoxResponse{}, err
	}
	defer rows.Close()

	if !rows.Next() {
		if err = rows.Err(); err != nil {
			return WaterBoxResponse{}, err
		}
		return WaterBoxResponse{}, errs.NewObjectNotFoundError("waterBoxId", query.WaterBoxID())
	}

	box, err := scanWaterBoxRow(rows)
	if err != nil {
		return WaterBoxResponse{}, err
	}

	return box, nil
}
