package queries

import (
	"context"
	"database/sql"

	"waterinfra/internal/core/domain/model/kernel"
	"waterinfra/internal/core/domain/model/waterbox"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetWaterBoxesByStatusQueryHandler retrieves water boxes filtered by status.
// Uses direct SQL queries for optimal read performance in the CQRS pattern.
type GetWaterBoxesByStatusQueryHandler struct {
	db *gorm.DB
}

// NewGetWaterBoxesByStatusQueryHandler creates a handler for box listing queries.
// Requires a GORM database connection for query execution.
func NewGetWaterBoxesByStatusQueryHandler(db *gorm.DB) GetWaterBoxesByStatusQueryHandler {
	return GetWaterBoxesByStatusQueryHandler{db: db}
}

// Handle executes the query to retrieve boxes in the requested status.
// Returns a slice of box read models sorted by box code.
func (h GetWaterBoxesByStatusQueryHandler) Handle(
	ctx context.Context,
	query GetWaterBoxesByStatusQuery,
) ([]WaterBoxResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	boxes := make([]WaterBoxResponse, 0)

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
		WHERE status = ?
		ORDER BY box_code
	`, int(query.Status())).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		box, scanErr := scanWaterBoxRow(rows)
		if scanErr != nil {
			return nil, scanErr
		}
		boxes = append(boxes, box)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return boxes, nil
}

// scanWaterBoxRow maps one water_boxes row to the read model.
// Shared with the by-id box query, which selects the same column list.
func scanWaterBoxRow(rows *sql.Rows) (WaterBoxResponse, error) {
	var box WaterBoxResponse
	var id uuid.UUID
	var currentAssignmentID uuid.NullUUID
	var boxType, status int

	if err := rows.Scan(
		&id,
		&box.OrganizationID,
		&box.BoxCode,
		&boxType,
		&box.InstallationDate,
		&currentAssignmentID,
		&status,
		&box.CreatedAt,
	); err != nil {
		return WaterBoxResponse{}, err
	}

	boxID, err := kernel.UUIDFromBytes(id[:])
	if err != nil {
		return WaterBoxResponse{}, err
	}
	box.ID = boxID

	if currentAssignmentID.Valid {
		assignmentID, idErr := kernel.UUIDFromBytes(currentAssignmentID.UUID[:])
		if idErr != nil {
			return WaterBoxResponse{}, idErr
		}
		box.CurrentAssignmentID = &assignmentID
	}

	box.BoxType = waterbox.BoxType(boxType).String()
	box.Status = kernel.Status(status).String()

	return box, nil
}
