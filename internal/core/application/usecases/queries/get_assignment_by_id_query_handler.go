package queries

import (
	"context"

	"waterinfra/internal/pkg/errs"

	"gorm.io/gorm"
)

// GetAssignmentByIDQueryHandler retrieves a single assignment read model.
type GetAssignmentByIDQueryHandler struct {
	db *gorm.DB
}

// NewGetAssignmentByIDQueryHandler creates a handler for single-assignment queries.
// Requires a GORM database connection for query execution.
func NewGetAssignmentByIDQueryHandler(db *gorm.DB) GetAssignmentByIDQueryHandler {
	return GetAssignmentByIDQueryHandler{db: db}
}

// Handle executes the query to retrieve one assignment.
// Returns an ObjectNotFoundError when no assignment has the requested id.
func (h GetAssignmentByIDQueryHandler) Handle(
	ctx context.Context,
	query GetAssignmentByIDQuery,
) (AssignmentResponse, error) {
	if err := query.Validate(); err != nil {
		return AssignmentResponse{}, err
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			water_box_id,
			subscriber_id,
			start_date,
			end_date,
			monthly_fee,
			status,
			transfer_id,
			created_at
		FROM assignments
		WHERE id = ?
	`, query.AssignmentID().Bytes()).Rows()
	if err != nil {
		return AssignmentResponse{}, err
	}
	defer rows.Close()

	if !rows.Next() {
		if err = rows.Err(); err != nil {
			return AssignmentResponse{}, err
		}
		return AssignmentResponse{}, errs.NewObjectNotFoundError("assignmentId", query.AssignmentID())
	}

	a, err := scanAssignmentRow(rows)
	if err != nil {
		return AssignmentResponse{}, err
	}

	return a, nil
}
