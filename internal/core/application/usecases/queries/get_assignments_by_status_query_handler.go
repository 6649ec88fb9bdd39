package queries

import (
	"context"
	"database/sql"

	"waterinfra/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetAssignmentsByStatusQueryHandler retrieves assignments filtered by status.
// Uses direct SQL queries for optimal read performance in the CQRS pattern.
type GetAssignmentsByStatusQueryHandler struct {
	db *gorm.DB
}

// NewGetAssignmentsByStatusQueryHandler creates a handler for assignment listing queries.
// Requires a GORM database connection for query execution.
func NewGetAssignmentsByStatusQueryHandler(db *gorm.DB) GetAssignmentsByStatusQueryHandler {
	return GetAssignmentsByStatusQueryHandler{db: db}
}

// Handle executes the query to retrieve assignments in the requested status.
// Returns a slice of assignment read models sorted by start date.
func (h GetAssignmentsByStatusQueryHandler) Handle(
	ctx context.Context,
	query GetAssignmentsByStatusQuery,
) ([]AssignmentResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	assignments := make([]AssignmentResponse, 0)

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
		WHERE status = ?
		ORDER BY start_date, id
	`, int(query.Status())).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		a, scanErr := scanAssignmentRow(rows)
		if scanErr != nil {
			return nil, scanErr
		}
		assignments = append(assignments, a)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return assignments, nil
}

// scanAssignmentRow maps one assignments row to the read model.
// Shared with the by-id assignment query, which selects the same column list.
func scanAssignmentRow(rows *sql.Rows) (AssignmentResponse, error) {
	var a AssignmentResponse
	var id, waterBoxID uuid.UUID
	var transferID uuid.NullUUID
	var endDate sql.NullTime
	var status int

	if err := rows.Scan(
		&id,
		&waterBoxID,
		&a.SubscriberID,
		&a.StartDate,
		&endDate,
		&a.MonthlyFee,
		&status,
		&transferID,
		&a.CreatedAt,
	); err != nil {
		return AssignmentResponse{}, err
	}

	assignmentID, err := kernel.UUIDFromBytes(id[:])
	if err != nil {
		return AssignmentResponse{}, err
	}
	a.ID = assignmentID

	boxID, err := kernel.UUIDFromBytes(waterBoxID[:])
	if err != nil {
		return AssignmentResponse{}, err
	}
	a.WaterBoxID = boxID

	if transferID.Valid {
		trID, idErr := kernel.UUIDFromBytes(transferID.UUID[:])
		if idErr != nil {
			return AssignmentResponse{}, idErr
		}
		a.TransferID = &trID
	}

	if endDate.Valid {
		end := endDate.Time
		a.EndDate = &end
	}

	a.Status = kernel.Status(status).String()

	return a, nil
}
