package queries

import (
	"context"

	"waterinfra/internal/pkg/errs"

	"gorm.io/gorm"
)

// GetTransferByIDQueryHandler retrieves a single transfer read model.
type GetTransferByIDQueryHandler struct {
	db *gorm.DB
}

// NewGetTransferByIDQueryHandler creates a handler for single-transfer queries.
// Requires a GORM database connection for query execution.
func NewGetTransferByIDQueryHandler(db *gorm.DB) GetTransferByIDQueryHandler {
	return GetTransferByIDQueryHandler{db: db}
}

// Handle executes the query to retrieve one transfer.
// Returns an ObjectNotFoundError when no transfer has the requested id.
func (h GetTransferByIDQueryHandler) Handle(
	ctx context.Context,
	query GetTransferByIDQuery,
) (TransferResponse, error) {
	if err := query.Validate(); err != nil {
		return TransferResponse{}, err
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			water_box_id,
			old_assignment_id,
			new_assignment_id,
			reason,
			documents,
			created_at
		FROM transfers
		WHERE id = ?
	`, query.TransferID().Bytes()).Rows()
	if err != nil {
		return TransferResponse{}, err
	}
	defer rows.Close()

	if !rows.Next() {
		if err = rows.Err(); err != nil {
			return TransferResponse{}, err
		}
		return TransferResponse{}, errs.NewObjectNotFoundError("transferId", query.TransferID())
	}

	tr, err := scanTransferRow(rows)
	if err != nil {
		return TransferResponse{}, err
	}

	return tr, nil
}
