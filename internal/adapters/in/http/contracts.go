package http

import (
	"time"

	"waterinfra/internal/core/application/usecases/queries"
)

// ErrorResponse is the JSON body returned for failed requests.
type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// CreateWaterBoxRequest is the body for registering a new water box.
type CreateWaterBoxRequest struct {
	OrganizationID   string    `json:"organizationId"`
	BoxCode          string    `json:"boxCode"`
	BoxType          string    `json:"boxType"`
	InstallationDate time.Time `json:"installationDate"`
}

// UpdateWaterBoxRequest is the body for rewriting water box details.
type UpdateWaterBoxRequest struct {
	OrganizationID   string    `json:"organizationId"`
	BoxCode          string    `json:"boxCode"`
	BoxType          string    `json:"boxType"`
	InstallationDate time.Time `json:"installationDate"`
}

// CreateAssignmentRequest is the body for registering a new assignment.
type CreateAssignmentRequest struct {
	WaterBoxID   string    `json:"waterBoxId"`
	SubscriberID string    `json:"subscriberId"`
	StartDate    time.Time `json:"startDate"`
	MonthlyFee   float64   `json:"monthlyFee"`
}

// UpdateAssignmentRequest is the body for rewriting assignment terms.
type UpdateAssignmentRequest struct {
	WaterBoxID   string    `json:"waterBoxId"`
	SubscriberID string    `json:"subscriberId"`
	StartDate    time.Time `json:"startDate"`
	MonthlyFee   float64   `json:"monthlyFee"`
}

// CreateTransferRequest is the body for transferring a water box between
// assignments.
type CreateTransferRequest struct {
	WaterBoxID      string   `json:"waterBoxId"`
	OldAssignmentID string   `json:"oldAssignmentId"`
	NewAssignmentID string   `json:"newAssignmentId"`
	Reason          string   `json:"reason"`
	Documents       []string `json:"documents"`
}

// WaterBox is the JSON rendering of a water box read model.
type WaterBox struct {
	ID                  string    `json:"id"`
	OrganizationID      string    `json:"organizationId"`
	BoxCode             string    `json:"boxCode"`
	BoxType             string    `json:"boxType"`
	InstallationDate    time.Time `json:"installationDate"`
	CurrentAssignmentID *string   `json:"currentAssignmentId,omitempty"`
	Status              string    `json:"status"`
	CreatedAt           time.Time `json:"createdAt"`
}

// Assignment is the JSON rendering of an assignment read model.
type Assignment struct {
	ID           string     `json:"id"`
	WaterBoxID   string     `json:"waterBoxId"`
	SubscriberID string     `json:"subscriberId"`
	StartDate    time.Time  `json:"startDate"`
	EndDate      *time.Time `json:"endDate,omitempty"`
	MonthlyFee   float64    `json:"monthlyFee"`
	Status       string     `json:"status"`
	TransferID   *string    `json:"transferId,omitempty"`
	CreatedAt    time.Time  `json:"createdAt"`
}

// Transfer is the JSON rendering of a transfer read model.
type Transfer struct {
	ID              string    `json:"id"`
	WaterBoxID      string    `json:"waterBoxId"`
	OldAssignmentID string    `json:"oldAssignmentId"`
	NewAssignmentID string    `json:"newAssignmentId"`
	Reason          string    `json:"reason"`
	Documents       []string  `json:"documents"`
	CreatedAt       time.Time `json:"createdAt"`
}

// CallerResponse echoes the authenticated caller identity.
type CallerResponse struct {
	ID       string   `json:"id"`
	Username string   `json:"username"`
	Roles    []string `json:"roles"`
}

func toWaterBox(r queries.WaterBoxResponse) WaterBox {
	var currentAssignmentID *string
	if r.CurrentAssignmentID != nil {
		s := r.CurrentAssignmentID.String()
		currentAssignmentID = &s
	}

	return WaterBox{
		ID:                  r.ID.String(),
		OrganizationID:      r.OrganizationID,
		BoxCode:             r.BoxCode,
		BoxType:             r.BoxType,
		InstallationDate:    r.InstallationDate,
		CurrentAssignmentID: currentAssignmentID,
		Status:              r.Status,
		CreatedAt:           r.CreatedAt,
	}
}

func toAssignment(r queries.AssignmentResponse) Assignment {
	var transferID *string
	if r.TransferID != nil {
		s := r.TransferID.String()
		transferID = &s
	}

	return Assignment{
		ID:           r.ID.String(),
		WaterBoxID:   r.WaterBoxID.String(),
		SubscriberID: r.SubscriberID,
		StartDate:    r.StartDate,
		EndDate:      r.EndDate,
		MonthlyFee:   r.MonthlyFee,
		Status:       r.Status,
		TransferID:   transferID,
		CreatedAt:    r.CreatedAt,
	}
}

func toTransfer(r queries.TransferResponse) Transfer {
	return Transfer{
		ID:              r.ID.String(),
		WaterBoxID:      r.WaterBoxID.String(),
		OldAssignmentID: r.OldAssignmentID.String(),
		NewAssignmentID: r.NewAssignmentID.String(),
		Reason:          r.Reason,
		Documents:       r.Documents,
		CreatedAt:       r.CreatedAt,
	}
}
