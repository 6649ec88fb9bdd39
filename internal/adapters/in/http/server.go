// Package http exposes the administrative REST surface over echo. It binds
// request bodies to commands and queries and maps domain errors to HTTP
// status codes; no business logic lives here.
package http

import (
	"errors"
	"net/http"

	"waterinfra/internal/core/application/usecases/commands"
	"waterinfra/internal/core/application/usecases/queries"
	"waterinfra/internal/core/domain/model/kernel"
	"waterinfra/internal/core/domain/model/waterbox"
	"waterinfra/internal/identity"
	"waterinfra/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// Server coordinates between HTTP handlers and application use cases.
type Server struct {
	// Command handlers
	createWaterBoxHandler       commands.CreateWaterBoxCommandHandler
	updateWaterBoxHandler       commands.UpdateWaterBoxCommandHandler
	deactivateWaterBoxHandler   commands.DeactivateWaterBoxCommandHandler
	restoreWaterBoxHandler      commands.RestoreWaterBoxCommandHandler
	createAssignmentHandler     commands.CreateAssignmentCommandHandler
	updateAssignmentHandler     commands.UpdateAssignmentCommandHandler
	deactivateAssignmentHandler commands.DeactivateAssignmentCommandHandler
	restoreAssignmentHandler    commands.RestoreAssignmentCommandHandler
	transferWaterBoxHandler     commands.TransferWaterBoxCommandHandler

	// Query handlers
	getWaterBoxesByStatusHandler  queries.GetWaterBoxesByStatusQueryHandler
	getWaterBoxByIDHandler        queries.GetWaterBoxByIDQueryHandler
	getAssignmentsByStatusHandler queries.GetAssignmentsByStatusQueryHandler
	getAssignmentByIDHandler      queries.GetAssignmentByIDQueryHandler
	getAllTransfersHandler        queries.GetAllTransfersQueryHandler
	getTransferByIDHandler        queries.GetTransferByIDQueryHandler
}

// NewServer creates a new HTTP server with the required command and query handlers.
func NewServer(
	createWaterBoxHandler commands.CreateWaterBoxCommandHandler,
	updateWaterBoxHandler commands.UpdateWaterBoxCommandHandler,
	deactivateWaterBoxHandler commands.DeactivateWaterBoxCommandHandler,
	restoreWaterBoxHandler commands.RestoreWaterBoxCommandHandler,
	createAssignmentHandler commands.CreateAssignmentCommandHandler,
	updateAssignmentHandler commands.UpdateAssignmentCommandHandler,
	deactivateAssignmentHandler commands.DeactivateAssignmentCommandHandler,
	restoreAssignmentHandler commands.RestoreAssignmentCommandHandler,
	transferWaterBoxHandler commands.TransferWaterBoxCommandHandler,
	getWaterBoxesByStatusHandler queries.GetWaterBoxesByStatusQueryHandler,
	getWaterBoxByIDHandler queries.GetWaterBoxByIDQueryHandler,
	getAssignmentsByStatusHandler queries.GetAssignmentsByStatusQueryHandler,
	getAssignmentByIDHandler queries.GetAssignmentByIDQueryHandler,
	getAllTransfersHandler queries.GetAllTransfersQueryHandler,
	getTransferByIDHandler queries.GetTransferByIDQueryHandler,
) *Server {
	return &Server{
		createWaterBoxHandler:         createWaterBoxHandler,
		updateWaterBoxHandler:         updateWaterBoxHandler,
		deactivateWaterBoxHandler:     deactivateWaterBoxHandler,
		restoreWaterBoxHandler:        restoreWaterBoxHandler,
		createAssignmentHandler:       createAssignmentHandler,
		updateAssignmentHandler:       updateAssignmentHandler,
		deactivateAssignmentHandler:   deactivateAssignmentHandler,
		restoreAssignmentHandler:      restoreAssignmentHandler,
		transferWaterBoxHandler:       transferWaterBoxHandler,
		getWaterBoxesByStatusHandler:  getWaterBoxesByStatusHandler,
		getWaterBoxByIDHandler:        getWaterBoxByIDHandler,
		getAssignmentsByStatusHandler: getAssignmentsByStatusHandler,
		getAssignmentByIDHandler:      getAssignmentByIDHandler,
		getAllTransfersHandler:        getAllTransfersHandler,
		getTransferByIDHandler:        getTransferByIDHandler,
	}
}

// RegisterRoutes attaches all API routes to the echo instance under /api/v1.
func (s *Server) RegisterRoutes(e *echo.Echo, middlewares ...echo.MiddlewareFunc) {
	api := e.Group("/api/v1", middlewares...)

	boxes := api.Group("/water-boxes")
	boxes.GET("/active", s.GetActiveWaterBoxes)
	boxes.GET("/inactive", s.GetInactiveWaterBoxes)
	boxes.GET("/:id", s.GetWaterBox)
	boxes.POST("", s.CreateWaterBox)
	boxes.PUT("/:id", s.UpdateWaterBox)
	boxes.DELETE("/:id", s.DeactivateWaterBox)
	boxes.PATCH("/:id/restore", s.RestoreWaterBox)

	assignments := api.Group("/water-box-assignments")
	assignments.GET("/active", s.GetActiveAssignments)
	assignments.GET("/inactive", s.GetInactiveAssignments)
	assignments.GET("/:id", s.GetAssignment)
	assignments.POST("", s.CreateAssignment)
	assignments.PUT("/:id", s.UpdateAssignment)
	assignments.DELETE("/:id", s.DeactivateAssignment)
	assignments.PATCH("/:id/restore", s.RestoreAssignment)

	transfers := api.Group("/water-box-transfers")
	transfers.GET("", s.GetTransfers)
	transfers.GET("/:id", s.GetTransfer)
	transfers.POST("", s.CreateTransfer)

	api.GET("/auth/me", s.GetCaller)
}

// GetActiveWaterBoxes handles GET /api/v1/water-boxes/active.
func (s *Server) GetActiveWaterBoxes(ctx echo.Context) error {
	return s.getWaterBoxesByStatus(ctx, kernel.StatusActive)
}

// GetInactiveWaterBoxes handles GET /api/v1/water-boxes/inactive.
func (s *Server) GetInactiveWaterBoxes(ctx echo.Context) error {
	return s.getWaterBoxesByStatus(ctx, kernel.StatusInactive)
}

func (s *Server) getWaterBoxesByStatus(ctx echo.Context, status kernel.Status) error {
	query, err := queries.NewGetWaterBoxesByStatusQuery(status)
	if err != nil {
		return errorResponse(ctx, err)
	}

	boxes, err := s.getWaterBoxesByStatusHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return errorResponse(ctx, err)
	}

	response := make([]WaterBox, len(boxes))
	for i, box := range boxes {
		response[i] = toWaterBox(box)
	}

	return ctx.JSON(http.StatusOK, response)
}

// GetWaterBox handles GET /api/v1/water-boxes/:id.
func (s *Server) GetWaterBox(ctx echo.Context) error {
	id, err := pathID(ctx)
	if err != nil {
		return errorResponse(ctx, err)
	}

	query, err := queries.NewGetWaterBoxByIDQuery(id)
	if err != nil {
		return errorResponse(ctx, err)
	}

	box, err := s.getWaterBoxByIDHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return errorResponse(ctx, err)
	}

	return ctx.JSON(http.StatusOK, toWaterBox(box))
}

// CreateWaterBox handles POST /api/v1/water-boxes.
func (s *Server) CreateWaterBox(ctx echo.Context) error {
	var request CreateWaterBoxRequest
	if err := ctx.Bind(&request); err != nil {
		return badRequest(ctx, "invalid request body")
	}

	boxType, err := waterbox.BoxTypeFromString(request.BoxType)
	if err != nil {
		return errorResponse(ctx, err)
	}

	waterBoxID := kernel.NewUUID()
	cmd, err := commands.NewCreateWaterBoxCommand(
		waterBoxID,
		request.OrganizationID,
		request.BoxCode,
		boxType,
		request.InstallationDate,
	)
	if err != nil {
		return errorResponse(ctx, err)
	}

	if err := s.createWaterBoxHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return errorResponse(ctx, err)
	}

	return s.respondWaterBox(ctx, http.StatusCreated, waterBoxID)
}

// UpdateWaterBox handles PUT /api/v1/water-boxes/:id.
func (s *Server) UpdateWaterBox(ctx echo.Context) error {
	id, err := pathID(ctx)
	if err != nil {
		return errorResponse(ctx, err)
	}

	var request UpdateWaterBoxRequest
	if err := ctx.Bind(&request); err != nil {
		return badRequest(ctx, "invalid request body")
	}

	boxType, err := waterbox.BoxTypeFromString(request.BoxType)
	if err != nil {
		return errorResponse(ctx, err)
	}

	cmd, err := commands.NewUpdateWaterBoxCommand(
		id,
		request.OrganizationID,
		request.BoxCode,
		boxType,
		request.InstallationDate,
	)
	if err != nil {
		return errorResponse(ctx, err)
	}

	if err := s.updateWaterBoxHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return errorResponse(ctx, err)
	}

	return s.respondWaterBox(ctx, http.StatusOK, id)
}

// DeactivateWaterBox handles DELETE /api/v1/water-boxes/:id.
// The box is soft-deactivated, not removed.
func (s *Server) DeactivateWaterBox(ctx echo.Context) error {
	id, err := pathID(ctx)
	if err != nil {
		return errorResponse(ctx, err)
	}

	cmd, err := commands.NewDeactivateWaterBoxCommand(id)
	if err != nil {
		return errorResponse(ctx, err)
	}

	if err := s.deactivateWaterBoxHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return errorResponse(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// RestoreWaterBox handles PATCH /api/v1/water-boxes/:id/restore.
func (s *Server) RestoreWaterBox(ctx echo.Context) error {
	id, err := pathID(ctx)
	if err != nil {
		return errorResponse(ctx, err)
	}

	cmd, err := commands.NewRestoreWaterBoxCommand(id)
	if err != nil {
		return errorResponse(ctx, err)
	}

	if err := s.restoreWaterBoxHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return errorResponse(ctx, err)
	}

	return s.respondWaterBox(ctx, http.StatusOK, id)
}

// respondWaterBox renders the current state of a box after a successful
// mutation. Only deactivation answers with no content.
func (s *Server) respondWaterBox(ctx echo.Context, status int, id kernel.UUID) error {
	query, err := queries.NewGetWaterBoxByIDQuery(id)
	if err != nil {
		return errorResponse(ctx, err)
	}

	box, err := s.getWaterBoxByIDHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return errorResponse(ctx, err)
	}

	return ctx.JSON(status, toWaterBox(box))
}

// GetActiveAssignments handles GET /api/v1/water-box-assignments/active.
func (s *Server) GetActiveAssignments(ctx echo.Context) error {
	return s.getAssignmentsByStatus(ctx, kernel.StatusActive)
}

// GetInactiveAssignments handles GET /api/v1/water-box-assignments/inactive.
func (s *Server) GetInactiveAssignments(ctx echo.Context) error {
	return s.getAssignmentsByStatus(ctx, kernel.StatusInactive)
}

func (s *Server) getAssignmentsByStatus(ctx echo.Context, status kernel.Status) error {
	query, err := queries.NewGetAssignmentsByStatusQuery(status)
	if err != nil {
		return errorResponse(ctx, err)
	}

	assignments, err := s.getAssignmentsByStatusHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return errorResponse(ctx, err)
	}

	response := make([]Assignment, len(assignments))
	for i, a := range assignments {
		response[i] = toAssignment(a)
	}

	return ctx.JSON(http.StatusOK, response)
}

// GetAssignment handles GET /api/v1/water-box-assignments/:id.
func (s *Server) GetAssignment(ctx echo.Context) error {
	id, err := pathID(ctx)
	if err != nil {
		return errorResponse(ctx, err)
	}

	query, err := queries.NewGetAssignmentByIDQuery(id)
	if err != nil {
		return errorResponse(ctx, err)
	}

	a, err := s.getAssignmentByIDHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return errorResponse(ctx, err)
	}

	return ctx.JSON(http.StatusOK, toAssignment(a))
}

// CreateAssignment handles POST /api/v1/water-box-assignments.
func (s *Server) CreateAssignment(ctx echo.Context) error {
	var request CreateAssignmentRequest
	if err := ctx.Bind(&request); err != nil {
		return badRequest(ctx, "invalid request body")
	}

	waterBoxID, err := parseUUID("waterBoxId", request.WaterBoxID)
	if err != nil {
		return errorResponse(ctx, err)
	}

	assignmentID := kernel.NewUUID()
	cmd, err := commands.NewCreateAssignmentCommand(
		assignmentID,
		waterBoxID,
		request.SubscriberID,
		request.StartDate,
		request.MonthlyFee,
	)
	if err != nil {
		return errorResponse(ctx, err)
	}

	if err := s.createAssignmentHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return errorResponse(ctx, err)
	}

	return s.respondAssignment(ctx, http.StatusCreated, assignmentID)
}

// UpdateAssignment handles PUT /api/v1/water-box-assignments/:id.
func (s *Server) UpdateAssignment(ctx echo.Context) error {
	id, err := pathID(ctx)
	if err != nil {
		return errorResponse(ctx, err)
	}

	var request UpdateAssignmentRequest
	if err := ctx.Bind(&request); err != nil {
		return badRequest(ctx, "invalid request body")
	}

	waterBoxID, err := parseUUID("waterBoxId", request.WaterBoxID)
	if err != nil {
		return errorResponse(ctx, err)
	}

	cmd, err := commands.NewUpdateAssignmentCommand(
		id,
		waterBoxID,
		request.SubscriberID,
		request.StartDate,
		request.MonthlyFee,
	)
	if err != nil {
		return errorResponse(ctx, err)
	}

	if err := s.updateAssignmentHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return errorResponse(ctx, err)
	}

	return s.respondAssignment(ctx, http.StatusOK, id)
}

// DeactivateAssignment handles DELETE /api/v1/water-box-assignments/:id.
// The assignment is retired, not removed; the owning box releases its pointer.
func (s *Server) DeactivateAssignment(ctx echo.Context) error {
	id, err := pathID(ctx)
	if err != nil {
		return errorResponse(ctx, err)
	}

	cmd, err := commands.NewDeactivateAssignmentCommand(id)
	if err != nil {
		return errorResponse(ctx, err)
	}

	if err := s.deactivateAssignmentHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return errorResponse(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// RestoreAssignment handles PATCH /api/v1/water-box-assignments/:id/restore.
func (s *Server) RestoreAssignment(ctx echo.Context) error {
	id, err := pathID(ctx)
	if err != nil {
		return errorResponse(ctx, err)
	}

	cmd, err := commands.NewRestoreAssignmentCommand(id)
	if err != nil {
		return errorResponse(ctx, err)
	}

	if err := s.restoreAssignmentHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return errorResponse(ctx, err)
	}

	return s.respondAssignment(ctx, http.StatusOK, id)
}

// respondAssignment renders the current state of an assignment after a
// successful mutation.
func (s *Server) respondAssignment(ctx echo.Context, status int, id kernel.UUID) error {
	query, err := queries.NewGetAssignmentByIDQuery(id)
	if err != nil {
		return errorResponse(ctx, err)
	}

	a, err := s.getAssignmentByIDHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return errorResponse(ctx, err)
	}

	return ctx.JSON(status, toAssignment(a))
}

// GetTransfers handles GET /api/v1/water-box-transfers.
func (s *Server) GetTransfers(ctx echo.Context) error {
	query := queries.NewGetAllTransfersQuery()

	transfers, err := s.getAllTransfersHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return errorResponse(ctx, err)
	}

	response := make([]Transfer, len(transfers))
	for i, tr := range transfers {
		response[i] = toTransfer(tr)
	}

	return ctx.JSON(http.StatusOK, response)
}

// GetTransfer handles GET /api/v1/water-box-transfers/:id.
func (s *Server) GetTransfer(ctx echo.Context) error {
	id, err := pathID(ctx)
	if err != nil {
		return errorResponse(ctx, err)
	}

	query, err := queries.NewGetTransferByIDQuery(id)
	if err != nil {
		return errorResponse(ctx, err)
	}

	tr, err := s.getTransferByIDHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return errorResponse(ctx, err)
	}

	return ctx.JSON(http.StatusOK, toTransfer(tr))
}

// CreateTransfer handles POST /api/v1/water-box-transfers.
func (s *Server) CreateTransfer(ctx echo.Context) error {
	var request CreateTransferRequest
	if err := ctx.Bind(&request); err != nil {
		return badRequest(ctx, "invalid request body")
	}

	waterBoxID, err := parseUUID("waterBoxId", request.WaterBoxID)
	if err != nil {
		return errorResponse(ctx, err)
	}
	oldAssignmentID, err := parseUUID("oldAssignmentId", request.OldAssignmentID)
	if err != nil {
		return errorResponse(ctx, err)
	}
	newAssignmentID, err := parseUUID("newAssignmentId", request.NewAssignmentID)
	if err != nil {
		return errorResponse(ctx, err)
	}

	transferID := kernel.NewUUID()
	cmd, err := commands.NewTransferWaterBoxCommand(
		transferID,
		waterBoxID,
		oldAssignmentID,
		newAssignmentID,
		request.Reason,
		request.Documents,
	)
	if err != nil {
		return errorResponse(ctx, err)
	}

	if err := s.transferWaterBoxHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return errorResponse(ctx, err)
	}

	query, err := queries.NewGetTransferByIDQuery(transferID)
	if err != nil {
		return errorResponse(ctx, err)
	}

	tr, err := s.getTransferByIDHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return errorResponse(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, toTransfer(tr))
}

// GetCaller handles GET /api/v1/auth/me - echoes the authenticated caller.
func (s *Server) GetCaller(ctx echo.Context) error {
	caller, ok := identity.GetCaller(ctx)
	if !ok {
		return ctx.JSON(http.StatusUnauthorized, ErrorResponse{
			Code:    http.StatusUnauthorized,
			Message: "request is not authenticated",
		})
	}

	return ctx.JSON(http.StatusOK, CallerResponse{
		ID:       caller.ID,
		Username: caller.Username,
		Roles:    caller.Roles,
	})
}

// pathID parses the :id path parameter as a UUID.
func pathID(ctx echo.Context) (kernel.UUID, error) {
	return parseUUID("id", ctx.Param("id"))
}

// parseUUID parses a UUID from a request field, classifying failures as
// invalid-value errors so they map to 400.
func parseUUID(paramName string, value string) (kernel.UUID, error) {
	id, err := kernel.UUIDFromString(value)
	if err != nil {
		return kernel.UUID{}, errs.NewValueIsInvalidErrorWithCause(paramName, err)
	}
	return id, nil
}

// badRequest writes a 400 response with the given message.
func badRequest(ctx echo.Context, message string) error {
	return ctx.JSON(http.StatusBadRequest, ErrorResponse{
		Code:    http.StatusBadRequest,
		Message: message,
	})
}

// errorResponse maps domain errors to HTTP status codes.
func errorResponse(ctx echo.Context, err error) error {
	status := http.StatusInternalServerError
	switch {
	case errors.Is(err, errs.ErrObjectNotFound):
		status = http.StatusNotFound
	case errors.Is(err, errs.ErrConflict):
		status = http.StatusConflict
	case errors.Is(err, errs.ErrInvalidState),
		errors.Is(err, errs.ErrValueIsInvalid),
		errors.Is(err, errs.ErrValueIsRequired):
		status = http.StatusBadRequest
	}

	return ctx.JSON(status, ErrorResponse{
		Code:    status,
		Message: err.Error(),
	})
}
