package commands_test

import (
	"testing"
	"time"

	"waterinfra/internal/core/application/usecases/commands"
	"waterinfra/internal/core/domain/model/assignment"
	"waterinfra/internal/core/domain/model/kernel"
	"waterinfra/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newActiveAssignmentFor(t *testing.T, boxID kernel.UUID) *assignment.Assignment {
	t.Helper()
	startDate := time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC)
	a, err := assignment.NewAssignment(kernel.NewUUID(), boxID, "user-42", startDate, 25.50)
	require.NoError(t, err)
	return a
}

func TestDeactivateAssignmentCommandHandler_Handle_CurrentAssignment(t *testing.T) {
	ctx := t.Context()
	box := newActiveBox(t)
	target := newActiveAssignmentFor(t, box.ID())
	require.NoError(t, box.AssignCurrent(target.ID()))

	cmd, err := commands.NewDeactivateAssignmentCommand(target.ID())
	require.NoError(t, err)

	boxRepo := new(MockWaterBoxRepository)
	assignmentRepo := new(MockAssignmentRepository)
	uow := new(MockAssignmentUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("AssignmentRepository").Return(assignmentRepo).Once(),
		uow.On("WaterBoxRepository").Return(boxRepo).Once(),
		assignmentRepo.On("Get", ctx, target.ID()).Return(target, nil).Once(),
		boxRepo.On("GetByCurrentAssignment", ctx, target.ID()).Return(box, nil).Once(),
		boxRepo.On("Update", ctx, mock.AnythingOfType("*waterbox.WaterBox")).Return(nil).Once(),
		assignmentRepo.On("Update", ctx, mock.AnythingOfType("*assignment.Assignment")).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockAssignmentUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewDeactivateAssignmentCommandHandler(factory)
	err = h.Handle(ctx, cmd)

	require.NoError(t, err)
	// Box pointer cleared, assignment retired without a transfer reference.
	assert.False(t, box.HasCurrentAssignment())
	assert.Equal(t, kernel.StatusInactive, target.Status())
	require.NotNil(t, target.EndDate())
	assert.Nil(t, target.TransferID())
	boxRepo.AssertExpectations(t)
	assignmentRepo.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestDeactivateAssignmentCommandHandler_Handle_NotCurrent(t *testing.T) {
	ctx := t.Context()
	target := newActiveAssignmentFor(t, kernel.NewUUID())

	cmd, err := commands.NewDeactivateAssignmentCommand(target.ID())
	require.NoError(t, err)

	boxRepo := new(MockWaterBoxRepository)
	assignmentRepo := new(MockAssignmentRepository)
	uow := new(MockAssignmentUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("AssignmentRepository").Return(assignmentRepo).Once(),
		uow.On("WaterBoxRepository").Return(boxRepo).Once(),
		assignmentRepo.On("Get", ctx, target.ID()).Return(target, nil).Once(),
		boxRepo.On("GetByCurrentAssignment", ctx, target.ID()).
			Return(nil, errs.NewObjectNotFoundError("currentAssignmentId", target.ID())).Once(),
		assignmentRepo.On("Update", ctx, mock.AnythingOfType("*assignment.Assignment")).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockAssignmentUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewDeactivateAssignmentCommandHandler(factory)
	err = h.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.Equal(t, kernel.StatusInactive, target.Status())
	boxRepo.AssertNotCalled(t, "Update")
}

func TestDeactivateAssignmentCommandHandler_Handle_AlreadyInactive(t *testing.T) {
	ctx := t.Context()
	target := newActiveAssignmentFor(t, kernel.NewUUID())
	require.NoError(t, target.Deactivate())

	cmd, err := commands.NewDeactivateAssignmentCommand(target.ID())
	require.NoError(t, err)

	boxRepo := new(MockWaterBoxRepository)
	assignmentRepo := new(MockAssignmentRepository)
	uow := new(MockAssignmentUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("AssignmentRepository").Return(assignmentRepo).Once(),
		uow.On("WaterBoxRepository").Return(boxRepo).Once(),
		assignmentRepo.On("Get", ctx, target.ID()).Return(target, nil).Once(),
		boxRepo.On("GetByCurrentAssignment", ctx, target.ID()).
			Return(nil, errs.NewObjectNotFoundError("currentAssignmentId", target.ID())).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockAssignmentUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewDeactivateAssignmentCommandHandler(factory)
	err = h.Handle(ctx, cmd)

	require.Error(t, err)
	require.ErrorIs(t, err, errs.ErrInvalidState)
	assignmentRepo.AssertNotCalled(t, "Update")
	uow.AssertNotCalled(t, "Commit")
}
