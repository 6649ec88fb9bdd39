package commands_test

import (
	"testing"

	"waterinfra/internal/core/application/usecases/commands"
	"waterinfra/internal/core/domain/model/kernel"
	"waterinfra/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestDeactivateWaterBoxCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	box := newActiveBox(t)

	cmd, err := commands.NewDeactivateWaterBoxCommand(box.ID())
	require.NoError(t, err)

	repo := new(MockWaterBoxRepository)
	uow := new(MockWaterBoxUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("WaterBoxRepository").Return(repo).Once(),
		repo.On("Get", ctx, box.ID()).Return(box, nil).Once(),
		repo.On("Update", ctx, mock.AnythingOfType("*waterbox.WaterBox")).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockWaterBoxUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewDeactivateWaterBoxCommandHandler(factory)
	err = h.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.Equal(t, kernel.StatusInactive, box.Status())
	repo.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestDeactivateWaterBoxCommandHandler_Handle_LiveAssignmentConflict(t *testing.T) {
	ctx := t.Context()
	box := newActiveBox(t)
	require.NoError(t, box.AssignCurrent(kernel.NewUUID()))

	cmd, err := commands.NewDeactivateWaterBoxCommand(box.ID())
	require.NoError(t, err)

	repo := new(MockWaterBoxRepository)
	uow := new(MockWaterBoxUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("WaterBoxRepository").Return(repo).Once(),
		repo.On("Get", ctx, box.ID()).Return(box, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockWaterBoxUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewDeactivateWaterBoxCommandHandler(factory)
	err = h.Handle(ctx, cmd)

	require.Error(t, err)
	require.ErrorIs(t, err, errs.ErrConflict)
	assert.Equal(t, kernel.StatusActive, box.Status())
	repo.AssertNotCalled(t, "Update")
	uow.AssertNotCalled(t, "Commit")
}

func TestDeactivateWaterBoxCommandHandler_Handle_NotFound(t *testing.T) {
	ctx := t.Context()
	boxID := kernel.NewUUID()

	cmd, err := commands.NewDeactivateWaterBoxCommand(boxID)
	require.NoError(t, err)

	repo := new(MockWaterBoxRepository)
	uow := new(MockWaterBoxUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("WaterBoxRepository").Return(repo).Once(),
		repo.On("Get", ctx, boxID).Return(nil, errs.NewObjectNotFoundError("waterBoxId", boxID)).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockWaterBoxUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewDeactivateWaterBoxCommandHandler(factory)
	err = h.Handle(ctx, cmd)

	require.Error(t, err)
	require.ErrorIs(t, err, errs.ErrObjectNotFound)
}
