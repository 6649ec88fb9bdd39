package commands_test

import (
	"testing"
	"time"

	"waterinfra/internal/core/application/usecases/commands"
	"waterinfra/internal/core/domain/model/kernel"
	"waterinfra/internal/core/domain/model/waterbox"
	"waterinfra/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestUpdateWaterBoxCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	box := newActiveBox(t)

	newInstallDate := time.Date(2021, 7, 1, 0, 0, 0, 0, time.UTC)
	cmd, err := commands.NewUpdateWaterBoxCommand(
		box.ID(), "org-2", "WB-002", waterbox.BoxTypeCommercial, newInstallDate)
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

	h := commands.NewUpdateWaterBoxCommandHandler(factory)
	err = h.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.Equal(t, "org-2", box.OrganizationID())
	assert.Equal(t, "WB-002", box.BoxCode())
	assert.Equal(t, waterbox.BoxTypeCommercial, box.BoxType())
	assert.Equal(t, newInstallDate, box.InstallationDate())
	repo.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestUpdateWaterBoxCommandHandler_Handle_BoxNotFound(t *testing.T) {
	ctx := t.Context()
	boxID := kernel.NewUUID()

	cmd, err := commands.NewUpdateWaterBoxCommand(
		boxID, "org-2", "WB-002", waterbox.BoxTypeCommercial,
		time.Date(2021, 7, 1, 0, 0, 0, 0, time.UTC))
	require.NoError(t, err)

	repo := new(MockWaterBoxRepository)
	uow := new(MockWaterBoxUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("WaterBoxRepository").Return(repo).Once(),
		repo.On("Get", ctx, boxID).
			Return(nil, errs.NewObjectNotFoundError("waterBox", boxID.String())).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockWaterBoxUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewUpdateWaterBoxCommandHandler(factory)
	err = h.Handle(ctx, cmd)

	assert.ErrorIs(t, err, errs.ErrObjectNotFound)
	repo.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestUpdateWaterBoxCommandHandler_Handle_ValidationError(t *testing.T) {
	h := commands.NewUpdateWaterBoxCommandHandler(new(MockWaterBoxUoWFactory))

	err := h.Handle(t.Context(), commands.UpdateWaterBoxCommand{})

	assert.ErrorIs(t, err, commands.ErrUpdateWaterBoxCommandIsNotConstructed)
}
