package commands_test

import (
	"context"

	"waterinfra/internal/core/application/usecases/commands"
	"waterinfra/internal/core/domain/model/assignment"
	"waterinfra/internal/core/domain/model/kernel"
	"waterinfra/internal/core/domain/model/transfer"
	"waterinfra/internal/core/domain/model/waterbox"
	"waterinfra/internal/core/ports"

	"github.com/stretchr/testify/mock"
)

type MockWaterBoxRepository struct{ mock.Mock }

func (m *MockWaterBoxRepository) Add(ctx context.Context, b *waterbox.WaterBox) error {
	args := m.Called(ctx, b)
	return args.Error(0)
}

func (m *MockWaterBoxRepository) Update(ctx context.Context, b *waterbox.WaterBox) error {
	args := m.Called(ctx, b)
	return args.Error(0)
}

func (m *MockWaterBoxRepository) Get(ctx context.Context, id kernel.UUID) (*waterbox.WaterBox, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*waterbox.WaterBox), args.Error(1)
}

func (m *MockWaterBoxRepository) GetByCurrentAssignment(
	ctx context.Context,
	assignmentID kernel.UUID,
) (*waterbox.WaterBox, error) {
	args := m.Called(ctx, assignmentID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*waterbox.WaterBox), args.Error(1)
}

func (m *MockWaterBoxRepository) GetAllInStatus(
	ctx context.Context,
	status kernel.Status,
) ([]*waterbox.WaterBox, error) {
	args := m.Called(ctx, status)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*waterbox.WaterBox), args.Error(1)
}

type MockAssignmentRepository struct{ mock.Mock }

func (m *MockAssignmentRepository) Add(ctx context.Context, a *assignment.Assignment) error {
	args := m.Called(ctx, a)
	return args.Error(0)
}

func (m *MockAssignmentRepository) Update(ctx context.Context, a *assignment.Assignment) error {
	args := m.Called(ctx, a)
	return args.Error(0)
}

func (m *MockAssignmentRepository) Get(ctx context.Context, id kernel.UUID) (*assignment.Assignment, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*assignment.Assignment), args.Error(1)
}

func (m *MockAssignmentRepository) GetAllInStatus(
	ctx context.Context,
	status kernel.Status,
) ([]*assignment.Assignment, error) {
	args := m.Called(ctx, status)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*assignment.Assignment), args.Error(1)
}

type MockTransferRepository struct{ mock.Mock }

func (m *MockTransferRepository) Add(ctx context.Context, tr *transfer.Transfer) error {
	args := m.Called(ctx, tr)
	return args.Error(0)
}

func (m *MockTransferRepository) Get(ctx context.Context, id kernel.UUID) (*transfer.Transfer, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*transfer.Transfer), args.Error(1)
}

type MockWaterBoxUoW struct{ mock.Mock }

func (m *MockWaterBoxUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockWaterBoxUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockWaterBoxUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockWaterBoxUoW) WaterBoxRepository() ports.WaterBoxRepository {
	args := m.Called()
	return args.Get(0).(ports.WaterBoxRepository)
}

type MockWaterBoxUoWFactory struct{ mock.Mock }

func (m *MockWaterBoxUoWFactory) Create() commands.WaterBoxUoW {
	args := m.Called()
	return args.Get(0).(commands.WaterBoxUoW)
}

type MockAssignmentUoW struct{ mock.Mock }

func (m *MockAssignmentUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockAssignmentUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockAssignmentUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockAssignmentUoW) WaterBoxRepository() ports.WaterBoxRepository {
	args := m.Called()
	return args.Get(0).(ports.WaterBoxRepository)
}

func (m *MockAssignmentUoW) AssignmentRepository() ports.AssignmentRepository {
	args := m.Called()
	return args.Get(0).(ports.AssignmentRepository)
}

type MockAssignmentUoWFactory struct{ mock.Mock }

func (m *MockAssignmentUoWFactory) Create() commands.AssignmentUoW {
	args := m.Called()
	return args.Get(0).(commands.AssignmentUoW)
}

type MockUoW struct{ mock.Mock }

func (m *MockUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) WaterBoxRepository() ports.WaterBoxRepository {
	args := m.Called()
	return args.Get(0).(ports.WaterBoxRepository)
}

func (m *MockUoW) AssignmentRepository() ports.AssignmentRepository {
	args := m.Called()
	return args.Get(0).(ports.AssignmentRepository)
}

func (m *MockUoW) TransferRepository() ports.TransferRepository {
	args := m.Called()
	return args.Get(0).(ports.TransferRepository)
}

type MockUoWFactory struct{ mock.Mock }

func (m *MockUoWFactory) Create() commands.UoW {
	args := m.Called()
	return args.Get(0).(commands.UoW)
}
