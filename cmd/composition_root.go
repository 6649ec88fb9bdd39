package cmd

import (
	"waterinfra/internal/adapters/out/postgres"
	"waterinfra/internal/core/application/usecases/commands"
	"waterinfra/internal/core/application/usecases/queries"

	"gorm.io/gorm"
)

type CompositionRoot struct {
	gormDB     *gorm.DB
	uowFactory postgres.GormUnitOfWorkFactory
}

func NewCompositionRoot(_ Config, gormDB *gorm.DB) CompositionRoot {
	return CompositionRoot{
		gormDB:     gormDB,
		uowFactory: *postgres.NewGormUnitOfWorkFactory(gormDB),
	}
}

func (c *CompositionRoot) waterBoxUoWFactory() commands.WaterBoxUoWFactory {
	return FuncWaterBoxUoWFactory(func() commands.WaterBoxUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) assignmentUoWFactory() commands.AssignmentUoWFactory {
	return FuncAssignmentUoWFactory(func() commands.AssignmentUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) fullUoWFactory() commands.UoWFactory {
	return FuncUoWFactory(func() commands.UoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) CreateCreateWaterBoxCommandHandler() commands.CreateWaterBoxCommandHandler {
	return commands.NewCreateWaterBoxCommandHandler(c.waterBoxUoWFactory())
}

func (c *CompositionRoot) CreateUpdateWaterBoxCommandHandler() commands.UpdateWaterBoxCommandHandler {
	return commands.NewUpdateWaterBoxCommandHandler(c.waterBoxUoWFactory())
}

func (c *CompositionRoot) CreateDeactivateWaterBoxCommandHandler() commands.DeactivateWaterBoxCommandHandler {
	return commands.NewDeactivateWaterBoxCommandHandler(c.waterBoxUoWFactory())
}

func (c *CompositionRoot) CreateRestoreWaterBoxCommandHandler() commands.RestoreWaterBoxCommandHandler {
	return commands.NewRestoreWaterBoxCommandHandler(c.waterBoxUoWFactory())
}

func (c *CompositionRoot) CreateCreateAssignmentCommandHandler() commands.CreateAssignmentCommandHandler {
	return commands.NewCreateAssignmentCommandHandler(c.assignmentUoWFactory())
}

func (c *CompositionRoot) CreateUpdateAssignmentCommandHandler() commands.UpdateAssignmentCommandHandler {
	return commands.NewUpdateAssignmentCommandHandler(c.assignmentUoWFactory())
}

func (c *CompositionRoot) CreateDeactivateAssignmentCommandHandler() commands.DeactivateAssignmentCommandHandler {
	return commands.NewDeactivateAssignmentCommandHandler(c.assignmentUoWFactory())
}

func (c *CompositionRoot) CreateRestoreAssignmentCommandHandler() commands.RestoreAssignmentCommandHandler {
	return commands.NewRestoreAssignmentCommandHandler(c.assignmentUoWFactory())
}

func (c *CompositionRoot) CreateTransferWaterBoxCommandHandler() commands.TransferWaterBoxCommandHandler {
	return commands.NewTransferWaterBoxCommandHandler(c.fullUoWFactory())
}

func (c *CompositionRoot) CreateReconcileCurrentAssignmentsCommandHandler() commands.ReconcileCurrentAssignmentsCommandHandler {
	return commands.NewReconcileCurrentAssignmentsCommandHandler(c.assignmentUoWFactory())
}

func (c *CompositionRoot) CreateGetWaterBoxesByStatusQueryHandler() queries.GetWaterBoxesByStatusQueryHandler {
	return queries.NewGetWaterBoxesByStatusQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetWaterBoxByIDQueryHandler() queries.GetWaterBoxByIDQueryHandler {
	return queries.NewGetWaterBoxByIDQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetAssignmentsByStatusQueryHandler() queries.GetAssignmentsByStatusQueryHandler {
	return queries.NewGetAssignmentsByStatusQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetAssignmentByIDQueryHandler() queries.GetAssignmentByIDQueryHandler {
	return queries.NewGetAssignmentByIDQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetAllTransfersQueryHandler() queries.GetAllTransfersQueryHandler {
	return queries.NewGetAllTransfersQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetTransferByIDQueryHandler() queries.GetTransferByIDQueryHandler {
	return queries.NewGetTransferByIDQueryHandler(c.gormDB)
}

type FuncWaterBoxUoWFactory func() commands.WaterBoxUoW

func (f FuncWaterBoxUoWFactory) Create() commands.WaterBoxUoW {
	return f()
}

type FuncAssignmentUoWFactory func() commands.AssignmentUoW

func (f FuncAssignmentUoWFactory) Create() commands.AssignmentUoW {
	return f()
}

type FuncUoWFactory func() commands.UoW

func (f FuncUoWFactory) Create() commands.UoW {
	return f()
}
