package assignmentrepo_test

import (
	"context"
	"testing"
	"time"

	"waterinfra/internal/adapters/out/postgres/assignmentrepo"
	"waterinfra/internal/core/domain/model/assignment"
	"waterinfra/internal/core/domain/model/kernel"
	"waterinfra/internal/pkg/errs"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	postgresdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// MockAggregateTracker is a mock implementation of aggregateTracker interface.
type MockAggregateTracker struct {
	mock.Mock
}

func (m *MockAggregateTracker) TrackAggregate(id kernel.UUID, aggregate any) {
	m.Called(id, aggregate)
}

// AssignmentRepositoryIntegrationTestSuite provides integration tests for
// AssignmentRepository using PostgreSQL containers to verify persistence behavior.
type AssignmentRepositoryIntegrationTestSuite struct {
	suite.Suite
	container  *postgres.PostgresContainer
	db         *gorm.DB
	repository *assignmentrepo.GormAssignmentRepository
	tracker    *MockAggregateTracker
}

func (suite *AssignmentRepositoryIntegrationTestSuite) SetupSuite() {
	ctx := context.Background()

	container, err := postgres.Run(ctx,
		"postgres:15-alpine",
		postgres.WithDatabase("testdb"),
		postgres.WithUsername("testuser"),
		postgres.WithPassword("testpass"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second),
		),
	)
	suite.Require().NoError(err)
	suite.container = container

	connStr, err := container.ConnectionString(ctx, "sslmode=disable")
	suite.Require().NoError(err)

	db, err := gorm.Open(postgresdriver.Open(connStr), &gorm.Config{})
	suite.Require().NoError(err)
	suite.db = db

	suite.Require().NoError(db.AutoMigrate(&assignmentrepo.AssignmentDTO{}))
}

func (suite *AssignmentRepositoryIntegrationTestSuite) SetupTest() {
	suite.Require().NoError(suite.db.Exec("TRUNCATE TABLE assignments").Error)

	suite.tracker = new(MockAggregateTracker)
	suite.repository = assignmentrepo.NewGormAssignmentRepository(suite.db, suite.tracker)
}

func (suite *AssignmentRepositoryIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		suite.Require().NoError(suite.container.Terminate(context.Background()))
	}
}

func (suite *AssignmentRepositoryIntegrationTestSuite) TestAdd_ValidAssignment_Success() {
	ctx := context.Background()

	testAssignment := suite.createTestAssignment()
	suite.tracker.On("TrackAggregate", testAssignment.ID(), testAssignment).Once()

	err := suite.repository.Add(ctx, testAssignment)
	suite.Require().NoError(err)

	suite.assertAssignmentCount(1)
	suite.tracker.AssertExpectations(suite.T())
}

func (suite *AssignmentRepositoryIntegrationTestSuite) TestGet_ExistingAssignment_ReturnsAssignment() {
	ctx := context.Background()

	testAssignment := suite.createTestAssignment()
	suite.tracker.On("TrackAggregate", testAssignment.ID(), testAssignment).Once()
	suite.Require().NoError(suite.repository.Add(ctx, testAssignment))

	loaded, err := suite.repository.Get(ctx, testAssignment.ID())
	suite.Require().NoError(err)

	suite.True(testAssignment.IsEqual(loaded))
	suite.Equal(testAssignment.SubscriberID(), loaded.SubscriberID())
	suite.Equal(testAssignment.MonthlyFee(), loaded.MonthlyFee())
	suite.Equal(kernel.StatusActive, loaded.Status())
	suite.Nil(loaded.EndDate())
	suite.Nil(loaded.TransferID())
}

func (suite *AssignmentRepositoryIntegrationTestSuite) TestGet_NonExistentAssignment_ReturnsNotFoundError() {
	ctx := context.Background()

	_, err := suite.repository.Get(ctx, kernel.NewUUID())

	suite.Require().Error(err)
	suite.ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *AssignmentRepositoryIntegrationTestSuite) TestUpdate_Deactivate_EndDatePersists() {
	ctx := context.Background()

	testAssignment := suite.createTestAssignment()
	suite.tracker.On("TrackAggregate", testAssignment.ID(), testAssignment)
	suite.Require().NoError(suite.repository.Add(ctx, testAssignment))

	suite.Require().NoError(testAssignment.Deactivate())
	suite.Require().NoError(suite.repository.Update(ctx, testAssignment))

	loaded, err := suite.repository.Get(ctx, testAssignment.ID())
	suite.Require().NoError(err)
	suite.Equal(kernel.StatusInactive, loaded.Status())
	suite.Require().NotNil(loaded.EndDate())
}

func (suite *AssignmentRepositoryIntegrationTestSuite) TestUpdate_Restore_EndDateClearsToNull() {
	ctx := context.Background()

	testAssignment := suite.createTestAssignment()
	suite.tracker.On("TrackAggregate", testAssignment.ID(), testAssignment)
	suite.Require().NoError(suite.repository.Add(ctx, testAssignment))

	suite.Require().NoError(testAssignment.Deactivate())
	suite.Require().NoError(suite.repository.Update(ctx, testAssignment))

	// Restoring clears the end date; the NULL must reach the database.
	suite.Require().NoError(testAssignment.Restore())
	suite.Require().NoError(suite.repository.Update(ctx, testAssignment))

	loaded, err := suite.repository.Get(ctx, testAssignment.ID())
	suite.Require().NoError(err)
	suite.Equal(kernel.StatusActive, loaded.Status())
	suite.Nil(loaded.EndDate())
}

func (suite *AssignmentRepositoryIntegrationTestSuite) TestUpdate_RetireForTransfer_TransferLinkPersists() {
	ctx := context.Background()

	testAssignment := suite.createTestAssignment()
	suite.tracker.On("TrackAggregate", testAssignment.ID(), testAssignment)
	suite.Require().NoError(suite.repository.Add(ctx, testAssignment))

	transferID := kernel.NewUUID()
	suite.Require().NoError(testAssignment.RetireForTransfer(transferID))
	suite.Require().NoError(suite.repository.Update(ctx, testAssignment))

	loaded, err := suite.repository.Get(ctx, testAssignment.ID())
	suite.Require().NoError(err)
	suite.Equal(kernel.StatusInactive, loaded.Status())
	suite.Require().NotNil(loaded.TransferID())
	suite.True(loaded.TransferID().IsEqual(transferID))
	suite.Require().NotNil(loaded.EndDate())
}

func (suite *AssignmentRepositoryIntegrationTestSuite) TestUpdate_NonExistentAssignment_ReturnsError() {
	ctx := context.Background()

	testAssignment := suite.createTestAssignment()

	err := suite.repository.Update(ctx, testAssignment)

	suite.Require().Error(err)
	suite.ErrorIs(err, gorm.ErrRecordNotFound)
}

func (suite *AssignmentRepositoryIntegrationTestSuite) TestGetAllInStatus_MixedStatuses_ReturnsMatchingAssignments() {
	ctx := context.Background()

	suite.tracker.On("TrackAggregate", mock.Anything, mock.Anything)

	active := suite.createTestAssignment()
	retired := suite.createTestAssignment()
	suite.Require().NoError(retired.Deactivate())

	suite.Require().NoError(suite.repository.Add(ctx, active))
	suite.Require().NoError(suite.repository.Add(ctx, retired))

	activeAssignments, err := suite.repository.GetAllInStatus(ctx, kernel.StatusActive)
	suite.Require().NoError(err)
	suite.Len(activeAssignments, 1)
	suite.True(active.IsEqual(activeAssignments[0]))

	inactiveAssignments, err := suite.repository.GetAllInStatus(ctx, kernel.StatusInactive)
	suite.Require().NoError(err)
	suite.Len(inactiveAssignments, 1)
	suite.True(retired.IsEqual(inactiveAssignments[0]))
}

func (suite *AssignmentRepositoryIntegrationTestSuite) TestGetAllInStatus_NoMatches_ReturnsEmptySlice() {
	ctx := context.Background()

	assignments, err := suite.repository.GetAllInStatus(ctx, kernel.StatusInactive)

	suite.Require().NoError(err)
	suite.Empty(assignments)
}

func (suite *AssignmentRepositoryIntegrationTestSuite) createTestAssignment() *assignment.Assignment {
	a, err := assignment.NewAssignment(
		kernel.NewUUID(),
		kernel.NewUUID(),
		"sub-42",
		time.Date(2024, 1, 10, 0, 0, 0, 0, time.UTC),
		120.50,
	)
	suite.Require().NoError(err)
	return a
}

func (suite *AssignmentRepositoryIntegrationTestSuite) assertAssignmentCount(expected int) {
	var count int64
	suite.Require().NoError(suite.db.Model(&assignmentrepo.AssignmentDTO{}).Count(&count).Error)
	suite.Equal(int64(expected), count)
}

func TestAssignmentRepositoryIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(AssignmentRepositoryIntegrationTestSuite))
}
