package http_test

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"waterinfra/cmd"
	httpadapter "waterinfra/internal/adapters/in/http"
	"waterinfra/internal/adapters/out/postgres/assignmentrepo"
	"waterinfra/internal/adapters/out/postgres/boxrepo"
	"waterinfra/internal/adapters/out/postgres/transferrepo"
	"waterinfra/internal/core/domain/model/kernel"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	postgresdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// ServerIntegrationTestSuite exercises the REST surface end to end against a
// PostgreSQL container, through the same wiring the composition root builds.
// It pins the response contract: deactivate answers with no content, every
// other mutating operation answers with the mutated or created entity.
type ServerIntegrationTestSuite struct {
	suite.Suite
	container *postgres.PostgresContainer
	db        *gorm.DB
	echo      *echo.Echo
}

func (suite *ServerIntegrationTestSuite) SetupSuite() {
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

	suite.Require().NoError(db.AutoMigrate(
		&boxrepo.WaterBoxDTO{},
		&assignmentrepo.AssignmentDTO{},
		&transferrepo.TransferDTO{},
	))

	app := cmd.NewCompositionRoot(cmd.Config{}, db)
	server := httpadapter.NewServer(
		app.CreateCreateWaterBoxCommandHandler(),
		app.CreateUpdateWaterBoxCommandHandler(),
		app.CreateDeactivateWaterBoxCommandHandler(),
		app.CreateRestoreWaterBoxCommandHandler(),
		app.CreateCreateAssignmentCommandHandler(),
		app.CreateUpdateAssignmentCommandHandler(),
		app.CreateDeactivateAssignmentCommandHandler(),
		app.CreateRestoreAssignmentCommandHandler(),
		app.CreateTransferWaterBoxCommandHandler(),
		app.CreateGetWaterBoxesByStatusQueryHandler(),
		app.CreateGetWaterBoxByIDQueryHandler(),
		app.CreateGetAssignmentsByStatusQueryHandler(),
		app.CreateGetAssignmentByIDQueryHandler(),
		app.CreateGetAllTransfersQueryHandler(),
		app.CreateGetTransferByIDQueryHandler(),
	)

	e := echo.New()
	server.RegisterRoutes(e)
	suite.echo = e
}

func (suite *ServerIntegrationTestSuite) SetupTest() {
	suite.Require().NoError(suite.db.Exec("TRUNCATE TABLE water_boxes, assignments, transfers").Error)
}

func (suite *ServerIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		suite.Require().NoError(suite.container.Terminate(context.Background()))
	}
}

func (suite *ServerIntegrationTestSuite) doJSON(method, path string, body any) *httptest.ResponseRecorder {
	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		suite.Require().NoError(err)
		reader = bytes.NewReader(payload)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	suite.echo.ServeHTTP(rec, req)
	return rec
}

func (suite *ServerIntegrationTestSuite) decode(rec *httptest.ResponseRecorder, target any) {
	suite.Require().NoError(json.Unmarshal(rec.Body.Bytes(), target))
}

func (suite *ServerIntegrationTestSuite) createBox(boxCode string) httpadapter.WaterBox {
	rec := suite.doJSON(http.MethodPost, "/api/v1/water-boxes", httpadapter.CreateWaterBoxRequest{
		OrganizationID:   "org-7",
		BoxCode:          boxCode,
		BoxType:          "Domestic",
		InstallationDate: time.Date(2020, 3, 15, 0, 0, 0, 0, time.UTC),
	})
	suite.Require().Equal(http.StatusCreated, rec.Code)

	var box httpadapter.WaterBox
	suite.decode(rec, &box)
	return box
}

func (suite *ServerIntegrationTestSuite) createAssignment(waterBoxID, subscriberID string) httpadapter.Assignment {
	rec := suite.doJSON(http.MethodPost, "/api/v1/water-box-assignments", httpadapter.CreateAssignmentRequest{
		WaterBoxID:   waterBoxID,
		SubscriberID: subscriberID,
		StartDate:    time.Date(2024, 1, 10, 0, 0, 0, 0, time.UTC),
		MonthlyFee:   120.50,
	})
	suite.Require().Equal(http.StatusCreated, rec.Code)

	var a httpadapter.Assignment
	suite.decode(rec, &a)
	return a
}

func (suite *ServerIntegrationTestSuite) getBox(id string) httpadapter.WaterBox {
	rec := suite.doJSON(http.MethodGet, "/api/v1/water-boxes/"+id, nil)
	suite.Require().Equal(http.StatusOK, rec.Code)

	var box httpadapter.WaterBox
	suite.decode(rec, &box)
	return box
}

func (suite *ServerIntegrationTestSuite) TestCreateWaterBox_ReturnsCreatedEntity() {
	box := suite.createBox("WB-" + kernel.NewUUID().String()[:8])

	suite.NotEmpty(box.ID)
	suite.Equal("org-7", box.OrganizationID)
	suite.Equal("Domestic", box.BoxType)
	suite.Equal("Active", box.Status)
	suite.Nil(box.CurrentAssignmentID)
	suite.False(box.CreatedAt.IsZero())
}

func (suite *ServerIntegrationTestSuite) TestUpdateWaterBox_ReturnsUpdatedEntity() {
	box := suite.createBox("WB-" + kernel.NewUUID().String()[:8])

	newInstallDate := time.Date(2021, 7, 1, 0, 0, 0, 0, time.UTC)
	rec := suite.doJSON(http.MethodPut, "/api/v1/water-boxes/"+box.ID, httpadapter.UpdateWaterBoxRequest{
		OrganizationID:   "org-9",
		BoxCode:          "WB-" + kernel.NewUUID().String()[:8],
		BoxType:          "Commercial",
		InstallationDate: newInstallDate,
	})
	suite.Require().Equal(http.StatusOK, rec.Code)

	var updated httpadapter.WaterBox
	suite.decode(rec, &updated)
	suite.Equal(box.ID, updated.ID)
	suite.Equal("org-9", updated.OrganizationID)
	suite.Equal("Commercial", updated.BoxType)
	suite.Equal(newInstallDate, updated.InstallationDate.UTC())
}

func (suite *ServerIntegrationTestSuite) TestDeactivateWaterBox_ReturnsNoContent() {
	box := suite.createBox("WB-" + kernel.NewUUID().String()[:8])

	rec := suite.doJSON(http.MethodDelete, "/api/v1/water-boxes/"+box.ID, nil)
	suite.Require().Equal(http.StatusNoContent, rec.Code)
	suite.Empty(rec.Body.Bytes())
}

func (suite *ServerIntegrationTestSuite) TestRestoreWaterBox_ReturnsRestoredEntity() {
	box := suite.createBox("WB-" + kernel.NewUUID().String()[:8])

	rec := suite.doJSON(http.MethodDelete, "/api/v1/water-boxes/"+box.ID, nil)
	suite.Require().Equal(http.StatusNoContent, rec.Code)

	rec = suite.doJSON(http.MethodPatch, "/api/v1/water-boxes/"+box.ID+"/restore", nil)
	suite.Require().Equal(http.StatusOK, rec.Code)

	var restored httpadapter.WaterBox
	suite.decode(rec, &restored)
	suite.Equal(box.ID, restored.ID)
	suite.Equal("Active", restored.Status)
}

func (suite *ServerIntegrationTestSuite) TestCreateAssignment_ReturnsEntityAndRepointsBox() {
	box := suite.createBox("WB-" + kernel.NewUUID().String()[:8])

	a := suite.createAssignment(box.ID, "sub-42")
	suite.NotEmpty(a.ID)
	suite.Equal(box.ID, a.WaterBoxID)
	suite.Equal("sub-42", a.SubscriberID)
	suite.Equal("Active", a.Status)
	suite.Nil(a.EndDate)

	linked := suite.getBox(box.ID)
	suite.Require().NotNil(linked.CurrentAssignmentID)
	suite.Equal(a.ID, *linked.CurrentAssignmentID)
}

func (suite *ServerIntegrationTestSuite) TestCreateTransfer_ReturnsCreatedTransfer() {
	box := suite.createBox("WB-" + kernel.NewUUID().String()[:8])

	// The newest assignment becomes current, so the outgoing occupant is
	// created last.
	incoming := suite.createAssignment(box.ID, "sub-new")
	outgoing := suite.createAssignment(box.ID, "sub-old")

	rec := suite.doJSON(http.MethodPost, "/api/v1/water-box-transfers", httpadapter.CreateTransferRequest{
		WaterBoxID:      box.ID,
		OldAssignmentID: outgoing.ID,
		NewAssignmentID: incoming.ID,
		Reason:          "ownership change",
		Documents:       []string{"deed.pdf", "id-card.pdf"},
	})
	suite.Require().Equal(http.StatusCreated, rec.Code)

	var tr httpadapter.Transfer
	suite.decode(rec, &tr)
	suite.NotEmpty(tr.ID)
	suite.Equal(box.ID, tr.WaterBoxID)
	suite.Equal(outgoing.ID, tr.OldAssignmentID)
	suite.Equal(incoming.ID, tr.NewAssignmentID)
	suite.Equal("ownership change", tr.Reason)
	suite.Equal([]string{"deed.pdf", "id-card.pdf"}, tr.Documents)
	suite.False(tr.CreatedAt.IsZero())

	repointed := suite.getBox(box.ID)
	suite.Require().NotNil(repointed.CurrentAssignmentID)
	suite.Equal(incoming.ID, *repointed.CurrentAssignmentID)

	rec = suite.doJSON(http.MethodGet, "/api/v1/water-box-assignments/"+outgoing.ID, nil)
	suite.Require().Equal(http.StatusOK, rec.Code)

	var retired httpadapter.Assignment
	suite.decode(rec, &retired)
	suite.Equal("Inactive", retired.Status)
	suite.Require().NotNil(retired.TransferID)
	suite.Equal(tr.ID, *retired.TransferID)
	suite.NotNil(retired.EndDate)
}

func TestServerIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(ServerIntegrationTestSuite))
}
