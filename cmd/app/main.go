package main

import (
	"database/sql"
	"fmt"
	"log/slog"
	"net/http"
	"os"

	"waterinfra/cmd"
	httpadapter "waterinfra/internal/adapters/in/http"
	"waterinfra/internal/adapters/out/postgres/assignmentrepo"
	"waterinfra/internal/adapters/out/postgres/boxrepo"
	"waterinfra/internal/adapters/out/postgres/transferrepo"
	"waterinfra/internal/identity"
	"waterinfra/internal/jobs"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/labstack/gommon/log"
	_ "github.com/lib/pq"
	gormpostgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

const defaultReconcileSchedule = "*/5 * * * *"

func main() {
	configs := getConfigs()

	gormDB := mustOpenDatabase(configs)
	app := cmd.NewCompositionRoot(configs, gormDB)

	jobManager := startJobs(&app, configs)
	defer jobManager.StopAll()

	startWebServer(&app, configs)
}

func getConfigs() cmd.Config {
	if err := godotenv.Load(".env"); err != nil {
		log.Warnf("No .env file loaded: %v", err)
	}

	config := cmd.Config{
		HTTPPort:          os.Getenv("HTTP_PORT"),
		DBHost:            os.Getenv("DB_HOST"),
		DBPort:            os.Getenv("DB_PORT"),
		DBUser:            os.Getenv("DB_USER"),
		DBPassword:        os.Getenv("DB_PASSWORD"),
		DBName:            os.Getenv("DB_NAME"),
		DBSslMode:         os.Getenv("DB_SSLMODE"),
		JWTSigningKey:     os.Getenv("JWT_SIGNING_KEY"),
		JWTIssuer:         os.Getenv("JWT_ISSUER"),
		ReconcileSchedule: os.Getenv("RECONCILE_SCHEDULE"),
	}
	if config.ReconcileSchedule == "" {
		config.ReconcileSchedule = defaultReconcileSchedule
	}
	return config
}

// mustOpenDatabase opens the connection with lib/pq and hands it to GORM.
func mustOpenDatabase(configs cmd.Config) *gorm.DB {
	dsn := fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		configs.DBHost, configs.DBPort, configs.DBUser,
		configs.DBPassword, configs.DBName, configs.DBSslMode)

	sqlDB, err := sql.Open("postgres", dsn)
	if err != nil {
		log.Fatalf("Failed to open database: %v", err)
	}
	if err := sqlDB.Ping(); err != nil {
		log.Fatalf("Failed to reach database: %v", err)
	}

	gormDB, err := gorm.Open(gormpostgres.New(gormpostgres.Config{Conn: sqlDB}), &gorm.Config{})
	if err != nil {
		log.Fatalf("Failed to initialize GORM: %v", err)
	}

	err = gormDB.AutoMigrate(
		&boxrepo.WaterBoxDTO{},
		&assignmentrepo.AssignmentDTO{},
		&transferrepo.TransferDTO{},
	)
	if err != nil {
		log.Fatalf("Failed to migrate schema: %v", err)
	}

	return gormDB
}

func startJobs(app *cmd.CompositionRoot, configs cmd.Config) *jobs.JobManager {
	jobManager := jobs.NewJobManager(
		app.CreateReconcileCurrentAssignmentsCommandHandler(),
		configs.ReconcileSchedule,
		slog.Default(),
	)
	if err := jobManager.StartAll(); err != nil {
		log.Fatalf("Failed to start jobs: %v", err)
	}
	return jobManager
}

func startWebServer(app *cmd.CompositionRoot, configs cmd.Config) {
	e := echo.New()
	e.Use(middleware.Recover())

	e.GET("/health", func(c echo.Context) error {
		return c.String(http.StatusOK, "Healthy")
	})

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

	// The bearer middleware is optional: without a signing key the API is open
	// and auth/me reports unauthenticated.
	var middlewares []echo.MiddlewareFunc
	if configs.JWTSigningKey != "" {
		tokens := identity.NewTokenService(configs.JWTSigningKey, configs.JWTIssuer)
		middlewares = append(middlewares, identity.Middleware(tokens, slog.Default()))
	}
	server.RegisterRoutes(e, middlewares...)

	e.Logger.Fatal(e.Start(fmt.Sprintf("0.0.0.0:%s", configs.HTTPPort)))
}
