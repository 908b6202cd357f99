package bootstrap

import (
	"context"
	"path/filepath"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"

	appControllers "github.com/yigit/tuition/internal/app/controllers"
	"github.com/yigit/tuition/internal/app/reports"
	appRepos "github.com/yigit/tuition/internal/app/repositories"
	appRoutes "github.com/yigit/tuition/internal/app/routes"
	appServices "github.com/yigit/tuition/internal/app/services"
	"github.com/yigit/tuition/internal/config"
	"github.com/yigit/tuition/internal/db"
	appMiddleware "github.com/yigit/tuition/internal/middleware"
	"github.com/yigit/tuition/internal/pkg/logger"
)

// Dependencies holds all the application dependencies
type Dependencies struct {
	Repos             *appRepos.Repositories
	Assembler         *reports.Assembler
	ReportService     appServices.ReportService
	StudentService    appServices.StudentService
	TeacherService    appServices.TeacherService
	CourseService     appServices.CourseService
	FeeService        appServices.FeeService
	AttendanceService appServices.AttendanceService
	MarkService       appServices.MarkService
	Controllers       appRoutes.Controllers
	Logger            zerolog.Logger
}

// LoadConfigAndSetupLogger loads configuration and initializes the logger.
func LoadConfigAndSetupLogger() (*config.Config, zerolog.Logger, error) {
	configPath := filepath.Join("configs", "config.yaml")
	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		logger.Error().Err(err).Msg("Failed to load configuration")
		return nil, zerolog.Logger{}, err
	}

	logLevel := logger.LogLevel(strings.ToLower(cfg.Logging.Level))
	logger.Configure(logger.Config{
		Level:  logLevel,
		Pretty: strings.ToLower(cfg.Logging.Format) == "text",
	})

	lgr := logger.Get()
	lgr.Info().Str("logLevel", string(logLevel)).Str("logFormat", cfg.Logging.Format).Msg("Logger configured")
	return cfg, lgr, nil
}

// SetupDatabase opens the connection pool. The schema is expected to exist already.
func SetupDatabase(cfg *config.Config, lgr zerolog.Logger) (*pgxpool.Pool, error) {
	lgr.Info().
		Str("host", cfg.Database.Host).
		Str("database", cfg.Database.DBName).
		Msg("Establishing database connection...")

	database, err := db.NewPostgresDB(context.Background(), cfg)
	if err != nil {
		lgr.Error().Err(err).Msg("Failed to connect to database")
		return nil, err
	}

	lgr.Info().Msg("Database connection successfully established.")
	return database.Pool, nil
}

// BuildDependencies initializes application repositories, services, and controllers.
func BuildDependencies(cfg *config.Config, dbPool *pgxpool.Pool, lgr zerolog.Logger) *Dependencies {
	deps := &Dependencies{Logger: lgr}

	deps.Repos = appRepos.NewRepositories(dbPool)
	deps.Assembler = reports.NewAssembler(dbPool, lgr)

	deps.ReportService = appServices.NewReportService(deps.Assembler, cfg.Reports.ExportRowLimit)
	deps.StudentService = appServices.NewStudentService(deps.Repos.StudentRepository)
	deps.TeacherService = appServices.NewTeacherService(deps.Repos.TeacherRepository)
	deps.CourseService = appServices.NewCourseService(deps.Repos.CourseRepository)
	deps.FeeService = appServices.NewFeeService(deps.Repos.FeeRepository)
	deps.AttendanceService = appServices.NewAttendanceService(deps.Repos.AttendanceRepository)
	deps.MarkService = appServices.NewMarkService(deps.Repos.MarkRepository, deps.Repos.StudentRepository)

	deps.Controllers = appRoutes.Controllers{
		Report:     appControllers.NewReportController(deps.ReportService),
		Student:    appControllers.NewStudentController(deps.StudentService, deps.MarkService, deps.ReportService),
		Teacher:    appControllers.NewTeacherController(deps.TeacherService, deps.ReportService),
		Course:     appControllers.NewCourseController(deps.CourseService, deps.ReportService),
		Fee:        appControllers.NewFeeController(deps.FeeService, deps.ReportService),
		Attendance: appControllers.NewAttendanceController(deps.AttendanceService),
		Health:     appControllers.NewHealthController(dbPool),
	}

	return deps
}

// SetupRouter configures the Gin engine with middleware and routes.
func SetupRouter(cfg *config.Config, deps *Dependencies, lgr zerolog.Logger) *gin.Engine {
	if strings.ToLower(cfg.Server.Mode) == "production" {
		gin.SetMode(gin.ReleaseMode)
		lgr.Info().Msg("Setting Gin mode to release")
	} else {
		gin.SetMode(gin.DebugMode)
		lgr.Info().Msg("Setting Gin mode to debug")
	}

	// Access logging comes from RequestLogger, so gin.Default's logger is not used
	router := gin.New()
	router.Use(
		gin.Recovery(),
		appMiddleware.RequestID(),
		appMiddleware.RequestLogger(lgr),
		appMiddleware.CORS(cfg.Server.CorsOrigins),
	)

	appRoutes.SetupSwagger(router)
	appRoutes.SetupRouter(router, deps.Controllers)

	return router
}
