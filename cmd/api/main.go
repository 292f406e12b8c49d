package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"github.com/jhoicas/Obras-api/internal/application/auth"
	"github.com/jhoicas/Obras-api/internal/application/inventory"
	"github.com/jhoicas/Obras-api/internal/application/notification"
	"github.com/jhoicas/Obras-api/internal/application/ports"
	"github.com/jhoicas/Obras-api/internal/application/usecase"
	infraai "github.com/jhoicas/Obras-api/internal/infrastructure/ai"
	"github.com/jhoicas/Obras-api/internal/infrastructure/blob"
	"github.com/jhoicas/Obras-api/internal/infrastructure/metrics"
	infrapdf "github.com/jhoicas/Obras-api/internal/infrastructure/pdf"
	"github.com/jhoicas/Obras-api/internal/infrastructure/postgres"
	infraxlsx "github.com/jhoicas/Obras-api/internal/infrastructure/xlsx"
	httpRouter "github.com/jhoicas/Obras-api/internal/interfaces/http"
	"github.com/jhoicas/Obras-api/pkg/config"
	"github.com/jhoicas/Obras-api/pkg/logger"
)

// memoryFilesURL prefijo de descarga del blob store en memoria (ver httpRouter.FileServer).
const memoryFilesURL = "/api/files/"

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:     cfg.App.Env,
		Level:   cfg.App.LogLevel,
		Service: cfg.App.Name,
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Msg("iniciando aplicación")

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	if cfg.DB.AutoMigrate {
		if err := postgres.Migrate(ctx, pool); err != nil {
			log.Fatal().Err(err).Msg("migraciones")
		}
		log.Info().Msg("migraciones aplicadas")
	}

	store, err := blob.Open(ctx, cfg.Blob, memoryFilesURL)
	if err != nil {
		log.Fatal().Err(err).Msg("almacenamiento de archivos")
	}
	if store.Driver() == "memory" {
		log.Warn().Msg("BLOB_DRIVER=memory: los archivos se pierden al reiniciar")
	}

	recorder := metrics.NewRecorder()

	userRepo := postgres.NewUserRepository(pool)
	itemRepo := postgres.NewInventoryItemRepository(pool)
	assignmentRepo := postgres.NewInventoryAssignmentRepository(pool)
	employeeRepo := postgres.NewEmployeeRepository(pool)
	projectRepo := postgres.NewProjectRepository(pool)
	taskRepo := postgres.NewProjectTaskRepository(pool)
	documentRepo := postgres.NewProjectDocumentRepository(pool)
	rfiRepo := postgres.NewRFIRepository(pool)
	measurementRepo := postgres.NewMeasurementRepository(pool)
	progressRepo := postgres.NewProgressReportRepository(pool)
	capacityRepo := postgres.NewCapacityPlanRepository(pool)
	dailyReportRepo := postgres.NewDailyReportRepository(pool)
	inspectionRepo := postgres.NewInspectionProtocolRepository(pool)
	defectRepo := postgres.NewDefectProtocolRepository(pool)
	notificationRepo := postgres.NewNotificationRepository(pool)
	txRunner := postgres.NewTxRunner(pool)

	// Las notificaciones se insertan fuera de la transacción que las origina.
	emitter := notification.NewEmitter(notificationRepo, log, recorder, cfg.Notification.Timeout)

	ledger := inventory.NewAssignmentLedger(txRunner, assignmentRepo, emitter, recorder)
	itemUC := inventory.NewItemUseCase(txRunner, itemRepo)

	maxUpload := cfg.Blob.MaxUploadMB * 1024 * 1024

	var llm ports.LLMService
	switch cfg.AI.Provider {
	case "anthropic":
		llm = infraai.NewAnthropicService(cfg.AI.AnthropicAPIKey, cfg.AI.AnthropicModel, cfg.AI.Timeout)
	case "openai":
		llm = infraai.NewOpenAIService(cfg.AI.OpenAIAPIKey, cfg.AI.OpenAIBaseURL, cfg.AI.OpenAIModel)
	default:
		log.Warn().Msg("AI_PROVIDER vacío: los endpoints de IA responden 503")
	}
	aiUC := usecase.NewAIUseCase(llm, usecase.AIRepos{
		Projects:     projectRepo,
		Tasks:        taskRepo,
		DailyReports: dailyReportRepo,
		Inspections:  inspectionRepo,
		Defects:      defectRepo,
		Progress:     progressRepo,
	}, cfg.AI.Timeout)

	exportUC := usecase.NewExportUseCase(usecase.ExportRepos{
		Projects:     projectRepo,
		DailyReports: dailyReportRepo,
		Inspections:  inspectionRepo,
		Defects:      defectRepo,
		Employees:    employeeRepo,
		Capacity:     capacityRepo,
	}, ledger, infrapdf.NewReportGenerator(cfg.App.Name), infraxlsx.NewExporter())

	authUC := auth.NewAuthUseCase(userRepo, auth.JWTConfig{
		Secret:     cfg.JWT.Secret,
		ExpMinutes: cfg.JWT.Expiration,
		Issuer:     cfg.JWT.Issuer,
	})

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  cfg.HTTP.ReadTimeout,
		WriteTimeout: cfg.HTTP.WriteTimeout,
		IdleTimeout:  time.Second * 60,
		BodyLimit:    cfg.HTTP.BodyLimitMB * 1024 * 1024,
		ErrorHandler: httpRouter.ErrorHandler,
	})
	app.Use(recover.New())
	app.Use(httpRouter.RequestLogger(log.Named("http")))
	if cfg.Metrics.Enabled {
		app.Use(recorder.Middleware())
		app.Get(cfg.Metrics.Path, metrics.Handler())
	}

	// Swagger UI en local: http://localhost:<port>/docs
	if cfg.HTTP.SwaggerPath != "" {
		if _, err := os.Stat(cfg.HTTP.SwaggerPath); err == nil {
			app.Use(swagger.New(swagger.Config{
				BasePath: "/",
				FilePath: cfg.HTTP.SwaggerPath,
				Path:     "docs",
				Title:    "Obras API",
			}))
		} else {
			log.Warn().Str("path", cfg.HTTP.SwaggerPath).Msg("swagger.json no encontrado, /docs desactivado")
		}
	}

	app.Get("/health", func(c *fiber.Ctx) error {
		pingCtx, cancel := context.WithTimeout(c.UserContext(), 2*time.Second)
		defer cancel()
		if err := pool.Ping(pingCtx); err != nil {
			return c.Status(fiber.StatusServiceUnavailable).JSON(fiber.Map{"status": "degraded", "db": "down"})
		}
		return c.JSON(fiber.Map{
			"status":  "ok",
			"service": cfg.App.Name,
			"blob":    store.Driver(),
			"ai":      aiUC.Enabled(),
		})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		AuthUC:        authUC,
		Users:         usecase.NewUserUseCase(userRepo),
		Items:         itemUC,
		Ledger:        ledger,
		Employees:     usecase.NewEmployeeUseCase(employeeRepo, ledger, emitter),
		Projects:      usecase.NewProjectUseCase(projectRepo, employeeRepo, emitter),
		Tasks:         usecase.NewTaskUseCase(taskRepo, projectRepo, employeeRepo, emitter),
		Documents:     usecase.NewDocumentUseCase(documentRepo, projectRepo, store, emitter, cfg.Blob.PresignTTL, int64(maxUpload)),
		RFIs:          usecase.NewRFIUseCase(rfiRepo, projectRepo, emitter),
		Measurements:  usecase.NewMeasurementUseCase(measurementRepo, projectRepo),
		Progress:      usecase.NewProgressUseCase(progressRepo, projectRepo, emitter),
		Capacity:      usecase.NewCapacityUseCase(capacityRepo, employeeRepo, projectRepo),
		DailyReports:  usecase.NewDailyReportUseCase(dailyReportRepo, projectRepo),
		Inspections:   usecase.NewInspectionUseCase(inspectionRepo, projectRepo),
		Defects:       usecase.NewDefectUseCase(defectRepo, projectRepo, employeeRepo, emitter),
		Uploads:       usecase.NewUploadUseCase(store, cfg.Blob.PresignTTL, maxUpload),
		Export:        exportUC,
		AI:            aiUC,
		Notifications: notification.NewUseCase(notificationRepo),
		Files:         store,
		JWTSecret:     cfg.JWT.Secret,
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("señal de apagado recibida, cerrando servidor...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("apagado del servidor")
	}
	// Las notificaciones en vuelo se escriben antes de cerrar el pool.
	if err := emitter.Close(shutdownCtx); err != nil {
		log.Warn().Err(err).Msg("notificaciones pendientes descartadas")
	}

	log.Info().Msg("aplicación detenida")
}
