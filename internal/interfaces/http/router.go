package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Obras-api/internal/application/auth"
	"github.com/jhoicas/Obras-api/internal/application/inventory"
	"github.com/jhoicas/Obras-api/internal/application/notification"
	"github.com/jhoicas/Obras-api/internal/application/ports"
	"github.com/jhoicas/Obras-api/internal/application/usecase"
	"github.com/jhoicas/Obras-api/internal/domain/entity"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AuthUC        *auth.AuthUseCase
	Users         *usecase.UserUseCase
	Items         *inventory.ItemUseCase
	Ledger        *inventory.AssignmentLedger
	Employees     *usecase.EmployeeUseCase
	Projects      *usecase.ProjectUseCase
	Tasks         *usecase.TaskUseCase
	Documents     *usecase.DocumentUseCase
	RFIs          *usecase.RFIUseCase
	Measurements  *usecase.MeasurementUseCase
	Progress      *usecase.ProgressUseCase
	Capacity      *usecase.CapacityUseCase
	DailyReports  *usecase.DailyReportUseCase
	Inspections   *usecase.InspectionUseCase
	Defects       *usecase.DefectUseCase
	Uploads       *usecase.UploadUseCase
	Export        *usecase.ExportUseCase
	AI            *usecase.AIUseCase
	Notifications *notification.UseCase
	// Files se monta en /api/files solo cuando el blob store es el de memoria.
	Files     ports.BlobStore
	JWTSecret string
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")
	adminOnly := RequireRole(entity.RoleAdmin)

	// Auth (público)
	authGroup := api.Group("/auth")
	authHandler := NewAuthHandler(deps.AuthUC)
	authGroup.Post("/register", authHandler.Register)
	authGroup.Post("/login", authHandler.Login)
	authGroup.Get("/me", AuthMiddleware(deps.JWTSecret), authHandler.Me)

	if deps.Files != nil && deps.Files.Driver() == "memory" {
		api.Get("/files/*", FileServer(deps.Files))
	}

	// Rutas protegidas (requieren Bearer Token)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret))

	// Usuarios (solo admin)
	users := protected.Group("/users", adminOnly)
	userHandler := NewUserHandler(deps.AuthUC, deps.Users)
	users.Get("/", userHandler.List)
	users.Post("/", userHandler.Create)
	users.Get("/:id", userHandler.GetByID)
	users.Put("/:id", userHandler.Update)

	// Inventario y ledger de asignaciones. Las rutas /assignments van antes de /:id.
	inv := protected.Group("/inventory")
	invHandler := NewInventoryHandler(deps.Items, deps.Ledger, deps.Export)
	inv.Get("/", invHandler.List)
	inv.Post("/", invHandler.Create)
	inv.Get("/assignments", invHandler.ListAssignments)
	inv.Post("/assignments", invHandler.Assign)
	inv.Get("/assignments/export", invHandler.ExportAssignments)
	inv.Post("/assignments/:id/return", invHandler.Return)
	inv.Get("/:id", invHandler.Get)
	inv.Put("/:id", invHandler.Update)
	inv.Delete("/:id", adminOnly, invHandler.Delete)
	inv.Get("/:id/history", invHandler.History)

	// Empleados
	employees := protected.Group("/employees")
	empHandler := NewEmployeeHandler(deps.Employees)
	employees.Get("/", empHandler.List)
	employees.Post("/", empHandler.Create)
	employees.Get("/:id", empHandler.Get)
	employees.Put("/:id", empHandler.Update)
	employees.Delete("/:id", adminOnly, empHandler.Delete)
	employees.Get("/:id/assignments", empHandler.Assignments)

	// Obras, equipo, tareas y documentos
	projHandler := NewProjectHandler(deps.Projects, deps.Tasks, deps.Documents)
	siteHandler := NewSiteHandler(SiteUseCases{
		RFIs:         deps.RFIs,
		Measurements: deps.Measurements,
		Progress:     deps.Progress,
		Capacity:     deps.Capacity,
		Export:       deps.Export,
	})
	fieldHandler := NewFieldHandler(FieldUseCases{
		DailyReports: deps.DailyReports,
		Inspections:  deps.Inspections,
		Defects:      deps.Defects,
		Export:       deps.Export,
	})
	aiHandler := NewAIHandler(deps.AI)

	projects := protected.Group("/projects")
	projects.Get("/", projHandler.List)
	projects.Post("/", projHandler.Create)
	projects.Get("/:id", projHandler.Get)
	projects.Put("/:id", projHandler.Update)
	projects.Delete("/:id", adminOnly, projHandler.Delete)
	projects.Get("/:id/team", projHandler.ListTeam)
	projects.Post("/:id/team", projHandler.AddTeamMember)
	projects.Delete("/:id/team/:memberId", projHandler.RemoveTeamMember)
	projects.Get("/:id/tasks", projHandler.ListTasks)
	projects.Post("/:id/tasks", projHandler.CreateTask)
	projects.Get("/:id/documents", projHandler.ListDocuments)
	projects.Post("/:id/documents", projHandler.UploadDocument)
	projects.Get("/:id/rfis", siteHandler.ListRFIs)
	projects.Get("/:id/measurements", siteHandler.ListMeasurements)
	projects.Get("/:id/progress", siteHandler.ListProgress)
	projects.Get("/:id/daily-reports", fieldHandler.ListDailyReports)
	projects.Get("/:id/inspections", fieldHandler.ListInspections)

	tasks := protected.Group("/tasks")
	tasks.Get("/:id", projHandler.GetTask)
	tasks.Put("/:id", projHandler.UpdateTask)
	tasks.Delete("/:id", projHandler.DeleteTask)

	documents := protected.Group("/documents")
	documents.Get("/:id/download", projHandler.DownloadDocument)
	documents.Delete("/:id", projHandler.DeleteDocument)

	// RFIs, mediciones, avances
	rfis := protected.Group("/rfis")
	rfis.Post("/", siteHandler.CreateRFI)
	rfis.Get("/:id", siteHandler.GetRFI)
	rfis.Put("/:id", siteHandler.UpdateRFI)
	rfis.Delete("/:id", siteHandler.DeleteRFI)

	measurements := protected.Group("/measurements")
	measurements.Post("/", siteHandler.CreateMeasurement)
	measurements.Put("/:id", siteHandler.UpdateMeasurement)
	measurements.Delete("/:id", siteHandler.DeleteMeasurement)

	progress := protected.Group("/progress-reports")
	progress.Post("/", siteHandler.CreateProgress)
	progress.Delete("/:id", siteHandler.DeleteProgress)

	// Capacidad
	capacity := protected.Group("/capacity")
	capacity.Get("/", siteHandler.ListCapacity)
	capacity.Post("/", siteHandler.CreateCapacity)
	capacity.Get("/export", siteHandler.ExportCapacity)
	capacity.Put("/:id", siteHandler.UpdateCapacity)
	capacity.Delete("/:id", siteHandler.DeleteCapacity)

	// Partes diarios, inspecciones, defectos
	reports := protected.Group("/daily-reports")
	reports.Post("/", fieldHandler.CreateDailyReport)
	reports.Get("/:id", fieldHandler.GetDailyReport)
	reports.Put("/:id", fieldHandler.UpdateDailyReport)
	reports.Delete("/:id", fieldHandler.DeleteDailyReport)
	reports.Get("/:id/pdf", fieldHandler.DailyReportPDF)
	reports.Post("/:id/ai-summary", aiHandler.DailyReportSummary)

	inspections := protected.Group("/inspections")
	inspections.Post("/", fieldHandler.CreateInspection)
	inspections.Get("/:id", fieldHandler.GetInspection)
	inspections.Put("/:id", fieldHandler.UpdateInspection)
	inspections.Delete("/:id", fieldHandler.DeleteInspection)
	inspections.Get("/:id/pdf", fieldHandler.InspectionPDF)
	inspections.Post("/:id/ai-report", aiHandler.InspectionReport)

	defects := protected.Group("/defects")
	defects.Get("/", fieldHandler.ListDefects)
	defects.Post("/", fieldHandler.CreateDefect)
	defects.Get("/export", fieldHandler.ExportDefects)
	defects.Get("/:id", fieldHandler.GetDefect)
	defects.Put("/:id", fieldHandler.UpdateDefect)
	defects.Delete("/:id", fieldHandler.DeleteDefect)
	defects.Post("/:id/ai-analysis", aiHandler.AnalyzeDefect)

	// Notificaciones del usuario autenticado
	notifications := protected.Group("/notifications")
	notifHandler := NewNotificationHandler(deps.Notifications)
	notifications.Get("/", notifHandler.List)
	notifications.Post("/read-all", notifHandler.MarkAllAsRead)
	notifications.Post("/:id/read", notifHandler.MarkAsRead)

	// Fotos
	uploads := protected.Group("/uploads")
	uploadHandler := NewUploadHandler(deps.Uploads)
	uploads.Post("/photos", uploadHandler.UploadPhoto)
	uploads.Get("/url", uploadHandler.PhotoURL)

	ai := protected.Group("/ai")
	ai.Post("/projects/:id/summary", aiHandler.ProjectSummary)
	ai.Post("/projects/:id/task-priorities", aiHandler.TaskPriorities)
}
