package entity

import "time"

// Tipos de notificación.
const (
	NotificationEmployeeAdded     = "employee_added"
	NotificationInventoryAssigned = "inventory_assigned"
	NotificationProjectCreated    = "project_created"
	NotificationTaskAssigned      = "task_assigned"
	NotificationRFICreated        = "rfi_created"
	NotificationDocumentUploaded  = "document_uploaded"
	NotificationProgressReport    = "progress_report"
	NotificationDefectAssigned    = "defect_assigned"
	NotificationSystem            = "system"
)

// Notification aviso para un usuario o empleado. Sin garantías de entrega.
type Notification struct {
	ID          string
	UserID      string
	Type        string
	Title       string
	Message     string
	RelatedID   string
	RelatedType string
	IsRead      bool
	CreatedAt   time.Time
}
