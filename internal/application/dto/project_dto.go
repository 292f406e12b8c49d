package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateProjectRequest alta de obra.
type CreateProjectRequest struct {
	Name             string           `json:"name" validate:"required,min=1,max=255"`
	Description      string           `json:"description"`
	ClientName       string           `json:"client_name" validate:"omitempty,max=255"`
	Location         string           `json:"location" validate:"omitempty,max=255"`
	StartDate        *time.Time       `json:"start_date"`
	EndDate          *time.Time       `json:"end_date"`
	Status           string           `json:"status" validate:"omitempty,oneof=planning active on_hold completed cancelled"`
	Budget           *decimal.Decimal `json:"budget"`
	ProjectManagerID *string          `json:"project_manager_id"`
}

// UpdateProjectRequest actualización parcial.
type UpdateProjectRequest struct {
	Name             *string          `json:"name" validate:"omitempty,min=1,max=255"`
	Description      *string          `json:"description"`
	ClientName       *string          `json:"client_name" validate:"omitempty,max=255"`
	Location         *string          `json:"location" validate:"omitempty,max=255"`
	StartDate        *time.Time       `json:"start_date"`
	EndDate          *time.Time       `json:"end_date"`
	Status           *string          `json:"status" validate:"omitempty,oneof=planning active on_hold completed cancelled"`
	Budget           *decimal.Decimal `json:"budget"`
	ProjectManagerID *string          `json:"project_manager_id"`
}

type ProjectResponse struct {
	ID               string           `json:"id"`
	Name             string           `json:"name"`
	Description      string           `json:"description,omitempty"`
	ClientName       string           `json:"client_name,omitempty"`
	Location         string           `json:"location,omitempty"`
	StartDate        *time.Time       `json:"start_date,omitempty"`
	EndDate          *time.Time       `json:"end_date,omitempty"`
	Status           string           `json:"status"`
	Budget           *decimal.Decimal `json:"budget,omitempty"`
	ProjectManagerID *string          `json:"project_manager_id,omitempty"`
	CreatedAt        time.Time        `json:"created_at"`
	UpdatedAt        time.Time        `json:"updated_at"`
}

// AddTeamMemberRequest incorpora un empleado al equipo de la obra.
type AddTeamMemberRequest struct {
	EmployeeID string `json:"employee_id" validate:"required"`
	Role       string `json:"role" validate:"omitempty,max=100"`
}

type TeamMemberResponse struct {
	ID           string    `json:"id"`
	ProjectID    string    `json:"project_id"`
	EmployeeID   string    `json:"employee_id"`
	EmployeeName string    `json:"employee_name,omitempty"`
	Role         string    `json:"role,omitempty"`
	AddedAt      time.Time `json:"added_at"`
}

type CreateTaskRequest struct {
	Title       string     `json:"title" validate:"required,min=1,max=255"`
	Description string     `json:"description"`
	AssignedTo  *string    `json:"assigned_to"`
	Status      string     `json:"status" validate:"omitempty,oneof=todo in_progress review completed"`
	Priority    string     `json:"priority" validate:"omitempty,oneof=low medium high urgent"`
	DueDate     *time.Time `json:"due_date"`
}

type UpdateTaskRequest struct {
	Title       *string    `json:"title" validate:"omitempty,min=1,max=255"`
	Description *string    `json:"description"`
	AssignedTo  *string    `json:"assigned_to"`
	Status      *string    `json:"status" validate:"omitempty,oneof=todo in_progress review completed"`
	Priority    *string    `json:"priority" validate:"omitempty,oneof=low medium high urgent"`
	DueDate     *time.Time `json:"due_date"`
}

type TaskResponse struct {
	ID          string     `json:"id"`
	ProjectID   string     `json:"project_id"`
	Title       string     `json:"title"`
	Description string     `json:"description,omitempty"`
	AssignedTo  *string    `json:"assigned_to,omitempty"`
	Status      string     `json:"status"`
	Priority    string     `json:"priority"`
	DueDate     *time.Time `json:"due_date,omitempty"`
	CompletedAt *time.Time `json:"completed_at,omitempty"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
}

// DocumentResponse metadatos del documento; URL es un enlace prefirmado de vida corta.
type DocumentResponse struct {
	ID          string    `json:"id"`
	ProjectID   string    `json:"project_id"`
	Name        string    `json:"name"`
	Description string    `json:"description,omitempty"`
	Category    string    `json:"category,omitempty"`
	FileKey     string    `json:"file_key"`
	URL         string    `json:"url,omitempty"`
	FileSize    int64     `json:"file_size"`
	MimeType    string    `json:"mime_type"`
	UploadedBy  string    `json:"uploaded_by,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
}
