package dto

import (
	"time"

	"github.com/jhoicas/Obras-api/internal/domain/entity"
)

type CreateDailyReportRequest struct {
	ProjectID     string     `json:"project_id" validate:"required"`
	ReportDate    *time.Time `json:"report_date"`
	Weather       string     `json:"weather" validate:"omitempty,max=100"`
	Temperature   string     `json:"temperature" validate:"omitempty,max=50"`
	WorkPerformed string     `json:"work_performed" validate:"required,min=1"`
	Attendees     []string   `json:"attendees"`
	Equipment     string     `json:"equipment"`
	Materials     string     `json:"materials"`
	Issues        string     `json:"issues"`
	Photos        []string   `json:"photos"`
	Notes         string     `json:"notes"`
}

type UpdateDailyReportRequest struct {
	ReportDate    *time.Time `json:"report_date"`
	Weather       *string    `json:"weather" validate:"omitempty,max=100"`
	Temperature   *string    `json:"temperature" validate:"omitempty,max=50"`
	WorkPerformed *string    `json:"work_performed" validate:"omitempty,min=1"`
	Attendees     []string   `json:"attendees"`
	Equipment     *string    `json:"equipment"`
	Materials     *string    `json:"materials"`
	Issues        *string    `json:"issues"`
	Photos        []string   `json:"photos"`
	Notes         *string    `json:"notes"`
}

type DailyReportResponse struct {
	ID            string    `json:"id"`
	ProjectID     string    `json:"project_id"`
	ReportDate    time.Time `json:"report_date"`
	Weather       string    `json:"weather,omitempty"`
	Temperature   string    `json:"temperature,omitempty"`
	WorkPerformed string    `json:"work_performed"`
	Attendees     []string  `json:"attendees"`
	Equipment     string    `json:"equipment,omitempty"`
	Materials     string    `json:"materials,omitempty"`
	Issues        string    `json:"issues,omitempty"`
	Photos        []string  `json:"photos"`
	Notes         string    `json:"notes,omitempty"`
	CreatedBy     string    `json:"created_by,omitempty"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

type CreateInspectionRequest struct {
	ProjectID      string                     `json:"project_id" validate:"required"`
	Title          string                     `json:"title" validate:"required,min=1,max=255"`
	InspectionType string                     `json:"inspection_type" validate:"omitempty,oneof=regular special final acceptance"`
	InspectionDate *time.Time                 `json:"inspection_date"`
	Inspector      string                     `json:"inspector" validate:"omitempty,max=200"`
	Participants   []string                   `json:"participants"`
	Areas          []string                   `json:"areas"`
	Findings       []entity.InspectionFinding `json:"findings"`
	Notes          string                     `json:"notes"`
}

type UpdateInspectionRequest struct {
	Title          *string                    `json:"title" validate:"omitempty,min=1,max=255"`
	InspectionType *string                    `json:"inspection_type" validate:"omitempty,oneof=regular special final acceptance"`
	Status         *string                    `json:"status" validate:"omitempty,oneof=draft completed approved"`
	InspectionDate *time.Time                 `json:"inspection_date"`
	Inspector      *string                    `json:"inspector" validate:"omitempty,max=200"`
	Participants   []string                   `json:"participants"`
	Areas          []string                   `json:"areas"`
	Findings       []entity.InspectionFinding `json:"findings"`
	Notes          *string                    `json:"notes"`
}

type InspectionResponse struct {
	ID             string                     `json:"id"`
	ProjectID      string                     `json:"project_id"`
	Title          string                     `json:"title"`
	InspectionType string                     `json:"inspection_type"`
	Status         string                     `json:"status"`
	InspectionDate time.Time                  `json:"inspection_date"`
	Inspector      string                     `json:"inspector,omitempty"`
	Participants   []string                   `json:"participants"`
	Areas          []string                   `json:"areas"`
	Findings       []entity.InspectionFinding `json:"findings"`
	Notes          string                     `json:"notes,omitempty"`
	CreatedAt      time.Time                  `json:"created_at"`
	UpdatedAt      time.Time                  `json:"updated_at"`
}

type CreateDefectRequest struct {
	ProjectID   string     `json:"project_id" validate:"required"`
	Title       string     `json:"title" validate:"required,min=1,max=255"`
	Description string     `json:"description"`
	Location    string     `json:"location" validate:"omitempty,max=255"`
	Severity    string     `json:"severity" validate:"omitempty,oneof=low medium high critical"`
	AssignedTo  *string    `json:"assigned_to"`
	DueDate     *time.Time `json:"due_date"`
	Photos      []string   `json:"photos"`
	Notes       string     `json:"notes"`
}

type UpdateDefectRequest struct {
	Title       *string    `json:"title" validate:"omitempty,min=1,max=255"`
	Description *string    `json:"description"`
	Location    *string    `json:"location" validate:"omitempty,max=255"`
	Severity    *string    `json:"severity" validate:"omitempty,oneof=low medium high critical"`
	Status      *string    `json:"status" validate:"omitempty,oneof=open in_progress resolved verified closed"`
	AssignedTo  *string    `json:"assigned_to"`
	DueDate     *time.Time `json:"due_date"`
	Photos      []string   `json:"photos"`
	Notes       *string    `json:"notes"`
}

type DefectResponse struct {
	ID          string     `json:"id"`
	ProjectID   string     `json:"project_id"`
	Title       string     `json:"title"`
	Description string     `json:"description,omitempty"`
	Location    string     `json:"location,omitempty"`
	Severity    string     `json:"severity"`
	Status      string     `json:"status"`
	AssignedTo  *string    `json:"assigned_to,omitempty"`
	DueDate     *time.Time `json:"due_date,omitempty"`
	ResolvedAt  *time.Time `json:"resolved_at,omitempty"`
	Photos      []string   `json:"photos"`
	Notes       string     `json:"notes,omitempty"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
}
