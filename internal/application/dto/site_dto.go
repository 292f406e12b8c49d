package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

type CreateRFIRequest struct {
	ProjectID string     `json:"project_id" validate:"required"`
	RFINumber string     `json:"rfi_number" validate:"omitempty,max=50"`
	Subject   string     `json:"subject" validate:"required,min=1,max=255"`
	Question  string     `json:"question" validate:"required,min=1"`
	Priority  string     `json:"priority" validate:"omitempty,oneof=low medium high urgent"`
	DueDate   *time.Time `json:"due_date"`
}

// UpdateRFIRequest responder o cerrar una RFI.
type UpdateRFIRequest struct {
	Subject  *string    `json:"subject" validate:"omitempty,min=1,max=255"`
	Question *string    `json:"question" validate:"omitempty,min=1"`
	Answer   *string    `json:"answer"`
	Status   *string    `json:"status" validate:"omitempty,oneof=open answered closed"`
	Priority *string    `json:"priority" validate:"omitempty,oneof=low medium high urgent"`
	DueDate  *time.Time `json:"due_date"`
}

type RFIResponse struct {
	ID         string     `json:"id"`
	ProjectID  string     `json:"project_id"`
	RFINumber  string     `json:"rfi_number"`
	Subject    string     `json:"subject"`
	Question   string     `json:"question"`
	Answer     string     `json:"answer,omitempty"`
	Status     string     `json:"status"`
	Priority   string     `json:"priority"`
	DueDate    *time.Time `json:"due_date,omitempty"`
	AnsweredAt *time.Time `json:"answered_at,omitempty"`
	AnsweredBy *string    `json:"answered_by,omitempty"`
	CreatedAt  time.Time  `json:"created_at"`
	UpdatedAt  time.Time  `json:"updated_at"`
}

type CreateMeasurementRequest struct {
	ProjectID    string           `json:"project_id" validate:"required"`
	Description  string           `json:"description" validate:"required,min=1"`
	Quantity     decimal.Decimal  `json:"quantity"`
	Unit         string           `json:"unit" validate:"required,min=1,max=20"`
	UnitPrice    *decimal.Decimal `json:"unit_price"`
	Location     string           `json:"location" validate:"omitempty,max=255"`
	MeasuredDate *time.Time       `json:"measured_date"`
	Notes        string           `json:"notes"`
}

type UpdateMeasurementRequest struct {
	Description  *string          `json:"description" validate:"omitempty,min=1"`
	Quantity     *decimal.Decimal `json:"quantity"`
	Unit         *string          `json:"unit" validate:"omitempty,min=1,max=20"`
	UnitPrice    *decimal.Decimal `json:"unit_price"`
	Location     *string          `json:"location" validate:"omitempty,max=255"`
	MeasuredDate *time.Time       `json:"measured_date"`
	Notes        *string          `json:"notes"`
}

type MeasurementResponse struct {
	ID           string           `json:"id"`
	ProjectID    string           `json:"project_id"`
	Description  string           `json:"description"`
	Quantity     decimal.Decimal  `json:"quantity"`
	Unit         string           `json:"unit"`
	UnitPrice    *decimal.Decimal `json:"unit_price,omitempty"`
	Total        *decimal.Decimal `json:"total,omitempty"`
	Location     string           `json:"location,omitempty"`
	MeasuredDate time.Time        `json:"measured_date"`
	Notes        string           `json:"notes,omitempty"`
	CreatedAt    time.Time        `json:"created_at"`
}

type CreateProgressReportRequest struct {
	ProjectID          string     `json:"project_id" validate:"required"`
	Title              string     `json:"title" validate:"required,min=1,max=255"`
	Description        string     `json:"description"`
	PercentageComplete int        `json:"percentage_complete" validate:"min=0,max=100"`
	ReportDate         *time.Time `json:"report_date"`
}

type ProgressReportResponse struct {
	ID                 string    `json:"id"`
	ProjectID          string    `json:"project_id"`
	Title              string    `json:"title"`
	Description        string    `json:"description,omitempty"`
	PercentageComplete int       `json:"percentage_complete"`
	ReportDate         time.Time `json:"report_date"`
	CreatedAt          time.Time `json:"created_at"`
}

type CreateCapacityPlanRequest struct {
	EmployeeID  string          `json:"employee_id" validate:"required"`
	ProjectID   *string         `json:"project_id"`
	StartDate   time.Time       `json:"start_date" validate:"required"`
	EndDate     time.Time       `json:"end_date" validate:"required"`
	HoursPerDay decimal.Decimal `json:"hours_per_day"`
	Notes       string          `json:"notes"`
}

type UpdateCapacityPlanRequest struct {
	ProjectID   *string          `json:"project_id"`
	StartDate   *time.Time       `json:"start_date"`
	EndDate     *time.Time       `json:"end_date"`
	HoursPerDay *decimal.Decimal `json:"hours_per_day"`
	Notes       *string          `json:"notes"`
}

type CapacityPlanResponse struct {
	ID           string          `json:"id"`
	EmployeeID   string          `json:"employee_id"`
	EmployeeName string          `json:"employee_name,omitempty"`
	ProjectID    *string         `json:"project_id,omitempty"`
	ProjectName  string          `json:"project_name,omitempty"`
	StartDate    time.Time       `json:"start_date"`
	EndDate      time.Time       `json:"end_date"`
	HoursPerDay  decimal.Decimal `json:"hours_per_day"`
	TotalHours   decimal.Decimal `json:"total_hours"`
	Notes        string          `json:"notes,omitempty"`
	CreatedAt    time.Time       `json:"created_at"`
	UpdatedAt    time.Time       `json:"updated_at"`
}
