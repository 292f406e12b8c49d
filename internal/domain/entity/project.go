package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Estados de Project.
const (
	ProjectStatusPlanning  = "planning"
	ProjectStatusActive    = "active"
	ProjectStatusOnHold    = "on_hold"
	ProjectStatusCompleted = "completed"
	ProjectStatusCancelled = "cancelled"
)

// Project obra o proyecto de construcción.
type Project struct {
	ID               string
	Name             string
	Description      string
	ClientName       string
	Location         string
	StartDate        *time.Time
	EndDate          *time.Time
	Status           string
	Budget           *decimal.Decimal
	ProjectManagerID *string
	CreatedAt        time.Time
	UpdatedAt        time.Time
	CreatedBy        string
}

// ProjectTeamMember vínculo empleado-proyecto con un rol libre (capataz, residente...).
type ProjectTeamMember struct {
	ID           string
	ProjectID    string
	EmployeeID   string
	Role         string
	AddedAt      time.Time
	EmployeeName string // JOIN
}

func IsValidProjectStatus(s string) bool {
	switch s {
	case ProjectStatusPlanning, ProjectStatusActive, ProjectStatusOnHold, ProjectStatusCompleted, ProjectStatusCancelled:
		return true
	}
	return false
}
