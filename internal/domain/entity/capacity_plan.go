package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// CapacityPlan horas por día que un empleado dedica a una obra en un rango de fechas.
type CapacityPlan struct {
	ID          string
	EmployeeID  string
	ProjectID   *string
	StartDate   time.Time
	EndDate     time.Time
	HoursPerDay decimal.Decimal
	Notes       string
	CreatedAt   time.Time
	UpdatedAt   time.Time
	CreatedBy   string

	EmployeeName string // JOIN
	ProjectName  string // JOIN
}

// Days cantidad de días calendario cubiertos, inclusive.
func (p *CapacityPlan) Days() int {
	return int(p.EndDate.Sub(p.StartDate).Hours()/24) + 1
}

// CapacityFilter ventana opcional sobre un empleado.
type CapacityFilter struct {
	EmployeeID string
	From       *time.Time
	To         *time.Time
}
