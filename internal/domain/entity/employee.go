package entity

import (
	"strings"
	"time"
)

// Estados de Employee. Solo filtran la lista de empleados asignables en la UI.
const (
	EmployeeStatusActive   = "active"
	EmployeeStatusInactive = "inactive"
	EmployeeStatusOnLeave  = "on_leave"
)

// Employee trabajador de obra u oficina al que se le entregan herramientas y tareas.
type Employee struct {
	ID             string
	FirstName      string
	LastName       string
	Email          string
	Phone          string
	Position       string
	Department     string
	EmployeeNumber string
	Status         string
	HireDate       *time.Time
	CreatedAt      time.Time
	UpdatedAt      time.Time
	CreatedBy      string
}

// FullName nombre y apellido separados por espacio.
func (e *Employee) FullName() string {
	return strings.TrimSpace(e.FirstName + " " + e.LastName)
}

// EmployeeFilter filtros del listado.
type EmployeeFilter struct {
	Status string
	Query  string // busca en nombre, apellido, email y número
}

func IsValidEmployeeStatus(s string) bool {
	return s == EmployeeStatusActive || s == EmployeeStatusInactive || s == EmployeeStatusOnLeave
}
