package entity

import "time"

// InventoryAssignment entrega de un ítem a un empleado. Abierta mientras ReturnedDate es nil.
// Las filas no se borran: son el historial del ítem.
type InventoryAssignment struct {
	ID           string
	ItemID       string
	EmployeeID   string
	AssignedDate time.Time
	ReturnedDate *time.Time
	Notes        string
	CreatedAt    time.Time
	CreatedBy    string

	// Campos de lectura (JOIN), vacíos al insertar.
	ItemName     string
	EmployeeName string
}

// IsOpen indica si el ítem sigue en manos del empleado.
func (a *InventoryAssignment) IsOpen() bool {
	return a.ReturnedDate == nil
}

// AssignmentFilter filtros de asignaciones abiertas.
type AssignmentFilter struct {
	EmployeeID string
	ItemID     string
}
