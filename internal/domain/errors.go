package domain

import (
	"errors"
	"fmt"
)

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound           = errors.New("recurso no encontrado")
	ErrUserNotFound       = fmt.Errorf("usuario: %w", ErrNotFound)
	ErrEmailAlreadyExists = errors.New("el email ya está registrado")
	ErrInvalidInput       = errors.New("entrada inválida")
	ErrDuplicate          = errors.New("recurso duplicado")
	ErrUnauthorized       = errors.New("no autorizado")
	ErrForbidden          = errors.New("acceso denegado")
	ErrConflict           = errors.New("conflicto con el estado actual")
	ErrAlreadyReturned    = errors.New("la asignación ya fue devuelta")
	ErrUnavailable        = errors.New("servicio no disponible")
)

// Errores del inventario. Envuelven los genéricos para que errors.Is los clasifique.
var (
	ErrItemNotFound        = fmt.Errorf("ítem de inventario: %w", ErrNotFound)
	ErrEmployeeNotFound    = fmt.Errorf("empleado: %w", ErrNotFound)
	ErrAssignmentNotFound  = fmt.Errorf("asignación: %w", ErrNotFound)
	ErrItemAlreadyAssigned = fmt.Errorf("el ítem ya está asignado: %w", ErrConflict)
	ErrItemUnavailable     = fmt.Errorf("el ítem está en mantenimiento o retirado: %w", ErrConflict)
	ErrItemInUse           = fmt.Errorf("el ítem tiene una asignación abierta: %w", ErrConflict)
	ErrItemHasHistory      = fmt.Errorf("el ítem tiene historial de asignaciones, márquelo como retirado: %w", ErrConflict)
	ErrEmployeeInUse       = fmt.Errorf("el empleado tiene asignaciones registradas: %w", ErrConflict)
)

// Invalid construye un error de validación con detalle legible.
func Invalid(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrInvalidInput, fmt.Sprintf(format, args...))
}

// Errores de obras.
var (
	ErrProjectNotFound     = fmt.Errorf("proyecto: %w", ErrNotFound)
	ErrTaskNotFound        = fmt.Errorf("tarea: %w", ErrNotFound)
	ErrDocumentNotFound    = fmt.Errorf("documento: %w", ErrNotFound)
	ErrTeamMemberNotFound  = fmt.Errorf("miembro del equipo: %w", ErrNotFound)
	ErrRFINotFound         = fmt.Errorf("RFI: %w", ErrNotFound)
	ErrMeasurementNotFound = fmt.Errorf("medición: %w", ErrNotFound)
	ErrReportNotFound      = fmt.Errorf("informe: %w", ErrNotFound)
	ErrCapacityNotFound    = fmt.Errorf("plan de capacidad: %w", ErrNotFound)
	ErrInspectionNotFound  = fmt.Errorf("protocolo de inspección: %w", ErrNotFound)
	ErrDefectNotFound      = fmt.Errorf("defecto: %w", ErrNotFound)
)
