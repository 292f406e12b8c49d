package inventory

import (
	"github.com/jhoicas/Obras-api/internal/domain"
	"github.com/jhoicas/Obras-api/internal/domain/entity"
)

// StatusOnAssign devuelve el estado del ítem tras abrir una asignación.
// Solo se asigna desde available; maintenance y retired bloquean la entrega.
func StatusOnAssign(current string) (string, error) {
	switch current {
	case entity.ItemStatusAvailable:
		return entity.ItemStatusAssigned, nil
	case entity.ItemStatusAssigned:
		return "", domain.ErrItemAlreadyAssigned
	case entity.ItemStatusMaintenance, entity.ItemStatusRetired:
		return "", domain.ErrItemUnavailable
	default:
		return "", domain.Invalid("estado de ítem desconocido %q", current)
	}
}

// StatusOnReturn devuelve el estado del ítem tras cerrar su asignación abierta.
// Un ítem movido a maintenance/retired mientras estaba prestado conserva ese estado.
func StatusOnReturn(current string) string {
	if current == entity.ItemStatusAssigned {
		return entity.ItemStatusAvailable
	}
	return current
}

// ValidateManualStatus valida un cambio de estado hecho desde el CRUD de inventario,
// fuera del ledger. hasOpen indica si el ítem tiene una asignación abierta.
func ValidateManualStatus(next string, hasOpen bool) error {
	if !entity.IsValidItemStatus(next) {
		return domain.Invalid("estado inválido %q", next)
	}
	switch {
	case next == entity.ItemStatusAvailable && hasOpen:
		return domain.Invalid("no se puede marcar disponible un ítem con asignación abierta; registre la devolución")
	case next == entity.ItemStatusAssigned && !hasOpen:
		return domain.Invalid("el estado assigned solo se obtiene asignando el ítem a un empleado")
	}
	return nil
}

// Consistent indica si el estado guardado concuerda con la existencia de una asignación abierta.
func Consistent(status string, hasOpen bool) bool {
	if hasOpen {
		return status != entity.ItemStatusAvailable
	}
	return status != entity.ItemStatusAssigned
}
