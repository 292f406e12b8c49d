package inventory

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/jhoicas/Obras-api/internal/application/ports"
	"github.com/jhoicas/Obras-api/internal/domain"
	"github.com/jhoicas/Obras-api/internal/domain/entity"
	domaininv "github.com/jhoicas/Obras-api/internal/domain/inventory"
	"github.com/jhoicas/Obras-api/internal/domain/repository"
)

// AssignmentLedger entrega y devolución de ítems. Garantiza como máximo una asignación
// abierta por ítem y mantiene items.status en la misma transacción que la asignación.
//
// Toda escritura bloquea primero la fila del ítem (SELECT ... FOR UPDATE); el índice único
// parcial sobre inventory_assignments(item_id) WHERE returned_date IS NULL rechaza lo que
// se escape al bloqueo.
type AssignmentLedger struct {
	txRunner       TxRunner
	assignmentRepo repository.InventoryAssignmentRepository
	notifier       ports.Notifier
	metrics        ports.LedgerMetrics
	now            func() time.Time
}

// NewAssignmentLedger construye el ledger. assignmentRepo se usa para lecturas fuera de tx.
func NewAssignmentLedger(
	txRunner TxRunner,
	assignmentRepo repository.InventoryAssignmentRepository,
	notifier ports.Notifier,
	metrics ports.LedgerMetrics,
) *AssignmentLedger {
	if notifier == nil {
		notifier = ports.NopNotifier{}
	}
	if metrics == nil {
		metrics = ports.NopLedgerMetrics{}
	}
	return &AssignmentLedger{
		txRunner:       txRunner,
		assignmentRepo: assignmentRepo,
		notifier:       notifier,
		metrics:        metrics,
		now:            func() time.Time { return time.Now().UTC() },
	}
}

// AssignInput entrada de Assign.
type AssignInput struct {
	ItemID     string
	EmployeeID string
	Notes      string
	UserID     string // usuario que registra la entrega
}

// Assign entrega el ítem al empleado.
// Errores: ErrInvalidInput, ErrItemNotFound, ErrEmployeeNotFound, ErrItemAlreadyAssigned, ErrItemUnavailable.
func (l *AssignmentLedger) Assign(ctx context.Context, in AssignInput) (*entity.InventoryAssignment, error) {
	in.ItemID = strings.TrimSpace(in.ItemID)
	in.EmployeeID = strings.TrimSpace(in.EmployeeID)
	if in.ItemID == "" || in.EmployeeID == "" {
		l.metrics.ObserveAssign(ports.OutcomeInvalid)
		return nil, domain.Invalid("item_id y employee_id son obligatorios")
	}

	var created *entity.InventoryAssignment
	err := l.txRunner.Run(ctx, func(
		itemRepo repository.InventoryItemRepository,
		assignmentRepo repository.InventoryAssignmentRepository,
		employeeRepo repository.EmployeeRepository,
	) error {
		item, err := itemRepo.GetForUpdate(ctx, in.ItemID)
		if err != nil {
			return err
		}
		if item == nil {
			return domain.ErrItemNotFound
		}
		employee, err := employeeRepo.GetByID(ctx, in.EmployeeID)
		if err != nil {
			return err
		}
		if employee == nil {
			return domain.ErrEmployeeNotFound
		}

		// Re-chequeo con la fila bloqueada: cubre estados guardados inconsistentes.
		open, err := assignmentRepo.GetOpenByItem(ctx, item.ID)
		if err != nil {
			return err
		}
		if open != nil {
			return domain.ErrItemAlreadyAssigned
		}
		next, err := domaininv.StatusOnAssign(item.Status)
		if err != nil {
			return err
		}

		now := l.now()
		a := &entity.InventoryAssignment{
			ID:           uuid.New().String(),
			ItemID:       item.ID,
			EmployeeID:   employee.ID,
			AssignedDate: now,
			Notes:        strings.TrimSpace(in.Notes),
			CreatedAt:    now,
			CreatedBy:    in.UserID,
		}
		if err := assignmentRepo.Create(ctx, a); err != nil {
			return err
		}
		if err := itemRepo.UpdateStatus(ctx, item.ID, next, now); err != nil {
			return err
		}
		a.ItemName = item.Name
		a.EmployeeName = employee.FullName()
		created = a
		return nil
	})
	l.metrics.ObserveAssign(outcomeOf(err))
	if err != nil {
		return nil, err
	}

	l.notifier.Notify(ctx, &entity.Notification{
		UserID:      created.EmployeeID,
		Type:        entity.NotificationInventoryAssigned,
		Title:       "Equipo asignado",
		Message:     fmt.Sprintf("Se te asignó %s", created.ItemName),
		RelatedID:   created.ID,
		RelatedType: "inventory_assignment",
	})
	return created, nil
}

// Return registra la devolución de la asignación y libera el ítem.
// Errores: ErrAssignmentNotFound, ErrAlreadyReturned.
func (l *AssignmentLedger) Return(ctx context.Context, assignmentID string) (*entity.InventoryAssignment, error) {
	assignmentID = strings.TrimSpace(assignmentID)
	if assignmentID == "" {
		l.metrics.ObserveReturn(ports.OutcomeInvalid)
		return nil, domain.Invalid("assignment_id es obligatorio")
	}

	var closed *entity.InventoryAssignment
	err := l.txRunner.Run(ctx, func(
		itemRepo repository.InventoryItemRepository,
		assignmentRepo repository.InventoryAssignmentRepository,
		_ repository.EmployeeRepository,
	) error {
		a, err := assignmentRepo.GetByID(ctx, assignmentID)
		if err != nil {
			return err
		}
		if a == nil {
			return domain.ErrAssignmentNotFound
		}

		// Orden de bloqueo: ítem y luego asignación, igual que Assign.
		item, err := itemRepo.GetForUpdate(ctx, a.ItemID)
		if err != nil {
			return err
		}
		if item == nil {
			return domain.ErrItemNotFound
		}
		a, err = assignmentRepo.GetForUpdate(ctx, assignmentID)
		if err != nil {
			return err
		}
		if a == nil {
			return domain.ErrAssignmentNotFound
		}
		if !a.IsOpen() {
			return domain.ErrAlreadyReturned
		}

		now := l.now()
		if now.Before(a.AssignedDate) {
			now = a.AssignedDate
		}
		if err := assignmentRepo.MarkReturned(ctx, a.ID, now); err != nil {
			return err
		}
		if next := domaininv.StatusOnReturn(item.Status); next != item.Status {
			if err := itemRepo.UpdateStatus(ctx, item.ID, next, now); err != nil {
				return err
			}
		}
		a.ReturnedDate = &now
		a.ItemName = item.Name
		closed = a
		return nil
	})
	l.metrics.ObserveReturn(outcomeOf(err))
	if err != nil {
		return nil, err
	}
	return closed, nil
}

// ListAll todas las asignaciones, la más reciente primero.
func (l *AssignmentLedger) ListAll(ctx context.Context) ([]*entity.InventoryAssignment, error) {
	return l.assignmentRepo.ListAll(ctx)
}

// ListActive asignaciones abiertas, opcionalmente de un empleado o de un ítem, la más antigua primero.
func (l *AssignmentLedger) ListActive(ctx context.Context, filter entity.AssignmentFilter) ([]*entity.InventoryAssignment, error) {
	return l.assignmentRepo.ListOpen(ctx, filter)
}

// ListActiveByEmployee lo que el empleado tiene en su poder.
func (l *AssignmentLedger) ListActiveByEmployee(ctx context.Context, employeeID string) ([]*entity.InventoryAssignment, error) {
	if strings.TrimSpace(employeeID) == "" {
		return nil, domain.Invalid("employee_id es obligatorio")
	}
	return l.assignmentRepo.ListOpen(ctx, entity.AssignmentFilter{EmployeeID: employeeID})
}

// History historial completo de un ítem.
func (l *AssignmentLedger) History(ctx context.Context, itemID string) ([]*entity.InventoryAssignment, error) {
	return l.assignmentRepo.ListByItem(ctx, itemID)
}

func outcomeOf(err error) string {
	switch {
	case err == nil:
		return ports.OutcomeOK
	case errors.Is(err, domain.ErrAlreadyReturned):
		return ports.OutcomeAlreadyReturned
	case errors.Is(err, domain.ErrConflict):
		return ports.OutcomeConflict
	case errors.Is(err, domain.ErrNotFound):
		return ports.OutcomeNotFound
	case errors.Is(err, domain.ErrInvalidInput):
		return ports.OutcomeInvalid
	default:
		return ports.OutcomeError
	}
}
