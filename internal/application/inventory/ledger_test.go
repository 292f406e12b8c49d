package inventory_test

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Obras-api/internal/application/dto"
	"github.com/jhoicas/Obras-api/internal/application/inventory"
	"github.com/jhoicas/Obras-api/internal/application/ports"
	"github.com/jhoicas/Obras-api/internal/domain"
	"github.com/jhoicas/Obras-api/internal/domain/entity"
	"github.com/jhoicas/Obras-api/internal/domain/repository"
	"github.com/jhoicas/Obras-api/internal/infrastructure/memory"
)

// ──────────────────────────────────────────────────────────────────────────────
// Helpers de test
// ──────────────────────────────────────────────────────────────────────────────

type recordingNotifier struct {
	mu   sync.Mutex
	sent []*entity.Notification
}

func (n *recordingNotifier) Notify(_ context.Context, x *entity.Notification) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.sent = append(n.sent, x)
}

func (n *recordingNotifier) count() int {
	n.mu.Lock()
	defer n.mu.Unlock()
	return len(n.sent)
}

type countingMetrics struct {
	mu      sync.Mutex
	assigns map[string]int
	returns map[string]int
}

func newCountingMetrics() *countingMetrics {
	return &countingMetrics{assigns: map[string]int{}, returns: map[string]int{}}
}

func (m *countingMetrics) ObserveAssign(o string) { m.mu.Lock(); m.assigns[o]++; m.mu.Unlock() }
func (m *countingMetrics) ObserveReturn(o string) { m.mu.Lock(); m.returns[o]++; m.mu.Unlock() }

type fixture struct {
	store    *memory.Store
	ledger   *inventory.AssignmentLedger
	items    *inventory.ItemUseCase
	notifier *recordingNotifier
	metrics  *countingMetrics
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	store := memory.NewStore()
	ctx := context.Background()
	require.NoError(t, store.Items().Create(ctx, &entity.InventoryItem{
		ID: "drill-1", Name: "Taladro percutor", Category: entity.ItemCategoryTool,
		Status: entity.ItemStatusAvailable, Condition: entity.ItemConditionGood,
	}))
	for _, e := range []entity.Employee{
		{ID: "alice", FirstName: "Alice", LastName: "Gómez", Status: entity.EmployeeStatusActive},
		{ID: "bob", FirstName: "Bob", LastName: "Ruiz", Status: entity.EmployeeStatusActive},
	} {
		e := e
		require.NoError(t, store.Employees().Create(ctx, &e))
	}
	notifier := &recordingNotifier{}
	metrics := newCountingMetrics()
	return &fixture{
		store:    store,
		ledger:   inventory.NewAssignmentLedger(store, store.Assignments(), notifier, metrics),
		items:    inventory.NewItemUseCase(store, store.Items()),
		notifier: notifier,
		metrics:  metrics,
	}
}

func (f *fixture) itemStatus(t *testing.T, id string) string {
	t.Helper()
	it, err := f.store.Items().GetByID(context.Background(), id)
	require.NoError(t, err)
	require.NotNil(t, it)
	return it.Status
}

// assertConsistent comprueba status = assigned ⇔ exactamente una asignación abierta.
func (f *fixture) assertConsistent(t *testing.T, itemID string) {
	t.Helper()
	open, err := f.store.Assignments().ListOpen(context.Background(), entity.AssignmentFilter{ItemID: itemID})
	require.NoError(t, err)
	require.LessOrEqual(t, len(open), 1, "nunca más de una asignación abierta por ítem")
	if len(open) == 1 {
		assert.Equal(t, entity.ItemStatusAssigned, f.itemStatus(t, itemID))
	} else {
		assert.NotEqual(t, entity.ItemStatusAssigned, f.itemStatus(t, itemID))
	}
}

func strPtr(s string) *string { return &s }

// ──────────────────────────────────────────────────────────────────────────────
// Assign / Return
// ──────────────────────────────────────────────────────────────────────────────

func TestAssign_Drill1AAlice(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	a, err := f.ledger.Assign(ctx, inventory.AssignInput{ItemID: "drill-1", EmployeeID: "alice", Notes: "obra norte", UserID: "u1"})
	require.NoError(t, err)

	assert.Equal(t, "drill-1", a.ItemID)
	assert.Equal(t, "alice", a.EmployeeID)
	assert.Nil(t, a.ReturnedDate)
	assert.Equal(t, "obra norte", a.Notes)
	assert.Equal(t, "u1", a.CreatedBy)
	assert.Equal(t, "Alice Gómez", a.EmployeeName)
	assert.Equal(t, entity.ItemStatusAssigned, f.itemStatus(t, "drill-1"))
	f.assertConsistent(t, "drill-1")

	require.Equal(t, 1, f.notifier.count())
	n := f.notifier.sent[0]
	assert.Equal(t, "alice", n.UserID)
	assert.Equal(t, entity.NotificationInventoryAssigned, n.Type)
	assert.Equal(t, a.ID, n.RelatedID)
	assert.Equal(t, 1, f.metrics.assigns[ports.OutcomeOK])
}

func TestAssignReturn_IdaYVueltaRestauraDisponible(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	a, err := f.ledger.Assign(ctx, inventory.AssignInput{ItemID: "drill-1", EmployeeID: "alice"})
	require.NoError(t, err)

	closed, err := f.ledger.Return(ctx, a.ID)
	require.NoError(t, err)
	require.NotNil(t, closed.ReturnedDate)
	assert.False(t, closed.ReturnedDate.Before(a.AssignedDate), "returned_date >= assigned_date")
	assert.Equal(t, entity.ItemStatusAvailable, f.itemStatus(t, "drill-1"))

	history, err := f.ledger.History(ctx, "drill-1")
	require.NoError(t, err)
	require.Len(t, history, 1)
	assert.False(t, history[0].IsOpen())
	f.assertConsistent(t, "drill-1")
}

func TestAssign_SegundoEmpleadoRecibeConflicto(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	first, err := f.ledger.Assign(ctx, inventory.AssignInput{ItemID: "drill-1", EmployeeID: "alice"})
	require.NoError(t, err)

	_, err = f.ledger.Assign(ctx, inventory.AssignInput{ItemID: "drill-1", EmployeeID: "bob"})
	require.ErrorIs(t, err, domain.ErrConflict)
	assert.ErrorIs(t, err, domain.ErrItemAlreadyAssigned)

	active, err := f.ledger.ListActive(ctx, entity.AssignmentFilter{ItemID: "drill-1"})
	require.NoError(t, err)
	require.Len(t, active, 1)
	assert.Equal(t, first.ID, active[0].ID)
	assert.Equal(t, "alice", active[0].EmployeeID)
	assert.Equal(t, 1, f.notifier.count(), "el intento fallido no notifica")
	assert.Equal(t, 1, f.metrics.assigns[ports.OutcomeConflict])
}

func TestReturn_DobleDevolucion(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	a, err := f.ledger.Assign(ctx, inventory.AssignInput{ItemID: "drill-1", EmployeeID: "alice"})
	require.NoError(t, err)
	_, err = f.ledger.Return(ctx, a.ID)
	require.NoError(t, err)

	// Otro empleado toma el ítem; la segunda devolución no debe liberarlo.
	_, err = f.ledger.Assign(ctx, inventory.AssignInput{ItemID: "drill-1", EmployeeID: "bob"})
	require.NoError(t, err)

	_, err = f.ledger.Return(ctx, a.ID)
	assert.ErrorIs(t, err, domain.ErrAlreadyReturned)
	assert.Equal(t, entity.ItemStatusAssigned, f.itemStatus(t, "drill-1"))
	assert.Equal(t, 1, f.metrics.returns[ports.OutcomeAlreadyReturned])
	f.assertConsistent(t, "drill-1")
}

func TestAssign_NoEncontrados(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	_, err := f.ledger.Assign(ctx, inventory.AssignInput{ItemID: "no-existe", EmployeeID: "alice"})
	assert.ErrorIs(t, err, domain.ErrNotFound)
	assert.ErrorIs(t, err, domain.ErrItemNotFound)

	_, err = f.ledger.Assign(ctx, inventory.AssignInput{ItemID: "drill-1", EmployeeID: "nadie"})
	assert.ErrorIs(t, err, domain.ErrEmployeeNotFound)
	assert.Equal(t, entity.ItemStatusAvailable, f.itemStatus(t, "drill-1"))

	_, err = f.ledger.Return(ctx, "no-existe")
	assert.ErrorIs(t, err, domain.ErrAssignmentNotFound)
}

func TestAssign_EntradaInvalida(t *testing.T) {
	f := newFixture(t)
	_, err := f.ledger.Assign(context.Background(), inventory.AssignInput{ItemID: "  ", EmployeeID: "alice"})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
	assert.Equal(t, 1, f.metrics.assigns[ports.OutcomeInvalid])
}

func TestAssign_MantenimientoRechazado(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	_, err := f.items.Update(ctx, "drill-1", dto.UpdateInventoryItemRequest{Status: strPtr(entity.ItemStatusMaintenance)})
	require.NoError(t, err)

	_, err = f.ledger.Assign(ctx, inventory.AssignInput{ItemID: "drill-1", EmployeeID: "alice"})
	assert.ErrorIs(t, err, domain.ErrConflict)
	assert.ErrorIs(t, err, domain.ErrItemUnavailable)
	assert.Equal(t, entity.ItemStatusMaintenance, f.itemStatus(t, "drill-1"))

	open, err := f.ledger.ListActive(ctx, entity.AssignmentFilter{})
	require.NoError(t, err)
	assert.Empty(t, open)
}

func TestReturn_NoResucitaItemEnMantenimiento(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	a, err := f.ledger.Assign(ctx, inventory.AssignInput{ItemID: "drill-1", EmployeeID: "alice"})
	require.NoError(t, err)
	_, err = f.items.Update(ctx, "drill-1", dto.UpdateInventoryItemRequest{Status: strPtr(entity.ItemStatusMaintenance)})
	require.NoError(t, err)

	_, err = f.ledger.Return(ctx, a.ID)
	require.NoError(t, err)
	assert.Equal(t, entity.ItemStatusMaintenance, f.itemStatus(t, "drill-1"))
}

// ──────────────────────────────────────────────────────────────────────────────
// Concurrencia
// ──────────────────────────────────────────────────────────────────────────────

func TestAssign_ConcurrenteUnSoloGanador(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	const n = 16

	var (
		wg        sync.WaitGroup
		start     = make(chan struct{})
		mu        sync.Mutex
		successes int
		conflicts int
		others    []error
	)
	for i := 0; i < n; i++ {
		wg.Add(1)
		emp := "alice"
		if i%2 == 1 {
			emp = "bob"
		}
		go func() {
			defer wg.Done()
			<-start
			_, err := f.ledger.Assign(ctx, inventory.AssignInput{ItemID: "drill-1", EmployeeID: emp})
			mu.Lock()
			defer mu.Unlock()
			switch {
			case err == nil:
				successes++
			case errors.Is(err, domain.ErrConflict):
				conflicts++
			default:
				others = append(others, err)
			}
		}()
	}
	close(start)
	wg.Wait()

	assert.Empty(t, others)
	assert.Equal(t, 1, successes)
	assert.Equal(t, n-1, conflicts)
	f.assertConsistent(t, "drill-1")
	assert.Equal(t, 1, f.notifier.count())
}

// ──────────────────────────────────────────────────────────────────────────────
// Listados
// ──────────────────────────────────────────────────────────────────────────────

func TestListados_Orden(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	base := time.Date(2025, 3, 1, 8, 0, 0, 0, time.UTC)

	for i, id := range []string{"saw-1", "saw-2", "saw-3"} {
		require.NoError(t, f.store.Items().Create(ctx, &entity.InventoryItem{ID: id, Name: id, Status: entity.ItemStatusAvailable}))
		// Dos asignaciones con el mismo instante para forzar el desempate por id.
		at := base.Add(time.Duration(i/2) * time.Hour)
		require.NoError(t, f.store.Run(ctx, func(items repository.InventoryItemRepository, asg repository.InventoryAssignmentRepository, _ repository.EmployeeRepository) error {
			if err := asg.Create(ctx, &entity.InventoryAssignment{ID: "a-" + id, ItemID: id, EmployeeID: "alice", AssignedDate: at, CreatedAt: at}); err != nil {
				return err
			}
			return items.UpdateStatus(ctx, id, entity.ItemStatusAssigned, at)
		}))
	}

	active, err := f.ledger.ListActiveByEmployee(ctx, "alice")
	require.NoError(t, err)
	require.Len(t, active, 3)
	assert.Equal(t, []string{"a-saw-1", "a-saw-2", "a-saw-3"}, ids(active))

	all, err := f.ledger.ListAll(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"a-saw-3", "a-saw-2", "a-saw-1"}, ids(all))

	none, err := f.ledger.ListActiveByEmployee(ctx, "bob")
	require.NoError(t, err)
	assert.Empty(t, none)

	_, err = f.ledger.ListActiveByEmployee(ctx, "")
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func ids(list []*entity.InventoryAssignment) []string {
	out := make([]string, 0, len(list))
	for _, a := range list {
		out = append(out, a.ID)
	}
	return out
}
