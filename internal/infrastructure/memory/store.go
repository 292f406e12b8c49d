// Package memory implementa los repositorios del inventario en memoria, con transacciones
// por copia del estado. Sirve para tests y para levantar la API sin base de datos.
package memory

import (
	"context"
	"sync"

	"github.com/jhoicas/Obras-api/internal/application/inventory"
	"github.com/jhoicas/Obras-api/internal/domain/entity"
	"github.com/jhoicas/Obras-api/internal/domain/repository"
)

var _ inventory.TxRunner = (*Store)(nil)

type state struct {
	items         map[string]entity.InventoryItem
	assignments   map[string]entity.InventoryAssignment
	employees     map[string]entity.Employee
	notifications []entity.Notification
}

func newState() state {
	return state{
		items:       make(map[string]entity.InventoryItem),
		assignments: make(map[string]entity.InventoryAssignment),
		employees:   make(map[string]entity.Employee),
	}
}

func (s *state) clone() state {
	c := newState()
	for k, v := range s.items {
		c.items[k] = v
	}
	for k, v := range s.assignments {
		c.assignments[k] = v
	}
	for k, v := range s.employees {
		c.employees[k] = v
	}
	c.notifications = append([]entity.Notification(nil), s.notifications...)
	return c
}

// Store estado compartido. Run serializa las transacciones con un único mutex, lo que
// equivale a que cada tx bloquea todas las filas.
type Store struct {
	mu    sync.Mutex
	state state
}

// NewStore construye un store vacío.
func NewStore() *Store {
	return &Store{state: newState()}
}

// Run ejecuta fn sobre una copia del estado; si fn no falla la copia reemplaza al estado.
func (s *Store) Run(ctx context.Context, fn func(
	itemRepo repository.InventoryItemRepository,
	assignmentRepo repository.InventoryAssignmentRepository,
	employeeRepo repository.EmployeeRepository,
) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := ctx.Err(); err != nil {
		return err
	}
	tx := s.state.clone()
	if err := fn(&ItemRepo{st: &tx, mu: noLock{}}, &AssignmentRepo{st: &tx, mu: noLock{}}, &EmployeeRepo{st: &tx, mu: noLock{}}); err != nil {
		return err
	}
	s.state = tx
	return nil
}

// Items repositorio de ítems fuera de transacción.
func (s *Store) Items() *ItemRepo { return &ItemRepo{st: &s.state, mu: &s.mu} }

// Assignments repositorio de asignaciones fuera de transacción.
func (s *Store) Assignments() *AssignmentRepo { return &AssignmentRepo{st: &s.state, mu: &s.mu} }

// Employees repositorio de empleados fuera de transacción.
func (s *Store) Employees() *EmployeeRepo { return &EmployeeRepo{st: &s.state, mu: &s.mu} }

// Notifications repositorio de notificaciones.
func (s *Store) Notifications() *NotificationRepo { return &NotificationRepo{st: &s.state, mu: &s.mu} }

type noLock struct{}

func (noLock) Lock()   {}
func (noLock) Unlock() {}
