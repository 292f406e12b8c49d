package memory

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/jhoicas/Obras-api/internal/domain"
	"github.com/jhoicas/Obras-api/internal/domain/entity"
	"github.com/jhoicas/Obras-api/internal/domain/repository"
)

var _ repository.InventoryAssignmentRepository = (*AssignmentRepo)(nil)

// AssignmentRepo historial de asignaciones en memoria. Create aplica la misma regla que el
// índice único parcial de Postgres: una sola fila abierta por ítem.
type AssignmentRepo struct {
	st *state
	mu sync.Locker
}

func (r *AssignmentRepo) Create(_ context.Context, a *entity.InventoryAssignment) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.st.items[a.ItemID]; !ok {
		return domain.ErrItemNotFound
	}
	if _, ok := r.st.employees[a.EmployeeID]; !ok {
		return domain.ErrEmployeeNotFound
	}
	if _, ok := r.st.assignments[a.ID]; ok {
		return domain.ErrDuplicate
	}
	if a.ReturnedDate == nil {
		for _, other := range r.st.assignments {
			if other.ItemID == a.ItemID && other.ReturnedDate == nil {
				return domain.ErrItemAlreadyAssigned
			}
		}
	}
	row := *a
	row.ItemName, row.EmployeeName = "", ""
	r.st.assignments[a.ID] = row
	return nil
}

func (r *AssignmentRepo) GetByID(_ context.Context, id string) (*entity.InventoryAssignment, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	a, ok := r.st.assignments[id]
	if !ok {
		return nil, nil
	}
	return r.enrich(a), nil
}

func (r *AssignmentRepo) GetForUpdate(ctx context.Context, id string) (*entity.InventoryAssignment, error) {
	return r.GetByID(ctx, id)
}

func (r *AssignmentRepo) GetOpenByItem(_ context.Context, itemID string) (*entity.InventoryAssignment, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, a := range r.st.assignments {
		if a.ItemID == itemID && a.ReturnedDate == nil {
			return r.enrich(a), nil
		}
	}
	return nil, nil
}

func (r *AssignmentRepo) MarkReturned(_ context.Context, id string, at time.Time) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	a, ok := r.st.assignments[id]
	if !ok {
		return domain.ErrAssignmentNotFound
	}
	if a.ReturnedDate != nil {
		return domain.ErrAlreadyReturned
	}
	a.ReturnedDate = &at
	r.st.assignments[id] = a
	return nil
}

func (r *AssignmentRepo) ListAll(_ context.Context) ([]*entity.InventoryAssignment, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := r.collect(func(entity.InventoryAssignment) bool { return true })
	sortDesc(out)
	return out, nil
}

func (r *AssignmentRepo) ListOpen(_ context.Context, f entity.AssignmentFilter) ([]*entity.InventoryAssignment, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := r.collect(func(a entity.InventoryAssignment) bool {
		if a.ReturnedDate != nil {
			return false
		}
		if f.EmployeeID != "" && a.EmployeeID != f.EmployeeID {
			return false
		}
		return f.ItemID == "" || a.ItemID == f.ItemID
	})
	sort.Slice(out, func(i, j int) bool {
		if !out[i].AssignedDate.Equal(out[j].AssignedDate) {
			return out[i].AssignedDate.Before(out[j].AssignedDate)
		}
		return out[i].ID < out[j].ID
	})
	return out, nil
}

func (r *AssignmentRepo) ListByItem(_ context.Context, itemID string) ([]*entity.InventoryAssignment, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := r.collect(func(a entity.InventoryAssignment) bool { return a.ItemID == itemID })
	sortDesc(out)
	return out, nil
}

func (r *AssignmentRepo) CountByItem(_ context.Context, itemID string) (int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	n := 0
	for _, a := range r.st.assignments {
		if a.ItemID == itemID {
			n++
		}
	}
	return n, nil
}

func (r *AssignmentRepo) collect(keep func(entity.InventoryAssignment) bool) []*entity.InventoryAssignment {
	out := make([]*entity.InventoryAssignment, 0)
	for _, a := range r.st.assignments {
		if keep(a) {
			out = append(out, r.enrich(a))
		}
	}
	return out
}

// enrich copia la fila y completa los nombres como haría el JOIN.
func (r *AssignmentRepo) enrich(a entity.InventoryAssignment) *entity.InventoryAssignment {
	if it, ok := r.st.items[a.ItemID]; ok {
		a.ItemName = it.Name
	}
	if e, ok := r.st.employees[a.EmployeeID]; ok {
		a.EmployeeName = e.FullName()
	}
	return &a
}

func sortDesc(out []*entity.InventoryAssignment) {
	sort.Slice(out, func(i, j int) bool {
		if !out[i].AssignedDate.Equal(out[j].AssignedDate) {
			return out[i].AssignedDate.After(out[j].AssignedDate)
		}
		return out[i].ID > out[j].ID
	})
}
