package memory

import (
	"context"
	"sort"
	"strings"
	"sync"

	"github.com/jhoicas/Obras-api/internal/domain"
	"github.com/jhoicas/Obras-api/internal/domain/entity"
	"github.com/jhoicas/Obras-api/internal/domain/repository"
)

var _ repository.EmployeeRepository = (*EmployeeRepo)(nil)

// EmployeeRepo empleados en memoria.
type EmployeeRepo struct {
	st *state
	mu sync.Locker
}

func (r *EmployeeRepo) Create(_ context.Context, e *entity.Employee) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.st.employees[e.ID]; ok {
		return domain.ErrDuplicate
	}
	r.st.employees[e.ID] = *e
	return nil
}

func (r *EmployeeRepo) GetByID(_ context.Context, id string) (*entity.Employee, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	e, ok := r.st.employees[id]
	if !ok {
		return nil, nil
	}
	return &e, nil
}

func (r *EmployeeRepo) List(_ context.Context, f entity.EmployeeFilter) ([]*entity.Employee, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	q := strings.ToLower(strings.TrimSpace(f.Query))
	out := make([]*entity.Employee, 0, len(r.st.employees))
	for _, e := range r.st.employees {
		if f.Status != "" && e.Status != f.Status {
			continue
		}
		if q != "" && !strings.Contains(strings.ToLower(e.FullName()+" "+e.Email+" "+e.EmployeeNumber), q) {
			continue
		}
		e := e
		out = append(out, &e)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].LastName != out[j].LastName {
			return out[i].LastName < out[j].LastName
		}
		return out[i].ID < out[j].ID
	})
	return out, nil
}

func (r *EmployeeRepo) Update(_ context.Context, e *entity.Employee) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.st.employees[e.ID]; !ok {
		return domain.ErrEmployeeNotFound
	}
	r.st.employees[e.ID] = *e
	return nil
}

func (r *EmployeeRepo) Delete(_ context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.st.employees[id]; !ok {
		return domain.ErrEmployeeNotFound
	}
	for _, a := range r.st.assignments {
		if a.EmployeeID == id {
			return domain.ErrEmployeeInUse
		}
	}
	delete(r.st.employees, id)
	return nil
}
