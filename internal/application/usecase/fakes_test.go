package usecase

import (
	"context"
	"sort"
	"sync"

	"github.com/jhoicas/Obras-api/internal/domain"
	"github.com/jhoicas/Obras-api/internal/domain/entity"
)

// table almacén genérico en memoria para los dobles de repositorio.
type table[T any] struct {
	mu    sync.Mutex
	rows  map[string]T
	order []string
}

func newTable[T any]() *table[T] { return &table[T]{rows: map[string]T{}} }

func (t *table[T]) put(id string, v T) {
	t.mu.Lock()
	defer t.mu.Unlock()
	if _, ok := t.rows[id]; !ok {
		t.order = append(t.order, id)
	}
	t.rows[id] = v
}

func (t *table[T]) get(id string) (T, bool) {
	t.mu.Lock()
	defer t.mu.Unlock()
	v, ok := t.rows[id]
	return v, ok
}

func (t *table[T]) del(id string, notFound error) error {
	t.mu.Lock()
	defer t.mu.Unlock()
	if _, ok := t.rows[id]; !ok {
		return notFound
	}
	delete(t.rows, id)
	return nil
}

func (t *table[T]) all(keep func(T) bool) []T {
	t.mu.Lock()
	defer t.mu.Unlock()
	var out []T
	for _, id := range t.order {
		if v, ok := t.rows[id]; ok && keep(v) {
			out = append(out, v)
		}
	}
	return out
}

func clonePtr[T any](p *T) *T {
	if p == nil {
		return nil
	}
	c := *p
	return &c
}

// ── proyectos ───────────────────────────────────────────────────────────────

type fakeProjects struct {
	projects *table[*entity.Project]
	members  *table[*entity.ProjectTeamMember]
}

func newFakeProjects() *fakeProjects {
	return &fakeProjects{projects: newTable[*entity.Project](), members: newTable[*entity.ProjectTeamMember]()}
}

func (f *fakeProjects) Create(_ context.Context, p *entity.Project) error {
	f.projects.put(p.ID, clonePtr(p))
	return nil
}

func (f *fakeProjects) GetByID(_ context.Context, id string) (*entity.Project, error) {
	p, _ := f.projects.get(id)
	return clonePtr(p), nil
}

func (f *fakeProjects) List(_ context.Context, status string) ([]*entity.Project, error) {
	return f.projects.all(func(p *entity.Project) bool { return status == "" || p.Status == status }), nil
}

func (f *fakeProjects) Update(_ context.Context, p *entity.Project) error {
	if _, ok := f.projects.get(p.ID); !ok {
		return domain.ErrProjectNotFound
	}
	f.projects.put(p.ID, clonePtr(p))
	return nil
}

func (f *fakeProjects) Delete(_ context.Context, id string) error {
	return f.projects.del(id, domain.ErrProjectNotFound)
}

func (f *fakeProjects) AddTeamMember(_ context.Context, m *entity.ProjectTeamMember) error {
	dup := f.members.all(func(x *entity.ProjectTeamMember) bool {
		return x.ProjectID == m.ProjectID && x.EmployeeID == m.EmployeeID
	})
	if len(dup) > 0 {
		return domain.ErrDuplicate
	}
	f.members.put(m.ID, clonePtr(m))
	return nil
}

func (f *fakeProjects) ListTeamMembers(_ context.Context, projectID string) ([]*entity.ProjectTeamMember, error) {
	return f.members.all(func(m *entity.ProjectTeamMember) bool { return m.ProjectID == projectID }), nil
}

func (f *fakeProjects) RemoveTeamMember(_ context.Context, id string) error {
	return f.members.del(id, domain.ErrTeamMemberNotFound)
}

// ── tareas ──────────────────────────────────────────────────────────────────

type fakeTasks struct{ t *table[*entity.ProjectTask] }

func newFakeTasks() *fakeTasks { return &fakeTasks{t: newTable[*entity.ProjectTask]()} }

func (f *fakeTasks) Create(_ context.Context, t *entity.ProjectTask) error {
	f.t.put(t.ID, clonePtr(t))
	return nil
}

func (f *fakeTasks) GetByID(_ context.Context, id string) (*entity.ProjectTask, error) {
	t, _ := f.t.get(id)
	return clonePtr(t), nil
}

func (f *fakeTasks) ListByProject(_ context.Context, projectID string) ([]*entity.ProjectTask, error) {
	return f.t.all(func(t *entity.ProjectTask) bool { return t.ProjectID == projectID }), nil
}

func (f *fakeTasks) Update(_ context.Context, t *entity.ProjectTask) error {
	f.t.put(t.ID, clonePtr(t))
	return nil
}

func (f *fakeTasks) Delete(_ context.Context, id string) error { return f.t.del(id, domain.ErrTaskNotFound) }

// ── RFIs ────────────────────────────────────────────────────────────────────

type fakeRFIs struct{ t *table[*entity.RFI] }

func newFakeRFIs() *fakeRFIs { return &fakeRFIs{t: newTable[*entity.RFI]()} }

func (f *fakeRFIs) Create(_ context.Context, r *entity.RFI) error {
	dup := f.t.all(func(x *entity.RFI) bool { return x.ProjectID == r.ProjectID && x.RFINumber == r.RFINumber })
	if len(dup) > 0 {
		return domain.ErrDuplicate
	}
	f.t.put(r.ID, clonePtr(r))
	return nil
}

func (f *fakeRFIs) GetByID(_ context.Context, id string) (*entity.RFI, error) {
	r, _ := f.t.get(id)
	return clonePtr(r), nil
}

func (f *fakeRFIs) ListByProject(_ context.Context, projectID string) ([]*entity.RFI, error) {
	return f.t.all(func(r *entity.RFI) bool { return r.ProjectID == projectID }), nil
}

func (f *fakeRFIs) Update(_ context.Context, r *entity.RFI) error {
	f.t.put(r.ID, clonePtr(r))
	return nil
}

func (f *fakeRFIs) Delete(_ context.Context, id string) error { return f.t.del(id, domain.ErrRFINotFound) }

// ── defectos ────────────────────────────────────────────────────────────────

type fakeDefects struct{ t *table[*entity.DefectProtocol] }

func newFakeDefects() *fakeDefects { return &fakeDefects{t: newTable[*entity.DefectProtocol]()} }

func (f *fakeDefects) Create(_ context.Context, d *entity.DefectProtocol) error {
	f.t.put(d.ID, clonePtr(d))
	return nil
}

func (f *fakeDefects) GetByID(_ context.Context, id string) (*entity.DefectProtocol, error) {
	d, _ := f.t.get(id)
	return clonePtr(d), nil
}

func (f *fakeDefects) List(_ context.Context, fl entity.DefectFilter) ([]*entity.DefectProtocol, error) {
	return f.t.all(func(d *entity.DefectProtocol) bool {
		return (fl.ProjectID == "" || d.ProjectID == fl.ProjectID) &&
			(fl.Severity == "" || d.Severity == fl.Severity) &&
			(fl.Status == "" || d.Status == fl.Status)
	}), nil
}

func (f *fakeDefects) Update(_ context.Context, d *entity.DefectProtocol) error {
	f.t.put(d.ID, clonePtr(d))
	return nil
}

func (f *fakeDefects) Delete(_ context.Context, id string) error {
	return f.t.del(id, domain.ErrDefectNotFound)
}

// ── capacidad ───────────────────────────────────────────────────────────────

type fakeCapacity struct{ t *table[*entity.CapacityPlan] }

func newFakeCapacity() *fakeCapacity { return &fakeCapacity{t: newTable[*entity.CapacityPlan]()} }

func (f *fakeCapacity) Create(_ context.Context, p *entity.CapacityPlan) error {
	f.t.put(p.ID, clonePtr(p))
	return nil
}

func (f *fakeCapacity) GetByID(_ context.Context, id string) (*entity.CapacityPlan, error) {
	p, _ := f.t.get(id)
	return clonePtr(p), nil
}

func (f *fakeCapacity) List(_ context.Context, fl entity.CapacityFilter) ([]*entity.CapacityPlan, error) {
	out := f.t.all(func(p *entity.CapacityPlan) bool {
		return (fl.EmployeeID == "" || p.EmployeeID == fl.EmployeeID) &&
			(fl.From == nil || !p.EndDate.Before(*fl.From)) &&
			(fl.To == nil || !p.StartDate.After(*fl.To))
	})
	sort.Slice(out, func(i, j int) bool { return out[i].StartDate.Before(out[j].StartDate) })
	return out, nil
}

func (f *fakeCapacity) Update(_ context.Context, p *entity.CapacityPlan) error {
	f.t.put(p.ID, clonePtr(p))
	return nil
}

func (f *fakeCapacity) Delete(_ context.Context, id string) error {
	return f.t.del(id, domain.ErrCapacityNotFound)
}

// ── documentos ──────────────────────────────────────────────────────────────

type fakeDocuments struct {
	t       *table[*entity.ProjectDocument]
	failErr error
}

func newFakeDocuments() *fakeDocuments { return &fakeDocuments{t: newTable[*entity.ProjectDocument]()} }

func (f *fakeDocuments) Create(_ context.Context, d *entity.ProjectDocument) error {
	if f.failErr != nil {
		return f.failErr
	}
	f.t.put(d.ID, clonePtr(d))
	return nil
}

func (f *fakeDocuments) GetByID(_ context.Context, id string) (*entity.ProjectDocument, error) {
	d, _ := f.t.get(id)
	return clonePtr(d), nil
}

func (f *fakeDocuments) ListByProject(_ context.Context, projectID string) ([]*entity.ProjectDocument, error) {
	return f.t.all(func(d *entity.ProjectDocument) bool { return d.ProjectID == projectID }), nil
}

func (f *fakeDocuments) Delete(_ context.Context, id string) error {
	return f.t.del(id, domain.ErrDocumentNotFound)
}

// ── notificaciones ──────────────────────────────────────────────────────────

type recordingNotifier struct {
	mu   sync.Mutex
	sent []entity.Notification
}

func (n *recordingNotifier) Notify(_ context.Context, x *entity.Notification) {
	n.mu.Lock()
	n.sent = append(n.sent, *x)
	n.mu.Unlock()
}

func (n *recordingNotifier) ofType(typ string) []entity.Notification {
	n.mu.Lock()
	defer n.mu.Unlock()
	var out []entity.Notification
	for _, x := range n.sent {
		if x.Type == typ {
			out = append(out, x)
		}
	}
	return out
}

func strPtr(s string) *string { return &s }
