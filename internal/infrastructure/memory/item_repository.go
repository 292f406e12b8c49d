package memory

import (
	"context"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/jhoicas/Obras-api/internal/domain"
	"github.com/jhoicas/Obras-api/internal/domain/entity"
	"github.com/jhoicas/Obras-api/internal/domain/repository"
)

var _ repository.InventoryItemRepository = (*ItemRepo)(nil)

// ItemRepo ítems en memoria.
type ItemRepo struct {
	st *state
	mu sync.Locker
}

func (r *ItemRepo) Create(_ context.Context, item *entity.InventoryItem) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.st.items[item.ID]; ok {
		return domain.ErrDuplicate
	}
	if item.SerialNumber != "" {
		for _, it := range r.st.items {
			if it.SerialNumber == item.SerialNumber {
				return domain.ErrDuplicate
			}
		}
	}
	r.st.items[item.ID] = *item
	return nil
}

func (r *ItemRepo) GetByID(_ context.Context, id string) (*entity.InventoryItem, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	it, ok := r.st.items[id]
	if !ok {
		return nil, nil
	}
	return &it, nil
}

// GetForUpdate equivale a GetByID: el mutex del store ya serializa la transacción.
func (r *ItemRepo) GetForUpdate(ctx context.Context, id string) (*entity.InventoryItem, error) {
	return r.GetByID(ctx, id)
}

func (r *ItemRepo) List(_ context.Context, f entity.InventoryItemFilter) ([]*entity.InventoryItem, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	q := strings.ToLower(strings.TrimSpace(f.Query))
	out := make([]*entity.InventoryItem, 0, len(r.st.items))
	for _, it := range r.st.items {
		if f.Status != "" && it.Status != f.Status {
			continue
		}
		if f.Category != "" && it.Category != f.Category {
			continue
		}
		if q != "" && !strings.Contains(strings.ToLower(it.Name), q) && !strings.Contains(strings.ToLower(it.SerialNumber), q) {
			continue
		}
		it := it
		out = append(out, &it)
	}
	sort.Slice(out, func(i, j int) bool {
		if !out[i].CreatedAt.Equal(out[j].CreatedAt) {
			return out[i].CreatedAt.After(out[j].CreatedAt)
		}
		return out[i].ID > out[j].ID
	})
	return out, nil
}

func (r *ItemRepo) Update(_ context.Context, item *entity.InventoryItem) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.st.items[item.ID]; !ok {
		return domain.ErrItemNotFound
	}
	r.st.items[item.ID] = *item
	return nil
}

func (r *ItemRepo) UpdateStatus(_ context.Context, id, status string, at time.Time) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	it, ok := r.st.items[id]
	if !ok {
		return domain.ErrItemNotFound
	}
	it.Status = status
	it.UpdatedAt = at
	r.st.items[id] = it
	return nil
}

// Delete falla con ErrItemHasHistory si alguna asignación lo referencia (como la FK en Postgres).
func (r *ItemRepo) Delete(_ context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.st.items[id]; !ok {
		return domain.ErrItemNotFound
	}
	for _, a := range r.st.assignments {
		if a.ItemID == id {
			return domain.ErrItemHasHistory
		}
	}
	delete(r.st.items, id)
	return nil
}
