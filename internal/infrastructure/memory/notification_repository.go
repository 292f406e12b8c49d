package memory

import (
	"context"
	"sort"
	"sync"

	"github.com/jhoicas/Obras-api/internal/domain"
	"github.com/jhoicas/Obras-api/internal/domain/entity"
	"github.com/jhoicas/Obras-api/internal/domain/repository"
)

var _ repository.NotificationRepository = (*NotificationRepo)(nil)

// NotificationRepo notificaciones en memoria, en orden de inserción.
type NotificationRepo struct {
	st *state
	mu sync.Locker
}

func (r *NotificationRepo) Create(_ context.Context, n *entity.Notification) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.st.notifications = append(r.st.notifications, *n)
	return nil
}

func (r *NotificationRepo) ListByUser(_ context.Context, userID string, onlyUnread bool, limit int) ([]*entity.Notification, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]*entity.Notification, 0)
	for i := len(r.st.notifications) - 1; i >= 0; i-- {
		n := r.st.notifications[i]
		if n.UserID != userID || (onlyUnread && n.IsRead) {
			continue
		}
		out = append(out, &n)
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

func (r *NotificationRepo) MarkAsRead(_ context.Context, id, userID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range r.st.notifications {
		n := &r.st.notifications[i]
		if n.ID == id && n.UserID == userID {
			n.IsRead = true
			return nil
		}
	}
	return domain.ErrNotFound
}

func (r *NotificationRepo) MarkAllAsRead(_ context.Context, userID string) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var n int64
	for i := range r.st.notifications {
		if r.st.notifications[i].UserID == userID && !r.st.notifications[i].IsRead {
			r.st.notifications[i].IsRead = true
			n++
		}
	}
	return n, nil
}
