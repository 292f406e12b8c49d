package repository

import (
	"context"

	"github.com/jhoicas/Obras-api/internal/domain/entity"
)

// NotificationRepository inserciones simples, sin cola ni reintentos.
type NotificationRepository interface {
	Create(ctx context.Context, n *entity.Notification) error
	// ListByUser más reciente primero.
	ListByUser(ctx context.Context, userID string, onlyUnread bool, limit int) ([]*entity.Notification, error)
	// MarkAsRead solo marca si la notificación pertenece a userID; domain.ErrNotFound si no.
	MarkAsRead(ctx context.Context, id, userID string) error
	MarkAllAsRead(ctx context.Context, userID string) (int64, error)
}
