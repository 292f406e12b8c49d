package ports

import (
	"context"

	"github.com/jhoicas/Obras-api/internal/domain/entity"
)

// Notifier publica una notificación después de que la operación que la origina hizo commit.
// No devuelve error: un fallo al notificar nunca afecta al llamador.
type Notifier interface {
	Notify(ctx context.Context, n *entity.Notification)
}

// NopNotifier descarta todas las notificaciones.
type NopNotifier struct{}

func (NopNotifier) Notify(context.Context, *entity.Notification) {}
