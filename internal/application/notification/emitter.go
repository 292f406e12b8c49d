package notification

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/jhoicas/Obras-api/internal/application/ports"
	"github.com/jhoicas/Obras-api/internal/domain/entity"
	"github.com/jhoicas/Obras-api/internal/domain/repository"
	"github.com/jhoicas/Obras-api/pkg/logger"
)

var _ ports.Notifier = (*Emitter)(nil)

// Metrics contadores del emisor.
type Metrics interface {
	ObserveNotification(outcome string)
}

// Resultados del emisor.
const (
	OutcomeSent    = "sent"
	OutcomeFailed  = "failed"
	OutcomeDropped = "dropped"
)

type nopMetrics struct{}

func (nopMetrics) ObserveNotification(string) {}

// Emitter inserta notificaciones en segundo plano, fuera de la transacción que las originó.
// Los fallos se registran en el log y en métricas; nunca llegan al llamador.
type Emitter struct {
	repo    repository.NotificationRepository
	log     *logger.Logger
	metrics Metrics
	timeout time.Duration

	mu     sync.Mutex
	closed bool
	wg     sync.WaitGroup
}

// NewEmitter construye el emisor. timeout acota cada inserción.
func NewEmitter(repo repository.NotificationRepository, log *logger.Logger, metrics Metrics, timeout time.Duration) *Emitter {
	if log == nil {
		log = logger.Nop()
	}
	if metrics == nil {
		metrics = nopMetrics{}
	}
	if timeout <= 0 {
		timeout = 5 * time.Second
	}
	return &Emitter{repo: repo, log: log.Named("notifications"), metrics: metrics, timeout: timeout}
}

// Notify encola la inserción y retorna de inmediato.
func (e *Emitter) Notify(ctx context.Context, n *entity.Notification) {
	if n == nil || n.UserID == "" {
		return
	}
	row := *n
	if row.ID == "" {
		row.ID = uuid.New().String()
	}
	if row.CreatedAt.IsZero() {
		row.CreatedAt = time.Now().UTC()
	}

	e.mu.Lock()
	if e.closed {
		e.mu.Unlock()
		e.metrics.ObserveNotification(OutcomeDropped)
		e.log.Warn().Str("type", row.Type).Str("user_id", row.UserID).Msg("emisor cerrado, notificación descartada")
		return
	}
	e.wg.Add(1)
	e.mu.Unlock()

	// La inserción no hereda la cancelación de la petición que la originó.
	base := context.WithoutCancel(ctx)
	go func() {
		defer e.wg.Done()
		defer func() {
			if r := recover(); r != nil {
				e.metrics.ObserveNotification(OutcomeFailed)
				e.log.Error().Interface("panic", r).Str("type", row.Type).Msg("panic al insertar notificación")
			}
		}()

		insCtx, cancel := context.WithTimeout(base, e.timeout)
		defer cancel()
		if err := e.repo.Create(insCtx, &row); err != nil {
			e.metrics.ObserveNotification(OutcomeFailed)
			e.log.Warn().Err(err).Str("type", row.Type).Str("user_id", row.UserID).Msg("no se pudo insertar la notificación")
			return
		}
		e.metrics.ObserveNotification(OutcomeSent)
	}()
}

// Close deja de aceptar notificaciones y espera las pendientes hasta que ctx expire.
func (e *Emitter) Close(ctx context.Context) error {
	e.mu.Lock()
	e.closed = true
	e.mu.Unlock()

	done := make(chan struct{})
	go func() {
		e.wg.Wait()
		close(done)
	}()
	select {
	case <-done:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Flush espera las inserciones en curso sin cerrar el emisor.
func (e *Emitter) Flush() {
	e.wg.Wait()
}
