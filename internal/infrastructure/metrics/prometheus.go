// Package metrics contadores Prometheus del ledger, del emisor de notificaciones y de HTTP.
package metrics

import (
	"strconv"
	"sync"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/jhoicas/Obras-api/internal/application/notification"
	"github.com/jhoicas/Obras-api/internal/application/ports"
)

const namespace = "obras"

type collectors struct {
	assignTotal       *prometheus.CounterVec
	returnTotal       *prometheus.CounterVec
	notificationTotal *prometheus.CounterVec
	httpRequests      *prometheus.CounterVec
	httpLatency       *prometheus.HistogramVec
}

var singleton = sync.OnceValue(func() *collectors {
	return &collectors{
		assignTotal: promauto.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "ledger",
			Name:      "assign_total",
			Help:      "Total de asignaciones de inventario por resultado.",
		}, []string{"outcome"}),
		returnTotal: promauto.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "ledger",
			Name:      "return_total",
			Help:      "Total de devoluciones de inventario por resultado.",
		}, []string{"outcome"}),
		notificationTotal: promauto.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "notifications",
			Name:      "emitted_total",
			Help:      "Notificaciones procesadas por el emisor asíncrono.",
		}, []string{"outcome"}),
		httpRequests: promauto.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "http",
			Name:      "requests_total",
			Help:      "Peticiones HTTP atendidas.",
		}, []string{"method", "route", "status"}),
		httpLatency: promauto.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "http",
			Name:      "request_duration_seconds",
			Help:      "Latencia de las peticiones HTTP.",
			Buckets:   []float64{0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10},
		}, []string{"method", "route"}),
	}
})

var (
	_ ports.LedgerMetrics  = (*Recorder)(nil)
	_ notification.Metrics = (*Recorder)(nil)
)

// Recorder implementa los puertos de métricas sobre el registro global de Prometheus.
type Recorder struct {
	c *collectors
}

// NewRecorder registra los colectores la primera vez que se llama.
func NewRecorder() *Recorder {
	return &Recorder{c: singleton()}
}

func (r *Recorder) ObserveAssign(outcome string) { r.c.assignTotal.WithLabelValues(outcome).Inc() }
func (r *Recorder) ObserveReturn(outcome string) { r.c.returnTotal.WithLabelValues(outcome).Inc() }

func (r *Recorder) ObserveNotification(outcome string) {
	r.c.notificationTotal.WithLabelValues(outcome).Inc()
}

// Middleware mide cada petición usando la ruta registrada, no la URL concreta.
func (r *Recorder) Middleware() fiber.Handler {
	return func(c *fiber.Ctx) error {
		start := time.Now()
		err := c.Next()

		status := c.Response().StatusCode()
		if err != nil {
			if fe, ok := err.(*fiber.Error); ok {
				status = fe.Code
			} else if status < 400 {
				status = fiber.StatusInternalServerError
			}
		}
		route := c.Route().Path
		if route == "" || route == "/" {
			route = "unmatched"
		}
		method := c.Method()
		r.c.httpRequests.WithLabelValues(method, route, strconv.Itoa(status)).Inc()
		r.c.httpLatency.WithLabelValues(method, route).Observe(time.Since(start).Seconds())
		return err
	}
}

// Handler expone /metrics en formato texto de Prometheus.
func Handler() fiber.Handler {
	return adaptor.HTTPHandler(promhttp.Handler())
}
