package ports

// Resultados posibles de una operación del ledger, usados como etiqueta de métricas.
const (
	OutcomeOK              = "ok"
	OutcomeConflict        = "conflict"
	OutcomeNotFound        = "not_found"
	OutcomeAlreadyReturned = "already_returned"
	OutcomeInvalid         = "invalid"
	OutcomeError           = "error"
)

// LedgerMetrics contadores de asignaciones y devoluciones.
type LedgerMetrics interface {
	ObserveAssign(outcome string)
	ObserveReturn(outcome string)
}

// NopLedgerMetrics no registra nada.
type NopLedgerMetrics struct{}

func (NopLedgerMetrics) ObserveAssign(string) {}
func (NopLedgerMetrics) ObserveReturn(string) {}
