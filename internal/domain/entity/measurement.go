package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Measurement medición de obra ejecutada (cantidad x precio unitario).
type Measurement struct {
	ID           string
	ProjectID    string
	Description  string
	Quantity     decimal.Decimal
	Unit         string
	UnitPrice    *decimal.Decimal
	Location     string
	MeasuredDate time.Time
	Notes        string
	CreatedAt    time.Time
	CreatedBy    string
}

// Total cantidad por precio unitario; cero si no hay precio.
func (m *Measurement) Total() decimal.Decimal {
	if m.UnitPrice == nil {
		return decimal.Zero
	}
	return m.Quantity.Mul(*m.UnitPrice)
}
