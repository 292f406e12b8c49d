package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Estados de InventoryItem. available/assigned los gobierna el ledger de asignaciones;
// maintenance/retired se fijan a mano y el ledger nunca los sobrescribe.
const (
	ItemStatusAvailable   = "available"
	ItemStatusAssigned    = "assigned"
	ItemStatusMaintenance = "maintenance"
	ItemStatusRetired     = "retired"
)

// Categorías de InventoryItem.
const (
	ItemCategoryTool        = "tool"
	ItemCategoryITEquipment = "it_equipment"
	ItemCategoryVehicle     = "vehicle"
	ItemCategoryOther       = "other"
)

// Condición física del ítem.
const (
	ItemConditionExcellent = "excellent"
	ItemConditionGood      = "good"
	ItemConditionFair      = "fair"
	ItemConditionPoor      = "poor"
)

// InventoryItem herramienta, equipo o vehículo que se entrega a empleados.
type InventoryItem struct {
	ID            string
	Name          string
	Category      string
	SerialNumber  string
	Manufacturer  string
	Model         string
	PurchaseDate  *time.Time
	PurchasePrice *decimal.Decimal
	Status        string
	Condition     string
	Location      string
	Notes         string
	CreatedAt     time.Time
	UpdatedAt     time.Time
	CreatedBy     string
}

// InventoryItemFilter filtros del listado de inventario.
type InventoryItemFilter struct {
	Status   string
	Category string
	Query    string // busca en nombre y número de serie
}

func IsValidItemStatus(s string) bool {
	switch s {
	case ItemStatusAvailable, ItemStatusAssigned, ItemStatusMaintenance, ItemStatusRetired:
		return true
	}
	return false
}

func IsValidItemCategory(s string) bool {
	switch s {
	case ItemCategoryTool, ItemCategoryITEquipment, ItemCategoryVehicle, ItemCategoryOther:
		return true
	}
	return false
}

func IsValidItemCondition(s string) bool {
	switch s {
	case ItemConditionExcellent, ItemConditionGood, ItemConditionFair, ItemConditionPoor:
		return true
	}
	return false
}
