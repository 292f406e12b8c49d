package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateInventoryItemRequest alta de ítem. Status por defecto available; assigned no se acepta.
type CreateInventoryItemRequest struct {
	Name          string           `json:"name" validate:"required,min=1,max=255"`
	Category      string           `json:"category" validate:"required,oneof=tool it_equipment vehicle other"`
	SerialNumber  string           `json:"serial_number" validate:"omitempty,max=100"`
	Manufacturer  string           `json:"manufacturer" validate:"omitempty,max=100"`
	Model         string           `json:"model" validate:"omitempty,max=100"`
	PurchaseDate  *time.Time       `json:"purchase_date"`
	PurchasePrice *decimal.Decimal `json:"purchase_price"`
	Status        string           `json:"status" validate:"omitempty,oneof=available assigned maintenance retired"`
	Condition     string           `json:"condition" validate:"omitempty,oneof=excellent good fair poor"`
	Location      string           `json:"location" validate:"omitempty,max=255"`
	Notes         string           `json:"notes"`
}

// UpdateInventoryItemRequest actualización parcial; Status pasa por las reglas del ledger.
type UpdateInventoryItemRequest struct {
	Name          *string          `json:"name" validate:"omitempty,min=1,max=255"`
	Category      *string          `json:"category" validate:"omitempty,oneof=tool it_equipment vehicle other"`
	SerialNumber  *string          `json:"serial_number" validate:"omitempty,max=100"`
	Manufacturer  *string          `json:"manufacturer" validate:"omitempty,max=100"`
	Model         *string          `json:"model" validate:"omitempty,max=100"`
	PurchaseDate  *time.Time       `json:"purchase_date"`
	PurchasePrice *decimal.Decimal `json:"purchase_price"`
	Status        *string          `json:"status" validate:"omitempty,oneof=available assigned maintenance retired"`
	Condition     *string          `json:"condition" validate:"omitempty,oneof=excellent good fair poor"`
	Location      *string          `json:"location" validate:"omitempty,max=255"`
	Notes         *string          `json:"notes"`
}

// InventoryItemResponse salida de un ítem.
type InventoryItemResponse struct {
	ID            string           `json:"id"`
	Name          string           `json:"name"`
	Category      string           `json:"category"`
	SerialNumber  string           `json:"serial_number,omitempty"`
	Manufacturer  string           `json:"manufacturer,omitempty"`
	Model         string           `json:"model,omitempty"`
	PurchaseDate  *time.Time       `json:"purchase_date,omitempty"`
	PurchasePrice *decimal.Decimal `json:"purchase_price,omitempty"`
	Status        string           `json:"status"`
	Condition     string           `json:"condition"`
	Location      string           `json:"location,omitempty"`
	Notes         string           `json:"notes,omitempty"`
	CreatedAt     time.Time        `json:"created_at"`
	UpdatedAt     time.Time        `json:"updated_at"`
}

// AssignItemRequest body de inventory.assign.
type AssignItemRequest struct {
	ItemID     string `json:"item_id" validate:"required"`
	EmployeeID string `json:"employee_id" validate:"required"`
	Notes      string `json:"notes" validate:"omitempty,max=2000"`
}

// AssignmentResponse salida de una asignación.
type AssignmentResponse struct {
	ID           string     `json:"id"`
	ItemID       string     `json:"item_id"`
	ItemName     string     `json:"item_name,omitempty"`
	EmployeeID   string     `json:"employee_id"`
	EmployeeName string     `json:"employee_name,omitempty"`
	AssignedDate time.Time  `json:"assigned_date"`
	ReturnedDate *time.Time `json:"returned_date"`
	Notes        string     `json:"notes,omitempty"`
	CreatedBy    string     `json:"created_by,omitempty"`
	CreatedAt    time.Time  `json:"created_at"`
}
