package dto

import "time"

// CreateEmployeeRequest alta de empleado.
type CreateEmployeeRequest struct {
	FirstName      string     `json:"first_name" validate:"required,min=1,max=100"`
	LastName       string     `json:"last_name" validate:"required,min=1,max=100"`
	Email          string     `json:"email" validate:"omitempty,email,max=320"`
	Phone          string     `json:"phone" validate:"omitempty,max=50"`
	Position       string     `json:"position" validate:"omitempty,max=100"`
	Department     string     `json:"department" validate:"omitempty,max=100"`
	EmployeeNumber string     `json:"employee_number" validate:"omitempty,max=50"`
	Status         string     `json:"status" validate:"omitempty,oneof=active inactive on_leave"`
	HireDate       *time.Time `json:"hire_date"`
}

// UpdateEmployeeRequest actualización parcial.
type UpdateEmployeeRequest struct {
	FirstName      *string    `json:"first_name" validate:"omitempty,min=1,max=100"`
	LastName       *string    `json:"last_name" validate:"omitempty,min=1,max=100"`
	Email          *string    `json:"email" validate:"omitempty,email,max=320"`
	Phone          *string    `json:"phone" validate:"omitempty,max=50"`
	Position       *string    `json:"position" validate:"omitempty,max=100"`
	Department     *string    `json:"department" validate:"omitempty,max=100"`
	EmployeeNumber *string    `json:"employee_number" validate:"omitempty,max=50"`
	Status         *string    `json:"status" validate:"omitempty,oneof=active inactive on_leave"`
	HireDate       *time.Time `json:"hire_date"`
}

// EmployeeResponse salida de un empleado.
type EmployeeResponse struct {
	ID             string     `json:"id"`
	FirstName      string     `json:"first_name"`
	LastName       string     `json:"last_name"`
	FullName       string     `json:"full_name"`
	Email          string     `json:"email,omitempty"`
	Phone          string     `json:"phone,omitempty"`
	Position       string     `json:"position,omitempty"`
	Department     string     `json:"department,omitempty"`
	EmployeeNumber string     `json:"employee_number,omitempty"`
	Status         string     `json:"status"`
	HireDate       *time.Time `json:"hire_date,omitempty"`
	CreatedAt      time.Time  `json:"created_at"`
	UpdatedAt      time.Time  `json:"updated_at"`
}
