package inventory

import (
	"github.com/jhoicas/Obras-api/internal/application/dto"
	"github.com/jhoicas/Obras-api/internal/domain/entity"
)

// ToItemResponse convierte la entidad en DTO de salida.
func ToItemResponse(it *entity.InventoryItem) *dto.InventoryItemResponse {
	if it == nil {
		return nil
	}
	return &dto.InventoryItemResponse{
		ID:            it.ID,
		Name:          it.Name,
		Category:      it.Category,
		SerialNumber:  it.SerialNumber,
		Manufacturer:  it.Manufacturer,
		Model:         it.Model,
		PurchaseDate:  it.PurchaseDate,
		PurchasePrice: it.PurchasePrice,
		Status:        it.Status,
		Condition:     it.Condition,
		Location:      it.Location,
		Notes:         it.Notes,
		CreatedAt:     it.CreatedAt,
		UpdatedAt:     it.UpdatedAt,
	}
}

// ToAssignmentResponse convierte la entidad en DTO de salida.
func ToAssignmentResponse(a *entity.InventoryAssignment) *dto.AssignmentResponse {
	if a == nil {
		return nil
	}
	return &dto.AssignmentResponse{
		ID:           a.ID,
		ItemID:       a.ItemID,
		ItemName:     a.ItemName,
		EmployeeID:   a.EmployeeID,
		EmployeeName: a.EmployeeName,
		AssignedDate: a.AssignedDate,
		ReturnedDate: a.ReturnedDate,
		Notes:        a.Notes,
		CreatedBy:    a.CreatedBy,
		CreatedAt:    a.CreatedAt,
	}
}

// ToAssignmentResponses mapea una lista; nunca devuelve nil para que el JSON sea [].
func ToAssignmentResponses(list []*entity.InventoryAssignment) []dto.AssignmentResponse {
	out := make([]dto.AssignmentResponse, 0, len(list))
	for _, a := range list {
		out = append(out, *ToAssignmentResponse(a))
	}
	return out
}
