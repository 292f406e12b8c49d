package inventory

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/Obras-api/internal/application/dto"
	"github.com/jhoicas/Obras-api/internal/domain"
	"github.com/jhoicas/Obras-api/internal/domain/entity"
	domaininv "github.com/jhoicas/Obras-api/internal/domain/inventory"
	"github.com/jhoicas/Obras-api/internal/domain/repository"
)

// ItemUseCase CRUD de inventario. Los cambios de estado y el borrado se hacen con la fila
// del ítem bloqueada para no competir con el ledger.
type ItemUseCase struct {
	txRunner TxRunner
	itemRepo repository.InventoryItemRepository
}

// NewItemUseCase construye el caso de uso.
func NewItemUseCase(txRunner TxRunner, itemRepo repository.InventoryItemRepository) *ItemUseCase {
	return &ItemUseCase{txRunner: txRunner, itemRepo: itemRepo}
}

// Create da de alta un ítem. Un ítem nuevo no puede nacer assigned.
func (uc *ItemUseCase) Create(ctx context.Context, userID string, in dto.CreateInventoryItemRequest) (*dto.InventoryItemResponse, error) {
	status := in.Status
	if status == "" {
		status = entity.ItemStatusAvailable
	}
	if err := domaininv.ValidateManualStatus(status, false); err != nil {
		return nil, err
	}
	condition := in.Condition
	if condition == "" {
		condition = entity.ItemConditionGood
	}
	if err := validatePrice(in.PurchasePrice); err != nil {
		return nil, err
	}
	now := time.Now().UTC()
	item := &entity.InventoryItem{
		ID:            uuid.New().String(),
		Name:          strings.TrimSpace(in.Name),
		Category:      in.Category,
		SerialNumber:  strings.TrimSpace(in.SerialNumber),
		Manufacturer:  in.Manufacturer,
		Model:         in.Model,
		PurchaseDate:  in.PurchaseDate,
		PurchasePrice: in.PurchasePrice,
		Status:        status,
		Condition:     condition,
		Location:      in.Location,
		Notes:         in.Notes,
		CreatedAt:     now,
		UpdatedAt:     now,
		CreatedBy:     userID,
	}
	if item.Name == "" {
		return nil, domain.Invalid("name es obligatorio")
	}
	if err := uc.itemRepo.Create(ctx, item); err != nil {
		return nil, err
	}
	return ToItemResponse(item), nil
}

// GetByID obtiene un ítem; domain.ErrItemNotFound si no existe.
func (uc *ItemUseCase) GetByID(ctx context.Context, id string) (*dto.InventoryItemResponse, error) {
	item, err := uc.itemRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if item == nil {
		return nil, domain.ErrItemNotFound
	}
	return ToItemResponse(item), nil
}

// List lista ítems con filtros opcionales.
func (uc *ItemUseCase) List(ctx context.Context, filter entity.InventoryItemFilter) ([]dto.InventoryItemResponse, error) {
	if filter.Status != "" && !entity.IsValidItemStatus(filter.Status) {
		return nil, domain.Invalid("estado inválido %q", filter.Status)
	}
	if filter.Category != "" && !entity.IsValidItemCategory(filter.Category) {
		return nil, domain.Invalid("categoría inválida %q", filter.Category)
	}
	list, err := uc.itemRepo.List(ctx, filter)
	if err != nil {
		return nil, err
	}
	out := make([]dto.InventoryItemResponse, 0, len(list))
	for _, it := range list {
		out = append(out, *ToItemResponse(it))
	}
	return out, nil
}

// Update actualización parcial. Con la fila bloqueada valida que el nuevo estado concuerde
// con la existencia de una asignación abierta.
func (uc *ItemUseCase) Update(ctx context.Context, id string, in dto.UpdateInventoryItemRequest) (*dto.InventoryItemResponse, error) {
	if err := validatePrice(in.PurchasePrice); err != nil {
		return nil, err
	}
	var updated *entity.InventoryItem
	err := uc.txRunner.Run(ctx, func(
		itemRepo repository.InventoryItemRepository,
		assignmentRepo repository.InventoryAssignmentRepository,
		_ repository.EmployeeRepository,
	) error {
		item, err := itemRepo.GetForUpdate(ctx, id)
		if err != nil {
			return err
		}
		if item == nil {
			return domain.ErrItemNotFound
		}
		if in.Status != nil && *in.Status != item.Status {
			open, err := assignmentRepo.GetOpenByItem(ctx, item.ID)
			if err != nil {
				return err
			}
			if err := domaininv.ValidateManualStatus(*in.Status, open != nil); err != nil {
				return err
			}
			item.Status = *in.Status
		}
		applyItemPatch(item, in)
		if item.Name == "" {
			return domain.Invalid("name no puede quedar vacío")
		}
		item.UpdatedAt = time.Now().UTC()
		if err := itemRepo.Update(ctx, item); err != nil {
			return err
		}
		updated = item
		return nil
	})
	if err != nil {
		return nil, err
	}
	return ToItemResponse(updated), nil
}

// Delete borra un ítem sin historial. Con asignación abierta responde ErrItemInUse;
// con historial cerrado ErrItemHasHistory (el historial no se borra, se retira el ítem).
func (uc *ItemUseCase) Delete(ctx context.Context, id string) error {
	return uc.txRunner.Run(ctx, func(
		itemRepo repository.InventoryItemRepository,
		assignmentRepo repository.InventoryAssignmentRepository,
		_ repository.EmployeeRepository,
	) error {
		item, err := itemRepo.GetForUpdate(ctx, id)
		if err != nil {
			return err
		}
		if item == nil {
			return domain.ErrItemNotFound
		}
		open, err := assignmentRepo.GetOpenByItem(ctx, id)
		if err != nil {
			return err
		}
		if open != nil {
			return domain.ErrItemInUse
		}
		n, err := assignmentRepo.CountByItem(ctx, id)
		if err != nil {
			return err
		}
		if n > 0 {
			return domain.ErrItemHasHistory
		}
		return itemRepo.Delete(ctx, id)
	})
}

func applyItemPatch(item *entity.InventoryItem, in dto.UpdateInventoryItemRequest) {
	if in.Name != nil {
		item.Name = strings.TrimSpace(*in.Name)
	}
	if in.Category != nil {
		item.Category = *in.Category
	}
	if in.SerialNumber != nil {
		item.SerialNumber = strings.TrimSpace(*in.SerialNumber)
	}
	if in.Manufacturer != nil {
		item.Manufacturer = *in.Manufacturer
	}
	if in.Model != nil {
		item.Model = *in.Model
	}
	if in.PurchaseDate != nil {
		item.PurchaseDate = in.PurchaseDate
	}
	if in.PurchasePrice != nil {
		item.PurchasePrice = in.PurchasePrice
	}
	if in.Condition != nil {
		item.Condition = *in.Condition
	}
	if in.Location != nil {
		item.Location = *in.Location
	}
	if in.Notes != nil {
		item.Notes = *in.Notes
	}
}

func validatePrice(p *decimal.Decimal) error {
	if p != nil && p.IsNegative() {
		return domain.Invalid("purchase_price no puede ser negativo")
	}
	return nil
}
