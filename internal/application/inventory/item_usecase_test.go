package inventory_test

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Obras-api/internal/application/dto"
	"github.com/jhoicas/Obras-api/internal/application/inventory"
	"github.com/jhoicas/Obras-api/internal/domain"
	"github.com/jhoicas/Obras-api/internal/domain/entity"
)

func TestItemCreate_PorDefectoDisponible(t *testing.T) {
	f := newFixture(t)
	price := decimal.RequireFromString("1250000.50")

	out, err := f.items.Create(context.Background(), "u1", dto.CreateInventoryItemRequest{
		Name: " Mezcladora ", Category: entity.ItemCategoryTool, PurchasePrice: &price,
	})
	require.NoError(t, err)
	assert.Equal(t, "Mezcladora", out.Name)
	assert.Equal(t, entity.ItemStatusAvailable, out.Status)
	assert.Equal(t, entity.ItemConditionGood, out.Condition)
	assert.True(t, price.Equal(*out.PurchasePrice))
}

func TestItemCreate_NoNaceAsignado(t *testing.T) {
	f := newFixture(t)
	_, err := f.items.Create(context.Background(), "u1", dto.CreateInventoryItemRequest{
		Name: "Laptop", Category: entity.ItemCategoryITEquipment, Status: entity.ItemStatusAssigned,
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestItemCreate_PrecioNegativo(t *testing.T) {
	f := newFixture(t)
	price := decimal.NewFromInt(-1)
	_, err := f.items.Create(context.Background(), "u1", dto.CreateInventoryItemRequest{
		Name: "Laptop", Category: entity.ItemCategoryITEquipment, PurchasePrice: &price,
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestItemUpdate_DisponibleConAsignacionAbiertaRechazado(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	_, err := f.ledger.Assign(ctx, inventory.AssignInput{ItemID: "drill-1", EmployeeID: "alice"})
	require.NoError(t, err)

	_, err = f.items.Update(ctx, "drill-1", dto.UpdateInventoryItemRequest{Status: strPtr(entity.ItemStatusAvailable)})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
	assert.Equal(t, entity.ItemStatusAssigned, f.itemStatus(t, "drill-1"))
}

func TestItemUpdate_AssignedSinAsignacionRechazado(t *testing.T) {
	f := newFixture(t)
	_, err := f.items.Update(context.Background(), "drill-1", dto.UpdateInventoryItemRequest{Status: strPtr(entity.ItemStatusAssigned)})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
	assert.Equal(t, entity.ItemStatusAvailable, f.itemStatus(t, "drill-1"))
}

func TestItemUpdate_CamposParcialesYCicloMantenimiento(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	out, err := f.items.Update(ctx, "drill-1", dto.UpdateInventoryItemRequest{
		Location: strPtr("Bodega central"),
		Status:   strPtr(entity.ItemStatusMaintenance),
	})
	require.NoError(t, err)
	assert.Equal(t, "Bodega central", out.Location)
	assert.Equal(t, "Taladro percutor", out.Name)
	assert.Equal(t, entity.ItemStatusMaintenance, out.Status)

	out, err = f.items.Update(ctx, "drill-1", dto.UpdateInventoryItemRequest{Status: strPtr(entity.ItemStatusAvailable)})
	require.NoError(t, err)
	assert.Equal(t, entity.ItemStatusAvailable, out.Status)

	_, err = f.items.Update(ctx, "drill-1", dto.UpdateInventoryItemRequest{Name: strPtr("  ")})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestItemUpdate_NoExiste(t *testing.T) {
	f := newFixture(t)
	_, err := f.items.Update(context.Background(), "nada", dto.UpdateInventoryItemRequest{})
	assert.ErrorIs(t, err, domain.ErrItemNotFound)
}

func TestItemDelete_Reglas(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	a, err := f.ledger.Assign(ctx, inventory.AssignInput{ItemID: "drill-1", EmployeeID: "alice"})
	require.NoError(t, err)
	assert.ErrorIs(t, f.items.Delete(ctx, "drill-1"), domain.ErrItemInUse)

	_, err = f.ledger.Return(ctx, a.ID)
	require.NoError(t, err)
	assert.ErrorIs(t, f.items.Delete(ctx, "drill-1"), domain.ErrItemHasHistory)

	created, err := f.items.Create(ctx, "u1", dto.CreateInventoryItemRequest{Name: "Nivel láser", Category: entity.ItemCategoryTool})
	require.NoError(t, err)
	require.NoError(t, f.items.Delete(ctx, created.ID))
	_, err = f.items.GetByID(ctx, created.ID)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestItemList_Filtros(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	_, err := f.items.Create(ctx, "u1", dto.CreateInventoryItemRequest{Name: "Camioneta", Category: entity.ItemCategoryVehicle, SerialNumber: "ABC-123"})
	require.NoError(t, err)

	list, err := f.items.List(ctx, entity.InventoryItemFilter{Category: entity.ItemCategoryVehicle})
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, "Camioneta", list[0].Name)

	list, err = f.items.List(ctx, entity.InventoryItemFilter{Query: "abc"})
	require.NoError(t, err)
	assert.Len(t, list, 1)

	_, err = f.items.List(ctx, entity.InventoryItemFilter{Status: "perdido"})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}
