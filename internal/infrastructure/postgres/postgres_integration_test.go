package postgres_test

import (
	"context"
	"errors"
	"os"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Obras-api/internal/application/inventory"
	"github.com/jhoicas/Obras-api/internal/domain"
	"github.com/jhoicas/Obras-api/internal/domain/entity"
	"github.com/jhoicas/Obras-api/internal/infrastructure/postgres"
	"github.com/jhoicas/Obras-api/pkg/config"
)

// Requiere una base desechable: OBRAS_TEST_DATABASE_URL=postgres://... go test ./internal/infrastructure/postgres/
func testPool(t *testing.T) *pgxpool.Pool {
	t.Helper()
	dsn := os.Getenv("OBRAS_TEST_DATABASE_URL")
	if dsn == "" {
		t.Skip("OBRAS_TEST_DATABASE_URL no definido")
	}
	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, config.DBConfig{DatabaseURL: dsn, MaxConns: 20})
	require.NoError(t, err)
	t.Cleanup(pool.Close)
	require.NoError(t, postgres.Migrate(ctx, pool))
	return pool
}

func seed(t *testing.T, pool *pgxpool.Pool) (itemID, employeeID string) {
	t.Helper()
	ctx := context.Background()
	now := time.Now().UTC()
	e := &entity.Employee{
		ID: uuid.NewString(), FirstName: "Alice", LastName: "Prueba", Status: entity.EmployeeStatusActive,
		CreatedAt: now, UpdatedAt: now,
	}
	require.NoError(t, postgres.NewEmployeeRepository(pool).Create(ctx, e))
	it := &entity.InventoryItem{
		ID: uuid.NewString(), Name: "Taladro", Category: entity.ItemCategoryTool,
		Status: entity.ItemStatusAvailable, Condition: entity.ItemConditionGood, CreatedAt: now, UpdatedAt: now,
	}
	require.NoError(t, postgres.NewInventoryItemRepository(pool).Create(ctx, it))
	return it.ID, e.ID
}

func TestLedger_Postgres_AsignacionesConcurrentes(t *testing.T) {
	pool := testPool(t)
	itemID, employeeID := seed(t, pool)
	ledger := inventory.NewAssignmentLedger(postgres.NewTxRunner(pool), postgres.NewInventoryAssignmentRepository(pool), nil, nil)

	const n = 8
	var wg sync.WaitGroup
	var mu sync.Mutex
	var ok, conflicts int
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := ledger.Assign(context.Background(), inventory.AssignInput{ItemID: itemID, EmployeeID: employeeID})
			mu.Lock()
			defer mu.Unlock()
			switch {
			case err == nil:
				ok++
			case errors.Is(err, domain.ErrItemAlreadyAssigned):
				conflicts++
			default:
				t.Errorf("error inesperado: %v", err)
			}
		}()
	}
	wg.Wait()
	assert.Equal(t, 1, ok)
	assert.Equal(t, n-1, conflicts)

	item, err := postgres.NewInventoryItemRepository(pool).GetByID(context.Background(), itemID)
	require.NoError(t, err)
	assert.Equal(t, entity.ItemStatusAssigned, item.Status)
}

func TestLedger_Postgres_DevolucionYDobleDevolucion(t *testing.T) {
	pool := testPool(t)
	ctx := context.Background()
	itemID, employeeID := seed(t, pool)
	ledger := inventory.NewAssignmentLedger(postgres.NewTxRunner(pool), postgres.NewInventoryAssignmentRepository(pool), nil, nil)

	a, err := ledger.Assign(ctx, inventory.AssignInput{ItemID: itemID, EmployeeID: employeeID})
	require.NoError(t, err)
	assert.Equal(t, "Taladro", a.ItemName)
	assert.Equal(t, "Alice Prueba", a.EmployeeName)

	returned, err := ledger.Return(ctx, a.ID)
	require.NoError(t, err)
	require.NotNil(t, returned.ReturnedDate)

	_, err = ledger.Return(ctx, a.ID)
	assert.ErrorIs(t, err, domain.ErrAlreadyReturned)

	_, err = ledger.Return(ctx, uuid.NewString())
	assert.ErrorIs(t, err, domain.ErrNotFound)

	_, err = ledger.Return(ctx, "no-es-uuid")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestAssignmentRepo_IndiceParcialRechazaSegundaAbierta(t *testing.T) {
	pool := testPool(t)
	ctx := context.Background()
	itemID, employeeID := seed(t, pool)
	repo := postgres.NewInventoryAssignmentRepository(pool)
	now := time.Now().UTC()

	first := &entity.InventoryAssignment{ID: uuid.NewString(), ItemID: itemID, EmployeeID: employeeID, AssignedDate: now, CreatedAt: now}
	require.NoError(t, repo.Create(ctx, first))

	second := &entity.InventoryAssignment{ID: uuid.NewString(), ItemID: itemID, EmployeeID: employeeID, AssignedDate: now, CreatedAt: now}
	assert.ErrorIs(t, repo.Create(ctx, second), domain.ErrItemAlreadyAssigned)

	assert.ErrorIs(t, postgres.NewInventoryItemRepository(pool).Delete(ctx, itemID), domain.ErrItemHasHistory)
	assert.ErrorIs(t, postgres.NewEmployeeRepository(pool).Delete(ctx, employeeID), domain.ErrEmployeeInUse)
}
