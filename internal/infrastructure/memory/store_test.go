package memory

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Obras-api/internal/domain"
	"github.com/jhoicas/Obras-api/internal/domain/entity"
	"github.com/jhoicas/Obras-api/internal/domain/repository"
)

func seed(t *testing.T, s *Store) {
	t.Helper()
	ctx := context.Background()
	require.NoError(t, s.Items().Create(ctx, &entity.InventoryItem{ID: "drill-1", Name: "Taladro", Status: entity.ItemStatusAvailable}))
	require.NoError(t, s.Employees().Create(ctx, &entity.Employee{ID: "alice", FirstName: "Alice", LastName: "Pérez"}))
}

func TestRun_ErrorDescartaCambios(t *testing.T) {
	s := NewStore()
	seed(t, s)
	ctx := context.Background()
	boom := errors.New("boom")

	err := s.Run(ctx, func(items repository.InventoryItemRepository, asg repository.InventoryAssignmentRepository, _ repository.EmployeeRepository) error {
		require.NoError(t, asg.Create(ctx, &entity.InventoryAssignment{ID: "a1", ItemID: "drill-1", EmployeeID: "alice", AssignedDate: time.Now()}))
		require.NoError(t, items.UpdateStatus(ctx, "drill-1", entity.ItemStatusAssigned, time.Now()))
		return boom
	})
	require.ErrorIs(t, err, boom)

	item, err := s.Items().GetByID(ctx, "drill-1")
	require.NoError(t, err)
	assert.Equal(t, entity.ItemStatusAvailable, item.Status)
	a, err := s.Assignments().GetByID(ctx, "a1")
	require.NoError(t, err)
	assert.Nil(t, a)
}

func TestRun_CommitAplicaCambios(t *testing.T) {
	s := NewStore()
	seed(t, s)
	ctx := context.Background()

	err := s.Run(ctx, func(items repository.InventoryItemRepository, asg repository.InventoryAssignmentRepository, _ repository.EmployeeRepository) error {
		if err := asg.Create(ctx, &entity.InventoryAssignment{ID: "a1", ItemID: "drill-1", EmployeeID: "alice", AssignedDate: time.Now()}); err != nil {
			return err
		}
		return items.UpdateStatus(ctx, "drill-1", entity.ItemStatusAssigned, time.Now())
	})
	require.NoError(t, err)

	a, err := s.Assignments().GetByID(ctx, "a1")
	require.NoError(t, err)
	require.NotNil(t, a)
	assert.Equal(t, "Taladro", a.ItemName)
	assert.Equal(t, "Alice Pérez", a.EmployeeName)
}

func TestAssignmentRepo_UnaSolaAbiertaPorItem(t *testing.T) {
	s := NewStore()
	seed(t, s)
	ctx := context.Background()
	repo := s.Assignments()

	require.NoError(t, repo.Create(ctx, &entity.InventoryAssignment{ID: "a1", ItemID: "drill-1", EmployeeID: "alice", AssignedDate: time.Now()}))
	err := repo.Create(ctx, &entity.InventoryAssignment{ID: "a2", ItemID: "drill-1", EmployeeID: "alice", AssignedDate: time.Now()})
	assert.ErrorIs(t, err, domain.ErrConflict)

	require.NoError(t, repo.MarkReturned(ctx, "a1", time.Now()))
	assert.ErrorIs(t, repo.MarkReturned(ctx, "a1", time.Now()), domain.ErrAlreadyReturned)
	require.NoError(t, repo.Create(ctx, &entity.InventoryAssignment{ID: "a2", ItemID: "drill-1", EmployeeID: "alice", AssignedDate: time.Now()}))

	n, err := repo.CountByItem(ctx, "drill-1")
	require.NoError(t, err)
	assert.Equal(t, 2, n)
}

func TestDelete_ConHistorialFalla(t *testing.T) {
	s := NewStore()
	seed(t, s)
	ctx := context.Background()
	require.NoError(t, s.Assignments().Create(ctx, &entity.InventoryAssignment{ID: "a1", ItemID: "drill-1", EmployeeID: "alice", AssignedDate: time.Now()}))

	assert.ErrorIs(t, s.Items().Delete(ctx, "drill-1"), domain.ErrConflict)
	assert.ErrorIs(t, s.Employees().Delete(ctx, "alice"), domain.ErrEmployeeInUse)
}

func TestNotificationRepo_NoLeidasYMarcado(t *testing.T) {
	s := NewStore()
	ctx := context.Background()
	repo := s.Notifications()
	now := time.Now()
	require.NoError(t, repo.Create(ctx, &entity.Notification{ID: "n1", UserID: "u1", CreatedAt: now.Add(-time.Minute)}))
	require.NoError(t, repo.Create(ctx, &entity.Notification{ID: "n2", UserID: "u1", CreatedAt: now}))
	require.NoError(t, repo.Create(ctx, &entity.Notification{ID: "n3", UserID: "u2", CreatedAt: now}))

	list, err := repo.ListByUser(ctx, "u1", false, 0)
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, "n2", list[0].ID)

	require.NoError(t, repo.MarkAsRead(ctx, "n2", "u1"))
	assert.ErrorIs(t, repo.MarkAsRead(ctx, "n3", "u1"), domain.ErrNotFound)

	unread, err := repo.ListByUser(ctx, "u1", true, 0)
	require.NoError(t, err)
	require.Len(t, unread, 1)
	assert.Equal(t, "n1", unread[0].ID)

	n, err := repo.MarkAllAsRead(ctx, "u1")
	require.NoError(t, err)
	assert.Equal(t, int64(1), n)
}
