package notification_test

import (
	"bytes"
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Obras-api/internal/application/notification"
	"github.com/jhoicas/Obras-api/internal/domain/entity"
	"github.com/jhoicas/Obras-api/internal/infrastructure/memory"
	"github.com/jhoicas/Obras-api/pkg/logger"
)

type failingRepo struct{ *memory.NotificationRepo }

func (failingRepo) Create(context.Context, *entity.Notification) error {
	return errors.New("db caída")
}

type outcomes struct {
	mu sync.Mutex
	m  map[string]int
}

func (o *outcomes) ObserveNotification(s string) {
	o.mu.Lock()
	defer o.mu.Unlock()
	if o.m == nil {
		o.m = map[string]int{}
	}
	o.m[s]++
}

func (o *outcomes) get(s string) int {
	o.mu.Lock()
	defer o.mu.Unlock()
	return o.m[s]
}

func TestEmitter_InsertaEnSegundoPlano(t *testing.T) {
	store := memory.NewStore()
	m := &outcomes{}
	e := notification.NewEmitter(store.Notifications(), logger.Nop(), m, time.Second)

	ctx, cancel := context.WithCancel(context.Background())
	e.Notify(ctx, &entity.Notification{UserID: "alice", Type: entity.NotificationInventoryAssigned, Title: "Equipo asignado"})
	cancel() // la petición terminó; la inserción debe completarse igual
	e.Flush()

	list, err := store.Notifications().ListByUser(context.Background(), "alice", false, 0)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.NotEmpty(t, list[0].ID)
	assert.False(t, list[0].CreatedAt.IsZero())
	assert.Equal(t, 1, m.get(notification.OutcomeSent))
}

func TestEmitter_FalloSoloSeRegistra(t *testing.T) {
	var buf bytes.Buffer
	log := logger.New(logger.Config{Env: "production", Level: "warn", Output: &buf})
	m := &outcomes{}
	e := notification.NewEmitter(failingRepo{}, log, m, time.Second)

	assert.NotPanics(t, func() {
		e.Notify(context.Background(), &entity.Notification{UserID: "alice", Type: entity.NotificationInventoryAssigned})
	})
	e.Flush()

	assert.Equal(t, 1, m.get(notification.OutcomeFailed))
	assert.Contains(t, buf.String(), "no se pudo insertar la notificación")
}

func TestEmitter_SinDestinatarioSeIgnora(t *testing.T) {
	store := memory.NewStore()
	m := &outcomes{}
	e := notification.NewEmitter(store.Notifications(), logger.Nop(), m, time.Second)

	e.Notify(context.Background(), &entity.Notification{Type: entity.NotificationSystem})
	e.Notify(context.Background(), nil)
	e.Flush()

	assert.Equal(t, 0, m.get(notification.OutcomeSent))
}

func TestEmitter_CerradoDescarta(t *testing.T) {
	store := memory.NewStore()
	m := &outcomes{}
	e := notification.NewEmitter(store.Notifications(), logger.Nop(), m, time.Second)

	require.NoError(t, e.Close(context.Background()))
	e.Notify(context.Background(), &entity.Notification{UserID: "alice", Type: entity.NotificationSystem})

	assert.Equal(t, 1, m.get(notification.OutcomeDropped))
	list, err := store.Notifications().ListByUser(context.Background(), "alice", false, 0)
	require.NoError(t, err)
	assert.Empty(t, list)
}

func TestUseCase_Bandeja(t *testing.T) {
	store := memory.NewStore()
	ctx := context.Background()
	repo := store.Notifications()
	now := time.Now()
	require.NoError(t, repo.Create(ctx, &entity.Notification{ID: "n1", UserID: "u1", Title: "uno", CreatedAt: now.Add(-time.Hour)}))
	require.NoError(t, repo.Create(ctx, &entity.Notification{ID: "n2", UserID: "u1", Title: "dos", CreatedAt: now}))

	uc := notification.NewUseCase(repo)
	list, err := uc.List(ctx, "u1", false, 0)
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, "n2", list[0].ID)

	require.NoError(t, uc.MarkAsRead(ctx, "u1", "n1"))
	unread, err := uc.List(ctx, "u1", true, 0)
	require.NoError(t, err)
	require.Len(t, unread, 1)
	assert.Equal(t, "n2", unread[0].ID)

	n, err := uc.MarkAllAsRead(ctx, "u1")
	require.NoError(t, err)
	assert.Equal(t, int64(1), n)

	_, err = uc.List(ctx, "", false, 0)
	assert.Error(t, err)
}
