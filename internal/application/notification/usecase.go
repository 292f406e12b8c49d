package notification

import (
	"context"

	"github.com/jhoicas/Obras-api/internal/application/dto"
	"github.com/jhoicas/Obras-api/internal/domain"
	"github.com/jhoicas/Obras-api/internal/domain/entity"
	"github.com/jhoicas/Obras-api/internal/domain/repository"
)

const defaultListLimit = 50

// UseCase bandeja de notificaciones del usuario autenticado.
type UseCase struct {
	repo repository.NotificationRepository
}

// NewUseCase construye el caso de uso.
func NewUseCase(repo repository.NotificationRepository) *UseCase {
	return &UseCase{repo: repo}
}

// List últimas notificaciones, la más reciente primero.
func (uc *UseCase) List(ctx context.Context, userID string, onlyUnread bool, limit int) ([]dto.NotificationResponse, error) {
	if userID == "" {
		return nil, domain.ErrUnauthorized
	}
	if limit <= 0 || limit > 200 {
		limit = defaultListLimit
	}
	list, err := uc.repo.ListByUser(ctx, userID, onlyUnread, limit)
	if err != nil {
		return nil, err
	}
	out := make([]dto.NotificationResponse, 0, len(list))
	for _, n := range list {
		out = append(out, toNotificationResponse(n))
	}
	return out, nil
}

// MarkAsRead marca una notificación propia como leída.
func (uc *UseCase) MarkAsRead(ctx context.Context, userID, id string) error {
	if userID == "" {
		return domain.ErrUnauthorized
	}
	return uc.repo.MarkAsRead(ctx, id, userID)
}

// MarkAllAsRead marca todas las notificaciones del usuario.
func (uc *UseCase) MarkAllAsRead(ctx context.Context, userID string) (int64, error) {
	if userID == "" {
		return 0, domain.ErrUnauthorized
	}
	return uc.repo.MarkAllAsRead(ctx, userID)
}

func toNotificationResponse(n *entity.Notification) dto.NotificationResponse {
	return dto.NotificationResponse{
		ID:          n.ID,
		Type:        n.Type,
		Title:       n.Title,
		Message:     n.Message,
		RelatedID:   n.RelatedID,
		RelatedType: n.RelatedType,
		IsRead:      n.IsRead,
		CreatedAt:   n.CreatedAt,
	}
}
