package service

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/sit-project/sit-api/internal/domain"
	"github.com/sit-project/sit-api/internal/pkg/notify"
)

type NotificationRepository interface {
	ResourceRepository[domain.Notification]
	FindByUser(ctx context.Context, userID uint) ([]domain.Notification, error)
	MarkRead(ctx context.Context, id uint) (domain.Notification, error)
}

type Broadcaster interface {
	Broadcast(msgType string, data any) error
}

// NotificationService stores notifications and pushes each new one to the
// connected websocket clients.
type NotificationService struct {
	*ResourceService[domain.Notification]
	repo NotificationRepository
	hub  Broadcaster
}

func NewNotificationService(repo NotificationRepository, hub Broadcaster) *NotificationService {
	return &NotificationService{
		ResourceService: NewResourceService[domain.Notification](repo),
		repo:            repo,
		hub:             hub,
	}
}

// Create broadcasts only after the row is committed. A failed broadcast
// does not undo the insert.
func (s *NotificationService) Create(ctx context.Context, n domain.Notification) (domain.Notification, error) {
	n.Read = false
	created, err := s.ResourceService.Create(ctx, n)
	if err != nil {
		return domain.Notification{}, err
	}

	if err = s.hub.Broadcast(notify.EventNewNotification, created); err != nil {
		zap.L().Warn("failed to broadcast notification", zap.Uint("id", created.ID), zap.Error(err))
	}

	return created, nil
}

// ListForUser returns every notification when userID is nil.
func (s *NotificationService) ListForUser(ctx context.Context, userID *uint) ([]domain.Notification, error) {
	if userID == nil {
		return s.List(ctx)
	}

	list, err := s.repo.FindByUser(ctx, *userID)
	if err != nil {
		return nil, fmt.Errorf("s.repo.FindByUser -> %w", err)
	}

	return list, nil
}

func (s *NotificationService) MarkRead(ctx context.Context, id uint) (domain.Notification, error) {
	n, err := s.repo.MarkRead(ctx, id)
	if err != nil {
		return domain.Notification{}, fmt.Errorf("s.repo.MarkRead -> %w", err)
	}

	return n, nil
}
