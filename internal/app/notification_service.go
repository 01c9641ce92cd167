package app

import (
	"context"

	"nexthire/internal/common"
	"nexthire/internal/domain/notification"
)

type NotificationService struct {
	repo notification.Repository
}

func NewNotificationService(repo notification.Repository) *NotificationService {
	return &NotificationService{repo: repo}
}

func (s *NotificationService) List(ctx context.Context, recipientID common.UUID, limit, offset int) ([]notification.Notification, error) {
	if limit <= 0 || limit > 100 {
		limit = 20
	}
	if offset < 0 {
		offset = 0
	}
	return s.repo.ListByRecipient(ctx, recipientID, limit, offset)
}

func (s *NotificationService) MarkRead(ctx context.Context, id, recipientID common.UUID) error {
	return s.repo.MarkRead(ctx, id, recipientID)
}

func (s *NotificationService) MarkAllRead(ctx context.Context, recipientID common.UUID) error {
	return s.repo.MarkAllRead(ctx, recipientID)
}
