package notification

import (
	"context"

	"nexthire/internal/common"
)

type Repository interface {
	Create(ctx context.Context, item Notification) (*Notification, error)
	ListByRecipient(ctx context.Context, recipientID common.UUID, limit, offset int) ([]Notification, error)
	MarkRead(ctx context.Context, id, recipientID common.UUID) error
	MarkAllRead(ctx context.Context, recipientID common.UUID) error
}
