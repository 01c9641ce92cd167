package postgres

import (
	"context"
	"database/sql"
	"time"

	"nexthire/internal/common"
	"nexthire/internal/domain/notification"
)

type NotificationRepository struct {
	db *sql.DB
}

func NewNotificationRepository(db *sql.DB) *NotificationRepository {
	return &NotificationRepository{db: db}
}

func (r *NotificationRepository) Create(ctx context.Context, item notification.Notification) (*notification.Notification, error) {
	item.ID = common.NewUUID()
	item.CreatedAt = time.Now().UTC()
	_, err := r.db.ExecContext(ctx, `INSERT INTO notifications (id, recipient_id, notification_type, title, message, ref_kind, ref_id, read, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`,
		item.ID, item.RecipientID, item.Type, item.Title, item.Message, item.Ref.Kind, item.Ref.ID, item.Read, item.CreatedAt)
	if err != nil {
		return nil, common.NewError(common.CodeInternal, "failed to create notification", err)
	}
	return &item, nil
}

func (r *NotificationRepository) ListByRecipient(ctx context.Context, recipientID common.UUID, limit, offset int) ([]notification.Notification, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT id, recipient_id, notification_type, title, message, ref_kind, ref_id, read, created_at
		FROM notifications WHERE recipient_id = $1 ORDER BY created_at DESC LIMIT $2 OFFSET $3`, recipientID, limit, offset)
	if err != nil {
		return nil, common.NewError(common.CodeInternal, "failed to list notifications", err)
	}
	defer rows.Close()
	var items []notification.Notification
	for rows.Next() {
		var item notification.Notification
		if err := rows.Scan(&item.ID, &item.RecipientID, &item.Type, &item.Title, &item.Message, &item.Ref.Kind, &item.Ref.ID, &item.Read, &item.CreatedAt); err != nil {
			return nil, common.NewError(common.CodeInternal, "failed to scan notification", err)
		}
		items = append(items, item)
	}
	if err := rows.Err(); err != nil {
		return nil, common.NewError(common.CodeInternal, "failed to iterate notifications", err)
	}
	return items, nil
}

func (r *NotificationRepository) MarkRead(ctx context.Context, id, recipientID common.UUID) error {
	result, err := r.db.ExecContext(ctx, `UPDATE notifications SET read = TRUE WHERE id = $1 AND recipient_id = $2`, id, recipientID)
	if err != nil {
		return common.NewError(common.CodeInternal, "failed to mark notification read", err)
	}
	rows, err := result.RowsAffected()
	if err == nil && rows == 0 {
		return common.NewError(common.CodeNotFound, "notification not found", sql.ErrNoRows)
	}
	return nil
}

func (r *NotificationRepository) MarkAllRead(ctx context.Context, recipientID common.UUID) error {
	_, err := r.db.ExecContext(ctx, `UPDATE notifications SET read = TRUE WHERE recipient_id = $1 AND read = FALSE`, recipientID)
	if err != nil {
		return common.NewError(common.CodeInternal, "failed to mark notifications read", err)
	}
	return nil
}
