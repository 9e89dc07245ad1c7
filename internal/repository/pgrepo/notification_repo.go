package pgrepo

import (
	"context"
	"errors"

	"github.com/fsdevblog/jadanpay/internal/domain"
	"github.com/fsdevblog/jadanpay/internal/repository/repoargs"
	"github.com/fsdevblog/jadanpay/pkg/uow"
	"github.com/jackc/pgx/v5"
)

const notificationColumns = `id, created_at, user_id, title, message, type, is_read`

type NotificationRepository struct {
	db uow.DBTX
}

func NewNotificationRepository(conn uow.DBTX) *NotificationRepository {
	return &NotificationRepository{db: conn}
}

func (n *NotificationRepository) Create(
	ctx context.Context,
	args repoargs.CreateNotification,
) (*domain.Notification, error) {
	created, err := scanNotification(n.db.QueryRow(ctx, `
		INSERT INTO notifications (user_id, title, message, type) VALUES ($1, $2, $3, $4)
		RETURNING `+notificationColumns, args.UserID, args.Title, args.Message, string(args.Type)))
	if err != nil {
		return nil, convertErr(err, "creating notification for user %d", args.UserID)
	}
	return created, nil
}

// BatchCreate создает уведомления одним батчем. Для каждой записи вызывается fn с индексом и ошибкой.
func (n *NotificationRepository) BatchCreate(
	ctx context.Context,
	args []repoargs.CreateNotification,
	fn repoargs.BatchExecQueryRow,
) (err error) {
	if len(args) == 0 {
		return nil
	}
	batch := &pgx.Batch{}
	for _, a := range args {
		batch.Queue(`INSERT INTO notifications (user_id, title, message, type) VALUES ($1, $2, $3, $4)`,
			a.UserID, a.Title, a.Message, string(a.Type))
	}
	results := n.db.SendBatch(ctx, batch)
	defer func() {
		if closeErr := results.Close(); closeErr != nil {
			err = errors.Join(err, convertErr(closeErr, "closing notifications batch"))
		}
	}()

	for i := range args {
		_, execErr := results.Exec()
		if execErr != nil {
			execErr = convertErr(execErr, "creating notification for user %d", args[i].UserID)
		}
		if fn != nil {
			fn(i, execErr)
		}
	}
	return nil
}

// ListByUser уведомления юзера, начиная с новых.
func (n *NotificationRepository) ListByUser(ctx context.Context, userID int64) ([]domain.Notification, error) {
	rows, err := n.db.Query(ctx, `
		SELECT `+notificationColumns+` FROM notifications WHERE user_id = $1
		ORDER BY created_at DESC, id DESC`, userID)
	if err != nil {
		return nil, convertErr(err, "listing notifications of user %d", userID)
	}
	list, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.Notification, error) {
		notification, scanErr := scanNotification(row)
		if scanErr != nil {
			return domain.Notification{}, scanErr
		}
		return *notification, nil
	})
	if err != nil {
		return nil, convertErr(err, "scanning notifications")
	}
	return list, nil
}

// MarkRead отмечает уведомление прочитанным. Чужое уведомление считается не найденным.
func (n *NotificationRepository) MarkRead(ctx context.Context, userID, id int64) error {
	tag, err := n.db.Exec(ctx, `UPDATE notifications SET is_read = TRUE WHERE id = $1 AND user_id = $2`, id, userID)
	if err != nil {
		return convertErr(err, "marking notification %d read", id)
	}
	return affectedOne(tag, "marking notification %d read", id)
}

func (n *NotificationRepository) MarkAllRead(ctx context.Context, userID int64) error {
	_, err := n.db.Exec(ctx, `UPDATE notifications SET is_read = TRUE WHERE user_id = $1 AND NOT is_read`, userID)
	if err != nil {
		return convertErr(err, "marking notifications of user %d read", userID)
	}
	return nil
}

func scanNotification(row pgx.Row) (*domain.Notification, error) {
	var (
		notification domain.Notification
		nType        string
	)
	err := row.Scan(&notification.ID, &notification.CreatedAt, &notification.UserID, &notification.Title,
		&notification.Message, &nType, &notification.IsRead)
	if err != nil {
		return nil, err //nolint:wrapcheck
	}
	notification.Type = domain.NotificationType(nType)
	return &notification, nil
}
