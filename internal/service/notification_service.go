package service

import (
	"context"
	"fmt"

	"github.com/fsdevblog/jadanpay/internal/domain"
	"github.com/fsdevblog/jadanpay/internal/repository/repoargs"
	"github.com/fsdevblog/jadanpay/pkg/uow"
)

type NotificationService struct {
	notificationRepo NotificationRepository
}

func NewNotificationService(u uow.UOW) (*NotificationService, error) {
	repo, err := uow.GetRepositoryAs[NotificationRepository](u, uow.RepositoryName(repoargs.NotificationRepoName))
	if err != nil {
		return nil, err //nolint:wrapcheck
	}
	return &NotificationService{notificationRepo: repo}, nil
}

// List уведомления юзера, начиная с новых.
func (n *NotificationService) List(ctx context.Context, userID int64) ([]domain.Notification, error) {
	list, err := n.notificationRepo.ListByUser(ctx, userID)
	if err != nil {
		return nil, err //nolint:wrapcheck
	}
	return list, nil
}

func (n *NotificationService) Add(
	ctx context.Context,
	userID int64,
	title, message string,
	t domain.NotificationType,
) (*domain.Notification, error) {
	if t == "" {
		t = domain.NotificationInfo
	}
	created, err := n.notificationRepo.Create(ctx, repoargs.CreateNotification{
		UserID:  userID,
		Title:   title,
		Message: message,
		Type:    t,
	})
	if err != nil {
		return nil, fmt.Errorf("adding notification: %w", err)
	}
	return created, nil
}

func (n *NotificationService) MarkRead(ctx context.Context, userID, id int64) error {
	if err := n.notificationRepo.MarkRead(ctx, userID, id); err != nil {
		return fmt.Errorf("marking notification read: %w", err)
	}
	return nil
}

func (n *NotificationService) MarkAllRead(ctx context.Context, userID int64) error {
	if err := n.notificationRepo.MarkAllRead(ctx, userID); err != nil {
		return fmt.Errorf("marking notifications read: %w", err)
	}
	return nil
}

func (n *NotificationService) UnreadCount(ctx context.Context, userID int64) (int, error) {
	list, err := n.notificationRepo.ListByUser(ctx, userID)
	if err != nil {
		return 0, err //nolint:wrapcheck
	}
	var count int
	for _, item := range list {
		if !item.IsRead {
			count++
		}
	}
	return count, nil
}

// notify создает уведомление в рамках текущей транзакции.
func notify(
	ctx context.Context,
	repo NotificationRepository,
	userID int64,
	title, message string,
	t domain.NotificationType,
) error {
	_, err := repo.Create(ctx, repoargs.CreateNotification{
		UserID:  userID,
		Title:   title,
		Message: message,
		Type:    t,
	})
	return err //nolint:wrapcheck
}
