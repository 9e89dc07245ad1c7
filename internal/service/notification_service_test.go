package service

import (
	"testing"

	"github.com/fsdevblog/jadanpay/internal/domain"
	"github.com/fsdevblog/jadanpay/internal/repository/repoargs"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/suite"
)

type NotificationServiceTestSuite struct {
	serviceSuite
	notificationService *NotificationService
}

func TestNotificationServiceSuite(t *testing.T) {
	suite.Run(t, new(NotificationServiceTestSuite))
}

func (s *NotificationServiceTestSuite) SetupTest() {
	s.serviceSuite.SetupTest()
	notificationService, err := NewNotificationService(s.mockUOW)
	s.Require().NoError(err)
	s.notificationService = notificationService
}

func (s *NotificationServiceTestSuite) TestAddDefaultsToInfo() {
	s.mockNotificationRepo.EXPECT().Create(gomock.Any(), repoargs.CreateNotification{
		UserID: 3, Title: "Hello", Message: "Welcome back", Type: domain.NotificationInfo,
	}).Return(&domain.Notification{ID: 1, UserID: 3}, nil)

	n, err := s.notificationService.Add(s.T().Context(), 3, "Hello", "Welcome back", "")
	s.Require().NoError(err)
	s.Equal(int64(1), n.ID)
}

func (s *NotificationServiceTestSuite) TestUnreadCount() {
	s.mockNotificationRepo.EXPECT().ListByUser(gomock.Any(), int64(3)).Return([]domain.Notification{
		{ID: 1, IsRead: true}, {ID: 2}, {ID: 3},
	}, nil)

	count, err := s.notificationService.UnreadCount(s.T().Context(), 3)
	s.Require().NoError(err)
	s.Equal(2, count)
}

func (s *NotificationServiceTestSuite) TestMarkRead() {
	s.mockNotificationRepo.EXPECT().MarkRead(gomock.Any(), int64(3), int64(2)).Return(domain.ErrRecordNotFound)
	s.mockNotificationRepo.EXPECT().MarkAllRead(gomock.Any(), int64(3)).Return(nil)

	s.Require().ErrorIs(s.notificationService.MarkRead(s.T().Context(), 3, 2), domain.ErrRecordNotFound)
	s.Require().NoError(s.notificationService.MarkAllRead(s.T().Context(), 3))
}
