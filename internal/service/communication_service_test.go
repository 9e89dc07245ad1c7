package service

import (
	"context"
	"testing"

	"github.com/fsdevblog/jadanpay/internal/domain"
	"github.com/fsdevblog/jadanpay/internal/repository/repoargs"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/suite"
)

type CommunicationServiceTestSuite struct {
	serviceSuite
	commService *CommunicationService
}

func TestCommunicationServiceSuite(t *testing.T) {
	suite.Run(t, new(CommunicationServiceTestSuite))
}

func (s *CommunicationServiceTestSuite) SetupTest() {
	s.serviceSuite.SetupTest()
	commService, err := NewCommunicationService(s.mockUOW)
	s.Require().NoError(err)
	s.commService = commService
}

func (s *CommunicationServiceTestSuite) TestActiveAnnouncements() {
	s.mockCommunicationRepo.EXPECT().
		ListAnnouncements(gomock.Any(), []domain.Audience{domain.AudienceAll, domain.AudienceResellers}, true).
		Return([]domain.Announcement{{ID: 1}}, nil)

	list, err := s.commService.ActiveAnnouncements(s.T().Context(), domain.RoleReseller)
	s.Require().NoError(err)
	s.Len(list, 1)
}

func (s *CommunicationServiceTestSuite) TestAddAnnouncementDefaults() {
	s.mockCommunicationRepo.EXPECT().CreateAnnouncement(gomock.Any(), domain.Announcement{
		Title: "Promo", Message: "Cheap data", Type: domain.AnnouncementInfo, Audience: domain.AudienceAll,
		IsActive: true,
	}).Return(&domain.Announcement{ID: 4}, nil)

	a, err := s.commService.AddAnnouncement(s.T().Context(),
		domain.Announcement{Title: "Promo", Message: "Cheap data", IsActive: true})
	s.Require().NoError(err)
	s.Equal(int64(4), a.ID)
}

func (s *CommunicationServiceTestSuite) TestSaveTemplate() {
	s.mockCommunicationRepo.EXPECT().CreateTemplate(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, t domain.Template) (*domain.Template, error) {
			s.Equal([]string{"name", "amount"}, t.Variables)
			s.Equal(domain.ChannelEmail, t.Channel)
			t.ID = 1
			return &t, nil
		})
	s.mockCommunicationRepo.EXPECT().UpdateTemplate(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, t domain.Template) (*domain.Template, error) {
			s.Equal(int64(1), t.ID)
			s.Empty(t.Variables)
			return &t, nil
		})

	created, err := s.commService.SaveTemplate(s.T().Context(), domain.Template{
		Name: "Funding", Subject: "Hi {name}", Body: "You funded {amount}, {name}.",
	})
	s.Require().NoError(err)
	s.Equal(int64(1), created.ID)

	_, err = s.commService.SaveTemplate(s.T().Context(), domain.Template{ID: 1, Name: "Plain", Body: "Hello"})
	s.Require().NoError(err)
}

func (s *CommunicationServiceTestSuite) TestRenderTemplate() {
	s.mockCommunicationRepo.EXPECT().FindTemplate(gomock.Any(), int64(1)).Return(&domain.Template{
		ID: 1, Channel: domain.ChannelSMS, Body: "Dear {name}, your balance is {balance}.",
	}, nil).Times(2)

	r, err := s.commService.RenderTemplate(s.T().Context(), 1, map[string]string{"name": "Musa", "balance": "₦500"})
	s.Require().NoError(err)
	s.Equal("Dear Musa, your balance is ₦500.", r.Body)
	s.Equal(domain.ChannelSMS, r.Channel)

	_, err = s.commService.RenderTemplate(s.T().Context(), 1, map[string]string{"name": "Musa"})
	s.Require().ErrorIs(err, domain.ErrTemplateVariableMissing)
	s.Contains(err.Error(), "balance")
}

func (s *CommunicationServiceTestSuite) TestBroadcast() {
	s.mockUserRepo.EXPECT().ListByRoles(gomock.Any(), []domain.UserRole{domain.RoleReseller}).
		Return([]domain.User{{ID: 7}, {ID: 9}}, nil)
	s.mockNotificationRepo.EXPECT().BatchCreate(gomock.Any(), []repoargs.CreateNotification{
		{UserID: 7, Title: "Price drop", Message: "MTN SME now cheaper", Type: domain.NotificationInfo},
		{UserID: 9, Title: "Price drop", Message: "MTN SME now cheaper", Type: domain.NotificationInfo},
	}, gomock.Any()).DoAndReturn(
		func(_ context.Context, args []repoargs.CreateNotification, fn repoargs.BatchExecQueryRow) error {
			for i := range args {
				fn(i, nil)
			}
			return nil
		})

	n, err := s.commService.Broadcast(s.T().Context(), domain.AudienceResellers, "Price drop",
		"MTN SME now cheaper", "")
	s.Require().NoError(err)
	s.Equal(2, n)
}
