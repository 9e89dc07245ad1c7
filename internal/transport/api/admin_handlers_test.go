package api

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"

	"github.com/fsdevblog/jadanpay/internal/domain"
	"github.com/fsdevblog/jadanpay/internal/service"
	"github.com/golang/mock/gomock"
	"github.com/shopspring/decimal"
	"github.com/tealeg/xlsx"
)

func (s *HandlerTestSuite) TestAdminPermissions() {
	s.reports.EXPECT().Stats(gomock.Any()).Return(&service.Stats{}, nil).Times(2)

	cases := []struct {
		name       string
		token      string
		wantStatus int
	}{
		{name: "anonymous", token: "", wantStatus: http.StatusUnauthorized},
		{name: "regular user", token: s.userToken(1, domain.RoleUser), wantStatus: http.StatusForbidden},
		{name: "reseller", token: s.userToken(1, domain.RoleReseller), wantStatus: http.StatusForbidden},
		{
			name:       "staff without permission",
			token:      s.staffToken(2, domain.PermReplyTickets),
			wantStatus: http.StatusForbidden,
		},
		{
			name:       "staff with permission",
			token:      s.staffToken(2, domain.PermViewTransactions),
			wantStatus: http.StatusOK,
		},
		{name: "admin user", token: s.userToken(1, domain.RoleAdmin), wantStatus: http.StatusOK},
	}
	for _, tt := range cases {
		s.Run(tt.name, func() {
			res := s.request(http.MethodGet, AdminStatsRoute, tt.token, nil)
			s.Equal(tt.wantStatus, res.StatusCode)
		})
	}
}

func (s *HandlerTestSuite) TestAdminUsers() {
	admin := s.userToken(1, domain.RoleAdmin)

	s.users.EXPECT().List(gomock.Any(), "musa").Return([]domain.User{{ID: 2, Name: "Musa"}}, nil).Times(1)
	s.users.EXPECT().
		UpdateStatus(gomock.Any(), int64(2), domain.UserStatusBanned).
		Return(&domain.User{ID: 2, Status: domain.UserStatusBanned}, nil).Times(1)

	res := s.request(http.MethodGet, AdminUsersRoute+"?search=musa", admin, nil)
	s.Require().Equal(http.StatusOK, res.StatusCode)
	var users []domain.User
	s.decode(res, &users)
	s.Len(users, 1)

	res = s.request(http.MethodPut, "/admin/users/2/status", admin, map[string]string{"status": "banned"})
	s.Equal(http.StatusOK, res.StatusCode)

	res = s.request(http.MethodPut, "/admin/users/2/status", admin, map[string]string{"status": "deleted"})
	s.Equal(http.StatusUnprocessableEntity, res.StatusCode)

	s.Run("view only staff can not manage", func() {
		res := s.request(http.MethodPut, "/admin/users/2/status", s.staffToken(3, domain.PermViewUsers),
			map[string]string{"status": "banned"})
		s.Equal(http.StatusForbidden, res.StatusCode)
	})
}

func (s *HandlerTestSuite) TestPayments() {
	admin := s.userToken(1, domain.RoleAdmin)

	s.wallet.EXPECT().
		ApproveFunding(gomock.Any(), int64(4)).
		Return(&domain.Transaction{ID: 4, Status: domain.TransactionStatusSuccess}, nil).Times(1)
	s.wallet.EXPECT().
		DeclineFunding(gomock.Any(), int64(5)).
		Return(nil, domain.ErrTransactionNotPending).Times(1)
	s.wallet.EXPECT().
		AdminAdjust(gomock.Any(), int64(2), gomock.Any(), domain.DirectionDebit).
		DoAndReturn(func(_ context.Context, _ int64, amount decimal.Decimal, _ domain.DirectionType) (
			*domain.Transaction, error,
		) {
			s.True(amount.Equal(decimal.NewFromInt(700)))
			return nil, domain.ErrNotEnoughBalance
		}).Times(1)

	res := s.request(http.MethodPost, "/admin/payments/4/approve", admin, nil)
	s.Equal(http.StatusOK, res.StatusCode)

	res = s.request(http.MethodPost, "/admin/payments/5/decline", admin, nil)
	s.Equal(http.StatusUnprocessableEntity, res.StatusCode)

	res = s.request(http.MethodPost, AdminAdjustRoute, admin, map[string]any{
		"userId": 2, "amount": 700, "direction": "debit",
	})
	s.Equal(http.StatusPaymentRequired, res.StatusCode)
}

func (s *HandlerTestSuite) TestExportLedger() {
	token := s.staffToken(2, domain.PermViewTransactions)
	ledger := []domain.Transaction{{
		ID:       1,
		UserID:   2,
		Type:     domain.TransactionAirtime,
		Provider: domain.ProviderGLO,
		Amount:   decimal.NewFromInt(100),
		Status:   domain.TransactionStatusSuccess,
	}}
	s.reports.EXPECT().Ledger(gomock.Any()).Return(ledger, nil).Times(2)

	res := s.request(http.MethodGet, AdminExportRoute, token, nil)
	s.Require().Equal(http.StatusOK, res.StatusCode)
	s.Equal("text/csv", res.Header.Get("Content-Type"))
	raw, err := io.ReadAll(res.Body)
	s.Require().NoError(err)
	s.Contains(string(raw), "ID,User,Type,Amount")

	res = s.request(http.MethodGet, AdminExportRoute+"?format=xlsx", token, nil)
	s.Require().Equal(http.StatusOK, res.StatusCode)
	raw, err = io.ReadAll(res.Body)
	s.Require().NoError(err)
	file, err := xlsx.OpenBinary(raw)
	s.Require().NoError(err)
	s.Require().Len(file.Sheets, 1)
	s.Len(file.Sheets[0].Rows, 2)

	res = s.request(http.MethodGet, AdminExportRoute+"?format=pdf", token, nil)
	s.Equal(http.StatusUnprocessableEntity, res.StatusCode)
}

func (s *HandlerTestSuite) TestSupportReplies() {
	s.support.EXPECT().
		Reply(gomock.Any(), service.ReplyArgs{TicketID: 8, SenderID: 5, Text: "any update?", ByStaff: false}).
		Return(&domain.Ticket{ID: 8}, nil).Times(1)
	s.support.EXPECT().
		Reply(gomock.Any(), service.ReplyArgs{TicketID: 8, SenderID: 3, Text: "resolved", ByStaff: true}).
		Return(&domain.Ticket{ID: 8}, nil).Times(1)
	s.support.EXPECT().
		Reply(gomock.Any(), service.ReplyArgs{TicketID: 9, SenderID: 5, Text: "hello", ByStaff: false}).
		Return(nil, domain.ErrTicketClosed).Times(1)

	user := s.userToken(5, domain.RoleUser)
	res := s.request(http.MethodPost, "/user/tickets/8/reply", user, map[string]string{"text": "any update?"})
	s.Equal(http.StatusOK, res.StatusCode)

	res = s.request(http.MethodPost, "/admin/tickets/8/reply", s.staffToken(3, domain.PermReplyTickets),
		map[string]string{"text": "resolved"})
	s.Equal(http.StatusOK, res.StatusCode)

	res = s.request(http.MethodPost, "/user/tickets/9/reply", user, map[string]string{"text": "hello"})
	s.Equal(http.StatusUnprocessableEntity, res.StatusCode)
}

func (s *HandlerTestSuite) TestInbox() {
	token := s.userToken(5, domain.RoleReseller)
	s.notifications.EXPECT().List(gomock.Any(), int64(5)).Return([]domain.Notification{{ID: 1}}, nil).Times(1)
	s.notifications.EXPECT().UnreadCount(gomock.Any(), int64(5)).Return(1, nil).Times(1)
	s.notifications.EXPECT().MarkAllRead(gomock.Any(), int64(5)).Return(nil).Times(1)
	s.communication.EXPECT().
		ActiveAnnouncements(gomock.Any(), domain.RoleReseller).
		Return([]domain.Announcement{{ID: 4, Audience: domain.AudienceResellers}}, nil).Times(1)

	res := s.request(http.MethodGet, NotificationsRoute, token, nil)
	s.Require().Equal(http.StatusOK, res.StatusCode)
	var body NotificationsResponse
	s.decode(res, &body)
	s.Equal(1, body.Unread)

	res = s.request(http.MethodPost, NotificationsReadRoute, token, nil)
	s.Equal(http.StatusNoContent, res.StatusCode)

	res = s.request(http.MethodGet, AnnouncementsRoute, token, nil)
	s.Equal(http.StatusOK, res.StatusCode)
}

func (s *HandlerTestSuite) TestSettings() {
	admin := s.userToken(1, domain.RoleAdmin)

	s.settings.EXPECT().Public(gomock.Any()).Return(&domain.Settings{AppName: "JadanPay"}, nil).Times(1)
	s.settings.EXPECT().
		Update(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, patch json.RawMessage) (*domain.Settings, error) {
			s.JSONEq(`{"maintenanceMode":true}`, string(patch))
			return &domain.Settings{MaintenanceMode: true}, nil
		}).Times(1)

	res := s.request(http.MethodGet, SettingsPublicRoute, "", nil)
	s.Equal(http.StatusOK, res.StatusCode)

	res = s.request(http.MethodPut, AdminSettingsRoute, admin, []byte(`{"maintenanceMode":true}`))
	s.Equal(http.StatusOK, res.StatusCode)

	res = s.request(http.MethodPut, AdminSettingsRoute, admin, []byte(`{"maintenanceMode":`))
	s.Equal(http.StatusBadRequest, res.StatusCode)
}

func (s *HandlerTestSuite) TestBackupRestore() {
	admin := s.userToken(1, domain.RoleAdmin)
	payload := []byte(`{"version":"1.0","data":{"users":[]}}`)

	s.backup.EXPECT().Restore(gomock.Any(), payload).Return(nil).Times(1)
	s.backup.EXPECT().Restore(gomock.Any(), []byte(`{}`)).Return(domain.ErrInvalidBackup).Times(1)

	res := s.request(http.MethodPost, AdminBackupRoute, admin, bytes.Clone(payload))
	s.Equal(http.StatusNoContent, res.StatusCode)

	res = s.request(http.MethodPost, AdminBackupRoute, admin, []byte(`{}`))
	s.Equal(http.StatusUnprocessableEntity, res.StatusCode)
}

func (s *HandlerTestSuite) TestBroadcast() {
	s.communication.EXPECT().
		Broadcast(gomock.Any(), domain.AudienceResellers, "Promo", "Data at half price", domain.NotificationInfo).
		Return(12, nil).Times(1)

	res := s.request(http.MethodPost, AdminBroadcastRoute, s.userToken(1, domain.RoleAdmin), map[string]string{
		"audience": "resellers",
		"title":    "Promo",
		"message":  "Data at half price",
	})
	s.Require().Equal(http.StatusOK, res.StatusCode)
	var body map[string]int
	s.decode(res, &body)
	s.Equal(12, body["delivered"])
}
