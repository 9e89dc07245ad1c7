package api

import (
	"fmt"
	"net/http"

	"github.com/fsdevblog/jadanpay/internal/domain"
	"github.com/fsdevblog/jadanpay/internal/service"
	"github.com/golang/mock/gomock"
	"github.com/shopspring/decimal"
)

func (s *HandlerTestSuite) TestAirtime() {
	token := s.userToken(1, domain.RoleUser)
	s.settings.EXPECT().Get(gomock.Any()).Return(&domain.Settings{}, nil).AnyTimes()

	pending := &domain.Transaction{ID: 11, Reference: "100000011", Status: domain.TransactionStatusPending}
	failed := &domain.Transaction{ID: 12, Reference: "100000012", Status: domain.TransactionStatusFailed}

	s.purchases.EXPECT().
		BuyAirtime(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ any, args service.AirtimeArgs) (*domain.Transaction, error) {
			s.Equal(int64(1), args.UserID)
			s.Equal(domain.ProviderMTN, args.Provider)
			switch {
			case args.Amount.Equal(decimal.NewFromInt(100)):
				return &domain.Transaction{ID: 10, Status: domain.TransactionStatusSuccess}, nil
			case args.Amount.Equal(decimal.NewFromInt(200)):
				return pending, fmt.Errorf("buying airtime: %w", domain.ErrPurchasePending)
			case args.Amount.Equal(decimal.NewFromInt(300)):
				return nil, fmt.Errorf("buying airtime: %w", domain.ErrNotEnoughBalance)
			default:
				return nil, fmt.Errorf("buying airtime: %w", domain.NewVendorRejectedError(failed, "invalid number"))
			}
		}).Times(4)

	cases := []struct {
		name       string
		amount     int64
		wantStatus int
	}{
		{name: "success", amount: 100, wantStatus: http.StatusOK},
		{name: "vendor timeout stays pending", amount: 200, wantStatus: http.StatusAccepted},
		{name: "insufficient balance", amount: 300, wantStatus: http.StatusPaymentRequired},
		{name: "vendor rejected", amount: 400, wantStatus: http.StatusBadGateway},
	}
	for _, tt := range cases {
		s.Run(tt.name, func() {
			res := s.request(http.MethodPost, AirtimeRoute, token, map[string]any{
				"provider": domain.ProviderMTN,
				"amount":   tt.amount,
				"phone":    "08031234567",
			})
			s.Equal(tt.wantStatus, res.StatusCode)
		})
	}
}

func (s *HandlerTestSuite) TestAirtimeResponses() {
	token := s.userToken(1, domain.RoleUser)
	s.settings.EXPECT().Get(gomock.Any()).Return(&domain.Settings{}, nil).AnyTimes()

	failed := &domain.Transaction{ID: 12, Reference: "100000012", Status: domain.TransactionStatusFailed}
	s.purchases.EXPECT().
		BuyAirtime(gomock.Any(), gomock.Any()).
		Return(nil, domain.NewVendorRejectedError(failed, "invalid number")).Times(1)

	res := s.request(http.MethodPost, AirtimeRoute, token, map[string]any{
		"provider": domain.ProviderMTN,
		"amount":   50,
		"phone":    "08031234567",
	})
	s.Require().Equal(http.StatusBadGateway, res.StatusCode)

	var body struct {
		Error       string             `json:"error"`
		Reason      string             `json:"reason"`
		Transaction domain.Transaction `json:"transaction"`
	}
	s.decode(res, &body)
	s.Equal("invalid number", body.Reason)
	s.Equal("100000012", body.Transaction.Reference)
	s.Contains(body.Error, "refunded")
}

func (s *HandlerTestSuite) TestAirtimeSettlementConflict() {
	token := s.userToken(1, domain.RoleUser)
	s.settings.EXPECT().Get(gomock.Any()).Return(&domain.Settings{}, nil).AnyTimes()

	failed := &domain.Transaction{ID: 13, Reference: "100000013", Status: domain.TransactionStatusFailed}
	s.purchases.EXPECT().
		BuyAirtime(gomock.Any(), gomock.Any()).
		Return(failed, fmt.Errorf("buying airtime: %w", domain.ErrSettlementConflict)).Times(1)

	res := s.request(http.MethodPost, AirtimeRoute, token, map[string]any{
		"provider": domain.ProviderMTN,
		"amount":   100,
		"phone":    "08031234567",
	})
	s.Require().Equal(http.StatusConflict, res.StatusCode)

	var body map[string]string
	s.decode(res, &body)
	s.Equal(domain.ErrSettlementConflict.Error(), body["error"])
}

func (s *HandlerTestSuite) TestPurchaseGuards() {
	s.purchases.EXPECT().BuyAirtime(gomock.Any(), gomock.Any()).Times(0)

	payload := map[string]any{"provider": domain.ProviderMTN, "amount": 100, "phone": "08031234567"}

	s.Run("anonymous", func() {
		res := s.request(http.MethodPost, AirtimeRoute, "", payload)
		s.Equal(http.StatusUnauthorized, res.StatusCode)
	})

	s.Run("staff token on user route", func() {
		res := s.request(http.MethodPost, AirtimeRoute, s.staffToken(2, domain.PermViewUsers), payload)
		s.Equal(http.StatusForbidden, res.StatusCode)
	})

	s.Run("invalid payload", func() {
		s.settings.EXPECT().Get(gomock.Any()).Return(&domain.Settings{}, nil).Times(1)
		res := s.request(http.MethodPost, AirtimeRoute, s.userToken(1, domain.RoleUser), map[string]any{
			"provider": "VODAFONE", "amount": 100, "phone": "08031234567",
		})
		s.Equal(http.StatusUnprocessableEntity, res.StatusCode)
	})

	s.Run("maintenance", func() {
		s.settings.EXPECT().Get(gomock.Any()).Return(&domain.Settings{MaintenanceMode: true}, nil).Times(1)
		res := s.request(http.MethodPost, AirtimeRoute, s.userToken(1, domain.RoleUser), payload)
		s.Equal(http.StatusServiceUnavailable, res.StatusCode)
	})
}

func (s *HandlerTestSuite) TestBills() {
	s.settings.EXPECT().Get(gomock.Any()).Return(&domain.Settings{}, nil).AnyTimes()
	s.purchases.EXPECT().
		PayBill(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ any, args service.BillArgs) (*domain.Transaction, error) {
			s.Equal(domain.ProviderIKEDC, args.Provider)
			s.Equal(domain.TransactionElectricity, args.Type)
			return &domain.Transaction{ID: 20, Type: args.Type}, nil
		}).Times(1)

	res := s.request(http.MethodPost, BillsRoute, s.userToken(1, domain.RoleUser), map[string]any{
		"type":     domain.TransactionElectricity,
		"provider": "ikedc",
		"number":   "45123456789",
		"amount":   1000,
	})
	s.Equal(http.StatusOK, res.StatusCode)
}

func (s *HandlerTestSuite) TestNetwork() {
	res := s.request(http.MethodGet, NetworkRoute+"?phone=08031234567", "", nil)
	s.Require().Equal(http.StatusOK, res.StatusCode)

	var body map[string]string
	s.decode(res, &body)
	s.Equal(domain.ProviderMTN, body["network"])

	res = s.request(http.MethodGet, NetworkRoute, "", nil)
	s.Equal(http.StatusBadRequest, res.StatusCode)
}
