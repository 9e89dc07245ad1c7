package api

import (
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/fsdevblog/jadanpay/internal/domain"
	"github.com/golang/mock/gomock"
	"github.com/shopspring/decimal"
)

func (s *HandlerTestSuite) TestFundWallet() {
	token := s.userToken(5, domain.RoleUser)

	s.wallet.EXPECT().
		FundWallet(gomock.Any(), int64(5), gomock.Any(), domain.GatewayPaystack).
		Return(&domain.Transaction{ID: 1, Type: domain.TransactionWalletFund}, nil).Times(1)
	s.wallet.EXPECT().
		FundWallet(gomock.Any(), int64(5), gomock.Any(), domain.GatewayMonnify).
		Return(nil, fmt.Errorf("funding wallet: %w", domain.ErrGatewayDisabled)).Times(1)

	cases := []struct {
		name       string
		gateway    string
		wantStatus int
	}{
		{name: "paystack", gateway: "PAYSTACK", wantStatus: http.StatusOK},
		{name: "disabled gateway", gateway: "MONNIFY", wantStatus: http.StatusUnprocessableEntity},
		{name: "unknown gateway", gateway: "PAYPAL", wantStatus: http.StatusUnprocessableEntity},
	}
	for _, tt := range cases {
		s.Run(tt.name, func() {
			res := s.request(http.MethodPost, WalletFundRoute, token, map[string]any{
				"amount":  5000,
				"gateway": tt.gateway,
			})
			s.Equal(tt.wantStatus, res.StatusCode)
		})
	}
}

func (s *HandlerTestSuite) TestManualFunding() {
	token := s.userToken(5, domain.RoleUser)
	s.wallet.EXPECT().
		SubmitManualFunding(gomock.Any(), int64(5), gomock.Any(), "https://img.example.com/proof.png").
		Return(&domain.Transaction{ID: 2, Status: domain.TransactionStatusPending}, nil).Times(1)

	res := s.request(http.MethodPost, WalletManualRoute, token, map[string]any{
		"amount":   2500,
		"proofUrl": "https://img.example.com/proof.png",
	})
	s.Equal(http.StatusAccepted, res.StatusCode)

	res = s.request(http.MethodPost, WalletManualRoute, token, map[string]any{"amount": 2500})
	s.Equal(http.StatusUnprocessableEntity, res.StatusCode)
}

func (s *HandlerTestSuite) TestRedeemBonus() {
	token := s.userToken(5, domain.RoleUser)
	s.wallet.EXPECT().
		RedeemBonus(gomock.Any(), int64(5)).
		Return(nil, domain.NewMinimumRedeemError(decimal.NewFromInt(100))).Times(1)

	res := s.request(http.MethodPost, BonusRedeemRoute, token, nil)
	s.Require().Equal(http.StatusUnprocessableEntity, res.StatusCode)

	var body map[string]string
	s.decode(res, &body)
	s.Contains(body["error"], "minimum redeemable amount")
}

func (s *HandlerTestSuite) TestTransactionsEmpty() {
	s.wallet.EXPECT().History(gomock.Any(), int64(5)).Return(nil, nil).Times(1)

	res := s.request(http.MethodGet, TransactionsRoute, s.userToken(5, domain.RoleUser), nil)
	s.Require().Equal(http.StatusOK, res.StatusCode)
	raw, err := io.ReadAll(res.Body)
	s.Require().NoError(err)
	s.JSONEq(`[]`, string(raw))
}

func (s *HandlerTestSuite) TestReceipt() {
	token := s.userToken(5, domain.RoleUser)
	tx := &domain.Transaction{
		ID:                9,
		CreatedAt:         time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC),
		UserID:            5,
		Type:              domain.TransactionAirtime,
		Provider:          domain.ProviderMTN,
		Amount:            decimal.NewFromInt(500),
		DestinationNumber: "08031234567",
		Status:            domain.TransactionStatusSuccess,
		Reference:         "123456789",
	}
	s.wallet.EXPECT().Transaction(gomock.Any(), int64(5), int64(9)).Return(tx, nil).Times(1)
	s.users.EXPECT().Get(gomock.Any(), int64(5)).Return(&domain.User{ID: 5, Name: "Musa"}, nil).Times(1)
	s.settings.EXPECT().Public(gomock.Any()).Return(&domain.Settings{AppName: "JadanPay"}, nil).Times(1)

	res := s.request(http.MethodGet, "/user/transactions/9/receipt", token, nil)
	s.Require().Equal(http.StatusOK, res.StatusCode)
	s.Equal("application/pdf", res.Header.Get("Content-Type"))
	s.Contains(res.Header.Get("Content-Disposition"), "receipt-123456789.pdf")

	raw, err := io.ReadAll(res.Body)
	s.Require().NoError(err)
	s.Equal("%PDF-", string(raw[:5]))

	s.Run("foreign transaction", func() {
		s.wallet.EXPECT().
			Transaction(gomock.Any(), int64(5), int64(10)).
			Return(nil, fmt.Errorf("finding transaction: %w", domain.ErrRecordNotFound)).Times(1)
		res := s.request(http.MethodGet, "/user/transactions/10/receipt", token, nil)
		s.Equal(http.StatusNotFound, res.StatusCode)
	})

	s.Run("bad id", func() {
		res := s.request(http.MethodGet, "/user/transactions/abc/receipt", token, nil)
		s.Equal(http.StatusBadRequest, res.StatusCode)
	})
}
