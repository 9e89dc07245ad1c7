package service

import (
	"fmt"
	"testing"

	"github.com/fsdevblog/jadanpay/internal/domain"
	"github.com/fsdevblog/jadanpay/internal/repository/repoargs"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/suite"
)

type WalletServiceTestSuite struct {
	serviceSuite
	walletService *WalletService
}

func TestWalletServiceSuite(t *testing.T) {
	suite.Run(t, new(WalletServiceTestSuite))
}

func (s *WalletServiceTestSuite) SetupTest() {
	s.serviceSuite.SetupTest()
	s.useSettings(testSettings())

	walletService, err := NewWalletService(s.mockUOW, s.mockSettings)
	s.Require().NoError(err)
	s.walletService = walletService
}

// echoTransaction мок создания транзакции, возвращающий переданные данные.
func (s *WalletServiceTestSuite) echoTransaction(check func(repoargs.CreateTransaction)) {
	s.mockTransactionRepo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ any, create repoargs.CreateTransaction) (*domain.Transaction, error) {
			check(create)
			return &domain.Transaction{
				ID:              1,
				UserID:          create.UserID,
				Type:            create.Type,
				Amount:          create.Amount,
				Status:          create.Status,
				Reference:       create.Reference,
				PreviousBalance: create.PreviousBalance,
				NewBalance:      create.NewBalance,
				PaymentMethod:   create.PaymentMethod,
			}, nil
		})
}

func (s *WalletServiceTestSuite) TestFundWallet() {
	s.mockUserRepo.EXPECT().FindByIDForUpdate(gomock.Any(), int64(1)).
		Return(&domain.User{ID: 1, Balance: dec("1000")}, nil)
	s.mockUserRepo.EXPECT().ApplyBalanceChange(gomock.Any(), int64(1), gomock.Any()).
		Return(&domain.User{ID: 1, Balance: dec("3500")}, nil)
	s.echoTransaction(func(create repoargs.CreateTransaction) {
		s.Equal(domain.TransactionWalletFund, create.Type)
		s.Equal(domain.TransactionStatusSuccess, create.Status)
		s.Equal(string(domain.GatewayPaystack), create.PaymentMethod)
	})

	tx, err := s.walletService.FundWallet(s.T().Context(), 1, dec("2500"), domain.GatewayPaystack)
	s.Require().NoError(err)
	s.True(tx.NewBalance.Equal(tx.PreviousBalance.Add(tx.Amount)))
}

func (s *WalletServiceTestSuite) TestFundWalletGuards() {
	_, err := s.walletService.FundWallet(s.T().Context(), 1, dec("0"), domain.GatewayPaystack)
	s.Require().ErrorIs(err, domain.ErrInvalidAmount)

	_, err = s.walletService.FundWallet(s.T().Context(), 1, dec("100"), domain.GatewayMonnify)
	s.Require().ErrorIs(err, domain.ErrGatewayDisabled)
}

func (s *WalletServiceTestSuite) TestSubmitManualFunding() {
	s.mockUserRepo.EXPECT().FindByID(gomock.Any(), int64(1)).Return(&domain.User{ID: 1, Balance: dec("50")}, nil)
	s.mockTransactionRepo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ any, create repoargs.CreateTransaction) (*domain.Transaction, error) {
			s.Equal(domain.TransactionStatusPending, create.Status)
			s.Equal(methodManualTransfer, create.PaymentMethod)
			s.Equal("https://proof", create.ProofURL)
			s.Regexp(`^MNL-\d{6}$`, create.Reference)
			return &domain.Transaction{ID: 9, Status: create.Status}, nil
		})

	tx, err := s.walletService.SubmitManualFunding(s.T().Context(), 1, dec("5000"), "https://proof")
	s.Require().NoError(err)
	s.Equal(domain.TransactionStatusPending, tx.Status)

	_, err = s.walletService.SubmitManualFunding(s.T().Context(), 1, dec("5000"), "")
	s.Require().ErrorIs(err, domain.ErrProofRequired)
}

func (s *WalletServiceTestSuite) TestApproveFunding() {
	pending := &domain.Transaction{ID: 5, UserID: 2, Type: domain.TransactionWalletFund,
		Status: domain.TransactionStatusPending, Amount: dec("1500")}

	s.mockTransactionRepo.EXPECT().FindByIDForUpdate(gomock.Any(), pending.ID).Return(pending, nil)
	s.mockUserRepo.EXPECT().ApplyBalanceChange(gomock.Any(), pending.UserID, gomock.Any()).
		Return(&domain.User{ID: 2, Balance: dec("4000")}, nil)
	s.mockTransactionRepo.EXPECT().UpdateStatus(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ any, upd repoargs.UpdateTransactionStatus) (*domain.Transaction, error) {
			s.Equal(domain.TransactionStatusSuccess, upd.Status)
			s.True(upd.PreviousBalance.Equal(dec("2500")))
			s.True(upd.NewBalance.Equal(dec("4000")))
			s.NotNil(upd.AdminActionAt)
			return &domain.Transaction{ID: 5, Status: upd.Status}, nil
		})
	s.mockNotificationRepo.EXPECT().Create(gomock.Any(), repoargs.CreateNotification{
		UserID:  2,
		Title:   "Payment Approved",
		Message: "Your manual funding of ₦1,500 has been approved.",
		Type:    domain.NotificationSuccess,
	}).Return(&domain.Notification{}, nil)

	tx, err := s.walletService.ApproveFunding(s.T().Context(), pending.ID)
	s.Require().NoError(err)
	s.Equal(domain.TransactionStatusSuccess, tx.Status)
}

func (s *WalletServiceTestSuite) TestApproveRejectsProcessed() {
	cases := []struct {
		name    string
		tx      *domain.Transaction
		wantErr error
	}{
		{
			name: "already approved",
			tx: &domain.Transaction{ID: 1, Type: domain.TransactionWalletFund,
				Status: domain.TransactionStatusSuccess},
			wantErr: domain.ErrTransactionNotPending,
		},
		{
			name:    "purchase",
			tx:      &domain.Transaction{ID: 2, Type: domain.TransactionAirtime, Status: domain.TransactionStatusPending},
			wantErr: domain.ErrTransactionNotFundable,
		},
	}
	for _, tc := range cases {
		s.Run(tc.name, func() {
			s.mockTransactionRepo.EXPECT().FindByIDForUpdate(gomock.Any(), tc.tx.ID).Return(tc.tx, nil).Times(2)
			_, err := s.walletService.ApproveFunding(s.T().Context(), tc.tx.ID)
			s.Require().ErrorIs(err, tc.wantErr)
			_, err = s.walletService.DeclineFunding(s.T().Context(), tc.tx.ID)
			s.Require().ErrorIs(err, tc.wantErr)
		})
	}
}

func (s *WalletServiceTestSuite) TestDeclineFunding() {
	pending := &domain.Transaction{ID: 6, UserID: 2, Type: domain.TransactionWalletFund,
		Status: domain.TransactionStatusPending, Amount: dec("20000")}

	s.mockTransactionRepo.EXPECT().FindByIDForUpdate(gomock.Any(), pending.ID).Return(pending, nil)
	s.mockUserRepo.EXPECT().ApplyBalanceChange(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)
	s.mockTransactionRepo.EXPECT().UpdateStatus(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ any, upd repoargs.UpdateTransactionStatus) (*domain.Transaction, error) {
			s.Equal(domain.TransactionStatusDeclined, upd.Status)
			s.Nil(upd.NewBalance)
			return &domain.Transaction{ID: 6, Status: upd.Status}, nil
		})
	s.mockNotificationRepo.EXPECT().Create(gomock.Any(), repoargs.CreateNotification{
		UserID:  2,
		Title:   "Payment Declined",
		Message: "Your manual funding request of ₦20,000 was declined.",
		Type:    domain.NotificationError,
	}).Return(&domain.Notification{}, nil)

	tx, err := s.walletService.DeclineFunding(s.T().Context(), pending.ID)
	s.Require().NoError(err)
	s.Equal(domain.TransactionStatusDeclined, tx.Status)
}

func (s *WalletServiceTestSuite) TestAdminAdjust() {
	s.Run("credit", func() {
		s.mockUserRepo.EXPECT().FindByIDForUpdate(gomock.Any(), int64(3)).
			Return(&domain.User{ID: 3, Balance: dec("100")}, nil)
		s.mockUserRepo.EXPECT().ApplyBalanceChange(gomock.Any(), int64(3), gomock.Any()).DoAndReturn(
			func(_ any, _ int64, change repoargs.BalanceChange) (*domain.User, error) {
				s.True(change.Balance.Equal(dec("400")))
				return &domain.User{ID: 3, Balance: dec("500")}, nil
			})
		s.echoTransaction(func(create repoargs.CreateTransaction) {
			s.Equal(domain.TransactionAdminCredit, create.Type)
			s.Equal(methodAdminAdjustment, create.PaymentMethod)
			s.Regexp(`^ADMIN-\d+-\d{4}$`, create.Reference)
		})
		tx, err := s.walletService.AdminAdjust(s.T().Context(), 3, dec("400"), domain.DirectionCredit)
		s.Require().NoError(err)
		s.True(tx.NewBalance.Equal(dec("500")))
	})

	s.Run("debit", func() {
		s.mockUserRepo.EXPECT().FindByIDForUpdate(gomock.Any(), int64(3)).
			Return(&domain.User{ID: 3, Balance: dec("500")}, nil)
		s.mockUserRepo.EXPECT().ApplyBalanceChange(gomock.Any(), int64(3), gomock.Any()).DoAndReturn(
			func(_ any, _ int64, change repoargs.BalanceChange) (*domain.User, error) {
				s.True(change.Balance.Equal(dec("-200")))
				return &domain.User{ID: 3, Balance: dec("300")}, nil
			})
		s.echoTransaction(func(create repoargs.CreateTransaction) {
			s.Equal(domain.TransactionAdminDebit, create.Type)
			s.True(create.Amount.Equal(dec("200")))
		})
		tx, err := s.walletService.AdminAdjust(s.T().Context(), 3, dec("200"), domain.DirectionDebit)
		s.Require().NoError(err)
		s.True(tx.PreviousBalance.Sub(tx.Amount).Equal(tx.NewBalance))
	})

	s.Run("duplicate reference is retried", func() {
		var references []string
		s.mockUserRepo.EXPECT().FindByIDForUpdate(gomock.Any(), int64(3)).
			Return(&domain.User{ID: 3, Balance: dec("100")}, nil).Times(2)
		s.mockUserRepo.EXPECT().ApplyBalanceChange(gomock.Any(), int64(3), gomock.Any()).
			Return(&domain.User{ID: 3, Balance: dec("200")}, nil).Times(2)
		s.mockTransactionRepo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ any, create repoargs.CreateTransaction) (*domain.Transaction, error) {
				references = append(references, create.Reference)
				return nil, fmt.Errorf("[repository/creating transaction] %w", domain.ErrDuplicateKey)
			})
		s.echoTransaction(func(create repoargs.CreateTransaction) {
			references = append(references, create.Reference)
		})

		tx, err := s.walletService.AdminAdjust(s.T().Context(), 3, dec("100"), domain.DirectionCredit)
		s.Require().NoError(err)
		s.Require().Len(references, 2)
		s.Equal(references[1], tx.Reference)
	})

	s.Run("duplicate reference gives up", func() {
		s.mockUserRepo.EXPECT().FindByIDForUpdate(gomock.Any(), int64(3)).
			Return(&domain.User{ID: 3, Balance: dec("100")}, nil).Times(referenceAttempts)
		s.mockUserRepo.EXPECT().ApplyBalanceChange(gomock.Any(), int64(3), gomock.Any()).
			Return(&domain.User{ID: 3, Balance: dec("200")}, nil).Times(referenceAttempts)
		s.mockTransactionRepo.EXPECT().Create(gomock.Any(), gomock.Any()).
			Return(nil, domain.ErrDuplicateKey).Times(referenceAttempts)

		_, err := s.walletService.AdminAdjust(s.T().Context(), 3, dec("100"), domain.DirectionCredit)
		s.Require().ErrorIs(err, domain.ErrDuplicateKey)
	})

	s.Run("debit over balance", func() {
		s.mockUserRepo.EXPECT().FindByIDForUpdate(gomock.Any(), int64(3)).
			Return(&domain.User{ID: 3, Balance: dec("50")}, nil)
		_, err := s.walletService.AdminAdjust(s.T().Context(), 3, dec("200"), domain.DirectionDebit)
		s.Require().ErrorIs(err, domain.ErrNotEnoughBalance)
	})
}

func (s *WalletServiceTestSuite) TestRedeemBonus() {
	s.Run("ok", func() {
		s.mockUserRepo.EXPECT().FindByIDForUpdate(gomock.Any(), int64(1)).
			Return(&domain.User{ID: 1, Balance: dec("100"), BonusBalance: dec("600")}, nil)
		s.mockUserRepo.EXPECT().MoveBonusToBalance(gomock.Any(), int64(1)).
			Return(&domain.User{ID: 1, Balance: dec("700")}, nil)
		s.echoTransaction(func(create repoargs.CreateTransaction) {
			s.Equal(methodReferralRedeem, create.PaymentMethod)
			s.Regexp(`^REDEEM-\d{5}$`, create.Reference)
			s.True(create.PreviousBalance.Equal(dec("100")))
			s.True(create.NewBalance.Equal(dec("700")))
		})
		user, err := s.walletService.RedeemBonus(s.T().Context(), 1)
		s.Require().NoError(err)
		s.True(user.BonusBalance.IsZero())
	})

	s.Run("no bonus", func() {
		s.mockUserRepo.EXPECT().FindByIDForUpdate(gomock.Any(), int64(1)).
			Return(&domain.User{ID: 1, BonusBalance: dec("0")}, nil)
		_, err := s.walletService.RedeemBonus(s.T().Context(), 1)
		s.Require().ErrorIs(err, domain.ErrNoBonus)
	})

	s.Run("below minimum", func() {
		s.mockUserRepo.EXPECT().FindByIDForUpdate(gomock.Any(), int64(1)).
			Return(&domain.User{ID: 1, BonusBalance: dec("200")}, nil)
		_, err := s.walletService.RedeemBonus(s.T().Context(), 1)
		var minErr *domain.MinimumRedeemError
		s.Require().ErrorAs(err, &minErr)
		s.Equal("minimum redeemable amount is ₦500", minErr.Error())
	})
}

func (s *WalletServiceTestSuite) TestTransactionOwnership() {
	s.mockTransactionRepo.EXPECT().FindByID(gomock.Any(), int64(7)).
		Return(&domain.Transaction{ID: 7, UserID: 1}, nil).Times(2)

	tx, err := s.walletService.Transaction(s.T().Context(), 1, 7)
	s.Require().NoError(err)
	s.Equal(int64(7), tx.ID)

	_, err = s.walletService.Transaction(s.T().Context(), 2, 7)
	s.Require().ErrorIs(err, domain.ErrRecordNotFound)
}
