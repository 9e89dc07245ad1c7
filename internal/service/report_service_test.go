package service

import (
	"testing"

	"github.com/fsdevblog/jadanpay/internal/domain"
	"github.com/fsdevblog/jadanpay/internal/repository/repoargs"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/suite"
)

type ReportServiceTestSuite struct {
	serviceSuite
	reportService *ReportService
}

func TestReportServiceSuite(t *testing.T) {
	suite.Run(t, new(ReportServiceTestSuite))
}

func (s *ReportServiceTestSuite) SetupTest() {
	s.serviceSuite.SetupTest()
	reportService, err := NewReportService(s.mockUOW)
	s.Require().NoError(err)
	s.reportService = reportService
}

func (s *ReportServiceTestSuite) TestStats() {
	s.mockTransactionRepo.EXPECT().List(gomock.Any(), repoargs.TransactionFilter{}).Return([]domain.Transaction{
		{Type: domain.TransactionAirtime, Provider: domain.ProviderMTN, Status: domain.TransactionStatusSuccess,
			Amount: dec("1000"), CostPrice: dec("980"), Profit: dec("20")},
		{Type: domain.TransactionData, Provider: domain.ProviderMTN, Status: domain.TransactionStatusSuccess,
			Amount: dec("300"), CostPrice: dec("250"), Profit: dec("50")},
		{Type: domain.TransactionAirtime, Provider: domain.ProviderGLO, Status: domain.TransactionStatusFailed,
			Amount: dec("500"), CostPrice: dec("490"), Profit: dec("10")},
		{Type: domain.TransactionWalletFund, Status: domain.TransactionStatusSuccess, Amount: dec("5000")},
		{Type: domain.TransactionAdminCredit, Status: domain.TransactionStatusSuccess, Amount: dec("200")},
		{Type: domain.TransactionReferralBonus, Status: domain.TransactionStatusSuccess, Amount: dec("100")},
	}, nil)
	s.mockUserRepo.EXPECT().Count(gomock.Any()).Return(int64(12), int64(10), nil)

	stats, err := s.reportService.Stats(s.T().Context())
	s.Require().NoError(err)
	s.True(stats.TotalRevenue.Equal(dec("1400")), stats.TotalRevenue.String())
	s.True(stats.TotalCost.Equal(dec("1230")))
	s.True(stats.TotalProfit.Equal(dec("70")))
	s.Equal(3, stats.TotalTransactions)
	s.Equal(int64(12), stats.TotalUsers)
	s.Equal(int64(10), stats.ActiveUsers)
	s.Equal(map[string]int{domain.ProviderMTN: 2, domain.ProviderGLO: 1}, stats.ProviderCounts)
	s.Equal(domain.ProviderMTN, stats.TopProvider)
}

func (s *ReportServiceTestSuite) TestStatsEmpty() {
	s.mockTransactionRepo.EXPECT().List(gomock.Any(), gomock.Any()).Return(nil, nil)
	s.mockUserRepo.EXPECT().Count(gomock.Any()).Return(int64(0), int64(0), nil)

	stats, err := s.reportService.Stats(s.T().Context())
	s.Require().NoError(err)
	s.True(stats.TotalRevenue.IsZero())
	s.Empty(stats.TopProvider)
}
