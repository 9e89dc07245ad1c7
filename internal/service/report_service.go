package service

import (
	"context"
	"fmt"

	"github.com/fsdevblog/jadanpay/internal/domain"
	"github.com/fsdevblog/jadanpay/internal/repository/repoargs"
	"github.com/fsdevblog/jadanpay/pkg/uow"
	"github.com/shopspring/decimal"
)

// Stats сводка для дашборда админки.
type Stats struct {
	TotalRevenue      decimal.Decimal `json:"totalRevenue"`
	TotalCost         decimal.Decimal `json:"totalCost"`
	TotalProfit       decimal.Decimal `json:"totalProfit"`
	TotalTransactions int             `json:"totalTransactions"`
	TotalUsers        int64           `json:"totalUsers"`
	ActiveUsers       int64           `json:"activeUsers"`
	ProviderCounts    map[string]int  `json:"providerCounts"`
	TopProvider       string          `json:"topProvider,omitempty"`
}

type ReportService struct {
	transactionRepo TransactionRepository
	userRepo        UserRepository
}

func NewReportService(u uow.UOW) (*ReportService, error) {
	txRepo, err := uow.GetRepositoryAs[TransactionRepository](u, uow.RepositoryName(repoargs.TransactionRepoName))
	if err != nil {
		return nil, err //nolint:wrapcheck
	}
	userRepo, err := uow.GetRepositoryAs[UserRepository](u, uow.RepositoryName(repoargs.UserRepoName))
	if err != nil {
		return nil, err //nolint:wrapcheck
	}
	return &ReportService{transactionRepo: txRepo, userRepo: userRepo}, nil
}

// Stats считает выручку по успешным транзакциям без пополнений и ручных корректировок.
// Счетчики операторов строятся по всем транзакциям.
func (r *ReportService) Stats(ctx context.Context) (*Stats, error) {
	list, err := r.transactionRepo.List(ctx, repoargs.TransactionFilter{})
	if err != nil {
		return nil, fmt.Errorf("stats: %w", err)
	}
	total, active, err := r.userRepo.Count(ctx)
	if err != nil {
		return nil, fmt.Errorf("stats: %w", err)
	}

	stats := Stats{
		TotalUsers:     total,
		ActiveUsers:    active,
		ProviderCounts: make(map[string]int),
	}
	for _, t := range list {
		if domain.IsNetworkProvider(t.Provider) {
			stats.ProviderCounts[t.Provider]++
		}
		if t.Status != domain.TransactionStatusSuccess || !t.Type.CountsAsRevenue() {
			continue
		}
		stats.TotalRevenue = stats.TotalRevenue.Add(t.Amount)
		stats.TotalCost = stats.TotalCost.Add(t.CostPrice)
		stats.TotalProfit = stats.TotalProfit.Add(t.Profit)
		stats.TotalTransactions++
	}

	var top int
	for _, p := range domain.NetworkProviders {
		if c := stats.ProviderCounts[p]; c > top {
			top = c
			stats.TopProvider = p
		}
	}
	return &stats, nil
}

// Ledger все транзакции, начиная с новых.
func (r *ReportService) Ledger(ctx context.Context) ([]domain.Transaction, error) {
	list, err := r.transactionRepo.List(ctx, repoargs.TransactionFilter{})
	if err != nil {
		return nil, fmt.Errorf("ledger: %w", err)
	}
	return list, nil
}
