package service

import (
	"github.com/fsdevblog/jadanpay/internal/repository/repoargs"
	"github.com/fsdevblog/jadanpay/pkg/uow"
)

// txRepos репозитории кошелька, работающие внутри одной транзакции uow.
type txRepos struct {
	users         UserRepository
	transactions  TransactionRepository
	notifications NotificationRepository
}

func walletRepos(tx uow.TX) (*txRepos, error) {
	users, err := uow.GetAs[UserRepository](tx, uow.RepositoryName(repoargs.UserRepoName))
	if err != nil {
		return nil, err //nolint:wrapcheck
	}
	transactions, err := uow.GetAs[TransactionRepository](tx, uow.RepositoryName(repoargs.TransactionRepoName))
	if err != nil {
		return nil, err //nolint:wrapcheck
	}
	notifications, err := uow.GetAs[NotificationRepository](tx, uow.RepositoryName(repoargs.NotificationRepoName))
	if err != nil {
		return nil, err //nolint:wrapcheck
	}
	return &txRepos{users: users, transactions: transactions, notifications: notifications}, nil
}
