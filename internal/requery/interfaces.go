package requery

//go:generate mockgen -source=interfaces.go -destination=mocks/mocks.go -package=mocks

import (
	"context"

	"github.com/fsdevblog/jadanpay/internal/domain"
	"github.com/fsdevblog/jadanpay/internal/service"
	"github.com/fsdevblog/jadanpay/internal/vtu"
)

type Servicer interface {
	PendingPurchases(ctx context.Context, limit uint) ([]domain.Transaction, error)
	Requery(ctx context.Context, reference string) (*vtu.Result, error)
	ResolvePending(ctx context.Context, results []service.RequeryResult) error
}
