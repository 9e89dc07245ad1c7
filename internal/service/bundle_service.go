package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/fsdevblog/jadanpay/internal/domain"
	"github.com/fsdevblog/jadanpay/internal/repository/repoargs"
	"github.com/fsdevblog/jadanpay/pkg/uow"
)

// BundleService каталог тарифов: пакеты данных и подписки ТВ.
type BundleService struct {
	bundleRepo BundleRepository
}

func NewBundleService(u uow.UOW) (*BundleService, error) {
	repo, err := uow.GetRepositoryAs[BundleRepository](u, uow.RepositoryName(repoargs.BundleRepoName))
	if err != nil {
		return nil, err //nolint:wrapcheck
	}
	return &BundleService{bundleRepo: repo}, nil
}

// List тарифы оператора provider. Пустой provider возвращает весь каталог, onlyAvailable скрывает выключенные.
func (b *BundleService) List(ctx context.Context, provider string, onlyAvailable bool) ([]domain.Bundle, error) {
	list, err := b.bundleRepo.List(ctx, strings.ToUpper(provider), onlyAvailable)
	if err != nil {
		return nil, err //nolint:wrapcheck
	}
	return list, nil
}

// Save создает тариф, если ID пустой, иначе обновляет существующий.
func (b *BundleService) Save(ctx context.Context, bundle domain.Bundle) (*domain.Bundle, error) {
	bundle.Provider = strings.ToUpper(bundle.Provider)
	if !domain.IsNetworkProvider(bundle.Provider) && !domain.IsBillProvider(domain.TransactionCable, bundle.Provider) {
		return nil, fmt.Errorf("saving bundle: %w", domain.ErrUnknownProvider)
	}
	if !bundle.Price.IsPositive() || bundle.CostPrice.IsNegative() {
		return nil, fmt.Errorf("saving bundle: %w", domain.ErrInvalidAmount)
	}
	saved, err := b.bundleRepo.Save(ctx, bundle)
	if err != nil {
		return nil, fmt.Errorf("saving bundle: %w", err)
	}
	return saved, nil
}

func (b *BundleService) Delete(ctx context.Context, id int64) error {
	if err := b.bundleRepo.Delete(ctx, id); err != nil {
		return fmt.Errorf("deleting bundle %d: %w", id, err)
	}
	return nil
}
