package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"maps"
	"sync"

	"github.com/fsdevblog/jadanpay/internal/domain"
	"github.com/fsdevblog/jadanpay/internal/repository/repoargs"
	"github.com/fsdevblog/jadanpay/pkg/uow"
)

var ErrInvalidSettings = errors.New("invalid settings")

// SettingsService хранит глобальные настройки. Сохраненный документ накладывается поверх настроек по умолчанию,
// результат кешируется до следующего изменения.
type SettingsService struct {
	repo     SettingsRepository
	defaults domain.Settings

	mu     sync.RWMutex
	cached *domain.Settings
}

func NewSettingsService(u uow.UOW, defaults domain.Settings) (*SettingsService, error) {
	repo, err := uow.GetRepositoryAs[SettingsRepository](u, uow.RepositoryName(repoargs.SettingsRepoName))
	if err != nil {
		return nil, err //nolint:wrapcheck
	}
	return &SettingsService{repo: repo, defaults: defaults}, nil
}

// Get возвращает копию текущих настроек.
func (s *SettingsService) Get(ctx context.Context) (*domain.Settings, error) {
	s.mu.RLock()
	cached := s.cached
	s.mu.RUnlock()
	if cached != nil {
		c := cloneSettings(*cached)
		return &c, nil
	}

	current, err := s.load(ctx)
	if err != nil {
		return nil, fmt.Errorf("getting settings: %w", err)
	}

	s.mu.Lock()
	s.cached = current
	s.mu.Unlock()

	c := cloneSettings(*current)
	return &c, nil
}

// Public настройки без секретов.
func (s *SettingsService) Public(ctx context.Context) (*domain.Settings, error) {
	current, err := s.Get(ctx)
	if err != nil {
		return nil, err
	}
	public := current.Public()
	return &public, nil
}

// Update накладывает частичный JSON документ patch поверх текущих настроек. Карты (apiKeys, providerStatus,
// providerStats) и вложенные объекты объединяются по ключам.
func (s *SettingsService) Update(ctx context.Context, patch json.RawMessage) (*domain.Settings, error) {
	current, err := s.Get(ctx)
	if err != nil {
		return nil, fmt.Errorf("updating settings: %w", err)
	}

	merged, err := mergeSettings(*current, patch)
	if err != nil {
		return nil, fmt.Errorf("updating settings: %w", err)
	}
	if err = validateSettings(merged); err != nil {
		return nil, fmt.Errorf("updating settings: %w", err)
	}

	if err = s.repo.Save(ctx, *merged); err != nil {
		return nil, fmt.Errorf("updating settings: %w", err)
	}

	s.mu.Lock()
	s.cached = merged
	s.mu.Unlock()

	c := cloneSettings(*merged)
	return &c, nil
}

// Invalidate сбрасывает кеш. Вызывается после восстановления из резервной копии.
func (s *SettingsService) Invalidate() {
	s.mu.Lock()
	s.cached = nil
	s.mu.Unlock()
}

func (s *SettingsService) load(ctx context.Context) (*domain.Settings, error) {
	stored, err := s.repo.Get(ctx)
	if err != nil {
		if errors.Is(err, domain.ErrRecordNotFound) {
			d := cloneSettings(s.defaults)
			return &d, nil
		}
		return nil, err //nolint:wrapcheck
	}
	raw, err := json.Marshal(stored)
	if err != nil {
		return nil, fmt.Errorf("encoding stored settings: %w", err)
	}
	return mergeSettings(s.defaults, raw)
}

func mergeSettings(base domain.Settings, patch json.RawMessage) (*domain.Settings, error) {
	merged := cloneSettings(base)
	if len(patch) == 0 {
		return &merged, nil
	}
	if err := json.Unmarshal(patch, &merged); err != nil {
		return nil, fmt.Errorf("%w: %s", ErrInvalidSettings, err.Error())
	}
	if merged.APIKeys == nil {
		merged.APIKeys = maps.Clone(base.APIKeys)
	}
	if merged.ProviderStatus == nil {
		merged.ProviderStatus = maps.Clone(base.ProviderStatus)
	}
	if merged.ProviderStats == nil {
		merged.ProviderStats = maps.Clone(base.ProviderStats)
	}
	return &merged, nil
}

func validateSettings(s *domain.Settings) error {
	switch s.ActiveAPIVendor {
	case domain.VendorBilalSada, domain.VendorMaskawa, domain.VendorAlrahuz,
		domain.VendorAbbaPhantami, domain.VendorSimHost:
	default:
		return fmt.Errorf("%w: unknown api vendor %q", ErrInvalidSettings, s.ActiveAPIVendor)
	}
	if s.ReferralReward.IsNegative() || s.ReferralMinWithdrawal.IsNegative() {
		return fmt.Errorf("%w: referral amounts must not be negative", ErrInvalidSettings)
	}
	for provider, stat := range s.ProviderStats {
		if stat < 0 || stat > 100 {
			return fmt.Errorf("%w: provider stat of %s must be within 0..100", ErrInvalidSettings, provider)
		}
	}
	return nil
}

// cloneSettings копия настроек с собственными картами.
func cloneSettings(s domain.Settings) domain.Settings {
	s.APIKeys = maps.Clone(s.APIKeys)
	s.ProviderStatus = maps.Clone(s.ProviderStatus)
	s.ProviderStats = maps.Clone(s.ProviderStats)
	return s
}
