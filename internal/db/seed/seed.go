// Package seed наполняет пустую базу начальными данными: настройками по умолчанию, тарифами, демо юзерами и
// ролями сотрудников.
package seed

import (
	"context"
	_ "embed" // seed.yaml
	"errors"
	"fmt"
	"os"

	"github.com/fsdevblog/jadanpay/internal/domain"
	"github.com/fsdevblog/jadanpay/internal/repository/repoargs"
	"github.com/fsdevblog/jadanpay/pkg/uow"
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"
)

//go:embed seed.yaml
var embedded []byte

type Bundle struct {
	PlanID      string          `yaml:"planId"`
	Provider    string          `yaml:"provider"`
	Type        domain.PlanType `yaml:"type"`
	Name        string          `yaml:"name"`
	Price       decimal.Decimal `yaml:"price"`
	CostPrice   decimal.Decimal `yaml:"costPrice"`
	DataAmount  string          `yaml:"dataAmount"`
	Validity    string          `yaml:"validity"`
	IsBestValue bool            `yaml:"isBestValue"`
	IsAvailable bool            `yaml:"isAvailable"`
}

type User struct {
	Name         string          `yaml:"name"`
	Email        string          `yaml:"email"`
	Phone        string          `yaml:"phone"`
	Role         domain.UserRole `yaml:"role"`
	WalletNumber string          `yaml:"walletNumber"`
	ReferralCode string          `yaml:"referralCode"`
	Balance      decimal.Decimal `yaml:"balance"`
	Savings      decimal.Decimal `yaml:"savings"`
	IPAddress    string          `yaml:"ipAddress"`
	OS           string          `yaml:"os"`
}

type Role struct {
	Name        string   `yaml:"name"`
	Permissions []string `yaml:"permissions"`
}

// Data содержимое файла начальных данных.
type Data struct {
	Settings domain.Settings `yaml:"settings"`
	Bundles  []Bundle        `yaml:"bundles"`
	Users    []User          `yaml:"users"`
	Roles    []Role          `yaml:"roles"`
}

// Load читает начальные данные из файла path. Пустой path означает встроенный файл.
func Load(path string) (*Data, error) {
	raw := embedded
	if path != "" {
		var err error
		if raw, err = os.ReadFile(path); err != nil {
			return nil, fmt.Errorf("reading seed file: %w", err)
		}
	}
	return Parse(raw)
}

func Parse(raw []byte) (*Data, error) {
	var data Data
	if err := yaml.Unmarshal(raw, &data); err != nil {
		return nil, fmt.Errorf("parsing seed: %w", err)
	}
	for _, role := range data.Roles {
		for _, p := range role.Permissions {
			if !domain.IsKnownPermission(p) {
				return nil, fmt.Errorf("parsing seed: role %s: %w `%s`", role.Name, domain.ErrUnknownPermission, p)
			}
		}
	}
	return &data, nil
}

type settingsRepository interface {
	Get(ctx context.Context) (*domain.Settings, error)
	Save(ctx context.Context, settings domain.Settings) error
}

type bundleRepository interface {
	Count(ctx context.Context) (int64, error)
	Save(ctx context.Context, bundle domain.Bundle) (*domain.Bundle, error)
}

type userRepository interface {
	Count(ctx context.Context) (total int64, active int64, err error)
	CreateUser(ctx context.Context, args repoargs.CreateUser) (*domain.User, error)
	ApplyBalanceChange(ctx context.Context, id int64, change repoargs.BalanceChange) (*domain.User, error)
}

type roleRepository interface {
	ListRoles(ctx context.Context) ([]domain.Role, error)
	CreateRole(ctx context.Context, name string, permissions []string) (*domain.Role, error)
}

// Run записывает начальные данные в пустые таблицы одной транзакцией. Непустые таблицы не трогаются.
func Run(ctx context.Context, u uow.UOW, data *Data, l *logrus.Entry) error {
	err := u.Do(ctx, func(c context.Context, tx uow.TX) error {
		if err := seedSettings(c, tx, data.Settings); err != nil {
			return err
		}
		if err := seedBundles(c, tx, data.Bundles, l); err != nil {
			return err
		}
		if err := seedUsers(c, tx, data.Users, l); err != nil {
			return err
		}
		return seedRoles(c, tx, data.Roles, l)
	})
	if err != nil {
		return fmt.Errorf("seeding: %w", err)
	}
	return nil
}

func seedSettings(ctx context.Context, tx uow.TX, defaults domain.Settings) error {
	repo, err := uow.GetAs[settingsRepository](tx, uow.RepositoryName(repoargs.SettingsRepoName))
	if err != nil {
		return err //nolint:wrapcheck
	}
	_, err = repo.Get(ctx)
	if err == nil {
		return nil
	}
	if !errors.Is(err, domain.ErrRecordNotFound) {
		return err //nolint:wrapcheck
	}
	return repo.Save(ctx, defaults) //nolint:wrapcheck
}

func seedBundles(ctx context.Context, tx uow.TX, bundles []Bundle, l *logrus.Entry) error {
	repo, err := uow.GetAs[bundleRepository](tx, uow.RepositoryName(repoargs.BundleRepoName))
	if err != nil {
		return err //nolint:wrapcheck
	}
	count, err := repo.Count(ctx)
	if err != nil || count > 0 {
		return err //nolint:wrapcheck
	}
	for _, b := range bundles {
		_, saveErr := repo.Save(ctx, domain.Bundle{
			PlanID:      b.PlanID,
			Provider:    b.Provider,
			Type:        b.Type,
			Name:        b.Name,
			Price:       b.Price,
			CostPrice:   b.CostPrice,
			DataAmount:  b.DataAmount,
			Validity:    b.Validity,
			IsBestValue: b.IsBestValue,
			IsAvailable: b.IsAvailable,
		})
		if saveErr != nil {
			return saveErr //nolint:wrapcheck
		}
	}
	l.WithField("count", len(bundles)).Info("bundles seeded")
	return nil
}

func seedUsers(ctx context.Context, tx uow.TX, users []User, l *logrus.Entry) error {
	repo, err := uow.GetAs[userRepository](tx, uow.RepositoryName(repoargs.UserRepoName))
	if err != nil {
		return err //nolint:wrapcheck
	}
	total, _, err := repo.Count(ctx)
	if err != nil || total > 0 {
		return err //nolint:wrapcheck
	}
	for _, su := range users {
		user, createErr := repo.CreateUser(ctx, repoargs.CreateUser{
			Name:         su.Name,
			Email:        su.Email,
			Phone:        su.Phone,
			Role:         su.Role,
			WalletNumber: su.WalletNumber,
			ReferralCode: su.ReferralCode,
			IPAddress:    su.IPAddress,
			OS:           su.OS,
		})
		if createErr != nil {
			return createErr //nolint:wrapcheck
		}
		if su.Balance.IsZero() && su.Savings.IsZero() {
			continue
		}
		_, changeErr := repo.ApplyBalanceChange(ctx, user.ID, repoargs.BalanceChange{
			Balance: su.Balance,
			Savings: su.Savings,
		})
		if changeErr != nil {
			return changeErr //nolint:wrapcheck
		}
	}
	l.WithField("count", len(users)).Info("users seeded")
	return nil
}

func seedRoles(ctx context.Context, tx uow.TX, roles []Role, l *logrus.Entry) error {
	repo, err := uow.GetAs[roleRepository](tx, uow.RepositoryName(repoargs.StaffRepoName))
	if err != nil {
		return err //nolint:wrapcheck
	}
	existing, err := repo.ListRoles(ctx)
	if err != nil || len(existing) > 0 {
		return err //nolint:wrapcheck
	}
	for _, r := range roles {
		if _, createErr := repo.CreateRole(ctx, r.Name, r.Permissions); createErr != nil {
			return createErr //nolint:wrapcheck
		}
	}
	l.WithField("count", len(roles)).Info("roles seeded")
	return nil
}
