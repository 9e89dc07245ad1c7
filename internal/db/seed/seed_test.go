package seed

import (
	"context"
	"testing"

	"github.com/fsdevblog/jadanpay/internal/domain"
	"github.com/fsdevblog/jadanpay/internal/repository/repoargs"
	"github.com/fsdevblog/jadanpay/pkg/uow"
	uowmocks "github.com/fsdevblog/jadanpay/pkg/uow/mocks"
	"github.com/golang/mock/gomock"
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadEmbedded(t *testing.T) {
	data, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, "JadanPay", data.Settings.AppName)
	assert.Equal(t, domain.VendorBilalSada, data.Settings.ActiveAPIVendor)
	assert.True(t, data.Settings.ReferralReward.Equal(decimal.NewFromInt(100)))
	assert.True(t, data.Settings.ReferralMinWithdrawal.Equal(decimal.NewFromInt(500)))
	assert.True(t, data.Settings.ProviderStatus[domain.Provider9Mobile])
	assert.Equal(t, 90, data.Settings.ProviderStats[domain.Provider9Mobile])
	assert.Equal(t, "0123456789", data.Settings.AccountNumber)

	require.Len(t, data.Bundles, 18)
	assert.Equal(t, "1001", data.Bundles[0].PlanID)
	assert.True(t, data.Bundles[0].Price.Equal(decimal.NewFromInt(1000)))
	assert.False(t, data.Bundles[1].IsAvailable)

	var cable int
	for _, b := range data.Bundles {
		if b.Type == domain.PlanCable {
			cable++
			assert.True(t, domain.IsBillProvider(domain.TransactionCable, b.Provider), b.Name)
		}
	}
	assert.Equal(t, 9, cable)

	require.Len(t, data.Users, 3)
	assert.Equal(t, domain.RoleAdmin, data.Users[2].Role)
	assert.NotEmpty(t, data.Roles)
}

func TestParseRejectsUnknownPermission(t *testing.T) {
	_, err := Parse([]byte("roles:\n  - { name: Bad, permissions: [fly] }\n"))
	require.ErrorIs(t, err, domain.ErrUnknownPermission)
}

type fakeRepos struct {
	settings   *domain.Settings
	bundles    []domain.Bundle
	users      []repoargs.CreateUser
	roles      []domain.Role
	userCount  int64
	balanceFor []int64
}

func (f *fakeRepos) Get(context.Context) (*domain.Settings, error) {
	if f.settings == nil {
		return nil, domain.ErrRecordNotFound
	}
	return f.settings, nil
}

func (f *fakeRepos) Save(_ context.Context, s domain.Settings) error {
	f.settings = &s
	return nil
}

func (f *fakeRepos) Count(context.Context) (int64, error) {
	return int64(len(f.bundles)), nil
}

func (f *fakeRepos) ListRoles(context.Context) ([]domain.Role, error) {
	return f.roles, nil
}

func (f *fakeRepos) CreateRole(_ context.Context, name string, permissions []string) (*domain.Role, error) {
	role := domain.Role{ID: int64(len(f.roles) + 1), Name: name, Permissions: permissions}
	f.roles = append(f.roles, role)
	return &role, nil
}

type fakeBundles struct{ *fakeRepos }

func (f fakeBundles) Save(_ context.Context, b domain.Bundle) (*domain.Bundle, error) {
	f.bundles = append(f.bundles, b)
	return &b, nil
}

type fakeUsers struct{ *fakeRepos }

func (f fakeUsers) Count(context.Context) (int64, int64, error) {
	return f.userCount, f.userCount, nil
}

func (f fakeUsers) CreateUser(_ context.Context, args repoargs.CreateUser) (*domain.User, error) {
	f.users = append(f.users, args)
	return &domain.User{ID: int64(len(f.users))}, nil
}

func (f fakeUsers) ApplyBalanceChange(_ context.Context, id int64, _ repoargs.BalanceChange) (*domain.User, error) {
	f.balanceFor = append(f.balanceFor, id)
	return &domain.User{ID: id}, nil
}

type fakeTX struct{ repos *fakeRepos }

func (f fakeTX) Get(name uow.RepositoryName) (uow.Repository, error) {
	switch repoargs.RepositoryName(name) {
	case repoargs.BundleRepoName:
		return fakeBundles{f.repos}, nil
	case repoargs.UserRepoName:
		return fakeUsers{f.repos}, nil
	default:
		return f.repos, nil
	}
}

func TestRunSeedsEmptyStore(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockUOW := uowmocks.NewMockUOW(ctrl)
	repos := &fakeRepos{}
	mockUOW.EXPECT().Do(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, fn func(context.Context, uow.TX) error) error {
			return fn(ctx, fakeTX{repos: repos})
		})

	data, err := Load("")
	require.NoError(t, err)
	require.NoError(t, Run(t.Context(), mockUOW, data, logrus.NewEntry(logrus.New())))

	require.NotNil(t, repos.settings)
	assert.Equal(t, "JadanPay", repos.settings.AppName)
	assert.Len(t, repos.bundles, len(data.Bundles))
	assert.Len(t, repos.users, len(data.Users))
	// у админа нулевые балансы, ему пополнение не нужно.
	assert.Equal(t, []int64{1, 2}, repos.balanceFor)
	assert.Len(t, repos.roles, len(data.Roles))
}

func TestRunKeepsExistingData(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockUOW := uowmocks.NewMockUOW(ctrl)
	repos := &fakeRepos{
		settings:  &domain.Settings{AppName: "Custom"},
		bundles:   []domain.Bundle{{ID: 1}},
		roles:     []domain.Role{{ID: 1, Name: "Existing"}},
		userCount: 1,
	}
	mockUOW.EXPECT().Do(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, fn func(context.Context, uow.TX) error) error {
			return fn(ctx, fakeTX{repos: repos})
		})

	data, err := Load("")
	require.NoError(t, err)
	require.NoError(t, Run(t.Context(), mockUOW, data, logrus.NewEntry(logrus.New())))

	assert.Equal(t, "Custom", repos.settings.AppName)
	assert.Len(t, repos.bundles, 1)
	assert.Empty(t, repos.users)
	assert.Len(t, repos.roles, 1)
}
