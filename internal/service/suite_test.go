package service

import (
	"context"

	"github.com/fsdevblog/jadanpay/internal/domain"
	"github.com/fsdevblog/jadanpay/internal/repository/repoargs"
	"github.com/fsdevblog/jadanpay/internal/service/mocks"
	"github.com/fsdevblog/jadanpay/pkg/uow"
	uowmocks "github.com/fsdevblog/jadanpay/pkg/uow/mocks"
	"github.com/golang/mock/gomock"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
)

// serviceSuite общая подготовка моков uow и репозиториев для тестов сервисов.
type serviceSuite struct {
	suite.Suite
	mockCtrl *gomock.Controller
	mockUOW  *uowmocks.MockUOW
	mockTX   *uowmocks.MockTX

	mockUserRepo          *mocks.MockUserRepository
	mockTransactionRepo   *mocks.MockTransactionRepository
	mockBundleRepo        *mocks.MockBundleRepository
	mockTicketRepo        *mocks.MockTicketRepository
	mockStaffRepo         *mocks.MockStaffRepository
	mockCommunicationRepo *mocks.MockCommunicationRepository
	mockNotificationRepo  *mocks.MockNotificationRepository
	mockSettingsRepo      *mocks.MockSettingsRepository
	mockBackupRepo        *mocks.MockBackupRepository
	mockSettings          *mocks.MockSettingsReader
	mockPsswd             *mocks.MockPasswordHasher
}

func (s *serviceSuite) SetupTest() {
	s.mockCtrl = gomock.NewController(s.T())
	s.mockUOW = uowmocks.NewMockUOW(s.mockCtrl)
	s.mockTX = uowmocks.NewMockTX(s.mockCtrl)

	s.mockUserRepo = mocks.NewMockUserRepository(s.mockCtrl)
	s.mockTransactionRepo = mocks.NewMockTransactionRepository(s.mockCtrl)
	s.mockBundleRepo = mocks.NewMockBundleRepository(s.mockCtrl)
	s.mockTicketRepo = mocks.NewMockTicketRepository(s.mockCtrl)
	s.mockStaffRepo = mocks.NewMockStaffRepository(s.mockCtrl)
	s.mockCommunicationRepo = mocks.NewMockCommunicationRepository(s.mockCtrl)
	s.mockNotificationRepo = mocks.NewMockNotificationRepository(s.mockCtrl)
	s.mockSettingsRepo = mocks.NewMockSettingsRepository(s.mockCtrl)
	s.mockBackupRepo = mocks.NewMockBackupRepository(s.mockCtrl)
	s.mockSettings = mocks.NewMockSettingsReader(s.mockCtrl)
	s.mockPsswd = mocks.NewMockPasswordHasher(s.mockCtrl)

	repos := map[repoargs.RepositoryName]uow.Repository{
		repoargs.UserRepoName:          s.mockUserRepo,
		repoargs.TransactionRepoName:   s.mockTransactionRepo,
		repoargs.BundleRepoName:        s.mockBundleRepo,
		repoargs.TicketRepoName:        s.mockTicketRepo,
		repoargs.StaffRepoName:         s.mockStaffRepo,
		repoargs.CommunicationRepoName: s.mockCommunicationRepo,
		repoargs.NotificationRepoName:  s.mockNotificationRepo,
		repoargs.SettingsRepoName:      s.mockSettingsRepo,
		repoargs.BackupRepoName:        s.mockBackupRepo,
	}
	// Мок получения репозиториев из uow и из транзакции.
	for name, repo := range repos {
		s.mockUOW.EXPECT().GetRepository(uow.RepositoryName(name)).Return(repo, nil).AnyTimes()
		s.mockTX.EXPECT().Get(uow.RepositoryName(name)).Return(repo, nil).AnyTimes()
	}

	// Мок uow. Функция выполняется сразу с мок транзакцией.
	s.mockUOW.EXPECT().
		Do(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, fn func(context.Context, uow.TX) error) error {
			return fn(ctx, s.mockTX)
		}).AnyTimes()
}

// useSettings мок текущих настроек.
func (s *serviceSuite) useSettings(settings domain.Settings) {
	s.mockSettings.EXPECT().Get(gomock.Any()).DoAndReturn(func(context.Context) (*domain.Settings, error) {
		c := cloneSettings(settings)
		return &c, nil
	}).AnyTimes()
}

func testSettings() domain.Settings {
	return domain.Settings{
		AppName:               "JadanPay",
		ActiveAPIVendor:       domain.VendorBilalSada,
		APIKeys:               map[domain.APIVendor]string{domain.VendorBilalSada: "key"},
		ProviderStatus:        map[string]bool{domain.ProviderMTN: true, domain.ProviderGLO: false},
		ProviderStats:         map[string]int{domain.ProviderMTN: 98},
		EnableReferral:        true,
		ReferralReward:        decimal.NewFromInt(100),
		ReferralMinWithdrawal: decimal.NewFromInt(500),
		EnablePaystack:        true,
		PaystackSecretKey:     "sk_test",
	}
}

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}
