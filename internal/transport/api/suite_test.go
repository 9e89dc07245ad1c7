package api

import (
	"encoding/json"
	"net/http"
	"os"
	"testing"
	"time"

	"github.com/fsdevblog/jadanpay/internal/domain"
	"github.com/fsdevblog/jadanpay/internal/logger"
	"github.com/fsdevblog/jadanpay/internal/service/tokens"
	"github.com/fsdevblog/jadanpay/internal/transport/api/mocks"
	"github.com/fsdevblog/jadanpay/internal/transport/api/testutils"
	"github.com/gin-gonic/gin"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/suite"
)

// HandlerTestSuite общий стенд для тестов обработчиков: роутер с моками всех сервисов.
type HandlerTestSuite struct {
	suite.Suite
	router    *gin.Engine
	jwtSecret []byte

	users         *mocks.MockUserServicer
	staff         *mocks.MockStaffServicer
	wallet        *mocks.MockWalletServicer
	purchases     *mocks.MockPurchaseServicer
	bundles       *mocks.MockBundleServicer
	support       *mocks.MockSupportServicer
	communication *mocks.MockCommunicationServicer
	notifications *mocks.MockNotificationServicer
	reports       *mocks.MockReportServicer
	settings      *mocks.MockSettingsServicer
	backup        *mocks.MockBackupServicer
}

func TestHandlerSuite(t *testing.T) {
	suite.Run(t, new(HandlerTestSuite))
}

func (s *HandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	ctrl := gomock.NewController(s.T())

	s.jwtSecret = []byte("super secret key")
	s.users = mocks.NewMockUserServicer(ctrl)
	s.staff = mocks.NewMockStaffServicer(ctrl)
	s.wallet = mocks.NewMockWalletServicer(ctrl)
	s.purchases = mocks.NewMockPurchaseServicer(ctrl)
	s.bundles = mocks.NewMockBundleServicer(ctrl)
	s.support = mocks.NewMockSupportServicer(ctrl)
	s.communication = mocks.NewMockCommunicationServicer(ctrl)
	s.notifications = mocks.NewMockNotificationServicer(ctrl)
	s.reports = mocks.NewMockReportServicer(ctrl)
	s.settings = mocks.NewMockSettingsServicer(ctrl)
	s.backup = mocks.NewMockBackupServicer(ctrl)

	router, err := New(RouterArgs{
		Logger:               logger.New(os.Stdout, "error"),
		UserService:          s.users,
		StaffService:         s.staff,
		WalletService:        s.wallet,
		PurchaseService:      s.purchases,
		BundleService:        s.bundles,
		SupportService:       s.support,
		CommunicationService: s.communication,
		NotificationService:  s.notifications,
		ReportService:        s.reports,
		SettingsService:      s.settings,
		BackupService:        s.backup,
		JWTSecretKey:         s.jwtSecret,
	})
	s.Require().NoError(err)
	s.router = router
}

func (s *HandlerTestSuite) userToken(id int64, role domain.UserRole) string {
	token, err := tokens.GenerateUserJWT(id, role, time.Hour, s.jwtSecret)
	s.Require().NoError(err)
	return token
}

func (s *HandlerTestSuite) staffToken(id int64, permissions ...string) string {
	token, err := tokens.GenerateStaffJWT(id, "support", permissions, time.Hour, s.jwtSecret)
	s.Require().NoError(err)
	return token
}

// request выполняет запрос к роутеру. Пустой token означает анонимный запрос, body сериализуется в JSON.
func (s *HandlerTestSuite) request(method, url, token string, body any) *http.Response {
	res, err := testutils.MakeRequest(testutils.RequestArgs{
		Router: s.router,
		Method: method,
		URL:    RouteGroup + url,
	}, testutils.WithJSON(body), testutils.WithBearer(token))
	s.Require().NoError(err)
	s.T().Cleanup(func() { _ = res.Body.Close() })
	return res
}

func (s *HandlerTestSuite) decode(res *http.Response, v any) {
	s.Require().NoError(json.NewDecoder(res.Body).Decode(v))
}
