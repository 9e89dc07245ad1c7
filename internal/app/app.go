package app

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/fsdevblog/jadanpay/internal/config"
	"github.com/fsdevblog/jadanpay/internal/db/seed"
	"github.com/fsdevblog/jadanpay/internal/logger"
	"github.com/fsdevblog/jadanpay/internal/repository/pgrepo"
	"github.com/fsdevblog/jadanpay/internal/repository/repoargs"
	"github.com/fsdevblog/jadanpay/internal/requery"
	"github.com/fsdevblog/jadanpay/internal/service"
	"github.com/fsdevblog/jadanpay/internal/service/psswd"
	"github.com/fsdevblog/jadanpay/internal/transport/api"
	"github.com/fsdevblog/jadanpay/internal/vtu"
	"github.com/fsdevblog/jadanpay/pkg/uow"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/sirupsen/logrus"
	"golang.org/x/crypto/bcrypt"

	// driver for migration applying postgres.
	_ "github.com/golang-migrate/migrate/v4/database/postgres" //nolint:revive
	// driver to get migrations from files (*.sql in our case).
	_ "github.com/golang-migrate/migrate/v4/source/file" //nolint:revive
)

const shutdownTimeout = 10 * time.Second

type App struct {
	Config *config.Config
	Logger *logrus.Logger
}

func New(conf *config.Config, l *logrus.Logger) *App {
	return &App{
		Config: conf,
		Logger: l,
	}
}

func (a *App) Run() error {
	notifyCtx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	a.Logger.Infof("Starting app with config: %s", a.Config)
	conn, connErr := pgrepo.Connect(notifyCtx, a.Config.MigrationsDir, a.Config.DatabaseDSN, a.Logger)
	if connErr != nil {
		return fmt.Errorf("app run: %s", connErr.Error())
	}
	defer conn.Close()

	unitOfWork, uowErr := initUOW(conn)
	if uowErr != nil {
		return fmt.Errorf("app run: %s", uowErr.Error())
	}

	seedData, seedErr := seed.Load(a.Config.SeedFile)
	if seedErr != nil {
		return fmt.Errorf("app run: %s", seedErr.Error())
	}
	if runErr := seed.Run(notifyCtx, unitOfWork, seedData, logger.Component(a.Logger, "seed")); runErr != nil {
		return fmt.Errorf("app run: %s", runErr.Error())
	}

	jwtSecret := []byte(a.Config.JWTSecret)
	services, sErr := service.Factory(service.FactoryArgs{
		UOW:       unitOfWork,
		Defaults:  seedData.Settings,
		Vendor:    a.vendorClient(),
		Hasher:    psswd.New(bcrypt.DefaultCost),
		JWTSecret: jwtSecret,
		Logger:    a.Logger,
	})
	if sErr != nil {
		return fmt.Errorf("app run: %s", sErr.Error())
	}

	router, rErr := api.New(api.RouterArgs{
		Logger:               a.Logger,
		UserService:          services.UserService,
		StaffService:         services.StaffService,
		WalletService:        services.WalletService,
		PurchaseService:      services.PurchaseService,
		BundleService:        services.BundleService,
		SupportService:       services.SupportService,
		CommunicationService: services.CommunicationService,
		NotificationService:  services.NotificationService,
		ReportService:        services.ReportService,
		SettingsService:      services.SettingsService,
		BackupService:        services.BackupService,
		JWTSecretKey:         jwtSecret,
	})
	if rErr != nil {
		return fmt.Errorf("app run: %s", rErr.Error())
	}

	server := &http.Server{
		Addr:              a.Config.RunAddress,
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second, //nolint:mnd
	}

	errChan := make(chan error, 1)
	go func() {
		if runErr := server.ListenAndServe(); runErr != nil && !errors.Is(runErr, http.ErrServerClosed) {
			errChan <- runErr
		}
	}()

	processor := requery.New(services.PurchaseService, a.Logger).
		SetWorkers(a.Config.RequeryWorkers).
		SetLimitPerIteration(a.Config.RequeryBatch)

	go processor.Run(notifyCtx)

	select {
	case <-notifyCtx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := server.Shutdown(shutdownCtx); err != nil {
			a.Logger.WithError(err).Error("http server shutdown")
		}
		return notifyCtx.Err() //nolint:wrapcheck
	case err := <-errChan:
		return err
	}
}

// vendorClient клиент поставщика по режиму из конфига. В режиме simulate сетевых вызовов нет.
func (a *App) vendorClient() vtu.Client {
	if a.Config.VendorMode == config.VendorModeHTTP {
		return vtu.NewHTTPClient()
	}
	return vtu.NewSimulator(a.Logger,
		vtu.WithLatency(a.Config.VendorLatency),
		vtu.WithFailureRate(a.Config.VendorFailureRate),
	)
}

func initUOW(conn *pgxpool.Pool) (*uow.UnitOfWork, error) {
	unitOfWork := uow.NewUnitOfWork(conn)

	factories := []struct {
		name    repoargs.RepositoryName
		factory uow.RepositoryFactory
	}{
		{repoargs.UserRepoName, func(dbtx uow.DBTX) uow.Repository { return pgrepo.NewUserRepository(dbtx) }},
		{repoargs.TransactionRepoName, func(dbtx uow.DBTX) uow.Repository {
			return pgrepo.NewTransactionRepository(dbtx)
		}},
		{repoargs.BundleRepoName, func(dbtx uow.DBTX) uow.Repository { return pgrepo.NewBundleRepository(dbtx) }},
		{repoargs.TicketRepoName, func(dbtx uow.DBTX) uow.Repository { return pgrepo.NewTicketRepository(dbtx) }},
		{repoargs.StaffRepoName, func(dbtx uow.DBTX) uow.Repository { return pgrepo.NewStaffRepository(dbtx) }},
		{repoargs.CommunicationRepoName, func(dbtx uow.DBTX) uow.Repository {
			return pgrepo.NewCommunicationRepository(dbtx)
		}},
		{repoargs.NotificationRepoName, func(dbtx uow.DBTX) uow.Repository {
			return pgrepo.NewNotificationRepository(dbtx)
		}},
		{repoargs.SettingsRepoName, func(dbtx uow.DBTX) uow.Repository { return pgrepo.NewSettingsRepository(dbtx) }},
		{repoargs.BackupRepoName, func(dbtx uow.DBTX) uow.Repository { return pgrepo.NewBackupRepository(dbtx) }},
	}

	for _, f := range factories {
		if regErr := unitOfWork.Register(uow.RepositoryName(f.name), f.factory); regErr != nil {
			return nil, fmt.Errorf("init UOW %s: %s", f.name, regErr.Error())
		}
	}
	return unitOfWork, nil
}
