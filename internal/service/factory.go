package service

import (
	"fmt"

	"github.com/fsdevblog/jadanpay/internal/domain"
	"github.com/fsdevblog/jadanpay/internal/vtu"
	"github.com/fsdevblog/jadanpay/pkg/uow"
	"github.com/sirupsen/logrus"
)

type AppServices struct {
	SettingsService      *SettingsService
	UserService          *UserService
	WalletService        *WalletService
	PurchaseService      *PurchaseService
	BundleService        *BundleService
	SupportService       *SupportService
	StaffService         *StaffService
	CommunicationService *CommunicationService
	NotificationService  *NotificationService
	ReportService        *ReportService
	BackupService        *BackupService
}

type FactoryArgs struct {
	UOW       uow.UOW
	Defaults  domain.Settings
	Vendor    vtu.Client
	Hasher    PasswordHasher
	JWTSecret []byte
	Logger    logrus.FieldLogger
}

func Factory(args FactoryArgs) (*AppServices, error) {
	settingsService, err := NewSettingsService(args.UOW, args.Defaults)
	if err != nil {
		return nil, fmt.Errorf("service factory: %s", err.Error())
	}

	userService, err := NewUserService(args.UOW, settingsService, args.JWTSecret)
	if err != nil {
		return nil, fmt.Errorf("service factory: %s", err.Error())
	}

	walletService, err := NewWalletService(args.UOW, settingsService)
	if err != nil {
		return nil, fmt.Errorf("service factory: %s", err.Error())
	}

	purchaseService, err := NewPurchaseService(args.UOW, settingsService, args.Vendor, args.Logger)
	if err != nil {
		return nil, fmt.Errorf("service factory: %s", err.Error())
	}

	bundleService, err := NewBundleService(args.UOW)
	if err != nil {
		return nil, fmt.Errorf("service factory: %s", err.Error())
	}

	supportService, err := NewSupportService(args.UOW)
	if err != nil {
		return nil, fmt.Errorf("service factory: %s", err.Error())
	}

	staffService, err := NewStaffService(args.UOW, args.Hasher, args.JWTSecret)
	if err != nil {
		return nil, fmt.Errorf("service factory: %s", err.Error())
	}

	communicationService, err := NewCommunicationService(args.UOW)
	if err != nil {
		return nil, fmt.Errorf("service factory: %s", err.Error())
	}

	notificationService, err := NewNotificationService(args.UOW)
	if err != nil {
		return nil, fmt.Errorf("service factory: %s", err.Error())
	}

	reportService, err := NewReportService(args.UOW)
	if err != nil {
		return nil, fmt.Errorf("service factory: %s", err.Error())
	}

	return &AppServices{
		SettingsService:      settingsService,
		UserService:          userService,
		WalletService:        walletService,
		PurchaseService:      purchaseService,
		BundleService:        bundleService,
		SupportService:       supportService,
		StaffService:         staffService,
		CommunicationService: communicationService,
		NotificationService:  notificationService,
		ReportService:        reportService,
		BackupService:        NewBackupService(args.UOW, settingsService),
	}, nil
}
