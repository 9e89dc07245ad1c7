package api

import (
	"fmt"
	"time"

	"github.com/fsdevblog/jadanpay/internal/domain"
	"github.com/fsdevblog/jadanpay/internal/transport/api/middlewares"
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

const (
	DefaultServiceTimeout = 3 * time.Second
	// PurchaseTimeout покупка ждет ответа поставщика, таймауты клиента поставщика укладываются в это время.
	PurchaseTimeout = 45 * time.Second
)

const (
	RouteGroup = "/api"

	RegisterRoute       = "/user/register"
	LoginRoute          = "/user/login"
	StaffLoginRoute     = "/staff/login"
	SettingsPublicRoute = "/settings/public"
	NetworkRoute        = "/network"

	MeRoute                = "/user/me"
	BalanceRoute           = "/user/balance"
	WalletFundRoute        = "/user/wallet/fund"
	WalletManualRoute      = "/user/wallet/manual"
	BonusRedeemRoute       = "/user/bonus/redeem"
	TransactionsRoute      = "/user/transactions"
	ReceiptRoute           = "/user/transactions/:id/receipt"
	AirtimeRoute           = "/user/airtime"
	DataRoute              = "/user/data"
	BillsRoute             = "/user/bills"
	BillsValidateRoute     = "/user/bills/validate"
	BundlesRoute           = "/bundles"
	TicketsRoute           = "/user/tickets"
	TicketReplyRoute       = "/user/tickets/:id/reply"
	NotificationsRoute     = "/user/notifications"
	NotificationsReadRoute = "/user/notifications/read"
	NotificationReadRoute  = "/user/notifications/:id/read"
	AnnouncementsRoute     = "/user/announcements"

	AdminStatsRoute          = "/admin/stats"
	AdminLedgerRoute         = "/admin/transactions"
	AdminExportRoute         = "/admin/transactions/export"
	AdminVendorBalanceRoute  = "/admin/vendor/balance"
	AdminUsersRoute          = "/admin/users"
	AdminUserRoute           = "/admin/users/:id"
	AdminUserStatusRoute     = "/admin/users/:id/status"
	AdminReferrersRoute      = "/admin/referrers"
	AdminPaymentsRoute       = "/admin/payments"
	AdminPaymentApproveRoute = "/admin/payments/:id/approve"
	AdminPaymentDeclineRoute = "/admin/payments/:id/decline"
	AdminAdjustRoute         = "/admin/wallet/adjust"
	AdminBundlesRoute        = "/admin/bundles"
	AdminBundleRoute         = "/admin/bundles/:id"
	AdminTicketsRoute        = "/admin/tickets"
	AdminTicketReplyRoute    = "/admin/tickets/:id/reply"
	AdminTicketStatusRoute   = "/admin/tickets/:id/status"
	AdminStaffRoute          = "/admin/staff"
	AdminStaffMemberRoute    = "/admin/staff/:id"
	AdminStaffStatusRoute    = "/admin/staff/:id/status"
	AdminRolesRoute          = "/admin/roles"
	AdminAnnouncementsRoute  = "/admin/announcements"
	AdminAnnouncementRoute   = "/admin/announcements/:id"
	AdminTemplatesRoute      = "/admin/templates"
	AdminTemplateRoute       = "/admin/templates/:id"
	AdminTemplateRenderRoute = "/admin/templates/:id/render"
	AdminBroadcastRoute      = "/admin/broadcast"
	AdminSettingsRoute       = "/admin/settings"
	AdminBackupRoute         = "/admin/backup"
)

type RouterArgs struct {
	Logger               *logrus.Logger
	UserService          UserServicer
	StaffService         StaffServicer
	WalletService        WalletServicer
	PurchaseService      PurchaseServicer
	BundleService        BundleServicer
	SupportService       SupportServicer
	CommunicationService CommunicationServicer
	NotificationService  NotificationServicer
	ReportService        ReportServicer
	SettingsService      SettingsServicer
	BackupService        BackupServicer
	JWTSecretKey         []byte
}

func New(args RouterArgs) (*gin.Engine, error) {
	if err := registerValidators(); err != nil {
		return nil, fmt.Errorf("router: %w", err)
	}

	r := gin.New()
	r.Use(gin.Recovery())
	if args.Logger != nil {
		r.Use(middlewares.Logger(args.Logger))
	}
	r.Use(middlewares.Errors())

	authHandler := NewAuthHandler(args.UserService, args.StaffService)
	accountHandler := NewAccountHandler(args.UserService)
	walletHandler := NewWalletHandler(args.WalletService, args.UserService, args.SettingsService)
	purchaseHandler := NewPurchaseHandler(args.PurchaseService)
	bundleHandler := NewBundleHandler(args.BundleService)
	supportHandler := NewSupportHandler(args.SupportService)
	inboxHandler := NewInboxHandler(args.NotificationService, args.CommunicationService)
	settingsHandler := NewSettingsHandler(args.SettingsService)

	api := r.Group(RouteGroup)

	api.POST(RegisterRoute, middlewares.NonAuthRequired(args.JWTSecretKey), authHandler.Register)
	api.POST(LoginRoute, middlewares.NonAuthRequired(args.JWTSecretKey), authHandler.Login)
	api.POST(StaffLoginRoute, middlewares.NonAuthRequired(args.JWTSecretKey), authHandler.StaffLogin)
	api.GET(SettingsPublicRoute, settingsHandler.Public)
	api.GET(NetworkRoute, purchaseHandler.Network)

	// кабинет клиента.
	user := api.Group("", middlewares.AuthRequired(args.JWTSecretKey))
	user.GET(MeRoute, accountHandler.Me)
	user.PUT(MeRoute, accountHandler.UpdateMe)
	user.GET(BalanceRoute, accountHandler.Balance)

	user.POST(WalletFundRoute, walletHandler.Fund)
	user.POST(WalletManualRoute, walletHandler.Manual)
	user.POST(BonusRedeemRoute, walletHandler.Redeem)
	user.GET(TransactionsRoute, walletHandler.Transactions)
	user.GET(ReceiptRoute, walletHandler.Receipt)

	user.GET(BundlesRoute, bundleHandler.Index)
	user.GET(BillsValidateRoute, purchaseHandler.ValidateCustomer)

	purchase := user.Group("", middlewares.Maintenance(args.SettingsService))
	purchase.POST(AirtimeRoute, purchaseHandler.Airtime)
	purchase.POST(DataRoute, purchaseHandler.Data)
	purchase.POST(BillsRoute, purchaseHandler.Bills)

	user.GET(TicketsRoute, supportHandler.Index)
	user.POST(TicketsRoute, supportHandler.Create)
	user.POST(TicketReplyRoute, supportHandler.Reply)

	user.GET(NotificationsRoute, inboxHandler.Notifications)
	user.POST(NotificationsReadRoute, inboxHandler.MarkAllRead)
	user.POST(NotificationReadRoute, inboxHandler.MarkRead)
	user.GET(AnnouncementsRoute, inboxHandler.Announcements)

	registerAdminRoutes(api.Group("", middlewares.BackOfficeRequired(args.JWTSecretKey)), args, bundleHandler,
		supportHandler, settingsHandler)
	return r, nil
}

// registerAdminRoutes роуты административной панели. Каждая группа требует своего права доступа.
func registerAdminRoutes(
	admin *gin.RouterGroup,
	args RouterArgs,
	bundleHandler *BundleHandler,
	supportHandler *SupportHandler,
	settingsHandler *SettingsHandler,
) {
	usersHandler := NewAdminUsersHandler(args.UserService)
	paymentsHandler := NewPaymentsHandler(args.WalletService)
	reportsHandler := NewReportsHandler(args.ReportService, args.PurchaseService)
	staffHandler := NewStaffHandler(args.StaffService)
	communicationHandler := NewCommunicationHandler(args.CommunicationService)
	backupHandler := NewBackupHandler(args.BackupService)

	viewUsers := admin.Group("", middlewares.RequirePermission(domain.PermViewUsers))
	viewUsers.GET(AdminUsersRoute, usersHandler.Index)
	viewUsers.GET(AdminUserRoute, usersHandler.Show)
	viewUsers.GET(AdminReferrersRoute, usersHandler.Referrers)

	manageUsers := admin.Group("", middlewares.RequirePermission(domain.PermManageUsers))
	manageUsers.PUT(AdminUserRoute, usersHandler.Update)
	manageUsers.PUT(AdminUserStatusRoute, usersHandler.UpdateStatus)
	manageUsers.DELETE(AdminUserRoute, usersHandler.Delete)
	manageUsers.GET(AdminPaymentsRoute, paymentsHandler.Pending)
	manageUsers.POST(AdminPaymentApproveRoute, paymentsHandler.Approve)
	manageUsers.POST(AdminPaymentDeclineRoute, paymentsHandler.Decline)
	manageUsers.POST(AdminAdjustRoute, paymentsHandler.Adjust)

	transactions := admin.Group("", middlewares.RequirePermission(domain.PermViewTransactions))
	transactions.GET(AdminStatsRoute, reportsHandler.Stats)
	transactions.GET(AdminLedgerRoute, reportsHandler.Ledger)
	transactions.GET(AdminExportRoute, reportsHandler.Export)
	transactions.GET(AdminVendorBalanceRoute, reportsHandler.VendorBalance)

	tickets := admin.Group("", middlewares.RequirePermission(domain.PermReplyTickets))
	tickets.GET(AdminTicketsRoute, supportHandler.AdminIndex)
	tickets.POST(AdminTicketReplyRoute, supportHandler.AdminReply)
	tickets.PUT(AdminTicketStatusRoute, supportHandler.SetStatus)

	staff := admin.Group("", middlewares.RequirePermission(domain.PermManageStaff))
	staff.GET(AdminStaffRoute, staffHandler.Index)
	staff.POST(AdminStaffRoute, staffHandler.Create)
	staff.PUT(AdminStaffStatusRoute, staffHandler.UpdateStatus)
	staff.DELETE(AdminStaffMemberRoute, staffHandler.Delete)
	staff.GET(AdminRolesRoute, staffHandler.Roles)
	staff.POST(AdminRolesRoute, staffHandler.CreateRole)

	settings := admin.Group("", middlewares.RequirePermission(domain.PermManageSettings))
	settings.GET(AdminSettingsRoute, settingsHandler.Show)
	settings.PUT(AdminSettingsRoute, settingsHandler.Update)
	settings.GET(AdminBundlesRoute, bundleHandler.AdminIndex)
	settings.POST(AdminBundlesRoute, bundleHandler.Create)
	settings.PUT(AdminBundleRoute, bundleHandler.Update)
	settings.DELETE(AdminBundleRoute, bundleHandler.Delete)
	settings.GET(AdminAnnouncementsRoute, communicationHandler.Announcements)
	settings.POST(AdminAnnouncementsRoute, communicationHandler.CreateAnnouncement)
	settings.PUT(AdminAnnouncementRoute, communicationHandler.ToggleAnnouncement)
	settings.DELETE(AdminAnnouncementRoute, communicationHandler.DeleteAnnouncement)
	settings.GET(AdminTemplatesRoute, communicationHandler.Templates)
	settings.POST(AdminTemplatesRoute, communicationHandler.CreateTemplate)
	settings.PUT(AdminTemplateRoute, communicationHandler.UpdateTemplate)
	settings.DELETE(AdminTemplateRoute, communicationHandler.DeleteTemplate)
	settings.POST(AdminTemplateRenderRoute, communicationHandler.RenderTemplate)
	settings.POST(AdminBroadcastRoute, communicationHandler.Broadcast)
	settings.GET(AdminBackupRoute, backupHandler.Dump)
	settings.POST(AdminBackupRoute, backupHandler.Restore)
}
