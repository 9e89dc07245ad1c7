package api

//go:generate mockgen -source=interfaces.go -destination=mocks/mocks.go -package=mocks

import (
	"context"
	"encoding/json"

	"github.com/fsdevblog/jadanpay/internal/domain"
	"github.com/fsdevblog/jadanpay/internal/service"
	"github.com/fsdevblog/jadanpay/internal/vtu"
	"github.com/shopspring/decimal"
)

type UserServicer interface {
	Register(ctx context.Context, args service.RegisterUserArgs) (*domain.User, string, error)
	Login(ctx context.Context, args service.LoginUserArgs) (*domain.User, string, error)
	Get(ctx context.Context, id int64) (*domain.User, error)
	UpdateProfile(ctx context.Context, id int64, args service.UpdateProfileArgs) (*domain.User, error)
	List(ctx context.Context, search string) ([]domain.User, error)
	UpdateStatus(ctx context.Context, id int64, status domain.UserStatus) (*domain.User, error)
	Update(ctx context.Context, id int64, args service.AdminUpdateUserArgs) (*domain.User, error)
	Delete(ctx context.Context, id int64) error
	TopReferrers(ctx context.Context) ([]domain.User, error)
}

type StaffServicer interface {
	Login(ctx context.Context, email, password string) (*service.StaffLogin, error)
	ListStaff(ctx context.Context) ([]domain.Staff, error)
	AddStaff(ctx context.Context, args service.AddStaffArgs) (*domain.Staff, error)
	SetStaffStatus(ctx context.Context, id int64, status domain.StaffStatus) (*domain.Staff, error)
	DeleteStaff(ctx context.Context, id int64) error
	ListRoles(ctx context.Context) ([]domain.Role, error)
	AddRole(ctx context.Context, name string, permissions []string) (*domain.Role, error)
}

type WalletServicer interface {
	FundWallet(
		ctx context.Context,
		userID int64,
		amount decimal.Decimal,
		gateway domain.PaymentGateway,
	) (*domain.Transaction, error)
	SubmitManualFunding(
		ctx context.Context,
		userID int64,
		amount decimal.Decimal,
		proofURL string,
	) (*domain.Transaction, error)
	RedeemBonus(ctx context.Context, userID int64) (*domain.User, error)
	History(ctx context.Context, userID int64) ([]domain.Transaction, error)
	Transaction(ctx context.Context, userID, id int64) (*domain.Transaction, error)
	PendingFundings(ctx context.Context) ([]domain.Transaction, error)
	ApproveFunding(ctx context.Context, txID int64) (*domain.Transaction, error)
	DeclineFunding(ctx context.Context, txID int64) (*domain.Transaction, error)
	AdminAdjust(
		ctx context.Context,
		userID int64,
		amount decimal.Decimal,
		direction domain.DirectionType,
	) (*domain.Transaction, error)
}

type PurchaseServicer interface {
	BuyAirtime(ctx context.Context, args service.AirtimeArgs) (*domain.Transaction, error)
	BuyData(ctx context.Context, args service.DataArgs) (*domain.Transaction, error)
	PayBill(ctx context.Context, args service.BillArgs) (*domain.Transaction, error)
	ValidateCustomer(ctx context.Context, provider, number string) (*vtu.Customer, error)
	VendorBalance(ctx context.Context) (decimal.Decimal, error)
}

type BundleServicer interface {
	List(ctx context.Context, provider string, onlyAvailable bool) ([]domain.Bundle, error)
	Save(ctx context.Context, bundle domain.Bundle) (*domain.Bundle, error)
	Delete(ctx context.Context, id int64) error
}

type SupportServicer interface {
	Create(
		ctx context.Context,
		userID int64,
		subject, message string,
		priority domain.TicketPriority,
	) (*domain.Ticket, error)
	Reply(ctx context.Context, args service.ReplyArgs) (*domain.Ticket, error)
	SetStatus(ctx context.Context, id int64, status domain.TicketStatus) (*domain.Ticket, error)
	List(ctx context.Context, userID int64) ([]domain.Ticket, error)
	ListAll(ctx context.Context) ([]domain.Ticket, error)
}

type CommunicationServicer interface {
	Announcements(ctx context.Context) ([]domain.Announcement, error)
	ActiveAnnouncements(ctx context.Context, role domain.UserRole) ([]domain.Announcement, error)
	AddAnnouncement(ctx context.Context, a domain.Announcement) (*domain.Announcement, error)
	ToggleAnnouncement(ctx context.Context, id int64, active bool) (*domain.Announcement, error)
	DeleteAnnouncement(ctx context.Context, id int64) error
	Templates(ctx context.Context) ([]domain.Template, error)
	SaveTemplate(ctx context.Context, t domain.Template) (*domain.Template, error)
	DeleteTemplate(ctx context.Context, id int64) error
	RenderTemplate(ctx context.Context, id int64, vars map[string]string) (*service.Rendered, error)
	Broadcast(
		ctx context.Context,
		audience domain.Audience,
		title, message string,
		t domain.NotificationType,
	) (int, error)
}

type NotificationServicer interface {
	List(ctx context.Context, userID int64) ([]domain.Notification, error)
	MarkRead(ctx context.Context, userID, id int64) error
	MarkAllRead(ctx context.Context, userID int64) error
	UnreadCount(ctx context.Context, userID int64) (int, error)
}

type ReportServicer interface {
	Stats(ctx context.Context) (*service.Stats, error)
	Ledger(ctx context.Context) ([]domain.Transaction, error)
}

type SettingsServicer interface {
	Get(ctx context.Context) (*domain.Settings, error)
	Public(ctx context.Context) (*domain.Settings, error)
	Update(ctx context.Context, patch json.RawMessage) (*domain.Settings, error)
}

type BackupServicer interface {
	Dump(ctx context.Context) (*service.Backup, error)
	Restore(ctx context.Context, raw []byte) error
}
