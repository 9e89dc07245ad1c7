package service

import (
	"context"
	"time"

	"github.com/fsdevblog/jadanpay/internal/domain"
	"github.com/fsdevblog/jadanpay/internal/repository/repoargs"
)

//go:generate mockgen -source=interfaces.go -destination=mocks/mocks.go -package=mocks

type PasswordHasher interface {
	HashPassword(password string) (string, error)
	ComparePassword(password string, hashedPassword string) bool
}

// SettingsReader источник текущих настроек приложения.
type SettingsReader interface {
	Get(ctx context.Context) (*domain.Settings, error)
}

// SettingsCache кэш настроек, сбрасываемый после восстановления резервной копии.
type SettingsCache interface {
	Get(ctx context.Context) (*domain.Settings, error)
	Invalidate()
}

type UserRepository interface {
	CreateUser(ctx context.Context, args repoargs.CreateUser) (*domain.User, error)
	FindByID(ctx context.Context, id int64) (*domain.User, error)
	FindByIDForUpdate(ctx context.Context, id int64) (*domain.User, error)
	FindByEmail(ctx context.Context, email string) (*domain.User, error)
	FindByPhone(ctx context.Context, phone string) (*domain.User, error)
	FindByReferralCode(ctx context.Context, code string) (*domain.User, error)
	List(ctx context.Context, search string) ([]domain.User, error)
	ListByRoles(ctx context.Context, roles []domain.UserRole) ([]domain.User, error)
	TopReferrers(ctx context.Context, limit uint) ([]domain.User, error)
	ApplyBalanceChange(ctx context.Context, id int64, change repoargs.BalanceChange) (*domain.User, error)
	MoveBonusToBalance(ctx context.Context, id int64) (*domain.User, error)
	UpdateUser(ctx context.Context, id int64, args repoargs.UpdateUser) (*domain.User, error)
	UpdateStatus(ctx context.Context, id int64, status domain.UserStatus) (*domain.User, error)
	TouchLogin(ctx context.Context, id int64, login repoargs.UserLogin) error
	Delete(ctx context.Context, id int64) error
	Count(ctx context.Context) (total int64, active int64, err error)
}

type TransactionRepository interface {
	Create(ctx context.Context, args repoargs.CreateTransaction) (*domain.Transaction, error)
	FindByID(ctx context.Context, id int64) (*domain.Transaction, error)
	FindByIDForUpdate(ctx context.Context, id int64) (*domain.Transaction, error)
	UpdateStatus(ctx context.Context, args repoargs.UpdateTransactionStatus) (*domain.Transaction, error)
	IncrementAttempts(ctx context.Context, id int64) (uint, error)
	List(ctx context.Context, filter repoargs.TransactionFilter) ([]domain.Transaction, error)
	ListPendingPurchases(ctx context.Context, minAge time.Duration, limit uint) ([]domain.Transaction, error)
}

type BundleRepository interface {
	List(ctx context.Context, provider string, onlyAvailable bool) ([]domain.Bundle, error)
	FindByID(ctx context.Context, id int64) (*domain.Bundle, error)
	Save(ctx context.Context, bundle domain.Bundle) (*domain.Bundle, error)
	Delete(ctx context.Context, id int64) error
	Count(ctx context.Context) (int64, error)
}

type TicketRepository interface {
	Create(ctx context.Context, args repoargs.CreateTicket) (*domain.Ticket, error)
	AddMessage(ctx context.Context, args repoargs.CreateTicketMessage) (*domain.TicketMessage, error)
	FindByID(ctx context.Context, id int64) (*domain.Ticket, error)
	List(ctx context.Context, userID *int64) ([]domain.Ticket, error)
	UpdateStatus(ctx context.Context, id int64, status domain.TicketStatus) (*domain.Ticket, error)
}

type StaffRepository interface {
	Create(ctx context.Context, args repoargs.CreateStaff) (*domain.Staff, error)
	FindByID(ctx context.Context, id int64) (*domain.Staff, error)
	FindByEmail(ctx context.Context, email string) (*domain.Staff, error)
	List(ctx context.Context) ([]domain.Staff, error)
	UpdateStatus(ctx context.Context, id int64, status domain.StaffStatus) (*domain.Staff, error)
	Delete(ctx context.Context, id int64) error
	CreateRole(ctx context.Context, name string, permissions []string) (*domain.Role, error)
	FindRole(ctx context.Context, id int64) (*domain.Role, error)
	ListRoles(ctx context.Context) ([]domain.Role, error)
}

type CommunicationRepository interface {
	CreateAnnouncement(ctx context.Context, a domain.Announcement) (*domain.Announcement, error)
	ListAnnouncements(ctx context.Context, audiences []domain.Audience, onlyActive bool) ([]domain.Announcement, error)
	SetAnnouncementActive(ctx context.Context, id int64, active bool) (*domain.Announcement, error)
	DeleteAnnouncement(ctx context.Context, id int64) error
	CreateTemplate(ctx context.Context, t domain.Template) (*domain.Template, error)
	UpdateTemplate(ctx context.Context, t domain.Template) (*domain.Template, error)
	FindTemplate(ctx context.Context, id int64) (*domain.Template, error)
	ListTemplates(ctx context.Context) ([]domain.Template, error)
	DeleteTemplate(ctx context.Context, id int64) error
}

type NotificationRepository interface {
	Create(ctx context.Context, args repoargs.CreateNotification) (*domain.Notification, error)
	BatchCreate(ctx context.Context, args []repoargs.CreateNotification, fn repoargs.BatchExecQueryRow) error
	ListByUser(ctx context.Context, userID int64) ([]domain.Notification, error)
	MarkRead(ctx context.Context, userID, id int64) error
	MarkAllRead(ctx context.Context, userID int64) error
}

type SettingsRepository interface {
	Get(ctx context.Context) (*domain.Settings, error)
	Save(ctx context.Context, settings domain.Settings) error
}

type BackupRepository interface {
	Export(ctx context.Context) (*domain.Snapshot, error)
	Import(ctx context.Context, snapshot *domain.Snapshot) error
}
