package pgrepo

import (
	"context"
	"errors"
	"fmt"

	"github.com/fsdevblog/jadanpay/internal/domain"
	"github.com/fsdevblog/jadanpay/internal/repository/repoargs"
	"github.com/fsdevblog/jadanpay/pkg/uow"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/shopspring/decimal"
)

// BackupRepository выгружает и загружает полный срез данных. Import должен вызываться внутри транзакции.
type BackupRepository struct {
	db uow.DBTX
}

func NewBackupRepository(conn uow.DBTX) *BackupRepository {
	return &BackupRepository{db: conn}
}

// restoredTables порядок важен: дочерние таблицы идут после родительских.
var restoredTables = []string{ //nolint:gochecknoglobals
	"users", "transactions", "bundles", "tickets", "ticket_messages", "roles", "staff_members",
	"announcements", "templates", "notifications",
}

// Export читает все таблицы в один снимок.
func (b *BackupRepository) Export(ctx context.Context) (*domain.Snapshot, error) {
	var (
		snapshot domain.Snapshot
		err      error
	)
	if snapshot.Users, err = NewUserRepository(b.db).List(ctx, ""); err != nil {
		return nil, err
	}
	if snapshot.Transactions, err = NewTransactionRepository(b.db).List(ctx, repoargs.TransactionFilter{}); err != nil {
		return nil, err
	}
	if snapshot.Bundles, err = NewBundleRepository(b.db).List(ctx, "", false); err != nil {
		return nil, err
	}
	if snapshot.Tickets, err = NewTicketRepository(b.db).List(ctx, nil); err != nil {
		return nil, err
	}

	staff := NewStaffRepository(b.db)
	if snapshot.StaffMembers, err = staff.List(ctx); err != nil {
		return nil, err
	}
	if snapshot.Roles, err = staff.ListRoles(ctx); err != nil {
		return nil, err
	}

	comm := NewCommunicationRepository(b.db)
	if snapshot.Announcements, err = comm.ListAnnouncements(ctx, nil, false); err != nil {
		return nil, err
	}
	if snapshot.Templates, err = comm.ListTemplates(ctx); err != nil {
		return nil, err
	}
	if snapshot.Notifications, err = b.allNotifications(ctx); err != nil {
		return nil, err
	}

	settings, err := NewSettingsRepository(b.db).Get(ctx)
	if err != nil && !errors.Is(err, domain.ErrRecordNotFound) {
		return nil, err
	}
	snapshot.Settings = settings
	return &snapshot, nil
}

// Import заменяет все данные содержимым снимка. Идентификаторы сохраняются, счетчики идентификаторов
// сдвигаются за максимальный загруженный id.
func (b *BackupRepository) Import(ctx context.Context, snapshot *domain.Snapshot) error {
	if _, err := b.db.Exec(ctx, `TRUNCATE `+joinIdentifiers(restoredTables)); err != nil {
		return convertErr(err, "truncating tables")
	}

	steps := []struct {
		table   string
		columns []string
		rows    [][]any
	}{
		{"users", []string{"id", "created_at", "updated_at", "name", "email", "phone", "role", "status", "balance",
			"savings", "bonus_balance", "wallet_number", "referral_code", "referred_by", "referral_count",
			"is_verified", "avatar_url", "ip_address", "os", "last_login_at"}, userRows(snapshot.Users)},
		{"transactions", []string{"id", "created_at", "updated_at", "user_id", "type", "provider", "amount",
			"cost_price", "profit", "round_up", "destination_number", "bundle_name", "status", "reference",
			"vendor_reference", "previous_balance", "new_balance", "payment_method", "proof_url", "admin_action_at",
			"customer_name", "attempts"}, transactionRows(snapshot.Transactions)},
		{"bundles", []string{"id", "plan_id", "provider", "type", "name", "price", "cost_price", "data_amount",
			"validity", "is_best_value", "is_available"}, bundleRows(snapshot.Bundles)},
		{"tickets", []string{"id", "created_at", "updated_at", "user_id", "subject", "status", "priority"},
			ticketRows(snapshot.Tickets)},
		{"ticket_messages", []string{"id", "created_at", "ticket_id", "sender_id", "text", "is_admin"},
			ticketMessageRows(snapshot.Tickets)},
		{"roles", []string{"id", "name", "permissions"}, roleRows(snapshot.Roles)},
		{"staff_members", []string{"id", "created_at", "name", "email", "role_id", "status", "password_hash"},
			staffRows(snapshot.StaffMembers)},
		{"announcements", []string{"id", "created_at", "title", "message", "type", "audience", "is_active"},
			announcementRows(snapshot.Announcements)},
		{"templates", []string{"id", "name", "channel", "subject", "body", "variables"},
			templateRows(snapshot.Templates)},
		{"notifications", []string{"id", "created_at", "user_id", "title", "message", "type", "is_read"},
			notificationRows(snapshot.Notifications)},
	}

	for _, step := range steps {
		if len(step.rows) == 0 {
			continue
		}
		_, err := b.db.CopyFrom(ctx, pgx.Identifier{step.table}, step.columns, pgx.CopyFromRows(step.rows))
		if err != nil {
			return convertErr(err, "restoring %s", step.table)
		}
	}

	for _, table := range restoredTables {
		_, err := b.db.Exec(ctx, fmt.Sprintf(
			`SELECT setval(pg_get_serial_sequence('%[1]s', 'id'), COALESCE((SELECT max(id) FROM %[1]s), 0) + 1, false)`,
			table,
		))
		if err != nil {
			return convertErr(err, "resetting identity of %s", table)
		}
	}

	if snapshot.Settings != nil {
		if err := NewSettingsRepository(b.db).Save(ctx, *snapshot.Settings); err != nil {
			return err
		}
	}
	return nil
}

func (b *BackupRepository) allNotifications(ctx context.Context) ([]domain.Notification, error) {
	rows, err := b.db.Query(ctx, `SELECT `+notificationColumns+` FROM notifications ORDER BY id`)
	if err != nil {
		return nil, convertErr(err, "listing notifications")
	}
	list, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.Notification, error) {
		n, scanErr := scanNotification(row)
		if scanErr != nil {
			return domain.Notification{}, scanErr
		}
		return *n, nil
	})
	if err != nil {
		return nil, convertErr(err, "scanning notifications")
	}
	return list, nil
}

// numeric COPY работает только в бинарном формате, поэтому decimal передается как pgtype.Numeric.
func numeric(d decimal.Decimal) pgtype.Numeric {
	return pgtype.Numeric{Int: d.Coefficient(), Exp: d.Exponent(), Valid: true}
}

func joinIdentifiers(tables []string) string {
	out := ""
	for i, t := range tables {
		if i > 0 {
			out += ", "
		}
		out += pgx.Identifier{t}.Sanitize()
	}
	return out
}

func userRows(users []domain.User) [][]any {
	rows := make([][]any, 0, len(users))
	for _, u := range users {
		rows = append(rows, []any{
			u.ID, u.CreatedAt, u.UpdatedAt, u.Name, u.Email, u.Phone, string(u.Role), string(u.Status),
			numeric(u.Balance), numeric(u.Savings), numeric(u.BonusBalance), u.WalletNumber, u.ReferralCode,
			u.ReferredBy, int32(u.ReferralCount), u.IsVerified, u.AvatarURL, u.IPAddress, u.OS, //nolint:gosec
			u.LastLoginAt,
		})
	}
	return rows
}

func transactionRows(txs []domain.Transaction) [][]any {
	rows := make([][]any, 0, len(txs))
	for _, t := range txs {
		rows = append(rows, []any{
			t.ID, t.CreatedAt, t.UpdatedAt, t.UserID, string(t.Type), t.Provider, numeric(t.Amount),
			numeric(t.CostPrice), numeric(t.Profit), numeric(t.RoundUp), t.DestinationNumber, t.BundleName,
			string(t.Status), t.Reference, t.VendorReference, numeric(t.PreviousBalance), numeric(t.NewBalance),
			t.PaymentMethod, t.ProofURL, t.AdminActionAt, t.CustomerName, int32(t.Attempts), //nolint:gosec
		})
	}
	return rows
}

func bundleRows(bundles []domain.Bundle) [][]any {
	rows := make([][]any, 0, len(bundles))
	for _, b := range bundles {
		rows = append(rows, []any{
			b.ID, b.PlanID, b.Provider, string(b.Type), b.Name, numeric(b.Price), numeric(b.CostPrice),
			b.DataAmount, b.Validity, b.IsBestValue, b.IsAvailable,
		})
	}
	return rows
}

func ticketRows(tickets []domain.Ticket) [][]any {
	rows := make([][]any, 0, len(tickets))
	for _, t := range tickets {
		rows = append(rows, []any{t.ID, t.CreatedAt, t.UpdatedAt, t.UserID, t.Subject, string(t.Status),
			string(t.Priority)})
	}
	return rows
}

func ticketMessageRows(tickets []domain.Ticket) [][]any {
	var rows [][]any
	for _, t := range tickets {
		for _, m := range t.Messages {
			rows = append(rows, []any{m.ID, m.CreatedAt, t.ID, m.SenderID, m.Text, m.IsAdmin})
		}
	}
	return rows
}

func roleRows(roles []domain.Role) [][]any {
	rows := make([][]any, 0, len(roles))
	for _, r := range roles {
		perms := r.Permissions
		if perms == nil {
			perms = []string{}
		}
		rows = append(rows, []any{r.ID, r.Name, perms})
	}
	return rows
}

func staffRows(staff []domain.Staff) [][]any {
	rows := make([][]any, 0, len(staff))
	for _, s := range staff {
		rows = append(rows, []any{s.ID, s.CreatedAt, s.Name, s.Email, s.RoleID, string(s.Status), s.PasswordHash})
	}
	return rows
}

func announcementRows(list []domain.Announcement) [][]any {
	rows := make([][]any, 0, len(list))
	for _, a := range list {
		rows = append(rows, []any{a.ID, a.CreatedAt, a.Title, a.Message, string(a.Type), string(a.Audience),
			a.IsActive})
	}
	return rows
}

func templateRows(list []domain.Template) [][]any {
	rows := make([][]any, 0, len(list))
	for _, t := range list {
		vars := t.Variables
		if vars == nil {
			vars = []string{}
		}
		rows = append(rows, []any{t.ID, t.Name, string(t.Channel), t.Subject, t.Body, vars})
	}
	return rows
}

func notificationRows(list []domain.Notification) [][]any {
	rows := make([][]any, 0, len(list))
	for _, n := range list {
		rows = append(rows, []any{n.ID, n.CreatedAt, n.UserID, n.Title, n.Message, string(n.Type), n.IsRead})
	}
	return rows
}
