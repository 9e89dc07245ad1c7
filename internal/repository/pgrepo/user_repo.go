package pgrepo

import (
	"context"
	"time"

	"github.com/fsdevblog/jadanpay/internal/domain"
	"github.com/fsdevblog/jadanpay/internal/repository/repoargs"
	"github.com/fsdevblog/jadanpay/pkg/uow"
	"github.com/jackc/pgx/v5"
)

const userColumns = `id, created_at, updated_at, name, email, phone, role, status, balance, savings, bonus_balance,
	wallet_number, referral_code, referred_by, referral_count, is_verified, avatar_url, ip_address, os, last_login_at`

type UserRepository struct {
	db uow.DBTX
}

func NewUserRepository(conn uow.DBTX) *UserRepository {
	return &UserRepository{db: conn}
}

// CreateUser создает юзера. При конфликте email/телефона/кода возвращает ошибку domain.ErrDuplicateKey.
func (u *UserRepository) CreateUser(ctx context.Context, args repoargs.CreateUser) (*domain.User, error) {
	row := u.db.QueryRow(ctx, `
		INSERT INTO users (name, email, phone, role, wallet_number, referral_code, referred_by, ip_address, os,
		                   last_login_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, now())
		RETURNING `+userColumns,
		args.Name, args.Email, args.Phone, string(args.Role), args.WalletNumber, args.ReferralCode, args.ReferredBy,
		args.IPAddress, args.OS,
	)
	user, err := scanUser(row)
	if err != nil {
		return nil, convertErr(err, "creating user")
	}
	return user, nil
}

func (u *UserRepository) FindByID(ctx context.Context, id int64) (*domain.User, error) {
	user, err := scanUser(u.db.QueryRow(ctx, `SELECT `+userColumns+` FROM users WHERE id = $1`, id))
	if err != nil {
		return nil, convertErr(err, "finding user by id %d", id)
	}
	return user, nil
}

// FindByIDForUpdate блокирует строку юзера до конца транзакции. Используется перед изменением балансов.
func (u *UserRepository) FindByIDForUpdate(ctx context.Context, id int64) (*domain.User, error) {
	user, err := scanUser(u.db.QueryRow(ctx, `SELECT `+userColumns+` FROM users WHERE id = $1 FOR UPDATE`, id))
	if err != nil {
		return nil, convertErr(err, "locking user %d", id)
	}
	return user, nil
}

// FindByEmail ищет юзера по email без учета регистра.
func (u *UserRepository) FindByEmail(ctx context.Context, email string) (*domain.User, error) {
	user, err := scanUser(u.db.QueryRow(ctx, `SELECT `+userColumns+` FROM users WHERE lower(email) = lower($1)`, email))
	if err != nil {
		return nil, convertErr(err, "finding user by email %s", email)
	}
	return user, nil
}

func (u *UserRepository) FindByPhone(ctx context.Context, phone string) (*domain.User, error) {
	user, err := scanUser(u.db.QueryRow(ctx, `SELECT `+userColumns+` FROM users WHERE phone = $1`, phone))
	if err != nil {
		return nil, convertErr(err, "finding user by phone %s", phone)
	}
	return user, nil
}

func (u *UserRepository) FindByReferralCode(ctx context.Context, code string) (*domain.User, error) {
	user, err := scanUser(u.db.QueryRow(ctx, `SELECT `+userColumns+` FROM users WHERE referral_code = $1`, code))
	if err != nil {
		return nil, convertErr(err, "finding user by referral code %s", code)
	}
	return user, nil
}

// List возвращает юзеров, у которых имя или email содержат search (без учета регистра) либо телефон
// содержит search. Пустой search возвращает всех.
func (u *UserRepository) List(ctx context.Context, search string) ([]domain.User, error) {
	rows, err := u.db.Query(ctx, `
		SELECT `+userColumns+` FROM users
		WHERE $1 = '' OR name ILIKE '%' || $1 || '%' OR email ILIKE '%' || $1 || '%' OR phone LIKE '%' || $1 || '%'
		ORDER BY created_at DESC, id DESC`, search)
	if err != nil {
		return nil, convertErr(err, "listing users")
	}
	users, err := pgx.CollectRows(rows, collectUser)
	if err != nil {
		return nil, convertErr(err, "scanning users")
	}
	return users, nil
}

func (u *UserRepository) ListByRoles(ctx context.Context, roles []domain.UserRole) ([]domain.User, error) {
	names := make([]string, len(roles))
	for i, role := range roles {
		names[i] = string(role)
	}
	rows, err := u.db.Query(ctx, `SELECT `+userColumns+` FROM users WHERE role = ANY($1::text[]) ORDER BY id`, names)
	if err != nil {
		return nil, convertErr(err, "listing users by roles %v", roles)
	}
	users, err := pgx.CollectRows(rows, collectUser)
	if err != nil {
		return nil, convertErr(err, "scanning users")
	}
	return users, nil
}

// TopReferrers юзеры с ненулевым числом приглашенных, по убыванию числа приглашенных.
func (u *UserRepository) TopReferrers(ctx context.Context, limit uint) ([]domain.User, error) {
	rows, err := u.db.Query(ctx, `
		SELECT `+userColumns+` FROM users WHERE referral_count > 0
		ORDER BY referral_count DESC, id LIMIT $1`, int64(limit)) //nolint:gosec
	if err != nil {
		return nil, convertErr(err, "listing top referrers")
	}
	users, err := pgx.CollectRows(rows, collectUser)
	if err != nil {
		return nil, convertErr(err, "scanning top referrers")
	}
	return users, nil
}

// ApplyBalanceChange атомарно прибавляет к балансам юзера значения из change и возвращает обновленного юзера.
func (u *UserRepository) ApplyBalanceChange(
	ctx context.Context,
	id int64,
	change repoargs.BalanceChange,
) (*domain.User, error) {
	row := u.db.QueryRow(ctx, `
		UPDATE users
		SET balance        = balance + $2,
		    savings        = savings + $3,
		    bonus_balance  = bonus_balance + $4,
		    referral_count = referral_count + $5,
		    updated_at     = now()
		WHERE id = $1
		RETURNING `+userColumns,
		id, change.Balance, change.Savings, change.BonusBalance, change.ReferralCount,
	)
	user, err := scanUser(row)
	if err != nil {
		return nil, convertErr(err, "changing balance of user %d", id)
	}
	return user, nil
}

// MoveBonusToBalance переносит весь бонусный баланс на основной.
func (u *UserRepository) MoveBonusToBalance(ctx context.Context, id int64) (*domain.User, error) {
	row := u.db.QueryRow(ctx, `
		UPDATE users SET balance = balance + bonus_balance, bonus_balance = 0, updated_at = now()
		WHERE id = $1
		RETURNING `+userColumns, id)
	user, err := scanUser(row)
	if err != nil {
		return nil, convertErr(err, "redeeming bonus of user %d", id)
	}
	return user, nil
}

func (u *UserRepository) UpdateUser(ctx context.Context, id int64, args repoargs.UpdateUser) (*domain.User, error) {
	row := u.db.QueryRow(ctx, `
		UPDATE users
		SET name       = $2, email = $3, phone = $4, role = $5,
		    is_verified = $6, avatar_url = $7, updated_at = now()
		WHERE id = $1
		RETURNING `+userColumns,
		id, args.Name, args.Email, args.Phone, string(args.Role), args.IsVerified, args.AvatarURL,
	)
	user, err := scanUser(row)
	if err != nil {
		return nil, convertErr(err, "updating user %d", id)
	}
	return user, nil
}

func (u *UserRepository) UpdateStatus(ctx context.Context, id int64, status domain.UserStatus) (*domain.User, error) {
	row := u.db.QueryRow(ctx, `
		UPDATE users SET status = $2, updated_at = now() WHERE id = $1
		RETURNING `+userColumns, id, string(status))
	user, err := scanUser(row)
	if err != nil {
		return nil, convertErr(err, "updating status of user %d", id)
	}
	return user, nil
}

func (u *UserRepository) TouchLogin(ctx context.Context, id int64, login repoargs.UserLogin) error {
	tag, err := u.db.Exec(ctx, `
		UPDATE users SET last_login_at = $2, ip_address = $3, os = $4 WHERE id = $1`,
		id, login.At, login.IPAddress, login.OS,
	)
	if err != nil {
		return convertErr(err, "touching login of user %d", id)
	}
	return affectedOne(tag, "touching login of user %d", id)
}

// Delete удаляет юзера. Транзакции юзера сохраняются для отчетности.
func (u *UserRepository) Delete(ctx context.Context, id int64) error {
	tag, err := u.db.Exec(ctx, `DELETE FROM users WHERE id = $1`, id)
	if err != nil {
		return convertErr(err, "deleting user %d", id)
	}
	return affectedOne(tag, "deleting user %d", id)
}

func (u *UserRepository) Count(ctx context.Context) (total int64, active int64, err error) {
	row := u.db.QueryRow(ctx, `SELECT count(*), count(*) FILTER (WHERE status = 'active') FROM users`)
	if scanErr := row.Scan(&total, &active); scanErr != nil {
		return 0, 0, convertErr(scanErr, "counting users")
	}
	return total, active, nil
}

func collectUser(row pgx.CollectableRow) (domain.User, error) {
	user, err := scanUser(row)
	if err != nil {
		return domain.User{}, err
	}
	return *user, nil
}

func scanUser(row pgx.Row) (*domain.User, error) {
	var (
		user        domain.User
		role        string
		status      string
		lastLoginAt *time.Time
	)
	err := row.Scan(
		&user.ID, &user.CreatedAt, &user.UpdatedAt, &user.Name, &user.Email, &user.Phone, &role, &status,
		&user.Balance, &user.Savings, &user.BonusBalance, &user.WalletNumber, &user.ReferralCode, &user.ReferredBy,
		&user.ReferralCount, &user.IsVerified, &user.AvatarURL, &user.IPAddress, &user.OS, &lastLoginAt,
	)
	if err != nil {
		return nil, err //nolint:wrapcheck
	}
	user.Role = domain.UserRole(role)
	user.Status = domain.UserStatus(status)
	user.LastLoginAt = lastLoginAt
	return &user, nil
}
