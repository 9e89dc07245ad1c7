package pgrepo

import (
	"context"

	"github.com/fsdevblog/jadanpay/internal/domain"
	"github.com/fsdevblog/jadanpay/internal/repository/repoargs"
	"github.com/fsdevblog/jadanpay/pkg/uow"
	"github.com/jackc/pgx/v5"
)

const staffColumns = `id, created_at, name, email, role_id, status, password_hash`

// StaffRepository хранит сотрудников и их роли.
type StaffRepository struct {
	db uow.DBTX
}

func NewStaffRepository(conn uow.DBTX) *StaffRepository {
	return &StaffRepository{db: conn}
}

func (s *StaffRepository) Create(ctx context.Context, args repoargs.CreateStaff) (*domain.Staff, error) {
	staff, err := scanStaff(s.db.QueryRow(ctx, `
		INSERT INTO staff_members (name, email, role_id, status, password_hash) VALUES ($1, $2, $3, $4, $5)
		RETURNING `+staffColumns, args.Name, args.Email, args.RoleID, string(args.Status), args.PasswordHash))
	if err != nil {
		return nil, convertErr(err, "creating staff %s", args.Email)
	}
	return staff, nil
}

func (s *StaffRepository) FindByID(ctx context.Context, id int64) (*domain.Staff, error) {
	staff, err := scanStaff(s.db.QueryRow(ctx, `SELECT `+staffColumns+` FROM staff_members WHERE id = $1`, id))
	if err != nil {
		return nil, convertErr(err, "finding staff %d", id)
	}
	return staff, nil
}

func (s *StaffRepository) FindByEmail(ctx context.Context, email string) (*domain.Staff, error) {
	staff, err := scanStaff(s.db.QueryRow(ctx,
		`SELECT `+staffColumns+` FROM staff_members WHERE lower(email) = lower($1)`, email))
	if err != nil {
		return nil, convertErr(err, "finding staff by email %s", email)
	}
	return staff, nil
}

func (s *StaffRepository) List(ctx context.Context) ([]domain.Staff, error) {
	rows, err := s.db.Query(ctx, `SELECT `+staffColumns+` FROM staff_members ORDER BY id`)
	if err != nil {
		return nil, convertErr(err, "listing staff")
	}
	staff, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.Staff, error) {
		member, scanErr := scanStaff(row)
		if scanErr != nil {
			return domain.Staff{}, scanErr
		}
		return *member, nil
	})
	if err != nil {
		return nil, convertErr(err, "scanning staff")
	}
	return staff, nil
}

func (s *StaffRepository) UpdateStatus(
	ctx context.Context,
	id int64,
	status domain.StaffStatus,
) (*domain.Staff, error) {
	staff, err := scanStaff(s.db.QueryRow(ctx, `
		UPDATE staff_members SET status = $2 WHERE id = $1
		RETURNING `+staffColumns, id, string(status)))
	if err != nil {
		return nil, convertErr(err, "updating status of staff %d", id)
	}
	return staff, nil
}

func (s *StaffRepository) Delete(ctx context.Context, id int64) error {
	tag, err := s.db.Exec(ctx, `DELETE FROM staff_members WHERE id = $1`, id)
	if err != nil {
		return convertErr(err, "deleting staff %d", id)
	}
	return affectedOne(tag, "deleting staff %d", id)
}

func (s *StaffRepository) CreateRole(ctx context.Context, name string, permissions []string) (*domain.Role, error) {
	var role domain.Role
	err := s.db.QueryRow(ctx, `INSERT INTO roles (name, permissions) VALUES ($1, $2) RETURNING id, name, permissions`,
		name, permissions).Scan(&role.ID, &role.Name, &role.Permissions)
	if err != nil {
		return nil, convertErr(err, "creating role %s", name)
	}
	return &role, nil
}

func (s *StaffRepository) FindRole(ctx context.Context, id int64) (*domain.Role, error) {
	var role domain.Role
	err := s.db.QueryRow(ctx, `SELECT id, name, permissions FROM roles WHERE id = $1`, id).
		Scan(&role.ID, &role.Name, &role.Permissions)
	if err != nil {
		return nil, convertErr(err, "finding role %d", id)
	}
	return &role, nil
}

func (s *StaffRepository) ListRoles(ctx context.Context) ([]domain.Role, error) {
	rows, err := s.db.Query(ctx, `SELECT id, name, permissions FROM roles ORDER BY id`)
	if err != nil {
		return nil, convertErr(err, "listing roles")
	}
	roles, err := pgx.CollectRows(rows, pgx.RowToStructByPos[domain.Role])
	if err != nil {
		return nil, convertErr(err, "scanning roles")
	}
	return roles, nil
}

func scanStaff(row pgx.Row) (*domain.Staff, error) {
	var (
		staff  domain.Staff
		status string
	)
	err := row.Scan(&staff.ID, &staff.CreatedAt, &staff.Name, &staff.Email, &staff.RoleID, &status, &staff.PasswordHash)
	if err != nil {
		return nil, err //nolint:wrapcheck
	}
	staff.Status = domain.StaffStatus(status)
	return &staff, nil
}
