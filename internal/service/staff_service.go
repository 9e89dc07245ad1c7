package service

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"strings"

	"github.com/fsdevblog/jadanpay/internal/domain"
	"github.com/fsdevblog/jadanpay/internal/repository/repoargs"
	"github.com/fsdevblog/jadanpay/internal/service/tokens"
	"github.com/fsdevblog/jadanpay/pkg/uow"
)

// StaffService сотрудники панели управления и их роли.
type StaffService struct {
	uow            uow.UOW
	staffRepo      StaffRepository
	hasher         PasswordHasher
	jwtTokenSecret []byte
}

func NewStaffService(u uow.UOW, hasher PasswordHasher, jwtTokenSecret []byte) (*StaffService, error) {
	repo, err := uow.GetRepositoryAs[StaffRepository](u, uow.RepositoryName(repoargs.StaffRepoName))
	if err != nil {
		return nil, err //nolint:wrapcheck
	}
	return &StaffService{
		uow:            u,
		staffRepo:      repo,
		hasher:         hasher,
		jwtTokenSecret: jwtTokenSecret,
	}, nil
}

func (s *StaffService) ListStaff(ctx context.Context) ([]domain.Staff, error) {
	staff, err := s.staffRepo.List(ctx)
	if err != nil {
		return nil, err //nolint:wrapcheck
	}
	return staff, nil
}

type AddStaffArgs struct {
	Name     string
	Email    string
	RoleID   int64
	Password string
}

// AddStaff создает активного сотрудника. Роль должна существовать.
func (s *StaffService) AddStaff(ctx context.Context, args AddStaffArgs) (*domain.Staff, error) {
	hash, err := s.hasher.HashPassword(args.Password)
	if err != nil {
		return nil, fmt.Errorf("adding staff: %s", err.Error())
	}

	var member *domain.Staff
	txErr := s.uow.Do(ctx, func(c context.Context, tx uow.TX) error {
		repo, repoErr := uow.GetAs[StaffRepository](tx, uow.RepositoryName(repoargs.StaffRepoName))
		if repoErr != nil {
			return repoErr //nolint:wrapcheck
		}
		if _, roleErr := repo.FindRole(c, args.RoleID); roleErr != nil {
			return roleErr //nolint:wrapcheck
		}
		var createErr error
		member, createErr = repo.Create(c, repoargs.CreateStaff{
			Name:         strings.TrimSpace(args.Name),
			Email:        strings.ToLower(strings.TrimSpace(args.Email)),
			RoleID:       args.RoleID,
			Status:       domain.StaffActive,
			PasswordHash: hash,
		})
		return createErr //nolint:wrapcheck
	})
	if txErr != nil {
		return nil, fmt.Errorf("adding staff: %w", txErr)
	}
	return member, nil
}

func (s *StaffService) SetStaffStatus(ctx context.Context, id int64, status domain.StaffStatus) (*domain.Staff, error) {
	member, err := s.staffRepo.UpdateStatus(ctx, id, status)
	if err != nil {
		return nil, fmt.Errorf("updating staff %d: %w", id, err)
	}
	return member, nil
}

func (s *StaffService) DeleteStaff(ctx context.Context, id int64) error {
	if err := s.staffRepo.Delete(ctx, id); err != nil {
		return fmt.Errorf("deleting staff %d: %w", id, err)
	}
	return nil
}

func (s *StaffService) ListRoles(ctx context.Context) ([]domain.Role, error) {
	roles, err := s.staffRepo.ListRoles(ctx)
	if err != nil {
		return nil, err //nolint:wrapcheck
	}
	return roles, nil
}

// AddRole создает роль. Все права должны входить в каталог domain.AllPermissions.
func (s *StaffService) AddRole(ctx context.Context, name string, permissions []string) (*domain.Role, error) {
	perms := make([]string, 0, len(permissions))
	for _, p := range permissions {
		if !domain.IsKnownPermission(p) {
			return nil, fmt.Errorf("adding role: %w: %s", domain.ErrUnknownPermission, p)
		}
		if !slices.Contains(perms, p) {
			perms = append(perms, p)
		}
	}
	role, err := s.staffRepo.CreateRole(ctx, strings.TrimSpace(name), perms)
	if err != nil {
		return nil, fmt.Errorf("adding role: %w", err)
	}
	return role, nil
}

type StaffLogin struct {
	Staff *domain.Staff
	Role  *domain.Role
	Token string
}

// Login вход сотрудника по паролю. Токен несет права роли сотрудника.
func (s *StaffService) Login(ctx context.Context, email, password string) (*StaffLogin, error) {
	member, err := s.staffRepo.FindByEmail(ctx, strings.TrimSpace(email))
	if err != nil {
		if errors.Is(err, domain.ErrRecordNotFound) {
			return nil, fmt.Errorf("staff login: %w", domain.ErrPasswordMissMatch)
		}
		return nil, fmt.Errorf("staff login: %w", err)
	}
	if !s.hasher.ComparePassword(password, member.PasswordHash) {
		return nil, fmt.Errorf("staff login: %w", domain.ErrPasswordMissMatch)
	}
	if member.Status != domain.StaffActive {
		return nil, fmt.Errorf("staff login: %w", domain.ErrStaffInactive)
	}
	role, err := s.staffRepo.FindRole(ctx, member.RoleID)
	if err != nil {
		return nil, fmt.Errorf("staff login: %w", err)
	}
	token, err := tokens.GenerateStaffJWT(member.ID, role.Name, role.Permissions, JWTTokenExpire, s.jwtTokenSecret)
	if err != nil {
		return nil, fmt.Errorf("staff login: %w", err)
	}
	out := *member
	out.PasswordHash = ""
	return &StaffLogin{Staff: &out, Role: role, Token: token}, nil
}
