package service

import (
	"testing"

	"github.com/fsdevblog/jadanpay/internal/domain"
	"github.com/fsdevblog/jadanpay/internal/repository/repoargs"
	"github.com/fsdevblog/jadanpay/internal/service/tokens"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/suite"
)

type StaffServiceTestSuite struct {
	serviceSuite
	jwtSecret    []byte
	staffService *StaffService
}

func TestStaffServiceSuite(t *testing.T) {
	suite.Run(t, new(StaffServiceTestSuite))
}

func (s *StaffServiceTestSuite) SetupTest() {
	s.serviceSuite.SetupTest()
	s.jwtSecret = []byte("secret")
	staffService, err := NewStaffService(s.mockUOW, s.mockPsswd, s.jwtSecret)
	s.Require().NoError(err)
	s.staffService = staffService
}

func (s *StaffServiceTestSuite) TestAddStaff() {
	s.mockPsswd.EXPECT().HashPassword("pa55").Return("hash", nil).Times(2)
	s.mockStaffRepo.EXPECT().FindRole(gomock.Any(), int64(1)).Return(&domain.Role{ID: 1}, nil)
	s.mockStaffRepo.EXPECT().FindRole(gomock.Any(), int64(9)).Return(nil, domain.ErrRecordNotFound)
	s.mockStaffRepo.EXPECT().Create(gomock.Any(), repoargs.CreateStaff{
		Name:         "Amina",
		Email:        "amina@jadanpay.com",
		RoleID:       1,
		Status:       domain.StaffActive,
		PasswordHash: "hash",
	}).Return(&domain.Staff{ID: 3, Name: "Amina"}, nil)

	member, err := s.staffService.AddStaff(s.T().Context(), AddStaffArgs{
		Name: "Amina", Email: "Amina@JadanPay.com", RoleID: 1, Password: "pa55",
	})
	s.Require().NoError(err)
	s.Equal(int64(3), member.ID)

	_, err = s.staffService.AddStaff(s.T().Context(), AddStaffArgs{Name: "X", RoleID: 9, Password: "pa55"})
	s.Require().ErrorIs(err, domain.ErrRecordNotFound)
}

func (s *StaffServiceTestSuite) TestAddRole() {
	s.mockStaffRepo.EXPECT().CreateRole(gomock.Any(), "Support",
		[]string{domain.PermReplyTickets, domain.PermViewUsers}).
		Return(&domain.Role{ID: 2, Name: "Support"}, nil)

	role, err := s.staffService.AddRole(s.T().Context(), "Support",
		[]string{domain.PermReplyTickets, domain.PermViewUsers, domain.PermReplyTickets})
	s.Require().NoError(err)
	s.Equal(int64(2), role.ID)

	_, err = s.staffService.AddRole(s.T().Context(), "Bad", []string{"delete_everything"})
	s.Require().ErrorIs(err, domain.ErrUnknownPermission)
}

func (s *StaffServiceTestSuite) TestLogin() {
	active := &domain.Staff{ID: 3, Email: "amina@jadanpay.com", RoleID: 1, Status: domain.StaffActive,
		PasswordHash: "hash"}
	inactive := &domain.Staff{ID: 4, Email: "old@jadanpay.com", RoleID: 1, Status: domain.StaffInactive,
		PasswordHash: "hash"}

	s.mockStaffRepo.EXPECT().FindByEmail(gomock.Any(), active.Email).Return(active, nil).Times(2)
	s.mockStaffRepo.EXPECT().FindByEmail(gomock.Any(), inactive.Email).Return(inactive, nil)
	s.mockStaffRepo.EXPECT().FindByEmail(gomock.Any(), "nobody@jadanpay.com").Return(nil, domain.ErrRecordNotFound)
	s.mockStaffRepo.EXPECT().FindRole(gomock.Any(), int64(1)).
		Return(&domain.Role{ID: 1, Name: "Support Agent", Permissions: []string{domain.PermReplyTickets}}, nil)
	s.mockPsswd.EXPECT().ComparePassword("right", "hash").Return(true).Times(2)
	s.mockPsswd.EXPECT().ComparePassword("wrong", "hash").Return(false)

	login, err := s.staffService.Login(s.T().Context(), active.Email, "right")
	s.Require().NoError(err)
	s.Empty(login.Staff.PasswordHash)
	s.Equal("hash", active.PasswordHash)
	claims, err := tokens.ValidateUserJWT(login.Token, s.jwtSecret)
	s.Require().NoError(err)
	s.Equal(tokens.KindStaff, claims.Kind)
	s.True(claims.Can(domain.PermReplyTickets))
	s.False(claims.Can(domain.PermManageSettings))

	_, err = s.staffService.Login(s.T().Context(), active.Email, "wrong")
	s.Require().ErrorIs(err, domain.ErrPasswordMissMatch)

	_, err = s.staffService.Login(s.T().Context(), inactive.Email, "right")
	s.Require().ErrorIs(err, domain.ErrStaffInactive)

	_, err = s.staffService.Login(s.T().Context(), "nobody@jadanpay.com", "right")
	s.Require().ErrorIs(err, domain.ErrPasswordMissMatch)
}
