package api

import (
	"fmt"
	"net/http"

	"github.com/fsdevblog/jadanpay/internal/domain"
	"github.com/fsdevblog/jadanpay/internal/service"
	"github.com/golang/mock/gomock"
)

func (s *HandlerTestSuite) TestRegister() {
	validPayload := map[string]string{
		"name":  "Musa Ibrahim",
		"email": "musa@example.com",
		"phone": "08031234567",
		"otp":   "1234",
	}

	s.users.EXPECT().
		Register(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ any, args service.RegisterUserArgs) (*domain.User, string, error) {
			s.Equal("musa@example.com", args.Email)
			s.Equal("08031234567", args.Phone)
			return &domain.User{ID: 1, Email: args.Email}, "jwt-token", nil
		}).Times(1)

	res := s.request(http.MethodPost, RegisterRoute, "", validPayload)
	s.Equal(http.StatusCreated, res.StatusCode)
	s.Equal("Bearer jwt-token", res.Header.Get("Authorization"))

	var resp AuthResponse
	s.decode(res, &resp)
	s.Equal("jwt-token", resp.Token)
	s.Equal(int64(1), resp.User.ID)
}

func (s *HandlerTestSuite) TestRegisterErrors() {
	s.users.EXPECT().
		Register(gomock.Any(), gomock.Any()).
		Return(nil, "", fmt.Errorf("registering user: %w", domain.ErrEmailTaken)).Times(1)

	cases := []struct {
		name       string
		payload    map[string]string
		token      string
		wantStatus int
	}{
		{
			name: "email taken",
			payload: map[string]string{
				"name": "Musa", "email": "musa@example.com", "phone": "08031234567", "otp": "1234",
			},
			wantStatus: http.StatusConflict,
		},
		{
			name: "invalid phone",
			payload: map[string]string{
				"name": "Musa", "email": "musa@example.com", "phone": "12345", "otp": "1234",
			},
			wantStatus: http.StatusUnprocessableEntity,
		},
		{
			name: "otp not digits",
			payload: map[string]string{
				"name": "Musa", "email": "musa@example.com", "phone": "08031234567", "otp": "12a4",
			},
			wantStatus: http.StatusUnprocessableEntity,
		},
		{
			name: "already authorized",
			payload: map[string]string{
				"name": "Musa", "email": "musa@example.com", "phone": "08031234567", "otp": "1234",
			},
			token:      s.userToken(1, domain.RoleUser),
			wantStatus: http.StatusUnauthorized,
		},
	}

	for _, tt := range cases {
		s.Run(tt.name, func() {
			res := s.request(http.MethodPost, RegisterRoute, tt.token, tt.payload)
			s.Equal(tt.wantStatus, res.StatusCode)
		})
	}
}

func (s *HandlerTestSuite) TestLogin() {
	s.users.EXPECT().
		Login(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ any, args service.LoginUserArgs) (*domain.User, string, error) {
			switch args.Email {
			case "banned@example.com":
				return nil, "", fmt.Errorf("login: %w", domain.ErrAccountBlocked)
			case "ghost@example.com":
				return nil, "", fmt.Errorf("login: %w", domain.ErrUserNotFound)
			default:
				return &domain.User{ID: 7, Email: args.Email}, "jwt-token", nil
			}
		}).Times(3)

	cases := []struct {
		email      string
		wantStatus int
	}{
		{email: "musa@example.com", wantStatus: http.StatusOK},
		{email: "banned@example.com", wantStatus: http.StatusForbidden},
		{email: "ghost@example.com", wantStatus: http.StatusNotFound},
	}
	for _, tt := range cases {
		s.Run(tt.email, func() {
			res := s.request(http.MethodPost, LoginRoute, "", map[string]string{"email": tt.email, "otp": "1234"})
			s.Equal(tt.wantStatus, res.StatusCode)
		})
	}
}

func (s *HandlerTestSuite) TestStaffLogin() {
	s.staff.EXPECT().
		Login(gomock.Any(), "ada@jadanpay.ng", "secret123").
		Return(&service.StaffLogin{
			Staff: &domain.Staff{ID: 3, Email: "ada@jadanpay.ng"},
			Role:  &domain.Role{ID: 1, Name: "support", Permissions: []string{domain.PermReplyTickets}},
			Token: "staff-token",
		}, nil).Times(1)
	s.staff.EXPECT().
		Login(gomock.Any(), "off@jadanpay.ng", "secret123").
		Return(nil, fmt.Errorf("staff login: %w", domain.ErrStaffInactive)).Times(1)

	res := s.request(http.MethodPost, StaffLoginRoute, "", map[string]string{
		"email": "ada@jadanpay.ng", "password": "secret123",
	})
	s.Equal(http.StatusOK, res.StatusCode)
	var resp StaffLoginResponse
	s.decode(res, &resp)
	s.Equal("staff-token", resp.Token)
	s.Equal([]string{domain.PermReplyTickets}, resp.Role.Permissions)

	res = s.request(http.MethodPost, StaffLoginRoute, "", map[string]string{
		"email": "off@jadanpay.ng", "password": "secret123",
	})
	s.Equal(http.StatusForbidden, res.StatusCode)
}
