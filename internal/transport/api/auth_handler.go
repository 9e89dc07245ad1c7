package api

import (
	"context"
	"net/http"

	"github.com/fsdevblog/jadanpay/internal/domain"
	"github.com/fsdevblog/jadanpay/internal/service"
	"github.com/gin-gonic/gin"
)

type AuthHandler struct {
	userService  UserServicer
	staffService StaffServicer
}

func NewAuthHandler(userService UserServicer, staffService StaffServicer) *AuthHandler {
	return &AuthHandler{
		userService:  userService,
		staffService: staffService,
	}
}

type UserRegisterParams struct {
	Name         string `binding:"required,min=2,max=100"  json:"name"`
	Email        string `binding:"required,email,max=255"  json:"email"`
	Phone        string `binding:"required,nigerian_phone" json:"phone"`
	OTP          string `binding:"required,len=4,digits"   json:"otp"`
	ReferralCode string `binding:"omitempty,max=20"        json:"referralCode"`
	OS           string `binding:"omitempty,max_bytes=100" json:"os"`
}

type AuthResponse struct {
	User  *domain.User `json:"user"`
	Token string       `json:"token"`
}

// Register POST RouteGroup + RegisterRoute. Регистрирует пользователя и аутентифицирует его.
func (h *AuthHandler) Register(c *gin.Context) {
	var params UserRegisterParams
	if bindErr := c.ShouldBindJSON(&params); bindErr != nil {
		abortWithBindError(c, bindErr)
		return
	}

	ctx, cancel := context.WithTimeout(c, DefaultServiceTimeout)
	defer cancel()

	user, jwtToken, err := h.userService.Register(ctx, service.RegisterUserArgs{
		Name:         params.Name,
		Email:        params.Email,
		Phone:        params.Phone,
		OTP:          params.OTP,
		ReferralCode: params.ReferralCode,
		IPAddress:    c.ClientIP(),
		OS:           params.OS,
	})
	if err != nil {
		abortWithServiceError(c, err)
		return
	}

	c.Header("Authorization", "Bearer "+jwtToken)
	c.JSON(http.StatusCreated, AuthResponse{User: user, Token: jwtToken})
}

type UserLoginParams struct {
	Email string `binding:"required,email"          json:"email"`
	OTP   string `binding:"required,len=4,digits"   json:"otp"`
	OS    string `binding:"omitempty,max_bytes=100" json:"os"`
}

// Login POST RouteGroup + LoginRoute. Аутентификация по email и одноразовому коду.
func (h *AuthHandler) Login(c *gin.Context) {
	var params UserLoginParams
	if bindErr := c.ShouldBindJSON(&params); bindErr != nil {
		abortWithBindError(c, bindErr)
		return
	}

	ctx, cancel := context.WithTimeout(c, DefaultServiceTimeout)
	defer cancel()

	user, token, err := h.userService.Login(ctx, service.LoginUserArgs{
		Email:     params.Email,
		OTP:       params.OTP,
		IPAddress: c.ClientIP(),
		OS:        params.OS,
	})
	if err != nil {
		abortWithServiceError(c, err)
		return
	}

	c.Header("Authorization", "Bearer "+token)
	c.JSON(http.StatusOK, AuthResponse{User: user, Token: token})
}

type StaffLoginParams struct {
	Email    string `binding:"required,email"         json:"email"`
	Password string `binding:"required,min=6,max=255" json:"password"`
}

type StaffLoginResponse struct {
	Staff *domain.Staff `json:"staff"`
	Role  *domain.Role  `json:"role"`
	Token string        `json:"token"`
}

// StaffLogin POST RouteGroup + StaffLoginRoute. Вход сотрудника по паролю.
func (h *AuthHandler) StaffLogin(c *gin.Context) {
	var params StaffLoginParams
	if bindErr := c.ShouldBindJSON(&params); bindErr != nil {
		abortWithBindError(c, bindErr)
		return
	}

	ctx, cancel := context.WithTimeout(c, DefaultServiceTimeout)
	defer cancel()

	login, err := h.staffService.Login(ctx, params.Email, params.Password)
	if err != nil {
		abortWithServiceError(c, err)
		return
	}

	c.Header("Authorization", "Bearer "+login.Token)
	c.JSON(http.StatusOK, StaffLoginResponse{Staff: login.Staff, Role: login.Role, Token: login.Token})
}
