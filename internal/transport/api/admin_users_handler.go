package api

import (
	"context"
	"net/http"

	"github.com/fsdevblog/jadanpay/internal/domain"
	"github.com/fsdevblog/jadanpay/internal/service"
	"github.com/gin-gonic/gin"
)

// AdminUsersHandler управление клиентами из админки.
type AdminUsersHandler struct {
	userService UserServicer
}

func NewAdminUsersHandler(userService UserServicer) *AdminUsersHandler {
	return &AdminUsersHandler{userService: userService}
}

// Index GET RouteGroup + AdminUsersRoute. Поиск через ?search= по имени, email или телефону.
func (h *AdminUsersHandler) Index(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c, DefaultServiceTimeout)
	defer cancel()

	users, err := h.userService.List(ctx, c.Query("search"))
	respondUsers(c, users, err)
}

// Show GET RouteGroup + AdminUserRoute.
func (h *AdminUsersHandler) Show(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}

	ctx, cancel := context.WithTimeout(c, DefaultServiceTimeout)
	defer cancel()

	user, err := h.userService.Get(ctx, id)
	if err != nil {
		abortWithServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, user)
}

type AdminUpdateUserParams struct {
	Name       string          `binding:"omitempty,max=100"                         json:"name"`
	Email      string          `binding:"omitempty,email"                           json:"email"`
	Phone      string          `binding:"omitempty,nigerian_phone"                  json:"phone"`
	Role       domain.UserRole `binding:"omitempty,oneof=user reseller admin staff" json:"role"`
	IsVerified bool            `json:"isVerified"`
}

// Update PUT RouteGroup + AdminUserRoute.
func (h *AdminUsersHandler) Update(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}
	var params AdminUpdateUserParams
	if bindErr := c.ShouldBindJSON(&params); bindErr != nil {
		abortWithBindError(c, bindErr)
		return
	}

	ctx, cancel := context.WithTimeout(c, DefaultServiceTimeout)
	defer cancel()

	user, err := h.userService.Update(ctx, id, service.AdminUpdateUserArgs{
		Name:       params.Name,
		Email:      params.Email,
		Phone:      params.Phone,
		Role:       params.Role,
		IsVerified: params.IsVerified,
	})
	if err != nil {
		abortWithServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, user)
}

type UserStatusParams struct {
	Status domain.UserStatus `binding:"required,oneof=active suspended banned" json:"status"`
}

// UpdateStatus PUT RouteGroup + AdminUserStatusRoute. Блокировка и разблокировка юзера.
func (h *AdminUsersHandler) UpdateStatus(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}
	var params UserStatusParams
	if bindErr := c.ShouldBindJSON(&params); bindErr != nil {
		abortWithBindError(c, bindErr)
		return
	}

	ctx, cancel := context.WithTimeout(c, DefaultServiceTimeout)
	defer cancel()

	user, err := h.userService.UpdateStatus(ctx, id, params.Status)
	if err != nil {
		abortWithServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, user)
}

// Delete DELETE RouteGroup + AdminUserRoute.
func (h *AdminUsersHandler) Delete(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}

	ctx, cancel := context.WithTimeout(c, DefaultServiceTimeout)
	defer cancel()

	if err := h.userService.Delete(ctx, id); err != nil {
		abortWithServiceError(c, err)
		return
	}
	c.AbortWithStatus(http.StatusNoContent)
}

// Referrers GET RouteGroup + AdminReferrersRoute. Юзеры с наибольшим числом приглашенных.
func (h *AdminUsersHandler) Referrers(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c, DefaultServiceTimeout)
	defer cancel()

	users, err := h.userService.TopReferrers(ctx)
	respondUsers(c, users, err)
}

func respondUsers(c *gin.Context, users []domain.User, err error) {
	if err != nil {
		abortWithServiceError(c, err)
		return
	}
	if users == nil {
		users = []domain.User{}
	}
	c.JSON(http.StatusOK, users)
}
