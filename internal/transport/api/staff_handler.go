package api

import (
	"context"
	"net/http"

	"github.com/fsdevblog/jadanpay/internal/domain"
	"github.com/fsdevblog/jadanpay/internal/service"
	"github.com/gin-gonic/gin"
)

// StaffHandler сотрудники и роли доступа.
type StaffHandler struct {
	staffService StaffServicer
}

func NewStaffHandler(staffService StaffServicer) *StaffHandler {
	return &StaffHandler{staffService: staffService}
}

// Index GET RouteGroup + AdminStaffRoute.
func (h *StaffHandler) Index(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c, DefaultServiceTimeout)
	defer cancel()

	list, err := h.staffService.ListStaff(ctx)
	if err != nil {
		abortWithServiceError(c, err)
		return
	}
	staff := make([]domain.Staff, len(list))
	for i, member := range list {
		member.PasswordHash = ""
		staff[i] = member
	}
	c.JSON(http.StatusOK, staff)
}

type AddStaffParams struct {
	Name     string `binding:"required,max=100"            json:"name"`
	Email    string `binding:"required,email"              json:"email"`
	RoleID   int64  `binding:"required,gt=0"               json:"roleId"`
	Password string `binding:"required,min=6,max_bytes=72" json:"password"`
}

// Create POST RouteGroup + AdminStaffRoute.
func (h *StaffHandler) Create(c *gin.Context) {
	var params AddStaffParams
	if bindErr := c.ShouldBindJSON(&params); bindErr != nil {
		abortWithBindError(c, bindErr)
		return
	}

	ctx, cancel := context.WithTimeout(c, DefaultServiceTimeout)
	defer cancel()

	member, err := h.staffService.AddStaff(ctx, service.AddStaffArgs{
		Name:     params.Name,
		Email:    params.Email,
		RoleID:   params.RoleID,
		Password: params.Password,
	})
	if err != nil {
		abortWithServiceError(c, err)
		return
	}
	member.PasswordHash = ""
	c.JSON(http.StatusCreated, member)
}

type StaffStatusParams struct {
	Status domain.StaffStatus `binding:"required,oneof=active inactive" json:"status"`
}

// UpdateStatus PUT RouteGroup + AdminStaffStatusRoute.
func (h *StaffHandler) UpdateStatus(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}
	var params StaffStatusParams
	if bindErr := c.ShouldBindJSON(&params); bindErr != nil {
		abortWithBindError(c, bindErr)
		return
	}

	ctx, cancel := context.WithTimeout(c, DefaultServiceTimeout)
	defer cancel()

	member, err := h.staffService.SetStaffStatus(ctx, id, params.Status)
	if err != nil {
		abortWithServiceError(c, err)
		return
	}
	member.PasswordHash = ""
	c.JSON(http.StatusOK, member)
}

// Delete DELETE RouteGroup + AdminStaffMemberRoute.
func (h *StaffHandler) Delete(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}

	ctx, cancel := context.WithTimeout(c, DefaultServiceTimeout)
	defer cancel()

	if err := h.staffService.DeleteStaff(ctx, id); err != nil {
		abortWithServiceError(c, err)
		return
	}
	c.AbortWithStatus(http.StatusNoContent)
}

// Roles GET RouteGroup + AdminRolesRoute.
func (h *StaffHandler) Roles(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c, DefaultServiceTimeout)
	defer cancel()

	roles, err := h.staffService.ListRoles(ctx)
	if err != nil {
		abortWithServiceError(c, err)
		return
	}
	if roles == nil {
		roles = []domain.Role{}
	}
	c.JSON(http.StatusOK, roles)
}

type AddRoleParams struct {
	Name        string   `binding:"required,max=50" json:"name"`
	Permissions []string `binding:"required,min=1"  json:"permissions"`
}

// CreateRole POST RouteGroup + AdminRolesRoute.
func (h *StaffHandler) CreateRole(c *gin.Context) {
	var params AddRoleParams
	if bindErr := c.ShouldBindJSON(&params); bindErr != nil {
		abortWithBindError(c, bindErr)
		return
	}

	ctx, cancel := context.WithTimeout(c, DefaultServiceTimeout)
	defer cancel()

	role, err := h.staffService.AddRole(ctx, params.Name, params.Permissions)
	if err != nil {
		abortWithServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, role)
}
