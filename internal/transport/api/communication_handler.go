package api

import (
	"context"
	"net/http"

	"github.com/fsdevblog/jadanpay/internal/domain"
	"github.com/gin-gonic/gin"
)

// CommunicationHandler объявления, шаблоны и рассылки.
type CommunicationHandler struct {
	communicationService CommunicationServicer
}

func NewCommunicationHandler(communicationService CommunicationServicer) *CommunicationHandler {
	return &CommunicationHandler{communicationService: communicationService}
}

// Announcements GET RouteGroup + AdminAnnouncementsRoute. Все объявления, включая неактивные.
func (h *CommunicationHandler) Announcements(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c, DefaultServiceTimeout)
	defer cancel()

	list, err := h.communicationService.Announcements(ctx)
	if err != nil {
		abortWithServiceError(c, err)
		return
	}
	if list == nil {
		list = []domain.Announcement{}
	}
	c.JSON(http.StatusOK, list)
}

type AnnouncementParams struct {
	Title    string                  `binding:"required,max=200"                           json:"title"`
	Message  string                  `binding:"required,max_bytes=4096"                    json:"message"`
	Type     domain.AnnouncementType `binding:"omitempty,oneof=info warning success promo" json:"type"`
	Audience domain.Audience         `binding:"omitempty,oneof=all resellers staff"        json:"audience"`
	IsActive bool                    `json:"isActive"`
}

// CreateAnnouncement POST RouteGroup + AdminAnnouncementsRoute.
func (h *CommunicationHandler) CreateAnnouncement(c *gin.Context) {
	var params AnnouncementParams
	if bindErr := c.ShouldBindJSON(&params); bindErr != nil {
		abortWithBindError(c, bindErr)
		return
	}

	ctx, cancel := context.WithTimeout(c, DefaultServiceTimeout)
	defer cancel()

	a, err := h.communicationService.AddAnnouncement(ctx, domain.Announcement{
		Title:    params.Title,
		Message:  params.Message,
		Type:     params.Type,
		Audience: params.Audience,
		IsActive: params.IsActive,
	})
	if err != nil {
		abortWithServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, a)
}

type ToggleParams struct {
	IsActive bool `json:"isActive"`
}

// ToggleAnnouncement PUT RouteGroup + AdminAnnouncementRoute.
func (h *CommunicationHandler) ToggleAnnouncement(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}
	var params ToggleParams
	if bindErr := c.ShouldBindJSON(&params); bindErr != nil {
		abortWithBindError(c, bindErr)
		return
	}

	ctx, cancel := context.WithTimeout(c, DefaultServiceTimeout)
	defer cancel()

	a, err := h.communicationService.ToggleAnnouncement(ctx, id, params.IsActive)
	if err != nil {
		abortWithServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, a)
}

// DeleteAnnouncement DELETE RouteGroup + AdminAnnouncementRoute.
func (h *CommunicationHandler) DeleteAnnouncement(c *gin.Context) {
	h.delete(c, h.communicationService.DeleteAnnouncement)
}

// Templates GET RouteGroup + AdminTemplatesRoute.
func (h *CommunicationHandler) Templates(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c, DefaultServiceTimeout)
	defer cancel()

	list, err := h.communicationService.Templates(ctx)
	if err != nil {
		abortWithServiceError(c, err)
		return
	}
	if list == nil {
		list = []domain.Template{}
	}
	c.JSON(http.StatusOK, list)
}

type TemplateParams struct {
	Name    string         `binding:"required,max=100"               json:"name"`
	Channel domain.Channel `binding:"omitempty,oneof=email sms push" json:"channel"`
	Subject string         `binding:"max=200"                        json:"subject"`
	Body    string         `binding:"required,max_bytes=8192"        json:"body"`
}

// CreateTemplate POST RouteGroup + AdminTemplatesRoute.
func (h *CommunicationHandler) CreateTemplate(c *gin.Context) {
	h.saveTemplate(c, 0)
}

// UpdateTemplate PUT RouteGroup + AdminTemplateRoute.
func (h *CommunicationHandler) UpdateTemplate(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}
	h.saveTemplate(c, id)
}

// DeleteTemplate DELETE RouteGroup + AdminTemplateRoute.
func (h *CommunicationHandler) DeleteTemplate(c *gin.Context) {
	h.delete(c, h.communicationService.DeleteTemplate)
}

// RenderTemplate POST RouteGroup + AdminTemplateRenderRoute. Тело объект значений переменных шаблона.
func (h *CommunicationHandler) RenderTemplate(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}
	var vars map[string]string
	if bindErr := c.ShouldBindJSON(&vars); bindErr != nil {
		abortWithBindError(c, bindErr)
		return
	}

	ctx, cancel := context.WithTimeout(c, DefaultServiceTimeout)
	defer cancel()

	rendered, err := h.communicationService.RenderTemplate(ctx, id, vars)
	if err != nil {
		abortWithServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, rendered)
}

type BroadcastParams struct {
	Audience domain.Audience         `binding:"omitempty,oneof=all resellers staff" json:"audience"`
	Title    string                  `binding:"required,max=200"                    json:"title"`
	Message  string                  `binding:"required,max_bytes=4096"             json:"message"`
	Type     domain.NotificationType `binding:"omitempty,oneof=info success error"  json:"type"`
}

// Broadcast POST RouteGroup + AdminBroadcastRoute. Рассылка уведомления в кабинеты аудитории.
func (h *CommunicationHandler) Broadcast(c *gin.Context) {
	var params BroadcastParams
	if bindErr := c.ShouldBindJSON(&params); bindErr != nil {
		abortWithBindError(c, bindErr)
		return
	}
	if params.Type == "" {
		params.Type = domain.NotificationInfo
	}

	ctx, cancel := context.WithTimeout(c, DefaultServiceTimeout)
	defer cancel()

	delivered, err := h.communicationService.Broadcast(ctx, params.Audience, params.Title, params.Message, params.Type)
	if err != nil {
		abortWithServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"delivered": delivered})
}

func (h *CommunicationHandler) saveTemplate(c *gin.Context, id int64) {
	var params TemplateParams
	if bindErr := c.ShouldBindJSON(&params); bindErr != nil {
		abortWithBindError(c, bindErr)
		return
	}

	ctx, cancel := context.WithTimeout(c, DefaultServiceTimeout)
	defer cancel()

	t, err := h.communicationService.SaveTemplate(ctx, domain.Template{
		ID:      id,
		Name:    params.Name,
		Channel: params.Channel,
		Subject: params.Subject,
		Body:    params.Body,
	})
	if err != nil {
		abortWithServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, t)
}

func (h *CommunicationHandler) delete(c *gin.Context, fn func(ctx context.Context, id int64) error) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}

	ctx, cancel := context.WithTimeout(c, DefaultServiceTimeout)
	defer cancel()

	if err := fn(ctx, id); err != nil {
		abortWithServiceError(c, err)
		return
	}
	c.AbortWithStatus(http.StatusNoContent)
}
