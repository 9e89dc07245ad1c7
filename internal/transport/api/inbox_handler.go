package api

import (
	"context"
	"net/http"

	"github.com/fsdevblog/jadanpay/internal/domain"
	"github.com/gin-gonic/gin"
)

// InboxHandler уведомления и объявления для текущего юзера.
type InboxHandler struct {
	notificationService  NotificationServicer
	communicationService CommunicationServicer
}

func NewInboxHandler(notificationService NotificationServicer, communicationService CommunicationServicer) *InboxHandler {
	return &InboxHandler{
		notificationService:  notificationService,
		communicationService: communicationService,
	}
}

type NotificationsResponse struct {
	Unread        int                   `json:"unread"`
	Notifications []domain.Notification `json:"notifications"`
}

// Notifications GET RouteGroup + NotificationsRoute.
func (h *InboxHandler) Notifications(c *gin.Context) {
	userID := getUserIDFromContext(c)

	ctx, cancel := context.WithTimeout(c, DefaultServiceTimeout)
	defer cancel()

	list, err := h.notificationService.List(ctx, userID)
	if err != nil {
		abortWithServiceError(c, err)
		return
	}
	unread, err := h.notificationService.UnreadCount(ctx, userID)
	if err != nil {
		abortWithServiceError(c, err)
		return
	}
	if list == nil {
		list = []domain.Notification{}
	}
	c.JSON(http.StatusOK, NotificationsResponse{Unread: unread, Notifications: list})
}

// MarkRead POST RouteGroup + NotificationReadRoute.
func (h *InboxHandler) MarkRead(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}

	ctx, cancel := context.WithTimeout(c, DefaultServiceTimeout)
	defer cancel()

	if err := h.notificationService.MarkRead(ctx, getUserIDFromContext(c), id); err != nil {
		abortWithServiceError(c, err)
		return
	}
	c.AbortWithStatus(http.StatusNoContent)
}

// MarkAllRead POST RouteGroup + NotificationsReadRoute.
func (h *InboxHandler) MarkAllRead(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c, DefaultServiceTimeout)
	defer cancel()

	if err := h.notificationService.MarkAllRead(ctx, getUserIDFromContext(c)); err != nil {
		abortWithServiceError(c, err)
		return
	}
	c.AbortWithStatus(http.StatusNoContent)
}

// Announcements GET RouteGroup + AnnouncementsRoute. Активные объявления для роли юзера.
func (h *InboxHandler) Announcements(c *gin.Context) {
	var role domain.UserRole
	if claims := getClaimsFromContext(c); claims != nil {
		role = domain.UserRole(claims.Role)
	}

	ctx, cancel := context.WithTimeout(c, DefaultServiceTimeout)
	defer cancel()

	list, err := h.communicationService.ActiveAnnouncements(ctx, role)
	if err != nil {
		abortWithServiceError(c, err)
		return
	}
	if list == nil {
		list = []domain.Announcement{}
	}
	c.JSON(http.StatusOK, list)
}
