package api

import (
	"context"
	"net/http"

	"github.com/fsdevblog/jadanpay/internal/domain"
	"github.com/fsdevblog/jadanpay/internal/service"
	"github.com/gin-gonic/gin"
)

type SupportHandler struct {
	supportService SupportServicer
}

func NewSupportHandler(supportService SupportServicer) *SupportHandler {
	return &SupportHandler{supportService: supportService}
}

// Index GET RouteGroup + TicketsRoute. Обращения текущего юзера.
func (h *SupportHandler) Index(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c, DefaultServiceTimeout)
	defer cancel()

	tickets, err := h.supportService.List(ctx, getUserIDFromContext(c))
	respondTickets(c, tickets, err)
}

type CreateTicketParams struct {
	Subject  string                `binding:"required,max=200"                json:"subject"`
	Message  string                `binding:"required,max_bytes=4096"         json:"message"`
	Priority domain.TicketPriority `binding:"omitempty,oneof=low medium high" json:"priority"`
}

// Create POST RouteGroup + TicketsRoute.
func (h *SupportHandler) Create(c *gin.Context) {
	var params CreateTicketParams
	if bindErr := c.ShouldBindJSON(&params); bindErr != nil {
		abortWithBindError(c, bindErr)
		return
	}

	ctx, cancel := context.WithTimeout(c, DefaultServiceTimeout)
	defer cancel()

	ticket, err := h.supportService.Create(ctx, getUserIDFromContext(c), params.Subject, params.Message, params.Priority)
	if err != nil {
		abortWithServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, ticket)
}

type ReplyTicketParams struct {
	Text string `binding:"required,max_bytes=4096" json:"text"`
}

// Reply POST RouteGroup + TicketReplyRoute. Ответ юзера в своем обращении.
func (h *SupportHandler) Reply(c *gin.Context) {
	h.reply(c, false)
}

// AdminIndex GET RouteGroup + AdminTicketsRoute. Все обращения.
func (h *SupportHandler) AdminIndex(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c, DefaultServiceTimeout)
	defer cancel()

	tickets, err := h.supportService.ListAll(ctx)
	respondTickets(c, tickets, err)
}

// AdminReply POST RouteGroup + AdminTicketReplyRoute. Ответ поддержки.
func (h *SupportHandler) AdminReply(c *gin.Context) {
	h.reply(c, true)
}

type TicketStatusParams struct {
	Status domain.TicketStatus `binding:"required,oneof=open closed pending" json:"status"`
}

// SetStatus PUT RouteGroup + AdminTicketStatusRoute.
func (h *SupportHandler) SetStatus(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}
	var params TicketStatusParams
	if bindErr := c.ShouldBindJSON(&params); bindErr != nil {
		abortWithBindError(c, bindErr)
		return
	}

	ctx, cancel := context.WithTimeout(c, DefaultServiceTimeout)
	defer cancel()

	ticket, err := h.supportService.SetStatus(ctx, id, params.Status)
	if err != nil {
		abortWithServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, ticket)
}

func (h *SupportHandler) reply(c *gin.Context, byStaff bool) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}
	var params ReplyTicketParams
	if bindErr := c.ShouldBindJSON(&params); bindErr != nil {
		abortWithBindError(c, bindErr)
		return
	}

	ctx, cancel := context.WithTimeout(c, DefaultServiceTimeout)
	defer cancel()

	ticket, err := h.supportService.Reply(ctx, service.ReplyArgs{
		TicketID: id,
		SenderID: getUserIDFromContext(c),
		Text:     params.Text,
		ByStaff:  byStaff,
	})
	if err != nil {
		abortWithServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, ticket)
}

func respondTickets(c *gin.Context, tickets []domain.Ticket, err error) {
	if err != nil {
		abortWithServiceError(c, err)
		return
	}
	if tickets == nil {
		tickets = []domain.Ticket{}
	}
	c.JSON(http.StatusOK, tickets)
}
