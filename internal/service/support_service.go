package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/fsdevblog/jadanpay/internal/domain"
	"github.com/fsdevblog/jadanpay/internal/repository/repoargs"
	"github.com/fsdevblog/jadanpay/pkg/uow"
)

var ErrEmptyTicket = errors.New("ticket subject and message are required")

type SupportService struct {
	uow        uow.UOW
	ticketRepo TicketRepository
}

func NewSupportService(u uow.UOW) (*SupportService, error) {
	repo, err := uow.GetRepositoryAs[TicketRepository](u, uow.RepositoryName(repoargs.TicketRepoName))
	if err != nil {
		return nil, err //nolint:wrapcheck
	}
	return &SupportService{uow: u, ticketRepo: repo}, nil
}

// Create открывает обращение с первым сообщением от юзера.
func (s *SupportService) Create(
	ctx context.Context,
	userID int64,
	subject, message string,
	priority domain.TicketPriority,
) (*domain.Ticket, error) {
	subject, message = strings.TrimSpace(subject), strings.TrimSpace(message)
	if subject == "" || message == "" {
		return nil, fmt.Errorf("creating ticket: %w", ErrEmptyTicket)
	}
	if priority == "" {
		priority = domain.PriorityMedium
	}

	var ticket *domain.Ticket
	txErr := s.uow.Do(ctx, func(c context.Context, tx uow.TX) error {
		repo, repoErr := uow.GetAs[TicketRepository](tx, uow.RepositoryName(repoargs.TicketRepoName))
		if repoErr != nil {
			return repoErr //nolint:wrapcheck
		}
		var createErr error
		ticket, createErr = repo.Create(c, repoargs.CreateTicket{
			UserID:   userID,
			Subject:  subject,
			Priority: priority,
			Message:  message,
		})
		return createErr //nolint:wrapcheck
	})
	if txErr != nil {
		return nil, fmt.Errorf("creating ticket: %w", txErr)
	}
	return ticket, nil
}

type ReplyArgs struct {
	TicketID int64
	SenderID int64
	Text     string
	ByStaff  bool
}

// Reply добавляет сообщение в обращение. Юзер отвечает только в своих обращениях, закрытое обращение
// ответов не принимает.
func (s *SupportService) Reply(ctx context.Context, args ReplyArgs) (*domain.Ticket, error) {
	text := strings.TrimSpace(args.Text)
	if text == "" {
		return nil, fmt.Errorf("replying to ticket: %w", ErrEmptyTicket)
	}

	var ticket *domain.Ticket
	txErr := s.uow.Do(ctx, func(c context.Context, tx uow.TX) error {
		repo, repoErr := uow.GetAs[TicketRepository](tx, uow.RepositoryName(repoargs.TicketRepoName))
		if repoErr != nil {
			return repoErr //nolint:wrapcheck
		}
		current, findErr := repo.FindByID(c, args.TicketID)
		if findErr != nil {
			return findErr //nolint:wrapcheck
		}
		if current.Status == domain.TicketClosed {
			return domain.ErrTicketClosed
		}
		senderID := args.SenderID
		if !args.ByStaff {
			if current.UserID != args.SenderID {
				return domain.ErrOwnerConflict
			}
			senderID = current.UserID
		}
		msg, addErr := repo.AddMessage(c, repoargs.CreateTicketMessage{
			TicketID: current.ID,
			SenderID: senderID,
			Text:     text,
			IsAdmin:  args.ByStaff,
		})
		if addErr != nil {
			return addErr //nolint:wrapcheck
		}
		current.Messages = append(current.Messages, *msg)
		ticket = current
		return nil
	})
	if txErr != nil {
		return nil, fmt.Errorf("replying to ticket %d: %w", args.TicketID, txErr)
	}
	return ticket, nil
}

func (s *SupportService) SetStatus(ctx context.Context, id int64, status domain.TicketStatus) (*domain.Ticket, error) {
	ticket, err := s.ticketRepo.UpdateStatus(ctx, id, status)
	if err != nil {
		return nil, fmt.Errorf("updating ticket %d: %w", id, err)
	}
	return ticket, nil
}

// List обращения юзера, начиная с обновленных последними.
func (s *SupportService) List(ctx context.Context, userID int64) ([]domain.Ticket, error) {
	tickets, err := s.ticketRepo.List(ctx, &userID)
	if err != nil {
		return nil, err //nolint:wrapcheck
	}
	return tickets, nil
}

func (s *SupportService) ListAll(ctx context.Context) ([]domain.Ticket, error) {
	tickets, err := s.ticketRepo.List(ctx, nil)
	if err != nil {
		return nil, err //nolint:wrapcheck
	}
	return tickets, nil
}
