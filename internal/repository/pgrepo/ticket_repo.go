package pgrepo

import (
	"context"

	"github.com/fsdevblog/jadanpay/internal/domain"
	"github.com/fsdevblog/jadanpay/internal/repository/repoargs"
	"github.com/fsdevblog/jadanpay/pkg/uow"
	"github.com/jackc/pgx/v5"
)

const (
	ticketColumns  = `id, created_at, updated_at, user_id, subject, status, priority`
	messageColumns = `id, ticket_id, sender_id, text, is_admin, created_at`
)

type TicketRepository struct {
	db uow.DBTX
}

func NewTicketRepository(conn uow.DBTX) *TicketRepository {
	return &TicketRepository{db: conn}
}

// Create создает тикет вместе с первым сообщением пользователя. Должен вызываться внутри транзакции.
func (t *TicketRepository) Create(ctx context.Context, args repoargs.CreateTicket) (*domain.Ticket, error) {
	ticket, err := scanTicket(t.db.QueryRow(ctx, `
		INSERT INTO tickets (user_id, subject, priority) VALUES ($1, $2, $3)
		RETURNING `+ticketColumns, args.UserID, args.Subject, string(args.Priority)))
	if err != nil {
		return nil, convertErr(err, "creating ticket")
	}
	msg, err := t.AddMessage(ctx, repoargs.CreateTicketMessage{
		TicketID: ticket.ID,
		SenderID: args.UserID,
		Text:     args.Message,
	})
	if err != nil {
		return nil, err
	}
	ticket.Messages = []domain.TicketMessage{*msg}
	return ticket, nil
}

// AddMessage добавляет сообщение в тикет и обновляет время последней активности тикета.
func (t *TicketRepository) AddMessage(
	ctx context.Context,
	args repoargs.CreateTicketMessage,
) (*domain.TicketMessage, error) {
	var msg domain.TicketMessage
	err := t.db.QueryRow(ctx, `
		INSERT INTO ticket_messages (ticket_id, sender_id, text, is_admin) VALUES ($1, $2, $3, $4)
		RETURNING `+messageColumns, args.TicketID, args.SenderID, args.Text, args.IsAdmin).
		Scan(&msg.ID, &msg.TicketID, &msg.SenderID, &msg.Text, &msg.IsAdmin, &msg.CreatedAt)
	if err != nil {
		return nil, convertErr(err, "adding message to ticket %d", args.TicketID)
	}
	tag, err := t.db.Exec(ctx, `UPDATE tickets SET updated_at = now() WHERE id = $1`, args.TicketID)
	if err != nil {
		return nil, convertErr(err, "touching ticket %d", args.TicketID)
	}
	if err = affectedOne(tag, "touching ticket %d", args.TicketID); err != nil {
		return nil, err
	}
	return &msg, nil
}

// FindByID возвращает тикет с сообщениями в хронологическом порядке.
func (t *TicketRepository) FindByID(ctx context.Context, id int64) (*domain.Ticket, error) {
	ticket, err := scanTicket(t.db.QueryRow(ctx, `SELECT `+ticketColumns+` FROM tickets WHERE id = $1`, id))
	if err != nil {
		return nil, convertErr(err, "finding ticket %d", id)
	}
	byTicket, err := t.messages(ctx, []int64{id})
	if err != nil {
		return nil, err
	}
	if msgs, ok := byTicket[id]; ok {
		ticket.Messages = msgs
	}
	return ticket, nil
}

// List возвращает тикеты, начиная с последних обновленных. userID nil означает тикеты всех пользователей.
func (t *TicketRepository) List(ctx context.Context, userID *int64) ([]domain.Ticket, error) {
	rows, err := t.db.Query(ctx, `
		SELECT `+ticketColumns+` FROM tickets
		WHERE $1::bigint IS NULL OR user_id = $1
		ORDER BY updated_at DESC, id DESC`, userID)
	if err != nil {
		return nil, convertErr(err, "listing tickets")
	}
	tickets, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.Ticket, error) {
		ticket, scanErr := scanTicket(row)
		if scanErr != nil {
			return domain.Ticket{}, scanErr
		}
		return *ticket, nil
	})
	if err != nil {
		return nil, convertErr(err, "scanning tickets")
	}
	if len(tickets) == 0 {
		return tickets, nil
	}

	ids := make([]int64, len(tickets))
	for i := range tickets {
		ids[i] = tickets[i].ID
	}
	byTicket, err := t.messages(ctx, ids)
	if err != nil {
		return nil, err
	}
	for i := range tickets {
		if msgs, ok := byTicket[tickets[i].ID]; ok {
			tickets[i].Messages = msgs
		}
	}
	return tickets, nil
}

func (t *TicketRepository) UpdateStatus(
	ctx context.Context,
	id int64,
	status domain.TicketStatus,
) (*domain.Ticket, error) {
	ticket, err := scanTicket(t.db.QueryRow(ctx, `
		UPDATE tickets SET status = $2, updated_at = now() WHERE id = $1
		RETURNING `+ticketColumns, id, string(status)))
	if err != nil {
		return nil, convertErr(err, "updating status of ticket %d", id)
	}
	return ticket, nil
}

func (t *TicketRepository) messages(ctx context.Context, ticketIDs []int64) (map[int64][]domain.TicketMessage, error) {
	rows, err := t.db.Query(ctx, `
		SELECT `+messageColumns+` FROM ticket_messages
		WHERE ticket_id = ANY($1)
		ORDER BY created_at, id`, ticketIDs)
	if err != nil {
		return nil, convertErr(err, "listing ticket messages")
	}
	msgs, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.TicketMessage, error) {
		var msg domain.TicketMessage
		scanErr := row.Scan(&msg.ID, &msg.TicketID, &msg.SenderID, &msg.Text, &msg.IsAdmin, &msg.CreatedAt)
		return msg, scanErr //nolint:wrapcheck
	})
	if err != nil {
		return nil, convertErr(err, "scanning ticket messages")
	}
	result := make(map[int64][]domain.TicketMessage, len(ticketIDs))
	for _, msg := range msgs {
		result[msg.TicketID] = append(result[msg.TicketID], msg)
	}
	return result, nil
}

func scanTicket(row pgx.Row) (*domain.Ticket, error) {
	var (
		ticket   domain.Ticket
		status   string
		priority string
	)
	err := row.Scan(
		&ticket.ID, &ticket.CreatedAt, &ticket.UpdatedAt, &ticket.UserID, &ticket.Subject, &status, &priority,
	)
	if err != nil {
		return nil, err //nolint:wrapcheck
	}
	ticket.Status = domain.TicketStatus(status)
	ticket.Priority = domain.TicketPriority(priority)
	ticket.Messages = []domain.TicketMessage{}
	return &ticket, nil
}
