package repoargs

import "github.com/fsdevblog/jadanpay/internal/domain"

type CreateTicket struct {
	UserID   int64
	Subject  string
	Priority domain.TicketPriority
	Message  string
}

type CreateTicketMessage struct {
	TicketID int64
	SenderID int64
	Text     string
	IsAdmin  bool
}

type CreateStaff struct {
	Name         string
	Email        string
	RoleID       int64
	Status       domain.StaffStatus
	PasswordHash string
}

type CreateNotification struct {
	UserID  int64
	Title   string
	Message string
	Type    domain.NotificationType
}
