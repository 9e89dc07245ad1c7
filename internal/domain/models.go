package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

type User struct {
	ID            int64           `json:"id"`
	CreatedAt     time.Time       `json:"createdAt"`
	UpdatedAt     time.Time       `json:"updatedAt"`
	Name          string          `json:"name"`
	Email         string          `json:"email"`
	Phone         string          `json:"phone"`
	Role          UserRole        `json:"role"`
	Status        UserStatus      `json:"status"`
	Balance       decimal.Decimal `json:"balance"`
	Savings       decimal.Decimal `json:"savings"`
	BonusBalance  decimal.Decimal `json:"bonusBalance"`
	WalletNumber  string          `json:"walletNumber"`
	ReferralCode  string          `json:"referralCode"`
	ReferredBy    *int64          `json:"referredBy,omitempty"`
	ReferralCount int             `json:"referralCount"`
	IsVerified    bool            `json:"isVerified"`
	AvatarURL     string          `json:"avatarUrl,omitempty"`
	IPAddress     string          `json:"ipAddress,omitempty"`
	OS            string          `json:"os,omitempty"`
	LastLoginAt   *time.Time      `json:"lastLogin,omitempty"`
}

func (u *User) IsActive() bool {
	return u.Status == UserStatusActive
}

type Transaction struct {
	ID                int64             `json:"id"`
	CreatedAt         time.Time         `json:"date"`
	UpdatedAt         time.Time         `json:"updatedAt"`
	UserID            int64             `json:"userId"`
	Type              TransactionType   `json:"type"`
	Provider          string            `json:"provider,omitempty"`
	Amount            decimal.Decimal   `json:"amount"`
	CostPrice         decimal.Decimal   `json:"costPrice"`
	Profit            decimal.Decimal   `json:"profit"`
	RoundUp           decimal.Decimal   `json:"roundUp"`
	DestinationNumber string            `json:"destinationNumber,omitempty"`
	BundleName        string            `json:"bundleName,omitempty"`
	Status            TransactionStatus `json:"status"`
	Reference         string            `json:"reference"`
	VendorReference   string            `json:"vendorReference,omitempty"`
	PreviousBalance   decimal.Decimal   `json:"previousBalance"`
	NewBalance        decimal.Decimal   `json:"newBalance"`
	PaymentMethod     string            `json:"paymentMethod,omitempty"`
	ProofURL          string            `json:"proofUrl,omitempty"`
	AdminActionAt     *time.Time        `json:"adminActionDate,omitempty"`
	CustomerName      string            `json:"customerName,omitempty"`
	Attempts          uint              `json:"attempts"`
}

// Deduction возвращает сумму, списанную с баланса при покупке: стоимость услуги плюс округление в копилку.
func (t *Transaction) Deduction() decimal.Decimal {
	return t.Amount.Add(t.RoundUp)
}

type Bundle struct {
	ID          int64           `json:"id"`
	PlanID      string          `json:"planId"`
	Provider    string          `json:"provider"`
	Type        PlanType        `json:"type"`
	Name        string          `json:"name"`
	Price       decimal.Decimal `json:"price"`
	CostPrice   decimal.Decimal `json:"costPrice"`
	DataAmount  string          `json:"dataAmount"`
	Validity    string          `json:"validity"`
	IsBestValue bool            `json:"isBestValue"`
	IsAvailable bool            `json:"isAvailable"`
}

type TicketMessage struct {
	ID        int64     `json:"id"`
	TicketID  int64     `json:"ticketId"`
	SenderID  int64     `json:"senderId"`
	Text      string    `json:"text"`
	IsAdmin   bool      `json:"isAdmin"`
	CreatedAt time.Time `json:"date"`
}

type Ticket struct {
	ID        int64           `json:"id"`
	CreatedAt time.Time       `json:"date"`
	UpdatedAt time.Time       `json:"updatedAt"`
	UserID    int64           `json:"userId"`
	Subject   string          `json:"subject"`
	Status    TicketStatus    `json:"status"`
	Priority  TicketPriority  `json:"priority"`
	Messages  []TicketMessage `json:"messages"`
}

type Role struct {
	ID          int64    `json:"id"`
	Name        string   `json:"name"`
	Permissions []string `json:"permissions"`
}

type Staff struct {
	ID           int64       `json:"id"`
	CreatedAt    time.Time   `json:"createdAt"`
	Name         string      `json:"name"`
	Email        string      `json:"email"`
	RoleID       int64       `json:"roleId"`
	Status       StaffStatus `json:"status"`
	PasswordHash string      `json:"passwordHash,omitempty"`
}

type Announcement struct {
	ID        int64            `json:"id"`
	CreatedAt time.Time        `json:"date"`
	Title     string           `json:"title"`
	Message   string           `json:"message"`
	Type      AnnouncementType `json:"type"`
	Audience  Audience         `json:"audience"`
	IsActive  bool             `json:"isActive"`
}

type Template struct {
	ID        int64    `json:"id"`
	Name      string   `json:"name"`
	Channel   Channel  `json:"channel"`
	Subject   string   `json:"subject,omitempty"`
	Body      string   `json:"body"`
	Variables []string `json:"variables"`
}

type Notification struct {
	ID        int64            `json:"id"`
	CreatedAt time.Time        `json:"date"`
	UserID    int64            `json:"userId"`
	Title     string           `json:"title"`
	Message   string           `json:"message"`
	Type      NotificationType `json:"type"`
	IsRead    bool             `json:"isRead"`
}

// Snapshot полный срез данных приложения. Используется для резервного копирования.
type Snapshot struct {
	Users         []User         `json:"users"`
	Transactions  []Transaction  `json:"transactions"`
	Bundles       []Bundle       `json:"bundles"`
	Tickets       []Ticket       `json:"tickets"`
	StaffMembers  []Staff        `json:"staffMembers"`
	Roles         []Role         `json:"roles"`
	Announcements []Announcement `json:"announcements"`
	Templates     []Template     `json:"templates"`
	Notifications []Notification `json:"notifications"`
	Settings      *Settings      `json:"settings"`
}
