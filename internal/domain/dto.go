package domain

type UserRole string

const (
	RoleUser     UserRole = "user"
	RoleReseller UserRole = "reseller"
	RoleAdmin    UserRole = "admin"
	RoleStaff    UserRole = "staff"
)

type UserStatus string

const (
	UserStatusActive    UserStatus = "active"
	UserStatusSuspended UserStatus = "suspended"
	UserStatusBanned    UserStatus = "banned"
)

type TransactionStatus string

const (
	TransactionStatusPending  TransactionStatus = "PENDING"
	TransactionStatusSuccess  TransactionStatus = "SUCCESS"
	TransactionStatusFailed   TransactionStatus = "FAILED"
	TransactionStatusDeclined TransactionStatus = "DECLINED" // отклоненный админом ручной платеж
)

type TransactionType string

const (
	TransactionAirtime       TransactionType = "AIRTIME"
	TransactionData          TransactionType = "DATA"
	TransactionCable         TransactionType = "CABLE"
	TransactionElectricity   TransactionType = "ELECTRICITY"
	TransactionWalletFund    TransactionType = "WALLET_FUND"
	TransactionAdminCredit   TransactionType = "ADMIN_CREDIT"
	TransactionAdminDebit    TransactionType = "ADMIN_DEBIT"
	TransactionReferralBonus TransactionType = "REFERRAL_BONUS"
)

// IsPurchase сообщает, является ли тип транзакции покупкой услуги у поставщика.
func (t TransactionType) IsPurchase() bool {
	switch t {
	case TransactionAirtime, TransactionData, TransactionCable, TransactionElectricity:
		return true
	default:
		return false
	}
}

// CountsAsRevenue сообщает, учитывается ли транзакция в выручке. Пополнения и ручные корректировки
// баланса выручкой не являются.
func (t TransactionType) CountsAsRevenue() bool {
	switch t {
	case TransactionWalletFund, TransactionAdminCredit, TransactionAdminDebit:
		return false
	default:
		return true
	}
}

type DirectionType string

const (
	DirectionDebit  DirectionType = "debit"
	DirectionCredit DirectionType = "credit"
)

type PlanType string

const (
	PlanSME       PlanType = "SME"
	PlanGifting   PlanType = "GIFTING"
	PlanCorporate PlanType = "CORPORATE"
	PlanCable     PlanType = "CABLE"
)

type TicketStatus string

const (
	TicketOpen    TicketStatus = "open"
	TicketClosed  TicketStatus = "closed"
	TicketPending TicketStatus = "pending"
)

type TicketPriority string

const (
	PriorityLow    TicketPriority = "low"
	PriorityMedium TicketPriority = "medium"
	PriorityHigh   TicketPriority = "high"
)

type StaffStatus string

const (
	StaffActive   StaffStatus = "active"
	StaffInactive StaffStatus = "inactive"
)

type AnnouncementType string

const (
	AnnouncementInfo    AnnouncementType = "info"
	AnnouncementWarning AnnouncementType = "warning"
	AnnouncementSuccess AnnouncementType = "success"
	AnnouncementPromo   AnnouncementType = "promo"
)

type Audience string

const (
	AudienceAll       Audience = "all"
	AudienceResellers Audience = "resellers"
	AudienceStaff     Audience = "staff"
)

// AudiencesFor возвращает аудитории объявлений, которые видит пользователь с ролью role.
func AudiencesFor(role UserRole) []Audience {
	switch role {
	case RoleReseller:
		return []Audience{AudienceAll, AudienceResellers}
	case RoleStaff, RoleAdmin:
		return []Audience{AudienceAll, AudienceStaff}
	default:
		return []Audience{AudienceAll}
	}
}

type Channel string

const (
	ChannelEmail Channel = "email"
	ChannelSMS   Channel = "sms"
	ChannelPush  Channel = "push"
)

type NotificationType string

const (
	NotificationInfo    NotificationType = "info"
	NotificationSuccess NotificationType = "success"
	NotificationError   NotificationType = "error"
)
