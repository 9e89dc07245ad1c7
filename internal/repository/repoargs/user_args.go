package repoargs

import (
	"time"

	"github.com/fsdevblog/jadanpay/internal/domain"
	"github.com/shopspring/decimal"
)

type CreateUser struct {
	Name         string
	Email        string
	Phone        string
	Role         domain.UserRole
	WalletNumber string
	ReferralCode string
	ReferredBy   *int64
	IPAddress    string
	OS           string
}

type UpdateUser struct {
	Name       string
	Email      string
	Phone      string
	Role       domain.UserRole
	IsVerified bool
	AvatarURL  string
}

type UserLogin struct {
	At        time.Time
	IPAddress string
	OS        string
}

// BalanceChange изменения кошелька пользователя. Нулевые поля не меняют соответствующий баланс.
type BalanceChange struct {
	Balance       decimal.Decimal
	Savings       decimal.Decimal
	BonusBalance  decimal.Decimal
	ReferralCount int
}
