package repoargs

import (
	"time"

	"github.com/fsdevblog/jadanpay/internal/domain"
	"github.com/shopspring/decimal"
)

type CreateTransaction struct {
	UserID            int64
	Type              domain.TransactionType
	Provider          string
	Amount            decimal.Decimal
	CostPrice         decimal.Decimal
	Profit            decimal.Decimal
	RoundUp           decimal.Decimal
	DestinationNumber string
	BundleName        string
	Status            domain.TransactionStatus
	Reference         string
	PreviousBalance   decimal.Decimal
	NewBalance        decimal.Decimal
	PaymentMethod     string
	ProofURL          string
	CustomerName      string
}

// UpdateTransactionStatus обновление статуса транзакции. Пустые необязательные поля не перезаписывают
// сохраненные значения.
type UpdateTransactionStatus struct {
	ID              int64
	Status          domain.TransactionStatus
	VendorReference string
	PreviousBalance *decimal.Decimal
	NewBalance      *decimal.Decimal
	AdminActionAt   *time.Time
}

type TransactionFilter struct {
	UserID *int64
	Types  []domain.TransactionType
	Status *domain.TransactionStatus
	Limit  uint
}
