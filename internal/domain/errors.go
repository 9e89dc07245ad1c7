package domain

import (
	"errors"
	"fmt"

	"github.com/shopspring/decimal"
)

var (
	ErrRecordNotFound = errors.New("record not found")
	ErrDuplicateKey   = errors.New("duplicate key")
	ErrUnknown        = errors.New("unknown error")
	ErrOwnerConflict  = errors.New("owner conflict")

	ErrPasswordMissMatch = errors.New("password mismatch")
	ErrInvalidOTP        = errors.New("invalid OTP")
	ErrUserNotFound      = errors.New("user not found. Please register")
	ErrEmailTaken        = errors.New("this email address is already registered")
	ErrPhoneTaken        = errors.New("this phone number is already registered")
	ErrAccountBlocked    = errors.New("account is suspended or banned")
	ErrStaffInactive     = errors.New("staff account is inactive")

	ErrNotEnoughBalance        = errors.New("insufficient wallet balance")
	ErrNotEnoughForRoundUp     = errors.New("insufficient balance for transaction + savings roundup")
	ErrInvalidAmount           = errors.New("amount must be greater than zero")
	ErrNoBonus                 = errors.New("no bonus balance to redeem")
	ErrGatewayDisabled         = errors.New("payment gateway is not enabled")
	ErrProofRequired           = errors.New("payment proof is required")
	ErrTransactionNotPending   = errors.New("transaction is not pending")
	ErrTransactionNotFundable  = errors.New("transaction is not a wallet funding request")
	ErrMaintenance             = errors.New("service is under maintenance")
	ErrProviderUnavailable     = errors.New("provider is currently unavailable")
	ErrUnknownProvider         = errors.New("unknown provider")
	ErrBundleUnavailable       = errors.New("bundle is not available")
	ErrBundleMisconfigured     = errors.New("configuration error: this bundle is missing an API Plan ID. Please contact support")
	ErrPurchasePending         = errors.New("purchase is being processed by the provider")
	ErrSettlementConflict      = errors.New("purchase was already settled with a different outcome. Please contact support")
	ErrTicketClosed            = errors.New("ticket is closed")
	ErrUnknownPermission       = errors.New("unknown permission")
	ErrInvalidBackup           = errors.New("invalid backup file")
	ErrCorruptBackup           = errors.New("corrupt data: missing users")
	ErrTemplateVariableMissing = errors.New("template variable is missing")
)

// MinimumRedeemError возвращается при попытке вывести бонус меньше минимальной суммы.
type MinimumRedeemError struct {
	Minimum decimal.Decimal
}

func NewMinimumRedeemError(minimum decimal.Decimal) error {
	return &MinimumRedeemError{Minimum: minimum}
}

func (e *MinimumRedeemError) Error() string {
	return fmt.Sprintf("minimum redeemable amount is ₦%s", e.Minimum.String())
}

// VendorRejectedError поставщик окончательно отклонил операцию. Баланс пользователя возвращается.
type VendorRejectedError struct {
	Transaction *Transaction
	Reason      string
}

func NewVendorRejectedError(tx *Transaction, reason string) error {
	return &VendorRejectedError{Transaction: tx, Reason: reason}
}

func (e *VendorRejectedError) Error() string {
	return fmt.Sprintf("provider failed to process transaction %s: %s", e.Transaction.Reference, e.Reason)
}
