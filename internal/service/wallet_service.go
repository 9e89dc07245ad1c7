package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/fsdevblog/jadanpay/internal/domain"
	"github.com/fsdevblog/jadanpay/internal/money"
	"github.com/fsdevblog/jadanpay/internal/repository/repoargs"
	"github.com/fsdevblog/jadanpay/pkg/uow"
	"github.com/shopspring/decimal"
)

const (
	methodManualTransfer  = "Manual Transfer"
	methodAdminAdjustment = "Admin Adjustment"
	methodReferralRedeem  = "Referral Redeem"
)

// WalletService пополнения кошелька, ручные платежи и корректировки баланса. Каждая операция, меняющая баланс,
// выполняется в одной транзакции с записью в журнал: newBalance = previousBalance ± amount.
type WalletService struct {
	uow             uow.UOW
	transactionRepo TransactionRepository
	settings        SettingsReader
}

func NewWalletService(u uow.UOW, settings SettingsReader) (*WalletService, error) {
	repo, err := uow.GetRepositoryAs[TransactionRepository](u, uow.RepositoryName(repoargs.TransactionRepoName))
	if err != nil {
		return nil, err //nolint:wrapcheck
	}
	return &WalletService{uow: u, transactionRepo: repo, settings: settings}, nil
}

// FundWallet пополнение через платежный шлюз. Шлюз должен быть включен в настройках.
func (w *WalletService) FundWallet(
	ctx context.Context,
	userID int64,
	amount decimal.Decimal,
	gateway domain.PaymentGateway,
) (*domain.Transaction, error) {
	if !amount.IsPositive() {
		return nil, fmt.Errorf("funding wallet: %w", domain.ErrInvalidAmount)
	}
	settings, err := w.settings.Get(ctx)
	if err != nil {
		return nil, fmt.Errorf("funding wallet: %w", err)
	}
	if !settings.IsGatewayEnabled(gateway) {
		return nil, fmt.Errorf("funding wallet: %w", domain.ErrGatewayDisabled)
	}

	var created *domain.Transaction
	txErr := w.uow.Do(ctx, func(c context.Context, tx uow.TX) error {
		repos, reposErr := walletRepos(tx)
		if reposErr != nil {
			return reposErr
		}
		user, userErr := repos.users.FindByIDForUpdate(c, userID)
		if userErr != nil {
			return userErr //nolint:wrapcheck
		}
		updated, changeErr := repos.users.ApplyBalanceChange(c, userID, repoargs.BalanceChange{Balance: amount})
		if changeErr != nil {
			return changeErr //nolint:wrapcheck
		}
		var createErr error
		created, createErr = repos.transactions.Create(c, repoargs.CreateTransaction{
			UserID:          userID,
			Type:            domain.TransactionWalletFund,
			Amount:          amount,
			Status:          domain.TransactionStatusSuccess,
			Reference:       newReference("REF", fundingRefDigits),
			PreviousBalance: user.Balance,
			NewBalance:      updated.Balance,
			PaymentMethod:   string(gateway),
		})
		return createErr //nolint:wrapcheck
	})
	if txErr != nil {
		return nil, fmt.Errorf("funding wallet: %w", txErr)
	}
	return created, nil
}

// SubmitManualFunding заявка на пополнение банковским переводом. Баланс меняется только после подтверждения
// администратором.
func (w *WalletService) SubmitManualFunding(
	ctx context.Context,
	userID int64,
	amount decimal.Decimal,
	proofURL string,
) (*domain.Transaction, error) {
	if !amount.IsPositive() {
		return nil, fmt.Errorf("submitting manual funding: %w", domain.ErrInvalidAmount)
	}
	if proofURL == "" {
		return nil, fmt.Errorf("submitting manual funding: %w", domain.ErrProofRequired)
	}

	var created *domain.Transaction
	txErr := w.uow.Do(ctx, func(c context.Context, tx uow.TX) error {
		repos, reposErr := walletRepos(tx)
		if reposErr != nil {
			return reposErr
		}
		user, userErr := repos.users.FindByID(c, userID)
		if userErr != nil {
			return userErr //nolint:wrapcheck
		}
		var createErr error
		created, createErr = repos.transactions.Create(c, repoargs.CreateTransaction{
			UserID:          userID,
			Type:            domain.TransactionWalletFund,
			Amount:          amount,
			Status:          domain.TransactionStatusPending,
			Reference:       newReference("MNL", manualRefDigits),
			PreviousBalance: user.Balance,
			NewBalance:      user.Balance,
			PaymentMethod:   methodManualTransfer,
			ProofURL:        proofURL,
		})
		return createErr //nolint:wrapcheck
	})
	if txErr != nil {
		return nil, fmt.Errorf("submitting manual funding: %w", txErr)
	}
	return created, nil
}

// PendingFundings заявки на ручное пополнение, ожидающие решения администратора.
func (w *WalletService) PendingFundings(ctx context.Context) ([]domain.Transaction, error) {
	status := domain.TransactionStatusPending
	list, err := w.transactionRepo.List(ctx, repoargs.TransactionFilter{
		Types:  []domain.TransactionType{domain.TransactionWalletFund},
		Status: &status,
	})
	if err != nil {
		return nil, err //nolint:wrapcheck
	}
	return list, nil
}

// ApproveFunding подтверждает заявку на пополнение и зачисляет сумму на баланс.
func (w *WalletService) ApproveFunding(ctx context.Context, txID int64) (*domain.Transaction, error) {
	var approved *domain.Transaction
	txErr := w.uow.Do(ctx, func(c context.Context, tx uow.TX) error {
		repos, reposErr := walletRepos(tx)
		if reposErr != nil {
			return reposErr
		}
		pending, findErr := lockPendingFunding(c, repos.transactions, txID)
		if findErr != nil {
			return findErr
		}
		user, changeErr := repos.users.ApplyBalanceChange(c, pending.UserID,
			repoargs.BalanceChange{Balance: pending.Amount})
		if changeErr != nil {
			return changeErr //nolint:wrapcheck
		}
		previous := user.Balance.Sub(pending.Amount)
		now := time.Now()
		var updErr error
		approved, updErr = repos.transactions.UpdateStatus(c, repoargs.UpdateTransactionStatus{
			ID:              pending.ID,
			Status:          domain.TransactionStatusSuccess,
			PreviousBalance: &previous,
			NewBalance:      &user.Balance,
			AdminActionAt:   &now,
		})
		if updErr != nil {
			return updErr //nolint:wrapcheck
		}
		message := fmt.Sprintf("Your manual funding of %s has been approved.", money.Naira(pending.Amount))
		return notify(c, repos.notifications, pending.UserID, "Payment Approved", message, domain.NotificationSuccess)
	})
	if txErr != nil {
		return nil, fmt.Errorf("approving funding %d: %w", txID, txErr)
	}
	return approved, nil
}

// DeclineFunding отклоняет заявку на пополнение. Баланс не меняется.
func (w *WalletService) DeclineFunding(ctx context.Context, txID int64) (*domain.Transaction, error) {
	var declined *domain.Transaction
	txErr := w.uow.Do(ctx, func(c context.Context, tx uow.TX) error {
		repos, reposErr := walletRepos(tx)
		if reposErr != nil {
			return reposErr
		}
		pending, findErr := lockPendingFunding(c, repos.transactions, txID)
		if findErr != nil {
			return findErr
		}
		now := time.Now()
		var updErr error
		declined, updErr = repos.transactions.UpdateStatus(c, repoargs.UpdateTransactionStatus{
			ID:            pending.ID,
			Status:        domain.TransactionStatusDeclined,
			AdminActionAt: &now,
		})
		if updErr != nil {
			return updErr //nolint:wrapcheck
		}
		message := fmt.Sprintf("Your manual funding request of %s was declined.", money.Naira(pending.Amount))
		return notify(c, repos.notifications, pending.UserID, "Payment Declined", message, domain.NotificationError)
	})
	if txErr != nil {
		return nil, fmt.Errorf("declining funding %d: %w", txID, txErr)
	}
	return declined, nil
}

func lockPendingFunding(ctx context.Context, repo TransactionRepository, id int64) (*domain.Transaction, error) {
	t, err := repo.FindByIDForUpdate(ctx, id)
	if err != nil {
		return nil, err //nolint:wrapcheck
	}
	if t.Type != domain.TransactionWalletFund {
		return nil, domain.ErrTransactionNotFundable
	}
	if t.Status != domain.TransactionStatusPending {
		return nil, domain.ErrTransactionNotPending
	}
	return t, nil
}

// AdminAdjust ручное пополнение или списание администратором. Списание не может превышать баланс.
func (w *WalletService) AdminAdjust(
	ctx context.Context,
	userID int64,
	amount decimal.Decimal,
	direction domain.DirectionType,
) (*domain.Transaction, error) {
	if !amount.IsPositive() {
		return nil, fmt.Errorf("adjusting balance: %w", domain.ErrInvalidAmount)
	}
	txType, delta := domain.TransactionAdminCredit, amount
	if direction == domain.DirectionDebit {
		txType, delta = domain.TransactionAdminDebit, amount.Neg()
	}

	var (
		created *domain.Transaction
		txErr   error
	)
	// референс уникален, при совпадении операция повторяется с новым.
	for range referenceAttempts {
		reference := newAdminReference()
		txErr = w.uow.Do(ctx, func(c context.Context, tx uow.TX) error {
			repos, reposErr := walletRepos(tx)
			if reposErr != nil {
				return reposErr
			}
			user, userErr := repos.users.FindByIDForUpdate(c, userID)
			if userErr != nil {
				return userErr //nolint:wrapcheck
			}
			if direction == domain.DirectionDebit && user.Balance.LessThan(amount) {
				return domain.ErrNotEnoughBalance
			}
			updated, changeErr := repos.users.ApplyBalanceChange(c, userID, repoargs.BalanceChange{Balance: delta})
			if changeErr != nil {
				return changeErr //nolint:wrapcheck
			}
			var createErr error
			created, createErr = repos.transactions.Create(c, repoargs.CreateTransaction{
				UserID:          userID,
				Type:            txType,
				Amount:          amount,
				Status:          domain.TransactionStatusSuccess,
				Reference:       reference,
				PreviousBalance: user.Balance,
				NewBalance:      updated.Balance,
				PaymentMethod:   methodAdminAdjustment,
			})
			return createErr //nolint:wrapcheck
		})
		if !errors.Is(txErr, domain.ErrDuplicateKey) {
			break
		}
	}
	if txErr != nil {
		return nil, fmt.Errorf("adjusting balance: %w", txErr)
	}
	return created, nil
}

// RedeemBonus переносит реферальный бонус на основной баланс. Бонус должен быть не меньше минимальной суммы
// вывода из настроек.
func (w *WalletService) RedeemBonus(ctx context.Context, userID int64) (*domain.User, error) {
	settings, err := w.settings.Get(ctx)
	if err != nil {
		return nil, fmt.Errorf("redeeming bonus: %w", err)
	}

	var updated *domain.User
	txErr := w.uow.Do(ctx, func(c context.Context, tx uow.TX) error {
		repos, reposErr := walletRepos(tx)
		if reposErr != nil {
			return reposErr
		}
		user, userErr := repos.users.FindByIDForUpdate(c, userID)
		if userErr != nil {
			return userErr //nolint:wrapcheck
		}
		bonus := user.BonusBalance
		if !bonus.IsPositive() {
			return domain.ErrNoBonus
		}
		if bonus.LessThan(settings.ReferralMinWithdrawal) {
			return domain.NewMinimumRedeemError(settings.ReferralMinWithdrawal)
		}
		var moveErr error
		if updated, moveErr = repos.users.MoveBonusToBalance(c, userID); moveErr != nil {
			return moveErr //nolint:wrapcheck
		}
		_, createErr := repos.transactions.Create(c, repoargs.CreateTransaction{
			UserID:          userID,
			Type:            domain.TransactionWalletFund,
			Amount:          bonus,
			Status:          domain.TransactionStatusSuccess,
			Reference:       newReference("REDEEM", bonusRefDigits),
			PreviousBalance: updated.Balance.Sub(bonus),
			NewBalance:      updated.Balance,
			PaymentMethod:   methodReferralRedeem,
		})
		return createErr //nolint:wrapcheck
	})
	if txErr != nil {
		return nil, fmt.Errorf("redeeming bonus: %w", txErr)
	}
	return updated, nil
}

// History транзакции юзера, начиная с новых.
func (w *WalletService) History(ctx context.Context, userID int64) ([]domain.Transaction, error) {
	list, err := w.transactionRepo.List(ctx, repoargs.TransactionFilter{UserID: &userID})
	if err != nil {
		return nil, err //nolint:wrapcheck
	}
	return list, nil
}

// Transaction транзакция юзера для квитанции. Чужая транзакция считается отсутствующей.
func (w *WalletService) Transaction(ctx context.Context, userID, id int64) (*domain.Transaction, error) {
	t, err := w.transactionRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err //nolint:wrapcheck
	}
	if t.UserID != userID {
		return nil, fmt.Errorf("transaction %d: %w", id, domain.ErrRecordNotFound)
	}
	return t, nil
}
