package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/fsdevblog/jadanpay/internal/domain"
	"github.com/fsdevblog/jadanpay/internal/logger"
	"github.com/fsdevblog/jadanpay/internal/money"
	"github.com/fsdevblog/jadanpay/internal/repository/repoargs"
	"github.com/fsdevblog/jadanpay/internal/vtu"
	"github.com/fsdevblog/jadanpay/pkg/uow"
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
)

const (
	// MaxRequeryAttempts после стольких безрезультатных перезапросов покупка считается неуспешной.
	MaxRequeryAttempts = 10

	// VendorCallTimeout предельное время одного вызова поставщика при покупке.
	VendorCallTimeout = 40 * time.Second
	// RequeryGracePeriod перезапрашиваются только покупки старше этого возраста, вызов поставщика по ним
	// гарантированно завершен.
	RequeryGracePeriod = VendorCallTimeout + 20*time.Second

	billFlatProfit  = 50
	defaultBillName = "Top-up"
)

var (
	airtimeCostRate = decimal.RequireFromString("0.98") //nolint:gochecknoglobals
	dataCostRate    = decimal.RequireFromString("0.95") //nolint:gochecknoglobals
)

// PurchaseService покупки у VTU поставщика. Сумма резервируется с баланса вместе с записью PENDING в одной
// транзакции, затем выполняется вызов поставщика. Успех фиксирует запись и зачисляет округление в копилку,
// окончательный отказ возвращает деньги. Если поставщик не дал ответа, запись остается PENDING до перезапроса.
type PurchaseService struct {
	uow             uow.UOW
	bundleRepo      BundleRepository
	transactionRepo TransactionRepository
	settings        SettingsReader
	client          vtu.Client
	l               *logrus.Entry
}

func NewPurchaseService(
	u uow.UOW,
	settings SettingsReader,
	client vtu.Client,
	l logrus.FieldLogger,
) (*PurchaseService, error) {
	bundleRepo, err := uow.GetRepositoryAs[BundleRepository](u, uow.RepositoryName(repoargs.BundleRepoName))
	if err != nil {
		return nil, err //nolint:wrapcheck
	}
	transactionRepo, err := uow.GetRepositoryAs[TransactionRepository](u,
		uow.RepositoryName(repoargs.TransactionRepoName))
	if err != nil {
		return nil, err //nolint:wrapcheck
	}
	return &PurchaseService{
		uow:             u,
		bundleRepo:      bundleRepo,
		transactionRepo: transactionRepo,
		settings:        settings,
		client:          client,
		l:               logger.Component(l, "purchase"),
	}, nil
}

type AirtimeArgs struct {
	UserID   int64
	Provider string
	Amount   decimal.Decimal
	Phone    string
	RoundUp  bool
}

// BuyAirtime пополнение эфира. Себестоимость 98% номинала.
func (p *PurchaseService) BuyAirtime(ctx context.Context, args AirtimeArgs) (*domain.Transaction, error) {
	if !domain.IsNetworkProvider(args.Provider) {
		return nil, fmt.Errorf("buying airtime: %w", domain.ErrUnknownProvider)
	}
	if !args.Amount.IsPositive() {
		return nil, fmt.Errorf("buying airtime: %w", domain.ErrInvalidAmount)
	}
	settings, err := p.available(ctx, args.Provider)
	if err != nil {
		return nil, fmt.Errorf("buying airtime: %w", err)
	}

	cost := args.Amount.Mul(airtimeCostRate)
	order := purchase{
		create: repoargs.CreateTransaction{
			UserID:            args.UserID,
			Type:              domain.TransactionAirtime,
			Provider:          args.Provider,
			Amount:            args.Amount,
			CostPrice:         cost,
			Profit:            args.Amount.Sub(cost),
			RoundUp:           roundUp(args.Amount, args.RoundUp),
			DestinationNumber: args.Phone,
		},
		call: func(c context.Context, creds vtu.Credentials, ref string) (*vtu.Result, error) {
			return p.client.BuyAirtime(c, creds, vtu.AirtimeRequest{ //nolint:wrapcheck
				Reference: ref,
				Provider:  args.Provider,
				Phone:     args.Phone,
				Amount:    args.Amount,
			})
		},
	}
	tx, err := p.execute(ctx, settings, order)
	if err != nil {
		return tx, fmt.Errorf("buying airtime: %w", err)
	}
	return tx, nil
}

type DataArgs struct {
	UserID   int64
	BundleID int64
	Phone    string
	RoundUp  bool
}

// BuyData покупка пакета данных. Себестоимость берется из тарифа, при ее отсутствии 95% цены.
func (p *PurchaseService) BuyData(ctx context.Context, args DataArgs) (*domain.Transaction, error) {
	bundle, err := p.usableBundle(ctx, args.BundleID)
	if err != nil {
		return nil, fmt.Errorf("buying data: %w", err)
	}
	if !domain.IsNetworkProvider(bundle.Provider) {
		return nil, fmt.Errorf("buying data: %w", domain.ErrUnknownProvider)
	}
	settings, err := p.available(ctx, bundle.Provider)
	if err != nil {
		return nil, fmt.Errorf("buying data: %w", err)
	}

	cost := bundle.CostPrice
	if !cost.IsPositive() {
		cost = bundle.Price.Mul(dataCostRate)
	}
	order := purchase{
		create: repoargs.CreateTransaction{
			UserID:            args.UserID,
			Type:              domain.TransactionData,
			Provider:          bundle.Provider,
			Amount:            bundle.Price,
			CostPrice:         cost,
			Profit:            bundle.Price.Sub(cost),
			RoundUp:           roundUp(bundle.Price, args.RoundUp),
			DestinationNumber: args.Phone,
			BundleName:        bundle.Name,
		},
		call: func(c context.Context, creds vtu.Credentials, ref string) (*vtu.Result, error) {
			return p.client.BuyData(c, creds, vtu.DataRequest{ //nolint:wrapcheck
				Reference: ref,
				Provider:  bundle.Provider,
				Phone:     args.Phone,
				PlanID:    bundle.PlanID,
			})
		},
	}
	tx, err := p.execute(ctx, settings, order)
	if err != nil {
		return tx, fmt.Errorf("buying data: %w", err)
	}
	return tx, nil
}

type BillArgs struct {
	UserID       int64
	Type         domain.TransactionType
	Provider     string
	Number       string
	Amount       decimal.Decimal
	BundleID     int64
	CustomerName string
}

// PayBill оплата ТВ или электричества. Для ТВ с выбранным тарифом сумма равна цене тарифа. Прибыль
// фиксированная, 50 с операции.
func (p *PurchaseService) PayBill(ctx context.Context, args BillArgs) (*domain.Transaction, error) {
	if !domain.IsBillProvider(args.Type, args.Provider) {
		return nil, fmt.Errorf("paying bill: %w", domain.ErrUnknownProvider)
	}
	amount, bundleName, planID := args.Amount, defaultBillName, ""
	if args.Type == domain.TransactionCable && args.BundleID != 0 {
		bundle, err := p.usableBundle(ctx, args.BundleID)
		if err != nil {
			return nil, fmt.Errorf("paying bill: %w", err)
		}
		amount, bundleName, planID = bundle.Price, bundle.Name, bundle.PlanID
	}
	fee := decimal.NewFromInt(billFlatProfit)
	if !amount.GreaterThan(fee) {
		return nil, fmt.Errorf("paying bill: %w", domain.ErrInvalidAmount)
	}
	settings, err := p.available(ctx, args.Provider)
	if err != nil {
		return nil, fmt.Errorf("paying bill: %w", err)
	}

	order := purchase{
		create: repoargs.CreateTransaction{
			UserID:            args.UserID,
			Type:              args.Type,
			Provider:          args.Provider,
			Amount:            amount,
			CostPrice:         amount.Sub(fee),
			Profit:            fee,
			DestinationNumber: args.Number,
			BundleName:        bundleName,
			CustomerName:      args.CustomerName,
		},
		call: func(c context.Context, creds vtu.Credentials, ref string) (*vtu.Result, error) {
			return p.client.PayBill(c, creds, vtu.BillRequest{ //nolint:wrapcheck
				Reference: ref,
				Type:      args.Type,
				Provider:  args.Provider,
				Number:    args.Number,
				Amount:    amount,
				PlanID:    planID,
			})
		},
	}
	tx, err := p.execute(ctx, settings, order)
	if err != nil {
		return tx, fmt.Errorf("paying bill: %w", err)
	}
	return tx, nil
}

// ValidateCustomer проверка номера смарт-карты или счетчика у поставщика.
func (p *PurchaseService) ValidateCustomer(ctx context.Context, provider, number string) (*vtu.Customer, error) {
	settings, err := p.settings.Get(ctx)
	if err != nil {
		return nil, fmt.Errorf("validating customer: %w", err)
	}
	customer, err := p.client.ValidateCustomer(ctx, credentials(settings), vtu.ValidateRequest{
		Provider: provider,
		Number:   number,
	})
	if err != nil {
		return nil, fmt.Errorf("validating customer: %w", err)
	}
	return customer, nil
}

// VendorBalance баланс счета у активного поставщика.
func (p *PurchaseService) VendorBalance(ctx context.Context) (decimal.Decimal, error) {
	settings, err := p.settings.Get(ctx)
	if err != nil {
		return decimal.Zero, fmt.Errorf("vendor balance: %w", err)
	}
	balance, err := p.client.Balance(ctx, credentials(settings))
	if err != nil {
		return decimal.Zero, fmt.Errorf("vendor balance: %w", err)
	}
	return balance, nil
}

// PendingPurchases покупки старше RequeryGracePeriod, ожидающие окончательного статуса, начиная с самых старых.
func (p *PurchaseService) PendingPurchases(ctx context.Context, limit uint) ([]domain.Transaction, error) {
	list, err := p.transactionRepo.ListPendingPurchases(ctx, RequeryGracePeriod, limit)
	if err != nil {
		return nil, err //nolint:wrapcheck
	}
	return list, nil
}

// Requery запрашивает у поставщика статус покупки по нашему референсу.
func (p *PurchaseService) Requery(ctx context.Context, reference string) (*vtu.Result, error) {
	settings, err := p.settings.Get(ctx)
	if err != nil {
		return nil, fmt.Errorf("requery %s: %w", reference, err)
	}
	result, err := p.client.Requery(ctx, credentials(settings), reference)
	if err != nil {
		return nil, fmt.Errorf("requery %s: %w", reference, err)
	}
	return result, nil
}

type RequeryResult struct {
	Error           error
	TransactionID   int64
	Status          vtu.Status
	VendorReference string
	Message         string
}

// ResolvePending применяет результаты перезапроса. Каждая покупка обрабатывается в своей транзакции, уже
// завершенные записи пропускаются. Возвращает объединенные ошибки.
func (p *PurchaseService) ResolvePending(ctx context.Context, results []RequeryResult) error {
	var errs []error
	for _, res := range results {
		if err := p.resolve(ctx, res); err != nil {
			errs = append(errs, fmt.Errorf("resolving transaction %d: %w", res.TransactionID, err))
		}
	}
	return errors.Join(errs...)
}

func (p *PurchaseService) resolve(ctx context.Context, res RequeryResult) error {
	return p.uow.Do(ctx, func(c context.Context, tx uow.TX) error { //nolint:wrapcheck
		repos, reposErr := walletRepos(tx)
		if reposErr != nil {
			return reposErr
		}
		pending, findErr := repos.transactions.FindByIDForUpdate(c, res.TransactionID)
		if findErr != nil {
			return findErr //nolint:wrapcheck
		}
		if pending.Status != domain.TransactionStatusPending {
			return nil
		}

		switch {
		case res.Error == nil && res.Status == vtu.StatusSuccess:
			settled, err := settleSuccess(c, repos, pending, res.VendorReference)
			if err != nil {
				return err
			}
			message := fmt.Sprintf("Your %s purchase of %s to %s was successful.",
				settled.Type, money.Naira(settled.Amount), settled.DestinationNumber)
			return notify(c, repos.notifications, settled.UserID, "Transaction Successful", message,
				domain.NotificationSuccess)
		case res.Error == nil && res.Status == vtu.StatusFailed, vtu.IsRejection(res.Error):
			return settleFailureWithNotice(c, repos, pending)
		}

		attempts, incErr := repos.transactions.IncrementAttempts(c, pending.ID)
		if incErr != nil {
			return incErr //nolint:wrapcheck
		}
		if attempts >= MaxRequeryAttempts {
			return settleFailureWithNotice(c, repos, pending)
		}
		return nil
	})
}

// purchase данные будущей записи и вызов поставщика с референсом созданной записи.
type purchase struct {
	create repoargs.CreateTransaction
	call   func(ctx context.Context, creds vtu.Credentials, reference string) (*vtu.Result, error)
}

func (p *PurchaseService) execute(
	ctx context.Context,
	settings *domain.Settings,
	order purchase,
) (*domain.Transaction, error) {
	pending, err := p.reserve(ctx, order.create)
	if err != nil {
		return nil, err
	}

	callCtx, cancel := context.WithTimeout(ctx, VendorCallTimeout)
	result, callErr := order.call(callCtx, credentials(settings), pending.Reference)
	cancel()

	// запись должна быть завершена, даже если клиент уже отключился.
	settleCtx := context.WithoutCancel(ctx)
	switch {
	case callErr == nil && result.Status == vtu.StatusSuccess:
		onSuccess := func(c context.Context, repos *txRepos, t *domain.Transaction) (*domain.Transaction, error) {
			return settleSuccess(c, repos, t, result.Reference)
		}
		return p.settle(settleCtx, pending.ID, domain.TransactionStatusSuccess, onSuccess)
	case callErr == nil && result.Status == vtu.StatusFailed:
		return p.reject(settleCtx, pending, result.Message)
	case vtu.IsRejection(callErr):
		return p.reject(settleCtx, pending, callErr.Error())
	}
	return pending, domain.ErrPurchasePending
}

// reserve блокирует юзера, проверяет баланс, списывает сумму с округлением и создает запись PENDING.
func (p *PurchaseService) reserve(ctx context.Context, create repoargs.CreateTransaction) (*domain.Transaction, error) {
	var pending *domain.Transaction
	txErr := p.uow.Do(ctx, func(c context.Context, tx uow.TX) error {
		repos, reposErr := walletRepos(tx)
		if reposErr != nil {
			return reposErr
		}
		user, userErr := repos.users.FindByIDForUpdate(c, create.UserID)
		if userErr != nil {
			return userErr //nolint:wrapcheck
		}
		if !user.IsActive() {
			return domain.ErrAccountBlocked
		}
		if user.Balance.LessThan(create.Amount) {
			return domain.ErrNotEnoughBalance
		}
		deduction := create.Amount.Add(create.RoundUp)
		if user.Balance.LessThan(deduction) {
			return domain.ErrNotEnoughForRoundUp
		}
		updated, changeErr := repos.users.ApplyBalanceChange(c, user.ID,
			repoargs.BalanceChange{Balance: deduction.Neg()})
		if changeErr != nil {
			return changeErr //nolint:wrapcheck
		}
		create.Status = domain.TransactionStatusPending
		create.Reference = newReference("REF", purchaseRefDigits)
		create.PreviousBalance = user.Balance
		create.NewBalance = updated.Balance

		var createErr error
		pending, createErr = repos.transactions.Create(c, create)
		return createErr //nolint:wrapcheck
	})
	if txErr != nil {
		return nil, txErr //nolint:wrapcheck
	}
	return pending, nil
}

type settleFunc func(ctx context.Context, repos *txRepos, t *domain.Transaction) (*domain.Transaction, error)

// settle блокирует запись и применяет fn, если она еще PENDING. Запись, уже завершенная с исходом want,
// возвращается как есть. Другой окончательный исход означает расхождение с поставщиком: запись не меняется,
// возвращается ErrSettlementConflict.
func (p *PurchaseService) settle(
	ctx context.Context,
	id int64,
	want domain.TransactionStatus,
	fn settleFunc,
) (*domain.Transaction, error) {
	var settled *domain.Transaction
	txErr := p.uow.Do(ctx, func(c context.Context, tx uow.TX) error {
		repos, reposErr := walletRepos(tx)
		if reposErr != nil {
			return reposErr
		}
		t, findErr := repos.transactions.FindByIDForUpdate(c, id)
		if findErr != nil {
			return findErr //nolint:wrapcheck
		}
		if t.Status != domain.TransactionStatusPending {
			settled = t
			return nil
		}
		var err error
		settled, err = fn(c, repos, t)
		return err
	})
	if txErr != nil {
		return nil, txErr //nolint:wrapcheck
	}
	if settled.Status != want {
		p.l.WithFields(logrus.Fields{
			"transaction": settled.ID,
			"reference":   settled.Reference,
			"status":      settled.Status,
			"outcome":     want,
		}).Error("vendor outcome differs from the settled transaction")
		return settled, fmt.Errorf("%w: transaction %s is %s, vendor reports %s",
			domain.ErrSettlementConflict, settled.Reference, settled.Status, want)
	}
	return settled, nil
}

func (p *PurchaseService) reject(ctx context.Context, pending *domain.Transaction, reason string) (
	*domain.Transaction, error,
) {
	failed, err := p.settle(ctx, pending.ID, domain.TransactionStatusFailed, settleFailure)
	if err != nil {
		return failed, err
	}
	return failed, domain.NewVendorRejectedError(failed, reason)
}

func settleSuccess(
	ctx context.Context,
	repos *txRepos,
	t *domain.Transaction,
	vendorRef string,
) (*domain.Transaction, error) {
	if t.RoundUp.IsPositive() {
		if _, err := repos.users.ApplyBalanceChange(ctx, t.UserID,
			repoargs.BalanceChange{Savings: t.RoundUp}); err != nil {
			return nil, err //nolint:wrapcheck
		}
	}
	return repos.transactions.UpdateStatus(ctx, repoargs.UpdateTransactionStatus{ //nolint:wrapcheck
		ID:              t.ID,
		Status:          domain.TransactionStatusSuccess,
		VendorReference: vendorRef,
	})
}

// settleFailure возвращает на баланс списанную сумму вместе с округлением.
func settleFailure(ctx context.Context, repos *txRepos, t *domain.Transaction) (*domain.Transaction, error) {
	user, err := repos.users.ApplyBalanceChange(ctx, t.UserID, repoargs.BalanceChange{Balance: t.Deduction()})
	if err != nil {
		return nil, err //nolint:wrapcheck
	}
	return repos.transactions.UpdateStatus(ctx, repoargs.UpdateTransactionStatus{ //nolint:wrapcheck
		ID:         t.ID,
		Status:     domain.TransactionStatusFailed,
		NewBalance: &user.Balance,
	})
}

func settleFailureWithNotice(ctx context.Context, repos *txRepos, t *domain.Transaction) error {
	failed, err := settleFailure(ctx, repos, t)
	if err != nil {
		return err
	}
	message := fmt.Sprintf("Your %s purchase of %s to %s failed. %s was returned to your wallet.",
		failed.Type, money.Naira(failed.Amount), failed.DestinationNumber, money.Naira(failed.Deduction()))
	return notify(ctx, repos.notifications, failed.UserID, "Transaction Failed", message, domain.NotificationError)
}

// available проверяет режим обслуживания и доступность оператора.
func (p *PurchaseService) available(ctx context.Context, provider string) (*domain.Settings, error) {
	settings, err := p.settings.Get(ctx)
	if err != nil {
		return nil, err //nolint:wrapcheck
	}
	if settings.MaintenanceMode {
		return nil, domain.ErrMaintenance
	}
	if !settings.IsProviderEnabled(provider) {
		return nil, domain.ErrProviderUnavailable
	}
	return settings, nil
}

func (p *PurchaseService) usableBundle(ctx context.Context, id int64) (*domain.Bundle, error) {
	bundle, err := p.bundleRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err //nolint:wrapcheck
	}
	if !bundle.IsAvailable {
		return nil, domain.ErrBundleUnavailable
	}
	if bundle.PlanID == "" {
		return nil, domain.ErrBundleMisconfigured
	}
	return bundle, nil
}

// roundUp сумма округления до следующей сотни, которая уходит в копилку.
func roundUp(amount decimal.Decimal, enabled bool) decimal.Decimal {
	if !enabled {
		return decimal.Zero
	}
	next := money.CeilToHundred(amount)
	if next.GreaterThan(amount) {
		return next.Sub(amount)
	}
	return decimal.Zero
}

func credentials(settings *domain.Settings) vtu.Credentials {
	return vtu.Credentials{Vendor: settings.ActiveAPIVendor, APIKey: settings.ActiveAPIKey()}
}
