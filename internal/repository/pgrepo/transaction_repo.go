package pgrepo

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/fsdevblog/jadanpay/internal/domain"
	"github.com/fsdevblog/jadanpay/internal/repository/repoargs"
	"github.com/fsdevblog/jadanpay/pkg/uow"
	"github.com/jackc/pgx/v5"
)

const transactionColumns = `id, created_at, updated_at, user_id, type, provider, amount, cost_price, profit,
	round_up, destination_number, bundle_name, status, reference, vendor_reference, previous_balance,
	new_balance, payment_method, proof_url, admin_action_at, customer_name, attempts`

type TransactionRepository struct {
	db uow.DBTX
}

func NewTransactionRepository(conn uow.DBTX) *TransactionRepository {
	return &TransactionRepository{db: conn}
}

func (t *TransactionRepository) Create(
	ctx context.Context,
	args repoargs.CreateTransaction,
) (*domain.Transaction, error) {
	row := t.db.QueryRow(ctx, `
		INSERT INTO transactions (user_id, type, provider, amount, cost_price, profit, round_up,
		                          destination_number, bundle_name, status, reference, previous_balance,
		                          new_balance, payment_method, proof_url, customer_name)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10,
		        $11, $12, $13, $14, $15, $16)
		RETURNING `+transactionColumns,
		args.UserID, string(args.Type), args.Provider, args.Amount, args.CostPrice, args.Profit, args.RoundUp,
		args.DestinationNumber, args.BundleName, string(args.Status), args.Reference, args.PreviousBalance,
		args.NewBalance, args.PaymentMethod, args.ProofURL, args.CustomerName,
	)
	tx, err := scanTransaction(row)
	if err != nil {
		return nil, convertErr(err, "creating transaction %s", args.Reference)
	}
	return tx, nil
}

func (t *TransactionRepository) FindByID(ctx context.Context, id int64) (*domain.Transaction, error) {
	row := t.db.QueryRow(ctx, `SELECT `+transactionColumns+` FROM transactions WHERE id = $1`, id)
	tx, err := scanTransaction(row)
	if err != nil {
		return nil, convertErr(err, "finding transaction %d", id)
	}
	return tx, nil
}

// FindByIDForUpdate блокирует транзакцию до конца текущей транзакции БД.
func (t *TransactionRepository) FindByIDForUpdate(ctx context.Context, id int64) (*domain.Transaction, error) {
	row := t.db.QueryRow(ctx, `SELECT `+transactionColumns+` FROM transactions WHERE id = $1 FOR UPDATE`, id)
	tx, err := scanTransaction(row)
	if err != nil {
		return nil, convertErr(err, "locking transaction %d", id)
	}
	return tx, nil
}

// UpdateStatus меняет статус транзакции. Необязательные поля, переданные как nil или пустые,
// сохраняют прежние значения.
func (t *TransactionRepository) UpdateStatus(
	ctx context.Context,
	args repoargs.UpdateTransactionStatus,
) (*domain.Transaction, error) {
	row := t.db.QueryRow(ctx, `
		UPDATE transactions
		SET status           = $2,
		    vendor_reference = CASE WHEN $3 = '' THEN vendor_reference ELSE $3 END,
		    previous_balance = COALESCE($4, previous_balance),
		    new_balance      = COALESCE($5, new_balance),
		    admin_action_at  = COALESCE($6, admin_action_at),
		    updated_at       = now()
		WHERE id = $1
		RETURNING `+transactionColumns,
		args.ID, string(args.Status), args.VendorReference, args.PreviousBalance, args.NewBalance, args.AdminActionAt,
	)
	tx, err := scanTransaction(row)
	if err != nil {
		return nil, convertErr(err, "updating status of transaction %d", args.ID)
	}
	return tx, nil
}

// IncrementAttempts увеличивает счетчик повторных запросов статуса у поставщика.
func (t *TransactionRepository) IncrementAttempts(ctx context.Context, id int64) (uint, error) {
	var attempts int32
	row := t.db.QueryRow(ctx, `
		UPDATE transactions SET attempts = attempts + 1, updated_at = now() WHERE id = $1 RETURNING attempts`, id)
	if err := row.Scan(&attempts); err != nil {
		return 0, convertErr(err, "incrementing attempts of transaction %d", id)
	}
	return uint(attempts), nil //nolint:gosec
}

// List возвращает транзакции, отсортированные от новых к старым.
func (t *TransactionRepository) List(
	ctx context.Context,
	filter repoargs.TransactionFilter,
) ([]domain.Transaction, error) {
	var (
		where []string
		args  []any
	)
	if filter.UserID != nil {
		args = append(args, *filter.UserID)
		where = append(where, fmt.Sprintf("user_id = $%d", len(args)))
	}
	if len(filter.Types) > 0 {
		types := make([]string, len(filter.Types))
		for i, tt := range filter.Types {
			types[i] = string(tt)
		}
		args = append(args, types)
		where = append(where, fmt.Sprintf("type = ANY($%d::text[])", len(args)))
	}
	if filter.Status != nil {
		args = append(args, string(*filter.Status))
		where = append(where, fmt.Sprintf("status = $%d", len(args)))
	}

	query := `SELECT ` + transactionColumns + ` FROM transactions`
	if len(where) > 0 {
		query += ` WHERE ` + strings.Join(where, " AND ")
	}
	query += ` ORDER BY created_at DESC, id DESC`
	if filter.Limit > 0 {
		args = append(args, int64(filter.Limit))
		query += fmt.Sprintf(" LIMIT $%d", len(args))
	}

	rows, err := t.db.Query(ctx, query, args...)
	if err != nil {
		return nil, convertErr(err, "listing transactions")
	}
	txs, err := pgx.CollectRows(rows, collectTransaction)
	if err != nil {
		return nil, convertErr(err, "scanning transactions")
	}
	return txs, nil
}

// ListPendingPurchases возвращает покупки в статусе PENDING старше minAge, начиная с самых старых. Строки не
// блокируются: статус каждой покупки перепроверяется под блокировкой при ее завершении.
func (t *TransactionRepository) ListPendingPurchases(
	ctx context.Context,
	minAge time.Duration,
	limit uint,
) ([]domain.Transaction, error) {
	rows, err := t.db.Query(ctx, `
		SELECT `+transactionColumns+` FROM transactions
		WHERE status = 'PENDING' AND type IN ('AIRTIME', 'DATA', 'CABLE', 'ELECTRICITY')
			AND created_at < now() - make_interval(secs => $1)
		ORDER BY created_at, id
		LIMIT $2`, minAge.Seconds(), int64(limit)) //nolint:gosec
	if err != nil {
		return nil, convertErr(err, "listing pending purchases")
	}
	txs, err := pgx.CollectRows(rows, collectTransaction)
	if err != nil {
		return nil, convertErr(err, "scanning pending purchases")
	}
	return txs, nil
}

func collectTransaction(row pgx.CollectableRow) (domain.Transaction, error) {
	tx, err := scanTransaction(row)
	if err != nil {
		return domain.Transaction{}, err
	}
	return *tx, nil
}

func scanTransaction(row pgx.Row) (*domain.Transaction, error) {
	var (
		tx       domain.Transaction
		txType   string
		status   string
		attempts int32
	)
	err := row.Scan(
		&tx.ID, &tx.CreatedAt, &tx.UpdatedAt, &tx.UserID, &txType, &tx.Provider, &tx.Amount, &tx.CostPrice,
		&tx.Profit, &tx.RoundUp, &tx.DestinationNumber, &tx.BundleName, &status, &tx.Reference,
		&tx.VendorReference, &tx.PreviousBalance, &tx.NewBalance, &tx.PaymentMethod, &tx.ProofURL,
		&tx.AdminActionAt, &tx.CustomerName, &attempts,
	)
	if err != nil {
		return nil, err //nolint:wrapcheck
	}
	tx.Type = domain.TransactionType(txType)
	tx.Status = domain.TransactionStatus(status)
	tx.Attempts = uint(attempts) //nolint:gosec
	return &tx, nil
}
