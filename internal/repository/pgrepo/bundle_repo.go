package pgrepo

import (
	"context"

	"github.com/fsdevblog/jadanpay/internal/domain"
	"github.com/fsdevblog/jadanpay/pkg/uow"
	"github.com/jackc/pgx/v5"
)

const bundleColumns = `id, plan_id, provider, type, name, price, cost_price, data_amount, validity, is_best_value,
	is_available`

type BundleRepository struct {
	db uow.DBTX
}

func NewBundleRepository(conn uow.DBTX) *BundleRepository {
	return &BundleRepository{db: conn}
}

// List возвращает тарифы. Пустой provider означает всех операторов.
func (b *BundleRepository) List(ctx context.Context, provider string, onlyAvailable bool) ([]domain.Bundle, error) {
	rows, err := b.db.Query(ctx, `
		SELECT `+bundleColumns+` FROM bundles
		WHERE ($1 = '' OR provider = $1) AND (NOT $2 OR is_available)
		ORDER BY provider, price, id`, provider, onlyAvailable)
	if err != nil {
		return nil, convertErr(err, "listing bundles")
	}
	bundles, err := pgx.CollectRows(rows, collectBundle)
	if err != nil {
		return nil, convertErr(err, "scanning bundles")
	}
	return bundles, nil
}

func (b *BundleRepository) FindByID(ctx context.Context, id int64) (*domain.Bundle, error) {
	bundle, err := scanBundle(b.db.QueryRow(ctx, `SELECT `+bundleColumns+` FROM bundles WHERE id = $1`, id))
	if err != nil {
		return nil, convertErr(err, "finding bundle %d", id)
	}
	return bundle, nil
}

// Save создает тариф, если ID нулевой, иначе обновляет существующий.
func (b *BundleRepository) Save(ctx context.Context, bundle domain.Bundle) (*domain.Bundle, error) {
	var row pgx.Row
	if bundle.ID == 0 {
		row = b.db.QueryRow(ctx, `
			INSERT INTO bundles (plan_id, provider, type, name, price, cost_price, data_amount, validity,
			                     is_best_value, is_available)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
			RETURNING `+bundleColumns,
			bundle.PlanID, bundle.Provider, string(bundle.Type), bundle.Name, bundle.Price, bundle.CostPrice,
			bundle.DataAmount, bundle.Validity, bundle.IsBestValue, bundle.IsAvailable,
		)
	} else {
		row = b.db.QueryRow(ctx, `
			UPDATE bundles
			SET plan_id = $2, provider = $3, type = $4, name = $5, price = $6, cost_price = $7, data_amount = $8,
			    validity = $9, is_best_value = $10, is_available = $11
			WHERE id = $1
			RETURNING `+bundleColumns,
			bundle.ID, bundle.PlanID, bundle.Provider, string(bundle.Type), bundle.Name, bundle.Price,
			bundle.CostPrice, bundle.DataAmount, bundle.Validity, bundle.IsBestValue, bundle.IsAvailable,
		)
	}
	saved, err := scanBundle(row)
	if err != nil {
		return nil, convertErr(err, "saving bundle %d", bundle.ID)
	}
	return saved, nil
}

func (b *BundleRepository) Delete(ctx context.Context, id int64) error {
	tag, err := b.db.Exec(ctx, `DELETE FROM bundles WHERE id = $1`, id)
	if err != nil {
		return convertErr(err, "deleting bundle %d", id)
	}
	return affectedOne(tag, "deleting bundle %d", id)
}

func (b *BundleRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	if err := b.db.QueryRow(ctx, `SELECT count(*) FROM bundles`).Scan(&count); err != nil {
		return 0, convertErr(err, "counting bundles")
	}
	return count, nil
}

func collectBundle(row pgx.CollectableRow) (domain.Bundle, error) {
	bundle, err := scanBundle(row)
	if err != nil {
		return domain.Bundle{}, err
	}
	return *bundle, nil
}

func scanBundle(row pgx.Row) (*domain.Bundle, error) {
	var (
		bundle   domain.Bundle
		planType string
	)
	err := row.Scan(
		&bundle.ID, &bundle.PlanID, &bundle.Provider, &planType, &bundle.Name, &bundle.Price, &bundle.CostPrice,
		&bundle.DataAmount, &bundle.Validity, &bundle.IsBestValue, &bundle.IsAvailable,
	)
	if err != nil {
		return nil, err //nolint:wrapcheck
	}
	bundle.Type = domain.PlanType(planType)
	return &bundle, nil
}
