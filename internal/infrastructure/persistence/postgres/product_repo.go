package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/loanscope/loanscope/internal/domain/model"
	"github.com/loanscope/loanscope/internal/domain/port"
	"github.com/loanscope/loanscope/internal/domain/valueobject"
)

// ProductRepo implements port.ProductCatalog.
type ProductRepo struct {
	pool *pgxpool.Pool
}

// NewProductRepo creates a new PostgreSQL-backed product catalog.
func NewProductRepo(pool *pgxpool.Pool) *ProductRepo {
	return &ProductRepo{pool: pool}
}

// Save upserts a product.
func (r *ProductRepo) Save(ctx context.Context, p model.LoanProduct) error {
	query := `
		INSERT INTO loan_products (
			id, institution_id, name, loan_type,
			min_amount, max_amount, min_term_months, max_term_months,
			base_rate_bps, variable_rate, min_credit_score,
			perks, requirements, has_fees, active,
			created_at, updated_at
		) VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12,$13,$14,$15,$16,$17)
		ON CONFLICT (id) DO UPDATE SET
			name             = EXCLUDED.name,
			min_amount       = EXCLUDED.min_amount,
			max_amount       = EXCLUDED.max_amount,
			min_term_months  = EXCLUDED.min_term_months,
			max_term_months  = EXCLUDED.max_term_months,
			base_rate_bps    = EXCLUDED.base_rate_bps,
			variable_rate    = EXCLUDED.variable_rate,
			min_credit_score = EXCLUDED.min_credit_score,
			perks            = EXCLUDED.perks,
			requirements     = EXCLUDED.requirements,
			has_fees         = EXCLUDED.has_fees,
			active           = EXCLUDED.active,
			updated_at       = EXCLUDED.updated_at
	`
	_, err := r.pool.Exec(ctx, query,
		p.ID(), p.InstitutionID(), p.Name(), p.LoanType().String(),
		p.MinAmount(), p.MaxAmount(), p.MinTermMonths(), p.MaxTermMonths(),
		p.BaseRateBps(), p.VariableRate(), p.MinCreditScore(),
		p.Perks(), p.Requirements(), p.HasFees(), p.Active(),
		p.CreatedAt(), p.UpdatedAt(),
	)
	if err != nil {
		return fmt.Errorf("save product: %w", err)
	}
	return nil
}

// FindByID retrieves a product with its institution attached.
func (r *ProductRepo) FindByID(ctx context.Context, id string) (model.CatalogEntry, error) {
	query := catalogEntrySelect + ` WHERE p.id = $1`

	entry, err := scanCatalogEntryRow(r.pool.QueryRow(ctx, query, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return model.CatalogEntry{}, port.ErrProductNotFound
	}
	if err != nil {
		return model.CatalogEntry{}, fmt.Errorf("find product: %w", err)
	}
	return entry, nil
}

// FindEligible returns active products admitting the query, in catalog
// order. A zero upper bound on amount or term is open-ended.
func (r *ProductRepo) FindEligible(ctx context.Context, q model.EligibilityQuery) ([]model.CatalogEntry, error) {
	query := catalogEntrySelect + `
		WHERE p.active
		  AND p.loan_type = $1
		  AND p.min_amount <= $2
		  AND (p.max_amount = 0 OR p.max_amount >= $2)
		  AND p.min_term_months <= $3
		  AND (p.max_term_months = 0 OR p.max_term_months >= $3)
		  AND p.min_credit_score <= $4
		ORDER BY p.created_at
	`
	rows, err := r.pool.Query(ctx, query,
		q.LoanType.String(), q.Amount, q.TermMonths, q.CreditScore,
	)
	if err != nil {
		return nil, fmt.Errorf("query eligible products: %w", err)
	}
	defer rows.Close()

	return collectEntries(rows)
}

// ListByType returns every active product of the given type in catalog
// order.
func (r *ProductRepo) ListByType(ctx context.Context, t valueobject.LoanType) ([]model.CatalogEntry, error) {
	query := catalogEntrySelect + `
		WHERE p.active AND p.loan_type = $1
		ORDER BY p.created_at
	`
	rows, err := r.pool.Query(ctx, query, t.String())
	if err != nil {
		return nil, fmt.Errorf("query products: %w", err)
	}
	defer rows.Close()

	return collectEntries(rows)
}

func collectEntries(rows pgx.Rows) ([]model.CatalogEntry, error) {
	var entries []model.CatalogEntry
	for rows.Next() {
		entry, err := scanCatalogEntryRow(rows)
		if err != nil {
			return nil, err
		}
		entries = append(entries, entry)
	}
	return entries, rows.Err()
}
