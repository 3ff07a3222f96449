package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/loanscope/loanscope/internal/domain/model"
	"github.com/loanscope/loanscope/internal/domain/port"
)

// RateRepo implements port.RateHistoryRepository. The table is append-only.
type RateRepo struct {
	pool *pgxpool.Pool
}

// NewRateRepo creates a new PostgreSQL-backed rate history repository.
func NewRateRepo(pool *pgxpool.Pool) *RateRepo {
	return &RateRepo{pool: pool}
}

// Append inserts a new observation.
func (r *RateRepo) Append(ctx context.Context, obs model.RateObservation) error {
	query := `
		INSERT INTO rate_observations (
			id, product_id, observed_at, rate_bps, term_months,
			score_min, score_max, conditions
		) VALUES ($1,$2,$3,$4,$5,$6,$7,$8)
	`
	_, err := r.pool.Exec(ctx, query,
		obs.ID(), obs.ProductID(), obs.ObservedAt(), obs.RateBps(), obs.TermMonths(),
		obs.ScoreRange().Min(), obs.ScoreRange().Max(), obs.Conditions(),
	)
	if err != nil {
		return fmt.Errorf("append observation: %w", err)
	}
	return nil
}

// LatestApplicable returns the newest observation whose score band contains
// the given credit score.
func (r *RateRepo) LatestApplicable(ctx context.Context, productID string, creditScore int) (model.RateObservation, error) {
	query := observationSelect + `
		WHERE product_id = $1
		  AND score_min <= $2
		  AND score_max >= $2
		ORDER BY observed_at DESC
		LIMIT 1
	`
	obs, err := scanObservationRow(r.pool.QueryRow(ctx, query, productID, creditScore))
	if errors.Is(err, pgx.ErrNoRows) {
		return model.RateObservation{}, port.ErrNoApplicableRate
	}
	if err != nil {
		return model.RateObservation{}, fmt.Errorf("find latest rate: %w", err)
	}
	return obs, nil
}

// HistoryForProduct returns up to limit observations, newest first.
func (r *RateRepo) HistoryForProduct(ctx context.Context, productID string, limit int) ([]model.RateObservation, error) {
	query := observationSelect + `
		WHERE product_id = $1
		ORDER BY observed_at DESC
		LIMIT $2
	`
	rows, err := r.pool.Query(ctx, query, productID, limit)
	if err != nil {
		return nil, fmt.Errorf("query rate history: %w", err)
	}
	defer rows.Close()

	var history []model.RateObservation
	for rows.Next() {
		obs, err := scanObservationRow(rows)
		if err != nil {
			return nil, err
		}
		history = append(history, obs)
	}
	return history, rows.Err()
}
