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

// InstitutionRepo implements port.InstitutionRepository.
type InstitutionRepo struct {
	pool *pgxpool.Pool
}

// NewInstitutionRepo creates a new PostgreSQL-backed institution repository.
func NewInstitutionRepo(pool *pgxpool.Pool) *InstitutionRepo {
	return &InstitutionRepo{pool: pool}
}

// Save upserts an institution.
func (r *InstitutionRepo) Save(ctx context.Context, inst model.Institution) error {
	query := `
		INSERT INTO institutions (
			id, name, website, logo_url, loan_types,
			service_rating, active, created_at, updated_at
		) VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9)
		ON CONFLICT (id) DO UPDATE SET
			name           = EXCLUDED.name,
			website        = EXCLUDED.website,
			logo_url       = EXCLUDED.logo_url,
			loan_types     = EXCLUDED.loan_types,
			service_rating = EXCLUDED.service_rating,
			active         = EXCLUDED.active,
			updated_at     = EXCLUDED.updated_at
	`
	_, err := r.pool.Exec(ctx, query,
		inst.ID(), inst.Name(), inst.Website(), inst.LogoURL(), loanTypeStrings(inst.LoanTypes()),
		inst.ServiceRating(), inst.Active(), inst.CreatedAt(), inst.UpdatedAt(),
	)
	if err != nil {
		return fmt.Errorf("save institution: %w", err)
	}
	return nil
}

// FindByID retrieves an institution by ID.
func (r *InstitutionRepo) FindByID(ctx context.Context, id string) (model.Institution, error) {
	query := institutionSelect + ` WHERE id = $1`

	inst, err := scanInstitutionRow(r.pool.QueryRow(ctx, query, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return model.Institution{}, port.ErrInstitutionNotFound
	}
	if err != nil {
		return model.Institution{}, fmt.Errorf("find institution: %w", err)
	}
	return inst, nil
}

// ListActive retrieves every active institution.
func (r *InstitutionRepo) ListActive(ctx context.Context) ([]model.Institution, error) {
	query := institutionSelect + ` WHERE active ORDER BY created_at`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("query institutions: %w", err)
	}
	defer rows.Close()

	var institutions []model.Institution
	for rows.Next() {
		inst, err := scanInstitutionRow(rows)
		if err != nil {
			return nil, err
		}
		institutions = append(institutions, inst)
	}
	return institutions, rows.Err()
}
