package postgres

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/loanscope/loanscope/internal/domain/model"
	"github.com/loanscope/loanscope/internal/domain/valueobject"
)

// rowScanner abstracts pgx.Row and pgx.Rows for shared scan helpers.
type rowScanner interface {
	Scan(dest ...any) error
}

const institutionSelect = `
	SELECT id, name, website, logo_url, loan_types,
	       service_rating, active, created_at, updated_at
	FROM institutions
`

func scanInstitutionRow(row rowScanner) (model.Institution, error) {
	var (
		id, name, website, logoURL string
		loanTypes                  []string
		serviceRating              float64
		active                     bool
		createdAt, updatedAt       time.Time
	)
	if err := row.Scan(
		&id, &name, &website, &logoURL, &loanTypes,
		&serviceRating, &active, &createdAt, &updatedAt,
	); err != nil {
		return model.Institution{}, err
	}

	types, err := parseLoanTypes(loanTypes)
	if err != nil {
		return model.Institution{}, fmt.Errorf("institution %s: %w", id, err)
	}

	return model.ReconstructInstitution(
		id, name, website, logoURL,
		types, serviceRating, active, createdAt, updatedAt,
	), nil
}

// catalogEntrySelect joins products with their owning institution so
// catalog queries return both in one round trip.
const catalogEntrySelect = `
	SELECT p.id, p.institution_id, p.name, p.loan_type,
	       p.min_amount, p.max_amount, p.min_term_months, p.max_term_months,
	       p.base_rate_bps, p.variable_rate, p.min_credit_score,
	       p.perks, p.requirements, p.has_fees, p.active,
	       p.created_at, p.updated_at,
	       i.name, i.website, i.logo_url, i.loan_types,
	       i.service_rating, i.active, i.created_at, i.updated_at
	FROM loan_products p
	JOIN institutions i ON i.id = p.institution_id
`

func scanCatalogEntryRow(row rowScanner) (model.CatalogEntry, error) {
	var (
		id, institutionID, name, loanTypeStr string
		minAmount, maxAmount                 decimal.Decimal
		minTerm, maxTerm                     int
		baseRateBps                          int
		variableRate                         bool
		minCreditScore                       int
		perks, requirements                  []string
		hasFees, active                      bool
		createdAt, updatedAt                 time.Time

		instName, instWebsite, instLogoURL string
		instLoanTypes                      []string
		instServiceRating                  float64
		instActive                         bool
		instCreatedAt, instUpdatedAt       time.Time
	)
	if err := row.Scan(
		&id, &institutionID, &name, &loanTypeStr,
		&minAmount, &maxAmount, &minTerm, &maxTerm,
		&baseRateBps, &variableRate, &minCreditScore,
		&perks, &requirements, &hasFees, &active,
		&createdAt, &updatedAt,
		&instName, &instWebsite, &instLogoURL, &instLoanTypes,
		&instServiceRating, &instActive, &instCreatedAt, &instUpdatedAt,
	); err != nil {
		return model.CatalogEntry{}, err
	}

	loanType, err := valueobject.ParseLoanType(loanTypeStr)
	if err != nil {
		return model.CatalogEntry{}, fmt.Errorf("product %s: %w", id, err)
	}
	instTypes, err := parseLoanTypes(instLoanTypes)
	if err != nil {
		return model.CatalogEntry{}, fmt.Errorf("institution %s: %w", institutionID, err)
	}

	product := model.ReconstructLoanProduct(
		id, institutionID, name, loanType,
		minAmount, maxAmount, minTerm, maxTerm,
		baseRateBps, variableRate, minCreditScore,
		perks, requirements, hasFees, active,
		createdAt, updatedAt,
	)
	institution := model.ReconstructInstitution(
		institutionID, instName, instWebsite, instLogoURL,
		instTypes, instServiceRating, instActive,
		instCreatedAt, instUpdatedAt,
	)
	return model.CatalogEntry{Product: product, Institution: institution}, nil
}

const observationSelect = `
	SELECT id, product_id, observed_at, rate_bps, term_months,
	       score_min, score_max, conditions
	FROM rate_observations
`

func scanObservationRow(row rowScanner) (model.RateObservation, error) {
	var (
		id, productID        string
		observedAt           time.Time
		rateBps, termMonths  int
		scoreMin, scoreMax   int
		conditions           []string
	)
	if err := row.Scan(
		&id, &productID, &observedAt, &rateBps, &termMonths,
		&scoreMin, &scoreMax, &conditions,
	); err != nil {
		return model.RateObservation{}, err
	}

	scoreRange, err := valueobject.NewCreditScoreRange(scoreMin, scoreMax)
	if err != nil {
		return model.RateObservation{}, fmt.Errorf("observation %s: %w", id, err)
	}

	return model.ReconstructRateObservation(
		id, productID, observedAt, rateBps, termMonths, scoreRange, conditions,
	), nil
}

func parseLoanTypes(values []string) ([]valueobject.LoanType, error) {
	types := make([]valueobject.LoanType, len(values))
	for i, v := range values {
		t, err := valueobject.ParseLoanType(v)
		if err != nil {
			return nil, err
		}
		types[i] = t
	}
	return types, nil
}

func loanTypeStrings(types []valueobject.LoanType) []string {
	values := make([]string, len(types))
	for i, t := range types {
		values[i] = t.String()
	}
	return values
}
