package model

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/loanscope/loanscope/internal/domain/valueobject"
)

// ---------------------------------------------------------------------------
// LoanProduct aggregate root (Catalog)
// ---------------------------------------------------------------------------

// LoanProduct is a single offering in an institution's catalog. Immutable;
// mutations return a new copy. A zero MaxAmount or MaxTermMonths means the
// corresponding upper bound is open.
type LoanProduct struct {
	id             string
	institutionID  string
	name           string
	loanType       valueobject.LoanType
	minAmount      decimal.Decimal
	maxAmount      decimal.Decimal
	minTermMonths  int
	maxTermMonths  int
	baseRateBps    int
	variableRate   bool
	minCreditScore int
	perks          []string
	requirements   []string
	hasFees        bool
	active         bool
	createdAt      time.Time
	updatedAt      time.Time
}

// NewLoanProduct creates an active product, enforcing min <= max for both
// the amount and term bounds when an upper bound is set.
func NewLoanProduct(
	institutionID, name string,
	loanType valueobject.LoanType,
	minAmount, maxAmount decimal.Decimal,
	minTermMonths, maxTermMonths int,
	baseRateBps int,
	variableRate bool,
	minCreditScore int,
	perks, requirements []string,
	hasFees bool,
	now time.Time,
) (LoanProduct, error) {
	if institutionID == "" {
		return LoanProduct{}, errors.New("institution ID is required")
	}
	if name == "" {
		return LoanProduct{}, errors.New("product name is required")
	}
	if loanType.IsZero() {
		return LoanProduct{}, errors.New("loan type is required")
	}
	if minAmount.IsNegative() {
		return LoanProduct{}, errors.New("minimum amount must not be negative")
	}
	if maxAmount.IsPositive() && minAmount.GreaterThan(maxAmount) {
		return LoanProduct{}, errors.New("minimum amount exceeds maximum amount")
	}
	if minTermMonths < 0 {
		return LoanProduct{}, errors.New("minimum term must not be negative")
	}
	if maxTermMonths > 0 && minTermMonths > maxTermMonths {
		return LoanProduct{}, errors.New("minimum term exceeds maximum term")
	}
	if baseRateBps < 0 {
		return LoanProduct{}, errors.New("base rate must not be negative")
	}
	if minCreditScore < 0 {
		return LoanProduct{}, errors.New("minimum credit score must not be negative")
	}

	return LoanProduct{
		id:             uuid.New().String(),
		institutionID:  institutionID,
		name:           name,
		loanType:       loanType,
		minAmount:      minAmount,
		maxAmount:      maxAmount,
		minTermMonths:  minTermMonths,
		maxTermMonths:  maxTermMonths,
		baseRateBps:    baseRateBps,
		variableRate:   variableRate,
		minCreditScore: minCreditScore,
		perks:          perks,
		requirements:   requirements,
		hasFees:        hasFees,
		active:         true,
		createdAt:      now,
		updatedAt:      now,
	}, nil
}

// ReconstructLoanProduct rebuilds a LoanProduct from persistence.
func ReconstructLoanProduct(
	id, institutionID, name string,
	loanType valueobject.LoanType,
	minAmount, maxAmount decimal.Decimal,
	minTermMonths, maxTermMonths int,
	baseRateBps int,
	variableRate bool,
	minCreditScore int,
	perks, requirements []string,
	hasFees bool,
	active bool,
	createdAt, updatedAt time.Time,
) LoanProduct {
	return LoanProduct{
		id:             id,
		institutionID:  institutionID,
		name:           name,
		loanType:       loanType,
		minAmount:      minAmount,
		maxAmount:      maxAmount,
		minTermMonths:  minTermMonths,
		maxTermMonths:  maxTermMonths,
		baseRateBps:    baseRateBps,
		variableRate:   variableRate,
		minCreditScore: minCreditScore,
		perks:          perks,
		requirements:   requirements,
		hasFees:        hasFees,
		active:         active,
		createdAt:      createdAt,
		updatedAt:      updatedAt,
	}
}

// ---------------------------------------------------------------------------
// Eligibility
// ---------------------------------------------------------------------------

// EligibilityQuery is the borrower's requested loan shape.
type EligibilityQuery struct {
	LoanType    valueobject.LoanType
	Amount      decimal.Decimal
	TermMonths  int
	CreditScore int
}

// Matches reports whether the product admits the query: loan type matches
// exactly, the amount and term fall within the product bounds (open upper
// bounds admit everything above the minimum), the borrower's score meets the
// floor, and the product is active.
func (p LoanProduct) Matches(q EligibilityQuery) bool {
	if !p.active {
		return false
	}
	if !p.loanType.Equal(q.LoanType) {
		return false
	}
	if q.Amount.LessThan(p.minAmount) {
		return false
	}
	if p.maxAmount.IsPositive() && q.Amount.GreaterThan(p.maxAmount) {
		return false
	}
	if q.TermMonths < p.minTermMonths {
		return false
	}
	if p.maxTermMonths > 0 && q.TermMonths > p.maxTermMonths {
		return false
	}
	if q.CreditScore < p.minCreditScore {
		return false
	}
	return true
}

// Relax returns a copy of the query with the credit-score floor lowered and
// the term window widened, used for alternative suggestions when nothing
// matches the original query.
func (q EligibilityQuery) Relax(scorePoints, termMonths int) EligibilityQuery {
	relaxed := q
	relaxed.CreditScore = q.CreditScore + scorePoints
	relaxed.TermMonths = q.TermMonths + termMonths
	return relaxed
}

// Deactivate marks the product inactive.
func (p LoanProduct) Deactivate(now time.Time) LoanProduct {
	p.active = false
	p.updatedAt = now
	return p
}

// CatalogEntry pairs a product with its owning institution, the shape
// catalog queries return.
type CatalogEntry struct {
	Product     LoanProduct
	Institution Institution
}

// ---------------------------------------------------------------------------
// Getters
// ---------------------------------------------------------------------------

func (p LoanProduct) ID() string                     { return p.id }
func (p LoanProduct) InstitutionID() string          { return p.institutionID }
func (p LoanProduct) Name() string                   { return p.name }
func (p LoanProduct) LoanType() valueobject.LoanType { return p.loanType }
func (p LoanProduct) MinAmount() decimal.Decimal     { return p.minAmount }
func (p LoanProduct) MaxAmount() decimal.Decimal     { return p.maxAmount }
func (p LoanProduct) MinTermMonths() int             { return p.minTermMonths }
func (p LoanProduct) MaxTermMonths() int             { return p.maxTermMonths }
func (p LoanProduct) BaseRateBps() int               { return p.baseRateBps }
func (p LoanProduct) VariableRate() bool             { return p.variableRate }
func (p LoanProduct) MinCreditScore() int            { return p.minCreditScore }
func (p LoanProduct) Perks() []string                { return p.perks }
func (p LoanProduct) Requirements() []string         { return p.requirements }
func (p LoanProduct) HasFees() bool                  { return p.hasFees }
func (p LoanProduct) Active() bool                   { return p.active }
func (p LoanProduct) CreatedAt() time.Time           { return p.createdAt }
func (p LoanProduct) UpdatedAt() time.Time           { return p.updatedAt }
