package model

import (
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/loanscope/loanscope/internal/domain/valueobject"
)

// ---------------------------------------------------------------------------
// Institution aggregate root
// ---------------------------------------------------------------------------

// Institution is a lender offering loan products. Immutable; mutations
// return a new copy.
type Institution struct {
	id            string
	name          string
	website       string
	logoURL       string
	loanTypes     []valueobject.LoanType
	serviceRating float64
	active        bool
	createdAt     time.Time
	updatedAt     time.Time
}

// NewInstitution creates an active institution. serviceRating is the average
// customer review score on a 0-5 scale.
func NewInstitution(
	name, website, logoURL string,
	loanTypes []valueobject.LoanType,
	serviceRating float64,
	now time.Time,
) (Institution, error) {
	if name == "" {
		return Institution{}, errors.New("institution name is required")
	}
	if len(loanTypes) == 0 {
		return Institution{}, errors.New("institution must offer at least one loan type")
	}
	if serviceRating < 0 || serviceRating > 5 {
		return Institution{}, errors.New("service rating must be between 0 and 5")
	}

	return Institution{
		id:            uuid.New().String(),
		name:          name,
		website:       website,
		logoURL:       logoURL,
		loanTypes:     loanTypes,
		serviceRating: serviceRating,
		active:        true,
		createdAt:     now,
		updatedAt:     now,
	}, nil
}

// ReconstructInstitution rebuilds an Institution from persistence.
func ReconstructInstitution(
	id, name, website, logoURL string,
	loanTypes []valueobject.LoanType,
	serviceRating float64,
	active bool,
	createdAt, updatedAt time.Time,
) Institution {
	return Institution{
		id:            id,
		name:          name,
		website:       website,
		logoURL:       logoURL,
		loanTypes:     loanTypes,
		serviceRating: serviceRating,
		active:        active,
		createdAt:     createdAt,
		updatedAt:     updatedAt,
	}
}

// Offers reports whether the institution offers products of the given type.
func (i Institution) Offers(t valueobject.LoanType) bool {
	for _, lt := range i.loanTypes {
		if lt.Equal(t) {
			return true
		}
	}
	return false
}

// Deactivate marks the institution inactive.
func (i Institution) Deactivate(now time.Time) Institution {
	i.active = false
	i.updatedAt = now
	return i
}

// ---------------------------------------------------------------------------
// Getters
// ---------------------------------------------------------------------------

func (i Institution) ID() string                        { return i.id }
func (i Institution) Name() string                      { return i.name }
func (i Institution) Website() string                   { return i.website }
func (i Institution) LogoURL() string                   { return i.logoURL }
func (i Institution) LoanTypes() []valueobject.LoanType { return i.loanTypes }
func (i Institution) ServiceRating() float64            { return i.serviceRating }
func (i Institution) Active() bool                      { return i.active }
func (i Institution) CreatedAt() time.Time              { return i.createdAt }
func (i Institution) UpdatedAt() time.Time              { return i.updatedAt }
