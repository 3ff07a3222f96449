package adapter

import (
	"context"
	"fmt"
	"math/rand"
	"sync"

	"github.com/loanscope/loanscope/internal/domain/port"
)

// InstitutionRatingSource implements port.ServiceRatingSource from the
// institution's stored average review rating, scaled from 0-5 to [0, 1].
// Deterministic for the same stored data, which keeps ranking reproducible.
type InstitutionRatingSource struct {
	institutions port.InstitutionRepository
}

// NewInstitutionRatingSource wires the repository.
func NewInstitutionRatingSource(institutions port.InstitutionRepository) *InstitutionRatingSource {
	return &InstitutionRatingSource{institutions: institutions}
}

// Rating returns the institution's review rating scaled to [0, 1].
func (s *InstitutionRatingSource) Rating(ctx context.Context, institutionID string) (float64, error) {
	inst, err := s.institutions.FindByID(ctx, institutionID)
	if err != nil {
		return 0, fmt.Errorf("find institution %s: %w", institutionID, err)
	}
	return inst.ServiceRating() / 5.0, nil
}

// StubRatingSource draws a seeded pseudo-random rating in [0.6, 0.95] per
// institution, memoized so repeated lookups within a process agree. For
// development and tests only; production wiring uses stored review data.
type StubRatingSource struct {
	mu      sync.Mutex
	rng     *rand.Rand
	ratings map[string]float64
}

// NewStubRatingSource creates a stub with the given seed.
func NewStubRatingSource(seed int64) *StubRatingSource {
	return &StubRatingSource{
		rng:     rand.New(rand.NewSource(seed)),
		ratings: make(map[string]float64),
	}
}

// Rating returns the memoized pseudo-random rating for the institution.
func (s *StubRatingSource) Rating(_ context.Context, institutionID string) (float64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if rating, ok := s.ratings[institutionID]; ok {
		return rating, nil
	}
	rating := 0.6 + s.rng.Float64()*0.35
	s.ratings[institutionID] = rating
	return rating, nil
}
