package memory

import (
	"context"
	"sort"
	"sync"

	"github.com/loanscope/loanscope/internal/domain/model"
	"github.com/loanscope/loanscope/internal/domain/port"
	"github.com/loanscope/loanscope/internal/domain/valueobject"
)

// Store is an in-memory implementation of the catalog, institution, and
// rate-history ports, used by the seeder, local development, and tests.
// Products keep insertion order so query results preserve catalog order.
type Store struct {
	mu           sync.RWMutex
	institutions map[string]model.Institution
	products     []model.LoanProduct
	productIdx   map[string]int
	observations map[string][]model.RateObservation
}

// NewStore creates an empty store.
func NewStore() *Store {
	return &Store{
		institutions: make(map[string]model.Institution),
		productIdx:   make(map[string]int),
		observations: make(map[string][]model.RateObservation),
	}
}

// ---------------------------------------------------------------------------
// port.InstitutionRepository
// ---------------------------------------------------------------------------

func (s *Store) SaveInstitution(ctx context.Context, inst model.Institution) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.institutions[inst.ID()] = inst
	return nil
}

func (s *Store) FindInstitutionByID(ctx context.Context, id string) (model.Institution, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	inst, ok := s.institutions[id]
	if !ok {
		return model.Institution{}, port.ErrInstitutionNotFound
	}
	return inst, nil
}

func (s *Store) ListActiveInstitutions(ctx context.Context) ([]model.Institution, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var active []model.Institution
	for _, inst := range s.institutions {
		if inst.Active() {
			active = append(active, inst)
		}
	}
	sort.Slice(active, func(i, j int) bool {
		return active[i].CreatedAt().Before(active[j].CreatedAt())
	})
	return active, nil
}

// Institutions adapts the store to port.InstitutionRepository.
func (s *Store) Institutions() port.InstitutionRepository {
	return institutionView{s}
}

type institutionView struct{ s *Store }

func (v institutionView) Save(ctx context.Context, inst model.Institution) error {
	return v.s.SaveInstitution(ctx, inst)
}

func (v institutionView) FindByID(ctx context.Context, id string) (model.Institution, error) {
	return v.s.FindInstitutionByID(ctx, id)
}

func (v institutionView) ListActive(ctx context.Context) ([]model.Institution, error) {
	return v.s.ListActiveInstitutions(ctx)
}

// ---------------------------------------------------------------------------
// port.ProductCatalog
// ---------------------------------------------------------------------------

func (s *Store) Save(ctx context.Context, p model.LoanProduct) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if idx, ok := s.productIdx[p.ID()]; ok {
		s.products[idx] = p
		return nil
	}
	s.productIdx[p.ID()] = len(s.products)
	s.products = append(s.products, p)
	return nil
}

func (s *Store) FindByID(ctx context.Context, id string) (model.CatalogEntry, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	idx, ok := s.productIdx[id]
	if !ok {
		return model.CatalogEntry{}, port.ErrProductNotFound
	}
	return s.entry(s.products[idx])
}

func (s *Store) FindEligible(ctx context.Context, q model.EligibilityQuery) ([]model.CatalogEntry, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var entries []model.CatalogEntry
	for _, p := range s.products {
		if !p.Matches(q) {
			continue
		}
		entry, err := s.entry(p)
		if err != nil {
			return nil, err
		}
		entries = append(entries, entry)
	}
	return entries, nil
}

func (s *Store) ListByType(ctx context.Context, t valueobject.LoanType) ([]model.CatalogEntry, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var entries []model.CatalogEntry
	for _, p := range s.products {
		if !p.Active() || !p.LoanType().Equal(t) {
			continue
		}
		entry, err := s.entry(p)
		if err != nil {
			return nil, err
		}
		entries = append(entries, entry)
	}
	return entries, nil
}

// entry attaches the owning institution; callers hold the lock.
func (s *Store) entry(p model.LoanProduct) (model.CatalogEntry, error) {
	inst, ok := s.institutions[p.InstitutionID()]
	if !ok {
		return model.CatalogEntry{}, port.ErrInstitutionNotFound
	}
	return model.CatalogEntry{Product: p, Institution: inst}, nil
}

// ---------------------------------------------------------------------------
// port.RateHistoryRepository
// ---------------------------------------------------------------------------

func (s *Store) Append(ctx context.Context, obs model.RateObservation) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.observations[obs.ProductID()] = append(s.observations[obs.ProductID()], obs)
	return nil
}

func (s *Store) LatestApplicable(ctx context.Context, productID string, creditScore int) (model.RateObservation, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var (
		latest model.RateObservation
		found  bool
	)
	for _, obs := range s.observations[productID] {
		if !obs.AppliesTo(creditScore) {
			continue
		}
		if !found || obs.ObservedAt().After(latest.ObservedAt()) {
			latest = obs
			found = true
		}
	}
	if !found {
		return model.RateObservation{}, port.ErrNoApplicableRate
	}
	return latest, nil
}

func (s *Store) HistoryForProduct(ctx context.Context, productID string, limit int) ([]model.RateObservation, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	history := make([]model.RateObservation, len(s.observations[productID]))
	copy(history, s.observations[productID])
	sort.Slice(history, func(i, j int) bool {
		return history[i].ObservedAt().After(history[j].ObservedAt())
	})
	if limit > 0 && len(history) > limit {
		history = history[:limit]
	}
	return history, nil
}
