package adapter

import (
	"context"
	"math/rand"
	"sync"
	"time"

	"github.com/loanscope/loanscope/internal/domain/model"
	"github.com/loanscope/loanscope/internal/domain/valueobject"
)

// MockRateFeedConfig tunes the simulated quote generator.
type MockRateFeedConfig struct {
	Seed int64
	// DriftBps is the maximum absolute drift applied to a product's base
	// rate on each poll, in basis points.
	DriftBps int
}

// MockRateFeed implements port.RateFeed with simulated quotes derived from
// each product's published base rate plus a small seeded random drift.
// Stands in for institution rate APIs during development.
type MockRateFeed struct {
	mu  sync.Mutex
	rng *rand.Rand
	cfg MockRateFeedConfig
}

// NewMockRateFeed creates a feed with the given config. A zero DriftBps
// defaults to 25.
func NewMockRateFeed(cfg MockRateFeedConfig) *MockRateFeed {
	if cfg.DriftBps <= 0 {
		cfg.DriftBps = 25
	}
	return &MockRateFeed{
		rng: rand.New(rand.NewSource(cfg.Seed)),
		cfg: cfg,
	}
}

// Quotes returns one simulated observation per advertised credit band.
func (f *MockRateFeed) Quotes(_ context.Context, product model.LoanProduct) ([]model.RateObservation, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	bands := []struct {
		min, max  int
		spreadBps int
	}{
		{740, 850, 0},
		{670, 739, 45},
		{product.MinCreditScore(), 669, 110},
	}

	now := time.Now().UTC()
	termMonths := product.MinTermMonths()
	if termMonths <= 0 {
		termMonths = 12
	}
	observations := make([]model.RateObservation, 0, len(bands))
	for _, band := range bands {
		if band.min > band.max {
			continue
		}
		scoreRange, err := valueobject.NewCreditScoreRange(band.min, band.max)
		if err != nil {
			continue
		}
		drift := f.rng.Intn(2*f.cfg.DriftBps+1) - f.cfg.DriftBps
		rateBps := product.BaseRateBps() + band.spreadBps + drift
		if rateBps < 1 {
			rateBps = 1
		}
		obs, err := model.NewRateObservation(product.ID(), now, rateBps, termMonths, scoreRange, nil)
		if err != nil {
			continue
		}
		observations = append(observations, obs)
	}
	return observations, nil
}
