package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/loanscope/loanscope/internal/domain/model"
	"github.com/loanscope/loanscope/internal/domain/port"
	"github.com/loanscope/loanscope/internal/domain/valueobject"
)

// cachedObservation is the wire form of a rate observation in Redis.
type cachedObservation struct {
	ID         string    `json:"id"`
	ProductID  string    `json:"product_id"`
	ObservedAt time.Time `json:"observed_at"`
	RateBps    int       `json:"rate_bps"`
	TermMonths int       `json:"term_months"`
	ScoreMin   int       `json:"score_min"`
	ScoreMax   int       `json:"score_max"`
	Conditions []string  `json:"conditions,omitempty"`
}

// RateCache is a read-through Redis cache over a rate history repository.
// Latest-applicable lookups are cached per product and score; appends write
// through and invalidate nothing since key TTLs bound staleness. Any cache
// error falls back to the underlying repository.
type RateCache struct {
	next   port.RateHistoryRepository
	client *redis.Client
	ttl    time.Duration
	logger *slog.Logger
}

// NewRateCache wraps the given repository.
func NewRateCache(next port.RateHistoryRepository, client *redis.Client, ttl time.Duration, logger *slog.Logger) *RateCache {
	return &RateCache{next: next, client: client, ttl: ttl, logger: logger}
}

// Append passes through to the underlying repository.
func (c *RateCache) Append(ctx context.Context, obs model.RateObservation) error {
	return c.next.Append(ctx, obs)
}

// LatestApplicable serves from Redis when possible.
func (c *RateCache) LatestApplicable(ctx context.Context, productID string, creditScore int) (model.RateObservation, error) {
	key := latestRateKey(productID, creditScore)

	if payload, err := c.client.Get(ctx, key).Result(); err == nil {
		obs, err := decodeObservation([]byte(payload))
		if err == nil {
			return obs, nil
		}
		c.logger.Warn("discarding undecodable cache entry", "key", key, "error", err)
	}

	obs, err := c.next.LatestApplicable(ctx, productID, creditScore)
	if err != nil {
		return model.RateObservation{}, err
	}

	payload, err := encodeObservation(obs)
	if err == nil {
		if err := c.client.Set(ctx, key, payload, c.ttl).Err(); err != nil {
			c.logger.Warn("failed to cache rate lookup", "key", key, "error", err)
		}
	}
	return obs, nil
}

// HistoryForProduct is not cached; history reads are rare and unbounded.
func (c *RateCache) HistoryForProduct(ctx context.Context, productID string, limit int) ([]model.RateObservation, error) {
	return c.next.HistoryForProduct(ctx, productID, limit)
}

func latestRateKey(productID string, creditScore int) string {
	return fmt.Sprintf("rate:latest:%s:%d", productID, creditScore)
}

func encodeObservation(obs model.RateObservation) ([]byte, error) {
	return json.Marshal(cachedObservation{
		ID:         obs.ID(),
		ProductID:  obs.ProductID(),
		ObservedAt: obs.ObservedAt(),
		RateBps:    obs.RateBps(),
		TermMonths: obs.TermMonths(),
		ScoreMin:   obs.ScoreRange().Min(),
		ScoreMax:   obs.ScoreRange().Max(),
		Conditions: obs.Conditions(),
	})
}

func decodeObservation(payload []byte) (model.RateObservation, error) {
	var cached cachedObservation
	if err := json.Unmarshal(payload, &cached); err != nil {
		return model.RateObservation{}, err
	}
	scoreRange, err := valueobject.NewCreditScoreRange(cached.ScoreMin, cached.ScoreMax)
	if err != nil {
		return model.RateObservation{}, err
	}
	return model.ReconstructRateObservation(
		cached.ID, cached.ProductID, cached.ObservedAt,
		cached.RateBps, cached.TermMonths, scoreRange, cached.Conditions,
	), nil
}
