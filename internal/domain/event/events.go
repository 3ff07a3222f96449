package event

import (
	"time"

	"github.com/loanscope/loanscope/pkg/events"
)

// DomainEvent is an alias for the shared pkg/events.DomainEvent interface.
type DomainEvent = events.DomainEvent

// ---------------------------------------------------------------------------
// Analysis events
// ---------------------------------------------------------------------------

// AnalysisCompleted is raised after a loan analysis request finishes,
// carrying coverage counters so consumers can detect degraded results.
type AnalysisCompleted struct {
	events.BaseEvent
	LoanType        string `json:"loan_type"`
	CreditScore     int    `json:"credit_score"`
	Candidates      int    `json:"candidates"`
	SkippedNoRate   int    `json:"skipped_no_rate"`
	TopProductID    string `json:"top_product_id,omitempty"`
	AlternativesHit bool   `json:"alternatives_hit"`
}

func NewAnalysisCompleted(
	analysisID, loanType string,
	creditScore, candidates, skippedNoRate int,
	topProductID string,
	alternativesHit bool,
) AnalysisCompleted {
	return AnalysisCompleted{
		BaseEvent:       events.NewBaseEvent("analysis.completed", analysisID, "Analysis"),
		LoanType:        loanType,
		CreditScore:     creditScore,
		Candidates:      candidates,
		SkippedNoRate:   skippedNoRate,
		TopProductID:    topProductID,
		AlternativesHit: alternativesHit,
	}
}

// ---------------------------------------------------------------------------
// Rate history events
// ---------------------------------------------------------------------------

// RateObservationRecorded is raised when a new rate observation is appended
// to a product's history.
type RateObservationRecorded struct {
	events.BaseEvent
	ProductID     string    `json:"product_id"`
	RateBps       int       `json:"rate_bps"`
	TermMonths    int       `json:"term_months"`
	ScoreRangeMin int       `json:"score_range_min"`
	ScoreRangeMax int       `json:"score_range_max"`
	ObservedAt    time.Time `json:"observed_at"`
}

func NewRateObservationRecorded(
	observationID, productID string,
	rateBps, termMonths, scoreMin, scoreMax int,
	observedAt time.Time,
) RateObservationRecorded {
	return RateObservationRecorded{
		BaseEvent:     events.NewBaseEvent("ratewatch.observation.recorded", observationID, "RateObservation"),
		ProductID:     productID,
		RateBps:       rateBps,
		TermMonths:    termMonths,
		ScoreRangeMin: scoreMin,
		ScoreRangeMax: scoreMax,
		ObservedAt:    observedAt,
	}
}
