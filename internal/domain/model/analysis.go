package model

// ---------------------------------------------------------------------------
// Request-scoped analysis entities. Constructed fresh per analysis call and
// never persisted.
// ---------------------------------------------------------------------------

// AnalyzedProduct wraps an eligible product with its matched rate and the
// computed payment and auxiliary metrics.
type AnalyzedProduct struct {
	Product     LoanProduct
	Institution Institution
	Rate        RateObservation
	Payment     PaymentSummary

	// AprEstimateBps is a placeholder cost proxy, not a regulatory APR.
	AprEstimateBps     int
	Flexibility        float64
	ApprovalLikelihood float64
	ServiceScore       float64
}

// MetricScores holds the per-metric normalized scores in [0, 1] used by the
// ranking engine. Rate and Payment are inverted cost metrics: higher means
// cheaper.
type MetricScores struct {
	Rate        float64
	Payment     float64
	Service     float64
	Flexibility float64
	Approval    float64
}

// ScoredProduct is an AnalyzedProduct with its normalized scores and the
// preference-weighted total. Lifetime is one ranking pass.
type ScoredProduct struct {
	AnalyzedProduct
	Scores     MetricScores
	TotalScore float64
}
