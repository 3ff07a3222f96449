package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// ---------------------------------------------------------------------------
// Request DTOs
// ---------------------------------------------------------------------------

// Preferences mirrors the caller's prioritize flags.
type Preferences struct {
	PrioritizeRate        bool `json:"prioritize_rate"`
	PrioritizePayment     bool `json:"prioritize_payment"`
	PrioritizeService     bool `json:"prioritize_service"`
	PrioritizeFlexibility bool `json:"prioritize_flexibility"`
	PrioritizeApproval    bool `json:"prioritize_approval"`
}

// AnalyzeRequest carries the borrower's query for a loan analysis.
type AnalyzeRequest struct {
	LoanType    string          `json:"loan_type"`
	Amount      decimal.Decimal `json:"amount"`
	TermMonths  int             `json:"term_months"`
	CreditScore int             `json:"credit_score"`
	Preferences Preferences     `json:"preferences"`
}

// GetProductRequest identifies a product to retrieve.
type GetProductRequest struct {
	ProductID        string `json:"product_id"`
	RateHistoryLimit int    `json:"rate_history_limit"`
}

// ListProductsRequest selects a catalog slice by loan type.
type ListProductsRequest struct {
	LoanType string `json:"loan_type"`
}

// RecordRateObservationRequest appends a rate observation to a product's
// history.
type RecordRateObservationRequest struct {
	ProductID     string    `json:"product_id"`
	RateBps       int       `json:"rate_bps"`
	TermMonths    int       `json:"term_months"`
	ScoreRangeMin int       `json:"score_range_min"`
	ScoreRangeMax int       `json:"score_range_max"`
	Conditions    []string  `json:"conditions,omitempty"`
	ObservedAt    time.Time `json:"observed_at"`
}

// ---------------------------------------------------------------------------
// Response DTOs
// ---------------------------------------------------------------------------

// MetricScores is the external representation of per-metric normalized
// scores.
type MetricScores struct {
	Rate        float64 `json:"rate"`
	Payment     float64 `json:"payment"`
	Service     float64 `json:"service"`
	Flexibility float64 `json:"flexibility"`
	Approval    float64 `json:"approval"`
}

// LoanOption is one scored candidate in an analysis response. Monetary
// values are rounded to two decimal places here, at the presentation
// boundary.
type LoanOption struct {
	ProductID       string          `json:"product_id"`
	ProductName     string          `json:"product_name"`
	InstitutionID   string          `json:"institution_id"`
	InstitutionName string          `json:"institution_name"`
	LoanType        string          `json:"loan_type"`
	RateBps         int             `json:"rate_bps"`
	AprEstimateBps  int             `json:"apr_estimate_bps"`
	VariableRate    bool            `json:"variable_rate"`
	MonthlyPayment  decimal.Decimal `json:"monthly_payment"`
	TotalPayment    decimal.Decimal `json:"total_payment"`
	TotalInterest   decimal.Decimal `json:"total_interest"`
	Scores          MetricScores    `json:"scores"`
	TotalScore      float64         `json:"total_score"`
	Perks           []string        `json:"perks,omitempty"`
	Requirements    []string        `json:"requirements,omitempty"`
}

// RecommendationSummary names the standout options with a narrative.
type RecommendationSummary struct {
	BestOverall   LoanOption `json:"best_overall"`
	LowestRate    LoanOption `json:"lowest_rate"`
	LowestPayment LoanOption `json:"lowest_payment"`
	Narrative     string     `json:"narrative"`
}

// Alternative is a relaxed-constraint suggestion returned when nothing
// matches the original query.
type Alternative struct {
	ProductID       string `json:"product_id"`
	ProductName     string `json:"product_name"`
	InstitutionName string `json:"institution_name"`
	LoanType        string `json:"loan_type"`
	BaseRateBps     int    `json:"base_rate_bps"`
	MinCreditScore  int    `json:"min_credit_score"`
	Note            string `json:"note"`
}

// AnalyzeResponse is the full analysis result. When Success is false the
// candidate set was empty and Alternatives may carry relaxed-constraint
// suggestions.
type AnalyzeResponse struct {
	Success            bool                   `json:"success"`
	Message            string                 `json:"message,omitempty"`
	Recommendations    *RecommendationSummary `json:"recommendations,omitempty"`
	TopOptions         []LoanOption           `json:"top_options,omitempty"`
	AllOptions         []LoanOption           `json:"all_options,omitempty"`
	Insights           []string               `json:"insights,omitempty"`
	EducationalContent []string               `json:"educational_content,omitempty"`
	SkippedNoRate      int                    `json:"skipped_no_rate"`
	Alternatives       []Alternative          `json:"alternatives,omitempty"`
}

// RateObservationResponse is the external representation of one rate
// observation.
type RateObservationResponse struct {
	ID            string    `json:"id"`
	ProductID     string    `json:"product_id"`
	RateBps       int       `json:"rate_bps"`
	TermMonths    int       `json:"term_months"`
	ScoreRangeMin int       `json:"score_range_min"`
	ScoreRangeMax int       `json:"score_range_max"`
	Conditions    []string  `json:"conditions,omitempty"`
	ObservedAt    time.Time `json:"observed_at"`
}

// ProductResponse is the external representation of a catalog product.
type ProductResponse struct {
	ID              string                    `json:"id"`
	InstitutionID   string                    `json:"institution_id"`
	InstitutionName string                    `json:"institution_name"`
	Name            string                    `json:"name"`
	LoanType        string                    `json:"loan_type"`
	MinAmount       decimal.Decimal           `json:"min_amount"`
	MaxAmount       decimal.Decimal           `json:"max_amount"`
	MinTermMonths   int                       `json:"min_term_months"`
	MaxTermMonths   int                       `json:"max_term_months"`
	BaseRateBps     int                       `json:"base_rate_bps"`
	VariableRate    bool                      `json:"variable_rate"`
	MinCreditScore  int                       `json:"min_credit_score"`
	Perks           []string                  `json:"perks,omitempty"`
	Requirements    []string                  `json:"requirements,omitempty"`
	Active          bool                      `json:"active"`
	RateHistory     []RateObservationResponse `json:"rate_history,omitempty"`
}

// ListProductsResponse is a catalog slice.
type ListProductsResponse struct {
	Products []ProductResponse `json:"products"`
}
