package usecase

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/loanscope/loanscope/internal/application/dto"
	"github.com/loanscope/loanscope/internal/domain/event"
	"github.com/loanscope/loanscope/internal/domain/model"
	"github.com/loanscope/loanscope/internal/domain/port"
	"github.com/loanscope/loanscope/internal/domain/service"
	"github.com/loanscope/loanscope/internal/domain/valueobject"
)

// Relaxation bands applied when the original query matches nothing.
const (
	alternativeScoreRelaxation = 30
	alternativeTermRelaxation  = 12
)

// topOptionsCount caps the top_options slice in the response.
const topOptionsCount = 3

const (
	minCreditScore = 300
	maxCreditScore = 850
)

// AnalyzeLoanOptionsUseCase runs the full analysis pipeline: eligibility,
// metric calculation, ranking, and recommendation/insight generation.
type AnalyzeLoanOptionsUseCase struct {
	catalog   port.ProductCatalog
	rates     port.RateHistoryRepository
	metrics   *service.MetricCalculator
	ranker    *service.RankingEngine
	insights  *service.InsightGenerator
	publisher port.EventPublisher
	logger    *slog.Logger
}

// NewAnalyzeLoanOptionsUseCase wires dependencies.
func NewAnalyzeLoanOptionsUseCase(
	catalog port.ProductCatalog,
	rates port.RateHistoryRepository,
	metrics *service.MetricCalculator,
	ranker *service.RankingEngine,
	insights *service.InsightGenerator,
	publisher port.EventPublisher,
	logger *slog.Logger,
) *AnalyzeLoanOptionsUseCase {
	return &AnalyzeLoanOptionsUseCase{
		catalog:   catalog,
		rates:     rates,
		metrics:   metrics,
		ranker:    ranker,
		insights:  insights,
		publisher: publisher,
		logger:    logger,
	}
}

// Execute validates the request and runs the pipeline. An empty eligible set
// is not an error: it returns Success=false with relaxed-constraint
// alternatives. Products whose rate lookup fails are skipped and counted in
// SkippedNoRate so callers can detect degraded coverage.
func (uc *AnalyzeLoanOptionsUseCase) Execute(
	ctx context.Context,
	req dto.AnalyzeRequest,
) (dto.AnalyzeResponse, error) {
	q, err := uc.buildQuery(req)
	if err != nil {
		return dto.AnalyzeResponse{}, err
	}

	entries, err := uc.catalog.FindEligible(ctx, q)
	if err != nil {
		return dto.AnalyzeResponse{}, fmt.Errorf("find eligible products: %w", err)
	}

	if len(entries) == 0 {
		alternatives, err := uc.findAlternatives(ctx, q)
		if err != nil {
			return dto.AnalyzeResponse{}, fmt.Errorf("find alternatives: %w", err)
		}
		uc.publishCompleted(ctx, q, 0, 0, "", len(alternatives) > 0)
		return dto.AnalyzeResponse{
			Success:      false,
			Message:      "No loan products match your criteria.",
			Alternatives: alternatives,
		}, nil
	}

	analyzed, skipped := uc.analyzeCandidates(ctx, entries, q)
	if len(analyzed) == 0 {
		uc.publishCompleted(ctx, q, len(entries), skipped, "", false)
		return dto.AnalyzeResponse{
			Success:       false,
			Message:       "Rate data is currently unavailable for the matching products.",
			SkippedNoRate: skipped,
		}, nil
	}

	prefs := valueobject.Preferences{
		PrioritizeRate:        req.Preferences.PrioritizeRate,
		PrioritizePayment:     req.Preferences.PrioritizePayment,
		PrioritizeService:     req.Preferences.PrioritizeService,
		PrioritizeFlexibility: req.Preferences.PrioritizeFlexibility,
		PrioritizeApproval:    req.Preferences.PrioritizeApproval,
	}
	ranked := uc.ranker.Rank(analyzed, prefs)
	recommendation := uc.insights.Recommend(ranked)
	insights := uc.insights.Insights(q, ranked)

	allOptions := make([]dto.LoanOption, len(ranked))
	for i, sp := range ranked {
		allOptions[i] = toLoanOption(sp)
	}
	top := allOptions
	if len(top) > topOptionsCount {
		top = top[:topOptionsCount]
	}

	uc.publishCompleted(ctx, q, len(entries), skipped, recommendation.BestOverall.Product.ID(), false)

	return dto.AnalyzeResponse{
		Success: true,
		Recommendations: &dto.RecommendationSummary{
			BestOverall:   toLoanOption(recommendation.BestOverall),
			LowestRate:    toLoanOption(recommendation.LowestRate),
			LowestPayment: toLoanOption(recommendation.LowestPayment),
			Narrative:     recommendation.Narrative,
		},
		TopOptions:         top,
		AllOptions:         allOptions,
		Insights:           insights,
		EducationalContent: service.EducationalContent(q.LoanType),
		SkippedNoRate:      skipped,
	}, nil
}

// buildQuery validates the raw request before anything enters the pipeline,
// so malformed numbers never reach the amortization formula.
func (uc *AnalyzeLoanOptionsUseCase) buildQuery(req dto.AnalyzeRequest) (model.EligibilityQuery, error) {
	loanType, err := valueobject.ParseLoanType(req.LoanType)
	if err != nil {
		return model.EligibilityQuery{}, err
	}
	if !req.Amount.IsPositive() {
		return model.EligibilityQuery{}, errors.New("amount must be positive")
	}
	if req.TermMonths <= 0 {
		return model.EligibilityQuery{}, errors.New("term months must be positive")
	}
	if req.CreditScore < minCreditScore || req.CreditScore > maxCreditScore {
		return model.EligibilityQuery{}, fmt.Errorf(
			"credit score must be between %d and %d", minCreditScore, maxCreditScore,
		)
	}

	return model.EligibilityQuery{
		LoanType:    loanType,
		Amount:      req.Amount,
		TermMonths:  req.TermMonths,
		CreditScore: req.CreditScore,
	}, nil
}

// analyzeCandidates resolves the latest applicable rate per candidate and
// computes metrics, skipping candidates without usable rate data.
func (uc *AnalyzeLoanOptionsUseCase) analyzeCandidates(
	ctx context.Context,
	entries []model.CatalogEntry,
	q model.EligibilityQuery,
) ([]model.AnalyzedProduct, int) {
	analyzed := make([]model.AnalyzedProduct, 0, len(entries))
	skipped := 0

	for _, entry := range entries {
		rate, err := uc.rates.LatestApplicable(ctx, entry.Product.ID(), q.CreditScore)
		if err != nil {
			if !errors.Is(err, port.ErrNoApplicableRate) {
				uc.logger.Warn("rate lookup failed, skipping product",
					"product_id", entry.Product.ID(), "error", err)
			}
			skipped++
			continue
		}

		ap, err := uc.metrics.Analyze(ctx, entry, rate, q)
		if err != nil {
			uc.logger.Warn("metric calculation failed, skipping product",
				"product_id", entry.Product.ID(), "error", err)
			skipped++
			continue
		}
		analyzed = append(analyzed, ap)
	}

	return analyzed, skipped
}

// findAlternatives retries the catalog query with the credit-score floor and
// term window relaxed, deduplicating by product.
func (uc *AnalyzeLoanOptionsUseCase) findAlternatives(
	ctx context.Context,
	q model.EligibilityQuery,
) ([]dto.Alternative, error) {
	type relaxation struct {
		query model.EligibilityQuery
		note  string
	}

	relaxations := []relaxation{
		{
			query: q.Relax(alternativeScoreRelaxation, 0),
			note: fmt.Sprintf("Within reach if your credit score improves by up to %d points.",
				alternativeScoreRelaxation),
		},
		{
			query: q.Relax(0, -alternativeTermRelaxation),
			note: fmt.Sprintf("Available at a shorter term of %d months.",
				q.TermMonths-alternativeTermRelaxation),
		},
		{
			query: q.Relax(0, alternativeTermRelaxation),
			note: fmt.Sprintf("Available at a longer term of %d months.",
				q.TermMonths+alternativeTermRelaxation),
		},
	}

	seen := make(map[string]struct{})
	var alternatives []dto.Alternative
	for _, r := range relaxations {
		if r.query.TermMonths <= 0 {
			continue
		}
		entries, err := uc.catalog.FindEligible(ctx, r.query)
		if err != nil {
			return nil, err
		}
		for _, entry := range entries {
			if _, ok := seen[entry.Product.ID()]; ok {
				continue
			}
			seen[entry.Product.ID()] = struct{}{}
			alternatives = append(alternatives, dto.Alternative{
				ProductID:       entry.Product.ID(),
				ProductName:     entry.Product.Name(),
				InstitutionName: entry.Institution.Name(),
				LoanType:        entry.Product.LoanType().String(),
				BaseRateBps:     entry.Product.BaseRateBps(),
				MinCreditScore:  entry.Product.MinCreditScore(),
				Note:            r.note,
			})
		}
	}
	return alternatives, nil
}

// publishCompleted emits the analysis.completed event. Publish failures are
// logged, not surfaced: the analysis result is already computed and the
// event is observational.
func (uc *AnalyzeLoanOptionsUseCase) publishCompleted(
	ctx context.Context,
	q model.EligibilityQuery,
	candidates, skipped int,
	topProductID string,
	alternativesHit bool,
) {
	evt := event.NewAnalysisCompleted(
		uuid.New().String(), q.LoanType.String(),
		q.CreditScore, candidates, skipped,
		topProductID, alternativesHit,
	)
	if err := uc.publisher.Publish(ctx, evt); err != nil {
		uc.logger.Warn("failed to publish analysis event", "error", err)
	}
}
