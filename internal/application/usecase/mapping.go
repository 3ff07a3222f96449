package usecase

import (
	"github.com/loanscope/loanscope/internal/application/dto"
	"github.com/loanscope/loanscope/internal/domain/model"
)

// toLoanOption maps a scored product to its external representation,
// rounding monetary values at this presentation boundary.
func toLoanOption(sp model.ScoredProduct) dto.LoanOption {
	return dto.LoanOption{
		ProductID:       sp.Product.ID(),
		ProductName:     sp.Product.Name(),
		InstitutionID:   sp.Institution.ID(),
		InstitutionName: sp.Institution.Name(),
		LoanType:        sp.Product.LoanType().String(),
		RateBps:         sp.Rate.RateBps(),
		AprEstimateBps:  sp.AprEstimateBps,
		VariableRate:    sp.Product.VariableRate(),
		MonthlyPayment:  sp.Payment.MonthlyPayment.Round(2),
		TotalPayment:    sp.Payment.TotalPayment.Round(2),
		TotalInterest:   sp.Payment.TotalInterest.Round(2),
		Scores: dto.MetricScores{
			Rate:        sp.Scores.Rate,
			Payment:     sp.Scores.Payment,
			Service:     sp.Scores.Service,
			Flexibility: sp.Scores.Flexibility,
			Approval:    sp.Scores.Approval,
		},
		TotalScore:   sp.TotalScore,
		Perks:        sp.Product.Perks(),
		Requirements: sp.Product.Requirements(),
	}
}

// toProductResponse maps a catalog entry to its external representation.
func toProductResponse(entry model.CatalogEntry) dto.ProductResponse {
	p := entry.Product
	return dto.ProductResponse{
		ID:              p.ID(),
		InstitutionID:   p.InstitutionID(),
		InstitutionName: entry.Institution.Name(),
		Name:            p.Name(),
		LoanType:        p.LoanType().String(),
		MinAmount:       p.MinAmount(),
		MaxAmount:       p.MaxAmount(),
		MinTermMonths:   p.MinTermMonths(),
		MaxTermMonths:   p.MaxTermMonths(),
		BaseRateBps:     p.BaseRateBps(),
		VariableRate:    p.VariableRate(),
		MinCreditScore:  p.MinCreditScore(),
		Perks:           p.Perks(),
		Requirements:    p.Requirements(),
		Active:          p.Active(),
	}
}

// toRateObservationResponse maps an observation to its external
// representation.
func toRateObservationResponse(obs model.RateObservation) dto.RateObservationResponse {
	return dto.RateObservationResponse{
		ID:            obs.ID(),
		ProductID:     obs.ProductID(),
		RateBps:       obs.RateBps(),
		TermMonths:    obs.TermMonths(),
		ScoreRangeMin: obs.ScoreRange().Min(),
		ScoreRangeMax: obs.ScoreRange().Max(),
		Conditions:    obs.Conditions(),
		ObservedAt:    obs.ObservedAt(),
	}
}
