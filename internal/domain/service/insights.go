package service

import (
	"fmt"
	"sort"
	"strings"

	"github.com/loanscope/loanscope/internal/domain/model"
	"github.com/loanscope/loanscope/internal/domain/valueobject"
)

// ---------------------------------------------------------------------------
// InsightGenerator – narrative and advisory text over a ranked candidate set
// ---------------------------------------------------------------------------

// marketReferenceRateBps holds the fixed per-loan-type reference rates the
// average-rate commentary compares against.
var marketReferenceRateBps = map[string]int{
	valueobject.LoanTypeMortgage.String(): 675,
	valueobject.LoanTypeAuto.String():     725,
	valueobject.LoanTypePersonal.String(): 1150,
	valueobject.LoanTypeStudent.String():  550,
	valueobject.LoanTypeBusiness.String(): 800,
}

// Recommendation names the standout products from a ranked set together
// with a composed narrative.
type Recommendation struct {
	BestOverall   model.ScoredProduct
	LowestRate    model.ScoredProduct
	LowestPayment model.ScoredProduct
	Narrative     string
}

// InsightGenerator derives human-readable commentary from a ranked list.
type InsightGenerator struct{}

// NewInsightGenerator returns a new generator instance.
func NewInsightGenerator() *InsightGenerator {
	return &InsightGenerator{}
}

// Recommend picks the best overall, lowest-rate, and lowest-payment products
// and composes a narrative that skips redundant sentences when they
// coincide. The ranked list must be non-empty.
func (g *InsightGenerator) Recommend(ranked []model.ScoredProduct) Recommendation {
	best := ranked[0]

	// Fresh sorts independent of the weighted ranking.
	byRate := make([]model.ScoredProduct, len(ranked))
	copy(byRate, ranked)
	sort.SliceStable(byRate, func(i, j int) bool {
		return byRate[i].Rate.RateBps() < byRate[j].Rate.RateBps()
	})

	byPayment := make([]model.ScoredProduct, len(ranked))
	copy(byPayment, ranked)
	sort.SliceStable(byPayment, func(i, j int) bool {
		return byPayment[i].Payment.MonthlyPayment.LessThan(byPayment[j].Payment.MonthlyPayment)
	})

	lowestRate := byRate[0]
	lowestPayment := byPayment[0]

	var sb strings.Builder
	fmt.Fprintf(&sb, "%s from %s offers the best overall value for your preferences, at %s with a monthly payment of $%s.",
		best.Product.Name(), best.Institution.Name(),
		formatRate(best.Rate.RateBps()),
		best.Payment.MonthlyPayment.Round(2).StringFixed(2),
	)
	if lowestRate.Product.ID() != best.Product.ID() {
		fmt.Fprintf(&sb, " For the absolute lowest rate, consider %s from %s at %s.",
			lowestRate.Product.Name(), lowestRate.Institution.Name(),
			formatRate(lowestRate.Rate.RateBps()),
		)
	}
	if lowestPayment.Product.ID() != best.Product.ID() && lowestPayment.Product.ID() != lowestRate.Product.ID() {
		fmt.Fprintf(&sb, " %s from %s has the lowest monthly payment at $%s.",
			lowestPayment.Product.Name(), lowestPayment.Institution.Name(),
			lowestPayment.Payment.MonthlyPayment.Round(2).StringFixed(2),
		)
	}

	return Recommendation{
		BestOverall:   best,
		LowestRate:    lowestRate,
		LowestPayment: lowestPayment,
		Narrative:     sb.String(),
	}
}

// Insights produces the advisory list: average-rate commentary, a
// credit-score-banded advisory, a term-length advisory citing the top
// product's total interest, and a special-offers note when perks exist.
func (g *InsightGenerator) Insights(q model.EligibilityQuery, ranked []model.ScoredProduct) []string {
	if len(ranked) == 0 {
		return nil
	}

	insights := []string{
		g.averageRateInsight(q.LoanType, ranked),
		creditScoreInsight(q.CreditScore),
		termInsight(q.TermMonths, ranked[0]),
	}
	if offers := specialOffersInsight(ranked); offers != "" {
		insights = append(insights, offers)
	}
	return insights
}

func (g *InsightGenerator) averageRateInsight(t valueobject.LoanType, ranked []model.ScoredProduct) string {
	total := 0
	for _, sp := range ranked {
		total += sp.Rate.RateBps()
	}
	avgBps := total / len(ranked)

	reference, ok := marketReferenceRateBps[t.String()]
	if !ok {
		return fmt.Sprintf("The average rate across your %d matching offers is %s.", len(ranked), formatRate(avgBps))
	}

	position := "above"
	if avgBps <= reference {
		position = "at or below"
	}
	return fmt.Sprintf(
		"The average rate across your %d matching offers is %s, %s the typical %s market rate of %s.",
		len(ranked), formatRate(avgBps), position,
		strings.ToLower(t.String()), formatRate(reference),
	)
}

func creditScoreInsight(score int) string {
	switch {
	case score >= 750:
		return "Your excellent credit score qualifies you for the best advertised rates."
	case score >= 700:
		return "Your credit score is strong; a small improvement could unlock top-tier pricing."
	case score >= 650:
		return "Your credit score lands in the mid tier; raising it would lower your rate meaningfully."
	default:
		return "Improving your credit score before borrowing would substantially reduce your interest costs."
	}
}

func termInsight(termMonths int, top model.ScoredProduct) string {
	totalInterest := top.Payment.TotalInterest.Round(2).StringFixed(2)
	switch {
	case termMonths <= 36:
		return fmt.Sprintf(
			"A short %d-month term keeps total interest low: about $%s on the top option.",
			termMonths, totalInterest,
		)
	case termMonths <= 60:
		return fmt.Sprintf(
			"A %d-month term balances payment size against total interest of about $%s on the top option.",
			termMonths, totalInterest,
		)
	default:
		return fmt.Sprintf(
			"Over %d months the top option accrues about $%s in interest; a shorter term would cost less overall.",
			termMonths, totalInterest,
		)
	}
}

// specialOffersInsight lists up to three distinct perks seen across the
// candidate set.
func specialOffersInsight(ranked []model.ScoredProduct) string {
	seen := make(map[string]struct{})
	var offers []string
	for _, sp := range ranked {
		for _, perk := range sp.Product.Perks() {
			if _, ok := seen[perk]; ok {
				continue
			}
			seen[perk] = struct{}{}
			offers = append(offers, perk)
			if len(offers) == 3 {
				return formatOffers(offers)
			}
		}
	}
	if len(offers) == 0 {
		return ""
	}
	return formatOffers(offers)
}

func formatOffers(offers []string) string {
	return "Special offers available: " + strings.Join(offers, "; ") + "."
}

// formatRate renders basis points as a percentage, e.g. 435 -> "4.35%".
func formatRate(bps int) string {
	return fmt.Sprintf("%.2f%%", float64(bps)/100.0)
}
