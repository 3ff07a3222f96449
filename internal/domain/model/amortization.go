package model

import (
	"math"

	"github.com/shopspring/decimal"
)

// PaymentSummary is an immutable value object holding the amortization
// metrics for one candidate loan. Values are unrounded; rounding happens at
// the presentation boundary so repeated use does not compound rounding error.
type PaymentSummary struct {
	MonthlyPayment decimal.Decimal
	TotalPayment   decimal.Decimal
	TotalInterest  decimal.Decimal
}

// ComputePayment computes the standard fixed-payment amortization metrics.
//
// Parameters:
//   - principal:     the loan amount, must be positive
//   - annualRateBps: annual interest rate in basis points (e.g. 435 = 4.35%)
//   - termMonths:    number of monthly periods, must be positive
//
// The calculation uses:
//
//	monthlyRate = annualRateBps / 10_000 / 12
//	payment     = P * r * (1+r)^n / ((1+r)^n - 1)
//
// A zero rate would divide by zero, so it takes the even-split branch
// payment = P / n instead.
func ComputePayment(principal decimal.Decimal, annualRateBps, termMonths int) PaymentSummary {
	if termMonths <= 0 || principal.LessThanOrEqual(decimal.Zero) {
		return PaymentSummary{}
	}

	// Basis points to a monthly decimal rate; float64 carries the power
	// calculation, decimal carries the monetary arithmetic.
	monthlyRate := float64(annualRateBps) / 10_000.0 / 12.0
	n := float64(termMonths)

	var monthlyPayment decimal.Decimal
	if monthlyRate == 0 {
		// Zero-interest: even split.
		monthlyPayment = principal.Div(decimal.NewFromInt(int64(termMonths)))
	} else {
		// P * r * (1+r)^n / ((1+r)^n - 1)
		factor := math.Pow(1+monthlyRate, n)
		paymentFloat := principal.InexactFloat64() * monthlyRate * factor / (factor - 1)
		monthlyPayment = decimal.NewFromFloat(paymentFloat)
	}

	totalPayment := monthlyPayment.Mul(decimal.NewFromInt(int64(termMonths)))

	return PaymentSummary{
		MonthlyPayment: monthlyPayment,
		TotalPayment:   totalPayment,
		TotalInterest:  totalPayment.Sub(principal),
	}
}
