package valueobject

import "fmt"

// ---------------------------------------------------------------------------
// CreditScoreRange – immutable value object
// ---------------------------------------------------------------------------

// CreditScoreRange is the inclusive band of credit scores a rate applies to.
type CreditScoreRange struct {
	min int
	max int
}

// NewCreditScoreRange builds a range, enforcing min <= max.
func NewCreditScoreRange(min, max int) (CreditScoreRange, error) {
	if min < 0 || max < 0 {
		return CreditScoreRange{}, fmt.Errorf("credit score bounds must be non-negative, got [%d, %d]", min, max)
	}
	if min > max {
		return CreditScoreRange{}, fmt.Errorf("credit score range min %d exceeds max %d", min, max)
	}
	return CreditScoreRange{min: min, max: max}, nil
}

// Min returns the lower bound.
func (r CreditScoreRange) Min() int {
	return r.min
}

// Max returns the upper bound.
func (r CreditScoreRange) Max() int {
	return r.max
}

// Contains reports whether the given score falls inside the band.
func (r CreditScoreRange) Contains(score int) bool {
	return score >= r.min && score <= r.max
}

// Width returns the size of the band in score points.
func (r CreditScoreRange) Width() int {
	return r.max - r.min
}

// String renders the range as "min-max".
func (r CreditScoreRange) String() string {
	return fmt.Sprintf("%d-%d", r.min, r.max)
}
