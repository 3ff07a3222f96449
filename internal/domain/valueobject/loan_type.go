package valueobject

import (
	"fmt"
	"strings"
)

// ---------------------------------------------------------------------------
// LoanType – immutable value object
// ---------------------------------------------------------------------------

// LoanType represents the category of a loan product.
type LoanType struct {
	value string
}

const (
	loanTypeMortgage = "MORTGAGE"
	loanTypeAuto     = "AUTO"
	loanTypePersonal = "PERSONAL"
	loanTypeStudent  = "STUDENT"
	loanTypeBusiness = "BUSINESS"
)

var (
	LoanTypeMortgage = LoanType{value: loanTypeMortgage}
	LoanTypeAuto     = LoanType{value: loanTypeAuto}
	LoanTypePersonal = LoanType{value: loanTypePersonal}
	LoanTypeStudent  = LoanType{value: loanTypeStudent}
	LoanTypeBusiness = LoanType{value: loanTypeBusiness}
)

// AllLoanTypes lists every supported loan type.
func AllLoanTypes() []LoanType {
	return []LoanType{
		LoanTypeMortgage, LoanTypeAuto, LoanTypePersonal,
		LoanTypeStudent, LoanTypeBusiness,
	}
}

// ParseLoanType converts a string into a LoanType. Matching is
// case-insensitive.
func ParseLoanType(s string) (LoanType, error) {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case loanTypeMortgage:
		return LoanTypeMortgage, nil
	case loanTypeAuto:
		return LoanTypeAuto, nil
	case loanTypePersonal:
		return LoanTypePersonal, nil
	case loanTypeStudent:
		return LoanTypeStudent, nil
	case loanTypeBusiness:
		return LoanTypeBusiness, nil
	default:
		return LoanType{}, fmt.Errorf("unknown loan type: %q", s)
	}
}

// String returns the canonical string representation.
func (t LoanType) String() string {
	return t.value
}

// Equal reports whether two loan types are the same.
func (t LoanType) Equal(other LoanType) bool {
	return t.value == other.value
}

// IsZero reports whether the loan type is unset.
func (t LoanType) IsZero() bool {
	return t.value == ""
}
