package service

import "github.com/loanscope/loanscope/internal/domain/valueobject"

// educationalContent is a static per-loan-type lookup returned alongside
// analysis results. Not part of the scoring pipeline.
var educationalContent = map[string][]string{
	valueobject.LoanTypeMortgage.String(): {
		"A 20% down payment avoids private mortgage insurance on most products.",
		"Points paid upfront lower your rate; break-even typically takes 5-7 years.",
		"Rate locks usually last 30-60 days; ask before your closing date is set.",
	},
	valueobject.LoanTypeAuto.String(): {
		"Shorter terms carry lower rates; 72+ month loans often cost far more overall.",
		"Get pre-approved before visiting a dealer to anchor negotiations.",
		"Gap coverage matters when financing more than the vehicle's value.",
	},
	valueobject.LoanTypePersonal.String(): {
		"Personal loan rates depend heavily on credit score; compare multiple offers.",
		"Watch for origination fees of 1-8% deducted from the disbursed amount.",
		"Fixed-rate products protect you from payment increases.",
	},
	valueobject.LoanTypeStudent.String(): {
		"Exhaust federal options before private loans; they carry borrower protections.",
		"Interest subsidies may apply while enrolled at least half-time.",
		"Cosigner release is worth asking about after a year of on-time payments.",
	},
	valueobject.LoanTypeBusiness.String(): {
		"Lenders usually want two years of financial statements and a business plan.",
		"SBA-backed products trade longer approval times for lower rates.",
		"Personal guarantees are standard for small-business borrowing.",
	},
}

// EducationalContent returns the static tips for a loan type.
func EducationalContent(t valueobject.LoanType) []string {
	return educationalContent[t.String()]
}
