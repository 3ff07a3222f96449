package valueobject

// Preferences carries the caller's "prioritize" flags for the ranking
// engine. The zero value means no priorities, which selects the default
// weight set.
type Preferences struct {
	PrioritizeRate        bool
	PrioritizePayment     bool
	PrioritizeService     bool
	PrioritizeFlexibility bool
	PrioritizeApproval    bool
}
