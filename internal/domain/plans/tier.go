package plans

import "strings"

// PlanType is the billing tier a card runs on.
type PlanType string

// Plan type constants (single source of truth)
const (
	PlanFree PlanType = "free"
	PlanPro  PlanType = "pro"
)

// Normalize returns the plan type for a stored or user supplied value.
// Empty input is read as free so records written before plans existed stay valid.
func Normalize(s string) (PlanType, bool) {
	switch PlanType(strings.ToLower(strings.TrimSpace(s))) {
	case "", PlanFree:
		return PlanFree, true
	case PlanPro:
		return PlanPro, true
	default:
		return "", false
	}
}

func (p PlanType) IsPro() bool {
	return p == PlanPro
}
