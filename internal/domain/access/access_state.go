package access

import (
	"time"

	"indi-cards/internal/domain/plans"
)

// DefaultTrialPeriod is used when no TRIAL_DAYS override is configured.
const DefaultTrialPeriod = 14 * 24 * time.Hour

// ComputeSubscriptionStatus derives the subscription state from the plan and
// the trial start. Pro always wins, so an upgrade out of expired is possible.
func ComputeSubscriptionStatus(now time.Time, plan plans.PlanType, trialStartedAt time.Time, trialPeriod time.Duration) SubscriptionStatus {
	if plan.IsPro() {
		return StatusActive
	}
	if now.Sub(trialStartedAt) > trialPeriod {
		return StatusExpired
	}
	return StatusTrial
}

// DaysLeft returns the whole days remaining in the trial, rounded up, never negative.
func DaysLeft(now, trialStartedAt time.Time, trialPeriod time.Duration) int {
	remaining := trialStartedAt.Add(trialPeriod).Sub(now)
	if remaining <= 0 {
		return 0
	}
	day := 24 * time.Hour
	return int((remaining + day - 1) / day)
}
