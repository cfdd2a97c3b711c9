package access

import (
	"time"

	"indi-cards/internal/domain/plans"
)

type Policy struct {
	Status       SubscriptionStatus `json:"status"`
	Plan         plans.PlanType     `json:"plan"`
	DaysLeft     int                `json:"daysLeft"`
	Capabilities []Capability       `json:"capabilities"`
}

func ComputePolicy(now time.Time, plan plans.PlanType, trialStartedAt time.Time, trialPeriod time.Duration) Policy {
	status := ComputeSubscriptionStatus(now, plan, trialStartedAt, trialPeriod)

	days := 0
	if status == StatusTrial {
		days = DaysLeft(now, trialStartedAt, trialPeriod)
	}

	return Policy{
		Status:       status,
		Plan:         plan,
		DaysLeft:     days,
		Capabilities: CapabilitiesFor(status),
	}
}
