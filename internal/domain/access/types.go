package access

// SubscriptionStatus is the derived state of a card's subscription: trial|active|expired
type SubscriptionStatus string

const (
	StatusTrial   SubscriptionStatus = "trial"
	StatusActive  SubscriptionStatus = "active"
	StatusExpired SubscriptionStatus = "expired"
)

// ParseStatus accepts the stored spelling of a status. Empty is allowed
// because the value is recomputed on read anyway.
func ParseStatus(s string) (SubscriptionStatus, bool) {
	switch SubscriptionStatus(s) {
	case "", StatusTrial, StatusActive, StatusExpired:
		return SubscriptionStatus(s), true
	}
	return "", false
}

type Capability string

const (
	CapEdit    Capability = "edit"
	CapPublish Capability = "publish"
	CapAIBio   Capability = "ai_bio"
)
