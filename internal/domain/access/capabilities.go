package access

// CapabilitiesFor lists what the UI should allow for a card in the given state.
// Advisory only: the card store itself does not enforce these.
func CapabilitiesFor(status SubscriptionStatus) []Capability {
	switch status {
	case StatusActive, StatusTrial:
		return []Capability{CapEdit, CapPublish, CapAIBio}
	case StatusExpired:
		return []Capability{CapEdit}
	default:
		return []Capability{}
	}
}
