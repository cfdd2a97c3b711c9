package plans

// Plan describes an offer shown on the pricing screen.
type Plan struct {
	Type     PlanType `json:"type"`
	Name     string   `json:"name"`
	Price    int64    `json:"price"`
	Currency string   `json:"currency"`
	Interval string   `json:"interval"`
	Features []string `json:"features"`
}

// Catalog returns the plans offered for a card, free first.
func Catalog() []Plan {
	return []Plan{
		{
			Type:     PlanFree,
			Name:     "Free Trial",
			Currency: "CLP",
			Features: []string{
				"Digital card while the trial lasts",
				"Real-time edits",
			},
		},
		{
			Type:     PlanPro,
			Name:     "PRO",
			Price:    4990,
			Currency: "CLP",
			Interval: "6 months",
			Features: []string{
				"Digital Card active 24/7",
				"Unlimited real-time edits",
				"Advanced visitor analytics",
				"Priority support",
			},
		},
	}
}
