package cards

import (
	"time"

	"github.com/google/uuid"

	"indi-cards/internal/domain/access"
	"indi-cards/internal/domain/plans"
)

// Template defaults shown in the editor before the user types anything.
const (
	DefaultFirstName  = "Alex"
	DefaultLastName   = "Morgan"
	DefaultJobTitle   = "Product Designer"
	DefaultCompany    = "Indi Studio"
	DefaultBio        = "Passionate about building digital experiences that connect people. Tell the world what you do best."
	DefaultAvatarURL  = "https://picsum.photos/400/400"
	DefaultBrandColor = "#10b981"
	DefaultAtmosphere = "particles"
	DefaultLayout     = "classic"
)

// NewTemplate builds an unpersisted card with a fresh id, template defaults and
// the trial clock started at now.
func NewTemplate(now time.Time) Card {
	now = now.UTC()
	return Card{
		ID:        uuid.NewString(),
		FirstName: DefaultFirstName,
		LastName:  DefaultLastName,
		JobTitle:  DefaultJobTitle,
		Company:   DefaultCompany,
		Bio:       DefaultBio,
		AvatarURL: DefaultAvatarURL,
		Contact: Contact{
			Email:    "hello@example.com",
			Phone:    "+56 9 1234 5678",
			Location: "Santiago, Chile",
		},
		Links: []Link{},
		ThemeConfig: ThemeConfig{
			BrandColor: DefaultBrandColor,
			Atmosphere: DefaultAtmosphere,
			Layout:     DefaultLayout,
		},
		IsPublished:        false,
		SubscriptionStatus: access.StatusTrial,
		PlanType:           plans.PlanFree,
		TrialStartedAt:     now,
		CreatedAt:          now,
		UpdatedAt:          now,
	}
}

// ResolveActiveCard returns the selected card, or a fresh template when the
// selection is empty or no longer exists. It never touches storage.
func ResolveActiveCard(selection *string, collection []Card, now time.Time) Card {
	if selection != nil && *selection != "" {
		for _, c := range collection {
			if c.ID == *selection {
				return c
			}
		}
	}
	return NewTemplate(now)
}
