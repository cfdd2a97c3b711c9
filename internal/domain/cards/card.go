package cards

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"indi-cards/internal/domain/access"
	"indi-cards/internal/domain/plans"
)

// ErrInvalid is returned by Validate when a record breaks the card schema.
var ErrInvalid = errors.New("invalid card")

type Contact struct {
	Email    string `json:"email,omitempty"`
	Phone    string `json:"phone,omitempty"`
	Location string `json:"location,omitempty"`
}

// Link is one entry of the card's link list. Slice order is display order.
type Link struct {
	ID       string `json:"id,omitempty"`
	Platform string `json:"platform"`
	Label    string `json:"label"`
	URL      string `json:"url"`
}

type ThemeConfig struct {
	BrandColor string `json:"brandColor"`
	Atmosphere string `json:"atmosphere,omitempty"`
	Layout     string `json:"layout,omitempty"`
}

type Card struct {
	ID        string `json:"id"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	JobTitle  string `json:"jobTitle"`
	Company   string `json:"company"`
	Bio       string `json:"bio"`
	AvatarURL string `json:"avatarUrl"`

	Contact     Contact     `json:"contact"`
	Links       []Link      `json:"links"`
	ThemeConfig ThemeConfig `json:"themeConfig"`

	IsPublished  bool   `json:"isPublished"`
	PublishedURL string `json:"publishedUrl,omitempty"`

	// SubscriptionStatus is a cache; the store recomputes it on every read.
	SubscriptionStatus access.SubscriptionStatus `json:"subscriptionStatus"`
	PlanType           plans.PlanType            `json:"planType"`
	TrialStartedAt     time.Time                 `json:"trialStartedAt"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// Validate checks the schema invariants of a single record. It normalizes the
// plan type in place so legacy records without one read as free.
func (c *Card) Validate() error {
	if strings.TrimSpace(c.ID) == "" {
		return fmt.Errorf("%w: missing id", ErrInvalid)
	}

	plan, ok := plans.Normalize(string(c.PlanType))
	if !ok {
		return fmt.Errorf("%w: unknown plan type %q", ErrInvalid, c.PlanType)
	}
	c.PlanType = plan

	if _, ok := access.ParseStatus(string(c.SubscriptionStatus)); !ok {
		return fmt.Errorf("%w: unknown subscription status %q", ErrInvalid, c.SubscriptionStatus)
	}

	if strings.TrimSpace(c.ThemeConfig.BrandColor) == "" {
		return fmt.Errorf("%w: missing brand color", ErrInvalid)
	}

	if c.IsPublished && c.PublishedURL == "" {
		return fmt.Errorf("%w: published card without url", ErrInvalid)
	}
	if !c.IsPublished && c.PublishedURL != "" {
		return fmt.Errorf("%w: unpublished card with url", ErrInvalid)
	}
	return nil
}
