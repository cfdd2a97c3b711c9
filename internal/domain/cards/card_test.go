package cards

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"indi-cards/internal/domain/access"
	"indi-cards/internal/domain/plans"
)

var now = time.Date(2026, 5, 4, 9, 30, 0, 0, time.UTC)

func TestNewTemplateDefaults(t *testing.T) {
	c := NewTemplate(now)

	assert.NotEmpty(t, c.ID)
	assert.Equal(t, DefaultFirstName, c.FirstName)
	assert.Equal(t, access.StatusTrial, c.SubscriptionStatus)
	assert.Equal(t, plans.PlanFree, c.PlanType)
	assert.False(t, c.IsPublished)
	assert.Empty(t, c.PublishedURL)
	assert.Equal(t, now, c.TrialStartedAt)
	assert.NotNil(t, c.Links)
	assert.NoError(t, c.Validate())
}

func TestNewTemplateIDsDiffer(t *testing.T) {
	seen := map[string]bool{}
	for i := 0; i < 100; i++ {
		id := NewTemplate(now).ID
		require.False(t, seen[id], "duplicate id %s", id)
		seen[id] = true
	}
}

func TestValidate(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(c *Card)
	}{
		{"missing id", func(c *Card) { c.ID = " " }},
		{"unknown plan", func(c *Card) { c.PlanType = "gold" }},
		{"unknown status", func(c *Card) { c.SubscriptionStatus = "paused" }},
		{"no brand color", func(c *Card) { c.ThemeConfig.BrandColor = "" }},
		{"published without url", func(c *Card) { c.IsPublished = true }},
		{"url without publish", func(c *Card) { c.PublishedURL = "https://indi.app/c/x-1" }},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			c := NewTemplate(now)
			tc.mutate(&c)
			assert.ErrorIs(t, c.Validate(), ErrInvalid)
		})
	}
}

func TestValidateDefaultsEmptyPlanToFree(t *testing.T) {
	c := NewTemplate(now)
	c.PlanType = ""
	require.NoError(t, c.Validate())
	assert.Equal(t, plans.PlanFree, c.PlanType)
}

func TestCardJSONFieldNames(t *testing.T) {
	c := NewTemplate(now)
	c.Links = append(c.Links, Link{Platform: "linkedin", Label: "LinkedIn", URL: "https://linkedin.com/in/alex"})

	raw, err := json.Marshal(c)
	require.NoError(t, err)

	var m map[string]any
	require.NoError(t, json.Unmarshal(raw, &m))
	for _, key := range []string{"id", "firstName", "avatarUrl", "themeConfig", "isPublished", "subscriptionStatus", "planType", "trialStartedAt"} {
		assert.Contains(t, m, key)
	}
	assert.NotContains(t, m, "publishedUrl")

	var back Card
	require.NoError(t, json.Unmarshal(raw, &back))
	assert.Equal(t, c, back)
}

func TestResolveActiveCard(t *testing.T) {
	a := NewTemplate(now)
	b := NewTemplate(now)
	b.FirstName = "Bea"
	collection := []Card{a, b}

	t.Run("selected card found", func(t *testing.T) {
		id := b.ID
		assert.Equal(t, b, ResolveActiveCard(&id, collection, now))
	})

	t.Run("no selection yields template", func(t *testing.T) {
		got := ResolveActiveCard(nil, collection, now)
		assert.NotEqual(t, a.ID, got.ID)
		assert.NotEqual(t, b.ID, got.ID)
		assert.Equal(t, DefaultFirstName, got.FirstName)
	})

	t.Run("stale selection yields template", func(t *testing.T) {
		id := "gone"
		got := ResolveActiveCard(&id, collection, now)
		assert.NotEqual(t, "gone", got.ID)
		assert.Len(t, collection, 2)
	})
}
