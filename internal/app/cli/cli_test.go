package cli

import (
	"bytes"
	"context"
	"encoding/json"
	"strings"
	"testing"

	"indi-cards/internal/cardstore"
	"indi-cards/internal/domain/access"
	"indi-cards/internal/domain/cards"
	"indi-cards/internal/domain/plans"
	"indi-cards/internal/infra/gemini"
	"indi-cards/internal/infra/storage"
	"indi-cards/internal/infra/stripe"

	logtest "github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testDeps() *Deps {
	logger, _ := logtest.NewNullLogger()
	return &Deps{
		Store: cardstore.New(storage.NewMemory(),
			cardstore.WithPublishDelay(0),
			cardstore.WithLogger(logger),
		),
		Bio:      gemini.NewDemo(gemini.WithDemoDelay(0), gemini.WithLogger(logger)),
		Payments: stripe.DemoConfirmer{},
	}
}

func run(t *testing.T, d *Deps, args ...string) (string, error) {
	t.Helper()
	root := newRootCommand(func(context.Context) (*Deps, error) { return d, nil })
	var out bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&out)
	root.SetArgs(args)
	err := root.ExecuteContext(context.Background())
	return out.String(), err
}

func TestCreateAndList(t *testing.T) {
	d := testDeps()

	out, err := run(t, d, "create")
	require.NoError(t, err)
	var created cardView
	require.NoError(t, json.Unmarshal([]byte(out), &created))
	assert.Equal(t, cards.DefaultFirstName, created.FirstName)
	assert.Equal(t, access.StatusTrial, created.Subscription.Status)

	out, err = run(t, d, "list")
	require.NoError(t, err)
	var list []cardView
	require.NoError(t, json.Unmarshal([]byte(out), &list))
	require.Len(t, list, 1)
	assert.Equal(t, created.ID, list[0].ID)
}

func TestShow(t *testing.T) {
	d := testDeps()

	out, err := run(t, d, "show")
	require.NoError(t, err)
	var tmpl cardView
	require.NoError(t, json.Unmarshal([]byte(out), &tmpl))
	assert.Equal(t, cards.DefaultFirstName, tmpl.FirstName)

	stored, _ := d.Store.ListCards(context.Background())
	assert.Empty(t, stored, "show never persists the template")

	c, err := d.Store.CreateCard(context.Background())
	require.NoError(t, err)

	out, err = run(t, d, "show")
	require.NoError(t, err)
	var active cardView
	require.NoError(t, json.Unmarshal([]byte(out), &active))
	assert.Equal(t, c.ID, active.ID)

	_, err = run(t, d, "show", "missing")
	assert.ErrorIs(t, err, cardstore.ErrNotFound)
}

func TestPublishUnpublish(t *testing.T) {
	d := testDeps()
	c, _ := d.Store.CreateCard(context.Background())

	out, err := run(t, d, "publish", c.ID)
	require.NoError(t, err)
	url := strings.TrimSpace(out)
	assert.True(t, strings.HasPrefix(url, "https://indi.app/c/alex-"), url)

	out, err = run(t, d, "publish", c.ID)
	require.NoError(t, err)
	assert.Equal(t, url, strings.TrimSpace(out))

	out, err = run(t, d, "publish", c.ID, "--regenerate")
	require.NoError(t, err)
	assert.NotEqual(t, url, strings.TrimSpace(out))

	_, err = run(t, d, "unpublish", c.ID)
	require.NoError(t, err)
	got, _ := d.Store.GetCard(context.Background(), c.ID)
	assert.False(t, got.IsPublished)
	assert.Empty(t, got.PublishedURL)
}

func TestUpgradeAndDelete(t *testing.T) {
	d := testDeps()
	c, _ := d.Store.CreateCard(context.Background())

	_, err := run(t, d, "upgrade", c.ID, "--reference", "cs_test")
	require.NoError(t, err)
	got, _ := d.Store.GetCard(context.Background(), c.ID)
	assert.Equal(t, plans.PlanPro, got.PlanType)

	out, err := run(t, d, "delete", c.ID)
	require.NoError(t, err)
	assert.Equal(t, "0 card(s) left\n", out)

	_, err = run(t, d, "delete", c.ID)
	assert.NoError(t, err)
}

func TestBio(t *testing.T) {
	d := testDeps()

	_, err := run(t, d, "bio", "--title", "Chef")
	assert.Error(t, err)

	out, err := run(t, d, "bio", "--title", "Chef", "--company", "Bistro")
	require.NoError(t, err)
	assert.Equal(t, gemini.DemoBio("Chef", "Bistro", "")+"\n", out)
}
