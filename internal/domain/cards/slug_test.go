package cards

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMakeSlug(t *testing.T) {
	cases := map[string]string{
		"Alex":      "alex",
		"Ana María": "ana maría",
		"O'Brien":   "o'brien",
		"Mary Ann":  "mary ann",
		"ZOË":       "zoë",
		"":          "card",
		"   ":       "card",
	}
	for in, want := range cases {
		assert.Equal(t, want, MakeSlug(in), in)
	}
}

func TestMakeSlugContainsLowerCasedName(t *testing.T) {
	for _, name := range []string{"Mary Ann", "O'Brien", "Jean-Luc", " Ana "} {
		assert.True(t, strings.Contains(MakeSlug(name), strings.ToLower(name)), name)
	}
}

func TestBuildPublicURL(t *testing.T) {
	assert.Equal(t, "https://indi.app/c/alex-k3x9", BuildPublicURL("https://indi.app/", "alex", "k3x9"))
}
