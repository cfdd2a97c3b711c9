package plans

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalize(t *testing.T) {
	cases := []struct {
		in   string
		want PlanType
		ok   bool
	}{
		{"", PlanFree, true},
		{"free", PlanFree, true},
		{" PRO ", PlanPro, true},
		{"enterprise", "", false},
	}
	for _, tc := range cases {
		got, ok := Normalize(tc.in)
		assert.Equal(t, tc.ok, ok, tc.in)
		assert.Equal(t, tc.want, got, tc.in)
	}
}

func TestCatalogListsFreeThenPro(t *testing.T) {
	c := Catalog()
	if assert.Len(t, c, 2) {
		assert.Equal(t, PlanFree, c[0].Type)
		assert.Equal(t, PlanPro, c[1].Type)
		assert.NotEmpty(t, c[1].Features)
	}
}
