package gemini

import (
	"context"
	"errors"
	"testing"

	logtest "github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"google.golang.org/genai"
)

type fakeModels struct {
	text  string
	err   error
	calls int
	last  string
}

func (f *fakeModels) GenerateContent(_ context.Context, _ string, contents []*genai.Content, _ *genai.GenerateContentConfig) (*genai.GenerateContentResponse, error) {
	f.calls++
	if len(contents) > 0 && len(contents[0].Parts) > 0 {
		f.last = contents[0].Parts[0].Text
	}
	if f.err != nil {
		return nil, f.err
	}
	return &genai.GenerateContentResponse{
		Candidates: []*genai.Candidate{
			{Content: genai.NewContentFromText(f.text, genai.RoleModel)},
		},
	}, nil
}

func quiet() Option {
	l, _ := logtest.NewNullLogger()
	return WithLogger(l)
}

func TestDemoModeWithoutKey(t *testing.T) {
	g, err := New(context.Background(), "", WithDemoDelay(0), quiet())
	assert.NoError(t, err)
	assert.True(t, g.DemoMode())

	bio := g.GenerateBio(context.Background(), "Engineer", "Acme", "rust")
	assert.Equal(t, "[AI DEMO MODE] Experienced Engineer at Acme with a strong focus on rust. Dedicated to driving innovation and delivering exceptional results in fast-paced environments.", bio)
	assert.Contains(t, bio, "Engineer")
	assert.Contains(t, bio, "Acme")
	assert.Contains(t, bio, "rust")
}

func TestGenerateBioUsesModel(t *testing.T) {
	f := &fakeModels{text: "  Engineer who ships Rust at Acme.  "}
	g := newGenerator(f, quiet())

	bio := g.GenerateBio(context.Background(), "Engineer", "Acme", "rust")
	assert.Equal(t, "Engineer who ships Rust at Acme.", bio)
	assert.Equal(t, 1, f.calls)
	assert.Contains(t, f.last, "for a Engineer working at Acme")
	assert.Contains(t, f.last, "Key skills/focus: rust")
}

func TestGenerateBioEmptyResponse(t *testing.T) {
	g := newGenerator(&fakeModels{text: ""}, quiet())
	assert.Equal(t, MsgNoContent, g.GenerateBio(context.Background(), "a", "b", "c"))
}

func TestGenerateBioErrorBecomesMessage(t *testing.T) {
	f := &fakeModels{err: errors.New("401 unauthorized")}
	g := newGenerator(f, quiet())

	assert.Equal(t, MsgServiceError, g.GenerateBio(context.Background(), "a", "b", "c"))
}

func TestBreakerOpensAfterRepeatedFailures(t *testing.T) {
	f := &fakeModels{err: errors.New("unreachable")}
	g := newGenerator(f, quiet())

	for i := 0; i < 5; i++ {
		assert.Equal(t, MsgServiceError, g.GenerateBio(context.Background(), "a", "b", "c"))
	}
	assert.Equal(t, 3, f.calls, "open breaker short-circuits further calls")
}
