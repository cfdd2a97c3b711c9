// Package gemini generates professional bios through Google's Gemini API.
// The generator never returns an error: without an API key it answers with a
// demo string, and any failure turns into a fixed message for the UI.
package gemini

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/sony/gobreaker/v2"
	"google.golang.org/genai"
)

const (
	DefaultModel     = "gemini-2.5-flash"
	DefaultDemoDelay = 1500 * time.Millisecond

	MsgNoContent    = "Could not generate bio."
	MsgServiceError = "Error connecting to AI service."
)

type contentGenerator interface {
	GenerateContent(ctx context.Context, model string, contents []*genai.Content, config *genai.GenerateContentConfig) (*genai.GenerateContentResponse, error)
}

type BioGenerator struct {
	models    contentGenerator
	model     string
	demoDelay time.Duration
	breaker   *gobreaker.CircuitBreaker[string]
	log       logrus.FieldLogger
}

type Option func(*BioGenerator)

func WithModel(model string) Option {
	return func(g *BioGenerator) {
		if model != "" {
			g.model = model
		}
	}
}

func WithDemoDelay(d time.Duration) Option {
	return func(g *BioGenerator) { g.demoDelay = d }
}

func WithLogger(l logrus.FieldLogger) Option {
	return func(g *BioGenerator) { g.log = l }
}

// New connects to Gemini with apiKey. An empty key gives a demo-mode generator.
func New(ctx context.Context, apiKey string, opts ...Option) (*BioGenerator, error) {
	if apiKey == "" {
		return NewDemo(opts...), nil
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create GenAI client: %w", err)
	}
	return newGenerator(client.Models, opts...), nil
}

// NewDemo returns a generator that always answers with the demo bio.
func NewDemo(opts ...Option) *BioGenerator {
	return newGenerator(nil, opts...)
}

func newGenerator(models contentGenerator, opts ...Option) *BioGenerator {
	g := &BioGenerator{
		models:    models,
		model:     DefaultModel,
		demoDelay: DefaultDemoDelay,
		log:       logrus.StandardLogger(),
	}
	for _, opt := range opts {
		opt(g)
	}

	g.breaker = gobreaker.NewCircuitBreaker[string](gobreaker.Settings{
		Name:        "gemini",
		MaxRequests: 1,
		Timeout:     30 * time.Second,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= 3
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			g.log.WithFields(logrus.Fields{
				"breaker": name,
				"from":    from.String(),
				"to":      to.String(),
			}).Warn("circuit breaker state changed")
		},
	})
	return g
}

// DemoMode reports whether the generator runs without an API key.
func (g *BioGenerator) DemoMode() bool {
	return g.models == nil
}

// DemoBio is the canned bio returned when no API key is configured.
func DemoBio(title, company, keywords string) string {
	return fmt.Sprintf("[AI DEMO MODE] Experienced %s at %s with a strong focus on %s. Dedicated to driving innovation and delivering exceptional results in fast-paced environments.", title, company, keywords)
}

func prompt(title, company, keywords string) string {
	return fmt.Sprintf("Write a professional, concise, and engaging bio (max 40 words) for a %s working at %s. Key skills/focus: %s. Tone: Professional but approachable.", title, company, keywords)
}

// GenerateBio returns a short bio for the given profile fields.
func (g *BioGenerator) GenerateBio(ctx context.Context, title, company, keywords string) string {
	if g.DemoMode() {
		g.log.Warn("Gemini API key missing, returning demo bio")
		if g.demoDelay > 0 {
			t := time.NewTimer(g.demoDelay)
			select {
			case <-t.C:
			case <-ctx.Done():
				t.Stop()
			}
		}
		return DemoBio(title, company, keywords)
	}

	text, err := g.breaker.Execute(func() (string, error) {
		resp, err := g.models.GenerateContent(ctx, g.model, genai.Text(prompt(title, company, keywords)), nil)
		if err != nil {
			return "", err
		}
		return resp.Text(), nil
	})
	if err != nil {
		g.log.WithError(err).Error("error generating bio")
		return MsgServiceError
	}

	text = strings.TrimSpace(text)
	if text == "" {
		return MsgNoContent
	}
	return text
}
