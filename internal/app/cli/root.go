// Package cli wires the cobra commands: the HTTP server plus a handful of
// card operations for scripting and support work.
package cli

import (
	"context"
	"encoding/json"
	"fmt"

	"indi-cards/config"
	"indi-cards/database"
	"indi-cards/internal/cardstore"
	"indi-cards/internal/infra/gemini"
	"indi-cards/internal/infra/stripe"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

// Deps are the collaborators every command runs against.
type Deps struct {
	Store    *cardstore.Store
	Bio      *gemini.BioGenerator
	Payments stripe.Confirmer
	Close    func()
}

// Loader builds Deps once the environment is known.
type Loader func(ctx context.Context) (*Deps, error)

// NewRootCommand returns the indi command backed by the configured storage.
func NewRootCommand() *cobra.Command {
	return newRootCommand(loadFromEnv)
}

func newRootCommand(load Loader) *cobra.Command {
	root := &cobra.Command{
		Use:           "indi",
		Short:         "Digital business cards: HTTP API and card tooling",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.AddCommand(
		newServeCommand(load),
		newListCommand(load),
		newCreateCommand(load),
		newShowCommand(load),
		newDeleteCommand(load),
		newPublishCommand(load),
		newUnpublishCommand(load),
		newUpgradeCommand(load),
		newBioCommand(load),
	)
	return root
}

func loadFromEnv(ctx context.Context) (*Deps, error) {
	config.LoadEnv()
	database.InitStorage()

	store := cardstore.New(database.Store,
		cardstore.WithTrialPeriod(config.TrialPeriod()),
		cardstore.WithPublicBaseURL(config.PUBLIC_BASE_URL),
		cardstore.WithPublishDelay(config.PUBLISH_DELAY),
		cardstore.WithLogger(log.StandardLogger()),
	)

	bio, err := gemini.New(ctx, config.GEMINI_API_KEY,
		gemini.WithModel(config.GEMINI_MODEL),
		gemini.WithLogger(log.StandardLogger()),
	)
	if err != nil {
		log.WithError(err).Warn("Gemini unavailable, bios run in demo mode")
		bio = gemini.NewDemo(gemini.WithLogger(log.StandardLogger()))
	}
	if bio.DemoMode() {
		log.Info("AI bios in demo mode (no GEMINI_API_KEY)")
	}

	return &Deps{
		Store:    store,
		Bio:      bio,
		Payments: stripe.NewConfirmer(config.STRIPE_SECRET_KEY),
		Close:    database.Close,
	}, nil
}

// withDeps loads Deps for the duration of one command.
func withDeps(cmd *cobra.Command, load Loader, fn func(*Deps) error) error {
	deps, err := load(cmd.Context())
	if err != nil {
		return err
	}
	if deps.Close != nil {
		defer deps.Close()
	}
	return fn(deps)
}

func printJSON(cmd *cobra.Command, v any) error {
	enc := json.NewEncoder(cmd.OutOrStdout())
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("write output: %w", err)
	}
	return nil
}
