package cli

import (
	"errors"
	"fmt"
	"time"

	"indi-cards/internal/cardstore"
	"indi-cards/internal/domain/access"
	"indi-cards/internal/domain/cards"

	"github.com/spf13/cobra"
)

type cardView struct {
	cards.Card
	Subscription access.Policy `json:"subscription"`
}

func view(s *cardstore.Store, c cards.Card) cardView {
	return cardView{Card: c, Subscription: s.Policy(c)}
}

func newListCommand(load Loader) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "Print every stored card",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return withDeps(cmd, load, func(d *Deps) error {
				list, err := d.Store.ListCards(cmd.Context())
				if err != nil {
					return err
				}
				out := make([]cardView, 0, len(list))
				for _, c := range list {
					out = append(out, view(d.Store, c))
				}
				return printJSON(cmd, out)
			})
		},
	}
}

func newCreateCommand(load Loader) *cobra.Command {
	return &cobra.Command{
		Use:   "create",
		Short: "Create a card from the default template",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return withDeps(cmd, load, func(d *Deps) error {
				c, err := d.Store.CreateCard(cmd.Context())
				if err != nil {
					return err
				}
				return printJSON(cmd, view(d.Store, c))
			})
		},
	}
}

// show without an id resolves the active card the way the editor does on
// startup: the first stored card, or an unsaved template.
func newShowCommand(load Loader) *cobra.Command {
	return &cobra.Command{
		Use:   "show [id]",
		Short: "Print one card, or the active card when no id is given",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withDeps(cmd, load, func(d *Deps) error {
				list, err := d.Store.ListCards(cmd.Context())
				if err != nil {
					return err
				}

				var selection *string
				switch {
				case len(args) == 1:
					selection = &args[0]
				case len(list) > 0:
					selection = &list[0].ID
				}

				if len(args) == 1 && !contains(list, args[0]) {
					return fmt.Errorf("%w: %s", cardstore.ErrNotFound, args[0])
				}
				return printJSON(cmd, view(d.Store, cards.ResolveActiveCard(selection, list, time.Now())))
			})
		},
	}
}

func contains(list []cards.Card, id string) bool {
	for _, c := range list {
		if c.ID == id {
			return true
		}
	}
	return false
}

func newDeleteCommand(load Loader) *cobra.Command {
	return &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete a card; unknown ids are ignored",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withDeps(cmd, load, func(d *Deps) error {
				list, err := d.Store.DeleteCard(cmd.Context(), args[0])
				if err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "%d card(s) left\n", len(list))
				return nil
			})
		},
	}
}

func newPublishCommand(load Loader) *cobra.Command {
	var regenerate bool
	cmd := &cobra.Command{
		Use:   "publish <id>",
		Short: "Publish a card and print its public URL",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withDeps(cmd, load, func(d *Deps) error {
				c, err := d.Store.GetCard(cmd.Context(), args[0])
				if err != nil {
					return err
				}
				if !c.IsPublished || regenerate {
					res := <-d.Store.PublishAsync(cmd.Context(), c)
					if res.Err != nil {
						return res.Err
					}
					c = res.Card
				}
				fmt.Fprintln(cmd.OutOrStdout(), c.PublishedURL)
				return nil
			})
		},
	}
	cmd.Flags().BoolVar(&regenerate, "regenerate", false, "draw a new public URL even if already published")
	return cmd
}

func newUnpublishCommand(load Loader) *cobra.Command {
	return &cobra.Command{
		Use:   "unpublish <id>",
		Short: "Take a card offline",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withDeps(cmd, load, func(d *Deps) error {
				c, err := d.Store.GetCard(cmd.Context(), args[0])
				if err != nil {
					return err
				}
				c, err = d.Store.UnpublishCard(cmd.Context(), c)
				if err != nil {
					return err
				}
				return printJSON(cmd, view(d.Store, c))
			})
		},
	}
}

func newUpgradeCommand(load Loader) *cobra.Command {
	var reference string
	cmd := &cobra.Command{
		Use:   "upgrade <id>",
		Short: "Move a card to the pro plan after confirming payment",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withDeps(cmd, load, func(d *Deps) error {
				c, err := d.Store.GetCard(cmd.Context(), args[0])
				if err != nil {
					return err
				}
				if err := d.Payments.Confirm(cmd.Context(), reference); err != nil {
					return fmt.Errorf("upgrade %s: %w", c.ID, err)
				}
				c, err = d.Store.UpgradeCard(cmd.Context(), c)
				if err != nil {
					return err
				}
				return printJSON(cmd, view(d.Store, c))
			})
		},
	}
	cmd.Flags().StringVar(&reference, "reference", "", "Stripe Checkout Session id")
	return cmd
}

func newBioCommand(load Loader) *cobra.Command {
	var title, company, keywords string
	cmd := &cobra.Command{
		Use:   "bio",
		Short: "Generate a short professional bio",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if title == "" || company == "" {
				return errors.New("--title and --company are required")
			}
			return withDeps(cmd, load, func(d *Deps) error {
				fmt.Fprintln(cmd.OutOrStdout(), d.Bio.GenerateBio(cmd.Context(), title, company, keywords))
				return nil
			})
		},
	}
	cmd.Flags().StringVar(&title, "title", "", "job title")
	cmd.Flags().StringVar(&company, "company", "", "company name")
	cmd.Flags().StringVar(&keywords, "keywords", "", "comma separated keywords")
	return cmd
}
