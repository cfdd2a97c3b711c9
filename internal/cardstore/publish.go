package cardstore

import (
	"context"
	"time"

	"indi-cards/internal/domain/access"
	"indi-cards/internal/domain/cards"
	"indi-cards/internal/domain/plans"
)

// saveAndReturn persists c and returns it as stored. Callers hold s.mu.
func (s *Store) saveAndReturn(ctx context.Context, c cards.Card) (cards.Card, error) {
	list, err := s.saveLocked(ctx, c)
	if err != nil {
		return cards.Card{}, err
	}
	return list[indexOf(list, c.ID)], nil
}

// PublishCard marks the card published under a fresh public URL built from
// the first name and a random suffix. Every call draws a new suffix, so
// callers that want idempotence must check IsPublished first.
func (s *Store) PublishCard(ctx context.Context, c cards.Card) (cards.Card, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	c.IsPublished = true
	c.PublishedURL = cards.BuildPublicURL(s.baseURL, cards.MakeSlug(c.FirstName), s.newSuffix())
	c.UpdatedAt = s.now().UTC()

	out, err := s.saveAndReturn(ctx, c)
	if err != nil {
		return cards.Card{}, err
	}
	s.log.WithField("card_id", out.ID).WithField("url", out.PublishedURL).Info("card published")
	return out, nil
}

// UnpublishCard takes the card offline and forgets its public URL.
func (s *Store) UnpublishCard(ctx context.Context, c cards.Card) (cards.Card, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	c.IsPublished = false
	c.PublishedURL = ""
	c.UpdatedAt = s.now().UTC()

	return s.saveAndReturn(ctx, c)
}

// UpgradeCard moves the card to the pro plan. Payment must already be
// confirmed by the caller.
func (s *Store) UpgradeCard(ctx context.Context, c cards.Card) (cards.Card, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	c.PlanType = plans.PlanPro
	c.SubscriptionStatus = access.StatusActive
	c.UpdatedAt = s.now().UTC()

	out, err := s.saveAndReturn(ctx, c)
	if err != nil {
		return cards.Card{}, err
	}
	s.log.WithField("card_id", out.ID).Info("card upgraded to pro")
	return out, nil
}

type PublishResult struct {
	Card cards.Card
	Err  error
}

// PublishAsync publishes after the configured delay and delivers exactly one
// result on the returned channel. Concurrent calls are not coordinated: the
// last one to finish wins. Cancelling ctx before the delay ends abandons the
// publish without writing.
func (s *Store) PublishAsync(ctx context.Context, c cards.Card) <-chan PublishResult {
	out := make(chan PublishResult, 1)

	go func() {
		defer close(out)

		timer := time.NewTimer(s.publishDelay)
		defer timer.Stop()

		select {
		case <-ctx.Done():
			out <- PublishResult{Err: ctx.Err()}
			return
		case <-timer.C:
		}
		// both cases can be ready at once; a cancelled publish never writes
		if err := ctx.Err(); err != nil {
			out <- PublishResult{Err: err}
			return
		}

		published, err := s.PublishCard(ctx, c)
		out <- PublishResult{Card: published, Err: err}
	}()

	return out
}
