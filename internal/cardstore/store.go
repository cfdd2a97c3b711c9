// Package cardstore is the single read/write boundary for the card collection.
//
// The whole collection lives as one JSON array under one storage key. Every
// mutation reads the array, changes it in memory and writes it back whole.
// Records that fail to decode or validate are dropped on read and logged;
// a value that is not a JSON array at all is treated as an empty collection.
// Failures of the storage primitive surface as ErrStorageUnavailable on reads
// and writes alike.
package cardstore

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"indi-cards/internal/domain/access"
	"indi-cards/internal/domain/cards"
	"indi-cards/internal/infra/storage"
)

// StorageKey is the namespaced key holding the serialized collection.
const StorageKey = "indi_cards"

const (
	DefaultPublicBaseURL = "https://indi.app"
	DefaultPublishDelay  = 1500 * time.Millisecond
)

var (
	ErrNotFound           = errors.New("card not found")
	ErrStorageUnavailable = errors.New("card storage unavailable")
	ErrInvalidCard        = cards.ErrInvalid
)

type Store struct {
	mu      sync.Mutex
	backend storage.Backend
	key     string

	now          func() time.Time
	newSuffix    func() string
	trialPeriod  time.Duration
	baseURL      string
	publishDelay time.Duration
	log          logrus.FieldLogger
}

type Option func(*Store)

func WithClock(now func() time.Time) Option {
	return func(s *Store) { s.now = now }
}

func WithTrialPeriod(d time.Duration) Option {
	return func(s *Store) {
		if d > 0 {
			s.trialPeriod = d
		}
	}
}

func WithPublicBaseURL(u string) Option {
	return func(s *Store) {
		if u != "" {
			s.baseURL = u
		}
	}
}

func WithPublishDelay(d time.Duration) Option {
	return func(s *Store) {
		if d >= 0 {
			s.publishDelay = d
		}
	}
}

func WithLogger(l logrus.FieldLogger) Option {
	return func(s *Store) { s.log = l }
}


func New(backend storage.Backend, opts ...Option) *Store {
	s := &Store{
		backend:      backend,
		key:          StorageKey,
		now:          time.Now,
		newSuffix:    randomSuffix,
		trialPeriod:  access.DefaultTrialPeriod,
		baseURL:      DefaultPublicBaseURL,
		publishDelay: DefaultPublishDelay,
		log:          logrus.StandardLogger(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func randomSuffix() string {
	return strings.ReplaceAll(uuid.NewString(), "-", "")[:10]
}

// Policy computes the subscription policy for a card at the store's clock.
func (s *Store) Policy(c cards.Card) access.Policy {
	return access.ComputePolicy(s.now(), c.PlanType, c.TrialStartedAt, s.trialPeriod)
}

// load reads and decodes the collection. Callers hold s.mu.
func (s *Store) load(ctx context.Context) ([]cards.Card, error) {
	raw, err := s.backend.Get(ctx, s.key)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrStorageUnavailable, err)
	}

	out := []cards.Card{}
	if len(raw) == 0 {
		return out, nil
	}

	var records []json.RawMessage
	if err := json.Unmarshal(raw, &records); err != nil {
		s.log.WithError(err).WithField("key", s.key).Warn("stored card collection is not a JSON array, treating as empty")
		return out, nil
	}

	now := s.now()
	seen := make(map[string]struct{}, len(records))
	for i, rec := range records {
		var c cards.Card
		if err := json.Unmarshal(rec, &c); err != nil {
			s.log.WithError(err).WithField("index", i).Warn("dropping undecodable card record")
			continue
		}
		if err := c.Validate(); err != nil {
			s.log.WithError(err).WithFields(logrus.Fields{"index": i, "card_id": c.ID}).Warn("dropping malformed card record")
			continue
		}
		if _, dup := seen[c.ID]; dup {
			s.log.WithFields(logrus.Fields{"index": i, "card_id": c.ID}).Warn("dropping duplicate card record")
			continue
		}
		seen[c.ID] = struct{}{}

		c.SubscriptionStatus = access.ComputeSubscriptionStatus(now, c.PlanType, c.TrialStartedAt, s.trialPeriod)
		out = append(out, c)
	}
	return out, nil
}

// write replaces the stored collection. Callers hold s.mu.
func (s *Store) write(ctx context.Context, list []cards.Card) error {
	raw, err := json.Marshal(list)
	if err != nil {
		return fmt.Errorf("%w: encode collection: %w", ErrStorageUnavailable, err)
	}
	if err := s.backend.Set(ctx, s.key, raw); err != nil {
		return fmt.Errorf("%w: %w", ErrStorageUnavailable, err)
	}
	return nil
}

func indexOf(list []cards.Card, id string) int {
	for i := range list {
		if list[i].ID == id {
			return i
		}
	}
	return -1
}

// ListCards returns the stored collection in insertion order.
func (s *Store) ListCards(ctx context.Context) ([]cards.Card, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.load(ctx)
}

// GetCard looks a single card up by id.
func (s *Store) GetCard(ctx context.Context, id string) (cards.Card, error) {
	list, err := s.ListCards(ctx)
	if err != nil {
		return cards.Card{}, err
	}
	if i := indexOf(list, id); i >= 0 {
		return list[i], nil
	}
	return cards.Card{}, fmt.Errorf("%w: %s", ErrNotFound, id)
}

// CreateCard persists a new card built from the default template. The id is
// guaranteed not to collide with any stored id.
func (s *Store) CreateCard(ctx context.Context) (cards.Card, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	list, err := s.load(ctx)
	if err != nil {
		return cards.Card{}, err
	}

	c := cards.NewTemplate(s.now())
	for indexOf(list, c.ID) >= 0 {
		c.ID = uuid.NewString()
	}

	list = append(list, c)
	if err := s.write(ctx, list); err != nil {
		return cards.Card{}, err
	}

	s.log.WithField("card_id", c.ID).Info("card created")
	return c, nil
}

// SaveCard replaces the record with the same id, or appends it when absent.
// The record is written as given; only the subscription status is recomputed.
func (s *Store) SaveCard(ctx context.Context, c cards.Card) ([]cards.Card, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.saveLocked(ctx, c)
}

func (s *Store) saveLocked(ctx context.Context, c cards.Card) ([]cards.Card, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}
	c.SubscriptionStatus = access.ComputeSubscriptionStatus(s.now(), c.PlanType, c.TrialStartedAt, s.trialPeriod)

	list, err := s.load(ctx)
	if err != nil {
		return nil, err
	}

	if i := indexOf(list, c.ID); i >= 0 {
		list[i] = c
	} else {
		list = append(list, c)
	}

	if err := s.write(ctx, list); err != nil {
		return nil, err
	}
	return list, nil
}

// DeleteCard removes the record with the given id. Unknown ids are a no-op.
func (s *Store) DeleteCard(ctx context.Context, id string) ([]cards.Card, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	list, err := s.load(ctx)
	if err != nil {
		return nil, err
	}

	i := indexOf(list, id)
	if i < 0 {
		return list, nil
	}

	list = append(list[:i], list[i+1:]...)
	if err := s.write(ctx, list); err != nil {
		return nil, err
	}

	s.log.WithField("card_id", id).Info("card deleted")
	return list, nil
}
