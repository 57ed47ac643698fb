package feed

import (
	"context"
	"fmt"
	"time"

	"github.com/go-pkgz/lgr"
	"github.com/google/uuid"

	"github.com/fmhy/wikibot/pkg/domain"
)

//go:generate moq --out mocks/subscription_store.go --pkg mocks --with-resets --skip-ensure . SubscriptionStore
//go:generate moq --out mocks/validator.go --pkg mocks --with-resets --skip-ensure . Validator

// SubscriptionStore is the persistence interface the manager needs
type SubscriptionStore interface {
	Create(ctx context.Context, feed *domain.FeedSubscription) error
	Delete(ctx context.Context, id string) error
	Get(ctx context.Context, id string) (*domain.FeedSubscription, error)
	ListByChannel(ctx context.Context, channelID int64) ([]domain.FeedSubscription, error)
}

// Validator checks a feed URL is fetchable and parseable before it is stored
type Validator interface {
	Validate(ctx context.Context, feedURL string) (string, error)
}

// Manager handles the subscription lifecycle
type Manager struct {
	store     SubscriptionStore
	validator Validator
}

// NewManager creates a subscription manager
func NewManager(store SubscriptionStore, validator Validator) *Manager {
	return &Manager{store: store, validator: validator}
}

// Subscribe validates the feed and stores a new subscription for the
// channel. The feed's own title becomes the display name unless the feed
// does not declare one.
func (m *Manager) Subscribe(ctx context.Context, feedURL string, channelID, guildID, createdBy int64, interval time.Duration) (*domain.FeedSubscription, error) {
	title, err := m.validator.Validate(ctx, feedURL)
	if err != nil {
		return nil, fmt.Errorf("validate feed %s: %w", feedURL, err)
	}
	if title == "" {
		title = feedURL
	}

	sub := &domain.FeedSubscription{
		ID:            uuid.NewString(),
		URL:           feedURL,
		Name:          title,
		ChannelID:     channelID,
		GuildID:       guildID,
		CreatedBy:     createdBy,
		Status:        domain.FeedActive,
		CheckInterval: interval,
		CreatedAt:     time.Now(),
	}

	if err := m.store.Create(ctx, sub); err != nil {
		return nil, fmt.Errorf("store subscription: %w", err)
	}

	lgr.Printf("[INFO] subscribed %q (%s) in channel %d", sub.Name, sub.URL, sub.ChannelID)
	return sub, nil
}

// Unsubscribe removes a subscription by id
func (m *Manager) Unsubscribe(ctx context.Context, id string) error {
	sub, err := m.store.Get(ctx, id)
	if err != nil {
		return fmt.Errorf("get subscription: %w", err)
	}

	if err := m.store.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete subscription: %w", err)
	}

	lgr.Printf("[INFO] unsubscribed %q (%s) from channel %d", sub.Name, sub.URL, sub.ChannelID)
	return nil
}

// ListChannel returns the subscriptions posting into a channel
func (m *Manager) ListChannel(ctx context.Context, channelID int64) ([]domain.FeedSubscription, error) {
	subs, err := m.store.ListByChannel(ctx, channelID)
	if err != nil {
		return nil, fmt.Errorf("list subscriptions: %w", err)
	}
	return subs, nil
}
