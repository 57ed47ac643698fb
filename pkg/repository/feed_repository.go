package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/go-pkgz/repeater/v2"
	"github.com/jmoiron/sqlx"

	"github.com/fmhy/wikibot/pkg/domain"
)

// ErrDuplicateFeed is returned when a feed URL is already subscribed in the channel
var ErrDuplicateFeed = errors.New("feed already subscribed in this channel")

// ErrNotFound is returned when a requested record does not exist
var ErrNotFound = errors.New("not found")

type dbFeed struct {
	ID            string       `db:"id"`
	URL           string       `db:"url"`
	Name          string       `db:"name"`
	ChannelID     int64        `db:"channel_id"`
	GuildID       int64        `db:"guild_id"`
	CreatedBy     int64        `db:"created_by"`
	Status        string       `db:"status"`
	CheckInterval int64        `db:"check_interval"` // seconds
	LastCheckedAt sql.NullTime `db:"last_checked_at"`
	CreatedAt     time.Time    `db:"created_at"`
}

// FeedRepository handles feed subscription database operations
type FeedRepository struct {
	db *sqlx.DB
}

// NewFeedRepository creates a new feed repository
func NewFeedRepository(db *sqlx.DB) *FeedRepository {
	return &FeedRepository{db: db}
}

// Create inserts a new subscription. The same URL may be subscribed in
// different channels, but not twice in the same one.
func (r *FeedRepository) Create(ctx context.Context, feed *domain.FeedSubscription) error {
	row := toDBFeed(feed)

	query := `
		INSERT INTO feeds (id, url, name, channel_id, guild_id, created_by, status, check_interval, created_at)
		VALUES (:id, :url, :name, :channel_id, :guild_id, :created_by, :status, :check_interval, :created_at)
	`
	if _, err := r.db.NamedExecContext(ctx, query, row); err != nil {
		if strings.Contains(err.Error(), "UNIQUE constraint failed") {
			return ErrDuplicateFeed
		}
		return fmt.Errorf("create feed: %w", err)
	}
	return nil
}

// Get retrieves a subscription by id
func (r *FeedRepository) Get(ctx context.Context, id string) (*domain.FeedSubscription, error) {
	var row dbFeed
	if err := r.db.GetContext(ctx, &row, "SELECT * FROM feeds WHERE id = ?", id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("get feed: %w", err)
	}
	feed := toDomainFeed(&row)
	return &feed, nil
}

// Delete removes a subscription and, via cascade, its seen entries
func (r *FeedRepository) Delete(ctx context.Context, id string) error {
	result, err := r.db.ExecContext(ctx, "DELETE FROM feeds WHERE id = ?", id)
	if err != nil {
		return fmt.Errorf("delete feed: %w", err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("rows affected: %w", err)
	}
	if affected == 0 {
		return ErrNotFound
	}
	return nil
}

// ListByChannel retrieves subscriptions posting to a channel
func (r *FeedRepository) ListByChannel(ctx context.Context, channelID int64) ([]domain.FeedSubscription, error) {
	var rows []dbFeed
	err := r.db.SelectContext(ctx, &rows,
		"SELECT * FROM feeds WHERE channel_id = ? ORDER BY created_at", channelID)
	if err != nil {
		return nil, fmt.Errorf("list feeds by channel: %w", err)
	}
	return toDomainFeeds(rows), nil
}

// List retrieves all subscriptions
func (r *FeedRepository) List(ctx context.Context) ([]domain.FeedSubscription, error) {
	var rows []dbFeed
	if err := r.db.SelectContext(ctx, &rows, "SELECT * FROM feeds ORDER BY created_at"); err != nil {
		return nil, fmt.Errorf("list feeds: %w", err)
	}
	return toDomainFeeds(rows), nil
}

// GetDue retrieves active subscriptions whose check interval has elapsed,
// never-checked feeds first, then least recently checked. Feeds without
// their own interval use defaultInterval.
func (r *FeedRepository) GetDue(ctx context.Context, now time.Time, defaultInterval time.Duration) ([]domain.FeedSubscription, error) {
	var rows []dbFeed
	err := r.db.SelectContext(ctx, &rows,
		"SELECT * FROM feeds WHERE status = ? ORDER BY last_checked_at ASC", string(domain.FeedActive))
	if err != nil {
		return nil, fmt.Errorf("get due feeds: %w", err)
	}

	var due []domain.FeedSubscription
	for _, row := range rows {
		feed := toDomainFeed(&row)
		interval := feed.CheckInterval
		if interval <= 0 {
			interval = defaultInterval
		}
		if feed.LastCheckedAt == nil || !feed.LastCheckedAt.Add(interval).After(now) {
			due = append(due, feed)
		}
	}
	return due, nil
}

// UpdateLastChecked stamps a subscription as checked. Called before the
// fetch starts so a slow feed cannot be dispatched again next tick.
func (r *FeedRepository) UpdateLastChecked(ctx context.Context, id string, checkedAt time.Time) error {
	retrier := repeater.NewBackoff(5, 50*time.Millisecond, repeater.WithMaxDelay(2*time.Second))

	return retrier.Do(ctx, func() error {
		_, err := r.db.ExecContext(ctx, "UPDATE feeds SET last_checked_at = ? WHERE id = ?", checkedAt, id)
		if err != nil {
			if isLockError(err) {
				return err // retry
			}
			return &criticalError{err: fmt.Errorf("update last checked: %w", err)}
		}
		return nil
	})
}

// SetStatus enables or disables scheduling of a subscription
func (r *FeedRepository) SetStatus(ctx context.Context, id string, status domain.FeedStatus) error {
	result, err := r.db.ExecContext(ctx, "UPDATE feeds SET status = ? WHERE id = ?", string(status), id)
	if err != nil {
		return fmt.Errorf("set feed status: %w", err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("rows affected: %w", err)
	}
	if affected == 0 {
		return ErrNotFound
	}
	return nil
}

func toDBFeed(feed *domain.FeedSubscription) dbFeed {
	row := dbFeed{
		ID:            feed.ID,
		URL:           feed.URL,
		Name:          feed.Name,
		ChannelID:     feed.ChannelID,
		GuildID:       feed.GuildID,
		CreatedBy:     feed.CreatedBy,
		Status:        string(feed.Status),
		CheckInterval: int64(feed.CheckInterval / time.Second),
		CreatedAt:     feed.CreatedAt,
	}
	if feed.LastCheckedAt != nil {
		row.LastCheckedAt = sql.NullTime{Time: *feed.LastCheckedAt, Valid: true}
	}
	return row
}

func toDomainFeed(row *dbFeed) domain.FeedSubscription {
	feed := domain.FeedSubscription{
		ID:            row.ID,
		URL:           row.URL,
		Name:          row.Name,
		ChannelID:     row.ChannelID,
		GuildID:       row.GuildID,
		CreatedBy:     row.CreatedBy,
		Status:        domain.FeedStatus(row.Status),
		CheckInterval: time.Duration(row.CheckInterval) * time.Second,
		CreatedAt:     row.CreatedAt,
	}
	if row.LastCheckedAt.Valid {
		t := row.LastCheckedAt.Time
		feed.LastCheckedAt = &t
	}
	return feed
}

func toDomainFeeds(rows []dbFeed) []domain.FeedSubscription {
	feeds := make([]domain.FeedSubscription, len(rows))
	for i, row := range rows {
		feeds[i] = toDomainFeed(&row)
	}
	return feeds
}
