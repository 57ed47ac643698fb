package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/go-pkgz/repeater/v2"
	"github.com/jmoiron/sqlx"

	"github.com/fmhy/wikibot/pkg/domain"
)

type dbEntry struct {
	ID          string        `db:"id"`
	FeedID      string        `db:"feed_id"`
	EntryID     string        `db:"entry_id"`
	Title       string        `db:"title"`
	Link        string        `db:"link"`
	Description string        `db:"description"`
	Thumbnail   string        `db:"thumbnail"`
	PublishedAt sql.NullTime  `db:"published_at"`
	MessageID   sql.NullInt64 `db:"message_id"`
	CreatedAt   time.Time     `db:"created_at"`
}

// EntryRepository handles seen feed entry database operations
type EntryRepository struct {
	db *sqlx.DB
}

// NewEntryRepository creates a new entry repository
func NewEntryRepository(db *sqlx.DB) *EntryRepository {
	return &EntryRepository{db: db}
}

// CreateMany inserts entries with conflicts on (feed_id, entry_id) silently
// ignored and returns only the entries that were actually new. The insert
// itself is the dedup check: a second ingestion of the same list returns
// nothing.
func (r *EntryRepository) CreateMany(ctx context.Context, entries []domain.FeedEntry) ([]domain.FeedEntry, error) {
	if len(entries) == 0 {
		return nil, nil
	}

	query := `
		INSERT INTO feed_entries (id, feed_id, entry_id, title, link, description, thumbnail, published_at, message_id, created_at)
		VALUES (:id, :feed_id, :entry_id, :title, :link, :description, :thumbnail, :published_at, :message_id, :created_at)
		ON CONFLICT(feed_id, entry_id) DO NOTHING
	`

	var created []domain.FeedEntry
	retrier := repeater.NewBackoff(5, 50*time.Millisecond, repeater.WithMaxDelay(2*time.Second))

	err := retrier.Do(ctx, func() error {
		created = created[:0]

		tx, err := r.db.BeginTxx(ctx, nil)
		if err != nil {
			if isLockError(err) {
				return err // retry
			}
			return &criticalError{err: fmt.Errorf("begin transaction: %w", err)}
		}
		defer func() { _ = tx.Rollback() }()

		for _, entry := range entries {
			result, err := tx.NamedExecContext(ctx, query, toDBEntry(&entry))
			if err != nil {
				if isLockError(err) {
					return err // retry
				}
				return &criticalError{err: fmt.Errorf("insert entry %s: %w", entry.EntryID, err)}
			}
			inserted, err := result.RowsAffected()
			if err != nil {
				return &criticalError{err: fmt.Errorf("rows affected: %w", err)}
			}
			if inserted > 0 {
				created = append(created, entry)
			}
		}

		if err := tx.Commit(); err != nil {
			if isLockError(err) {
				return err // retry
			}
			return &criticalError{err: fmt.Errorf("commit: %w", err)}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return created, nil
}

// SetMessageID records the delivery message for a posted entry
func (r *EntryRepository) SetMessageID(ctx context.Context, id string, messageID int64) error {
	retrier := repeater.NewBackoff(5, 50*time.Millisecond, repeater.WithMaxDelay(2*time.Second))

	return retrier.Do(ctx, func() error {
		_, err := r.db.ExecContext(ctx, "UPDATE feed_entries SET message_id = ? WHERE id = ?", messageID, id)
		if err != nil {
			if isLockError(err) {
				return err // retry
			}
			return &criticalError{err: fmt.Errorf("set message id: %w", err)}
		}
		return nil
	})
}

// GetRecent retrieves the most recently stored entries for a feed, newest first
func (r *EntryRepository) GetRecent(ctx context.Context, feedID string, limit int) ([]domain.FeedEntry, error) {
	var rows []dbEntry
	err := r.db.SelectContext(ctx, &rows,
		"SELECT * FROM feed_entries WHERE feed_id = ? ORDER BY created_at DESC, id DESC LIMIT ?", feedID, limit)
	if err != nil {
		return nil, fmt.Errorf("get recent entries: %w", err)
	}

	entries := make([]domain.FeedEntry, len(rows))
	for i, row := range rows {
		entries[i] = toDomainEntry(&row)
	}
	return entries, nil
}

// CountByFeed returns the number of stored entries for a feed
func (r *EntryRepository) CountByFeed(ctx context.Context, feedID string) (int64, error) {
	var count int64
	if err := r.db.GetContext(ctx, &count, "SELECT COUNT(*) FROM feed_entries WHERE feed_id = ?", feedID); err != nil {
		return 0, fmt.Errorf("count entries: %w", err)
	}
	return count, nil
}

func toDBEntry(entry *domain.FeedEntry) dbEntry {
	row := dbEntry{
		ID:          entry.ID,
		FeedID:      entry.FeedID,
		EntryID:     entry.EntryID,
		Title:       entry.Title,
		Link:        entry.Link,
		Description: entry.Description,
		Thumbnail:   entry.Thumbnail,
		CreatedAt:   entry.CreatedAt,
	}
	if entry.Published != nil {
		row.PublishedAt = sql.NullTime{Time: *entry.Published, Valid: true}
	}
	if entry.MessageID != nil {
		row.MessageID = sql.NullInt64{Int64: *entry.MessageID, Valid: true}
	}
	return row
}

func toDomainEntry(row *dbEntry) domain.FeedEntry {
	entry := domain.FeedEntry{
		ID:          row.ID,
		FeedID:      row.FeedID,
		EntryID:     row.EntryID,
		Title:       row.Title,
		Link:        row.Link,
		Description: row.Description,
		Thumbnail:   row.Thumbnail,
		CreatedAt:   row.CreatedAt,
	}
	if row.PublishedAt.Valid {
		t := row.PublishedAt.Time
		entry.Published = &t
	}
	if row.MessageID.Valid {
		id := row.MessageID.Int64
		entry.MessageID = &id
	}
	return entry
}
