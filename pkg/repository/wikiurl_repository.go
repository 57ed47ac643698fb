package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/go-pkgz/repeater/v2"
	"github.com/jmoiron/sqlx"

	"github.com/fmhy/wikibot/pkg/domain"
)

// wikiURLColumns is the number of columns bound per row in batch inserts
const wikiURLColumns = 8

type dbWikiURL struct {
	ID        int64     `db:"id"`
	URL       string    `db:"url"`
	Status    string    `db:"status"`
	UserID    int64     `db:"user_id"`
	MessageID int64     `db:"message_id"`
	ChannelID int64     `db:"channel_id"`
	GuildID   int64     `db:"guild_id"`
	CreatedAt time.Time `db:"created_at"`
	UpdatedAt time.Time `db:"updated_at"`
}

// WikiURLRepository handles tracked URL database operations
type WikiURLRepository struct {
	db *sqlx.DB
}

// NewWikiURLRepository creates a new wiki URL repository
func NewWikiURLRepository(db *sqlx.DB) *WikiURLRepository {
	return &WikiURLRepository{db: db}
}

// GetByURLs retrieves the records matching any of the given canonical URLs
func (r *WikiURLRepository) GetByURLs(ctx context.Context, urls []string) ([]domain.WikiURL, error) {
	if len(urls) == 0 {
		return nil, nil
	}

	query, args, err := sqlx.In("SELECT * FROM wiki_urls WHERE url IN (?)", urls)
	if err != nil {
		return nil, fmt.Errorf("build query: %w", err)
	}

	var rows []dbWikiURL
	if err := r.db.SelectContext(ctx, &rows, r.db.Rebind(query), args...); err != nil {
		return nil, fmt.Errorf("get urls: %w", err)
	}

	records := make([]domain.WikiURL, len(rows))
	for i, row := range rows {
		records[i] = toDomainWikiURL(&row)
	}
	return records, nil
}

// CreateMany inserts records in chunks, silently skipping URLs that already
// exist. Each chunk runs in its own transaction, sized so the bind variable
// limit is never exceeded. Returns the number of rows actually inserted,
// which is how callers learn what was genuinely new.
func (r *WikiURLRepository) CreateMany(ctx context.Context, records []domain.WikiURL) (int64, error) {
	if len(records) == 0 {
		return 0, nil
	}

	query := `
		INSERT INTO wiki_urls (url, status, user_id, message_id, channel_id, guild_id, created_at, updated_at)
		VALUES (:url, :status, :user_id, :message_id, :channel_id, :guild_id, :created_at, :updated_at)
		ON CONFLICT(url) DO NOTHING
	`

	var total int64
	chunkSize := maxBindVars / wikiURLColumns

	for start := 0; start < len(records); start += chunkSize {
		end := min(start+chunkSize, len(records))

		chunk := make([]dbWikiURL, 0, end-start)
		for _, rec := range records[start:end] {
			chunk = append(chunk, toDBWikiURL(&rec))
		}

		retrier := repeater.NewBackoff(5, 50*time.Millisecond, repeater.WithMaxDelay(2*time.Second))
		err := retrier.Do(ctx, func() error {
			tx, err := r.db.BeginTxx(ctx, nil)
			if err != nil {
				if isLockError(err) {
					return err // retry
				}
				return &criticalError{err: fmt.Errorf("begin transaction: %w", err)}
			}
			defer func() { _ = tx.Rollback() }()

			result, err := tx.NamedExecContext(ctx, query, chunk)
			if err != nil {
				if isLockError(err) {
					return err // retry
				}
				return &criticalError{err: fmt.Errorf("insert urls: %w", err)}
			}

			inserted, err := result.RowsAffected()
			if err != nil {
				return &criticalError{err: fmt.Errorf("rows affected: %w", err)}
			}

			if err := tx.Commit(); err != nil {
				if isLockError(err) {
					return err // retry
				}
				return &criticalError{err: fmt.Errorf("commit: %w", err)}
			}

			total += inserted
			return nil
		})
		if err != nil {
			return total, err
		}
	}

	return total, nil
}

// UpdateStatus moves a record to a new status and refreshes its origin
func (r *WikiURLRepository) UpdateStatus(ctx context.Context, id int64, status domain.Status, origin domain.Origin) error {
	retrier := repeater.NewBackoff(5, 50*time.Millisecond, repeater.WithMaxDelay(2*time.Second))

	return retrier.Do(ctx, func() error {
		query := `
			UPDATE wiki_urls
			SET status = ?, user_id = ?, message_id = ?, channel_id = ?, guild_id = ?, updated_at = ?
			WHERE id = ?
		`
		_, err := r.db.ExecContext(ctx, query,
			string(status), origin.UserID, origin.MessageID, origin.ChannelID, origin.GuildID, time.Now(), id)
		if err != nil {
			if isLockError(err) {
				return err // retry
			}
			return &criticalError{err: fmt.Errorf("update status: %w", err)}
		}
		return nil
	})
}

// List retrieves all tracked records
func (r *WikiURLRepository) List(ctx context.Context) ([]domain.WikiURL, error) {
	var rows []dbWikiURL
	if err := r.db.SelectContext(ctx, &rows, "SELECT * FROM wiki_urls ORDER BY url"); err != nil {
		return nil, fmt.Errorf("list urls: %w", err)
	}

	records := make([]domain.WikiURL, len(rows))
	for i, row := range rows {
		records[i] = toDomainWikiURL(&row)
	}
	return records, nil
}

// ListByStatus retrieves all records holding the given status
func (r *WikiURLRepository) ListByStatus(ctx context.Context, status domain.Status) ([]domain.WikiURL, error) {
	var rows []dbWikiURL
	err := r.db.SelectContext(ctx, &rows, "SELECT * FROM wiki_urls WHERE status = ? ORDER BY url", string(status))
	if err != nil {
		return nil, fmt.Errorf("list urls by status: %w", err)
	}

	records := make([]domain.WikiURL, len(rows))
	for i, row := range rows {
		records[i] = toDomainWikiURL(&row)
	}
	return records, nil
}

// DeleteStale removes pending records created before the cutoff. Resolved
// records are never expired.
func (r *WikiURLRepository) DeleteStale(ctx context.Context, cutoff time.Time) (int64, error) {
	var deleted int64
	retrier := repeater.NewBackoff(5, 50*time.Millisecond, repeater.WithMaxDelay(2*time.Second))

	err := retrier.Do(ctx, func() error {
		result, err := r.db.ExecContext(ctx,
			"DELETE FROM wiki_urls WHERE status = ? AND created_at < ?", string(domain.StatusPending), cutoff)
		if err != nil {
			if isLockError(err) {
				return err // retry
			}
			return &criticalError{err: fmt.Errorf("delete stale: %w", err)}
		}
		deleted, err = result.RowsAffected()
		if err != nil {
			return &criticalError{err: fmt.Errorf("rows affected: %w", err)}
		}
		return nil
	})
	return deleted, err
}

func toDBWikiURL(rec *domain.WikiURL) dbWikiURL {
	return dbWikiURL{
		ID:        rec.ID,
		URL:       rec.URL,
		Status:    string(rec.Status),
		UserID:    rec.Origin.UserID,
		MessageID: rec.Origin.MessageID,
		ChannelID: rec.Origin.ChannelID,
		GuildID:   rec.Origin.GuildID,
		CreatedAt: rec.CreatedAt,
		UpdatedAt: rec.UpdatedAt,
	}
}

func toDomainWikiURL(row *dbWikiURL) domain.WikiURL {
	return domain.WikiURL{
		ID:     row.ID,
		URL:    row.URL,
		Status: domain.Status(row.Status),
		Origin: domain.Origin{
			UserID:    row.UserID,
			MessageID: row.MessageID,
			ChannelID: row.ChannelID,
			GuildID:   row.GuildID,
		},
		CreatedAt: row.CreatedAt,
		UpdatedAt: row.UpdatedAt,
	}
}
