// Package scheduler runs the periodic feed checking loop: pick due
// subscriptions, fetch them with bounded concurrency, deduplicate entries
// through the store, and deliver what is genuinely new in published order.
package scheduler

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/go-pkgz/lgr"
	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/fmhy/wikibot/pkg/domain"
	"github.com/fmhy/wikibot/pkg/feed"
)

//go:generate moq --out mocks/feed_store.go --pkg mocks --with-resets --skip-ensure . FeedStore
//go:generate moq --out mocks/entry_store.go --pkg mocks --with-resets --skip-ensure . EntryStore
//go:generate moq --out mocks/url_store.go --pkg mocks --with-resets --skip-ensure . URLStore
//go:generate moq --out mocks/fetcher.go --pkg mocks --with-resets --skip-ensure . Fetcher
//go:generate moq --out mocks/poster.go --pkg mocks --with-resets --skip-ensure . Poster

// FeedStore selects and stamps due subscriptions
type FeedStore interface {
	GetDue(ctx context.Context, now time.Time, defaultInterval time.Duration) ([]domain.FeedSubscription, error)
	UpdateLastChecked(ctx context.Context, id string, checkedAt time.Time) error
}

// EntryStore persists seen entries, insertion doubles as the dedup check
type EntryStore interface {
	CreateMany(ctx context.Context, entries []domain.FeedEntry) ([]domain.FeedEntry, error)
	SetMessageID(ctx context.Context, id string, messageID int64) error
}

// URLStore expires abandoned submissions
type URLStore interface {
	DeleteStale(ctx context.Context, cutoff time.Time) (int64, error)
}

// Fetcher downloads and parses a feed
type Fetcher interface {
	Fetch(ctx context.Context, feedURL string) (*feed.Result, error)
}

// Poster delivers one entry to a channel and returns the message id
type Poster interface {
	PostEntry(ctx context.Context, channelID int64, entry domain.FeedEntry) (int64, error)
}

// Config holds scheduler configuration
type Config struct {
	TickInterval         time.Duration
	MaxConcurrentChecks  int
	DefaultCheckInterval time.Duration
	MaxEntriesPerCheck   int
	PostDelay            time.Duration
	StaleAfter           time.Duration
	DebugForcePost       bool
}

// Scheduler manages periodic feed checks and stale submission cleanup
type Scheduler struct {
	feeds   FeedStore
	entries EntryStore
	urls    URLStore
	fetcher Fetcher
	poster  Poster
	cfg     Config

	wg     sync.WaitGroup
	cancel context.CancelFunc

	inFlightMu sync.Mutex
	inFlight   map[string]struct{} // feed ids currently being checked
}

// NewScheduler creates a scheduler instance
func NewScheduler(feeds FeedStore, entries EntryStore, urls URLStore, fetcher Fetcher, poster Poster, cfg Config) *Scheduler {
	if cfg.TickInterval == 0 {
		cfg.TickInterval = time.Minute
	}
	if cfg.MaxConcurrentChecks == 0 {
		cfg.MaxConcurrentChecks = 5
	}
	if cfg.DefaultCheckInterval == 0 {
		cfg.DefaultCheckInterval = 15 * time.Minute
	}
	if cfg.MaxEntriesPerCheck == 0 {
		cfg.MaxEntriesPerCheck = 5
	}
	if cfg.StaleAfter == 0 {
		cfg.StaleAfter = 14 * 24 * time.Hour
	}

	return &Scheduler{
		feeds:    feeds,
		entries:  entries,
		urls:     urls,
		fetcher:  fetcher,
		poster:   poster,
		cfg:      cfg,
		inFlight: make(map[string]struct{}),
	}
}

// Start begins the scheduler workers
func (s *Scheduler) Start(ctx context.Context) {
	ctx, s.cancel = context.WithCancel(ctx)

	s.wg.Add(1)
	go s.feedCheckWorker(ctx)

	if s.urls != nil {
		s.wg.Add(1)
		go s.staleCleanupWorker(ctx)
	}

	lgr.Printf("[INFO] scheduler started, tick %v, max concurrent checks %d", s.cfg.TickInterval, s.cfg.MaxConcurrentChecks)
}

// Stop gracefully stops the scheduler
func (s *Scheduler) Stop() {
	lgr.Printf("[INFO] stopping scheduler...")
	if s.cancel != nil {
		s.cancel()
	}
	s.wg.Wait()
	lgr.Printf("[INFO] scheduler stopped")
}

// feedCheckWorker ticks on the configured interval. A time.Ticker drops
// ticks while a slow round is still running, so rounds never queue up.
func (s *Scheduler) feedCheckWorker(ctx context.Context) {
	defer s.wg.Done()

	ticker := time.NewTicker(s.cfg.TickInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			s.CheckDueFeeds(ctx)
		}
	}
}

// CheckDueFeeds runs one round: every due subscription is checked with at
// most MaxConcurrentChecks fetches in flight. A feed whose previous check
// is still running is skipped, a short interval must not pile up checks of
// the same feed.
func (s *Scheduler) CheckDueFeeds(ctx context.Context) {
	due, err := s.feeds.GetDue(ctx, time.Now(), s.cfg.DefaultCheckInterval)
	if err != nil {
		lgr.Printf("[ERROR] failed to get due feeds: %v", err)
		return
	}
	if len(due) == 0 {
		return
	}

	lgr.Printf("[DEBUG] checking %d due feeds", len(due))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(s.cfg.MaxConcurrentChecks)

	for _, f := range due {
		if !s.acquire(f.ID) {
			lgr.Printf("[DEBUG] feed %s still in flight, skipping", f.ID)
			continue
		}
		g.Go(func() error {
			defer s.release(f.ID)
			s.checkFeed(gctx, f)
			return nil
		})
	}

	_ = g.Wait()
}

// checkFeed fetches one subscription and posts its new entries. The checked
// stamp is written before the fetch starts, so a hung feed is naturally
// rate-limited to once per interval no matter how the fetch ends.
func (s *Scheduler) checkFeed(ctx context.Context, sub domain.FeedSubscription) {
	if err := s.feeds.UpdateLastChecked(ctx, sub.ID, time.Now()); err != nil {
		lgr.Printf("[ERROR] failed to stamp feed %s: %v", sub.ID, err)
		return
	}

	result, err := s.fetcher.Fetch(ctx, sub.URL)
	if err != nil {
		lgr.Printf("[WARN] failed to fetch feed %q (%s): %v", sub.Name, sub.URL, err)
		return
	}

	now := time.Now()
	entries := make([]domain.FeedEntry, 0, len(result.Entries))
	for _, e := range result.Entries {
		e.ID = uuid.NewString()
		e.FeedID = sub.ID
		e.CreatedAt = now
		entries = append(entries, e)
	}

	var fresh []domain.FeedEntry
	if s.cfg.DebugForcePost {
		// debug only: skip dedup and repost the most recent entries, the
		// oldest-first cap in deliver is for genuine backlogs
		sort.SliceStable(entries, func(i, j int) bool {
			return publishedAt(entries[j]).Before(publishedAt(entries[i]))
		})
		if len(entries) > s.cfg.MaxEntriesPerCheck {
			entries = entries[:s.cfg.MaxEntriesPerCheck]
		}
		fresh = entries
	} else {
		fresh, err = s.entries.CreateMany(ctx, entries)
		if err != nil {
			lgr.Printf("[ERROR] failed to store entries for feed %s: %v", sub.ID, err)
			return
		}
	}
	if len(fresh) == 0 {
		return
	}

	s.deliver(ctx, sub, fresh)
}

// deliver posts entries to the subscription's channel oldest first, keeping
// the oldest MaxEntriesPerCheck when a backlog exceeds the cap. Posts are
// paced by PostDelay and a single failed post never blocks the rest.
func (s *Scheduler) deliver(ctx context.Context, sub domain.FeedSubscription, entries []domain.FeedEntry) {
	sort.SliceStable(entries, func(i, j int) bool {
		return publishedAt(entries[i]).Before(publishedAt(entries[j]))
	})
	if len(entries) > s.cfg.MaxEntriesPerCheck {
		entries = entries[:s.cfg.MaxEntriesPerCheck]
	}

	posted := 0
	for i, entry := range entries {
		if i > 0 && s.cfg.PostDelay > 0 {
			select {
			case <-ctx.Done():
				return
			case <-time.After(s.cfg.PostDelay):
			}
		}

		msgID, err := s.poster.PostEntry(ctx, sub.ChannelID, entry)
		if err != nil {
			lgr.Printf("[WARN] failed to post entry %q from feed %q: %v", entry.Title, sub.Name, err)
			continue
		}
		if err := s.entries.SetMessageID(ctx, entry.ID, msgID); err != nil {
			lgr.Printf("[WARN] failed to record message id for entry %s: %v", entry.ID, err)
		}
		posted++
	}

	if posted > 0 {
		lgr.Printf("[INFO] posted %d entries from feed %q to channel %d", posted, sub.Name, sub.ChannelID)
	}
}

// staleCleanupWorker expires abandoned pending submissions once a day
func (s *Scheduler) staleCleanupWorker(ctx context.Context) {
	defer s.wg.Done()

	ticker := time.NewTicker(24 * time.Hour)
	defer ticker.Stop()

	s.cleanupStale(ctx)

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			s.cleanupStale(ctx)
		}
	}
}

// cleanupStale removes pending submissions older than StaleAfter
func (s *Scheduler) cleanupStale(ctx context.Context) {
	deleted, err := s.urls.DeleteStale(ctx, time.Now().Add(-s.cfg.StaleAfter))
	if err != nil {
		lgr.Printf("[ERROR] failed to delete stale submissions: %v", err)
		return
	}
	if deleted > 0 {
		lgr.Printf("[INFO] expired %d stale pending submissions", deleted)
	}
}

func (s *Scheduler) acquire(feedID string) bool {
	s.inFlightMu.Lock()
	defer s.inFlightMu.Unlock()
	if _, busy := s.inFlight[feedID]; busy {
		return false
	}
	s.inFlight[feedID] = struct{}{}
	return true
}

func (s *Scheduler) release(feedID string) {
	s.inFlightMu.Lock()
	defer s.inFlightMu.Unlock()
	delete(s.inFlight, feedID)
}

// publishedAt orders entries that lack a published timestamp before those
// that have one.
func publishedAt(entry domain.FeedEntry) time.Time {
	if entry.Published == nil {
		return time.Time{}
	}
	return *entry.Published
}
