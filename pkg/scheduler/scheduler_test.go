package scheduler

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fmhy/wikibot/pkg/domain"
	"github.com/fmhy/wikibot/pkg/feed"
	"github.com/fmhy/wikibot/pkg/scheduler/mocks"
)

func entryAt(entryID string, published time.Time) domain.FeedEntry {
	return domain.FeedEntry{EntryID: entryID, Title: entryID, Published: &published}
}

func passthroughEntryStore() *mocks.EntryStoreMock {
	return &mocks.EntryStoreMock{
		CreateManyFunc: func(_ context.Context, entries []domain.FeedEntry) ([]domain.FeedEntry, error) {
			return entries, nil
		},
		SetMessageIDFunc: func(_ context.Context, _ string, _ int64) error { return nil },
	}
}

func stampingFeedStore(due []domain.FeedSubscription) *mocks.FeedStoreMock {
	return &mocks.FeedStoreMock{
		GetDueFunc: func(_ context.Context, _ time.Time, _ time.Duration) ([]domain.FeedSubscription, error) {
			return due, nil
		},
		UpdateLastCheckedFunc: func(_ context.Context, _ string, _ time.Time) error { return nil },
	}
}

func TestScheduler_ConcurrencyBound(t *testing.T) {
	due := make([]domain.FeedSubscription, 5)
	for i := range due {
		due[i] = domain.FeedSubscription{ID: string(rune('a' + i)), URL: "https://example.com/feed", ChannelID: 100}
	}

	var inFlight, maxInFlight int64
	fetcher := &mocks.FetcherMock{
		FetchFunc: func(_ context.Context, _ string) (*feed.Result, error) {
			cur := atomic.AddInt64(&inFlight, 1)
			for {
				prev := atomic.LoadInt64(&maxInFlight)
				if cur <= prev || atomic.CompareAndSwapInt64(&maxInFlight, prev, cur) {
					break
				}
			}
			time.Sleep(30 * time.Millisecond)
			atomic.AddInt64(&inFlight, -1)
			return &feed.Result{}, nil
		},
	}

	s := NewScheduler(stampingFeedStore(due), passthroughEntryStore(), nil, fetcher, &mocks.PosterMock{},
		Config{MaxConcurrentChecks: 2})
	s.CheckDueFeeds(context.Background())

	assert.Len(t, fetcher.FetchCalls(), 5)
	assert.LessOrEqual(t, atomic.LoadInt64(&maxInFlight), int64(2))
}

func TestScheduler_CapKeepsOldestAndDeliversInOrder(t *testing.T) {
	sub := domain.FeedSubscription{ID: "f1", URL: "https://example.com/feed", ChannelID: 100}

	fetcher := &mocks.FetcherMock{
		FetchFunc: func(_ context.Context, _ string) (*feed.Result, error) {
			return &feed.Result{Entries: []domain.FeedEntry{
				entryAt("a", time.Date(2024, 1, 3, 0, 0, 0, 0, time.UTC)),
				entryAt("b", time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)),
				entryAt("c", time.Date(2024, 1, 2, 0, 0, 0, 0, time.UTC)),
			}}, nil
		},
	}
	poster := &mocks.PosterMock{
		PostEntryFunc: func(_ context.Context, _ int64, _ domain.FeedEntry) (int64, error) { return 1, nil },
	}

	s := NewScheduler(stampingFeedStore([]domain.FeedSubscription{sub}), passthroughEntryStore(), nil,
		fetcher, poster, Config{MaxEntriesPerCheck: 2, PostDelay: time.Millisecond})
	s.CheckDueFeeds(context.Background())

	// the newest entry is dropped, the remaining two go out oldest first
	calls := poster.PostEntryCalls()
	require.Len(t, calls, 2)
	assert.Equal(t, "b", calls[0].Entry.EntryID)
	assert.Equal(t, "c", calls[1].Entry.EntryID)
	assert.Equal(t, int64(100), calls[0].ChannelID)
}

func TestScheduler_OnlyFreshEntriesPosted(t *testing.T) {
	sub := domain.FeedSubscription{ID: "f1", URL: "https://example.com/feed", ChannelID: 100}

	fetcher := &mocks.FetcherMock{
		FetchFunc: func(_ context.Context, _ string) (*feed.Result, error) {
			return &feed.Result{Entries: []domain.FeedEntry{
				entryAt("seen", time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)),
				entryAt("new", time.Date(2024, 1, 2, 0, 0, 0, 0, time.UTC)),
			}}, nil
		},
	}
	entries := &mocks.EntryStoreMock{
		CreateManyFunc: func(_ context.Context, batch []domain.FeedEntry) ([]domain.FeedEntry, error) {
			// the store reports only the second entry as new
			return batch[1:], nil
		},
		SetMessageIDFunc: func(_ context.Context, _ string, _ int64) error { return nil },
	}
	poster := &mocks.PosterMock{
		PostEntryFunc: func(_ context.Context, _ int64, _ domain.FeedEntry) (int64, error) { return 42, nil },
	}

	s := NewScheduler(stampingFeedStore([]domain.FeedSubscription{sub}), entries, nil, fetcher, poster, Config{})
	s.CheckDueFeeds(context.Background())

	require.Len(t, poster.PostEntryCalls(), 1)
	assert.Equal(t, "new", poster.PostEntryCalls()[0].Entry.EntryID)

	// the delivery message id is recorded for the posted entry
	require.Len(t, entries.SetMessageIDCalls(), 1)
	assert.Equal(t, int64(42), entries.SetMessageIDCalls()[0].MessageID)
}

func TestScheduler_NothingNewNothingPosted(t *testing.T) {
	sub := domain.FeedSubscription{ID: "f1", URL: "https://example.com/feed", ChannelID: 100}

	fetcher := &mocks.FetcherMock{
		FetchFunc: func(_ context.Context, _ string) (*feed.Result, error) {
			return &feed.Result{Entries: []domain.FeedEntry{entryAt("seen", time.Now())}}, nil
		},
	}
	entries := &mocks.EntryStoreMock{
		CreateManyFunc: func(_ context.Context, _ []domain.FeedEntry) ([]domain.FeedEntry, error) {
			return nil, nil
		},
	}
	poster := &mocks.PosterMock{}

	s := NewScheduler(stampingFeedStore([]domain.FeedSubscription{sub}), entries, nil, fetcher, poster, Config{})
	s.CheckDueFeeds(context.Background())

	assert.Empty(t, poster.PostEntryCalls())
}

func TestScheduler_StampWrittenBeforeFetch(t *testing.T) {
	sub := domain.FeedSubscription{ID: "f1", URL: "https://example.com/feed", ChannelID: 100}

	var order []string
	var mu sync.Mutex
	feeds := &mocks.FeedStoreMock{
		GetDueFunc: func(_ context.Context, _ time.Time, _ time.Duration) ([]domain.FeedSubscription, error) {
			return []domain.FeedSubscription{sub}, nil
		},
		UpdateLastCheckedFunc: func(_ context.Context, _ string, _ time.Time) error {
			mu.Lock()
			order = append(order, "stamp")
			mu.Unlock()
			return nil
		},
	}
	fetcher := &mocks.FetcherMock{
		FetchFunc: func(_ context.Context, _ string) (*feed.Result, error) {
			mu.Lock()
			order = append(order, "fetch")
			mu.Unlock()
			return &feed.Result{}, nil
		},
	}

	s := NewScheduler(feeds, passthroughEntryStore(), nil, fetcher, &mocks.PosterMock{}, Config{})
	s.CheckDueFeeds(context.Background())

	assert.Equal(t, []string{"stamp", "fetch"}, order)
}

func TestScheduler_StampFailureSkipsFetch(t *testing.T) {
	sub := domain.FeedSubscription{ID: "f1", URL: "https://example.com/feed", ChannelID: 100}

	feeds := &mocks.FeedStoreMock{
		GetDueFunc: func(_ context.Context, _ time.Time, _ time.Duration) ([]domain.FeedSubscription, error) {
			return []domain.FeedSubscription{sub}, nil
		},
		UpdateLastCheckedFunc: func(_ context.Context, _ string, _ time.Time) error {
			return errors.New("db down")
		},
	}
	fetcher := &mocks.FetcherMock{}

	s := NewScheduler(feeds, passthroughEntryStore(), nil, fetcher, &mocks.PosterMock{}, Config{})
	s.CheckDueFeeds(context.Background())

	assert.Empty(t, fetcher.FetchCalls())
}

func TestScheduler_FetchFailureIsolated(t *testing.T) {
	due := []domain.FeedSubscription{
		{ID: "bad", URL: "https://bad.example/feed", ChannelID: 100},
		{ID: "good", URL: "https://good.example/feed", ChannelID: 100},
	}

	fetcher := &mocks.FetcherMock{
		FetchFunc: func(_ context.Context, feedURL string) (*feed.Result, error) {
			if feedURL == "https://bad.example/feed" {
				return nil, errors.New("unexpected status code: 500")
			}
			return &feed.Result{Entries: []domain.FeedEntry{entryAt("e1", time.Now())}}, nil
		},
	}
	poster := &mocks.PosterMock{
		PostEntryFunc: func(_ context.Context, _ int64, _ domain.FeedEntry) (int64, error) { return 1, nil },
	}

	s := NewScheduler(stampingFeedStore(due), passthroughEntryStore(), nil, fetcher, poster,
		Config{MaxConcurrentChecks: 1})
	s.CheckDueFeeds(context.Background())

	assert.Len(t, fetcher.FetchCalls(), 2)
	assert.Len(t, poster.PostEntryCalls(), 1)
}

func TestScheduler_PostFailureIsolated(t *testing.T) {
	sub := domain.FeedSubscription{ID: "f1", URL: "https://example.com/feed", ChannelID: 100}

	fetcher := &mocks.FetcherMock{
		FetchFunc: func(_ context.Context, _ string) (*feed.Result, error) {
			return &feed.Result{Entries: []domain.FeedEntry{
				entryAt("first", time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)),
				entryAt("second", time.Date(2024, 1, 2, 0, 0, 0, 0, time.UTC)),
			}}, nil
		},
	}
	entries := passthroughEntryStore()
	poster := &mocks.PosterMock{
		PostEntryFunc: func(_ context.Context, _ int64, entry domain.FeedEntry) (int64, error) {
			if entry.EntryID == "first" {
				return 0, errors.New("channel gone")
			}
			return 7, nil
		},
	}

	s := NewScheduler(stampingFeedStore([]domain.FeedSubscription{sub}), entries, nil, fetcher, poster, Config{})
	s.CheckDueFeeds(context.Background())

	// both attempted, only the successful one recorded
	assert.Len(t, poster.PostEntryCalls(), 2)
	require.Len(t, entries.SetMessageIDCalls(), 1)
	assert.Equal(t, int64(7), entries.SetMessageIDCalls()[0].MessageID)
}

func TestScheduler_InFlightGuard(t *testing.T) {
	sub := domain.FeedSubscription{ID: "slow", URL: "https://slow.example/feed", ChannelID: 100}

	started := make(chan struct{})
	done := make(chan struct{})
	fetcher := &mocks.FetcherMock{
		FetchFunc: func(_ context.Context, _ string) (*feed.Result, error) {
			close(started)
			<-done
			return &feed.Result{}, nil
		},
	}

	s := NewScheduler(stampingFeedStore([]domain.FeedSubscription{sub}), passthroughEntryStore(), nil,
		fetcher, &mocks.PosterMock{}, Config{})

	go s.CheckDueFeeds(context.Background())
	<-started

	// second round while the first check still runs: the feed is skipped
	s.CheckDueFeeds(context.Background())
	assert.Len(t, fetcher.FetchCalls(), 1)

	close(done)
}

func TestScheduler_DebugForcePost(t *testing.T) {
	sub := domain.FeedSubscription{ID: "f1", URL: "https://example.com/feed", ChannelID: 100}

	fetcher := &mocks.FetcherMock{
		FetchFunc: func(_ context.Context, _ string) (*feed.Result, error) {
			return &feed.Result{Entries: []domain.FeedEntry{
				entryAt("old", time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)),
				entryAt("mid", time.Date(2024, 1, 2, 0, 0, 0, 0, time.UTC)),
				entryAt("new", time.Date(2024, 1, 3, 0, 0, 0, 0, time.UTC)),
			}}, nil
		},
	}
	entries := &mocks.EntryStoreMock{
		SetMessageIDFunc: func(_ context.Context, _ string, _ int64) error { return nil },
	}
	poster := &mocks.PosterMock{
		PostEntryFunc: func(_ context.Context, _ int64, _ domain.FeedEntry) (int64, error) { return 1, nil },
	}

	s := NewScheduler(stampingFeedStore([]domain.FeedSubscription{sub}), entries, nil, fetcher, poster,
		Config{DebugForcePost: true, MaxEntriesPerCheck: 2})
	s.CheckDueFeeds(context.Background())

	// dedup bypassed entirely: nothing stored, the newest entries posted
	// oldest first
	assert.Empty(t, entries.CreateManyCalls())
	calls := poster.PostEntryCalls()
	require.Len(t, calls, 2)
	assert.Equal(t, "mid", calls[0].Entry.EntryID)
	assert.Equal(t, "new", calls[1].Entry.EntryID)
}

func TestScheduler_CleanupStale(t *testing.T) {
	urls := &mocks.URLStoreMock{
		DeleteStaleFunc: func(_ context.Context, _ time.Time) (int64, error) { return 3, nil },
	}

	s := NewScheduler(&mocks.FeedStoreMock{}, &mocks.EntryStoreMock{}, urls, &mocks.FetcherMock{},
		&mocks.PosterMock{}, Config{StaleAfter: 14 * 24 * time.Hour})
	s.cleanupStale(context.Background())

	require.Len(t, urls.DeleteStaleCalls(), 1)
	cutoff := urls.DeleteStaleCalls()[0].Cutoff
	assert.WithinDuration(t, time.Now().Add(-14*24*time.Hour), cutoff, time.Minute)
}

func TestScheduler_StartStop(t *testing.T) {
	feeds := &mocks.FeedStoreMock{
		GetDueFunc: func(_ context.Context, _ time.Time, _ time.Duration) ([]domain.FeedSubscription, error) {
			return nil, nil
		},
	}
	urls := &mocks.URLStoreMock{
		DeleteStaleFunc: func(_ context.Context, _ time.Time) (int64, error) { return 0, nil },
	}

	s := NewScheduler(feeds, &mocks.EntryStoreMock{}, urls, &mocks.FetcherMock{}, &mocks.PosterMock{},
		Config{TickInterval: 10 * time.Millisecond})
	s.Start(context.Background())

	assert.Eventually(t, func() bool { return len(feeds.GetDueCalls()) >= 2 }, time.Second, 5*time.Millisecond)
	s.Stop()

	// stale cleanup ran immediately on start
	assert.NotEmpty(t, urls.DeleteStaleCalls())
}
