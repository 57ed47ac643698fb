package tracker

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fmhy/wikibot/pkg/config"
	"github.com/fmhy/wikibot/pkg/domain"
	"github.com/fmhy/wikibot/pkg/tracker/mocks"
	"github.com/fmhy/wikibot/pkg/urlx"
)

func testClassifier() *Classifier {
	return NewClassifier(config.ChannelsConfig{
		Pending:           []int64{100},
		Added:             []int64{200},
		Removed:           []int64{300},
		SubmissionParents: []int64{400},
	})
}

func TestClassifier(t *testing.T) {
	c := testClassifier()

	st, ok := c.Classify(100)
	require.True(t, ok)
	assert.Equal(t, domain.StatusPending, st)

	st, ok = c.Classify(200)
	require.True(t, ok)
	assert.Equal(t, domain.StatusAdded, st)

	st, ok = c.Classify(300)
	require.True(t, ok)
	assert.Equal(t, domain.StatusRemoved, st)

	_, ok = c.Classify(999)
	assert.False(t, ok)

	st, ok = c.ClassifyThread(400)
	require.True(t, ok)
	assert.Equal(t, domain.StatusPending, st)

	_, ok = c.ClassifyThread(100)
	assert.False(t, ok)

	assert.True(t, c.IsSubmissionParent(400))
	assert.False(t, c.IsSubmissionParent(200))
}

func TestResolveEffectiveText(t *testing.T) {
	ctx := context.Background()

	t.Run("own text wins", func(t *testing.T) {
		msg := domain.Message{Text: "own", ReferencedText: "ref"}
		assert.Equal(t, "own", ResolveEffectiveText(ctx, msg, nil))
	})

	t.Run("referenced text fallback", func(t *testing.T) {
		msg := domain.Message{ReferencedText: "ref"}
		assert.Equal(t, "ref", ResolveEffectiveText(ctx, msg, nil))
	})

	t.Run("fetch fallback", func(t *testing.T) {
		fetch := func(_ context.Context) (string, error) { return "fetched", nil }
		assert.Equal(t, "fetched", ResolveEffectiveText(ctx, domain.Message{}, fetch))
	})

	t.Run("fetch failure yields empty", func(t *testing.T) {
		fetch := func(_ context.Context) (string, error) { return "", errors.New("gone") }
		assert.Empty(t, ResolveEffectiveText(ctx, domain.Message{}, fetch))
	})

	t.Run("nothing to resolve", func(t *testing.T) {
		assert.Empty(t, ResolveEffectiveText(ctx, domain.Message{}, nil))
	})
}

func TestTracker_ProcessMessage(t *testing.T) {
	newTracker := func(store *mocks.StoreMock) *Tracker {
		return New(urlx.NewExtractor("discord.com"), testClassifier(), store, &mocks.SnapshotMock{})
	}

	t.Run("submission inserts pending", func(t *testing.T) {
		store := &mocks.StoreMock{
			GetByURLsFunc: func(_ context.Context, _ []string) ([]domain.WikiURL, error) { return nil, nil },
			CreateManyFunc: func(_ context.Context, urls []domain.WikiURL) (int64, error) {
				return int64(len(urls)), nil
			},
		}
		tr := newTracker(store)

		msg := domain.Message{Text: "check https://example.com/page out", AuthorID: 1, MessageID: 2, ChannelID: 100}
		report, err := tr.ProcessMessage(context.Background(), msg, nil)
		require.NoError(t, err)
		assert.Nil(t, report)

		require.Len(t, store.CreateManyCalls(), 1)
		inserted := store.CreateManyCalls()[0].Urls
		require.Len(t, inserted, 1)
		assert.Equal(t, "example.com/page", inserted[0].URL)
		assert.Equal(t, domain.StatusPending, inserted[0].Status)
		assert.Equal(t, int64(1), inserted[0].Origin.UserID)
	})

	t.Run("resubmission reports conflict without writes", func(t *testing.T) {
		store := &mocks.StoreMock{
			GetByURLsFunc: func(_ context.Context, _ []string) ([]domain.WikiURL, error) {
				return []domain.WikiURL{{ID: 5, URL: "example.com/page", Status: domain.StatusAdded}}, nil
			},
		}
		tr := newTracker(store)

		msg := domain.Message{Text: "https://example.com/page", ChannelID: 100}
		report, err := tr.ProcessMessage(context.Background(), msg, nil)
		require.NoError(t, err)
		require.NotNil(t, report)
		assert.Equal(t, []string{"example.com/page"}, report.URLs(domain.StatusAdded))
		assert.Empty(t, store.CreateManyCalls())
		assert.Empty(t, store.UpdateStatusCalls())
	})

	t.Run("added channel promotes pending record", func(t *testing.T) {
		store := &mocks.StoreMock{
			GetByURLsFunc: func(_ context.Context, _ []string) ([]domain.WikiURL, error) {
				return []domain.WikiURL{{ID: 5, URL: "example.com/page", Status: domain.StatusPending}}, nil
			},
			UpdateStatusFunc: func(_ context.Context, _ int64, _ domain.Status, _ domain.Origin) error { return nil },
		}
		tr := newTracker(store)

		msg := domain.Message{Text: "https://example.com/page", AuthorID: 9, ChannelID: 200}
		report, err := tr.ProcessMessage(context.Background(), msg, nil)
		require.NoError(t, err)
		assert.Nil(t, report)

		require.Len(t, store.UpdateStatusCalls(), 1)
		call := store.UpdateStatusCalls()[0]
		assert.Equal(t, int64(5), call.ID)
		assert.Equal(t, domain.StatusAdded, call.Status)
		assert.Equal(t, int64(9), call.Origin.UserID)
	})

	t.Run("thread under submission forum inserts pending", func(t *testing.T) {
		store := &mocks.StoreMock{
			GetByURLsFunc: func(_ context.Context, _ []string) ([]domain.WikiURL, error) { return nil, nil },
			CreateManyFunc: func(_ context.Context, urls []domain.WikiURL) (int64, error) {
				return int64(len(urls)), nil
			},
		}
		tr := newTracker(store)

		// thread channel id itself is unmapped, its parent 400 decides
		msg := domain.Message{Text: "https://example.com/thread-find", ChannelID: 12345, ParentChannelID: 400}
		report, err := tr.ProcessMessage(context.Background(), msg, nil)
		require.NoError(t, err)
		assert.Nil(t, report)

		require.Len(t, store.CreateManyCalls(), 1)
		inserted := store.CreateManyCalls()[0].Urls
		require.Len(t, inserted, 1)
		assert.Equal(t, domain.StatusPending, inserted[0].Status)
	})

	t.Run("thread under plain channel is ambient", func(t *testing.T) {
		store := &mocks.StoreMock{
			GetByURLsFunc: func(_ context.Context, _ []string) ([]domain.WikiURL, error) { return nil, nil },
		}
		tr := newTracker(store)

		msg := domain.Message{Text: "https://example.com/thread-find", ChannelID: 12345, ParentChannelID: 200}
		report, err := tr.ProcessMessage(context.Background(), msg, nil)
		require.NoError(t, err)
		assert.Nil(t, report)
		assert.Empty(t, store.CreateManyCalls())
	})

	t.Run("no urls is a no-op", func(t *testing.T) {
		store := &mocks.StoreMock{}
		tr := newTracker(store)

		report, err := tr.ProcessMessage(context.Background(), domain.Message{Text: "just words", ChannelID: 100}, nil)
		require.NoError(t, err)
		assert.Nil(t, report)
		assert.Empty(t, store.GetByURLsCalls())
	})

	t.Run("excluded domains are invisible", func(t *testing.T) {
		store := &mocks.StoreMock{}
		tr := newTracker(store)

		msg := domain.Message{Text: "https://discord.com/channels/1/2", ChannelID: 100}
		report, err := tr.ProcessMessage(context.Background(), msg, nil)
		require.NoError(t, err)
		assert.Nil(t, report)
		assert.Empty(t, store.GetByURLsCalls())
	})

	t.Run("store failure propagates", func(t *testing.T) {
		store := &mocks.StoreMock{
			GetByURLsFunc: func(_ context.Context, _ []string) ([]domain.WikiURL, error) {
				return nil, errors.New("db down")
			},
		}
		tr := newTracker(store)

		_, err := tr.ProcessMessage(context.Background(), domain.Message{Text: "https://example.com", ChannelID: 100}, nil)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "load existing records")
	})
}

func TestTracker_AuditRecords(t *testing.T) {
	store := &mocks.StoreMock{
		ListFunc: func(_ context.Context) ([]domain.WikiURL, error) {
			return []domain.WikiURL{
				{URL: "ghost.example", Status: domain.StatusAdded},
				{URL: "pending.example", Status: domain.StatusPending},
			}, nil
		},
	}
	snapshot := &mocks.SnapshotMock{
		LiveURLsFunc: func(_ context.Context) (map[string]struct{}, error) {
			return map[string]struct{}{"pending.example": {}}, nil
		},
	}
	tr := New(urlx.NewExtractor(), testClassifier(), store, snapshot)

	report, err := tr.AuditRecords(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []string{"ghost.example"}, report.AddedNotLive)
	assert.Equal(t, []string{"pending.example"}, report.ShouldBeAdded)
}
