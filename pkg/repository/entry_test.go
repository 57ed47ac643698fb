package repository

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fmhy/wikibot/pkg/domain"
)

func makeEntry(feedID, entryID, title string) domain.FeedEntry {
	published := time.Now().Add(-time.Hour)
	return domain.FeedEntry{
		ID:          uuid.NewString(),
		FeedID:      feedID,
		EntryID:     entryID,
		Title:       title,
		Link:        "https://example.com/" + entryID,
		Description: "description of " + title,
		Published:   &published,
		CreatedAt:   time.Now(),
	}
}

func TestEntryRepository_CreateMany(t *testing.T) {
	repos := setupRepos(t)
	ctx := context.Background()

	feed := makeFeed("https://example.com/feed.xml", 100)
	require.NoError(t, repos.Feed.Create(ctx, feed))

	first := []domain.FeedEntry{
		makeEntry(feed.ID, "e1", "one"),
		makeEntry(feed.ID, "e2", "two"),
	}
	created, err := repos.Entry.CreateMany(ctx, first)
	require.NoError(t, err)
	require.Len(t, created, 2)
	assert.Equal(t, "e1", created[0].EntryID)

	// overlapping second fetch: only the unseen entry comes back
	second := []domain.FeedEntry{
		makeEntry(feed.ID, "e2", "two again"),
		makeEntry(feed.ID, "e3", "three"),
	}
	created, err = repos.Entry.CreateMany(ctx, second)
	require.NoError(t, err)
	require.Len(t, created, 1)
	assert.Equal(t, "e3", created[0].EntryID)

	// identical re-ingestion yields nothing new
	created, err = repos.Entry.CreateMany(ctx, second)
	require.NoError(t, err)
	assert.Empty(t, created)

	count, err := repos.Entry.CountByFeed(ctx, feed.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(3), count)
}

func TestEntryRepository_SameEntryDifferentFeeds(t *testing.T) {
	repos := setupRepos(t)
	ctx := context.Background()

	feedA := makeFeed("https://a.example/feed", 100)
	feedB := makeFeed("https://b.example/feed", 200)
	require.NoError(t, repos.Feed.Create(ctx, feedA))
	require.NoError(t, repos.Feed.Create(ctx, feedB))

	created, err := repos.Entry.CreateMany(ctx, []domain.FeedEntry{makeEntry(feedA.ID, "shared", "a")})
	require.NoError(t, err)
	assert.Len(t, created, 1)

	// dedup key is (feed_id, entry_id), not entry_id alone
	created, err = repos.Entry.CreateMany(ctx, []domain.FeedEntry{makeEntry(feedB.ID, "shared", "b")})
	require.NoError(t, err)
	assert.Len(t, created, 1)
}

func TestEntryRepository_SetMessageID(t *testing.T) {
	repos := setupRepos(t)
	ctx := context.Background()

	feed := makeFeed("https://example.com/feed.xml", 100)
	require.NoError(t, repos.Feed.Create(ctx, feed))

	entry := makeEntry(feed.ID, "e1", "one")
	_, err := repos.Entry.CreateMany(ctx, []domain.FeedEntry{entry})
	require.NoError(t, err)

	require.NoError(t, repos.Entry.SetMessageID(ctx, entry.ID, 987654))

	recent, err := repos.Entry.GetRecent(ctx, feed.ID, 10)
	require.NoError(t, err)
	require.Len(t, recent, 1)
	require.NotNil(t, recent[0].MessageID)
	assert.Equal(t, int64(987654), *recent[0].MessageID)
	require.NotNil(t, recent[0].Published)
}

func TestEntryRepository_GetRecent(t *testing.T) {
	repos := setupRepos(t)
	ctx := context.Background()

	feed := makeFeed("https://example.com/feed.xml", 100)
	require.NoError(t, repos.Feed.Create(ctx, feed))

	for i, entryID := range []string{"e1", "e2", "e3"} {
		entry := makeEntry(feed.ID, entryID, entryID)
		entry.CreatedAt = time.Now().Add(time.Duration(i) * time.Second)
		_, err := repos.Entry.CreateMany(ctx, []domain.FeedEntry{entry})
		require.NoError(t, err)
	}

	recent, err := repos.Entry.GetRecent(ctx, feed.ID, 2)
	require.NoError(t, err)
	require.Len(t, recent, 2)
	assert.Equal(t, "e3", recent[0].EntryID)
	assert.Equal(t, "e2", recent[1].EntryID)
}
