package tracker

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fmhy/wikibot/pkg/domain"
	"github.com/fmhy/wikibot/pkg/tracker/mocks"
	"github.com/fmhy/wikibot/pkg/urlx"
)

func TestMigrator_Run(t *testing.T) {
	const wikiPage = `# Index
* [Live](https://live.example/) - published
* [Other](https://other.example/stuff) - also published
`

	history := map[int64][]domain.Message{
		200: { // added channel, the first claim spells the url differently than the wiki
			{Text: "added https://www.live.example/ today", AuthorID: 1, MessageID: 10, ChannelID: 200},
			{Text: "added https://stale.example/ long ago", AuthorID: 1, MessageID: 11, ChannelID: 200},
		},
		300: { // removed channel, the second claim is a variant spelling of a published url
			{Text: "pulled https://dead.example/", AuthorID: 2, MessageID: 20, ChannelID: 300},
			{Text: "pulled https://www.other.example/stuff/", AuthorID: 2, MessageID: 21, ChannelID: 300},
		},
		100: { // pending channel, repeats a url already collected
			{Text: "submitting https://live.example/", AuthorID: 3, MessageID: 30, ChannelID: 100},
			{Text: "submitting https://fresh.example/", AuthorID: 3, MessageID: 31, ChannelID: 100},
		},
	}

	historySource := &mocks.HistorySourceMock{
		ChannelMessagesFunc: func(_ context.Context, channelID int64) ([]domain.Message, error) {
			return history[channelID], nil
		},
	}

	var inserted []domain.WikiURL
	store := &mocks.StoreMock{
		CreateManyFunc: func(_ context.Context, urls []domain.WikiURL) (int64, error) {
			inserted = urls
			return int64(len(urls)), nil
		},
	}

	wiki := &fakeRawFetcher{content: wikiPage}

	m := NewMigrator(urlx.NewExtractor(), testClassifier(), store, wiki, historySource)
	stats, err := m.Run(context.Background(), []int64{200, 300, 100, 999})
	require.NoError(t, err)

	assert.Equal(t, 3, stats.ChannelsProcessed) // 999 has no mapping
	assert.Equal(t, 6, stats.MessagesScanned)
	assert.Equal(t, 3, stats.URLsCollected)
	assert.Equal(t, int64(3), stats.Inserted)

	byURL := make(map[string]domain.WikiURL, len(inserted))
	for _, rec := range inserted {
		byURL[rec.URL] = rec
	}

	// added claim confirmed by the wiki despite the www spelling,
	// first-write-wins over the later pending sighting
	require.Contains(t, byURL, "live.example")
	assert.Equal(t, domain.StatusAdded, byURL["live.example"].Status)
	assert.Equal(t, int64(10), byURL["live.example"].Origin.MessageID)

	// added claim no longer published is dropped
	assert.NotContains(t, byURL, "stale.example")

	// removed claim confirmed absent from the wiki
	require.Contains(t, byURL, "dead.example")
	assert.Equal(t, domain.StatusRemoved, byURL["dead.example"].Status)

	// removed claim contradicted by the wiki is dropped even though its
	// spelling differs from the published one
	assert.NotContains(t, byURL, "other.example/stuff")

	// pending passes without cross-check
	require.Contains(t, byURL, "fresh.example")
	assert.Equal(t, domain.StatusPending, byURL["fresh.example"].Status)
}

func TestMigrator_Run_EmptyHistory(t *testing.T) {
	historySource := &mocks.HistorySourceMock{
		ChannelMessagesFunc: func(_ context.Context, _ int64) ([]domain.Message, error) { return nil, nil },
	}
	store := &mocks.StoreMock{}

	m := NewMigrator(urlx.NewExtractor(), testClassifier(), store, &fakeRawFetcher{}, historySource)
	stats, err := m.Run(context.Background(), []int64{100})
	require.NoError(t, err)

	assert.Equal(t, 1, stats.ChannelsProcessed)
	assert.Zero(t, stats.URLsCollected)
	assert.Empty(t, store.CreateManyCalls())
}

type fakeRawFetcher struct {
	content string
}

func (f *fakeRawFetcher) FetchRaw(_ context.Context) (string, error) {
	return f.content, nil
}
