package wiki

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const samplePage = `# Main Index

## ► Streaming

* [FlixSite](https://www.flixsite.example/) - movies and shows
* [StreamHub](https://streamhub.example/watch) - live sports
* Plain entry without links

## ► Gaming

### Emulators

* [RetroBox](http://retrobox.example) - all consoles
* Visit <https://emu.example/> for more

Text paragraph with [inline](https://inline.example/page) link.
`

func testServer(t *testing.T, status int, body string) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(status)
		_, _ = w.Write([]byte(body))
	}))
	t.Cleanup(srv.Close)
	return srv
}

func TestExtractLinks(t *testing.T) {
	links := ExtractLinks([]byte(samplePage))
	assert.Contains(t, links, "https://www.flixsite.example/")
	assert.Contains(t, links, "https://streamhub.example/watch")
	assert.Contains(t, links, "http://retrobox.example")
	assert.Contains(t, links, "https://emu.example/")
	assert.Contains(t, links, "https://inline.example/page")
}

func TestClient_LiveURLs(t *testing.T) {
	srv := testServer(t, http.StatusOK, samplePage)
	c := NewClient(srv.URL, 5*time.Second)

	live, err := c.LiveURLs(context.Background())
	require.NoError(t, err)

	// canonicalized: scheme, www and trailing slash stripped
	assert.Contains(t, live, "flixsite.example")
	assert.Contains(t, live, "streamhub.example/watch")
	assert.Contains(t, live, "retrobox.example")
	assert.NotContains(t, live, "https://www.flixsite.example/")
}

func TestClient_FetchRaw_Errors(t *testing.T) {
	t.Run("non-200 status", func(t *testing.T) {
		srv := testServer(t, http.StatusServiceUnavailable, "down")
		c := NewClient(srv.URL, 5*time.Second)
		_, err := c.FetchRaw(context.Background())
		require.Error(t, err)
		assert.Contains(t, err.Error(), "unexpected status code: 503")
	})

	t.Run("unreachable", func(t *testing.T) {
		c := NewClient("http://127.0.0.1:1", time.Second)
		_, err := c.FetchRaw(context.Background())
		require.Error(t, err)
	})
}

func TestClient_Search(t *testing.T) {
	srv := testServer(t, http.StatusOK, samplePage)
	c := NewClient(srv.URL, 5*time.Second)

	t.Run("match on entry text", func(t *testing.T) {
		results, err := c.Search(context.Background(), "flixsite", 10)
		require.NoError(t, err)
		require.Len(t, results, 1)
		assert.Contains(t, results[0], "**Streaming**")
		assert.Contains(t, results[0], "FlixSite")
		assert.Contains(t, results[0], " ► ")
	})

	t.Run("match on heading path", func(t *testing.T) {
		results, err := c.Search(context.Background(), "emulators", 10)
		require.NoError(t, err)
		require.Len(t, results, 2)
		assert.Contains(t, results[0], "**Gaming** / **Emulators**")
	})

	t.Run("case insensitive", func(t *testing.T) {
		results, err := c.Search(context.Background(), "RETROBOX", 10)
		require.NoError(t, err)
		require.Len(t, results, 1)
	})

	t.Run("limit respected", func(t *testing.T) {
		results, err := c.Search(context.Background(), "e", 2)
		require.NoError(t, err)
		assert.Len(t, results, 2)
	})

	t.Run("no match", func(t *testing.T) {
		results, err := c.Search(context.Background(), "definitely-absent", 10)
		require.NoError(t, err)
		assert.Empty(t, results)
	})
}

func TestClient_Search_SkippedHeadingLevels(t *testing.T) {
	// a document jumping H1 -> H3 -> H2 must not leak the H3 title into
	// the breadcrumb of the later H2 section
	const page = `# Top

### Deep

* deepitem entry

## Side

* sideitem entry
`
	srv := testServer(t, http.StatusOK, page)
	c := NewClient(srv.URL, 5*time.Second)

	results, err := c.Search(context.Background(), "sideitem", 10)
	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.Contains(t, results[0], "**Top** / **Side**")
	assert.NotContains(t, results[0], "Deep")

	results, err = c.Search(context.Background(), "deepitem", 10)
	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.Contains(t, results[0], "**Top** / **Deep**")
}
