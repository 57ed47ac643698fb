package urlx

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClean(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"https with www and slash", "https://www.example.com/", "example.com"},
		{"http plain", "http://example.com", "example.com"},
		{"no scheme", "example.com/path", "example.com/path"},
		{"trailing slash on path", "https://example.com/path/", "example.com/path"},
		{"numbered www prefix", "https://ww2.example.com/x", "example.com/x"},
		{"uppercase path kept", "https://example.com/Path", "example.com/Path"},
		{"host lowercased", "https://www.EXAMPLE.com/path/", "example.com/path"},
		{"surrounding spaces", "  https://example.com ", "example.com"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Clean(tt.in))
		})
	}
}

func TestClean_Equivalence(t *testing.T) {
	// canonicalization must collapse scheme/www/trailing-slash variants
	variants := []string{
		"https://www.example.com/path/",
		"http://www.example.com/path",
		"https://example.com/path/",
		"example.com/path",
	}
	for _, v := range variants {
		assert.Equal(t, "example.com/path", Clean(v), "variant %q", v)
	}
}

func TestExtractor_Extract(t *testing.T) {
	e := NewExtractor()

	t.Run("nothing found", func(t *testing.T) {
		assert.Nil(t, e.Extract("no links here, move along"))
		assert.Nil(t, e.Extract(""))
	})

	t.Run("single url", func(t *testing.T) {
		urls := e.Extract("check https://example.com/stuff out")
		require.Len(t, urls, 1)
		assert.Equal(t, "example.com/stuff", urls[0])
	})

	t.Run("requires scheme", func(t *testing.T) {
		assert.Nil(t, e.Extract("bare example.com is not matched"))
	})

	t.Run("multiple urls keep order", func(t *testing.T) {
		urls := e.Extract("https://b.example.org then https://a.example.org")
		require.Len(t, urls, 2)
		assert.Equal(t, []string{"b.example.org", "a.example.org"}, urls)
	})

	t.Run("duplicates collapse to first occurrence", func(t *testing.T) {
		urls := e.Extract("https://www.example.com/ and later http://example.com")
		require.Len(t, urls, 1)
		assert.Equal(t, "example.com", urls[0])
	})

	t.Run("multi-label host required", func(t *testing.T) {
		assert.Nil(t, e.Extract("https://localhost/page"))
	})
}

func TestExtractor_Excluded(t *testing.T) {
	e := NewExtractor("discord.com", "fmhy.net")

	t.Run("excluded hosts dropped", func(t *testing.T) {
		assert.Nil(t, e.Extract("see https://discord.com/channels/1/2/3"))
		assert.Nil(t, e.Extract("see https://fmhy.net/games"))
	})

	t.Run("subdomains of excluded hosts dropped", func(t *testing.T) {
		assert.Nil(t, e.Extract("https://api.fmhy.net/single-page"))
	})

	t.Run("mixed input keeps only external urls", func(t *testing.T) {
		urls := e.Extract("https://example.com plus https://discord.com/channels/1/2/3")
		require.Len(t, urls, 1)
		assert.Equal(t, "example.com", urls[0])
	})

	t.Run("prefix without dot boundary is not excluded", func(t *testing.T) {
		urls := e.Extract("https://notdiscord.com/page")
		require.Len(t, urls, 1)
	})
}

func TestExtractor_RoundTrip(t *testing.T) {
	// re-extracting a rendered list of canonical urls is idempotent
	e := NewExtractor()
	canonical := []string{"example.com/a", "site.org/b/c", "another.net"}

	var sb strings.Builder
	for _, u := range canonical {
		sb.WriteString("https://")
		sb.WriteString(u)
		sb.WriteString("\n")
	}

	urls := e.Extract(sb.String())
	assert.Equal(t, canonical, urls)
}
