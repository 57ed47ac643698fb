// Package wiki reads the published single-page wiki document and extracts
// its outbound links. The snapshot is the ground truth for "is this URL
// live right now" when channel signals alone are ambiguous.
package wiki

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/text"

	"github.com/fmhy/wikibot/pkg/urlx"
)

// Client fetches the published wiki document
type Client struct {
	endpoint string
	client   *http.Client
}

// NewClient creates a wiki client for the given single-page endpoint
func NewClient(endpoint string, timeout time.Duration) *Client {
	return &Client{
		endpoint: endpoint,
		client:   &http.Client{Timeout: timeout},
	}
}

// FetchRaw downloads the wiki document. Failures propagate so callers can
// decide whether to abort or proceed degraded.
func (c *Client) FetchRaw(ctx context.Context) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.endpoint, http.NoBody)
	if err != nil {
		return "", fmt.Errorf("create request: %w", err)
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("fetch wiki: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("unexpected status code: %d", resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("read wiki body: %w", err)
	}

	return string(body), nil
}

// LiveURLs returns the canonical form of every link target currently
// published in the wiki.
func (c *Client) LiveURLs(ctx context.Context) (map[string]struct{}, error) {
	content, err := c.FetchRaw(ctx)
	if err != nil {
		return nil, err
	}

	links := ExtractLinks([]byte(content))
	live := make(map[string]struct{}, len(links))
	for _, l := range links {
		live[urlx.Clean(l)] = struct{}{}
	}
	return live, nil
}

// ExtractLinks walks the markdown document and collects every link
// destination, including autolinks.
func ExtractLinks(source []byte) []string {
	doc := goldmark.New().Parser().Parse(text.NewReader(source))

	var links []string
	_ = ast.Walk(doc, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			return ast.WalkContinue, nil
		}
		switch t := n.(type) {
		case *ast.Link:
			links = append(links, string(t.Destination))
		case *ast.AutoLink:
			links = append(links, string(t.URL(source)))
		}
		return ast.WalkContinue, nil
	})

	return links
}

// Search scans the wiki for list entries matching query (case-insensitive,
// matched against the entry line or its heading path) and returns them
// formatted with their heading breadcrumb.
func (c *Client) Search(ctx context.Context, query string, limit int) ([]string, error) {
	content, err := c.FetchRaw(ctx)
	if err != nil {
		return nil, err
	}

	source := []byte(content)
	doc := goldmark.New().Parser().Parse(text.NewReader(source))
	needle := strings.ToLower(query)

	type crumb struct {
		level int
		title string
	}

	var results []string
	var headings []crumb
	headingPath := ""

	_ = ast.Walk(doc, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			return ast.WalkContinue, nil
		}

		switch t := n.(type) {
		case *ast.Heading:
			title := strings.TrimSpace(strings.NewReplacer("►", "", "▷", "").Replace(nodeText(t, source)))
			// pop by level so skipped levels never leave stale crumbs behind
			for len(headings) > 0 && headings[len(headings)-1].level >= t.Level {
				headings = headings[:len(headings)-1]
			}
			headings = append(headings, crumb{level: t.Level, title: title})
			parts := make([]string, len(headings))
			for i, h := range headings {
				parts[i] = "**" + h.title + "**"
			}
			headingPath = strings.Join(parts, " / ")
			return ast.WalkSkipChildren, nil

		case *ast.ListItem:
			line := itemLine(t, source)
			if line == "" {
				return ast.WalkContinue, nil
			}
			if strings.Contains(strings.ToLower(line), needle) || strings.Contains(strings.ToLower(headingPath), needle) {
				results = append(results, headingPath+" ► "+line)
				if limit > 0 && len(results) >= limit {
					return ast.WalkStop, nil
				}
			}
			return ast.WalkSkipChildren, nil
		}

		return ast.WalkContinue, nil
	})

	return results, nil
}

// nodeText collects the plain text content of a node's subtree
func nodeText(n ast.Node, source []byte) string {
	var sb strings.Builder
	_ = ast.Walk(n, func(c ast.Node, entering bool) (ast.WalkStatus, error) {
		if entering {
			if t, ok := c.(*ast.Text); ok {
				sb.Write(t.Segment.Value(source))
			}
		}
		return ast.WalkContinue, nil
	})
	return sb.String()
}

// itemLine returns the raw source of a list item's first line, the way it
// was written in the document.
func itemLine(item *ast.ListItem, source []byte) string {
	block := item.FirstChild()
	if block == nil {
		return ""
	}
	lines := block.Lines()
	if lines == nil || lines.Len() == 0 {
		return ""
	}
	seg := lines.At(0)
	return strings.TrimSpace(string(seg.Value(source)))
}
