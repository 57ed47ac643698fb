// Package urlx extracts and canonicalizes URLs found in free text.
// Canonical form drops the scheme, a leading www-style host prefix and a
// trailing slash, so "https://www.example.com/" and "example.com" collapse
// to the same dedup key.
package urlx

import (
	"regexp"
	"strings"
)

// permissive matcher: requires a scheme and a multi-label host, allows the
// usual path/query characters but not a trailing punctuation mark
var urlRe = regexp.MustCompile(`(https?)://(?:ww(?:w|\d+)\.)?((?:[\w_-]+(?:\.[\w_-]+)+)[\w.,@?^=%&:/~+#-]*[\w@?^=%&~+-])`)

var wwwPrefixRe = regexp.MustCompile(`^ww(?:w|\d+)\.`)

// Clean converts a URL to its canonical form: trimmed, scheme stripped,
// www/wwN host prefix stripped, host lowercased, one trailing slash removed.
func Clean(url string) string {
	s := strings.TrimSpace(url)
	s = strings.TrimPrefix(s, "https://")
	s = strings.TrimPrefix(s, "http://")
	s = wwwPrefixRe.ReplaceAllString(s, "")
	s = strings.TrimSuffix(s, "/")
	if i := strings.IndexByte(s, '/'); i >= 0 {
		s = strings.ToLower(s[:i]) + s[i:]
	} else {
		s = strings.ToLower(s)
	}
	return s
}

// Extractor finds URLs in text, skipping hosts that would create feedback
// loops (the chat platform's own permalinks, the wiki's publishing domain).
type Extractor struct {
	excluded []string
}

// NewExtractor creates an extractor with the given excluded host suffixes
func NewExtractor(excludedHosts ...string) *Extractor {
	return &Extractor{excluded: excludedHosts}
}

// Extract returns canonical URLs found in text, in order of first occurrence
// with duplicates collapsed. Returns nil when nothing is found, so callers
// can short-circuit.
func (e *Extractor) Extract(text string) []string {
	matches := urlRe.FindAllString(text, -1)
	if len(matches) == 0 {
		return nil
	}

	seen := make(map[string]struct{}, len(matches))
	var urls []string
	for _, m := range matches {
		u := Clean(m)
		if e.isExcluded(u) {
			continue
		}
		if _, ok := seen[u]; ok {
			continue
		}
		seen[u] = struct{}{}
		urls = append(urls, u)
	}

	if len(urls) == 0 {
		return nil
	}
	return urls
}

func (e *Extractor) isExcluded(canonical string) bool {
	host := canonical
	if i := strings.IndexByte(host, '/'); i >= 0 {
		host = host[:i]
	}
	for _, ex := range e.excluded {
		if host == ex || strings.HasSuffix(host, "."+ex) {
			return true
		}
	}
	return false
}
