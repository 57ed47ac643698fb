package tracker

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/go-pkgz/lgr"

	"github.com/fmhy/wikibot/pkg/domain"
	"github.com/fmhy/wikibot/pkg/urlx"
)

//go:generate moq --out mocks/history_source.go --pkg mocks --with-resets --skip-ensure . HistorySource

// HistorySource pages through the full message history of a channel,
// oldest first.
type HistorySource interface {
	ChannelMessages(ctx context.Context, channelID int64) ([]domain.Message, error)
}

// RawFetcher provides the raw wiki document for cross-checking
type RawFetcher interface {
	FetchRaw(ctx context.Context) (string, error)
}

// MigrateStats summarizes a history replay run
type MigrateStats struct {
	ChannelsProcessed int
	MessagesScanned   int
	URLsCollected     int
	Inserted          int64
}

// Migrator rebuilds the ledger from channel history. It replays every
// classified channel's messages through the same extraction rules as live
// processing, cross-checks authoritative claims against the current wiki
// document, and bulk-inserts the survivors with conflicts ignored, so a
// replay over an existing ledger never clobbers it.
type Migrator struct {
	extractor  *urlx.Extractor
	classifier *Classifier
	store      Store
	wiki       RawFetcher
	history    HistorySource
}

// NewMigrator creates a migrator
func NewMigrator(extractor *urlx.Extractor, classifier *Classifier, store Store, wiki RawFetcher, history HistorySource) *Migrator {
	return &Migrator{extractor: extractor, classifier: classifier, store: store, wiki: wiki, history: history}
}

// Run replays the given channels into the ledger. Channels without a status
// mapping are skipped with a warning. First sighting of a canonical URL wins
// across the entire run, so channel order matters and callers should pass
// the most authoritative channels first.
func (m *Migrator) Run(ctx context.Context, channels []int64) (MigrateStats, error) {
	rawWiki, err := m.wiki.FetchRaw(ctx)
	if err != nil {
		return MigrateStats{}, fmt.Errorf("fetch wiki for cross-check: %w", err)
	}

	var stats MigrateStats
	collected := make(map[string]domain.WikiURL)
	now := time.Now()

	for _, channelID := range channels {
		status, ok := m.classifier.Classify(channelID)
		if !ok {
			lgr.Printf("[WARN] channel %d has no status mapping, skipping", channelID)
			continue
		}

		messages, err := m.history.ChannelMessages(ctx, channelID)
		if err != nil {
			return stats, fmt.Errorf("fetch history for channel %d: %w", channelID, err)
		}
		stats.ChannelsProcessed++

		for _, msg := range messages {
			stats.MessagesScanned++
			text := msg.Text
			if text == "" {
				text = msg.ReferencedText
			}
			if text == "" {
				continue
			}

			// the canonical form is a substring of every full spelling the
			// wiki may use, so the cross-check runs on cleaned URLs
			for _, canonical := range m.extractor.Extract(text) {
				if !crossCheck(status, rawWiki, canonical) {
					continue
				}
				if _, seen := collected[canonical]; seen {
					continue
				}
				collected[canonical] = domain.WikiURL{
					URL:    canonical,
					Status: status,
					Origin: domain.Origin{
						UserID:    msg.AuthorID,
						MessageID: msg.MessageID,
						ChannelID: msg.ChannelID,
						GuildID:   msg.GuildID,
					},
					CreatedAt: now,
					UpdatedAt: now,
				}
			}
		}
		lgr.Printf("[INFO] replayed channel %d (%s): %d urls collected so far", channelID, status, len(collected))
	}

	stats.URLsCollected = len(collected)
	if len(collected) == 0 {
		return stats, nil
	}

	batch := make([]domain.WikiURL, 0, len(collected))
	for _, rec := range collected {
		batch = append(batch, rec)
	}

	inserted, err := m.store.CreateMany(ctx, batch)
	if err != nil {
		return stats, fmt.Errorf("insert migrated records: %w", err)
	}
	stats.Inserted = inserted

	lgr.Printf("[INFO] migration done: %d channels, %d messages, %d urls, %d inserted",
		stats.ChannelsProcessed, stats.MessagesScanned, stats.URLsCollected, stats.Inserted)
	return stats, nil
}

// crossCheck validates a historical claim against the current wiki text:
// an "added" claim must still be published, a "removed" claim must not be.
// Pending submissions pass through untouched. The URL must be in canonical
// form, which matches the wiki's full spellings by substring regardless of
// scheme, www prefix or trailing slash.
func crossCheck(status domain.Status, rawWiki, cleanURL string) bool {
	switch status {
	case domain.StatusAdded:
		return strings.Contains(rawWiki, cleanURL)
	case domain.StatusRemoved:
		return !strings.Contains(rawWiki, cleanURL)
	default:
		return true
	}
}
