// Package tracker keeps the wiki URL ledger in sync with what people post
// in the chat channels. Every message flows through the same pipeline:
// resolve effective text, extract canonical URLs, classify the channel,
// reconcile against tracked records, persist the plan.
package tracker

import (
	"context"
	"fmt"

	"github.com/go-pkgz/lgr"

	"github.com/fmhy/wikibot/pkg/domain"
	"github.com/fmhy/wikibot/pkg/urlx"
)

//go:generate moq --out mocks/store.go --pkg mocks --with-resets --skip-ensure . Store
//go:generate moq --out mocks/snapshot.go --pkg mocks --with-resets --skip-ensure . Snapshot

// Store is the persistence interface the tracker needs
type Store interface {
	GetByURLs(ctx context.Context, urls []string) ([]domain.WikiURL, error)
	CreateMany(ctx context.Context, urls []domain.WikiURL) (int64, error)
	UpdateStatus(ctx context.Context, id int64, status domain.Status, origin domain.Origin) error
	List(ctx context.Context) ([]domain.WikiURL, error)
}

// Snapshot provides the current wiki content for audits
type Snapshot interface {
	LiveURLs(ctx context.Context) (map[string]struct{}, error)
}

// Tracker processes chat messages into ledger mutations
type Tracker struct {
	extractor  *urlx.Extractor
	classifier *Classifier
	store      Store
	snapshot   Snapshot
}

// New creates a tracker
func New(extractor *urlx.Extractor, classifier *Classifier, store Store, snapshot Snapshot) *Tracker {
	return &Tracker{extractor: extractor, classifier: classifier, store: store, snapshot: snapshot}
}

// ResolveEffectiveText picks the text a message effectively contributes:
// its own body, the already-resolved referenced text, or — for bare forwards
// and replies — whatever fetchReferenced can recover. Empty result means the
// message carries nothing to scan.
func ResolveEffectiveText(ctx context.Context, msg domain.Message, fetchReferenced func(ctx context.Context) (string, error)) string {
	if msg.Text != "" {
		return msg.Text
	}
	if msg.ReferencedText != "" {
		return msg.ReferencedText
	}
	if fetchReferenced == nil {
		return ""
	}
	text, err := fetchReferenced(ctx)
	if err != nil {
		lgr.Printf("[DEBUG] failed to fetch referenced message for %d: %v", msg.MessageID, err)
		return ""
	}
	return text
}

// ProcessMessage runs the full pipeline for one message and returns the
// conflict report to surface back to the poster, or nil when there is
// nothing to say. Messages without URLs are a no-op.
func (t *Tracker) ProcessMessage(ctx context.Context, msg domain.Message, fetchReferenced func(ctx context.Context) (string, error)) (*Report, error) {
	text := ResolveEffectiveText(ctx, msg, fetchReferenced)
	if text == "" {
		return nil, nil
	}

	urls := t.extractor.Extract(text)
	if len(urls) == 0 {
		return nil, nil
	}

	status, ok := t.classifier.Classify(msg.ChannelID)
	if !ok && msg.ParentChannelID != 0 {
		// thread messages classify through the channel the thread hangs under
		status, ok = t.classifier.ClassifyThread(msg.ParentChannelID)
	}

	existing, err := t.store.GetByURLs(ctx, urls)
	if err != nil {
		return nil, fmt.Errorf("load existing records: %w", err)
	}

	origin := domain.Origin{
		UserID:    msg.AuthorID,
		MessageID: msg.MessageID,
		ChannelID: msg.ChannelID,
		GuildID:   msg.GuildID,
	}
	plan := Reconcile(urls, status, ok, origin, existing)

	if len(plan.ToInsert) > 0 {
		inserted, err := t.store.CreateMany(ctx, plan.ToInsert)
		if err != nil {
			return nil, fmt.Errorf("insert records: %w", err)
		}
		lgr.Printf("[INFO] tracked %d new urls from channel %d (status %s)", inserted, msg.ChannelID, status)
	}

	for _, rec := range plan.ToUpdate {
		if err := t.store.UpdateStatus(ctx, rec.ID, rec.Status, rec.Origin); err != nil {
			return nil, fmt.Errorf("update record %d: %w", rec.ID, err)
		}
	}
	if len(plan.ToUpdate) > 0 {
		lgr.Printf("[INFO] moved %d urls to %s from channel %d", len(plan.ToUpdate), status, msg.ChannelID)
	}

	if plan.Conflicts.Empty() {
		return nil, nil
	}
	return &plan.Conflicts, nil
}

// AuditRecords fetches the live wiki snapshot and reports every tracked
// record whose status disagrees with it.
func (t *Tracker) AuditRecords(ctx context.Context) (AuditReport, error) {
	records, err := t.store.List(ctx)
	if err != nil {
		return AuditReport{}, fmt.Errorf("list records: %w", err)
	}

	live, err := t.snapshot.LiveURLs(ctx)
	if err != nil {
		return AuditReport{}, fmt.Errorf("fetch wiki snapshot: %w", err)
	}

	report := Audit(records, live)
	if !report.Empty() {
		lgr.Printf("[WARN] audit found %d added-but-missing and %d live-but-untracked urls",
			len(report.AddedNotLive), len(report.ShouldBeAdded))
	}
	return report, nil
}
