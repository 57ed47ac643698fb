package tracker

import (
	"fmt"
	"strings"
	"time"

	"github.com/fmhy/wikibot/pkg/domain"
)

// Plan is the outcome of reconciling a batch of sighted URLs against the
// records already tracked. It separates writes from informational findings
// so callers can persist first and report after.
type Plan struct {
	ToInsert  []domain.WikiURL
	ToUpdate  []domain.WikiURL
	Conflicts Report
}

// Empty reports whether the plan carries no writes and no findings
func (p *Plan) Empty() bool {
	return len(p.ToInsert) == 0 && len(p.ToUpdate) == 0 && p.Conflicts.Empty()
}

// Report groups conflicting URLs by the status they already hold
type Report struct {
	byStatus map[domain.Status][]string
}

// Add records a conflict for a URL that already holds the given status
func (r *Report) Add(status domain.Status, url string) {
	if r.byStatus == nil {
		r.byStatus = make(map[domain.Status][]string)
	}
	r.byStatus[status] = append(r.byStatus[status], url)
}

// Empty reports whether any conflicts were recorded
func (r *Report) Empty() bool {
	return len(r.byStatus) == 0
}

// URLs returns the conflicting URLs recorded under a status, in sighting order
func (r *Report) URLs(status domain.Status) []string {
	return r.byStatus[status]
}

// Render formats the report as a human-readable summary, one section per
// status in a stable order. Returns "" when there is nothing to report.
func (r *Report) Render() string {
	if r.Empty() {
		return ""
	}

	titles := map[domain.Status]string{
		domain.StatusAdded:   "Already in the wiki",
		domain.StatusPending: "Already submitted",
		domain.StatusRemoved: "Previously removed",
	}

	var sb strings.Builder
	for _, st := range domain.Statuses {
		urls := r.byStatus[st]
		if len(urls) == 0 {
			continue
		}
		if sb.Len() > 0 {
			sb.WriteString("\n")
		}
		sb.WriteString(fmt.Sprintf("**%s** (%d):\n", titles[st], len(urls)))
		for _, u := range urls {
			sb.WriteString("- " + u + "\n")
		}
	}
	return sb.String()
}

// Reconcile applies the status decision table to a batch of canonical URLs
// sighted in one message. Authoritative sightings (ok=true) create or move
// records; ambient sightings never write, they only surface what is already
// tracked. A pending sighting of an existing record is a conflict regardless
// of its current status: submissions do not demote or re-submit.
func Reconcile(urls []string, status domain.Status, ok bool, origin domain.Origin, existing []domain.WikiURL) Plan {
	known := make(map[string]domain.WikiURL, len(existing))
	for _, rec := range existing {
		known[rec.URL] = rec
	}

	now := time.Now()
	var plan Plan
	seen := make(map[string]struct{}, len(urls))

	for _, u := range urls {
		if _, dup := seen[u]; dup {
			continue
		}
		seen[u] = struct{}{}

		rec, tracked := known[u]

		switch {
		case !ok: // ambient channel
			if tracked {
				plan.Conflicts.Add(rec.Status, u)
			}

		case status == domain.StatusPending:
			if tracked {
				plan.Conflicts.Add(rec.Status, u)
				continue
			}
			plan.ToInsert = append(plan.ToInsert, domain.WikiURL{
				URL:       u,
				Status:    domain.StatusPending,
				Origin:    origin,
				CreatedAt: now,
				UpdatedAt: now,
			})

		default: // added or removed, both authoritative moves
			if !tracked {
				plan.ToInsert = append(plan.ToInsert, domain.WikiURL{
					URL:       u,
					Status:    status,
					Origin:    origin,
					CreatedAt: now,
					UpdatedAt: now,
				})
				continue
			}
			// moderators act deliberately in these channels, so an existing
			// record always follows, origin refreshed even on a same-status
			// re-observation
			rec.Status = status
			rec.Origin = origin
			rec.UpdatedAt = now
			plan.ToUpdate = append(plan.ToUpdate, rec)
		}
	}

	return plan
}

// AuditReport lists the disagreements between tracked statuses and the
// wiki snapshot.
type AuditReport struct {
	AddedNotLive  []string // tracked as added but absent from the wiki
	ShouldBeAdded []string // tracked as pending or removed but published
}

// Empty reports whether the audit found no disagreements
func (a *AuditReport) Empty() bool {
	return len(a.AddedNotLive) == 0 && len(a.ShouldBeAdded) == 0
}

// Audit compares tracked records against the set of URLs currently live in
// the wiki snapshot and reports both directions of disagreement.
func Audit(records []domain.WikiURL, live map[string]struct{}) AuditReport {
	var report AuditReport
	for _, rec := range records {
		_, isLive := live[rec.URL]
		switch {
		case rec.Status == domain.StatusAdded && !isLive:
			report.AddedNotLive = append(report.AddedNotLive, rec.URL)
		case rec.Status != domain.StatusAdded && isLive:
			report.ShouldBeAdded = append(report.ShouldBeAdded, rec.URL)
		}
	}
	return report
}
