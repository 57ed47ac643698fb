package tracker

import (
	"github.com/fmhy/wikibot/pkg/config"
	"github.com/fmhy/wikibot/pkg/domain"
)

// Classifier maps channel identifiers to the wiki URL status their messages
// assert. Channels outside the map are ambient: URLs sighted there are
// informational only and never authoritative.
type Classifier struct {
	statuses          map[int64]domain.Status
	submissionParents map[int64]struct{}
}

// NewClassifier builds a classifier from the channel mapping configuration
func NewClassifier(cfg config.ChannelsConfig) *Classifier {
	c := &Classifier{
		statuses:          make(map[int64]domain.Status),
		submissionParents: make(map[int64]struct{}),
	}
	for _, id := range cfg.Pending {
		c.statuses[id] = domain.StatusPending
	}
	for _, id := range cfg.Added {
		c.statuses[id] = domain.StatusAdded
	}
	for _, id := range cfg.Removed {
		c.statuses[id] = domain.StatusRemoved
	}
	for _, id := range cfg.SubmissionParents {
		c.submissionParents[id] = struct{}{}
	}
	return c
}

// Classify returns the status asserted by a channel, or false for ambient channels
func (c *Classifier) Classify(channelID int64) (domain.Status, bool) {
	st, ok := c.statuses[channelID]
	return st, ok
}

// ClassifyThread returns the status for a message posted in a thread. The
// chat platform exposes threads as a separate entity, so the thread's parent
// decides: only threads nested under a submission channel count as
// authoritative pending contexts.
func (c *Classifier) ClassifyThread(parentID int64) (domain.Status, bool) {
	if _, ok := c.submissionParents[parentID]; ok {
		return domain.StatusPending, true
	}
	return "", false
}

// IsSubmissionParent reports whether threads under this channel are submission contexts
func (c *Classifier) IsSubmissionParent(channelID int64) bool {
	_, ok := c.submissionParents[channelID]
	return ok
}
