package domain

import "time"

// FeedStatus enables or disables scheduling of a subscription
type FeedStatus string

// feed subscription states
const (
	FeedActive   FeedStatus = "active"
	FeedInactive FeedStatus = "inactive"
)

// FeedSubscription is a feed posted to a single channel. The same feed URL
// may be subscribed in several channels as distinct records.
type FeedSubscription struct {
	ID            string // uuid
	URL           string
	Name          string
	ChannelID     int64
	GuildID       int64
	CreatedBy     int64
	Status        FeedStatus
	CheckInterval time.Duration
	LastCheckedAt *time.Time
	CreatedAt     time.Time
}

// FeedEntry is a single feed item, deduplicated by (FeedID, EntryID)
type FeedEntry struct {
	ID          string // uuid
	FeedID      string
	EntryID     string // provider id or synthesized, stable across fetches
	Title       string
	Link        string
	Description string
	Thumbnail   string
	Published   *time.Time
	CreatedAt   time.Time
	MessageID   *int64 // set after successful delivery
}
