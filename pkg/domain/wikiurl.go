package domain

import "time"

// Status is the lifecycle state of a tracked wiki URL
type Status string

// wiki URL lifecycle states
const (
	StatusPending Status = "pending"
	StatusAdded   Status = "added"
	StatusRemoved Status = "removed"
)

// Statuses lists all lifecycle states in report order
var Statuses = []Status{StatusAdded, StatusPending, StatusRemoved}

// Origin identifies the actor and location that last set a record's status
type Origin struct {
	UserID    int64
	MessageID int64
	ChannelID int64
	GuildID   int64
}

// WikiURL is a tracked URL record, one per canonical URL
type WikiURL struct {
	ID        int64
	URL       string // canonical form, unique
	Status    Status
	Origin    Origin
	CreatedAt time.Time
	UpdatedAt time.Time
}
