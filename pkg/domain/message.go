package domain

// Message is the text-origin event delivered by the chat gateway.
// ReferencedText carries the content of a replied-to or forwarded message
// when the gateway resolved it eagerly; otherwise it is empty and the
// tracker may fetch it on demand.
type Message struct {
	Text           string
	AuthorID       int64
	MessageID      int64
	ChannelID      int64
	GuildID        int64
	ReferencedText string

	// ParentChannelID is set when the message was posted inside a thread;
	// it names the channel the thread hangs under. Zero for plain messages.
	ParentChannelID int64
}
