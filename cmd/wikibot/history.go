package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/fmhy/wikibot/pkg/domain"
)

// fileHistory serves channel history for migration from a directory of
// exported dumps, one <channel id>.json file per channel, each holding an
// array of messages oldest first.
type fileHistory struct {
	dir string
}

type exportedMessage struct {
	Text            string `json:"text"`
	AuthorID        int64  `json:"author_id"`
	MessageID       int64  `json:"message_id"`
	ChannelID       int64  `json:"channel_id"`
	GuildID         int64  `json:"guild_id"`
	ReferencedText  string `json:"referenced_text,omitempty"`
	ParentChannelID int64  `json:"parent_channel_id,omitempty"`
}

func newFileHistory(dir string) (*fileHistory, error) {
	info, err := os.Stat(dir)
	if err != nil {
		return nil, fmt.Errorf("stat history dir: %w", err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("%s is not a directory", dir)
	}
	return &fileHistory{dir: dir}, nil
}

// ChannelMessages loads the export for one channel. A missing file means
// the channel simply has no export, not an error.
func (h *fileHistory) ChannelMessages(_ context.Context, channelID int64) ([]domain.Message, error) {
	path := filepath.Join(h.dir, fmt.Sprintf("%d.json", channelID))
	data, err := os.ReadFile(path) //nolint:gosec // path is built from the configured export dir
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("read history file: %w", err)
	}

	var exported []exportedMessage
	if err := json.Unmarshal(data, &exported); err != nil {
		return nil, fmt.Errorf("parse history file %s: %w", path, err)
	}

	messages := make([]domain.Message, len(exported))
	for i, m := range exported {
		messages[i] = domain.Message{
			Text:            m.Text,
			AuthorID:        m.AuthorID,
			MessageID:       m.MessageID,
			ChannelID:       m.ChannelID,
			GuildID:         m.GuildID,
			ReferencedText:  m.ReferencedText,
			ParentChannelID: m.ParentChannelID,
		}
	}
	return messages, nil
}
