package db_models

import "encoding/json"

const (
	ChatRoleUser = "user"
	ChatRoleBot  = "bot"
)

// ChatMessage is one conversational turn in its canonical shape.
type ChatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type ChatHistory []ChatMessage

// UnmarshalJSON accepts both the canonical {role, content} turn and the
// legacy {user, bot} paired shape written by earlier revisions. A legacy
// record carries both sides of one exchange and expands into two turns.
func (h *ChatHistory) UnmarshalJSON(data []byte) error {
	var raw []json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	out := make(ChatHistory, 0, len(raw))
	for _, item := range raw {
		var probe struct {
			Role    string `json:"role"`
			Content string `json:"content"`
			User    string `json:"user"`
			Bot     string `json:"bot"`
		}
		if err := json.Unmarshal(item, &probe); err != nil {
			return err
		}

		if probe.Role != "" {
			out = append(out, ChatMessage{Role: probe.Role, Content: probe.Content})
			continue
		}
		if probe.User != "" {
			out = append(out, ChatMessage{Role: ChatRoleUser, Content: probe.User})
		}
		if probe.Bot != "" {
			out = append(out, ChatMessage{Role: ChatRoleBot, Content: probe.Bot})
		}
	}

	*h = out
	return nil
}

// UserTurns counts the questions the user has asked so far.
func (h ChatHistory) UserTurns() int {
	n := 0
	for _, m := range h {
		if m.Role == ChatRoleUser {
			n++
		}
	}
	return n
}
