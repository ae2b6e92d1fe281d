package assist

import (
	"context"
	"fmt"
)

// Message is one role-tagged chat message.
type Message struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// ChatClient is the plan gateway: one blocking chat-completion round-trip
// that returns the raw text of the first choice. No streaming, no retry.
type ChatClient interface {
	Complete(ctx context.Context, messages []Message) (string, error)
}

// StatusError reports a non-2xx reply from the completion endpoint. Body
// is kept for the logs only and must never be forwarded to the end client.
type StatusError struct {
	Code int
	Body string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("llm request failed with status %d", e.Code)
}

// Config selects the completion provider. Resolved once at startup and
// passed in explicitly; the client never reads configuration on its own.
type Config struct {
	Provider string
	Model    string
	BaseURL  string
	APIKey   string
}
