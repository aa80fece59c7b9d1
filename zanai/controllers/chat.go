// zanai/controllers/chat.go
package controllers

import (
	"context"
	"errors"
	"strings"

	"zanai/zanai/session"
	"zanai/zanai/sources/memory"
)

var ErrEmptyMessage = errors.New("message is required")

// ChatController produces canned replies for local development. The reply
// engine is deliberately dumb; the real service lives elsewhere.
type ChatController struct {
	history *memory.HistoryStore
}

func NewChatController(history *memory.HistoryStore) *ChatController {
	return &ChatController{history: history}
}

func (c *ChatController) Send(ctx context.Context, message string) (string, error) {
	trimmed := strings.TrimSpace(message)
	if trimmed == "" {
		return "", ErrEmptyMessage
	}
	c.history.Append(string(session.SenderUser), trimmed)
	reply := replyFor(trimmed)
	c.history.Append(string(session.SenderAssistant), reply)
	return reply, nil
}

func replyFor(message string) string {
	lower := strings.ToLower(message)
	switch {
	case strings.Contains(lower, "hello"), strings.Contains(lower, "hi"):
		return "Hello! How can I help you today?"
	case strings.Contains(lower, "how are you"):
		return "Running fine on localhost. What's on your mind?"
	case strings.HasSuffix(strings.TrimSpace(message), "?"):
		return "Good question. The dev backend has no real answer, but the production service would."
	default:
		return "You said: " + message
	}
}
