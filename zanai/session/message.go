package session

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

type Sender string

const (
	SenderUser      Sender = "user"
	SenderAssistant Sender = "assistant"
)

type Status string

const (
	// StatusPending marks an optimistic user message still awaiting the
	// server response. Confirmed and failed are terminal.
	StatusPending   Status = "pending"
	StatusConfirmed Status = "confirmed"
	StatusFailed    Status = "failed"
)

// Message is the unit of conversation. ID is stable once assigned and never
// reused within a session. Text is immutable once the message is terminal.
type Message struct {
	ID        string
	Sender    Sender
	Text      string
	Timestamp time.Time
	Status    Status
}

// The three id constructors below draw from disjoint namespaces so a
// speculative id can never collide with a confirmed or history-derived one.

// NewLocalID identifies an optimistic entry. It is single-use: once the send
// resolves the message is re-identified and the local id is discarded.
func NewLocalID() string {
	return "local-" + uuid.New().String()
}

// NewUserID identifies a server-confirmed user message.
func NewUserID() string {
	return "user-" + uuid.New().String()
}

// NewAssistantID identifies an assistant reply.
func NewAssistantID() string {
	return "ai-" + uuid.New().String()
}

// HistoryID is derived from the record's position and timestamp, so
// re-normalizing the same payload yields the same ids.
func HistoryID(position int, ts time.Time) string {
	return fmt.Sprintf("hist-%d-%d", position, ts.UnixMilli())
}
