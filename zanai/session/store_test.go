package session

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func pendingMsg(id, text string) Message {
	return Message{
		ID:        id,
		Sender:    SenderUser,
		Text:      text,
		Timestamp: time.Now(),
		Status:    StatusPending,
	}
}

// checkSingleInFlight asserts the store-wide invariant: at most one pending
// message, and the marker points at it when set.
func checkSingleInFlight(t *testing.T, s *Store) {
	t.Helper()
	pendingCount := 0
	for _, m := range s.Messages() {
		if m.Status == StatusPending {
			pendingCount++
			assert.Equal(t, s.PendingID(), m.ID)
		}
	}
	assert.LessOrEqual(t, pendingCount, 1)
	if pendingCount == 0 {
		assert.Empty(t, s.PendingID())
	}
}

func TestStore_BeginSendSetsMarker(t *testing.T) {
	s := NewStore()

	err := s.BeginSend(pendingMsg("local-1", "hello"))
	require.NoError(t, err)

	assert.Equal(t, 1, s.Len())
	assert.Equal(t, "local-1", s.PendingID())
	checkSingleInFlight(t, s)
}

func TestStore_BeginSendRejectsSecondPending(t *testing.T) {
	s := NewStore()
	require.NoError(t, s.BeginSend(pendingMsg("local-1", "first")))

	err := s.BeginSend(pendingMsg("local-2", "second"))
	assert.ErrorIs(t, err, ErrSendInFlight)
	assert.Equal(t, 1, s.Len())
	checkSingleInFlight(t, s)
}

func TestStore_BeginSendRejectsTerminalStatus(t *testing.T) {
	s := NewStore()
	msg := pendingMsg("local-1", "hello")
	msg.Status = StatusConfirmed

	assert.ErrorIs(t, s.BeginSend(msg), ErrNotPending)
	assert.Equal(t, 0, s.Len())
}

func TestStore_ResolveSendReplacesInPlaceAndAppendsReply(t *testing.T) {
	s := NewStore()
	history := []Message{
		{ID: "hist-0-1", Sender: SenderAssistant, Text: "welcome", Status: StatusConfirmed},
	}
	require.NoError(t, s.Reset(history))
	require.NoError(t, s.BeginSend(pendingMsg("local-1", "hello")))

	confirmed := Message{ID: "user-1", Sender: SenderUser, Text: "hello", Status: StatusConfirmed}
	reply := Message{ID: "ai-1", Sender: SenderAssistant, Text: "hi!", Status: StatusConfirmed}
	require.NoError(t, s.ResolveSend("local-1", confirmed, reply))

	msgs := s.Messages()
	require.Len(t, msgs, 3)
	assert.Equal(t, "hist-0-1", msgs[0].ID)
	assert.Equal(t, "user-1", msgs[1].ID)
	assert.Equal(t, "ai-1", msgs[2].ID)
	assert.Empty(t, s.PendingID())
	checkSingleInFlight(t, s)
}

func TestStore_FailSendRemovesPlaceholder(t *testing.T) {
	s := NewStore()
	require.NoError(t, s.BeginSend(pendingMsg("local-1", "hello")))

	failed := Message{ID: "user-2", Sender: SenderUser, Text: "hello (Error: bad)", Status: StatusFailed}
	require.NoError(t, s.FailSend("local-1", failed))

	msgs := s.Messages()
	require.Len(t, msgs, 1)
	assert.Equal(t, "user-2", msgs[0].ID)
	assert.Equal(t, StatusFailed, msgs[0].Status)
	for _, m := range msgs {
		assert.NotEqual(t, "local-1", m.ID)
	}
	checkSingleInFlight(t, s)
}

func TestStore_ResolveSendRequiresMatchingMarker(t *testing.T) {
	s := NewStore()
	require.NoError(t, s.BeginSend(pendingMsg("local-1", "hello")))

	err := s.ResolveSend("local-other", Message{}, Message{})
	assert.ErrorIs(t, err, ErrNotPending)
	assert.Equal(t, "local-1", s.PendingID())
}

func TestStore_ResetRefusedWhileInFlight(t *testing.T) {
	s := NewStore()
	require.NoError(t, s.BeginSend(pendingMsg("local-1", "hello")))

	assert.ErrorIs(t, s.Reset(nil), ErrSendInFlight)
}

func TestStore_ChangesNotifiesOnMutation(t *testing.T) {
	s := NewStore()
	require.NoError(t, s.BeginSend(pendingMsg("local-1", "hello")))

	select {
	case <-s.Changes():
	default:
		t.Fatal("expected a change notification after BeginSend")
	}
}

func TestStore_MessagesReturnsCopy(t *testing.T) {
	s := NewStore()
	require.NoError(t, s.Reset([]Message{{ID: "hist-0-1", Status: StatusConfirmed}}))

	snapshot := s.Messages()
	snapshot[0].Text = "mutated"

	assert.Empty(t, s.Messages()[0].Text)
}
