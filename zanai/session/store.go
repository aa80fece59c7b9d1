package session

import (
	"errors"
	"sync"
)

var (
	ErrSendInFlight = errors.New("a send is already in flight")
	ErrNotPending   = errors.New("message is not the pending entry")
)

// Store holds the ordered message sequence for one authenticated login plus
// the single-slot in-flight marker. Mutation goes through the defined
// transitions only; readers get copies. A mutex guards the slice because the
// UI event loop reads while a send goroutine resolves.
type Store struct {
	mu       sync.RWMutex
	messages []Message
	pending  string

	changes chan struct{}
}

func NewStore() *Store {
	return &Store{changes: make(chan struct{}, 1)}
}

// Changes delivers a coalesced notification after every mutation. The
// presentation layer blocks on it and re-reads Messages.
func (s *Store) Changes() <-chan struct{} {
	return s.changes
}

func (s *Store) notifyLocked() {
	select {
	case s.changes <- struct{}{}:
	default:
	}
}

// Messages returns a snapshot copy in insertion order.
func (s *Store) Messages() []Message {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]Message, len(s.messages))
	copy(out, s.messages)
	return out
}

func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.messages)
}

// PendingID returns the id of the in-flight optimistic message, or "".
func (s *Store) PendingID() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.pending
}

// Reset replaces the whole sequence with normalized history. Used once at
// session start; refuses to run while a send is in flight.
func (s *Store) Reset(msgs []Message) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.pending != "" {
		return ErrSendInFlight
	}
	s.messages = make([]Message, len(msgs))
	copy(s.messages, msgs)
	s.notifyLocked()
	return nil
}

// BeginSend appends the optimistic entry and records it as in flight. The
// check and the insert happen under one lock so two callers cannot both win.
func (s *Store) BeginSend(msg Message) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.pending != "" {
		return ErrSendInFlight
	}
	if msg.Status != StatusPending {
		return ErrNotPending
	}
	s.messages = append(s.messages, msg)
	s.pending = msg.ID
	s.notifyLocked()
	return nil
}

// ResolveSend replaces the pending entry in place with its confirmed
// counterpart and inserts the assistant reply immediately after it. Both
// mutations land as one atomic update, then the marker clears.
func (s *Store) ResolveSend(pendingID string, confirmed, reply Message) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	idx, err := s.pendingIndexLocked(pendingID)
	if err != nil {
		return err
	}
	s.messages[idx] = confirmed
	s.messages = append(s.messages, Message{})
	copy(s.messages[idx+2:], s.messages[idx+1:])
	s.messages[idx+1] = reply
	s.pending = ""
	s.notifyLocked()
	return nil
}

// FailSend removes the pending entry entirely and appends the annotated
// failed message, then clears the marker.
func (s *Store) FailSend(pendingID string, failed Message) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	idx, err := s.pendingIndexLocked(pendingID)
	if err != nil {
		return err
	}
	s.messages = append(s.messages[:idx], s.messages[idx+1:]...)
	s.messages = append(s.messages, failed)
	s.pending = ""
	s.notifyLocked()
	return nil
}

func (s *Store) pendingIndexLocked(pendingID string) (int, error) {
	if pendingID == "" || s.pending != pendingID {
		return 0, ErrNotPending
	}
	for i, m := range s.messages {
		if m.ID == pendingID {
			return i, nil
		}
	}
	return 0, ErrNotPending
}
