package memory

import (
	"sync"
	"time"

	"zanai/zanai/types"
)

// HistoryStore accumulates the conversation the dev backend serves back on
// login. Single user, so one shared timeline; in-memory only.
type HistoryStore struct {
	mu      sync.Mutex
	records []types.HistoryRecord
	now     func() time.Time
}

func NewHistoryStore() *HistoryStore {
	return &HistoryStore{now: time.Now}
}

// Append records one message and returns it with the timestamp filled in.
func (s *HistoryStore) Append(from, text string) types.HistoryRecord {
	s.mu.Lock()
	defer s.mu.Unlock()
	rec := types.HistoryRecord{
		From: from,
		Text: text,
		Time: s.now().UTC().Format(time.RFC3339),
	}
	s.records = append(s.records, rec)
	return rec
}

// Records returns a copy, oldest first.
func (s *HistoryStore) Records() []types.HistoryRecord {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]types.HistoryRecord, len(s.records))
	copy(out, s.records)
	return out
}
