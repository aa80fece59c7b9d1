package session

import (
	"encoding/json"
	"time"

	"zanai/zanai/types"
)

// NormalizeHistory converts the server history payload into confirmed
// messages, oldest first, with ids derived deterministically from position
// and timestamp. A payload that is not a list means "no history": the result
// is empty and no error escapes.
func NormalizeHistory(raw json.RawMessage) []Message {
	if len(raw) == 0 {
		return nil
	}
	var records []types.HistoryRecord
	if err := json.Unmarshal(raw, &records); err != nil {
		return nil
	}
	msgs := make([]Message, 0, len(records))
	for i, rec := range records {
		ts, err := time.Parse(time.RFC3339, rec.Time)
		if err != nil {
			ts = time.Time{}
		}
		msgs = append(msgs, Message{
			ID:        HistoryID(i, ts),
			Sender:    normalizeSender(rec.From),
			Text:      rec.Text,
			Timestamp: ts,
			Status:    StatusConfirmed,
		})
	}
	return msgs
}

func normalizeSender(from string) Sender {
	if from == string(SenderUser) {
		return SenderUser
	}
	return SenderAssistant
}
