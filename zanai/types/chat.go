// zanai/types/chat.go
package types

import "encoding/json"

type LoginRequest struct {
	Pin string `json:"pin"`
}

// LoginResponse carries the history as raw JSON so the session package can
// decide what a malformed payload means instead of the transport layer.
type LoginResponse struct {
	Token   string          `json:"token"`
	History json.RawMessage `json:"history"`
}

// HistoryRecord is one server-side message, oldest first in the payload.
type HistoryRecord struct {
	From string `json:"from"`
	Text string `json:"text"`
	Time string `json:"time"`
}

type SendRequest struct {
	Message string `json:"message"`
}

type SendResponse struct {
	Reply string `json:"reply"`
}

// ErrorResponse is the body every non-2xx endpoint answer uses.
type ErrorResponse struct {
	Msg string `json:"msg"`
}
