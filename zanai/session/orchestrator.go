package session

import (
	"context"
	"errors"
	"strings"
	"time"

	"go.uber.org/zap"

	"zanai/zanai/utils/logging"
)

const (
	defaultRejectionMsg = "Send failed"
	networkFailureMsg   = "Network issue"
)

// Rejection is returned by a ReplySender when the service answered the round
// trip but refused the message. Any other error is a transport failure with
// no server message attached.
type Rejection struct {
	Msg string
}

func (r *Rejection) Error() string {
	if r.Msg == "" {
		return defaultRejectionMsg
	}
	return r.Msg
}

// ReplySender is the network collaborator: one round trip, one reply.
type ReplySender interface {
	Send(ctx context.Context, token, text string) (string, error)
}

// Orchestrator drives the optimistic-insert / reconcile protocol against the
// store. It is the store's sole mutator after history load, and serializes
// sends through the single-pending invariant.
type Orchestrator struct {
	store  *Store
	sender ReplySender
	token  string
	now    func() time.Time
}

func NewOrchestrator(store *Store, sender ReplySender, token string) *Orchestrator {
	return &Orchestrator{
		store:  store,
		sender: sender,
		token:  token,
		now:    time.Now,
	}
}

// Submit runs one send operation: optimistic insert, network call, reconcile.
// It returns false without touching the store when the trimmed text is empty
// or another send is still in flight. The network call is the only suspension
// point; every store mutation around it is atomic.
func (o *Orchestrator) Submit(ctx context.Context, text string) bool {
	trimmed := strings.TrimSpace(text)
	if trimmed == "" {
		return false
	}

	pending := Message{
		ID:        NewLocalID(),
		Sender:    SenderUser,
		Text:      trimmed,
		Timestamp: o.now(),
		Status:    StatusPending,
	}
	if err := o.store.BeginSend(pending); err != nil {
		return false
	}

	reply, err := o.sender.Send(ctx, o.token, trimmed)
	if err != nil {
		o.reconcileFailure(pending.ID, trimmed, err)
		return true
	}

	confirmed := Message{
		ID:        NewUserID(),
		Sender:    SenderUser,
		Text:      trimmed,
		Timestamp: o.now(),
		Status:    StatusConfirmed,
	}
	assistant := Message{
		ID:        NewAssistantID(),
		Sender:    SenderAssistant,
		Text:      reply,
		Timestamp: o.now(),
		Status:    StatusConfirmed,
	}
	if err := o.store.ResolveSend(pending.ID, confirmed, assistant); err != nil {
		logging.ErrorLogger.Error("resolve after send", zap.Error(err))
	}
	return true
}

func (o *Orchestrator) reconcileFailure(pendingID, text string, sendErr error) {
	annotation := networkFailureMsg
	var rej *Rejection
	if errors.As(sendErr, &rej) {
		annotation = rej.Error()
		logging.AppLogger.Warn("send rejected", zap.String("msg", annotation))
	} else {
		logging.ErrorLogger.Error("send transport failure", zap.Error(sendErr))
	}
	failed := Message{
		ID:        NewUserID(),
		Sender:    SenderUser,
		Text:      text + " (Error: " + annotation + ")",
		Timestamp: o.now(),
		Status:    StatusFailed,
	}
	if err := o.store.FailSend(pendingID, failed); err != nil {
		logging.ErrorLogger.Error("fail after send", zap.Error(err))
	}
}
