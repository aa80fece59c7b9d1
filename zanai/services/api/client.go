// zanai/services/api/client.go
package api

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"zanai/zanai/config"
	"zanai/zanai/session"
	"zanai/zanai/types"
	httputils "zanai/zanai/utils/http"
)

const (
	loginPath = "/api/auth/login"
	sendPath  = "/api/chat/send"

	authHeader = "x-auth-token"
)

// Client talks to the reply service. It implements session.ReplySender.
type Client struct {
	baseURL     string
	httpClient  *http.Client
	sendTimeout time.Duration
}

func NewClient(cfg config.Config) *Client {
	return &Client{
		baseURL:     cfg.APIBaseURL,
		httpClient:  &http.Client{},
		sendTimeout: cfg.SendTimeout,
	}
}

// LoginResult is what a successful login hands the session initializer: an
// opaque token plus the raw history payload for the normalizer.
type LoginResult struct {
	Token   string
	History json.RawMessage
}

// Login exchanges the PIN for a token and the prior history. A 4xx answer
// surfaces as *httputils.StatusError carrying the server message.
func (c *Client) Login(ctx context.Context, pin string) (*LoginResult, error) {
	var resp types.LoginResponse
	err := httputils.PostJSON(ctx, c.httpClient, c.baseURL+loginPath, nil, types.LoginRequest{Pin: pin}, &resp)
	if err != nil {
		return nil, err
	}
	return &LoginResult{Token: resp.Token, History: resp.History}, nil
}

// Send posts one message and returns the reply. The round trip is bounded by
// the configured send timeout; expiry counts as a transport failure. A
// response that indicates failure maps to *session.Rejection so the
// orchestrator can annotate with the server's message.
func (c *Client) Send(ctx context.Context, token, text string) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, c.sendTimeout)
	defer cancel()

	var resp types.SendResponse
	headers := map[string]string{authHeader: token}
	err := httputils.PostJSON(ctx, c.httpClient, c.baseURL+sendPath, headers, types.SendRequest{Message: text}, &resp)
	if err != nil {
		var statusErr *httputils.StatusError
		if errors.As(err, &statusErr) {
			return "", &session.Rejection{Msg: statusErr.Msg}
		}
		return "", err
	}
	return resp.Reply, nil
}
