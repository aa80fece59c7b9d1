// zanai/utils/http/httputils.go
package httputils

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
)

// StatusError is a non-2xx endpoint answer. Msg is the server-provided
// message body when one could be decoded.
type StatusError struct {
	StatusCode int
	Msg        string
}

func (e *StatusError) Error() string {
	if e.Msg == "" {
		return fmt.Sprintf("bad status: %d", e.StatusCode)
	}
	return fmt.Sprintf("bad status: %d: %s", e.StatusCode, e.Msg)
}

// PostJSON posts body as JSON and decodes the 200 response into resp. A
// non-2xx status decodes the {msg} error body into a *StatusError; any other
// failure (dial, read, parse) comes back as the underlying error.
func PostJSON(ctx context.Context, client *http.Client, url string, headers map[string]string, body, resp interface{}) error {
	jsonBody, err := json.Marshal(body)
	if err != nil {
		return err
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(jsonBody))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	for k, v := range headers {
		req.Header.Set(k, v)
	}
	if client == nil {
		client = http.DefaultClient
	}
	r, err := client.Do(req)
	if err != nil {
		return err
	}
	defer r.Body.Close()
	if r.StatusCode < 200 || r.StatusCode > 299 {
		var errBody struct {
			Msg string `json:"msg"`
		}
		_ = json.NewDecoder(r.Body).Decode(&errBody)
		return &StatusError{StatusCode: r.StatusCode, Msg: errBody.Msg}
	}
	if resp != nil {
		return json.NewDecoder(r.Body).Decode(resp)
	}
	return nil
}
