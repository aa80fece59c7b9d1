package routes

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"zanai/zanai/config"
	"zanai/zanai/controllers"
	"zanai/zanai/sources/memory"
	"zanai/zanai/types"
)

func newTestRouter() http.Handler {
	cfg := config.Config{Pin: "123456", JWTSecret: "test-secret"}
	history := memory.NewHistoryStore()
	history.Append("assistant", "Welcome back!")

	r := chi.NewRouter()
	r.Mount("/api/auth", AuthRoutes(controllers.NewAuthController(history, cfg)))
	r.Mount("/api/chat", ChatRoutes(controllers.NewChatController(history), cfg))
	return r
}

func postJSON(t *testing.T, handler http.Handler, path, token string, body any) *httptest.ResponseRecorder {
	t.Helper()
	payload, err := json.Marshal(body)
	require.NoError(t, err)
	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("x-auth-token", token)
	}
	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, req)
	return rr
}

func login(t *testing.T, handler http.Handler, pin string) (*httptest.ResponseRecorder, types.LoginResponse) {
	t.Helper()
	rr := postJSON(t, handler, "/api/auth/login", "", types.LoginRequest{Pin: pin})
	var resp types.LoginResponse
	if rr.Code == http.StatusOK {
		require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
	}
	return rr, resp
}

func TestLogin_WrongPin(t *testing.T) {
	handler := newTestRouter()

	rr, _ := login(t, handler, "999999")
	assert.Equal(t, http.StatusBadRequest, rr.Code)

	var errResp types.ErrorResponse
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &errResp))
	assert.Equal(t, "Invalid PIN", errResp.Msg)
}

func TestLogin_MalformedPinRejectedBeforeComparison(t *testing.T) {
	handler := newTestRouter()

	rr, _ := login(t, handler, "12345")
	assert.Equal(t, http.StatusBadRequest, rr.Code)
}

func TestLogin_SuccessReturnsTokenAndHistory(t *testing.T) {
	handler := newTestRouter()

	rr, resp := login(t, handler, "123456")
	require.Equal(t, http.StatusOK, rr.Code)
	assert.NotEmpty(t, resp.Token)

	var history []types.HistoryRecord
	require.NoError(t, json.Unmarshal(resp.History, &history))
	require.Len(t, history, 1)
	assert.Equal(t, "Welcome back!", history[0].Text)
}

func TestSend_WithoutTokenIsUnauthorized(t *testing.T) {
	handler := newTestRouter()

	rr := postJSON(t, handler, "/api/chat/send", "", types.SendRequest{Message: "Hello"})
	assert.Equal(t, http.StatusUnauthorized, rr.Code)
}

func TestSend_WithBadTokenIsUnauthorized(t *testing.T) {
	handler := newTestRouter()

	rr := postJSON(t, handler, "/api/chat/send", "not-a-jwt", types.SendRequest{Message: "Hello"})
	assert.Equal(t, http.StatusUnauthorized, rr.Code)

	var errResp types.ErrorResponse
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &errResp))
	assert.Equal(t, "Token is not valid", errResp.Msg)
}

func TestSend_ReturnsReplyAndGrowsHistory(t *testing.T) {
	handler := newTestRouter()
	rr, loginResp := login(t, handler, "123456")
	require.Equal(t, http.StatusOK, rr.Code)

	sendRR := postJSON(t, handler, "/api/chat/send", loginResp.Token, types.SendRequest{Message: "Hello"})
	require.Equal(t, http.StatusOK, sendRR.Code)

	var sendResp types.SendResponse
	require.NoError(t, json.Unmarshal(sendRR.Body.Bytes(), &sendResp))
	assert.NotEmpty(t, sendResp.Reply)

	// A fresh login now sees the user message and the reply.
	rr2, loginResp2 := login(t, handler, "123456")
	require.Equal(t, http.StatusOK, rr2.Code)
	var history []types.HistoryRecord
	require.NoError(t, json.Unmarshal(loginResp2.History, &history))
	require.Len(t, history, 3)
	assert.Equal(t, "user", history[1].From)
	assert.Equal(t, "Hello", history[1].Text)
	assert.Equal(t, "assistant", history[2].From)
	assert.Equal(t, sendResp.Reply, history[2].Text)
}

func TestSend_EmptyMessage(t *testing.T) {
	handler := newTestRouter()
	rr, loginResp := login(t, handler, "123456")
	require.Equal(t, http.StatusOK, rr.Code)

	sendRR := postJSON(t, handler, "/api/chat/send", loginResp.Token, types.SendRequest{Message: "   "})
	assert.Equal(t, http.StatusBadRequest, sendRR.Code)

	var errResp types.ErrorResponse
	require.NoError(t, json.Unmarshal(sendRR.Body.Bytes(), &errResp))
	assert.Equal(t, "Message is required", errResp.Msg)
}
