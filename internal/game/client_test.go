//go:build !integration

package game

import (
	"bytes"
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/guttosm/kol-client/internal/circuitbreaker"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewClient_RejectsRelativeURL(t *testing.T) {
	_, err := NewClient(ClientConfig{BaseURL: "not-a-url"})
	assert.Error(t, err)
}

func TestRequest_Submit(t *testing.T) {
	var gotPath, gotCookie, gotAgent string
	var gotForm map[string][]string

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotAgent = r.UserAgent()
		if c, err := r.Cookie(SessionCookieName); err == nil {
			gotCookie = c.Value
		}
		require.NoError(t, r.ParseForm())
		gotForm = r.PostForm
		_, _ = w.Write([]byte("You sold your items for 1,234 Meat."))
	}))
	defer server.Close()

	client, err := NewClient(ClientConfig{
		BaseURL:       server.URL,
		SessionCookie: "session-1",
		UserAgent:     "kol-client/test",
		Timeout:       time.Second,
	})
	require.NoError(t, err)

	req := client.NewRequest("sellstuff.php")
	req.AddField("action", "sell")
	req.AddField("item42", "42")
	req.AddField("action", "sell")

	require.NoError(t, req.Submit(context.Background()))

	assert.Equal(t, "/sellstuff.php", gotPath)
	assert.Equal(t, "session-1", gotCookie)
	assert.Equal(t, "kol-client/test", gotAgent)
	assert.Equal(t, []string{"sell"}, gotForm["action"])
	assert.Equal(t, []string{"42"}, gotForm["item42"])
	assert.Equal(t, http.StatusOK, req.ResponseStatus())
	assert.Contains(t, req.ResponseBody(), "1,234 Meat")

	fielder, ok := req.(Fielder)
	require.True(t, ok)
	assert.Equal(t, "sellstuff.php", fielder.Page())
	assert.Equal(t, "42", fielder.Fields().Get("item42"))
}

func TestRequest_SubmitServerFault(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer server.Close()

	cb := circuitbreaker.New(circuitbreaker.Config{FailureThreshold: 1, SuccessThreshold: 1, Timeout: time.Minute, Name: "game"})
	client, err := NewClient(ClientConfig{BaseURL: server.URL}, WithCircuitBreaker(cb))
	require.NoError(t, err)

	req := client.NewRequest("managestore.php")
	err = req.Submit(context.Background())

	assert.NoError(t, err)
	assert.Equal(t, http.StatusBadGateway, req.ResponseStatus())
	assert.Equal(t, circuitbreaker.StateOpen, cb.State())

	again := client.NewRequest("managestore.php")
	err = again.Submit(context.Background())
	assert.ErrorIs(t, err, circuitbreaker.ErrCircuitOpen)
	assert.Equal(t, 0, again.ResponseStatus())
}

func TestRequest_SubmitTransportError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	url := server.URL
	server.Close()

	client, err := NewClient(ClientConfig{BaseURL: url, Timeout: time.Second})
	require.NoError(t, err)

	req := client.NewRequest("sendmessage.php")
	err = req.Submit(context.Background())

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "submit sendmessage.php")
	assert.Equal(t, 0, req.ResponseStatus())
	assert.Empty(t, req.ResponseBody())
}

func TestSession_PasswordHash(t *testing.T) {
	assert.Equal(t, "abc", NewSession("abc").PasswordHash())
}

func TestReadBody(t *testing.T) {
	tests := []struct {
		name          string
		input         string
		limit         int64
		expectedBody  string
		expectedTrunc bool
	}{
		{name: "shorter than limit", input: "abc", limit: 5, expectedBody: "abc"},
		{name: "exactly the limit", input: "abcde", limit: 5, expectedBody: "abcde"},
		{name: "longer than limit", input: "abcdefgh", limit: 5, expectedBody: "abcde", expectedTrunc: true},
		{name: "empty", input: "", limit: 5, expectedBody: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			body, truncated, err := readBody(strings.NewReader(tt.input), tt.limit)

			require.NoError(t, err)
			assert.Equal(t, tt.expectedBody, string(body))
			assert.Equal(t, tt.expectedTrunc, truncated)
		})
	}
}

func TestRequest_SubmitLogsTruncatedBody(t *testing.T) {
	var buf bytes.Buffer
	previous := log.Logger
	log.Logger = zerolog.New(&buf)
	t.Cleanup(func() { log.Logger = previous })

	page := strings.Repeat("<tr>", maxBodySize/4+8)
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(page))
	}))
	defer server.Close()

	client, err := NewClient(ClientConfig{BaseURL: server.URL, Timeout: 5 * time.Second})
	require.NoError(t, err)

	req := client.NewRequest("managestore.php")
	require.NoError(t, req.Submit(context.Background()))

	assert.Len(t, req.ResponseBody(), maxBodySize)
	assert.Contains(t, buf.String(), "Game response truncated")
	assert.Contains(t, buf.String(), `"page":"managestore.php"`)
}
