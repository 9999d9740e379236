package http

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/guttosm/kol-client/internal/character"
	"github.com/guttosm/kol-client/internal/circuitbreaker"
	"github.com/guttosm/kol-client/internal/compose"
	"github.com/guttosm/kol-client/internal/dispatch"
	"github.com/guttosm/kol-client/internal/domain/dto"
	"github.com/guttosm/kol-client/internal/domain/model"
	"github.com/guttosm/kol-client/internal/game"
	"github.com/guttosm/kol-client/internal/repository"
	"github.com/guttosm/kol-client/internal/request"
	"github.com/guttosm/kol-client/internal/status"
	"github.com/guttosm/kol-client/internal/store"
	"github.com/stretchr/testify/require"
)

func init() {
	gin.SetMode(gin.TestMode)
}

// gameServer stands in for the game: it records every form and answers each
// page with a fixed status and body.
type gameServer struct {
	mu     sync.Mutex
	status int
	bodies map[string]string
	forms  []url.Values
	pages  []string
}

func (g *gameServer) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	_ = r.ParseForm()

	g.mu.Lock()
	g.forms = append(g.forms, r.PostForm)
	g.pages = append(g.pages, strings.TrimPrefix(r.URL.Path, "/"))
	status, body := g.status, g.bodies[r.URL.Path]
	g.mu.Unlock()

	w.WriteHeader(status)
	_, _ = w.Write([]byte(body))
}

func (g *gameServer) respond(status int) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.status = status
}

func (g *gameServer) requests() ([]string, []url.Values) {
	g.mu.Lock()
	defer g.mu.Unlock()
	return append([]string(nil), g.pages...), append([]url.Values(nil), g.forms...)
}

type testAPI struct {
	router     *gin.Engine
	game       *gameServer
	character  *character.State
	composer   *compose.Composer
	dispatcher *dispatch.Dispatcher
	tracker    *status.Tracker
	breaker    *circuitbreaker.CircuitBreaker
	health     *HealthHandler
}

func newTestAPI(t *testing.T) *testAPI {
	t.Helper()
	return newTestAPIWithStore(t, repository.NewMemorySnapshotRepository(8))
}

// newTestAPIWithStore wires the API with snapshots persisted to repo.
func newTestAPIWithStore(t *testing.T, repo repository.SnapshotRepository) *testAPI {
	t.Helper()

	gs := &gameServer{
		status: http.StatusOK,
		bodies: map[string]string{
			"/sellstuff.php":      "You sell your items for 1,234 Meat.",
			"/sellstuff_ugly.php": "You sell your items for 50 meat.",
			"/managestore.php":    `<table><tr><td><a href="x?whichitem=1">x</a></td></tr></table>`,
			"/sendmessage.php":    "Message sent.",
		},
	}
	srv := httptest.NewServer(gs)
	t.Cleanup(srv.Close)

	breaker := circuitbreaker.New(circuitbreaker.Config{
		Name:             "game",
		FailureThreshold: 1,
		SuccessThreshold: 1,
		Timeout:          time.Hour,
	})
	client, err := game.NewClient(game.ClientConfig{BaseURL: srv.URL, Timeout: 5 * time.Second}, game.WithCircuitBreaker(breaker))
	require.NoError(t, err)

	char := character.NewState(model.AutosellCompact)
	tracker := status.NewTracker()
	composer := compose.NewComposer("")
	stores := store.NewManager(repo)

	deps := request.Deps{
		Transport:    client,
		Session:      game.NewSession("hash"),
		Inventory:    char,
		AutosellMode: char,
		Meat:         char,
		Listings:     stores,
		Display:      tracker,
	}

	dispatcher := dispatch.New(composer, request.NewMessenger(deps), tracker, dispatch.Config{
		Workers:     1,
		QueueSize:   4,
		SendTimeout: 5 * time.Second,
	})
	t.Cleanup(func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = dispatcher.Close(ctx)
	})

	handler := NewHandler(Services{
		Sell:       deps,
		Character:  char,
		Composer:   composer,
		Dispatcher: dispatcher,
		Status:     tracker,
		Store:      stores,
	})

	health := NewHealthHandler()
	health.RegisterCircuitBreaker("game", breaker)

	return &testAPI{
		router:     NewRouter(handler, health, DefaultRouterConfig()),
		game:       gs,
		character:  char,
		composer:   composer,
		dispatcher: dispatcher,
		tracker:    tracker,
		breaker:    breaker,
		health:     health,
	}
}

func (a *testAPI) do(method, path, body string, headers ...string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, bytes.NewBufferString(body))
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	for i := 0; i+1 < len(headers); i += 2 {
		req.Header.Set(headers[i], headers[i+1])
	}
	w := httptest.NewRecorder()
	a.router.ServeHTTP(w, req)
	return w
}

// decodeData unmarshals the data field of a SuccessResponse into v.
func decodeData(t *testing.T, w *httptest.ResponseRecorder, v interface{}) {
	t.Helper()
	var resp struct {
		Data      json.RawMessage `json:"data"`
		RequestID string          `json:"request_id"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp), w.Body.String())
	require.NotEmpty(t, resp.RequestID)
	require.NoError(t, json.Unmarshal(resp.Data, v))
}

func decodeError(t *testing.T, w *httptest.ResponseRecorder) dto.ErrorResponse {
	t.Helper()
	var resp dto.ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp), w.Body.String())
	return resp
}
