//go:build !integration

package app

import (
	"bytes"
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInitializeApp(t *testing.T) {
	tests := []struct {
		name    string
		mode    string
		wantErr bool
	}{
		{name: "compact autosell", mode: "compact"},
		{name: "detailed autosell", mode: "detailed"},
		{name: "invalid autosell mode", mode: "bogus", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := testConfig("http://127.0.0.1:1")
			cfg.Game.AutosellMode = tt.mode

			application, err := InitializeApp(cfg)
			if tt.wantErr {
				assert.Error(t, err)
				assert.Nil(t, application)
				return
			}
			require.NoError(t, err)
			assert.NotNil(t, application.Router)
			assert.NotNil(t, application.Dispatcher)
			assert.Nil(t, application.Database)

			ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			assert.NoError(t, application.Close(ctx))
		})
	}
}

func TestInitializeApp_AutosellThroughRouter(t *testing.T) {
	var forms []string
	game := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_ = r.ParseForm()
		forms = append(forms, r.URL.Path+"?"+r.PostForm.Encode())
		_, _ = w.Write([]byte("You sell your items for 300 Meat."))
	}))
	defer game.Close()

	application, err := InitializeApp(testConfig(game.URL))
	require.NoError(t, err)
	t.Cleanup(func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = application.Close(ctx)
	})

	put := httptest.NewRequest(http.MethodPut, "/api/inventory",
		bytes.NewBufferString(`{"items":[{"item_id":55,"count":2}],"meat":100}`))
	put.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	application.Router.ServeHTTP(w, put)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	sell := httptest.NewRequest(http.MethodPost, "/api/autosell",
		bytes.NewBufferString(`{"items":[{"item_id":55,"count":2}]}`))
	sell.Header.Set("Content-Type", "application/json")
	w = httptest.NewRecorder()
	application.Router.ServeHTTP(w, sell)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	require.Len(t, forms, 1)
	assert.Contains(t, forms[0], "/sellstuff.php?")
	assert.Contains(t, forms[0], "pwd=hash")
	assert.Contains(t, w.Body.String(), `"meat":400`)

	status := httptest.NewRecorder()
	application.Router.ServeHTTP(status, httptest.NewRequest(http.MethodGet, "/api/status", nil))
	assert.Contains(t, status.Body.String(), "Items sold.")
}
