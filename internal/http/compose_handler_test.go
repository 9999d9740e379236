package http

import (
	"net/http"
	"testing"
	"time"

	"github.com/guttosm/kol-client/internal/dispatch"
	"github.com/guttosm/kol-client/internal/domain/dto"
	"github.com/guttosm/kol-client/internal/domain/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func waitForTask(t *testing.T, api *testAPI, id string) dispatch.TaskResult {
	t.Helper()

	var result dispatch.TaskResult
	require.Eventually(t, func() bool {
		w := api.do(http.MethodGet, "/api/compose/tasks/"+id, "")
		if w.Code != http.StatusOK {
			return false
		}
		decodeData(t, w, &result)
		return result.State == dispatch.TaskSent || result.State == dispatch.TaskFailed
	}, 5*time.Second, 10*time.Millisecond)
	return result
}

func TestCompose_EditAndSend(t *testing.T) {
	api := newTestAPI(t)
	api.character.SetInventory([]model.ItemStack{model.NewItemStack(1234, 5)})

	w := api.do(http.MethodPut, "/api/compose", `{"recipient":" Jick ","body":"Enjoy the meat!"}`)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	w = api.do(http.MethodPost, "/api/compose/attachments", `{"item_id":1234,"name":"dense meat stack","count":2}`)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	w = api.do(http.MethodPost, "/api/compose/attachments", `{"item_id":1234,"count":1}`)
	require.Equal(t, http.StatusOK, w.Code)

	var view dto.ComposeResponse
	decodeData(t, api.do(http.MethodGet, "/api/compose", ""), &view)
	assert.Equal(t, "Jick", view.Recipient)
	assert.Equal(t, "Enjoy the meat!", view.Body)
	assert.True(t, view.Enabled)
	require.Len(t, view.Attachments, 1)
	assert.Equal(t, 3, view.Attachments[0].Count)
	assert.Equal(t, "dense meat stack (3)", view.AttachmentsLabel)

	w = api.do(http.MethodPost, "/api/compose/send", "")
	require.Equal(t, http.StatusAccepted, w.Code, w.Body.String())

	var queued dto.DispatchResponse
	decodeData(t, w, &queued)
	assert.NotEmpty(t, queued.TaskID)
	assert.Equal(t, "queued", queued.State)

	result := waitForTask(t, api, queued.TaskID)
	assert.Equal(t, dispatch.TaskSent, result.State)
	assert.Equal(t, "Jick", result.Recipient)

	require.Eventually(t, api.composer.Enabled, time.Second, 10*time.Millisecond)
	assert.Equal(t, "Message sent.", api.tracker.Current().Message)
	assert.Equal(t, 2, api.character.Count(model.NewItemStack(1234, 0)))

	pages, forms := api.game.requests()
	require.Equal(t, []string{"sendmessage.php"}, pages)
	assert.Equal(t, []string{"send"}, forms[0]["action"])
	assert.Equal(t, []string{"Jick"}, forms[0]["towho"])
	assert.Equal(t, []string{"Enjoy the meat!"}, forms[0]["message"])
	assert.Equal(t, []string{"1234"}, forms[0]["whichitem1"])
	assert.Equal(t, []string{"3"}, forms[0]["howmany1"])
}

func TestCompose_SendNotConfirmed(t *testing.T) {
	api := newTestAPI(t)
	api.game.mu.Lock()
	api.game.bodies["/sendmessage.php"] = "That player does not exist."
	api.game.mu.Unlock()

	require.Equal(t, http.StatusOK, api.do(http.MethodPut, "/api/compose", `{"recipient":"nobody","body":"hi"}`).Code)

	w := api.do(http.MethodPost, "/api/compose/send", "")
	require.Equal(t, http.StatusAccepted, w.Code)
	var queued dto.DispatchResponse
	decodeData(t, w, &queued)

	result := waitForTask(t, api, queued.TaskID)
	assert.Equal(t, dispatch.TaskFailed, result.State)
	assert.NotEmpty(t, result.Error)

	require.Eventually(t, api.composer.Enabled, time.Second, 10*time.Millisecond)
	assert.Equal(t, "Message not sent.", api.tracker.Current().Message)
}

func TestCompose_Rejections(t *testing.T) {
	tests := []struct {
		name           string
		setup          func(*testAPI)
		method         string
		path           string
		body           string
		expectedStatus int
		expectedCode   string
	}{
		{
			name:           "send without recipient",
			setup:          func(*testAPI) {},
			method:         http.MethodPost,
			path:           "/api/compose/send",
			expectedStatus: http.StatusBadRequest,
			expectedCode:   dto.ErrCodeInvalidRequest,
		},
		{
			name: "send while a send is in progress",
			setup: func(api *testAPI) {
				_ = api.composer.SetText("Jick", "hi")
				api.composer.SetEnabled(false)
			},
			method:         http.MethodPost,
			path:           "/api/compose/send",
			expectedStatus: http.StatusConflict,
			expectedCode:   dto.ErrCodeConflict,
		},
		{
			name:           "edit while disabled",
			setup:          func(api *testAPI) { api.composer.SetEnabled(false) },
			method:         http.MethodPut,
			path:           "/api/compose",
			body:           `{"recipient":"Jick"}`,
			expectedStatus: http.StatusConflict,
			expectedCode:   dto.ErrCodeConflict,
		},
		{
			name:           "attach while disabled",
			setup:          func(api *testAPI) { api.composer.SetEnabled(false) },
			method:         http.MethodPost,
			path:           "/api/compose/attachments",
			body:           `{"item_id":1,"count":1}`,
			expectedStatus: http.StatusConflict,
			expectedCode:   dto.ErrCodeConflict,
		},
		{
			name:           "clear while disabled",
			setup:          func(api *testAPI) { api.composer.SetEnabled(false) },
			method:         http.MethodDelete,
			path:           "/api/compose/attachments",
			expectedStatus: http.StatusConflict,
			expectedCode:   dto.ErrCodeConflict,
		},
		{
			name:           "attach without count",
			setup:          func(*testAPI) {},
			method:         http.MethodPost,
			path:           "/api/compose/attachments",
			body:           `{"item_id":1}`,
			expectedStatus: http.StatusBadRequest,
			expectedCode:   dto.ErrCodeInvalidRequest,
		},
		{
			name:           "unknown task",
			setup:          func(*testAPI) {},
			method:         http.MethodGet,
			path:           "/api/compose/tasks/nope",
			expectedStatus: http.StatusNotFound,
			expectedCode:   dto.ErrCodeNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			api := newTestAPI(t)
			tt.setup(api)

			w := api.do(tt.method, tt.path, tt.body)

			assert.Equal(t, tt.expectedStatus, w.Code, w.Body.String())
			assert.Equal(t, tt.expectedCode, decodeError(t, w).Error)
			pages, _ := api.game.requests()
			assert.Empty(t, pages)
		})
	}
}

func TestCompose_ClearAttachments(t *testing.T) {
	api := newTestAPI(t)
	require.NoError(t, api.composer.Attach(model.NewItemStack(1, 1)))

	w := api.do(http.MethodDelete, "/api/compose/attachments", "")
	require.Equal(t, http.StatusOK, w.Code)

	var view dto.ComposeResponse
	decodeData(t, w, &view)
	assert.Empty(t, view.Attachments)
	assert.Equal(t, "(none)", view.AttachmentsLabel)
}
