//go:build !integration

package request

import (
	"context"
	"net/http"
	"net/url"
	"sync"

	"github.com/guttosm/kol-client/internal/character"
	"github.com/guttosm/kol-client/internal/domain/model"
	"github.com/guttosm/kol-client/internal/game"
)

type response struct {
	status int
	body   string
	err    error
}

// fakeTransport records every submitted form and answers from a script.
type fakeTransport struct {
	mu      sync.Mutex
	sent    []*fakeForm
	answers []response
	reply   response
}

func newFakeTransport(body string) *fakeTransport {
	return &fakeTransport{reply: response{status: http.StatusOK, body: body}}
}

func (t *fakeTransport) NewRequest(page string) game.FormRequest {
	return &fakeForm{transport: t, page: page, fields: url.Values{}}
}

func (t *fakeTransport) next() response {
	t.mu.Lock()
	defer t.mu.Unlock()
	if len(t.answers) > 0 {
		r := t.answers[0]
		t.answers = t.answers[1:]
		return r
	}
	return t.reply
}

func (t *fakeTransport) record(f *fakeForm) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.sent = append(t.sent, f)
}

func (t *fakeTransport) forms() []*fakeForm {
	t.mu.Lock()
	defer t.mu.Unlock()
	return append([]*fakeForm(nil), t.sent...)
}

type fakeForm struct {
	transport *fakeTransport
	page      string
	fields    url.Values
	status    int
	body      string
}

func (f *fakeForm) AddField(name, value string) { f.fields.Set(name, value) }

func (f *fakeForm) Submit(ctx context.Context) error {
	f.transport.record(f)
	r := f.transport.next()
	if r.err != nil {
		return r.err
	}
	f.status = r.status
	f.body = r.body
	return nil
}

func (f *fakeForm) ResponseStatus() int  { return f.status }
func (f *fakeForm) ResponseBody() string { return f.body }

func (f *fakeForm) has(name string) bool {
	_, ok := f.fields[name]
	return ok
}

type displayCall struct {
	state   model.DisplayState
	message string
}

type recordingDisplay struct {
	mu    sync.Mutex
	calls []displayCall
}

func (d *recordingDisplay) Update(state model.DisplayState, message string) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.calls = append(d.calls, displayCall{state: state, message: message})
}

func newCharacter(mode model.AutosellMode, items ...model.ItemStack) *character.State {
	c := character.NewState(mode)
	c.SetInventory(items)
	return c
}

func newDeps(t game.Transport, c *character.State) Deps {
	return Deps{
		Transport:    t,
		Session:      game.NewSession("hash123"),
		Inventory:    c,
		AutosellMode: c,
		Meat:         c,
	}
}

func stack(id, count int) model.ItemStack {
	return model.NewItemStack(id, count)
}
