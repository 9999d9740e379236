// Package dispatch sends composed messages in the background while keeping
// the input surface locked for the duration of each send.
package dispatch

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"github.com/google/uuid"
	"github.com/guttosm/kol-client/internal/domain/model"
	"github.com/guttosm/kol-client/internal/metrics"
	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"
)

var (
	// ErrQueueFull is returned by Trigger when no task slot is free.
	ErrQueueFull = errors.New("dispatch queue is full")
	// ErrClosed is returned by Trigger after Close.
	ErrClosed = errors.New("dispatcher is closed")
	// ErrTaskNotFound is returned for unknown or evicted task ids.
	ErrTaskNotFound = errors.New("dispatch task not found")
)

// maxTracked bounds how many finished task results are remembered.
const maxTracked = 256

// InputSurface is the editable message the user composes.
type InputSurface interface {
	SetEnabled(enabled bool)
	Message() model.GreenMessage
}

// Sender delivers a message.
type Sender interface {
	Send(ctx context.Context, msg model.GreenMessage) error
}

// Display receives status lines for the user.
type Display interface {
	Update(state model.DisplayState, message string)
}

// Config holds the worker pool settings.
type Config struct {
	// Workers is the number of goroutines sending messages.
	Workers int
	// QueueSize is how many triggered sends may wait for a worker.
	QueueSize int
	// SendTimeout bounds a single send, 0 for none.
	SendTimeout time.Duration
}

// DefaultConfig returns the default worker pool settings.
func DefaultConfig() Config {
	return Config{
		Workers:     2,
		QueueSize:   16,
		SendTimeout: time.Minute,
	}
}

type task struct {
	id    string
	msg   model.GreenMessage
	guard *inputGuard
}

// Dispatcher runs message sends on a worker pool.
type Dispatcher struct {
	surface InputSurface
	sender  Sender
	display Display
	timeout time.Duration

	tasks  chan task
	group  *errgroup.Group
	ctx    context.Context
	cancel context.CancelFunc

	mu      sync.Mutex
	closed  bool
	results map[string]*TaskResult
	order   []string

	triggered int64
	sent      int64
	failed    int64
	rejected  int64
}

// New starts a Dispatcher. display may be nil.
func New(surface InputSurface, sender Sender, display Display, cfg Config) *Dispatcher {
	if cfg.Workers <= 0 {
		cfg.Workers = 1
	}
	if cfg.QueueSize < 0 {
		cfg.QueueSize = 0
	}

	ctx, cancel := context.WithCancel(context.Background())
	group, gctx := errgroup.WithContext(ctx)

	d := &Dispatcher{
		surface: surface,
		sender:  sender,
		display: display,
		timeout: cfg.SendTimeout,
		tasks:   make(chan task, cfg.QueueSize),
		group:   group,
		ctx:     gctx,
		cancel:  cancel,
		results: make(map[string]*TaskResult),
	}

	for i := 0; i < cfg.Workers; i++ {
		group.Go(d.worker)
	}
	return d
}

// Trigger locks the input surface, snapshots the message and queues it for
// sending. It returns the task id without waiting for the send.
func (d *Dispatcher) Trigger() (string, error) {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.closed {
		return "", ErrClosed
	}

	guard := disableInput(d.surface)
	t := task{id: uuid.NewString(), msg: d.surface.Message(), guard: guard}

	select {
	case d.tasks <- t:
	default:
		guard.Release()
		atomic.AddInt64(&d.rejected, 1)
		metrics.RecordMessageDispatch("rejected")
		return "", ErrQueueFull
	}

	atomic.AddInt64(&d.triggered, 1)
	d.track(&TaskResult{ID: t.id, Recipient: t.msg.Recipient, State: TaskQueued, QueuedAt: time.Now()})
	metrics.SetDispatchQueueDepth(len(d.tasks))

	log.Info().
		Str("task_id", t.id).
		Str("recipient", t.msg.Recipient).
		Int("attachments", len(t.msg.Attachments)).
		Msg("Message send queued")
	return t.id, nil
}

func (d *Dispatcher) worker() error {
	for t := range d.tasks {
		metrics.SetDispatchQueueDepth(len(d.tasks))
		d.run(t)
	}
	return nil
}

func (d *Dispatcher) run(t task) {
	defer t.guard.Release()

	d.setState(t.id, TaskRunning, nil)
	d.notify(model.DisableState, "Sending message...")

	err := d.send(t)
	if err != nil {
		atomic.AddInt64(&d.failed, 1)
		metrics.RecordMessageDispatch("failed")
		d.setState(t.id, TaskFailed, err)
		d.notify(model.NormalState, "Message not sent.")
		log.Error().Err(err).Str("task_id", t.id).Msg("Message send failed")
		return
	}

	atomic.AddInt64(&d.sent, 1)
	metrics.RecordMessageDispatch("sent")
	d.setState(t.id, TaskSent, nil)
	d.notify(model.NormalState, "Message sent.")
}

// send runs the sender, turning a panic into an error so the worker survives.
func (d *Dispatcher) send(t task) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("panic while sending: %v", r)
		}
	}()

	ctx := d.ctx
	if d.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, d.timeout)
		defer cancel()
	}
	return d.sender.Send(ctx, t.msg)
}

func (d *Dispatcher) notify(state model.DisplayState, message string) {
	if d.display != nil {
		d.display.Update(state, message)
	}
}

// Close stops accepting triggers and waits for queued sends to finish. If ctx
// ends first, in-flight sends are cancelled and ctx's error is returned.
func (d *Dispatcher) Close(ctx context.Context) error {
	d.mu.Lock()
	if d.closed {
		d.mu.Unlock()
		return nil
	}
	d.closed = true
	close(d.tasks)
	d.mu.Unlock()

	done := make(chan error, 1)
	go func() {
		done <- d.group.Wait()
	}()

	select {
	case err := <-done:
		d.cancel()
		return err
	case <-ctx.Done():
		d.cancel()
		<-done
		return ctx.Err()
	}
}

// Stats returns dispatcher counters.
func (d *Dispatcher) Stats() (triggered, sent, failed, rejected int64) {
	return atomic.LoadInt64(&d.triggered),
		atomic.LoadInt64(&d.sent),
		atomic.LoadInt64(&d.failed),
		atomic.LoadInt64(&d.rejected)
}
