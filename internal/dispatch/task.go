package dispatch

import "time"

// TaskState is the lifecycle stage of a queued send.
type TaskState string

const (
	TaskQueued  TaskState = "queued"
	TaskRunning TaskState = "running"
	TaskSent    TaskState = "sent"
	TaskFailed  TaskState = "failed"
)

// TaskResult describes a triggered send.
type TaskResult struct {
	ID         string    `json:"id"`
	Recipient  string    `json:"recipient"`
	State      TaskState `json:"state"`
	Error      string    `json:"error,omitempty"`
	QueuedAt   time.Time `json:"queued_at"`
	FinishedAt time.Time `json:"finished_at,omitempty"`
}

// Task returns the result of task id.
func (d *Dispatcher) Task(id string) (TaskResult, error) {
	d.mu.Lock()
	defer d.mu.Unlock()

	r, ok := d.results[id]
	if !ok {
		return TaskResult{}, ErrTaskNotFound
	}
	return *r, nil
}

// track must be called with mu held.
func (d *Dispatcher) track(r *TaskResult) {
	d.results[r.ID] = r
	d.order = append(d.order, r.ID)
	for len(d.order) > maxTracked {
		delete(d.results, d.order[0])
		d.order = d.order[1:]
	}
}

func (d *Dispatcher) setState(id string, state TaskState, err error) {
	d.mu.Lock()
	defer d.mu.Unlock()

	r, ok := d.results[id]
	if !ok {
		return
	}
	r.State = state
	if err != nil {
		r.Error = err.Error()
	}
	if state == TaskSent || state == TaskFailed {
		r.FinishedAt = time.Now()
	}
}
