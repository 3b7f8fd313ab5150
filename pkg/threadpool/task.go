package threadpool

import (
	"context"
	"fmt"
	"sync/atomic"
)

// taskIDCounter is the global task ID counter
var taskIDCounter int64

// FuncTask wraps a plain function as a types.Task.
type FuncTask struct {
	id string
	fn func(ctx context.Context) error
}

// NewTask creates a task with a generated ID
func NewTask(fn func(ctx context.Context) error) *FuncTask {
	id := atomic.AddInt64(&taskIDCounter, 1)
	return &FuncTask{
		id: fmt.Sprintf("task-%d", id),
		fn: fn,
	}
}

// NewTaskWithID creates a task with a custom ID
func NewTaskWithID(id string, fn func(ctx context.Context) error) *FuncTask {
	return &FuncTask{
		id: id,
		fn: fn,
	}
}

// Execute executes the task
func (t *FuncTask) Execute(ctx context.Context) error {
	if t.fn == nil {
		return fmt.Errorf("task %s has no execution function", t.id)
	}
	return t.fn(ctx)
}

// ID returns the task ID
func (t *FuncTask) ID() string {
	return t.id
}
