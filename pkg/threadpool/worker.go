package threadpool

import (
	"context"
	"errors"
	"fmt"
	"runtime"
	"time"

	"github.com/goschedule/threadpool/pkg/types"
)

// worker is the body of one pool goroutine. Identity is aggregate-only as
// far as the pool is concerned; the id exists for logs and error context.
type worker struct {
	pool *Pool
	id   int
	core bool
}

// run is the worker loop: pull a task, execute it, isolate failures, repeat.
// Core workers block on the queue indefinitely and never exit. Transient
// workers exit once a queue wait passes the keepalive without a task.
func (w *worker) run() {
	w.pool.log.Debug("worker started", "worker", w.id, "core", w.core)

	for {
		task, ok := w.pool.queue.get(w.idleTimeout())
		if !ok {
			break
		}

		w.pool.markBusy(1)
		if err := w.invoke(task); err != nil {
			w.reportFailure(task, err)
		}
		w.pool.markBusy(-1)
	}

	w.pool.workerExited()
	w.pool.log.Debug("worker exiting", "worker", w.id, "core", w.core)
}

// idleTimeout returns the queue wait for this worker: forever for core
// workers, keepalive for transient ones, and a single non-blocking check
// when keepalive is not positive.
func (w *worker) idleTimeout() time.Duration {
	if w.core {
		return -1
	}
	if w.pool.cfg.KeepAlive <= 0 {
		return 0
	}
	return w.pool.cfg.KeepAlive
}

// invoke executes a task with panic recovery support. Panics are converted
// into a *types.TaskError carrying the stack trace, so the loop handles a
// panicking task and an error-returning one through the same branch.
func (w *worker) invoke(task types.Task) (err error) {
	defer func() {
		if r := recover(); r != nil {
			var buf [4096]byte
			n := runtime.Stack(buf[:], false)

			switch v := r.(type) {
			case error:
				err = types.NewTaskError(task.ID(), v)
			case string:
				err = types.NewTaskError(task.ID(), fmt.Errorf("panic: %s", v))
			default:
				err = types.NewTaskError(task.ID(), fmt.Errorf("panic: %v", v))
			}

			if te, ok := err.(*types.TaskError); ok {
				te.WithContext("stack_trace", string(buf[:n]))
				te.WithContext("worker_id", w.id)
			}
		}
	}()

	return task.Execute(context.Background())
}

// reportFailure logs a failed task with its diagnostic context and fires
// the exception callback once. Failures never propagate past this point;
// the worker returns to waiting regardless of task outcome.
func (w *worker) reportFailure(task types.Task, err error) {
	attrs := []any{"task", task.ID(), "worker", w.id, "error", err}

	var te *types.TaskError
	if errors.As(err, &te) {
		if stack, ok := te.Context["stack_trace"].(string); ok {
			attrs = append(attrs, "stack", stack)
		}
	}
	w.pool.log.Error("task execution failed", attrs...)

	if w.pool.cfg.ExceptionCallback != nil {
		w.pool.cfg.ExceptionCallback()
	}
}
