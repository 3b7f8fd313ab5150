package threadpool

import (
	"sync"
	"time"

	"github.com/goschedule/threadpool/pkg/types"
)

// taskQueue is an unbounded FIFO with direct hand-off to blocked getters.
// It is synchronized independently of the pool's counter lock: put and get
// never touch pool state.
type taskQueue struct {
	clock types.Clock

	mu      sync.Mutex
	items   []types.Task
	waiters []chan types.Task
}

func newTaskQueue(clock types.Clock) *taskQueue {
	return &taskQueue{clock: clock}
}

// put appends t to the tail, or hands it directly to the longest-waiting
// getter. It never blocks and never fails.
func (q *taskQueue) put(t types.Task) {
	q.mu.Lock()
	defer q.mu.Unlock()

	if len(q.waiters) > 0 {
		w := q.waiters[0]
		q.waiters = q.waiters[1:]
		// cap-1 channel, each waiter is delivered to at most once
		w <- t
		return
	}
	q.items = append(q.items, t)
}

// get removes and returns the queue head. timeout < 0 blocks until a task
// arrives; timeout == 0 checks once without blocking; timeout > 0 waits up
// to that long. ok is false when no task was delivered.
func (q *taskQueue) get(timeout time.Duration) (types.Task, bool) {
	q.mu.Lock()
	if len(q.items) > 0 {
		t := q.items[0]
		q.items = q.items[1:]
		q.mu.Unlock()
		return t, true
	}
	if timeout == 0 {
		q.mu.Unlock()
		return nil, false
	}

	w := make(chan types.Task, 1)
	q.waiters = append(q.waiters, w)
	q.mu.Unlock()

	if timeout < 0 {
		return <-w, true
	}

	timer := q.clock.NewTimer(timeout)
	defer timer.Stop()

	select {
	case t := <-w:
		return t, true
	case <-timer.C():
		return q.abandon(w)
	}
}

// abandon withdraws w from the waiter list after a timeout. A put may have
// handed a task to w in the meantime; that task wins over the timeout.
func (q *taskQueue) abandon(w chan types.Task) (types.Task, bool) {
	q.mu.Lock()
	for i, other := range q.waiters {
		if other == w {
			q.waiters = append(q.waiters[:i], q.waiters[i+1:]...)
			break
		}
	}
	q.mu.Unlock()

	select {
	case t := <-w:
		return t, true
	default:
		return nil, false
	}
}

// depth reports the number of queued tasks not yet claimed by a worker.
func (q *taskQueue) depth() int {
	q.mu.Lock()
	defer q.mu.Unlock()
	return len(q.items)
}
