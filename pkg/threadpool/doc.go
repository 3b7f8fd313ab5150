/*
Package threadpool provides an elastic worker pool: a bounded set of
background workers consuming asynchronously submitted tasks from a shared
unbounded queue, growing on demand up to a configurable ceiling and
shrinking back down when idle.

# Overview

The pool is built for callers such as scheduling loops that need to fire
off work without blocking on its execution:

  - Submission never blocks on the queue and never fails
  - Workers are created lazily, only when every live worker is busy
  - The first CoreWorkers workers are persistent; workers beyond that are
    transient and exit after sitting idle for the keepalive duration
  - Task failures (returned errors and panics alike) are isolated, logged
    and reported through an optional callback, never propagated

# Scaling Behavior

On each submission the pool evaluates one predicate under a single lock:
a new worker is started only when all live workers are busy and the pool
is below its ceiling. An unset ceiling (MaxWorkers <= 0) never limits
growth. A ceiling below CoreWorkers is clamped up to it at construction,
never surfaced as an error.

Workers are fire-and-forget goroutines. The pool does not join them, has
no Stop or Close, and their exit never blocks process shutdown.

# Ordering

Tasks handed to one idle worker come out in submission order, but two idle
workers race to dequeue, so there is no global completion order across the
pool.

# Usage

Basic usage:

	pool := threadpool.New(&threadpool.Config{
		CoreWorkers: 2,
		MaxWorkers:  8,
		KeepAlive:   30 * time.Second,
	})

	pool.ExecuteFunc(func(ctx context.Context) error {
		// Execute work
		return nil
	})

Failure reporting:

	pool := threadpool.New(&threadpool.Config{
		ExceptionCallback: func() {
			// notify an external error reporter
		},
	})

Retrieve statistics:

	stats := pool.Stats()
	fmt.Printf("Workers: %d busy / %d total\n", stats.BusyWorkers, stats.TotalWorkers)
	fmt.Printf("Queued: %d\n", stats.QueueDepth)
*/
package threadpool
