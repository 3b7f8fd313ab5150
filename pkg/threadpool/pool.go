package threadpool

import (
	"context"
	"log/slog"
	"strconv"
	"sync"

	"github.com/goschedule/threadpool/pkg/types"
)

// Pool is an elastic worker pool. Workers are created lazily on submission,
// grow up to the configured ceiling while all existing workers are busy, and
// transient workers exit again after sitting idle for the keepalive duration.
//
// Workers are unsupervised background goroutines: the pool never joins or
// waits on them and has no shutdown of its own.
type Pool struct {
	cfg   Config
	queue *taskQueue
	log   *slog.Logger

	// mu guards the three counters below. The saturation check in Execute
	// reads total and busy together, so they share one lock rather than
	// being independent atomics.
	mu      sync.Mutex
	total   int // live workers, core and transient
	busy    int // workers currently executing a task
	created int // workers ever created, determines the core flag
}

// New creates a thread pool. It never fails: inconsistent configuration is
// corrected by clamping (a ceiling below CoreWorkers is raised to it), and a
// nil config selects DefaultConfig.
func New(cfg *Config) *Pool {
	c := normalized(cfg)

	p := &Pool{
		cfg:   c,
		queue: newTaskQueue(c.Clock),
		log:   c.Logger,
	}

	maxLabel := "unlimited"
	if c.MaxWorkers > 0 {
		maxLabel = strconv.Itoa(c.MaxWorkers)
	}
	p.log.Info("started thread pool",
		"core_workers", c.CoreWorkers,
		"max_workers", maxLabel)

	return p
}

// Execute submits task for asynchronous execution. It never blocks on the
// queue and never fails; the only wait is a brief one for the counter lock.
// A nil task is ignored.
func (p *Pool) Execute(task types.Task) {
	if task == nil {
		return
	}

	p.mu.Lock()
	if p.shouldSpawnLocked() {
		p.spawnLocked()
	}
	p.mu.Unlock()

	p.queue.put(task)
}

// ExecuteFunc submits fn wrapped as a task with a generated ID.
func (p *Pool) ExecuteFunc(fn func(ctx context.Context) error) {
	p.Execute(NewTask(fn))
}

// shouldSpawnLocked is the spawn predicate, evaluated under mu on every
// submission: a worker is started only when every live worker is busy and
// the pool is below its ceiling. An unset ceiling never limits growth, and
// an idle worker always absorbs the submission instead of a new one.
func (p *Pool) shouldSpawnLocked() bool {
	if p.busy != p.total {
		return false
	}
	return p.cfg.MaxWorkers <= 0 || p.total < p.cfg.MaxWorkers
}

// spawnLocked accounts for a new worker and launches it. The counter is
// incremented here, under mu; the worker itself never repeats it.
func (p *Pool) spawnLocked() {
	w := &worker{
		pool: p,
		id:   p.created,
		core: p.created < p.cfg.CoreWorkers,
	}
	p.created++
	p.total++
	go w.run()
}

// markBusy adjusts the busy-worker count by delta.
func (p *Pool) markBusy(delta int) {
	p.mu.Lock()
	p.busy += delta
	p.mu.Unlock()
}

// workerExited accounts for a transient worker that timed out idle.
func (p *Pool) workerExited() {
	p.mu.Lock()
	p.total--
	p.mu.Unlock()
}
