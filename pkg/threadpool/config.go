package threadpool

import (
	"log/slog"
	"time"

	"github.com/goschedule/threadpool/pkg/types"
)

// DefaultKeepAlive is how long an idle transient worker waits for new work
// before exiting when no keepalive is configured explicitly.
const DefaultKeepAlive = time.Second

// Config contains configuration for the thread pool. The zero value is
// usable: no core workers, no ceiling, and transient workers that exit as
// soon as they find the queue empty.
type Config struct {
	// CoreWorkers is the number of persistent workers. The first
	// CoreWorkers workers ever created never exit; negative values are
	// treated as 0.
	CoreWorkers int

	// MaxWorkers is the ceiling on live workers. A value <= 0 means
	// unbounded. When set, it is clamped up to at least CoreWorkers and
	// at least 1, never surfaced as an error.
	MaxWorkers int

	// KeepAlive is how long an idle transient worker waits for new work
	// before exiting. A non-positive value makes transient workers check
	// the queue once and exit immediately when it is empty.
	KeepAlive time.Duration

	// ExceptionCallback, when set, is invoked once per failed task, on
	// the worker goroutine that ran it.
	ExceptionCallback func()

	// Logger receives the pool's construction, worker lifecycle and task
	// failure logs (optional, defaults to slog.Default)
	Logger *slog.Logger

	// Clock for time operations (optional, defaults to real clock)
	Clock types.Clock
}

// DefaultConfig returns default configuration
func DefaultConfig() *Config {
	return &Config{
		CoreWorkers: 0,
		MaxWorkers:  0,
		KeepAlive:   DefaultKeepAlive,
	}
}

// normalized copies cfg and corrects inconsistent values by clamping.
// Configuration problems are never surfaced as errors.
func normalized(cfg *Config) Config {
	if cfg == nil {
		cfg = DefaultConfig()
	}
	c := *cfg

	if c.CoreWorkers < 0 {
		c.CoreWorkers = 0
	}
	if c.MaxWorkers > 0 && c.MaxWorkers < c.CoreWorkers {
		c.MaxWorkers = c.CoreWorkers
	}
	if c.MaxWorkers < 0 {
		c.MaxWorkers = 0
	}
	if c.Logger == nil {
		c.Logger = slog.Default()
	}
	if c.Clock == nil {
		c.Clock = types.NewRealClock()
	}
	return c
}
