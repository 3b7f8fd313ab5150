package threadpool

// Stats is a point-in-time snapshot of pool state.
type Stats struct {
	// TotalWorkers is the number of live workers, core and transient
	TotalWorkers int

	// BusyWorkers is the number of workers currently executing a task
	BusyWorkers int

	// CoreWorkers is the configured persistent worker floor
	CoreWorkers int

	// MaxWorkers is the effective worker ceiling, 0 when unbounded
	MaxWorkers int

	// QueueDepth is the number of queued tasks not yet claimed
	QueueDepth int
}

// Stats returns a snapshot of the pool counters. Total and busy are read
// together under the counter lock so the pair is consistent.
func (p *Pool) Stats() Stats {
	p.mu.Lock()
	total, busy := p.total, p.busy
	p.mu.Unlock()

	return Stats{
		TotalWorkers: total,
		BusyWorkers:  busy,
		CoreWorkers:  p.cfg.CoreWorkers,
		MaxWorkers:   p.cfg.MaxWorkers,
		QueueDepth:   p.queue.depth(),
	}
}
