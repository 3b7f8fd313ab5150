// Package types defines the task contract, error types and the clock
// abstraction shared by the thread pool.
package types

import "context"

// Task is a unit of work submitted to the pool. Its arguments are captured
// at construction time and ownership transfers to the pool on submission;
// whichever worker dequeues it invokes Execute exactly once.
type Task interface {
	// Execute runs the task. A non-nil error marks the task as failed.
	Execute(ctx context.Context) error

	// ID returns the task identifier used in logs and error context.
	ID() string
}
