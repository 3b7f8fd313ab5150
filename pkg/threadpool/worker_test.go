package threadpool

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/goschedule/threadpool/pkg/types"
)

func TestIdleTimeout(t *testing.T) {
	tests := []struct {
		name      string
		core      bool
		keepalive time.Duration
		want      time.Duration
	}{
		{"core worker waits forever", true, time.Second, -1},
		{"transient worker waits keepalive", false, 5 * time.Second, 5 * time.Second},
		{"zero keepalive checks once", false, 0, 0},
		{"negative keepalive checks once", false, -time.Second, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pool := New(&Config{KeepAlive: tt.keepalive, Logger: testLogger()})
			w := &worker{pool: pool, core: tt.core}
			assert.Equal(t, tt.want, w.idleTimeout())
		})
	}
}

func TestInvokePassesErrorThrough(t *testing.T) {
	pool := New(&Config{Logger: testLogger()})
	w := &worker{pool: pool}

	sentinel := errors.New("task says no")
	err := w.invoke(NewTaskWithID("t", func(ctx context.Context) error {
		return sentinel
	}))

	assert.Equal(t, sentinel, err)
}

func TestInvokeRecoversStringPanic(t *testing.T) {
	pool := New(&Config{Logger: testLogger()})
	w := &worker{pool: pool, id: 3}

	err := w.invoke(NewTaskWithID("boom", func(ctx context.Context) error {
		panic("kaboom")
	}))

	require.Error(t, err)
	var taskErr *types.TaskError
	require.True(t, errors.As(err, &taskErr))
	assert.Equal(t, "boom", taskErr.TaskID)
	assert.Contains(t, taskErr.Cause.Error(), "kaboom")
	assert.Equal(t, 3, taskErr.Context["worker_id"])

	stack, ok := taskErr.Context["stack_trace"].(string)
	require.True(t, ok)
	assert.Contains(t, stack, "goroutine")
}

func TestInvokeRecoversErrorPanic(t *testing.T) {
	pool := New(&Config{Logger: testLogger()})
	w := &worker{pool: pool}

	cause := errors.New("typed panic")
	err := w.invoke(NewTaskWithID("boom", func(ctx context.Context) error {
		panic(cause)
	}))

	require.Error(t, err)
	assert.True(t, errors.Is(err, cause))
}

func TestReportFailureLogsDiagnostics(t *testing.T) {
	var buf bytes.Buffer
	pool := New(&Config{
		Logger: slog.New(slog.NewTextHandler(&buf, nil)),
	})
	w := &worker{pool: pool, id: 1}

	task := NewTaskWithID("boom", func(ctx context.Context) error {
		panic("kaboom")
	})
	err := w.invoke(task)
	require.Error(t, err)
	w.reportFailure(task, err)

	out := buf.String()
	assert.Contains(t, out, "task execution failed")
	assert.Contains(t, out, "boom")
	assert.Contains(t, out, "stack")
}

func TestReportFailureFiresCallback(t *testing.T) {
	calls := 0
	pool := New(&Config{
		ExceptionCallback: func() { calls++ },
		Logger:            testLogger(),
	})
	w := &worker{pool: pool}

	task := NewTaskWithID("t", func(ctx context.Context) error {
		return errors.New("boom")
	})
	w.reportFailure(task, errors.New("boom"))

	assert.Equal(t, 1, calls)
}

func TestFuncTaskWithoutFunc(t *testing.T) {
	task := NewTaskWithID("empty", nil)
	err := task.Execute(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no execution function")
}

func TestNewTaskGeneratesDistinctIDs(t *testing.T) {
	a := NewTask(func(ctx context.Context) error { return nil })
	b := NewTask(func(ctx context.Context) error { return nil })
	assert.NotEqual(t, a.ID(), b.ID())
}
