package jobs_test

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"sync/atomic"
	"testing"
	"time"

	"github.com/SergeyBogomolovv/food-order-service/internal/jobs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newRegistry(t *testing.T) *jobs.Registry {
	t.Helper()
	r := jobs.NewRegistry(slog.New(slog.NewTextHandler(io.Discard, nil)))
	t.Cleanup(func() { r.Close() })
	return r
}

func countingTask(name string, calls *atomic.Int32) jobs.Task {
	return jobs.Task{
		Name:     name,
		Interval: 10 * time.Millisecond,
		Enabled:  true,
		Run: func(ctx context.Context) (int, error) {
			calls.Add(1)
			return 1, nil
		},
	}
}

func TestRegistry_Register(t *testing.T) {
	noop := func(ctx context.Context) (int, error) { return 0, nil }

	testCases := []struct {
		name    string
		task    jobs.Task
		wantErr bool
	}{
		{name: "ok", task: jobs.Task{Name: "a", Interval: time.Second, Enabled: true, Run: noop}},
		{name: "disabled without interval", task: jobs.Task{Name: "b", Run: noop}},
		{name: "no name", task: jobs.Task{Interval: time.Second, Run: noop}, wantErr: true},
		{name: "no run func", task: jobs.Task{Name: "c", Interval: time.Second}, wantErr: true},
		{name: "enabled without interval", task: jobs.Task{Name: "d", Enabled: true, Run: noop}, wantErr: true},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			r := newRegistry(t)
			err := r.Register(tc.task)
			if tc.wantErr {
				assert.Error(t, err)
				return
			}
			assert.NoError(t, err)
		})
	}
}

func TestRegistry_RegisterDuplicate(t *testing.T) {
	r := newRegistry(t)
	var calls atomic.Int32

	require.NoError(t, r.Register(countingTask("sweep", &calls)))
	assert.Error(t, r.Register(countingTask("sweep", &calls)))
}

func TestRegistry_PeriodicRuns(t *testing.T) {
	r := newRegistry(t)
	var calls atomic.Int32
	require.NoError(t, r.Register(countingTask("sweep", &calls)))

	require.NoError(t, r.Start(context.Background()))

	assert.Eventually(t, func() bool { return calls.Load() >= 2 }, time.Second, 5*time.Millisecond)
}

func TestRegistry_DisabledTaskDoesNotRun(t *testing.T) {
	r := newRegistry(t)
	var calls atomic.Int32
	task := countingTask("sweep", &calls)
	task.Enabled = false
	require.NoError(t, r.Register(task))

	require.NoError(t, r.Start(context.Background()))
	time.Sleep(50 * time.Millisecond)

	assert.Zero(t, calls.Load())
}

func TestRegistry_PeriodicLoopSurvivesFailures(t *testing.T) {
	r := newRegistry(t)
	var calls atomic.Int32
	require.NoError(t, r.Register(jobs.Task{
		Name:     "flaky",
		Interval: 5 * time.Millisecond,
		Enabled:  true,
		Run: func(ctx context.Context) (int, error) {
			switch calls.Add(1) {
			case 1:
				return 0, errors.New("db is down")
			case 2:
				panic("boom")
			}
			return 1, nil
		},
	}))

	require.NoError(t, r.Start(context.Background()))

	assert.Eventually(t, func() bool { return calls.Load() >= 3 }, time.Second, 5*time.Millisecond)
}

func TestRegistry_Trigger(t *testing.T) {
	r := newRegistry(t)
	var calls atomic.Int32
	require.NoError(t, r.Register(countingTask("sweep", &calls)))

	n, err := r.Trigger(context.Background(), "sweep")
	require.NoError(t, err)
	assert.Equal(t, 1, n)
	assert.EqualValues(t, 1, calls.Load())

	_, err = r.Trigger(context.Background(), "missing")
	assert.ErrorIs(t, err, jobs.ErrUnknownTask)
}

func TestRegistry_RunAt(t *testing.T) {
	r := newRegistry(t)
	var calls atomic.Int32
	task := countingTask("sweep", &calls)
	task.Enabled = false
	require.NoError(t, r.Register(task))

	assert.ErrorIs(t, r.RunAt("sweep", time.Now()), jobs.ErrNotStarted)

	require.NoError(t, r.Start(context.Background()))
	require.NoError(t, r.RunAt("sweep", time.Now().Add(20*time.Millisecond)))
	assert.Equal(t, 1, r.Pending())

	assert.Eventually(t, func() bool { return calls.Load() == 1 }, time.Second, 5*time.Millisecond)
	assert.Eventually(t, func() bool { return r.Pending() == 0 }, time.Second, 5*time.Millisecond)

	assert.ErrorIs(t, r.RunAt("missing", time.Now()), jobs.ErrUnknownTask)
}

func TestRegistry_RunAtInThePastFiresImmediately(t *testing.T) {
	r := newRegistry(t)
	var calls atomic.Int32
	task := countingTask("sweep", &calls)
	task.Enabled = false
	require.NoError(t, r.Register(task))
	require.NoError(t, r.Start(context.Background()))

	require.NoError(t, r.RunAt("sweep", time.Now().Add(-time.Minute)))

	assert.Eventually(t, func() bool { return calls.Load() == 1 }, time.Second, 5*time.Millisecond)
}

func TestRegistry_CloseDropsPendingRuns(t *testing.T) {
	r := jobs.NewRegistry(slog.New(slog.NewTextHandler(io.Discard, nil)))
	var calls atomic.Int32
	task := countingTask("sweep", &calls)
	task.Enabled = false
	require.NoError(t, r.Register(task))
	require.NoError(t, r.Start(context.Background()))

	require.NoError(t, r.RunAt("sweep", time.Now().Add(time.Hour)))
	require.NoError(t, r.Close())

	assert.Zero(t, r.Pending())
	assert.Zero(t, calls.Load())
	assert.ErrorIs(t, r.RunAt("sweep", time.Now()), jobs.ErrNotStarted)
}

func TestLocalExpiryScheduler(t *testing.T) {
	r := newRegistry(t)
	var calls atomic.Int32
	task := countingTask(jobs.RejectStaleOrdersTask, &calls)
	task.Enabled = false
	require.NoError(t, r.Register(task))
	require.NoError(t, r.Start(context.Background()))

	s := jobs.NewLocalExpiryScheduler(r, jobs.RejectStaleOrdersTask)
	require.NoError(t, s.ScheduleStaleCheck(context.Background(), "order-uid", time.Now().Add(10*time.Millisecond)))

	assert.Eventually(t, func() bool { return calls.Load() == 1 }, time.Second, 5*time.Millisecond)
}
