package jobs

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"
)

var (
	ErrNotStarted  = errors.New("registry is not started")
	ErrUnknownTask = errors.New("unknown task")
)

const (
	triggerPeriodic = "periodic"
	triggerDelayed  = "delayed"
	triggerManual   = "manual"
)

// Task is a named unit of background work. Run returns how many records it
// processed.
type Task struct {
	Name     string
	Interval time.Duration
	Enabled  bool
	Run      func(ctx context.Context) (int, error)
}

// Registry runs periodic tasks and one-shot delayed invocations of them.
// Every task is declared once with Register before Start.
type Registry struct {
	logger *slog.Logger

	mu     sync.Mutex
	tasks  map[string]Task
	timers map[*time.Timer]struct{}
	ctx    context.Context
	cancel context.CancelFunc

	wg sync.WaitGroup
}

func NewRegistry(logger *slog.Logger) *Registry {
	return &Registry{
		logger: logger.With(slog.String("component", "jobs")),
		tasks:  make(map[string]Task),
		timers: make(map[*time.Timer]struct{}),
	}
}

func (r *Registry) Register(t Task) error {
	if t.Name == "" || t.Run == nil {
		return fmt.Errorf("task must have a name and a run func")
	}
	if t.Enabled && t.Interval <= 0 {
		return fmt.Errorf("task %s: interval must be positive", t.Name)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.tasks[t.Name]; ok {
		return fmt.Errorf("task %s already registered", t.Name)
	}
	r.tasks[t.Name] = t
	return nil
}

// Start launches a loop per enabled task. It returns immediately; the loops
// stop when ctx is done or Close is called.
func (r *Registry) Start(ctx context.Context) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.ctx != nil {
		return fmt.Errorf("registry already started")
	}
	r.ctx, r.cancel = context.WithCancel(ctx)

	for _, t := range r.tasks {
		if !t.Enabled {
			r.logger.Info("task disabled", slog.String("task", t.Name))
			continue
		}
		r.wg.Add(1)
		go r.loop(r.ctx, t)
		r.logger.Info("task scheduled", slog.String("task", t.Name), slog.Duration("interval", t.Interval))
	}
	return nil
}

func (r *Registry) loop(ctx context.Context, t Task) {
	defer r.wg.Done()

	ticker := time.NewTicker(t.Interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			r.run(ctx, t, triggerPeriodic)
		}
	}
}

// Trigger runs the task right away in the caller's goroutine.
func (r *Registry) Trigger(ctx context.Context, name string) (int, error) {
	t, err := r.task(name)
	if err != nil {
		return 0, err
	}
	return r.run(ctx, t, triggerManual)
}

// RunAt schedules a single run of the task at the given time. Runs that are
// still pending when the registry closes are dropped.
func (r *Registry) RunAt(name string, at time.Time) error {
	t, err := r.task(name)
	if err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if r.ctx == nil || r.ctx.Err() != nil {
		return ErrNotStarted
	}
	ctx := r.ctx

	r.wg.Add(1)
	delayedPending.Inc()

	var timer *time.Timer
	timer = time.AfterFunc(time.Until(at), func() {
		defer r.wg.Done()

		r.mu.Lock()
		delete(r.timers, timer)
		r.mu.Unlock()
		delayedPending.Dec()

		if ctx.Err() != nil {
			return
		}
		r.run(ctx, t, triggerDelayed)
	})
	r.timers[timer] = struct{}{}
	return nil
}

// Pending returns the number of delayed runs that have not fired yet.
func (r *Registry) Pending() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.timers)
}

func (r *Registry) run(ctx context.Context, t Task, trigger string) (n int, err error) {
	start := time.Now()
	defer func() {
		// Упавшая задача не должна ронять цикл
		if p := recover(); p != nil {
			err = fmt.Errorf("task %s panicked: %v", t.Name, p)
		}

		taskDuration.WithLabelValues(t.Name).Observe(time.Since(start).Seconds())
		if err != nil {
			taskRuns.WithLabelValues(t.Name, trigger, "error").Inc()
			r.logger.Error("task failed", slog.String("task", t.Name), slog.String("trigger", trigger), slog.Any("error", err))
			return
		}
		taskRuns.WithLabelValues(t.Name, trigger, "ok").Inc()
		taskProcessed.WithLabelValues(t.Name, trigger).Add(float64(n))
		r.logger.Debug("task finished", slog.String("task", t.Name), slog.String("trigger", trigger), slog.Int("processed", n))
	}()

	return t.Run(ctx)
}

func (r *Registry) task(name string) (Task, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	t, ok := r.tasks[name]
	if !ok {
		return Task{}, fmt.Errorf("%w: %s", ErrUnknownTask, name)
	}
	return t, nil
}

// Close stops the periodic loops, drops pending delayed runs and waits for
// the runs already in progress.
func (r *Registry) Close() error {
	r.mu.Lock()
	if r.cancel != nil {
		r.cancel()
	}
	for timer := range r.timers {
		if timer.Stop() {
			r.wg.Done()
			delayedPending.Dec()
		}
		delete(r.timers, timer)
	}
	r.mu.Unlock()

	r.wg.Wait()
	return nil
}
