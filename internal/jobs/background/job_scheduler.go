package background

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/go-co-op/gocron/v2"
	"go.uber.org/zap"
)

// ErrJobNotFound is returned by RunNow for a name that was never registered.
var ErrJobNotFound = errors.New("job not registered")

// ErrSchedulerStopped is returned by RunNow once Stop has been called.
var ErrSchedulerStopped = errors.New("scheduler stopped")

// Task is a unit of periodic work.
type Task func(ctx context.Context) error

// JobScheduler runs the periodic inventory jobs.
type JobScheduler struct {
	scheduler gocron.Scheduler
	ctx       context.Context
	cancel    context.CancelFunc
	jobs      map[string]gocron.Job
	stopped   bool
	mu        sync.RWMutex
	logger    *zap.Logger
}

func NewJobScheduler(logger *zap.Logger) (*JobScheduler, error) {
	scheduler, err := gocron.NewScheduler()
	if err != nil {
		return nil, fmt.Errorf("failed to create scheduler: %w", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	return &JobScheduler{
		scheduler: scheduler,
		ctx:       ctx,
		cancel:    cancel,
		jobs:      make(map[string]gocron.Job),
		logger:    logger,
	}, nil
}

func (js *JobScheduler) Start() {
	js.logger.Info("starting background job scheduler", zap.Int("jobs", len(js.jobs)))
	js.scheduler.Start()
}

// Stop cancels running tasks and waits for them to return.
func (js *JobScheduler) Stop() error {
	js.logger.Info("stopping background job scheduler")
	js.mu.Lock()
	js.stopped = true
	js.mu.Unlock()
	js.cancel()
	return js.scheduler.Shutdown()
}

// AddJob registers task to run every interval. A run still in progress when
// the next one is due causes that run to be skipped.
func (js *JobScheduler) AddJob(name string, interval time.Duration, task Task) error {
	js.mu.Lock()
	defer js.mu.Unlock()

	if _, exists := js.jobs[name]; exists {
		return fmt.Errorf("job %s already registered", name)
	}

	job, err := js.scheduler.NewJob(
		gocron.DurationJob(interval),
		gocron.NewTask(js.run, name, task),
		gocron.WithName(name),
		gocron.WithSingletonMode(gocron.LimitModeReschedule),
	)
	if err != nil {
		return fmt.Errorf("failed to create job %s: %w", name, err)
	}

	js.jobs[name] = job
	js.logger.Info("registered job", zap.String("job", name), zap.Duration("interval", interval))
	return nil
}

// RunNow triggers a registered job outside its schedule.
func (js *JobScheduler) RunNow(name string) error {
	js.mu.RLock()
	job, exists := js.jobs[name]
	stopped := js.stopped
	js.mu.RUnlock()

	if !exists {
		return fmt.Errorf("%w: %s", ErrJobNotFound, name)
	}
	if stopped {
		return fmt.Errorf("failed to run job %s: %w", name, ErrSchedulerStopped)
	}
	if err := job.RunNow(); err != nil {
		return fmt.Errorf("failed to run job %s: %w", name, err)
	}
	return nil
}

func (js *JobScheduler) GetJobStatus() map[string]interface{} {
	js.mu.RLock()
	defer js.mu.RUnlock()

	names := make([]string, 0, len(js.jobs))
	for name := range js.jobs {
		names = append(names, name)
	}
	sort.Strings(names)
	return map[string]interface{}{
		"total_jobs": len(js.jobs),
		"jobs":       names,
	}
}

func (js *JobScheduler) run(name string, task Task) {
	start := time.Now()
	if err := task(js.ctx); err != nil {
		js.logger.Error("job failed", zap.String("job", name), zap.Duration("took", time.Since(start)), zap.Error(err))
		return
	}
	js.logger.Debug("job finished", zap.String("job", name), zap.Duration("took", time.Since(start)))
}
