// Package scheduler runs the periodic reminder loop for posts due today.
package scheduler

import (
	"context"
	"log/slog"
	"sync"
	"sync/atomic"
	"time"
)

// DueReminderProcessor defines the interface for processing reminders of
// posts due today
type DueReminderProcessor interface {
	ProcessDueReminders(ctx context.Context) error
}

// Scheduler ticks at a fixed interval and hands each tick to the
// processor. A failed tick is logged and the loop keeps going.
type Scheduler struct {
	processor DueReminderProcessor
	interval  time.Duration
	logger    *slog.Logger

	started   atomic.Bool
	startOnce sync.Once
	stopOnce  sync.Once
	stopCh    chan struct{}
	done      chan struct{}
}

// New creates a new reminder scheduler
func New(processor DueReminderProcessor, interval time.Duration, logger *slog.Logger) *Scheduler {
	return &Scheduler{
		processor: processor,
		interval:  interval,
		logger:    logger,
		stopCh:    make(chan struct{}),
		done:      make(chan struct{}),
	}
}

// Start launches the loop. Subsequent calls are no-ops.
func (s *Scheduler) Start(ctx context.Context) {
	s.startOnce.Do(func() {
		s.started.Store(true)
		s.logger.Info("reminder scheduler started", "interval", s.interval)
		go s.loop(ctx)
	})
}

// Stop halts the loop and waits for the in-flight tick to finish
func (s *Scheduler) Stop() {
	s.stopOnce.Do(func() {
		close(s.stopCh)
		if s.started.Load() {
			<-s.done
		}
		s.logger.Info("reminder scheduler stopped")
	})
}

func (s *Scheduler) loop(ctx context.Context) {
	defer close(s.done)

	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	s.tick(ctx)

	for {
		select {
		case <-ticker.C:
			s.tick(ctx)
		case <-s.stopCh:
			return
		case <-ctx.Done():
			return
		}
	}
}

func (s *Scheduler) tick(ctx context.Context) {
	if err := s.processor.ProcessDueReminders(ctx); err != nil {
		s.logger.Error("processing due reminders", "error", err)
	}
}
