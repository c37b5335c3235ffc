package scheduler

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

type fakeProcessor struct {
	calls chan struct{}
	err   error
}

func (f *fakeProcessor) ProcessDueReminders(ctx context.Context) error {
	select {
	case f.calls <- struct{}{}:
	default:
	}
	return f.err
}

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestSchedulerRunsImmediatelyAndStops(t *testing.T) {
	p := &fakeProcessor{calls: make(chan struct{}, 8)}
	s := New(p, time.Hour, testLogger())

	s.Start(context.Background())

	select {
	case <-p.calls:
	case <-time.After(2 * time.Second):
		t.Fatal("processor was not invoked on start")
	}

	s.Stop()
	s.Stop() // second call is a no-op
}

func TestSchedulerKeepsTickingAfterError(t *testing.T) {
	p := &fakeProcessor{calls: make(chan struct{}, 8), err: errors.New("boom")}
	s := New(p, 10*time.Millisecond, testLogger())

	s.Start(context.Background())
	defer s.Stop()

	for i := 0; i < 3; i++ {
		select {
		case <-p.calls:
		case <-time.After(2 * time.Second):
			t.Fatalf("tick %d never happened", i+1)
		}
	}
}

func TestSchedulerStopBeforeStart(t *testing.T) {
	s := New(&fakeProcessor{calls: make(chan struct{}, 1)}, time.Hour, testLogger())

	done := make(chan struct{})
	go func() {
		s.Stop()
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("Stop blocked without a running loop")
	}

	assert.False(t, s.started.Load())
}
