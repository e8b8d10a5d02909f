package scheduler

import (
	"context"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/wb-go/wbf/logger"
)

func newTestLogger(t *testing.T) logger.Logger {
	t.Helper()
	log, err := logger.InitLogger("slog", "test", "test", logger.WithLevel(logger.ErrorLevel))
	if err != nil {
		t.Fatalf("init test logger: %v", err)
	}
	return log
}

func TestScheduler_Fires(t *testing.T) {
	s := New(newTestLogger(t))
	defer s.Stop()

	fired := make(chan struct{})
	s.Schedule("j1", time.Now().Add(20*time.Millisecond), func(ctx context.Context) {
		close(fired)
	})

	select {
	case <-fired:
	case <-time.After(time.Second):
		t.Fatal("job did not fire")
	}
}

func TestScheduler_PastTimeFiresImmediately(t *testing.T) {
	s := New(newTestLogger(t))
	defer s.Stop()

	fired := make(chan struct{})
	s.Schedule("j1", time.Now().Add(-time.Hour), func(ctx context.Context) {
		close(fired)
	})

	select {
	case <-fired:
	case <-time.After(time.Second):
		t.Fatal("job did not fire")
	}
}

func TestScheduler_ReplaceExisting(t *testing.T) {
	s := New(newTestLogger(t))
	defer s.Stop()

	var first, second atomic.Int32
	done := make(chan struct{})

	s.Schedule("j1", time.Now().Add(30*time.Millisecond), func(ctx context.Context) {
		first.Add(1)
	})
	s.Schedule("j1", time.Now().Add(30*time.Millisecond), func(ctx context.Context) {
		second.Add(1)
		close(done)
	})

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("replacement job did not fire")
	}

	time.Sleep(100 * time.Millisecond) // вдруг первая всё же сработает
	assert.Equal(t, int32(0), first.Load())
	assert.Equal(t, int32(1), second.Load())
}

func TestScheduler_Cancel(t *testing.T) {
	s := New(newTestLogger(t))
	defer s.Stop()

	var fired atomic.Int32
	s.Schedule("j1", time.Now().Add(50*time.Millisecond), func(ctx context.Context) {
		fired.Add(1)
	})

	assert.True(t, s.Cancel("j1"))
	assert.False(t, s.Cancel("j1"))

	time.Sleep(150 * time.Millisecond)
	assert.Equal(t, int32(0), fired.Load())
}

func TestScheduler_CancelUnknown(t *testing.T) {
	s := New(newTestLogger(t))
	defer s.Stop()

	assert.False(t, s.Cancel("missing"))
}

func TestScheduler_StopDropsPending(t *testing.T) {
	s := New(newTestLogger(t))

	var fired atomic.Int32
	s.Schedule("j1", time.Now().Add(50*time.Millisecond), func(ctx context.Context) {
		fired.Add(1)
	})

	s.Stop()

	time.Sleep(150 * time.Millisecond)
	assert.Equal(t, int32(0), fired.Load())
}

func TestScheduler_ScheduleAfterStopIsNoop(t *testing.T) {
	s := New(newTestLogger(t))
	s.Stop()

	var fired atomic.Int32
	s.Schedule("j1", time.Now(), func(ctx context.Context) {
		fired.Add(1)
	})

	time.Sleep(50 * time.Millisecond)
	assert.Equal(t, int32(0), fired.Load())
}

func TestScheduler_StopWaitsForRunningJob(t *testing.T) {
	s := New(newTestLogger(t))

	started := make(chan struct{})
	finished := make(chan struct{})
	s.Schedule("j1", time.Now(), func(ctx context.Context) {
		close(started)
		time.Sleep(50 * time.Millisecond)
		close(finished)
	})

	<-started
	s.Stop()

	select {
	case <-finished:
	default:
		t.Fatal("Stop returned before running job finished")
	}
}
