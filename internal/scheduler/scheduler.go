package scheduler

import (
	"context"
	"sync"
	"time"

	"github.com/wb-go/wbf/logger"
)

// Одноразовая задача; получает контекст жизни планировщика.
type Job = func(ctx context.Context)

// Scheduler держит одноразовые задачи по ключу. Повторный Schedule с тем же
// job id замещает прежнюю задачу. Состояние живёт в памяти: источником
// истины служат durable-записи, а не планировщик.
type Scheduler struct {
	log logger.Logger

	mu      sync.Mutex
	timers  map[string]*time.Timer
	stopped bool

	baseCtx context.Context
	cancel  context.CancelFunc
	wg      sync.WaitGroup
}

func New(log logger.Logger) *Scheduler {
	ctx, cancel := context.WithCancel(context.Background())
	return &Scheduler{
		log:     log,
		timers:  make(map[string]*time.Timer),
		baseCtx: ctx,
		cancel:  cancel,
	}
}

// Schedule ставит задачу на fireAt. Прошедшее время срабатывает сразу.
func (s *Scheduler) Schedule(jobID string, fireAt time.Time, job Job) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.stopped {
		return
	}

	if prev, ok := s.timers[jobID]; ok {
		prev.Stop()
		delete(s.timers, jobID)
	}

	delay := time.Until(fireAt)
	if delay < 0 {
		delay = 0
	}

	s.timers[jobID] = time.AfterFunc(delay, func() {
		s.mu.Lock()
		delete(s.timers, jobID)
		if s.stopped {
			s.mu.Unlock()
			return
		}
		s.wg.Add(1)
		s.mu.Unlock()
		defer s.wg.Done()

		job(s.baseCtx)
	})

	s.log.Debug("job scheduled",
		logger.String("job_id", jobID),
		logger.Duration("in", delay),
	)
}

// Cancel снимает задачу; сообщает, была ли она поставлена.
func (s *Scheduler) Cancel(jobID string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	t, ok := s.timers[jobID]
	if !ok {
		return false
	}
	t.Stop()
	delete(s.timers, jobID)

	s.log.Debug("job cancelled", logger.String("job_id", jobID))
	return true
}

// Stop снимает все задачи и дожидается уже запущенных.
func (s *Scheduler) Stop() {
	s.mu.Lock()
	if s.stopped {
		s.mu.Unlock()
		return
	}
	s.stopped = true
	for id, t := range s.timers {
		t.Stop()
		delete(s.timers, id)
	}
	s.mu.Unlock()

	s.cancel()
	s.wg.Wait()

	s.log.Info("scheduler stopped")
}
