package ports

import (
	"context"
	"time"
)

// JobScheduler ставит одноразовые задачи. Повторная постановка
// с тем же job id замещает прежнюю задачу.
type JobScheduler interface {
	Schedule(jobID string, fireAt time.Time, job func(ctx context.Context))
	Cancel(jobID string) bool
}
