package scan

import (
	"context"
	"errors"
	"time"
)

// ErrNotFound is returned when a scan job does not exist.
var ErrNotFound = errors.New("not found")

// JobsRepo defines persistence operations for scan jobs. Jobs are
// transient dashboard state, so only an in-memory implementation ships.
type JobsRepo interface {
	Create(ctx context.Context, job Job) error
	GetByID(ctx context.Context, jobID string) (Job, error)
	SetProcessing(ctx context.Context, jobID string, startedAt time.Time) error
	UpdateProgress(ctx context.Context, jobID string, processed int) error
	Complete(ctx context.Context, jobID string, results []Result, completedAt time.Time) error
	Fail(ctx context.Context, jobID string, message string, completedAt time.Time) error
}
