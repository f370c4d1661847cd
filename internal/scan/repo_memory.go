package scan

import (
	"context"
	"sync"
	"time"
)

// MemoryRepo is an in-memory implementation of JobsRepo.
type MemoryRepo struct {
	mu   sync.RWMutex
	jobs map[string]Job
}

// NewMemoryRepo constructs a MemoryRepo.
func NewMemoryRepo() *MemoryRepo {
	return &MemoryRepo{jobs: make(map[string]Job)}
}

// Create registers a job.
func (r *MemoryRepo) Create(ctx context.Context, job Job) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.jobs[job.ID] = job
	return nil
}

// GetByID returns a job by ID.
func (r *MemoryRepo) GetByID(ctx context.Context, jobID string) (Job, error) {
	if err := ctx.Err(); err != nil {
		return Job{}, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	job, ok := r.jobs[jobID]
	if !ok {
		return Job{}, ErrNotFound
	}
	return job, nil
}

// SetProcessing marks a job as running.
func (r *MemoryRepo) SetProcessing(ctx context.Context, jobID string, startedAt time.Time) error {
	return r.update(ctx, jobID, func(job *Job) {
		job.Status = StatusProcessing
		job.StartedAt = &startedAt
	})
}

// UpdateProgress records the number of processed documents.
func (r *MemoryRepo) UpdateProgress(ctx context.Context, jobID string, processed int) error {
	return r.update(ctx, jobID, func(job *Job) {
		job.Processed = processed
	})
}

// Complete stores the results and marks the job done.
func (r *MemoryRepo) Complete(ctx context.Context, jobID string, results []Result, completedAt time.Time) error {
	return r.update(ctx, jobID, func(job *Job) {
		job.Status = StatusCompleted
		job.Results = results
		job.CompletedAt = &completedAt
	})
}

// Fail records a terminal error on the job.
func (r *MemoryRepo) Fail(ctx context.Context, jobID string, message string, completedAt time.Time) error {
	return r.update(ctx, jobID, func(job *Job) {
		job.Status = StatusFailed
		job.Error = message
		job.CompletedAt = &completedAt
	})
}

func (r *MemoryRepo) update(ctx context.Context, jobID string, fn func(job *Job)) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	job, ok := r.jobs[jobID]
	if !ok {
		return ErrNotFound
	}
	fn(&job)
	r.jobs[jobID] = job
	return nil
}

var _ JobsRepo = (*MemoryRepo)(nil)
