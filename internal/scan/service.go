package scan

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"

	"lexwatch-backend/internal/analyzer"
	"lexwatch-backend/internal/documents"
	"lexwatch-backend/internal/shared/metrics"
)

// defaultTrackingThreshold matches the dashboard's tracking slider default.
const defaultTrackingThreshold = 0.5

var (
	// ErrInvalidInput is returned for rejected input.
	ErrInvalidInput = errors.New("invalid input")
)

// Service runs batch scans over the document corpus.
type Service struct {
	Jobs     JobsRepo
	Docs     documents.DocumentsRepo
	Analyzer *analyzer.Analyzer
}

// Start registers a scan job and kicks off asynchronous completion.
// Folder narrows the corpus to one publication period; limit caps the
// number of documents scanned, newest-first.
func (s *Service) Start(ctx context.Context, kind, query string, threshold float64, folder string, limit int) (Job, error) {
	kind = strings.ToLower(strings.TrimSpace(kind))
	if kind != KindSearch && kind != KindTracking {
		return Job{}, fmt.Errorf("%w: unknown scan kind %q", ErrInvalidInput, kind)
	}
	if strings.TrimSpace(query) == "" {
		return Job{}, fmt.Errorf("%w: query is required", ErrInvalidInput)
	}
	if threshold < 0 || threshold > 1 {
		return Job{}, fmt.Errorf("%w: threshold must be within [0, 1]", ErrInvalidInput)
	}
	if kind == KindTracking && threshold == 0 {
		threshold = defaultTrackingThreshold
	}

	docs, err := s.Docs.AllByFolder(ctx, folder)
	if err != nil {
		return Job{}, err
	}
	if limit > 0 && limit < len(docs) {
		docs = docs[:limit]
	}

	job := Job{
		ID:        uuid.NewString(),
		Kind:      kind,
		Query:     strings.TrimSpace(query),
		Threshold: threshold,
		Folder:    folder,
		Status:    StatusQueued,
		Total:     len(docs),
		CreatedAt: time.Now().UTC(),
	}

	if err := s.Jobs.Create(ctx, job); err != nil {
		return Job{}, err
	}

	metrics.IncScanStarted()
	go s.runAsync(backgroundWithRequestID(ctx), job.ID, docs)

	return job, nil
}

// Get returns a job by ID.
func (s *Service) Get(ctx context.Context, jobID string) (Job, error) {
	if jobID == "" {
		return Job{}, fmt.Errorf("%w: job id is required", ErrInvalidInput)
	}
	return s.Jobs.GetByID(ctx, jobID)
}

func (s *Service) runAsync(ctx context.Context, jobID string, docs []documents.Document) {
	defer func() {
		if r := recover(); r != nil {
			s.failJob(ctx, jobID, fmt.Errorf("panic: %v", r))
		}
	}()

	startedAt := time.Now().UTC()
	if err := s.Jobs.SetProcessing(ctx, jobID, startedAt); err != nil {
		s.failJob(ctx, jobID, fmt.Errorf("set processing failed: %w", err))
		return
	}

	job, err := s.Jobs.GetByID(ctx, jobID)
	if err != nil {
		s.failJob(ctx, jobID, fmt.Errorf("job lookup: %w", err))
		return
	}

	slog.Info("[Scan] started",
		"request_id", requestIDFromContext(ctx),
		"job_id", jobID,
		"kind", job.Kind,
		"total", job.Total,
	)

	// One backend call in flight at a time; progress advances per document.
	var results []Result
	for i, doc := range docs {
		switch job.Kind {
		case KindSearch:
			res := s.Analyzer.AIPoweredSearch(ctx, doc.Text, job.Query)
			if res.Error == "" && res.IsRelevant && res.RelevanceScore > analyzer.RelevanceThreshold {
				results = append(results, Result{
					DocumentID: doc.ID,
					FileName:   doc.FileName,
					Folder:     doc.Folder,
					Score:      res.RelevanceScore,
					Search:     &res,
				})
			}
		case KindTracking:
			res := s.Analyzer.AIRegulatoryTracking(ctx, doc.Text, job.Query)
			if res.Error == "" && res.IsRelated && res.RelevanceScore >= job.Threshold {
				results = append(results, Result{
					DocumentID: doc.ID,
					FileName:   doc.FileName,
					Folder:     doc.Folder,
					Score:      res.RelevanceScore,
					Tracking:   &res,
				})
			}
		}

		if err := s.Jobs.UpdateProgress(ctx, jobID, i+1); err != nil {
			s.failJob(ctx, jobID, fmt.Errorf("update progress: %w", err))
			return
		}
	}

	sort.SliceStable(results, func(i, j int) bool {
		return results[i].Score > results[j].Score
	})

	completedAt := time.Now().UTC()
	if err := s.Jobs.Complete(ctx, jobID, results, completedAt); err != nil {
		s.failJob(ctx, jobID, fmt.Errorf("complete job: %w", err))
		return
	}

	metrics.IncScanCompleted()
	slog.Info("[Scan] completed",
		"request_id", requestIDFromContext(ctx),
		"job_id", jobID,
		"hits", len(results),
		"duration_ms", completedAt.Sub(startedAt).Milliseconds(),
	)
}

func (s *Service) failJob(ctx context.Context, jobID string, cause error) {
	metrics.IncScanFailed()
	slog.Error("[Scan] failed",
		"request_id", requestIDFromContext(ctx),
		"job_id", jobID,
		"error", cause,
	)
	if err := s.Jobs.Fail(ctx, jobID, cause.Error(), time.Now().UTC()); err != nil {
		slog.Error("[Scan] record failure", "job_id", jobID, "error", err)
	}
}
