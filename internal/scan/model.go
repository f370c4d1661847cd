package scan

import (
	"time"

	"lexwatch-backend/internal/analyzer"
)

const (
	StatusQueued     = "queued"
	StatusProcessing = "processing"
	StatusCompleted  = "completed"
	StatusFailed     = "failed"
)

const (
	KindSearch   = "search"
	KindTracking = "tracking"
)

// Result is one corpus hit produced by a scan.
type Result struct {
	DocumentID string                   `json:"documentId"`
	FileName   string                   `json:"fileName"`
	Folder     string                   `json:"folder"`
	Score      float64                  `json:"score"`
	Search     *analyzer.SearchResult   `json:"search,omitempty"`
	Tracking   *analyzer.TrackingResult `json:"tracking,omitempty"`
}

// Job is a batch scan over the document corpus.
type Job struct {
	ID          string     `json:"jobId"`
	Kind        string     `json:"kind"`
	Query       string     `json:"query"`
	Threshold   float64    `json:"threshold"`
	Folder      string     `json:"folder,omitempty"`
	Status      string     `json:"status"`
	Processed   int        `json:"processed"`
	Total       int        `json:"total"`
	Results     []Result   `json:"results,omitempty"`
	Error       string     `json:"error,omitempty"`
	CreatedAt   time.Time  `json:"createdAt"`
	StartedAt   *time.Time `json:"startedAt,omitempty"`
	CompletedAt *time.Time `json:"completedAt,omitempty"`
}
