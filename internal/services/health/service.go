package health

import (
	"context"
	"database/sql"
	"time"
)

// Service encapsulates health-related checks.
type Service struct {
	DB          *sql.DB
	LLMProvider string
}

// NewService constructs a new health service.
func NewService(db *sql.DB, llmProvider string) *Service {
	return &Service{DB: db, LLMProvider: llmProvider}
}

// Status reports process health plus the state of attached dependencies.
func (s *Service) Status(ctx context.Context) map[string]any {
	status := map[string]any{
		"ok":       true,
		"provider": s.LLMProvider,
	}
	if s.DB == nil {
		status["database"] = "memory"
		return status
	}

	pingCtx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()
	if err := s.DB.PingContext(pingCtx); err != nil {
		status["ok"] = false
		status["database"] = "unreachable"
		return status
	}
	status["database"] = "postgres"
	return status
}
