// Package analyzer orchestrates multi-step LLM analyses of legal documents.
// Each analysis kind runs a short, strictly sequential pipeline of prompt
// sub-steps, merges the decoded step responses into one typed result, and
// memoizes it in a process-lifetime cache. Backend failures never escape an
// operation: every public method returns a degraded, well-formed result with
// its error field set instead.
package analyzer

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"lexwatch-backend/internal/analyzer/prompts"
	"lexwatch-backend/internal/llm"
	"lexwatch-backend/internal/shared/metrics"
)

// Analyzer runs prompt pipelines against an LLM backend. It owns its result
// cache; no other component reads or writes it.
type Analyzer struct {
	llm   llm.Client
	cache *Cache
}

// New constructs an Analyzer around the given backend client. A nil cache
// gets a fresh one.
func New(client llm.Client, cache *Cache) *Analyzer {
	if cache == nil {
		cache = NewCache()
	}
	return &Analyzer{llm: client, cache: cache}
}

// step issues one prompt exchange and decodes the JSON response into out.
// Every backend call goes through here; each is attempted exactly once, with
// no retries or backoff.
func (a *Analyzer) step(ctx context.Context, spec prompts.Step, prompt string, out any) error {
	start := time.Now()
	raw, err := a.llm.Complete(ctx, llm.Request{
		System:    spec.System,
		Prompt:    prompt,
		MaxTokens: spec.MaxTokens,
	})
	metrics.IncLLMRequest()
	metrics.ObserveLLMDurationMs(float64(time.Since(start).Microseconds()) / 1000.0)
	if err != nil {
		metrics.IncLLMFailed()
		slog.Warn("analyzer step failed",
			slog.String("system", spec.System),
			slog.String("error", err.Error()))
		return err
	}
	if err := json.Unmarshal(raw, out); err != nil {
		metrics.IncLLMFailed()
		slog.Warn("analyzer step response malformed",
			slog.String("system", spec.System),
			slog.String("error", err.Error()))
		return fmt.Errorf("decode step response: %w", err)
	}
	return nil
}

// lookup checks the cache and records hit/miss metrics.
func (a *Analyzer) lookup(key string) (any, bool) {
	if val, ok := a.cache.Get(key); ok {
		metrics.IncCacheHit()
		return val, true
	}
	metrics.IncCacheMiss()
	return nil, false
}
