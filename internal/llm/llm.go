package llm

import (
	"context"
	"encoding/json"
	"errors"
)

// Client abstracts chat-completion LLM providers for document analysis.
// Implementations must constrain the model to a single JSON object response.
type Client interface {
	Complete(ctx context.Context, req Request) (json.RawMessage, error)
}

// Request captures one prompt exchange with the backend.
type Request struct {
	System    string
	Prompt    string
	MaxTokens int
}

// ErrEmptyResponse is returned when the backend answers with no usable content.
var ErrEmptyResponse = errors.New("llm: empty response content")

// ErrNotConfigured is returned by the placeholder client.
var ErrNotConfigured = errors.New("llm: no provider configured")

// PlaceholderClient is a stub implementation used when no provider is wired.
type PlaceholderClient struct{}

// Complete returns ErrNotConfigured.
func (PlaceholderClient) Complete(ctx context.Context, req Request) (json.RawMessage, error) {
	_ = ctx
	_ = req
	return nil, ErrNotConfigured
}
