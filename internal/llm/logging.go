package llm

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/abhisek/quizzy/internal/store"
)

// LoggingProvider is a decorator that records every provider call in
// the generation event log.
type LoggingProvider struct {
	inner  Provider
	genLog store.GenerationLogRepo
}

// WithLogging wraps a Provider with event logging. A nil repo disables
// logging without changing behavior.
func WithLogging(p Provider, genLog store.GenerationLogRepo) Provider {
	return &LoggingProvider{inner: p, genLog: genLog}
}

func (l *LoggingProvider) Generate(ctx context.Context, req Request) (*Response, error) {
	start := time.Now()

	resp, err := l.inner.Generate(ctx, req)

	if l.genLog == nil {
		return resp, err
	}

	data := store.GenerationEventData{
		TopicID:   TopicFrom(ctx),
		Provider:  l.inner.ModelID(),
		Source:    "llm_request",
		Success:   err == nil,
		LatencyMs: time.Since(start).Milliseconds(),
	}
	if resp != nil {
		data.Provider = resp.Model
		data.InputTokens = resp.Usage.InputTokens
		data.OutputTokens = resp.Usage.OutputTokens
	}
	if err != nil {
		data.ErrorMessage = err.Error()
	}

	// Log the event but don't fail the request if logging fails.
	if logErr := l.genLog.AppendGeneration(ctx, data); logErr != nil {
		fmt.Fprintf(os.Stderr, "warning: failed to log LLM request event: %v\n", logErr)
	}

	return resp, err
}

func (l *LoggingProvider) ModelID() string {
	return l.inner.ModelID()
}
