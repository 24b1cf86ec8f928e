package quizgen

import (
	"context"

	"github.com/abhisek/quizzy/internal/quiz"
)

// Generator produces a validated question batch for a topic.
type Generator interface {
	// Generate returns a draft batch satisfying the policy contract,
	// with all configured validators already run. Any error is
	// recoverable from the orchestrator's point of view.
	Generate(ctx context.Context, topic quiz.Topic, p Policy) ([]quiz.Draft, error)
}
