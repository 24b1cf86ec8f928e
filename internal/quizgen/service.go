package quizgen

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/abhisek/quizzy/internal/fallback"
	"github.com/abhisek/quizzy/internal/quiz"
	"github.com/abhisek/quizzy/internal/store"
)

// Result is the outcome of a successful regeneration.
type Result struct {
	TopicName          string
	QuestionsGenerated int
	Questions          []*quiz.Question

	// Source is "generated" when the batch came from the model,
	// "fallback" when the bank filled in.
	Source string
}

// Service is the content generation orchestrator. It owns the
// replace-on-regenerate transaction and the per-topic question-count
// contract.
//
// Concurrent Regenerate calls for the same topic are not safe: the
// delete-then-insert is not atomic across calls. Single-admin-actor is
// assumed; calls for different topics are independent.
type Service struct {
	gen       Generator
	topics    store.TopicRepo
	questions store.QuestionRepo
	genLog    store.GenerationLogRepo
}

// NewService wires the orchestrator. genLog may be nil to disable
// attempt logging (tests).
func NewService(gen Generator, topics store.TopicRepo, questions store.QuestionRepo, genLog store.GenerationLogRepo) *Service {
	return &Service{gen: gen, topics: topics, questions: questions, genLog: genLog}
}

// Regenerate replaces the topic's entire question batch.
//
// Generation failures — provider errors, malformed batches, unsafe
// content — are recovered by the fallback bank and never surface to the
// caller. Only an unknown topic or a store-level insert failure is
// fatal.
func (s *Service) Regenerate(ctx context.Context, topicID string) (*Result, error) {
	topic, err := s.topics.Get(ctx, topicID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, fmt.Errorf("%w: %s", ErrTopicNotFound, topicID)
		}
		return nil, fmt.Errorf("resolve topic: %w", err)
	}

	policy := PolicyFor(*topic)

	source := "generated"
	batch, genErr := s.gen.Generate(ctx, *topic, policy)
	if genErr != nil {
		// The bank always produces a structurally valid batch of
		// the policy size, so generation failures stop here.
		s.logAttempt(ctx, topic.ID, "generated", 0, false, genErr)
		batch = fallback.Build(*topic, policy.BatchSize, policy.Name)
		source = "fallback"
	}

	// Best-effort cleanup: stale rows must never block a fresh batch.
	if err := s.questions.DeleteByTopic(ctx, topic.ID); err != nil {
		fmt.Fprintf(os.Stderr, "warning: deleting stale questions for %s: %v\n", topic.Name, err)
	}

	inserted, err := s.questions.InsertBatch(ctx, topic.ID, batch)
	if err != nil {
		s.logAttempt(ctx, topic.ID, source, 0, false, err)
		return nil, &ErrPersistenceFailed{Err: err}
	}

	s.logAttempt(ctx, topic.ID, source, len(inserted), true, nil)

	return &Result{
		TopicName:          topic.Name,
		QuestionsGenerated: len(inserted),
		Questions:          inserted,
		Source:             source,
	}, nil
}

func (s *Service) logAttempt(ctx context.Context, topicID, source string, n int, success bool, cause error) {
	if s.genLog == nil {
		return
	}
	data := store.GenerationEventData{
		TopicID:   topicID,
		Source:    source,
		Questions: n,
		Success:   success,
	}
	if cause != nil {
		data.ErrorMessage = cause.Error()
	}
	if err := s.genLog.AppendGeneration(ctx, data); err != nil {
		fmt.Fprintf(os.Stderr, "warning: failed to log generation event: %v\n", err)
	}
}
