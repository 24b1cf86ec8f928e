package store

import (
	"context"
	"errors"
	"time"

	"github.com/abhisek/quizzy/internal/quiz"
)

// ErrNotFound is returned when a lookup matches no record.
var ErrNotFound = errors.New("record not found")

// TopicRepo provides read access to topics plus the administrator
// creation path. The generation pipeline only ever reads.
type TopicRepo interface {
	// Get returns the topic with the given ID, or ErrNotFound.
	Get(ctx context.Context, id string) (*quiz.Topic, error)

	// List returns all topics ordered by name.
	List(ctx context.Context) ([]*quiz.Topic, error)

	// Create stores a new topic and returns it with its assigned ID.
	Create(ctx context.Context, name, emoji, policy string) (*quiz.Topic, error)
}

// QuestionRepo manages per-topic question batches. Batches are replaced
// wholesale; individual questions are never updated.
type QuestionRepo interface {
	// Select returns up to limit questions for the topic in insertion
	// order. limit <= 0 means no limit.
	Select(ctx context.Context, topicID string, limit int) ([]*quiz.Question, error)

	// DeleteByTopic removes every question for the topic. Idempotent;
	// deleting an empty topic is a no-op.
	DeleteByTopic(ctx context.Context, topicID string) error

	// InsertBatch stores a full draft batch for the topic and returns
	// the inserted records in order.
	InsertBatch(ctx context.Context, topicID string, batch []quiz.Draft) ([]*quiz.Question, error)
}

// GenerationEventData captures one generation attempt for the
// append-only log.
type GenerationEventData struct {
	TopicID      string
	Provider     string
	Source       string // "llm_request", "generated" or "fallback"
	Questions    int
	Success      bool
	ErrorMessage string
	InputTokens  int
	OutputTokens int
	LatencyMs    int64
	Timestamp    time.Time
}

// GenerationEvent is a stored log record.
type GenerationEvent struct {
	ID int
	GenerationEventData
}

// GenerationLogRepo appends generation attempt events. Logging failures
// must never fail the operation being logged.
type GenerationLogRepo interface {
	AppendGeneration(ctx context.Context, data GenerationEventData) error

	// Recent returns up to limit events, newest first. limit <= 0 means
	// no limit.
	Recent(ctx context.Context, limit int) ([]GenerationEvent, error)
}
