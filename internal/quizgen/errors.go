package quizgen

import (
	"errors"
	"fmt"
)

// ErrTopicNotFound means the topic ID did not resolve to a stored topic.
// Reported to the caller, never retried.
var ErrTopicNotFound = errors.New("topic not found")

// ErrInvalidGenerationFormat means the model's output did not match the
// policy's batch contract (wrong length, missing fields, type/options
// mismatch). Recovered locally by the fallback bank.
type ErrInvalidGenerationFormat struct {
	Reason string
}

func (e *ErrInvalidGenerationFormat) Error() string {
	return fmt.Sprintf("generated batch format invalid: %s", e.Reason)
}

// ErrUnsafeContent means at least one generated item failed the content
// safety filter. The whole batch is rejected — partial acceptance would
// break the fixed batch size — and the fallback bank takes over.
type ErrUnsafeContent struct {
	Field string // which field tripped the filter: text, fun_fact, or option
	Term  string // the deny-listed term found
}

func (e *ErrUnsafeContent) Error() string {
	return fmt.Sprintf("generated content unsafe: %s contains %q", e.Field, e.Term)
}

// ErrPersistenceFailed means the new batch could not be stored. Fatal:
// surfaced to the caller with no automatic retry, since silently
// dropping a batch would be worse than reporting the failure.
type ErrPersistenceFailed struct {
	Err error
}

func (e *ErrPersistenceFailed) Error() string {
	return fmt.Sprintf("persisting question batch: %v", e.Err)
}

func (e *ErrPersistenceFailed) Unwrap() error { return e.Err }
