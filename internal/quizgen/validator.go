package quizgen

import "github.com/abhisek/quizzy/internal/quiz"

// BatchValidator checks a parsed draft batch against the policy before
// it is accepted for persistence. Implementations are stateless and
// safe for concurrent use. The first failure rejects the whole batch;
// there is no partial acceptance, since a short batch would violate the
// fixed-count invariant.
type BatchValidator interface {
	// Name returns a short identifier for error messages and logging.
	Name() string

	// Validate returns nil if the batch passes, or a typed error
	// describing the first failure.
	Validate(batch []quiz.Draft, p Policy) error
}
