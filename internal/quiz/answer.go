package quiz

import "strings"

// Evaluate compares the learner's raw input against the question's
// correct answer. Pure and idempotent; score accumulation belongs to
// the session, never here.
//
// Rules by type:
//   - Selectable types (multiple_choice, true_false, yes_no): trim, then
//     case-sensitive equality. Options are presented verbatim as buttons,
//     so the input is expected to match stored option text exactly.
//   - fill_blank: trim both sides, lowercase both sides. Forgiving of
//     case, not of spelling.
//   - voice_input: the input is a transcript; same trim+lowercase rule
//     as fill_blank. No phonetic or fuzzy matching is attempted, which
//     is a known precision limit for non-Latin-script answers.
func Evaluate(q *Question, rawInput string) bool {
	input := strings.TrimSpace(rawInput)
	if input == "" {
		return false
	}

	if q.Type.HasOptions() {
		return input == strings.TrimSpace(q.CorrectAnswer)
	}

	return strings.ToLower(input) == strings.ToLower(strings.TrimSpace(q.CorrectAnswer))
}
