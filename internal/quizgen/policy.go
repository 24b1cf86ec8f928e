package quizgen

import (
	"strings"

	"github.com/abhisek/quizzy/internal/quiz"
)

// Policy names stored on Topic records.
const (
	PolicyGeneral    = "general"
	PolicyVocabulary = "vocabulary"
)

// vocabularyKeyword marks vocabulary-style topics at creation time.
// Policy dispatch itself reads the Topic's policy attribute; the keyword
// is only consulted once, when an administrator creates the topic.
const vocabularyKeyword = "telugu"

// Policy is the generation contract for one topic class: how many
// questions a batch holds, which answer types appear, what script the
// answers use, and whether generated content passes the safety filter.
type Policy struct {
	Name      string
	BatchSize int

	// Types lists the allowed question types. The prompt asks for an
	// even distribution across them.
	Types []quiz.QuestionType

	// AnswerLanguage is a hint for answer script and for transcribing
	// spoken answers, e.g. "te-IN". Empty means English.
	AnswerLanguage string

	// ValidateSafety controls whether model-produced batches run through
	// the content safety filter. Fallback bank content is deterministic
	// and never model-produced, so it bypasses the check regardless.
	ValidateSafety bool
}

// GeneralPolicy is the default: 10 questions, mixed non-voice types.
func GeneralPolicy() Policy {
	return Policy{
		Name:      PolicyGeneral,
		BatchSize: 10,
		Types: []quiz.QuestionType{
			quiz.TypeMultipleChoice,
			quiz.TypeTrueFalse,
			quiz.TypeFillBlank,
			quiz.TypeYesNo,
		},
		ValidateSafety: true,
	}
}

// VocabularyPolicy covers vocabulary drill topics: 5 spoken-answer
// questions with answers in Telugu script.
func VocabularyPolicy() Policy {
	return Policy{
		Name:           PolicyVocabulary,
		BatchSize:      5,
		Types:          []quiz.QuestionType{quiz.TypeVoiceInput},
		AnswerLanguage: "te-IN",
		ValidateSafety: true,
	}
}

// PolicyFor resolves the generation policy from the topic's policy
// attribute, defaulting to the general policy for unknown values.
func PolicyFor(topic quiz.Topic) Policy {
	if topic.Policy == PolicyVocabulary {
		return VocabularyPolicy()
	}
	return GeneralPolicy()
}

// DetectPolicyName suggests a policy for a new topic based on its name.
// Used by the administrator flow at creation time only.
func DetectPolicyName(topicName string) string {
	if strings.Contains(strings.ToLower(topicName), vocabularyKeyword) {
		return PolicyVocabulary
	}
	return PolicyGeneral
}

// Allows reports whether the policy permits the given question type.
func (p Policy) Allows(t quiz.QuestionType) bool {
	for _, allowed := range p.Types {
		if t == allowed {
			return true
		}
	}
	return false
}
