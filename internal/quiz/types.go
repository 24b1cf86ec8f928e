package quiz

// QuestionType describes how a question is asked and answered.
type QuestionType string

const (
	TypeMultipleChoice QuestionType = "multiple_choice"
	TypeTrueFalse      QuestionType = "true_false"
	TypeYesNo          QuestionType = "yes_no"
	TypeFillBlank      QuestionType = "fill_blank"
	TypeVoiceInput     QuestionType = "voice_input"
)

// HasOptions reports whether this type presents selectable options.
// fill_blank and voice_input take free-form input and carry no options.
func (t QuestionType) HasOptions() bool {
	switch t {
	case TypeMultipleChoice, TypeTrueFalse, TypeYesNo:
		return true
	}
	return false
}

// Valid reports whether t is one of the five known question types.
func (t QuestionType) Valid() bool {
	switch t {
	case TypeMultipleChoice, TypeTrueFalse, TypeYesNo, TypeFillBlank, TypeVoiceInput:
		return true
	}
	return false
}

// Topic is a subject area a learner can practice.
type Topic struct {
	ID     string
	Name   string
	Emoji  string
	Policy string
}

// Question is a stored quiz item ready for play.
//
// Invariant: Options is non-empty iff Type.HasOptions(), and
// CorrectAnswer then equals one of the options byte-for-byte.
type Question struct {
	ID            string
	TopicID       string
	Text          string
	Type          QuestionType
	Options       []string
	CorrectAnswer string
	FunFact       string
	Difficulty    int
}

// Draft is a question before it has been persisted: the shape produced
// by the generator and the fallback bank, prior to ID assignment.
type Draft struct {
	Text          string       `json:"text"`
	Type          QuestionType `json:"type"`
	Options       []string     `json:"options"`
	CorrectAnswer string       `json:"correct_answer"`
	FunFact       string       `json:"fun_fact"`
	Difficulty    int          `json:"difficulty"`
}

// AnswerAttempt is the transient record of one graded submission.
// It drives scoring and feedback, then is discarded; never persisted.
type AnswerAttempt struct {
	QuestionID string
	RawInput   string
	IsCorrect  bool
}
