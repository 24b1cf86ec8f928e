// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/abhisek/quizzy/ent/generationevent"
	"github.com/abhisek/quizzy/ent/question"
	"github.com/abhisek/quizzy/ent/schema"
	"github.com/abhisek/quizzy/ent/topic"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	generationeventFields := schema.GenerationEvent{}.Fields()
	_ = generationeventFields
	// generationeventDescTimestamp is the schema descriptor for timestamp field.
	generationeventDescTimestamp := generationeventFields[0].Descriptor()
	// generationevent.DefaultTimestamp holds the default value on creation for the timestamp field.
	generationevent.DefaultTimestamp = generationeventDescTimestamp.Default.(func() time.Time)
	// generationeventDescTopicID is the schema descriptor for topic_id field.
	generationeventDescTopicID := generationeventFields[1].Descriptor()
	// generationevent.DefaultTopicID holds the default value on creation for the topic_id field.
	generationevent.DefaultTopicID = generationeventDescTopicID.Default.(string)
	// generationeventDescSource is the schema descriptor for source field.
	generationeventDescSource := generationeventFields[3].Descriptor()
	// generationevent.SourceValidator is a validator for the "source" field. It is called by the builders before save.
	generationevent.SourceValidator = generationeventDescSource.Validators[0].(func(string) error)
	// generationeventDescErrorMessage is the schema descriptor for error_message field.
	generationeventDescErrorMessage := generationeventFields[6].Descriptor()
	// generationevent.DefaultErrorMessage holds the default value on creation for the error_message field.
	generationevent.DefaultErrorMessage = generationeventDescErrorMessage.Default.(string)
	// generationeventDescInputTokens is the schema descriptor for input_tokens field.
	generationeventDescInputTokens := generationeventFields[7].Descriptor()
	// generationevent.DefaultInputTokens holds the default value on creation for the input_tokens field.
	generationevent.DefaultInputTokens = generationeventDescInputTokens.Default.(int)
	// generationeventDescOutputTokens is the schema descriptor for output_tokens field.
	generationeventDescOutputTokens := generationeventFields[8].Descriptor()
	// generationevent.DefaultOutputTokens holds the default value on creation for the output_tokens field.
	generationevent.DefaultOutputTokens = generationeventDescOutputTokens.Default.(int)
	// generationeventDescLatencyMs is the schema descriptor for latency_ms field.
	generationeventDescLatencyMs := generationeventFields[9].Descriptor()
	// generationevent.DefaultLatencyMs holds the default value on creation for the latency_ms field.
	generationevent.DefaultLatencyMs = generationeventDescLatencyMs.Default.(int64)
	questionFields := schema.Question{}.Fields()
	_ = questionFields
	// questionDescTopicID is the schema descriptor for topic_id field.
	questionDescTopicID := questionFields[1].Descriptor()
	// question.TopicIDValidator is a validator for the "topic_id" field. It is called by the builders before save.
	question.TopicIDValidator = questionDescTopicID.Validators[0].(func(string) error)
	// questionDescText is the schema descriptor for text field.
	questionDescText := questionFields[2].Descriptor()
	// question.TextValidator is a validator for the "text" field. It is called by the builders before save.
	question.TextValidator = questionDescText.Validators[0].(func(string) error)
	// questionDescQuestionType is the schema descriptor for question_type field.
	questionDescQuestionType := questionFields[3].Descriptor()
	// question.QuestionTypeValidator is a validator for the "question_type" field. It is called by the builders before save.
	question.QuestionTypeValidator = questionDescQuestionType.Validators[0].(func(string) error)
	// questionDescCorrectAnswer is the schema descriptor for correct_answer field.
	questionDescCorrectAnswer := questionFields[5].Descriptor()
	// question.CorrectAnswerValidator is a validator for the "correct_answer" field. It is called by the builders before save.
	question.CorrectAnswerValidator = questionDescCorrectAnswer.Validators[0].(func(string) error)
	// questionDescDifficulty is the schema descriptor for difficulty field.
	questionDescDifficulty := questionFields[7].Descriptor()
	// question.DefaultDifficulty holds the default value on creation for the difficulty field.
	question.DefaultDifficulty = questionDescDifficulty.Default.(int)
	// questionDescPosition is the schema descriptor for position field.
	questionDescPosition := questionFields[8].Descriptor()
	// question.DefaultPosition holds the default value on creation for the position field.
	question.DefaultPosition = questionDescPosition.Default.(int)
	// questionDescCreatedAt is the schema descriptor for created_at field.
	questionDescCreatedAt := questionFields[9].Descriptor()
	// question.DefaultCreatedAt holds the default value on creation for the created_at field.
	question.DefaultCreatedAt = questionDescCreatedAt.Default.(func() time.Time)
	// questionDescID is the schema descriptor for id field.
	questionDescID := questionFields[0].Descriptor()
	// question.DefaultID holds the default value on creation for the id field.
	question.DefaultID = questionDescID.Default.(func() string)
	topicFields := schema.Topic{}.Fields()
	_ = topicFields
	// topicDescName is the schema descriptor for name field.
	topicDescName := topicFields[1].Descriptor()
	// topic.NameValidator is a validator for the "name" field. It is called by the builders before save.
	topic.NameValidator = topicDescName.Validators[0].(func(string) error)
	// topicDescEmoji is the schema descriptor for emoji field.
	topicDescEmoji := topicFields[2].Descriptor()
	// topic.EmojiValidator is a validator for the "emoji" field. It is called by the builders before save.
	topic.EmojiValidator = topicDescEmoji.Validators[0].(func(string) error)
	// topicDescPolicy is the schema descriptor for policy field.
	topicDescPolicy := topicFields[3].Descriptor()
	// topic.DefaultPolicy holds the default value on creation for the policy field.
	topic.DefaultPolicy = topicDescPolicy.Default.(string)
	// topicDescCreatedAt is the schema descriptor for created_at field.
	topicDescCreatedAt := topicFields[4].Descriptor()
	// topic.DefaultCreatedAt holds the default value on creation for the created_at field.
	topic.DefaultCreatedAt = topicDescCreatedAt.Default.(func() time.Time)
	// topicDescID is the schema descriptor for id field.
	topicDescID := topicFields[0].Descriptor()
	// topic.DefaultID holds the default value on creation for the id field.
	topic.DefaultID = topicDescID.Default.(func() string)
}
