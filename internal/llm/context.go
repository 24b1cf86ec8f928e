package llm

import "context"

type contextKey string

const (
	purposeKey contextKey = "llm_purpose"
	topicKey   contextKey = "llm_topic"
)

// WithPurpose attaches a purpose label to the context for event logging.
func WithPurpose(ctx context.Context, purpose string) context.Context {
	return context.WithValue(ctx, purposeKey, purpose)
}

// PurposeFrom extracts the purpose label from the context.
func PurposeFrom(ctx context.Context) string {
	if v, ok := ctx.Value(purposeKey).(string); ok {
		return v
	}
	return "unknown"
}

// WithTopic attaches the topic ID being generated for, so the logging
// middleware can attribute provider calls to a topic.
func WithTopic(ctx context.Context, topicID string) context.Context {
	return context.WithValue(ctx, topicKey, topicID)
}

// TopicFrom extracts the topic ID from the context, or "".
func TopicFrom(ctx context.Context) string {
	if v, ok := ctx.Value(topicKey).(string); ok {
		return v
	}
	return ""
}
