// Package llm abstracts the hosted model APIs behind a single Provider
// interface so the generation pipeline never knows which vendor is
// configured. Providers return schema-validated JSON; retry and logging
// are layered on as decorators.
package llm

import (
	"context"
	"encoding/json"
)

// Provider is what the question generator talks to.
type Provider interface {
	// Generate sends one prompt and returns structured output. When the
	// request carries a Schema, Content is JSON validated against it;
	// otherwise Content is the raw text.
	Generate(ctx context.Context, req Request) (*Response, error)

	// ModelID is the configured model identifier, recorded with every
	// generation event.
	ModelID() string
}

// Request is one generation call.
type Request struct {
	// System sets the model's role and constraints.
	System string

	// Messages is the conversation. Question generation is single-turn,
	// so in practice this holds one user message.
	Messages []Message

	// Schema, when set, makes the provider use its native structured
	// output mechanism and validate the result.
	Schema *Schema

	// MaxTokens caps the response length.
	MaxTokens int

	// Temperature in [0.0, 1.0]; zero means deterministic.
	Temperature float64
}

type Message struct {
	Role    Role
	Content string
}

type Role string

const (
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
)

// Schema describes the JSON shape the model must produce.
type Schema struct {
	// Name identifies the schema to the provider (tool name for
	// Anthropic, schema name for OpenAI) and keys the compile cache.
	// Kebab-case, e.g. "question-batch-general".
	Name string

	// Description is sent to the model to guide generation.
	Description string

	// Definition is the JSON Schema as a map.
	Definition map[string]any
}

// Response is the normalized provider output.
type Response struct {
	// Content is the generated JSON (validated when the request carried
	// a schema).
	Content json.RawMessage

	// Usage is token consumption, recorded in the generation log.
	Usage Usage

	// Model is the model that actually served the request.
	Model string

	// StopReason is normalized to "end" or "max_tokens".
	StopReason string
}

type Usage struct {
	InputTokens  int
	OutputTokens int
	TotalTokens  int
}
