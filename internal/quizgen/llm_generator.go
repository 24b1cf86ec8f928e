package quizgen

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/abhisek/quizzy/internal/llm"
	"github.com/abhisek/quizzy/internal/quiz"
)

// LLMGenerator implements Generator on top of an llm.Provider.
type LLMGenerator struct {
	provider llm.Provider
	config   Config
}

// New creates an LLMGenerator with the given provider and config.
func New(provider llm.Provider, cfg Config) *LLMGenerator {
	return &LLMGenerator{provider: provider, config: cfg}
}

// draftOutput is one raw item of the model's array response.
type draftOutput struct {
	Text          string   `json:"text"`
	Type          string   `json:"type"`
	Options       []string `json:"options"`
	CorrectAnswer string   `json:"correct_answer"`
	FunFact       string   `json:"fun_fact"`
}

// Generate builds the policy prompt, requests one batch, parses the
// array response, and runs the validator chain.
func (g *LLMGenerator) Generate(ctx context.Context, topic quiz.Topic, p Policy) ([]quiz.Draft, error) {
	if g.provider == nil {
		return nil, &llm.ErrProviderUnavailable{Err: errors.New("no provider configured")}
	}

	ctx = llm.WithPurpose(ctx, "question-batch")
	ctx = llm.WithTopic(ctx, topic.ID)

	req := llm.Request{
		System: systemPrompt,
		Messages: []llm.Message{
			{Role: llm.RoleUser, Content: buildUserMessage(topic, p)},
		},
		Schema:      BatchSchema(p),
		MaxTokens:   g.config.MaxTokens,
		Temperature: g.config.Temperature,
	}

	resp, err := g.provider.Generate(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("LLM generation failed: %w", err)
	}

	var raw []draftOutput
	if err := json.Unmarshal(resp.Content, &raw); err != nil {
		return nil, &ErrInvalidGenerationFormat{Reason: fmt.Sprintf("response is not a JSON array: %v", err)}
	}

	batch := make([]quiz.Draft, len(raw))
	for i, r := range raw {
		batch[i] = quiz.Draft{
			Text:          r.Text,
			Type:          quiz.QuestionType(r.Type),
			Options:       r.Options,
			CorrectAnswer: r.CorrectAnswer,
			FunFact:       r.FunFact,
			Difficulty:    1, // single difficulty band for this age group
		}
	}

	for _, v := range g.config.Validators {
		if verr := v.Validate(batch, p); verr != nil {
			return nil, verr
		}
	}

	return batch, nil
}
