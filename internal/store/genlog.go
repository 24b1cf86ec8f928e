package store

import (
	"context"
	"fmt"
	"time"

	"github.com/abhisek/quizzy/ent"
	"github.com/abhisek/quizzy/ent/generationevent"
)

// generationLogRepo implements GenerationLogRepo using the ent client.
type generationLogRepo struct {
	client *ent.Client
}

func (r *generationLogRepo) AppendGeneration(ctx context.Context, data GenerationEventData) error {
	ts := data.Timestamp
	if ts.IsZero() {
		ts = time.Now()
	}

	_, err := r.client.GenerationEvent.Create().
		SetTimestamp(ts).
		SetTopicID(data.TopicID).
		SetProvider(data.Provider).
		SetSource(data.Source).
		SetQuestions(data.Questions).
		SetSuccess(data.Success).
		SetErrorMessage(data.ErrorMessage).
		SetInputTokens(data.InputTokens).
		SetOutputTokens(data.OutputTokens).
		SetLatencyMs(data.LatencyMs).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("append generation event: %w", err)
	}
	return nil
}

func (r *generationLogRepo) Recent(ctx context.Context, limit int) ([]GenerationEvent, error) {
	q := r.client.GenerationEvent.Query().
		Order(ent.Desc(generationevent.FieldTimestamp), ent.Desc(generationevent.FieldID))
	if limit > 0 {
		q = q.Limit(limit)
	}

	rows, err := q.All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query generation events: %w", err)
	}

	events := make([]GenerationEvent, 0, len(rows))
	for _, row := range rows {
		events = append(events, GenerationEvent{
			ID: row.ID,
			GenerationEventData: GenerationEventData{
				TopicID:      row.TopicID,
				Provider:     row.Provider,
				Source:       row.Source,
				Questions:    row.Questions,
				Success:      row.Success,
				ErrorMessage: row.ErrorMessage,
				InputTokens:  row.InputTokens,
				OutputTokens: row.OutputTokens,
				LatencyMs:    row.LatencyMs,
				Timestamp:    row.Timestamp,
			},
		})
	}
	return events, nil
}
