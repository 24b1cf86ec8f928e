package store

import (
	"context"
	"fmt"

	"github.com/abhisek/quizzy/ent"
	"github.com/abhisek/quizzy/ent/topic"
	"github.com/abhisek/quizzy/internal/quiz"
)

// topicRepo implements TopicRepo using the ent client.
type topicRepo struct {
	client *ent.Client
}

func (r *topicRepo) Get(ctx context.Context, id string) (*quiz.Topic, error) {
	t, err := r.client.Topic.Query().
		Where(topic.IDEQ(id)).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("query topic: %w", err)
	}
	return entTopicToTopic(t), nil
}

func (r *topicRepo) List(ctx context.Context) ([]*quiz.Topic, error) {
	rows, err := r.client.Topic.Query().
		Order(ent.Asc(topic.FieldName)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("list topics: %w", err)
	}
	topics := make([]*quiz.Topic, len(rows))
	for i, t := range rows {
		topics[i] = entTopicToTopic(t)
	}
	return topics, nil
}

func (r *topicRepo) Create(ctx context.Context, name, emoji, policy string) (*quiz.Topic, error) {
	t, err := r.client.Topic.Create().
		SetName(name).
		SetEmoji(emoji).
		SetPolicy(policy).
		Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("create topic: %w", err)
	}
	return entTopicToTopic(t), nil
}

func entTopicToTopic(t *ent.Topic) *quiz.Topic {
	return &quiz.Topic{
		ID:     t.ID,
		Name:   t.Name,
		Emoji:  t.Emoji,
		Policy: t.Policy,
	}
}
