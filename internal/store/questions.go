package store

import (
	"context"
	"fmt"

	"github.com/abhisek/quizzy/ent"
	"github.com/abhisek/quizzy/ent/question"
	"github.com/abhisek/quizzy/internal/quiz"
)

// questionRepo implements QuestionRepo using the ent client.
type questionRepo struct {
	client *ent.Client
}

func (r *questionRepo) Select(ctx context.Context, topicID string, limit int) ([]*quiz.Question, error) {
	q := r.client.Question.Query().
		Where(question.TopicIDEQ(topicID)).
		Order(ent.Asc(question.FieldPosition))
	if limit > 0 {
		q = q.Limit(limit)
	}

	rows, err := q.All(ctx)
	if err != nil {
		return nil, fmt.Errorf("select questions: %w", err)
	}

	questions := make([]*quiz.Question, len(rows))
	for i, row := range rows {
		questions[i] = entQuestionToQuestion(row)
	}
	return questions, nil
}

func (r *questionRepo) DeleteByTopic(ctx context.Context, topicID string) error {
	_, err := r.client.Question.Delete().
		Where(question.TopicIDEQ(topicID)).
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("delete questions: %w", err)
	}
	return nil
}

func (r *questionRepo) InsertBatch(ctx context.Context, topicID string, batch []quiz.Draft) ([]*quiz.Question, error) {
	builders := make([]*ent.QuestionCreate, len(batch))
	for i, d := range batch {
		builders[i] = r.client.Question.Create().
			SetTopicID(topicID).
			SetText(d.Text).
			SetQuestionType(string(d.Type)).
			SetOptions(d.Options).
			SetCorrectAnswer(d.CorrectAnswer).
			SetFunFact(d.FunFact).
			SetDifficulty(d.Difficulty).
			SetPosition(i)
	}

	rows, err := r.client.Question.CreateBulk(builders...).Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("insert question batch: %w", err)
	}

	questions := make([]*quiz.Question, len(rows))
	for i, row := range rows {
		questions[i] = entQuestionToQuestion(row)
	}
	return questions, nil
}

func entQuestionToQuestion(q *ent.Question) *quiz.Question {
	return &quiz.Question{
		ID:            q.ID,
		TopicID:       q.TopicID,
		Text:          q.Text,
		Type:          quiz.QuestionType(q.QuestionType),
		Options:       q.Options,
		CorrectAnswer: q.CorrectAnswer,
		FunFact:       q.FunFact,
		Difficulty:    q.Difficulty,
	}
}
