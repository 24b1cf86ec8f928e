package quizgen

import (
	"context"
	"errors"
	"testing"

	"github.com/abhisek/quizzy/internal/quiz"
	"github.com/abhisek/quizzy/internal/store"
)

type fakeTopicRepo struct {
	topics map[string]*quiz.Topic
}

func (r *fakeTopicRepo) Get(_ context.Context, id string) (*quiz.Topic, error) {
	if t, ok := r.topics[id]; ok {
		return t, nil
	}
	return nil, store.ErrNotFound
}

func (r *fakeTopicRepo) List(_ context.Context) ([]*quiz.Topic, error) {
	var out []*quiz.Topic
	for _, t := range r.topics {
		out = append(out, t)
	}
	return out, nil
}

func (r *fakeTopicRepo) Create(_ context.Context, name, emoji, policy string) (*quiz.Topic, error) {
	t := &quiz.Topic{ID: name, Name: name, Emoji: emoji, Policy: policy}
	r.topics[t.ID] = t
	return t, nil
}

type fakeQuestionRepo struct {
	byTopic   map[string][]*quiz.Question
	deleteErr error
	insertErr error
	deletes   int
}

func (r *fakeQuestionRepo) Select(_ context.Context, topicID string, limit int) ([]*quiz.Question, error) {
	qs := r.byTopic[topicID]
	if limit > 0 && len(qs) > limit {
		qs = qs[:limit]
	}
	return qs, nil
}

func (r *fakeQuestionRepo) DeleteByTopic(_ context.Context, topicID string) error {
	r.deletes++
	if r.deleteErr != nil {
		return r.deleteErr
	}
	delete(r.byTopic, topicID)
	return nil
}

func (r *fakeQuestionRepo) InsertBatch(_ context.Context, topicID string, batch []quiz.Draft) ([]*quiz.Question, error) {
	if r.insertErr != nil {
		return nil, r.insertErr
	}
	qs := make([]*quiz.Question, len(batch))
	for i, d := range batch {
		qs[i] = &quiz.Question{
			ID:            topicID + "-" + string(rune('a'+i)),
			TopicID:       topicID,
			Text:          d.Text,
			Type:          d.Type,
			Options:       d.Options,
			CorrectAnswer: d.CorrectAnswer,
			FunFact:       d.FunFact,
			Difficulty:    d.Difficulty,
		}
	}
	r.byTopic[topicID] = qs
	return qs, nil
}

// fixedGenerator returns the same batch or error on every call.
type fixedGenerator struct {
	batch []quiz.Draft
	err   error
}

func (g *fixedGenerator) Generate(_ context.Context, _ quiz.Topic, _ Policy) ([]quiz.Draft, error) {
	return g.batch, g.err
}

func newServiceFixture(gen Generator) (*Service, *fakeQuestionRepo, *recordingGenLog) {
	topics := &fakeTopicRepo{topics: map[string]*quiz.Topic{
		"animals": {ID: "animals", Name: "Animals", Emoji: "🦁", Policy: PolicyGeneral},
		"telugu":  {ID: "telugu", Name: "Telugu Words", Emoji: "🗣️", Policy: PolicyVocabulary},
	}}
	questions := &fakeQuestionRepo{byTopic: map[string][]*quiz.Question{}}
	log := &recordingGenLog{}
	return NewService(gen, topics, questions, log), questions, log
}

type recordingGenLog struct {
	events []store.GenerationEventData
}

func (r *recordingGenLog) AppendGeneration(_ context.Context, data store.GenerationEventData) error {
	r.events = append(r.events, data)
	return nil
}

func (r *recordingGenLog) Recent(_ context.Context, _ int) ([]store.GenerationEvent, error) {
	return nil, nil
}

func TestServiceRegenerateSuccess(t *testing.T) {
	svc, questions, log := newServiceFixture(&fixedGenerator{batch: validGeneralBatch()})

	res, err := svc.Regenerate(context.Background(), "animals")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if res.Source != "generated" {
		t.Errorf("source = %q, want %q", res.Source, "generated")
	}
	if res.TopicName != "Animals" {
		t.Errorf("topic name = %q, want %q", res.TopicName, "Animals")
	}
	if res.QuestionsGenerated != 10 {
		t.Errorf("generated = %d, want 10", res.QuestionsGenerated)
	}
	if len(questions.byTopic["animals"]) != 10 {
		t.Errorf("stored = %d, want 10", len(questions.byTopic["animals"]))
	}

	if len(log.events) != 1 {
		t.Fatalf("log events = %d, want 1", len(log.events))
	}
	ev := log.events[0]
	if !ev.Success || ev.Source != "generated" || ev.Questions != 10 {
		t.Errorf("event = %+v, want success generated/10", ev)
	}
}

func TestServiceRegenerateFallsBackOnGenerationError(t *testing.T) {
	svc, questions, log := newServiceFixture(&fixedGenerator{
		err: &ErrInvalidGenerationFormat{Reason: "expected 10 questions, got 3"},
	})

	res, err := svc.Regenerate(context.Background(), "animals")
	if err != nil {
		t.Fatalf("generation failure must be recovered, got: %v", err)
	}

	if res.Source != "fallback" {
		t.Errorf("source = %q, want %q", res.Source, "fallback")
	}
	if res.QuestionsGenerated != 10 {
		t.Errorf("generated = %d, want 10 from fallback bank", res.QuestionsGenerated)
	}
	if len(questions.byTopic["animals"]) != 10 {
		t.Errorf("stored = %d, want 10", len(questions.byTopic["animals"]))
	}

	// The failed attempt and the fallback success are both logged.
	if len(log.events) != 2 {
		t.Fatalf("log events = %d, want 2", len(log.events))
	}
	if log.events[0].Success || log.events[0].ErrorMessage == "" {
		t.Errorf("first event = %+v, want logged failure", log.events[0])
	}
	if !log.events[1].Success || log.events[1].Source != "fallback" {
		t.Errorf("second event = %+v, want fallback success", log.events[1])
	}
}

func TestServiceRegenerateVocabularyFallbackSize(t *testing.T) {
	svc, questions, _ := newServiceFixture(&fixedGenerator{
		err: &ErrUnsafeContent{Field: "text", Term: "scary"},
	})

	res, err := svc.Regenerate(context.Background(), "telugu")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if res.QuestionsGenerated != 5 {
		t.Errorf("generated = %d, want 5 for vocabulary policy", res.QuestionsGenerated)
	}
	for i, q := range questions.byTopic["telugu"] {
		if q.Type != quiz.TypeVoiceInput {
			t.Errorf("question %d type = %q, want voice_input", i, q.Type)
		}
	}
}

func TestServiceRegenerateTopicNotFound(t *testing.T) {
	svc, _, _ := newServiceFixture(&fixedGenerator{batch: validGeneralBatch()})

	_, err := svc.Regenerate(context.Background(), "no-such-topic")
	if !errors.Is(err, ErrTopicNotFound) {
		t.Fatalf("err = %v, want ErrTopicNotFound", err)
	}
}

func TestServiceRegeneratePersistenceFailure(t *testing.T) {
	svc, questions, _ := newServiceFixture(&fixedGenerator{batch: validGeneralBatch()})
	questions.insertErr = errors.New("disk full")

	_, err := svc.Regenerate(context.Background(), "animals")
	var persistErr *ErrPersistenceFailed
	if !errors.As(err, &persistErr) {
		t.Fatalf("err = %T, want *ErrPersistenceFailed", err)
	}
}

func TestServiceRegenerateDeleteFailureContinues(t *testing.T) {
	svc, questions, _ := newServiceFixture(&fixedGenerator{batch: validGeneralBatch()})
	questions.deleteErr = errors.New("locked")

	res, err := svc.Regenerate(context.Background(), "animals")
	if err != nil {
		t.Fatalf("delete failure must not abort regeneration: %v", err)
	}
	if res.QuestionsGenerated != 10 {
		t.Errorf("generated = %d, want 10", res.QuestionsGenerated)
	}
	if questions.deletes != 1 {
		t.Errorf("deletes = %d, want 1", questions.deletes)
	}
}

func TestServiceRegenerateReplacesOldBatch(t *testing.T) {
	svc, questions, _ := newServiceFixture(&fixedGenerator{batch: validGeneralBatch()})

	questions.byTopic["animals"] = []*quiz.Question{
		{ID: "stale", TopicID: "animals", Text: "old question"},
	}

	if _, err := svc.Regenerate(context.Background(), "animals"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	stored := questions.byTopic["animals"]
	if len(stored) != 10 {
		t.Fatalf("stored = %d, want 10", len(stored))
	}
	for _, q := range stored {
		if q.ID == "stale" {
			t.Error("stale question survived regeneration")
		}
	}
}
