package store

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/abhisek/quizzy/internal/quiz"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open("file::memory:?cache=shared")
	if err != nil {
		t.Fatalf("open test store: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func TestOpenClose(t *testing.T) {
	s := openTestStore(t)
	if s.Client() == nil {
		t.Fatal("expected non-nil ent client")
	}
}

func TestPragmasApplied(t *testing.T) {
	s := openTestStore(t)
	db := s.DB()

	tests := []struct {
		pragma string
		want   string
	}{
		// WAL mode falls back to "memory" for in-memory databases,
		// so we skip journal_mode here. It is tested with file-based DBs.
		{"foreign_keys", "1"},
		{"synchronous", "1"}, // NORMAL = 1
	}

	for _, tt := range tests {
		var got string
		err := db.QueryRow("PRAGMA " + tt.pragma).Scan(&got)
		if err != nil {
			t.Errorf("PRAGMA %s: %v", tt.pragma, err)
			continue
		}
		if got != tt.want {
			t.Errorf("PRAGMA %s = %q, want %q", tt.pragma, got, tt.want)
		}
	}
}

func TestTopicCreateAndGet(t *testing.T) {
	s := openTestStore(t)
	repo := s.Topics()
	ctx := context.Background()

	created, err := repo.Create(ctx, "Animals", "🦁", "general")
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if created.ID == "" {
		t.Fatal("expected assigned topic ID")
	}

	got, err := repo.Get(ctx, created.ID)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got.Name != "Animals" || got.Emoji != "🦁" || got.Policy != "general" {
		t.Errorf("got %+v, want Animals/🦁/general", got)
	}
}

func TestTopicGetNotFound(t *testing.T) {
	s := openTestStore(t)

	_, err := s.Topics().Get(context.Background(), "no-such-id")
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("err = %v, want ErrNotFound", err)
	}
}

func TestTopicListOrderedByName(t *testing.T) {
	s := openTestStore(t)
	repo := s.Topics()
	ctx := context.Background()

	for _, name := range []string{"Space", "Animals", "Math"} {
		if _, err := repo.Create(ctx, name, "⭐", "general"); err != nil {
			t.Fatalf("create %s: %v", name, err)
		}
	}

	topics, err := repo.List(ctx)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(topics) != 3 {
		t.Fatalf("len = %d, want 3", len(topics))
	}
	want := []string{"Animals", "Math", "Space"}
	for i, topic := range topics {
		if topic.Name != want[i] {
			t.Errorf("topics[%d] = %q, want %q", i, topic.Name, want[i])
		}
	}
}

func TestQuestionBatchRoundTrip(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	topic, err := s.Topics().Create(ctx, "Animals", "🦁", "general")
	if err != nil {
		t.Fatalf("create topic: %v", err)
	}

	batch := []quiz.Draft{
		{
			Text:          "What sound does a cow make?",
			Type:          quiz.TypeMultipleChoice,
			Options:       []string{"Moo", "Woof", "Meow", "Quack"},
			CorrectAnswer: "Moo",
			FunFact:       "Cows have best friends!",
			Difficulty:    1,
		},
		{
			Text:          "A spider has eight legs.",
			Type:          quiz.TypeTrueFalse,
			Options:       []string{"true", "false"},
			CorrectAnswer: "true",
			FunFact:       "Spiders are arachnids, not insects.",
			Difficulty:    1,
		},
		{
			Text:          "A baby dog is called a _____.",
			Type:          quiz.TypeFillBlank,
			CorrectAnswer: "puppy",
			FunFact:       "Puppies are born blind.",
			Difficulty:    1,
		},
	}

	inserted, err := s.Questions().InsertBatch(ctx, topic.ID, batch)
	if err != nil {
		t.Fatalf("insert batch: %v", err)
	}
	if len(inserted) != 3 {
		t.Fatalf("inserted = %d, want 3", len(inserted))
	}

	got, err := s.Questions().Select(ctx, topic.ID, 0)
	if err != nil {
		t.Fatalf("select: %v", err)
	}
	if len(got) != 3 {
		t.Fatalf("selected = %d, want 3", len(got))
	}

	// Insertion order is preserved.
	for i, q := range got {
		if q.Text != batch[i].Text {
			t.Errorf("questions[%d].Text = %q, want %q", i, q.Text, batch[i].Text)
		}
		if q.Type != batch[i].Type {
			t.Errorf("questions[%d].Type = %q, want %q", i, q.Type, batch[i].Type)
		}
		if q.TopicID != topic.ID {
			t.Errorf("questions[%d].TopicID = %q, want %q", i, q.TopicID, topic.ID)
		}
	}
	if len(got[0].Options) != 4 {
		t.Errorf("options = %v, want 4 entries", got[0].Options)
	}
}

func TestQuestionSelectLimit(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	topic, err := s.Topics().Create(ctx, "Math", "🔢", "general")
	if err != nil {
		t.Fatalf("create topic: %v", err)
	}

	var batch []quiz.Draft
	for i := 0; i < 10; i++ {
		batch = append(batch, quiz.Draft{
			Text:          "What is 1 + 1?",
			Type:          quiz.TypeFillBlank,
			CorrectAnswer: "2",
			FunFact:       "Addition is commutative.",
			Difficulty:    1,
		})
	}
	if _, err := s.Questions().InsertBatch(ctx, topic.ID, batch); err != nil {
		t.Fatalf("insert batch: %v", err)
	}

	got, err := s.Questions().Select(ctx, topic.ID, 4)
	if err != nil {
		t.Fatalf("select: %v", err)
	}
	if len(got) != 4 {
		t.Errorf("selected = %d, want 4", len(got))
	}
}

func TestQuestionDeleteByTopic(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	keep, err := s.Topics().Create(ctx, "Keep", "✅", "general")
	if err != nil {
		t.Fatalf("create topic: %v", err)
	}
	wipe, err := s.Topics().Create(ctx, "Wipe", "🧹", "general")
	if err != nil {
		t.Fatalf("create topic: %v", err)
	}

	draft := []quiz.Draft{{
		Text:          "Is water wet?",
		Type:          quiz.TypeYesNo,
		Options:       []string{"yes", "no"},
		CorrectAnswer: "yes",
		FunFact:       "Water covers most of Earth.",
		Difficulty:    1,
	}}
	for _, topic := range []*quiz.Topic{keep, wipe} {
		if _, err := s.Questions().InsertBatch(ctx, topic.ID, draft); err != nil {
			t.Fatalf("insert for %s: %v", topic.Name, err)
		}
	}

	if err := s.Questions().DeleteByTopic(ctx, wipe.ID); err != nil {
		t.Fatalf("delete: %v", err)
	}

	gone, err := s.Questions().Select(ctx, wipe.ID, 0)
	if err != nil {
		t.Fatalf("select wiped: %v", err)
	}
	if len(gone) != 0 {
		t.Errorf("wiped topic still has %d questions", len(gone))
	}

	kept, err := s.Questions().Select(ctx, keep.ID, 0)
	if err != nil {
		t.Fatalf("select kept: %v", err)
	}
	if len(kept) != 1 {
		t.Errorf("kept topic has %d questions, want 1", len(kept))
	}

	// Deleting an empty topic is a no-op.
	if err := s.Questions().DeleteByTopic(ctx, wipe.ID); err != nil {
		t.Fatalf("delete empty: %v", err)
	}
}

func TestGenerationLogAppend(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	err := s.GenerationLog().AppendGeneration(ctx, GenerationEventData{
		TopicID:      "topic-1",
		Provider:     "claude-haiku",
		Source:       "generated",
		Questions:    10,
		Success:      true,
		InputTokens:  900,
		OutputTokens: 400,
		LatencyMs:    1200,
	})
	if err != nil {
		t.Fatalf("append: %v", err)
	}

	count, err := s.Client().GenerationEvent.Query().Count(ctx)
	if err != nil {
		t.Fatalf("count: %v", err)
	}
	if count != 1 {
		t.Errorf("events = %d, want 1", count)
	}
}

func TestGenerationLogRecent(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	base := time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)
	for i := 0; i < 3; i++ {
		err := s.GenerationLog().AppendGeneration(ctx, GenerationEventData{
			TopicID:   "topic-1",
			Source:    "generated",
			Questions: 10,
			Success:   true,
			Timestamp: base.Add(time.Duration(i) * time.Minute),
		})
		if err != nil {
			t.Fatalf("append %d: %v", i, err)
		}
	}

	events, err := s.GenerationLog().Recent(ctx, 2)
	if err != nil {
		t.Fatalf("recent: %v", err)
	}
	if len(events) != 2 {
		t.Fatalf("events = %d, want 2", len(events))
	}
	if !events[0].Timestamp.After(events[1].Timestamp) {
		t.Errorf("events not newest first: %v then %v", events[0].Timestamp, events[1].Timestamp)
	}

	all, err := s.GenerationLog().Recent(ctx, 0)
	if err != nil {
		t.Fatalf("recent all: %v", err)
	}
	if len(all) != 3 {
		t.Errorf("all events = %d, want 3", len(all))
	}
}

func TestGenerationLogAppendFailure(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	err := s.GenerationLog().AppendGeneration(ctx, GenerationEventData{
		TopicID:      "topic-1",
		Provider:     "claude-haiku",
		Source:       "fallback",
		Questions:    10,
		Success:      false,
		ErrorMessage: "rate limited",
	})
	if err != nil {
		t.Fatalf("append: %v", err)
	}
}

func TestAutoMigrationCreatesTables(t *testing.T) {
	s := openTestStore(t)
	db := s.DB()

	for _, table := range []string{"topics", "questions", "generation_events"} {
		var name string
		err := db.QueryRow(
			"SELECT name FROM sqlite_master WHERE type='table' AND name=?", table,
		).Scan(&name)
		if err != nil {
			t.Fatalf("query sqlite_master for %s: %v", table, err)
		}
		if name != table {
			t.Errorf("table name = %q, want %q", name, table)
		}
	}
}
