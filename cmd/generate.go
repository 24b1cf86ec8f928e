package cmd

import (
	"context"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/abhisek/quizzy/internal/llm"
	"github.com/abhisek/quizzy/internal/quiz"
	"github.com/abhisek/quizzy/internal/quizgen"
	"github.com/abhisek/quizzy/internal/store"
	"github.com/spf13/cobra"
)

var generateCmd = &cobra.Command{
	Use:   "generate [topic]",
	Short: "Regenerate the question batch for a topic",
	Long: `Replace a topic's stored questions with a freshly generated batch.

The topic may be given by name or ID. When the LLM provider is not
configured or generation fails, the built-in question bank fills in.`,
	RunE: runGenerate,
}

func init() {
	generateCmd.Flags().Bool("all", false, "Regenerate every topic")
}

func runGenerate(cmd *cobra.Command, args []string) error {
	all, _ := cmd.Flags().GetBool("all")
	if all == (len(args) > 0) {
		return fmt.Errorf("pass a topic name or --all (not both)")
	}

	st, err := openStore(cmd)
	if err != nil {
		return err
	}
	defer st.Close()

	ctx := context.Background()
	provider, err := llm.NewProviderFromEnv(ctx, st.GenerationLog())
	if err != nil {
		fmt.Fprintln(os.Stderr, "LLM provider not configured:", err)
		fmt.Fprintln(os.Stderr, "Using the built-in question bank.")
	}
	gen := quizgen.New(provider, quizgen.DefaultConfig())
	svc := quizgen.NewService(gen, st.Topics(), st.Questions(), st.GenerationLog())

	var targets []*quiz.Topic
	if all {
		targets, err = st.Topics().List(ctx)
		if err != nil {
			return fmt.Errorf("list topics: %w", err)
		}
		if len(targets) == 0 {
			fmt.Println("No topics yet. Add one with: quizzy topics add <name>")
			return nil
		}
	} else {
		topic, err := resolveTopic(ctx, st.Topics(), args[0])
		if err != nil {
			return err
		}
		targets = []*quiz.Topic{topic}
	}

	for i, topic := range targets {
		// Courtesy delay between batch requests.
		if i > 0 && provider != nil {
			time.Sleep(2 * time.Second)
		}
		res, err := svc.Regenerate(ctx, topic.ID)
		if err != nil {
			return fmt.Errorf("regenerate %s: %w", topic.Name, err)
		}
		fmt.Printf("%s %s: %d questions (%s)\n",
			topic.Emoji, res.TopicName, res.QuestionsGenerated, res.Source)
	}
	return nil
}

// resolveTopic finds a topic by ID first, then by case-insensitive name.
func resolveTopic(ctx context.Context, topics store.TopicRepo, key string) (*quiz.Topic, error) {
	if t, err := topics.Get(ctx, key); err == nil {
		return t, nil
	}

	list, err := topics.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list topics: %w", err)
	}
	for _, t := range list {
		if strings.EqualFold(t.Name, key) {
			return t, nil
		}
	}
	return nil, fmt.Errorf("no topic named %q (try: quizzy topics list)", key)
}
