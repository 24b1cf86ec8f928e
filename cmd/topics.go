package cmd

import (
	"context"
	"fmt"
	"strings"

	"github.com/abhisek/quizzy/internal/quizgen"
	"github.com/abhisek/quizzy/internal/store"
	"github.com/spf13/cobra"
)

var topicsCmd = &cobra.Command{
	Use:   "topics",
	Short: "Manage quiz topics",
}

var topicsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List all topics",
	RunE: func(cmd *cobra.Command, args []string) error {
		st, err := openStore(cmd)
		if err != nil {
			return err
		}
		defer st.Close()

		ctx := context.Background()
		topics, err := st.Topics().List(ctx)
		if err != nil {
			return fmt.Errorf("list topics: %w", err)
		}
		if len(topics) == 0 {
			fmt.Println("No topics yet. Add one with: quizzy topics add <name>")
			return nil
		}

		fmt.Printf("%-38s  %-4s  %-20s  %-10s  %s\n", "ID", "", "Name", "Policy", "Questions")
		fmt.Println(strings.Repeat("─", 90))
		for _, t := range topics {
			qs, err := st.Questions().Select(ctx, t.ID, 0)
			if err != nil {
				return fmt.Errorf("count questions for %s: %w", t.Name, err)
			}
			fmt.Printf("%-38s  %-4s  %-20s  %-10s  %d\n", t.ID, t.Emoji, t.Name, t.Policy, len(qs))
		}
		return nil
	},
}

var topicsAddCmd = &cobra.Command{
	Use:   "add <name>",
	Short: "Add a new topic",
	Example: `  quizzy topics add "Animals" --emoji 🦁
  quizzy topics add "Space" --emoji 🚀
  quizzy topics add "Math Fun" --emoji 🔢
  quizzy topics add "Telugu Words" --emoji 🗣️`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		name := strings.TrimSpace(args[0])
		if name == "" {
			return fmt.Errorf("topic name must not be empty")
		}
		emoji, _ := cmd.Flags().GetString("emoji")
		policy, _ := cmd.Flags().GetString("policy")
		if policy == "" {
			policy = quizgen.DetectPolicyName(name)
		}
		if policy != quizgen.PolicyGeneral && policy != quizgen.PolicyVocabulary {
			return fmt.Errorf("unknown policy %q: must be %s or %s",
				policy, quizgen.PolicyGeneral, quizgen.PolicyVocabulary)
		}

		st, err := openStore(cmd)
		if err != nil {
			return err
		}
		defer st.Close()

		topic, err := st.Topics().Create(context.Background(), name, emoji, policy)
		if err != nil {
			return fmt.Errorf("create topic: %w", err)
		}
		fmt.Printf("Added %s %s (policy: %s)\n", topic.Emoji, topic.Name, topic.Policy)
		fmt.Println("Generate its first question batch with: quizzy generate", fmt.Sprintf("%q", topic.Name))
		return nil
	},
}

func init() {
	topicsAddCmd.Flags().String("emoji", "❓", "Emoji shown next to the topic")
	topicsAddCmd.Flags().String("policy", "", "Generation policy (general or vocabulary, auto-detected when empty)")

	topicsCmd.AddCommand(topicsListCmd)
	topicsCmd.AddCommand(topicsAddCmd)
}

// openStore resolves the DB path and opens the store for subcommands.
func openStore(cmd *cobra.Command) (*store.Store, error) {
	dbPath, err := resolveDBPath(cmd)
	if err != nil {
		return nil, fmt.Errorf("resolve DB path: %w", err)
	}
	st, err := store.Open(dbPath)
	if err != nil {
		return nil, fmt.Errorf("open store: %w", err)
	}
	return st, nil
}
