package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
)

var resetCmd = &cobra.Command{
	Use:   "reset <topic>",
	Short: "Delete a topic's stored questions",
	Long: `Remove every stored question for a topic. The topic itself is kept;
the next "quizzy generate" run fills it again.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		st, err := openStore(cmd)
		if err != nil {
			return err
		}
		defer st.Close()

		ctx := context.Background()
		topic, err := resolveTopic(ctx, st.Topics(), args[0])
		if err != nil {
			return err
		}
		if err := st.Questions().DeleteByTopic(ctx, topic.ID); err != nil {
			return fmt.Errorf("delete questions: %w", err)
		}
		fmt.Printf("Cleared questions for %s %s\n", topic.Emoji, topic.Name)
		return nil
	},
}
