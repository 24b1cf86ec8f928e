package cmd

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/abhisek/quizzy/internal/llm"
	"github.com/abhisek/quizzy/internal/quiz"
	"github.com/abhisek/quizzy/internal/quizgen"
	"github.com/spf13/cobra"
)

var previewCmd = &cobra.Command{
	Use:   "preview <topic name>",
	Short: "Preview LLM-generated questions for a topic (no database)",
	Long: `Generate and interactively answer a question batch for an ad hoc topic.

This is a stateless developer tool — nothing is stored and no events are
logged. Useful for evaluating question quality and tuning prompts.`,
	Args: cobra.ExactArgs(1),
	RunE: runPreview,
}

func init() {
	previewCmd.Flags().String("policy", "", "Generation policy (general or vocabulary, auto-detected when empty)")
}

func runPreview(cmd *cobra.Command, args []string) error {
	name := strings.TrimSpace(args[0])
	policyName, _ := cmd.Flags().GetString("policy")
	if policyName == "" {
		policyName = quizgen.DetectPolicyName(name)
	}

	topic := quiz.Topic{ID: "preview", Name: name, Policy: policyName}
	policy := quizgen.PolicyFor(topic)

	// No GenerationLogRepo — logging skipped.
	ctx := context.Background()
	provider, err := llm.NewProviderFromEnv(ctx, nil)
	if err != nil {
		return fmt.Errorf("LLM provider: %w", err)
	}

	gen := quizgen.New(provider, quizgen.DefaultConfig())
	fmt.Printf("Topic: %s (policy: %s)\n", name, policy.Name)
	fmt.Printf("Generating %d questions...\n\n", policy.BatchSize)

	batch, err := gen.Generate(ctx, topic, policy)
	if err != nil {
		return fmt.Errorf("generate batch: %w", err)
	}

	scanner := bufio.NewScanner(os.Stdin)
	var correct, answered int

	for i, d := range batch {
		q := &quiz.Question{
			Text:          d.Text,
			Type:          d.Type,
			Options:       d.Options,
			CorrectAnswer: d.CorrectAnswer,
			FunFact:       d.FunFact,
		}

		fmt.Printf("── Question %d/%d (%s) ──\n", i+1, len(batch), q.Type)
		fmt.Println(q.Text)
		for j, opt := range q.Options {
			fmt.Printf("  %d) %s\n", j+1, opt)
		}

		fmt.Print("\nYour answer: ")
		if !scanner.Scan() {
			fmt.Println("\n(input closed)")
			break
		}
		answer := strings.TrimSpace(scanner.Text())
		if answer == "" {
			fmt.Print("(skipped)\n\n")
			continue
		}

		// Option questions also accept the option number.
		if n := optionIndex(answer, q.Options); n >= 0 {
			answer = q.Options[n]
		}

		answered++
		if quiz.Evaluate(q, answer) {
			correct++
			fmt.Println("Correct!")
		} else {
			fmt.Printf("Not quite. The answer is: %s\n", q.CorrectAnswer)
		}
		if q.FunFact != "" {
			fmt.Println("Fun fact:", q.FunFact)
		}
		fmt.Println()
	}

	fmt.Printf("Score: %d/%d\n", correct, answered)
	return nil
}

// optionIndex interprets s as a 1-based option number, returning the
// zero-based index or -1.
func optionIndex(s string, options []string) int {
	if len(s) != 1 || s[0] < '1' {
		return -1
	}
	n := int(s[0] - '1')
	if n >= len(options) {
		return -1
	}
	return n
}
