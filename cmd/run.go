package cmd

import (
	"fmt"
	"os"

	"github.com/abhisek/quizzy/internal/app"
	"github.com/abhisek/quizzy/internal/llm"
	"github.com/abhisek/quizzy/internal/quiz"
	"github.com/abhisek/quizzy/internal/quizgen"
	"github.com/abhisek/quizzy/internal/speech"
	"github.com/abhisek/quizzy/internal/store"
	"github.com/spf13/cobra"
)

// runApp opens the store, builds dependencies, and launches the TUI.
func runApp(cmd *cobra.Command) error {
	ctx := cmd.Context()
	dbPath, err := resolveDBPath(cmd)
	if err != nil {
		return fmt.Errorf("resolve DB path: %w", err)
	}
	st, err := store.Open(dbPath)
	if err != nil {
		return fmt.Errorf("open store: %w", err)
	}
	defer st.Close()

	deps := app.Deps{
		Topics:    st.Topics(),
		Questions: st.Questions(),
	}

	provider, err := llm.NewProviderFromEnv(ctx, st.GenerationLog())
	if err != nil {
		fmt.Fprintln(os.Stderr, "LLM provider not configured:", err)
		fmt.Fprintln(os.Stderr, "Fresh question generation will use the built-in bank only.")
	}
	// The service falls back to the built-in bank when provider is nil,
	// so topics stay playable offline.
	gen := quizgen.New(provider, quizgen.DefaultConfig())
	deps.GenService = quizgen.NewService(gen, st.Topics(), st.Questions(), st.GenerationLog())

	transcriber, err := speech.NewGoogleTranscriber(ctx)
	if err != nil {
		fmt.Fprintln(os.Stderr, "Speech-to-text not configured:", err)
		fmt.Fprintln(os.Stderr, "Voice questions will accept typed answers only.")
	} else {
		defer transcriber.Close()
		deps.Grader = quiz.NewVoiceGrader(transcriber)
	}

	return app.Run(deps)
}
