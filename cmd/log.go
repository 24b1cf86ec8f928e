package cmd

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

var logCmd = &cobra.Command{
	Use:   "log",
	Short: "Inspect generation attempt events",
	RunE: func(cmd *cobra.Command, args []string) error {
		limit, _ := cmd.Flags().GetInt("limit")
		source, _ := cmd.Flags().GetString("source")

		st, err := openStore(cmd)
		if err != nil {
			return err
		}
		defer st.Close()

		events, err := st.GenerationLog().Recent(context.Background(), limit)
		if err != nil {
			return fmt.Errorf("query events: %w", err)
		}
		if len(events) == 0 {
			fmt.Println("No generation events found.")
			return nil
		}

		// Header.
		fmt.Printf("%-5s  %-19s  %-11s  %-28s  %-4s  %-6s  %-6s  %-7s  %s\n",
			"ID", "Timestamp", "Source", "Provider", "Qs", "In", "Out", "Ms", "OK")
		fmt.Println(strings.Repeat("─", 100))

		for _, e := range events {
			if source != "" && e.Source != source {
				continue
			}
			ok := "✓"
			if !e.Success {
				ok = "✗"
			}
			provider := e.Provider
			if len(provider) > 28 {
				provider = provider[:28]
			}
			fmt.Printf("%-5d  %-19s  %-11s  %-28s  %-4d  %-6d  %-6d  %-7d  %s\n",
				e.ID,
				e.Timestamp.Local().Format("2006-01-02 15:04:05"),
				e.Source,
				provider,
				e.Questions,
				e.InputTokens,
				e.OutputTokens,
				e.LatencyMs,
				ok,
			)
		}
		return nil
	},
}

func init() {
	logCmd.Flags().Int("limit", 20, "Maximum number of events to show")
	logCmd.Flags().String("source", "", "Filter by source (llm_request, generated or fallback)")
}
