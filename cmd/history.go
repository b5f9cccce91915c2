package cmd

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/ngxhuy/viva/internal/store"
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "List past sessions",
	RunE: func(cmd *cobra.Command, args []string) error {
		candidate, _ := cmd.Flags().GetString("candidate")
		limit, _ := cmd.Flags().GetInt("limit")

		dbPath, err := resolveDBPath(cmd)
		if err != nil {
			return fmt.Errorf("resolve DB path: %w", err)
		}
		st, err := store.Open(dbPath)
		if err != nil {
			return fmt.Errorf("open store: %w", err)
		}
		defer st.Close()

		rows, err := store.NewSummaryRepository(st).List(context.Background(), candidate, limit)
		if err != nil {
			return fmt.Errorf("list sessions: %w", err)
		}
		if len(rows) == 0 {
			fmt.Println("No sessions recorded yet.")
			return nil
		}

		fmt.Printf("%-36s  %-19s  %-12s  %-9s  %-16s  %5s  %5s\n",
			"Session", "Timestamp", "Candidate", "Level", "Topic", "Qs", "Score")
		fmt.Println(strings.Repeat("─", 110))
		for _, r := range rows {
			topic := r.Topic
			if len(topic) > 16 {
				topic = topic[:16]
			}
			fmt.Printf("%-36s  %-19s  %-12s  %-9s  %-16s  %5d  %5.2f\n",
				r.SessionID,
				r.CreatedAt.Local().Format("2006-01-02 15:04:05"),
				r.CandidateID,
				r.Level,
				topic,
				r.QuestionCount,
				r.FinalScore,
			)
		}
		return nil
	},
}

var historyShowCmd = &cobra.Command{
	Use:   "show <session-id>",
	Short: "Show the full transcript of a session",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		dbPath, err := resolveDBPath(cmd)
		if err != nil {
			return fmt.Errorf("resolve DB path: %w", err)
		}
		st, err := store.Open(dbPath)
		if err != nil {
			return fmt.Errorf("open store: %w", err)
		}
		defer st.Close()

		sum, err := store.NewSummaryRepository(st).Get(context.Background(), args[0])
		if err != nil {
			return fmt.Errorf("load session: %w", err)
		}
		if sum == nil {
			return fmt.Errorf("session %q not found", args[0])
		}

		printSummary(sum)
		return nil
	},
}

func init() {
	historyCmd.Flags().StringP("candidate", "c", "", "Filter by candidate ID")
	historyCmd.Flags().IntP("limit", "n", 20, "Number of sessions to show")
	historyCmd.AddCommand(historyShowCmd)
}
