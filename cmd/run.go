package cmd

import (
	"bufio"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/ngxhuy/viva/internal/exam"
	"github.com/ngxhuy/viva/internal/interview"
	"github.com/ngxhuy/viva/internal/llm"
	"github.com/ngxhuy/viva/internal/retrieval"
	"github.com/ngxhuy/viva/internal/store"
)

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Run an oral-exam session",
	RunE: func(cmd *cobra.Command, args []string) error {
		candidate, _ := cmd.Flags().GetString("candidate")
		topic, _ := cmd.Flags().GetString("topic")
		refsPath, _ := cmd.Flags().GetString("refs")
		outPath, _ := cmd.Flags().GetString("out")

		log := newLogger(cmd)

		// Ctrl-C ends the session early; the summary still covers the
		// questions answered so far.
		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		dbPath, err := resolveDBPath(cmd)
		if err != nil {
			return fmt.Errorf("resolve DB path: %w", err)
		}
		st, err := store.Open(dbPath)
		if err != nil {
			return fmt.Errorf("open store: %w", err)
		}
		defer st.Close()

		provider, err := llm.NewProviderFromEnv(ctx, store.NewLLMEventRepository(st), log)
		if err != nil {
			return fmt.Errorf("configure LLM provider: %w", err)
		}

		var retriever retrieval.Retriever = retrieval.None{}
		if refsPath != "" {
			passages, err := retrieval.LoadPassages(refsPath)
			if err != nil {
				return fmt.Errorf("load reference material: %w", err)
			}
			retriever = retrieval.Static{Passages: passages}
		}

		iv := interview.New(interview.Options{
			Provider:  provider,
			Profiles:  store.NewProfileRepository(st),
			Retriever: retriever,
			Answers:   &stdinAnswers{in: bufio.NewReader(os.Stdin)},
			Config:    exam.DefaultConfig(),
			Logger:    log,
			OnQuestion: func(number int, difficulty exam.Difficulty, question string) {
				fmt.Printf("\nQuestion %d [%s]\n%s\n", number, difficulty, question)
			},
			OnEvaluation: func(score float64, analysis string, action exam.Action) {
				fmt.Printf("\nScore: %.1f/10 (next: %s)\n", score, action)
				if analysis != "" {
					fmt.Println(analysis)
				}
			},
		})

		sum, err := iv.RunSession(ctx, candidate, topic)
		if err != nil {
			return err
		}

		printSummary(sum)

		if err := store.NewSummaryRepository(st).Save(context.Background(), sum); err != nil {
			return fmt.Errorf("save session: %w", err)
		}

		if outPath != "" {
			if err := exportSummary(sum, outPath); err != nil {
				return fmt.Errorf("export summary: %w", err)
			}
			fmt.Printf("\nSummary written to %s\n", outPath)
		}
		return nil
	},
}

// stdinAnswers reads candidate answers line by line from stdin. EOF is
// treated as the candidate ending the session.
type stdinAnswers struct {
	in *bufio.Reader
}

func (s *stdinAnswers) ReadAnswer(ctx context.Context, _ string) (string, error) {
	fmt.Print("\nYour answer: ")

	type result struct {
		line string
		err  error
	}
	ch := make(chan result, 1)
	go func() {
		line, err := s.in.ReadString('\n')
		ch <- result{line, err}
	}()

	select {
	case <-ctx.Done():
		return "", interview.ErrInterrupted
	case r := <-ch:
		if r.err == io.EOF {
			return "", interview.ErrInterrupted
		}
		if r.err != nil {
			return "", r.err
		}
		return strings.TrimSpace(r.line), nil
	}
}

func printSummary(sum *exam.Summary) {
	fmt.Println()
	fmt.Println(strings.Repeat("─", 60))
	fmt.Println("SESSION SUMMARY")
	fmt.Println(strings.Repeat("─", 60))
	fmt.Printf("Session:     %s\n", sum.SessionID)
	fmt.Printf("Candidate:   %s\n", sum.CandidateID)
	fmt.Printf("Topic:       %s\n", sum.Topic)
	fmt.Printf("Level:       %s\n", sum.Level)
	fmt.Printf("Questions:   %d\n", len(sum.History))
	fmt.Printf("Final score: %.2f/10\n", sum.FinalScore)
	for _, e := range sum.History {
		fmt.Printf("\n%d. [%s] %s\n   score %.1f: %s\n",
			e.Number, e.Difficulty, e.Question, e.Score, e.Analysis)
	}
}

func exportSummary(sum *exam.Summary, path string) error {
	data, err := json.MarshalIndent(sum, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, append(data, '\n'), 0o644)
}

func init() {
	runCmd.Flags().StringP("candidate", "c", "", "Candidate ID (must have a stored profile)")
	runCmd.Flags().StringP("topic", "t", "", "Exam topic")
	runCmd.Flags().String("refs", "", "Path to a reference-material text file (passages separated by blank lines)")
	runCmd.Flags().StringP("out", "o", "", "Write the session summary as JSON to this file")
	runCmd.MarkFlagRequired("candidate")
	runCmd.MarkFlagRequired("topic")
}
