package cmd

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/abhisek/languify/internal/lessons"
	"github.com/abhisek/languify/internal/scoring"
)

var scoreCmd = &cobra.Command{
	Use:   `score "answer"`,
	Short: "Score a Spanish answer against a lesson",
	Args:  cobra.ExactArgs(1),
	RunE:  runScore,
}

func init() {
	scoreCmd.Flags().String("lesson", "", "Lesson ID (required)")
	scoreCmd.Flags().Bool("json", false, "Print the result as JSON")
	_ = scoreCmd.MarkFlagRequired("lesson")
}

func runScore(cmd *cobra.Command, args []string) error {
	id, _ := cmd.Flags().GetString("lesson")
	asJSON, _ := cmd.Flags().GetBool("json")

	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	st, err := openStore(cmd, cfg)
	if err != nil {
		return err
	}
	defer st.Close()

	lesson, err := lessons.NewLibrary(st.LessonRepo()).Get(cmd.Context(), id)
	if err != nil {
		return err
	}

	res := scoring.Score(args[0], lesson.CorrectAnswer, lesson, cfg.Scoring.Engine())

	out := cmd.OutOrStdout()
	if asJSON {
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		return enc.Encode(res)
	}

	printResult(out, lesson, res)
	return nil
}

func printResult(w io.Writer, lesson *lessons.Lesson, res scoring.Result) {
	fmt.Fprintf(w, "Score: %d/100\n", res.Score)
	if len(res.Hints) == 0 {
		fmt.Fprintln(w, "No hints. ¡Perfecto!")
	}
	for _, h := range res.Hints {
		fmt.Fprintf(w, "  • %s\n", h)
	}
	if res.ExamplesUnlocked {
		fmt.Fprintln(w, "Examples unlocked.")
	}
	if res.IsAnswerRevealed {
		fmt.Fprintf(w, "Answer: %s\n", lesson.CorrectAnswer)
	}
}
