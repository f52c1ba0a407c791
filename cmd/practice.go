package cmd

import (
	"bufio"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/abhisek/languify/internal/lessons"
	state "github.com/abhisek/languify/internal/practice"
)

var practiceCmd = &cobra.Command{
	Use:   "practice",
	Short: "Practice a lesson line by line (no TUI)",
	Long: `Translate one lesson repeatedly from standard input.

Each line is scored as an answer. Type :tab to show the next unlocked panel
and :quit (or send EOF) to stop.`,
	RunE: runPractice,
}

func init() {
	practiceCmd.Flags().String("lesson", "basic-greeting", "Lesson ID")
}

func runPractice(cmd *cobra.Command, args []string) error {
	id, _ := cmd.Flags().GetString("lesson")

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

	out := cmd.OutOrStdout()
	scanner := bufio.NewScanner(cmd.InOrStdin())
	s := state.New(lesson)

	fmt.Fprintf(out, "Translate to Spanish: %s\n\n", lesson.English)
	printPanel(out, s)

	for {
		fmt.Fprint(out, "\nYour answer: ")
		if !scanner.Scan() {
			fmt.Fprintln(out, "\n(input closed)")
			break
		}
		line := strings.TrimSpace(scanner.Text())

		switch line {
		case "":
			continue
		case ":quit", ":q":
			printSummary(out, s)
			return nil
		case ":tab":
			s = state.NextTab(s)
			printPanel(out, s)
			continue
		}

		s = state.Submit(state.SetInput(s, line), cfg.Scoring.Engine(), time.Now())
		fmt.Fprintf(out, "── Attempt %d ──\n", len(s.Attempts))
		printResult(out, lesson, *s.Result)
	}

	printSummary(out, s)
	return scanner.Err()
}

func printPanel(w io.Writer, s state.State) {
	fmt.Fprintf(w, "[%s]\n", s.Tab)
	l := s.Lesson
	switch s.Tab {
	case state.TabVocabulary:
		for _, v := range l.Vocabulary {
			fmt.Fprintf(w, "  %-12s %-14s %s\n", v.English, v.Spanish, v.Notes)
		}
	case state.TabStructure:
		for _, c := range l.StructureClues {
			fmt.Fprintf(w, "  • %s\n", c)
		}
	case state.TabExamples:
		for _, e := range l.Examples {
			fmt.Fprintf(w, "  • %s\n", e)
		}
	case state.TabAnswer:
		fmt.Fprintf(w, "  %s\n", l.CorrectAnswer)
	}
}

func printSummary(w io.Writer, s state.State) {
	if len(s.Attempts) == 0 {
		return
	}
	fmt.Fprintf(w, "── Summary: %d attempts, best %d/100 ──\n", len(s.Attempts), state.BestScore(s))
}
