package cmd

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/abhisek/languify/internal/lessons"
)

var lessonsCmd = &cobra.Command{
	Use:   "lessons",
	Short: "Browse built-in and generated lessons",
}

var lessonsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List all lessons",
	RunE: func(cmd *cobra.Command, args []string) error {
		library, closeFn, err := openLibrary(cmd)
		if err != nil {
			return err
		}
		defer closeFn()

		list, err := library.List(cmd.Context())
		if err != nil {
			return fmt.Errorf("list lessons: %w", err)
		}

		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "%-40s  %-9s  %s\n", "ID", "Source", "English")
		fmt.Fprintln(out, strings.Repeat("─", 90))
		for _, l := range list {
			source := "built-in"
			if _, ok := lessons.CatalogLesson(l.ID); !ok {
				source = "generated"
			}
			fmt.Fprintf(out, "%-40s  %-9s  %s\n", l.ID, source, l.English)
		}
		return nil
	},
}

var lessonsShowCmd = &cobra.Command{
	Use:   "show <id>",
	Short: "Show one lesson in full",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		asJSON, _ := cmd.Flags().GetBool("json")

		library, closeFn, err := openLibrary(cmd)
		if err != nil {
			return err
		}
		defer closeFn()

		lesson, err := library.Get(cmd.Context(), args[0])
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		if asJSON {
			enc := json.NewEncoder(out)
			enc.SetIndent("", "  ")
			return enc.Encode(lesson)
		}
		printLesson(cmd, lesson)
		return nil
	},
}

// openLibrary opens the store and returns a library over it with a close
// function for the store.
func openLibrary(cmd *cobra.Command) (*lessons.Library, func(), error) {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return nil, nil, err
	}
	st, err := openStore(cmd, cfg)
	if err != nil {
		return nil, nil, err
	}
	return lessons.NewLibrary(st.LessonRepo()), func() { st.Close() }, nil
}

func printLesson(cmd *cobra.Command, l *lessons.Lesson) {
	out := cmd.OutOrStdout()
	sep := strings.Repeat("─", 60)

	fmt.Fprintf(out, "ID:       %s\n", l.ID)
	fmt.Fprintf(out, "English:  %s\n", l.English)
	fmt.Fprintf(out, "Spanish:  %s\n", l.CorrectAnswer)

	fmt.Fprintln(out, sep)
	fmt.Fprintln(out, "VOCABULARY")
	for _, v := range l.Vocabulary {
		fmt.Fprintf(out, "  %-12s %-14s %s\n", v.English, v.Spanish, v.Notes)
	}
	fmt.Fprintln(out, sep)
	fmt.Fprintln(out, "STRUCTURE")
	for _, c := range l.StructureClues {
		fmt.Fprintf(out, "  • %s\n", c)
	}
	fmt.Fprintln(out, sep)
	fmt.Fprintln(out, "EXAMPLES")
	for _, e := range l.Examples {
		fmt.Fprintf(out, "  • %s\n", e)
	}
}

func init() {
	lessonsShowCmd.Flags().Bool("json", false, "Print the lesson as JSON")

	lessonsCmd.AddCommand(lessonsListCmd)
	lessonsCmd.AddCommand(lessonsShowCmd)
}
