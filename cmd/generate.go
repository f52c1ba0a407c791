package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/abhisek/languify/internal/lessons"
	"github.com/abhisek/languify/internal/logging"
)

var generateCmd = &cobra.Command{
	Use:   `generate "English text"`,
	Short: "Create and store a lesson from an English sentence",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig(cmd)
		if err != nil {
			return err
		}
		st, err := openStore(cmd, cfg)
		if err != nil {
			return err
		}
		defer st.Close()

		library := lessons.NewLibrary(st.LessonRepo())
		gen, _, err := newGenerator(cmd.Context(), st, newTranslator(cfg), library, logging.Quiet())
		if err != nil {
			return err
		}

		fmt.Fprintln(cmd.ErrOrStderr(), "Generating lesson...")
		lesson, err := gen.Generate(cmd.Context(), args[0])
		if err != nil {
			return err
		}

		printLesson(cmd, lesson)
		fmt.Fprintf(cmd.OutOrStdout(), "\nSaved. Practice it with: languify practice --lesson %s\n", lesson.ID)
		return nil
	},
}
