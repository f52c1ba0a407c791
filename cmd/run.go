package cmd

import (
	"fmt"
	"os"

	"github.com/abhisek/languify/internal/app"
	"github.com/abhisek/languify/internal/lessons"
	"github.com/abhisek/languify/internal/logging"
	"github.com/spf13/cobra"
)

// runApp opens the store, builds dependencies, and launches the TUI.
func runApp(cmd *cobra.Command) error {
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
	opts := app.Options{
		Lessons: library,
		Scoring: cfg.Scoring.Engine(),
		Events:  st.EventRepo(),
	}

	gen, _, err := newGenerator(cmd.Context(), st, newTranslator(cfg), library, logging.Quiet())
	if err != nil {
		fmt.Fprintln(os.Stderr, "LLM provider not configured:", err)
		fmt.Fprintln(os.Stderr, "Lesson creation will be unavailable.")
	} else {
		opts.Generator = gen
	}

	return app.Run(opts)
}
