package cmd

import (
	"context"
	"net/http"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/abhisek/languify/internal/api"
	"github.com/abhisek/languify/internal/config"
	"github.com/abhisek/languify/internal/lessons"
	"github.com/abhisek/languify/internal/logging"
	"github.com/abhisek/languify/internal/store"
	"github.com/abhisek/languify/internal/teach"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the HTTP API",
	RunE:  runServe,
}

func init() {
	serveCmd.Flags().String("addr", "", "Listen address (overrides http.addr)")
}

func runServe(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	logger, err := logging.New(cfg.Env)
	if err != nil {
		return err
	}
	defer logger.Sync() //nolint:errcheck

	st, err := openStore(cmd, cfg)
	if err != nil {
		return err
	}
	defer st.Close()

	addr := cfg.HTTP.Addr
	if a, _ := cmd.Flags().GetString("addr"); a != "" {
		addr = a
	}

	h := newAPIHandler(cmd.Context(), cfg, st, logger)
	logger.Info("server starting", zap.String("addr", addr), zap.String("db", string(st.Driver())))
	return api.ListenAndServe(cmd.Context(), addr, h, logger)
}

// newAPIHandler wires the API. Without an LLM provider the scoring, lesson
// and translation routes still work; generation and critique answer 503.
func newAPIHandler(ctx context.Context, cfg *config.Config, st *store.Store, logger *zap.Logger) http.Handler {
	translator := newTranslator(cfg)
	library := lessons.NewLibrary(st.LessonRepo())
	deps := api.Deps{
		Translator: translator,
		Lessons:    library,
		Scoring:    cfg.Scoring.Engine(),
		Logger:     logger,
	}

	gen, provider, err := newGenerator(ctx, st, translator, library, logger)
	if err != nil {
		logger.Warn("LLM provider not configured; lesson generation and critique are disabled", zap.Error(err))
	} else {
		logger.Info("LLM provider ready", zap.String("llm", provider.Name()), zap.String("model", provider.ModelID()))
		deps.Generator = gen
		deps.Critic = teach.NewService(translator, provider, library, teach.DefaultConfig(), logger)
	}

	return api.NewRouter(deps, api.Options{
		CORSOrigins:    cfg.HTTP.CORSOrigins,
		RequestTimeout: cfg.HTTP.RequestTimeout,
	})
}
