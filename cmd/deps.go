package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/abhisek/languify/internal/config"
	"github.com/abhisek/languify/internal/lessons"
	"github.com/abhisek/languify/internal/llm"
	"github.com/abhisek/languify/internal/store"
	"github.com/abhisek/languify/internal/translate"
)

// translationCacheSize bounds the in-memory translation cache.
const translationCacheSize = 512

func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	path, _ := cmd.Flags().GetString("config")
	cfg, err := config.Load(config.Options{ConfigFile: path})
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}
	return cfg, nil
}

// openStore opens the configured database. An explicit --db flag always
// selects SQLite at that path.
func openStore(cmd *cobra.Command, cfg *config.Config) (*store.Store, error) {
	ctx := cmd.Context()

	if p, _ := cmd.Flags().GetString("db"); p == "" && store.Driver(cfg.DB.Driver) == store.DriverPostgres {
		s, err := store.Open(ctx, store.DriverPostgres, cfg.DB.DSN)
		if err != nil {
			return nil, fmt.Errorf("open store: %w", err)
		}
		return s, nil
	}

	path, err := sqlitePath(cmd, cfg)
	if err != nil {
		return nil, fmt.Errorf("resolve DB path: %w", err)
	}
	s, err := store.Open(ctx, store.DriverSQLite, path)
	if err != nil {
		return nil, fmt.Errorf("open store: %w", err)
	}
	return s, nil
}

func sqlitePath(cmd *cobra.Command, cfg *config.Config) (string, error) {
	if p, _ := cmd.Flags().GetString("db"); p == "" && cfg.DB.DSN != "" {
		return cfg.DB.DSN, store.EnsureDir(cfg.DB.DSN)
	}
	return resolveDBPath(cmd)
}

func newTranslator(cfg *config.Config) translate.Translator {
	return translate.NewCached(translate.NewMyMemory(cfg.MyMemory.Translator()), translationCacheSize)
}

// newGenerator builds the lesson generator. It fails when no LLM provider
// is configured.
func newGenerator(ctx context.Context, st *store.Store, translator translate.Translator, library *lessons.Library, logger *zap.Logger) (*lessons.LLMGenerator, llm.Provider, error) {
	provider, err := llm.NewProviderFromEnv(ctx, st.EventRepo(), logger)
	if err != nil {
		return nil, nil, fmt.Errorf("LLM provider: %w", err)
	}
	return lessons.NewLLMGenerator(translator, provider, library, lessons.DefaultConfig()), provider, nil
}
