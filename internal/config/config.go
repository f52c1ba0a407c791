// Package config loads application settings from an optional languify.yaml,
// .env files and LANGUIFY_* environment variables.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"

	"github.com/abhisek/languify/internal/scoring"
	"github.com/abhisek/languify/internal/translate"
	"github.com/abhisek/languify/internal/validate"
)

// Config is the full application configuration.
type Config struct {
	Env      string         `mapstructure:"env" validate:"oneof=development production"`
	HTTP     HTTPConfig     `mapstructure:"http"`
	DB       DBConfig       `mapstructure:"db"`
	Scoring  ScoringConfig  `mapstructure:"scoring"`
	MyMemory MyMemoryConfig `mapstructure:"mymemory"`
}

// HTTPConfig configures the API server.
type HTTPConfig struct {
	Addr           string        `mapstructure:"addr" validate:"required"`
	CORSOrigins    []string      `mapstructure:"cors_origins" validate:"min=1,dive,required"`
	RequestTimeout time.Duration `mapstructure:"request_timeout" validate:"gt=0"`
}

// DBConfig selects the database. For sqlite the DSN is a file path and an
// empty DSN selects the default data path; postgres requires a URL.
type DBConfig struct {
	Driver string `mapstructure:"driver" validate:"oneof=sqlite postgres"`
	DSN    string `mapstructure:"dsn" validate:"required_if=Driver postgres"`
}

// ScoringConfig holds the scoring thresholds.
type ScoringConfig struct {
	ExamplesThreshold int `mapstructure:"examples_threshold" validate:"min=0,max=100"`
	RevealThreshold   int `mapstructure:"reveal_threshold" validate:"min=0,max=100"`
	MaxHints          int `mapstructure:"max_hints" validate:"min=1"`
}

// Engine converts the settings to the scoring engine's configuration.
func (s ScoringConfig) Engine() scoring.Config {
	return scoring.Config{
		ExamplesThreshold: s.ExamplesThreshold,
		RevealThreshold:   s.RevealThreshold,
		MaxHints:          s.MaxHints,
	}
}

// MyMemoryConfig holds the translation service credentials.
type MyMemoryConfig struct {
	APIKey string `mapstructure:"api_key"`
	Email  string `mapstructure:"email" validate:"omitempty,email"`
}

// Translator builds the MyMemory client configuration.
func (m MyMemoryConfig) Translator() translate.MyMemoryConfig {
	return translate.MyMemoryConfig{APIKey: m.APIKey, Email: m.Email}
}

// Options controls where Load looks for input.
type Options struct {
	// EnvFiles are loaded with godotenv before reading the environment.
	// Missing files are skipped. Defaults to ".env".
	EnvFiles []string
	// ConfigFile is an explicit YAML file. When empty, languify.yaml is
	// searched in the working directory and $XDG_CONFIG_HOME/languify.
	ConfigFile string
}

func setDefaults(v *viper.Viper) {
	def := scoring.DefaultConfig()

	v.SetDefault("env", "production")
	v.SetDefault("http.addr", ":3001")
	v.SetDefault("http.cors_origins", []string{"*"})
	v.SetDefault("http.request_timeout", 60*time.Second)
	v.SetDefault("db.driver", "sqlite")
	v.SetDefault("db.dsn", "")
	v.SetDefault("scoring.examples_threshold", def.ExamplesThreshold)
	v.SetDefault("scoring.reveal_threshold", def.RevealThreshold)
	v.SetDefault("scoring.max_hints", def.MaxHints)
	v.SetDefault("mymemory.api_key", "")
	v.SetDefault("mymemory.email", "")
}

// Load reads configuration and validates it.
func Load(opts Options) (*Config, error) {
	envFiles := opts.EnvFiles
	if envFiles == nil {
		envFiles = []string{".env"}
	}
	for _, f := range envFiles {
		// godotenv never overrides variables that are already set.
		if err := godotenv.Load(f); err != nil && !errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("load %s: %w", f, err)
		}
	}

	v := viper.New()
	setDefaults(v)

	v.SetEnvPrefix("LANGUIFY")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	bindings := map[string][]string{
		"http.cors_origins": {"LANGUIFY_CORS_ORIGINS"},
		"mymemory.api_key":  {"LANGUIFY_MYMEMORY_API_KEY", "MYMEMORY_API_KEY"},
		"mymemory.email":    {"LANGUIFY_MYMEMORY_EMAIL", "MYMEMORY_EMAIL"},
	}
	for key, envs := range bindings {
		if err := v.BindEnv(append([]string{key}, envs...)...); err != nil {
			return nil, fmt.Errorf("bind %s: %w", key, err)
		}
	}

	if opts.ConfigFile != "" {
		v.SetConfigFile(opts.ConfigFile)
	} else {
		v.SetConfigName("languify")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		if dir, err := os.UserConfigDir(); err == nil {
			v.AddConfigPath(filepath.Join(dir, "languify"))
		}
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if opts.ConfigFile != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("read config: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}

	if err := validate.Struct(cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}
