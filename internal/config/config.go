package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"

	"gitcommitai/internal/apperr"
	"gitcommitai/internal/llm"
	"gitcommitai/internal/prompt"
)

const (
	appName = "git-commit-ai"
)

const (
	keyAPIKey       = "api_key"
	keyModel        = "model"
	keyStyle        = "style"
	keyBaseURL      = "base_url"
	keyMaxTokens    = "max_tokens"
	keyMaxDiffLines = "max_diff_lines"
)

type Config struct {
	APIKey       string       `mapstructure:"api_key"`
	Model        string       `mapstructure:"model"`
	DefaultStyle prompt.Style `mapstructure:"style"`
	BaseURL      string       `mapstructure:"base_url"`
	MaxTokens    int          `mapstructure:"max_tokens"`
	MaxDiffLines int          `mapstructure:"max_diff_lines"`
}

// Options controls where Load looks. Zero values mean the defaults.
type Options struct {
	// ConfigFile is an explicit YAML file; it must exist when set.
	ConfigFile string
	// DotEnv is the .env file to load into the environment. Missing is fine.
	DotEnv string
	// SkipDotEnv disables .env loading.
	SkipDotEnv bool
}

func GetConfigDir() (string, error) {
	configDir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("failed to get config directory: %w", err)
	}
	return filepath.Join(configDir, appName), nil
}

func GetConfigPath() (string, error) {
	configDir, err := GetConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(configDir, "config.yaml"), nil
}

// Load resolves configuration from, highest first: environment (after .env),
// the YAML config file, then built-in defaults. An invalid style is an
// apperr.KindConfig error. A missing API key is not checked here.
func Load(opts Options) (*Config, error) {
	if !opts.SkipDotEnv {
		if err := loadDotEnv(opts.DotEnv); err != nil {
			return nil, err
		}
	}

	v := viper.New()
	v.SetConfigType("yaml")
	v.SetDefault(keyModel, llm.DefaultModel)
	v.SetDefault(keyStyle, string(prompt.DefaultStyle))
	v.SetDefault(keyBaseURL, llm.DefaultBaseURL)
	v.SetDefault(keyMaxTokens, llm.DefaultMaxTokens)
	v.SetDefault(keyMaxDiffLines, prompt.DefaultMaxDiffLines)

	bindings := map[string]string{
		keyAPIKey:  "ANTHROPIC_API_KEY",
		keyModel:   "ANTHROPIC_MODEL",
		keyStyle:   "COMMIT_STYLE",
		keyBaseURL: "ANTHROPIC_BASE_URL",
	}
	for key, env := range bindings {
		if err := v.BindEnv(key, env); err != nil {
			return nil, fmt.Errorf("failed to bind %s: %w", env, err)
		}
	}

	if err := readConfigFile(v, opts.ConfigFile); err != nil {
		return nil, err
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if !cfg.DefaultStyle.Valid() {
		return nil, apperr.Config("Invalid COMMIT_STYLE: %q. Must be one of: conventional, simple, detailed", string(cfg.DefaultStyle))
	}
	if cfg.MaxTokens <= 0 {
		return nil, apperr.Config("Invalid max_tokens: %d. Must be positive", cfg.MaxTokens)
	}
	if cfg.MaxDiffLines <= 0 {
		return nil, apperr.Config("Invalid max_diff_lines: %d. Must be positive", cfg.MaxDiffLines)
	}

	return &cfg, nil
}

func loadDotEnv(path string) error {
	if path == "" {
		path = ".env"
	}
	// godotenv never overrides variables that are already set.
	if err := godotenv.Load(path); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil
		}
		return apperr.Config("Failed to load %s: %v", path, err)
	}
	return nil
}

func readConfigFile(v *viper.Viper, explicit string) error {
	path := explicit
	if path == "" {
		var err error
		if path, err = GetConfigPath(); err != nil {
			return nil
		}
	}

	if _, err := os.Stat(path); err != nil {
		if explicit == "" {
			// The default file is optional.
			return nil
		}
		return apperr.Config("Config file not found at %s", path)
	}

	v.SetConfigFile(path)
	if err := v.ReadInConfig(); err != nil {
		return apperr.Config("Failed to read config %s: %v", path, err)
	}
	return nil
}
