package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
)

// Config represents the application configuration
type Config struct {
	Tokenizer TokenizerConfig `mapstructure:"tokenizer"`
	Logging   LoggingConfig   `mapstructure:"logging"`
}

type TokenizerConfig struct {
	// Target vocabulary size for training: 256 byte tokens plus the
	// merges to learn. Values of 256 or less train nothing.
	VocabSize int `mapstructure:"vocab_size"`

	// Whether to split text into GPT-2 style chunks before merging.
	Pretokenize bool `mapstructure:"pretokenize"`

	// Default model file used when no --model flag is given.
	ModelPath string `mapstructure:"model_path"`
}

type LoggingConfig struct {
	Level   string `mapstructure:"level"`
	File    string `mapstructure:"file"`
	Console bool   `mapstructure:"console"`
}

// DefaultConfig returns configuration with default values
func DefaultConfig() *Config {
	home, _ := os.UserHomeDir()
	bytepairDir := filepath.Join(home, ".bytepair")

	return &Config{
		Tokenizer: TokenizerConfig{
			VocabSize:   512,
			Pretokenize: true,
			ModelPath:   filepath.Join(bytepairDir, "model.bpe"),
		},
		Logging: LoggingConfig{
			Level:   "info",
			File:    filepath.Join(bytepairDir, "bytepair.log"),
			Console: false,
		},
	}
}

// Load loads configuration from file, environment, and defaults
func Load(cfgFile string) (*Config, error) {
	v := viper.New()

	cfg := DefaultConfig()
	setDefaults(v, cfg)

	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
	} else {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("finding home directory: %w", err)
		}

		v.AddConfigPath(filepath.Join(home, ".bytepair"))
		v.AddConfigPath(".")
		v.SetConfigType("yaml")
		v.SetConfigName("config")
	}

	v.SetEnvPrefix("BYTEPAIR")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("reading config: %w", err)
		}
		// Config file not found is okay, use defaults
	}

	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("unmarshaling config: %w", err)
	}

	cfg.ExpandPaths()

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("validating config: %w", err)
	}

	return cfg, nil
}

// Validate checks if the configuration is valid
func (c *Config) Validate() error {
	if c.Tokenizer.VocabSize < 0 {
		return errors.New("tokenizer.vocab_size must not be negative")
	}

	validLevels := []string{"debug", "info", "warn", "error"}
	if !contains(validLevels, c.Logging.Level) {
		return fmt.Errorf("logging.level must be one of: %v", validLevels)
	}

	return nil
}

// ExpandPaths expands ~ and environment variables in paths
func (c *Config) ExpandPaths() {
	c.Tokenizer.ModelPath = expandPath(c.Tokenizer.ModelPath)
	c.Logging.File = expandPath(c.Logging.File)
}

func expandPath(path string) string {
	if strings.HasPrefix(path, "~/") {
		home, _ := os.UserHomeDir()
		return filepath.Join(home, path[2:])
	}
	return os.ExpandEnv(path)
}

func contains(slice []string, item string) bool {
	for _, s := range slice {
		if s == item {
			return true
		}
	}
	return false
}

func setDefaults(v *viper.Viper, cfg *Config) {
	v.SetDefault("tokenizer.vocab_size", cfg.Tokenizer.VocabSize)
	v.SetDefault("tokenizer.pretokenize", cfg.Tokenizer.Pretokenize)
	v.SetDefault("tokenizer.model_path", cfg.Tokenizer.ModelPath)

	v.SetDefault("logging.level", cfg.Logging.Level)
	v.SetDefault("logging.file", cfg.Logging.File)
	v.SetDefault("logging.console", cfg.Logging.Console)
}
