// Package config provides centralized configuration management using Viper.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"
)

// DefaultDashboardURL is where the completion screen sends the user.
const DefaultDashboardURL = "https://app.sorra.ai/dashboard"

// Config holds all configuration values for sorra.
type Config struct {
	LogLevel     string `mapstructure:"log_level" yaml:"log_level" validate:"omitempty,oneof=debug info warn error"`
	LogFile      string `mapstructure:"log_file" yaml:"log_file"`
	ResumeDir    string `mapstructure:"resume_dir" yaml:"resume_dir"`
	Output       string `mapstructure:"output" yaml:"output"`
	Format       string `mapstructure:"format" yaml:"format" validate:"oneof=yaml json"`
	DashboardURL string `mapstructure:"dashboard_url" yaml:"dashboard_url" validate:"required,url"`
}

// Defaults returns the configuration used when nothing else is set.
func Defaults() *Config {
	return &Config{
		LogLevel:     "info",
		Format:       "yaml",
		DashboardURL: DefaultDashboardURL,
	}
}

var validate = validator.New(validator.WithRequiredStructEnabled())

// Validate checks enumerated and URL-shaped values.
func (c *Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) && len(verrs) > 0 {
			fe := verrs[0]
			return fmt.Errorf("invalid config value for %s: %q", fe.Field(), fe.Value())
		}
		return fmt.Errorf("validating config: %w", err)
	}
	return nil
}

// Load loads configuration with full precedence:
// CLI flags > ENV vars > project config > XDG global config > defaults
//
// A .env file in the working directory is read first; it never overrides
// variables already present in the environment.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("loading .env: %w", err)
	}

	v := viper.New()
	v.SetConfigType("yaml")
	v.SetConfigName("sorra")

	d := Defaults()
	v.SetDefault("log_level", d.LogLevel)
	v.SetDefault("log_file", "")
	v.SetDefault("resume_dir", "")
	v.SetDefault("output", "")
	v.SetDefault("format", d.Format)
	v.SetDefault("dashboard_url", d.DashboardURL)

	v.SetEnvPrefix("SORRA")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	for _, key := range []string{"log_level", "log_file", "resume_dir", "output", "format", "dashboard_url"} {
		if err := v.BindEnv(key, "SORRA_"+strings.ToUpper(key)); err != nil {
			return nil, fmt.Errorf("binding %s env: %w", key, err)
		}
	}

	globalPath := GlobalPath()
	if fileExists(globalPath) {
		v.SetConfigFile(globalPath)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("reading global config: %w", err)
		}
	}

	projectPath := ProjectPath()
	if fileExists(projectPath) {
		v.SetConfigFile(projectPath)
		if err := v.MergeInConfig(); err != nil {
			return nil, fmt.Errorf("merging project config: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshaling config: %w", err)
	}
	cfg.Format = strings.ToLower(cfg.Format)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// Exists returns true if any config file exists (global or project).
func Exists() bool {
	return fileExists(GlobalPath()) || fileExists(ProjectPath())
}

// GlobalPath returns the XDG global config path.
// Returns ~/.config/sorra/sorra.yml or $XDG_CONFIG_HOME/sorra/sorra.yml.
func GlobalPath() string {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, "sorra", "sorra.yml")
	}
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".config", "sorra", "sorra.yml")
}

// ProjectPath returns the project-local config path.
func ProjectPath() string {
	return "sorra.yml"
}

// WriteGlobal writes the config to the XDG global location.
func WriteGlobal(cfg *Config) error {
	path := GlobalPath()

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}

	return write(path, cfg)
}

// WriteProject writes the config to the project-local location.
func WriteProject(cfg *Config) error {
	return write(ProjectPath(), cfg)
}

func write(path string, cfg *Config) error {
	if err := cfg.Validate(); err != nil {
		return err
	}

	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}

	return nil
}

// fileExists checks if a file exists.
func fileExists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}
