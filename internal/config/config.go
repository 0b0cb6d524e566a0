package config

import (
	"errors"
	"fmt"
	"io/fs"
	"net/url"
	"os"
	"path/filepath"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
	"go.uber.org/zap/zapcore"
)

const (
	DefaultAPIURL = "https://api.openweathermap.org/data/2.5/weather"
	APIKeyEnv     = "OPENWEATHERMAP_API_KEY"

	// ConfigName is the base name of the optional YAML file (weather.yaml).
	ConfigName = "weather"

	// Units is fixed; only metric output is supported.
	Units = "metric"
)

// Config holds everything the CLI reads from its environment, loaded once at start.
type Config struct {
	APIKey   string
	APIURL   string
	Timeout  time.Duration
	LogLevel zapcore.Level

	// SkippedEnvFiles lists .env files that could not be parsed and were ignored.
	SkippedEnvFiles []error
}

// HasAPIKey reports whether a credential was found.
func (c *Config) HasAPIKey() bool {
	return c.APIKey != ""
}

// DefaultSearchDirs returns the directories Load looks in when none are given:
// the working directory, then the directory holding the executable.
func DefaultSearchDirs() []string {
	var dirs []string
	if wd, err := os.Getwd(); err == nil {
		dirs = append(dirs, wd)
	}
	if exe, err := os.Executable(); err == nil {
		if resolved, err := filepath.EvalSymlinks(exe); err == nil {
			exe = resolved
		}
		dirs = appendUnique(dirs, filepath.Dir(exe))
	}
	return dirs
}

func appendUnique(dirs []string, dir string) []string {
	for _, d := range dirs {
		if d == dir {
			return dirs
		}
	}
	return append(dirs, dir)
}

// Load seeds the environment from .env files in dirs, then reads an optional
// weather.yaml from the same dirs. Variables already set in the environment win over .env.
// A .env that does not parse is skipped and recorded in SkippedEnvFiles.
// A missing API key is not an error here; the weather client reports it.
func Load(dirs ...string) (*Config, error) {
	var skipped []error
	for _, dir := range dirs {
		if err := loadDotEnv(filepath.Join(dir, ".env")); err != nil {
			skipped = append(skipped, err)
		}
	}

	v := viper.New()
	v.SetConfigName(ConfigName)
	v.SetConfigType("yaml")
	for _, dir := range dirs {
		v.AddConfigPath(dir)
	}

	v.SetDefault("openweathermap.api_url", DefaultAPIURL)
	v.SetDefault("http.timeout", "0s")
	v.SetDefault("log.level", "warn")
	if err := v.BindEnv("openweathermap.api_key", APIKeyEnv); err != nil {
		return nil, err
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("reading config file: %w", err)
		}
	}

	cfg, err := fromViper(v)
	if err != nil {
		return nil, err
	}
	cfg.SkippedEnvFiles = skipped
	return cfg, nil
}

func loadDotEnv(path string) error {
	err := godotenv.Load(path)
	if err == nil || errors.Is(err, fs.ErrNotExist) {
		return nil
	}
	return fmt.Errorf("loading %s: %w", path, err)
}

func fromViper(v *viper.Viper) (*Config, error) {
	apiURL := v.GetString("openweathermap.api_url")
	u, err := url.ParseRequestURI(apiURL)
	if err != nil || u.Host == "" {
		return nil, fmt.Errorf("invalid openweathermap.api_url %q", apiURL)
	}

	timeout, err := time.ParseDuration(v.GetString("http.timeout"))
	if err != nil {
		return nil, fmt.Errorf("invalid http.timeout: %w", err)
	}
	if timeout < 0 {
		return nil, fmt.Errorf("invalid http.timeout: %s is negative", timeout)
	}

	level, err := zapcore.ParseLevel(v.GetString("log.level"))
	if err != nil {
		return nil, fmt.Errorf("invalid log.level: %w", err)
	}

	return &Config{
		APIKey:   v.GetString("openweathermap.api_key"),
		APIURL:   apiURL,
		Timeout:  timeout,
		LogLevel: level,
	}, nil
}
