package config

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	toml "github.com/pelletier/go-toml/v2"

	"github.com/kavia-common/recipe-finder-and-saver-207893-207903/internal/paths"
	"github.com/kavia-common/recipe-finder-and-saver-207893-207903/internal/recipes"
)

// Config captures the client's runtime settings.
type Config struct {
	APIBaseURL string
	Timeout    time.Duration
	Debounce   time.Duration
	PollEvery  time.Duration
	LogFile    string
	Fields     recipes.FieldMapping
}

const (
	defaultConfigPath = "~/.config/recipe-finder/config.toml"
	defaultEnvFile    = ".env"
	defaultAPIBaseURL = "http://127.0.0.1:8000"
	defaultTimeout    = 20 * time.Second
	defaultDebounce   = 350 * time.Millisecond
	defaultPollEvery  = 15 * time.Second

	// EnvBaseURL overrides api_base_url.
	EnvBaseURL = "RECIPES_API_BASE_URL"
	// EnvTimeout overrides timeout_seconds.
	EnvTimeout = "RECIPES_API_TIMEOUT_SECONDS"
)

// Defaults returns the configuration used when no file exists.
func Defaults() Config {
	return Config{
		APIBaseURL: defaultAPIBaseURL,
		Timeout:    defaultTimeout,
		Debounce:   defaultDebounce,
		PollEvery:  defaultPollEvery,
		Fields:     recipes.DefaultFieldMapping(),
	}
}

// Load reads the TOML config at path (default location when empty), falling
// back to defaults when the file is missing, then applies environment
// overrides from envFile and the process environment.
func Load(path, envFile string) (Config, error) {
	cfg, err := loadFile(path)
	if err != nil {
		return Config{}, err
	}
	env, err := readEnv(envFile)
	if err != nil {
		return Config{}, err
	}
	applyEnv(&cfg, env)
	return cfg, nil
}

func loadFile(path string) (Config, error) {
	cfg := Defaults()

	resolved, err := paths.Resolve(path, defaultConfigPath)
	if err != nil {
		return Config{}, err
	}

	file, err := os.Open(resolved)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return cfg, nil
		}
		return Config{}, fmt.Errorf("open config: %w", err)
	}
	defer file.Close()

	bytes, err := io.ReadAll(file)
	if err != nil {
		return Config{}, fmt.Errorf("read config: %w", err)
	}

	var raw struct {
		APIBaseURL     string               `toml:"api_base_url"`
		TimeoutSeconds float64              `toml:"timeout_seconds"`
		DebounceMS     int                  `toml:"debounce_ms"`
		PollSeconds    int                  `toml:"poll_seconds"`
		LogFile        string               `toml:"log_file"`
		Fields         recipes.FieldMapping `toml:"fields"`
	}
	if err := toml.Unmarshal(bytes, &raw); err != nil {
		return Config{}, fmt.Errorf("parse config: %w", err)
	}

	if base := strings.TrimSpace(raw.APIBaseURL); base != "" {
		cfg.APIBaseURL = base
	}
	if raw.TimeoutSeconds > 0 {
		cfg.Timeout = time.Duration(raw.TimeoutSeconds * float64(time.Second))
	}
	if raw.DebounceMS > 0 {
		cfg.Debounce = time.Duration(raw.DebounceMS) * time.Millisecond
	}
	if raw.PollSeconds > 0 {
		cfg.PollEvery = time.Duration(raw.PollSeconds) * time.Second
	}
	if logFile := strings.TrimSpace(raw.LogFile); logFile != "" {
		cfg.LogFile = mustExpand(logFile)
	}
	cfg.Fields = cfg.Fields.Merge(raw.Fields)

	return cfg, nil
}

// readEnv merges the dotenv file (when present) with the process
// environment. Process values win.
func readEnv(envFile string) (map[string]string, error) {
	values := map[string]string{}

	path := strings.TrimSpace(envFile)
	explicit := path != ""
	if !explicit {
		path = defaultEnvFile
	}
	fileValues, err := godotenv.Read(path)
	switch {
	case err == nil:
		for k, v := range fileValues {
			values[k] = v
		}
	case explicit:
		return nil, fmt.Errorf("read env file: %w", err)
	}

	for _, key := range []string{EnvBaseURL, EnvTimeout} {
		if v, ok := os.LookupEnv(key); ok && strings.TrimSpace(v) != "" {
			values[key] = v
		}
	}
	return values, nil
}

func applyEnv(cfg *Config, env map[string]string) {
	if base := strings.TrimSpace(env[EnvBaseURL]); base != "" {
		cfg.APIBaseURL = base
	}
	if raw := strings.TrimSpace(env[EnvTimeout]); raw != "" {
		if secs, err := strconv.ParseFloat(raw, 64); err == nil && secs > 0 {
			cfg.Timeout = time.Duration(secs * float64(time.Second))
		}
	}
}

func mustExpand(path string) string {
	expanded, err := paths.Expand(path)
	if err != nil {
		return path
	}
	return expanded
}
