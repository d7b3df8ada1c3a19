package app

import (
	"context"
	"fmt"
	"io"
	"log"
	"os"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/kavia-common/recipe-finder-and-saver-207893-207903/internal/config"
	"github.com/kavia-common/recipe-finder-and-saver-207893-207903/internal/prefs"
	"github.com/kavia-common/recipe-finder-and-saver-207893-207903/internal/recipes"
	"github.com/kavia-common/recipe-finder-and-saver-207893-207903/internal/session"
	"github.com/kavia-common/recipe-finder-and-saver-207893-207903/internal/state"
	"github.com/kavia-common/recipe-finder-and-saver-207893-207903/internal/ui"
)

// Options configure the recipe finder. Non-empty values override the config
// file and environment.
type Options struct {
	ConfigPath  string        // empty uses ~/.config/recipe-finder/config.toml
	EnvPath     string        // empty reads ./.env when present
	BaseURL     string        // API base URL
	SessionPath string        // empty uses ~/.config/recipe-finder/session.toml
	PrefsPath   string        // empty uses ~/.config/recipe-finder/prefs.toml
	PollEvery   time.Duration // health poll interval
	LogFile     string        // empty discards logs
}

// Run boots the recipe finder TUI until the context is cancelled or the user
// quits.
func Run(ctx context.Context, opts Options) error {
	cfg, err := resolveConfig(opts)
	if err != nil {
		return err
	}

	closeLog, err := setupLogging(cfg.LogFile)
	if err != nil {
		return err
	}
	defer closeLog()

	client, err := recipes.NewClient(cfg.APIBaseURL,
		recipes.WithTimeout(cfg.Timeout),
		recipes.WithFieldMapping(cfg.Fields),
	)
	if err != nil {
		return fmt.Errorf("init recipe client: %w", err)
	}
	log.Printf("recipe finder starting against %s", client.BaseURL())

	userPrefs, err := prefs.Load(opts.PrefsPath)
	if err != nil {
		log.Printf("load prefs: %v", err)
	}

	sessionPath := opts.SessionPath
	if strings.TrimSpace(sessionPath) == "" {
		sessionPath = session.DefaultPath()
	}

	store := &state.Store{}

	// Start background poller
	StartPoller(ctx, store, client, cfg.PollEvery)

	uiOpts := ui.Options{
		Context:     ctx,
		API:         client,
		Store:       store,
		Session:     session.Load(sessionPath),
		SessionPath: sessionPath,
		Debounce:    cfg.Debounce,
		PollTick:    ui.DefaultUIInterval,
		ThemeName:   userPrefs.Theme,
		PrefsPath:   opts.PrefsPath,
		StartView:   ui.ParseView(userPrefs.LastView),
		LogPath:     cfg.LogFile,
	}
	return ui.Run(uiOpts)
}

// resolveConfig loads the config file and environment, then applies the
// command-line overrides in opts.
func resolveConfig(opts Options) (config.Config, error) {
	cfg, err := config.Load(opts.ConfigPath, opts.EnvPath)
	if err != nil {
		return config.Config{}, fmt.Errorf("load config: %w", err)
	}
	if base := strings.TrimSpace(opts.BaseURL); base != "" {
		cfg.APIBaseURL = base
	}
	if opts.PollEvery > 0 {
		cfg.PollEvery = opts.PollEvery
	}
	if logFile := strings.TrimSpace(opts.LogFile); logFile != "" {
		cfg.LogFile = logFile
	}
	return cfg, nil
}

// setupLogging routes the standard logger to path. The TUI owns the
// terminal, so with no path logs are discarded.
func setupLogging(path string) (func(), error) {
	if path == "" {
		log.SetOutput(io.Discard)
		return func() {}, nil
	}
	f, err := tea.LogToFile(path, "recipes")
	if err != nil {
		return nil, fmt.Errorf("open log file: %w", err)
	}
	return func() {
		log.SetOutput(os.Stderr)
		_ = f.Close()
	}, nil
}
