package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/kavia-common/recipe-finder-and-saver-207893-207903/internal/app"
)

func main() {
	os.Exit(run())
}

func run() int {
	configPath := flag.String("config", "", "override config path (optional)")
	envPath := flag.String("env", "", "dotenv file with RECIPES_API_* overrides (optional, defaults to ./.env)")
	baseURL := flag.String("base-url", "", "recipe API base URL (optional)")
	sessionPath := flag.String("session", "", "session file path (optional)")
	prefsPath := flag.String("prefs", "", "preferences file path (optional)")
	pollSeconds := flag.Int("poll", 0, "health check interval in seconds (optional, defaults to 15s)")
	logFile := flag.String("log", "", "write logs to this file (optional)")
	flag.Parse()

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	opts := app.Options{
		ConfigPath:  *configPath,
		EnvPath:     *envPath,
		BaseURL:     *baseURL,
		SessionPath: *sessionPath,
		PrefsPath:   *prefsPath,
		LogFile:     *logFile,
	}
	if poll := *pollSeconds; poll > 0 {
		opts.PollEvery = time.Duration(poll) * time.Second
	}

	if err := app.Run(ctx, opts); err != nil {
		fmt.Fprintf(os.Stderr, "recipe-finder: %v\n", err)
		return 1
	}
	return 0
}
