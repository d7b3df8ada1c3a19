// Package app provides the orchestration layer for the recipe finder.
//
// # Overview
//
// This package wires together configuration, the API client, health polling,
// the stored session and the UI. It is the composition root where all
// dependencies are initialized and connected.
//
// # Startup
//
//  1. Load ~/.config/recipe-finder/config.toml, then .env and environment overrides
//  2. Apply command-line overrides (base URL, poll interval, log file)
//  3. Route the standard logger to the log file, or discard it
//  4. Build the recipes.Client and the shared state.Store
//  5. Load preferences and the stored session
//  6. Launch the health poller and run the TUI until exit or cancellation
//
// # Polling Behavior
//
// The poller checks GET / on a fixed interval (default 15 seconds) and
// records the result in the store. Consecutive failures double the wait up
// to 30 seconds. The first check is left to the UI's bootstrap so the two
// do not race at startup. Failures are logged and polling continues.
//
// # Error Handling
//
// Fatal errors (returned from Run):
//   - Config or env file present but unreadable or invalid
//   - Invalid API base URL
//   - Log file cannot be opened
//
// Everything else (backend down, expired session, failed requests) is shown
// in the UI and never stops the program.
package app
