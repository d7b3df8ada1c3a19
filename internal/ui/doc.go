// Package ui provides the terminal user interface for the recipe finder.
//
// # Architecture Overview
//
// The UI is a Bubble Tea program. Model holds all state; every network call
// runs as a tea.Cmd that returns a typed message, and Update applies those
// messages. Requests that can be superseded (search, saved list, recipe
// detail) carry a sequence number, and responses whose number no longer
// matches the latest request are dropped.
//
// # Package Structure
//
//   - app.go: Model, Options, Init/Update/View and key routing
//   - messages.go: message types and the commands that produce them
//   - search.go: debounced search input and results
//   - saved.go: saved list, save/unsave with per-recipe busy tracking
//   - cards.go: recipe card rendering and windowing
//   - detail.go: recipe detail viewport
//   - account.go: sign-in form, guest mode, logout and session bootstrap
//   - activity.go: tail of the client's own log file
//   - header.go, help.go: header, command bar and help overlay
//   - theme.go, style_helpers.go: color themes and background-safe styling
//
// # Views
//
//   - Search: query field plus result cards
//   - Saved: the current owner's favorites
//   - Detail: one recipe with ingredients and instructions
//   - Account: log in, register, continue as guest, log out
//   - Activity: recent lines of the log file, refreshed every tick
//
// # Bootstrap
//
//  1. Init checks backend health and feeds the result to state.Store
//  2. A stored token is validated with Me; a 401 drops the session
//  3. The saved list loads for whoever is now the owner
//
// # Key Bindings
//
//   - /: Focus search
//   - v: Saved recipes
//   - a: Account
//   - l: Activity log
//   - enter: Open recipe
//   - s: Save or remove the selected recipe
//   - r: Reload saved recipes
//   - L: Log out
//   - Tab: Cycle views
//   - T: Cycle theme
//   - ?: Help
//   - q or Ctrl+C: Exit
package ui
