// Package config loads the recipe client's settings.
//
// # Configuration Discovery
//
// Load resolves settings in this order, later sources winning:
//
//  1. Built-in defaults
//  2. The TOML file (explicit path, else ~/.config/recipe-finder/config.toml)
//  3. A dotenv file (explicit path, else ./.env when present)
//  4. The process environment
//
// A missing config file is not an error. A missing dotenv file is only an
// error when its path was given explicitly.
//
// # Default Values
//
//   - API base URL: http://127.0.0.1:8000
//   - Request timeout: 20s
//   - Search debounce: 350ms
//   - Health poll interval: 15s
//   - Log file: none (logging discarded)
//
// # TOML Format
//
//	api_base_url = "http://127.0.0.1:8000"
//	timeout_seconds = 20
//	debounce_ms = 350
//	poll_seconds = 15
//	log_file = "~/.local/state/recipe-finder/client.log"
//
//	[fields]
//	id = ["id", "recipe_id", "_id", "uuid"]
//	title = ["title", "name"]
//
// The [fields] table overrides the backend keys tried for each canonical
// recipe field. Lists left out keep their defaults.
//
// # Environment
//
//   - RECIPES_API_BASE_URL overrides api_base_url
//   - RECIPES_API_TIMEOUT_SECONDS overrides timeout_seconds (ignored when not a positive number)
package config
