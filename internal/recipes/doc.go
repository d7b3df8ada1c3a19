// Package recipes provides the HTTP client for the recipe backend.
//
// # Overview
//
// The backend contract is unstable: endpoints have moved between releases
// and payloads use different field names depending on where a recipe came
// from. The client copes with both:
//
//   - Chain runs an ordered list of candidate requests and returns the first
//     success, so a preferred endpoint can fall back to legacy paths.
//   - FieldMapping normalizes heterogeneous objects into one Recipe shape.
//
// # Endpoints
//
//	Health          GET /
//	Search          GET /recipes/search?q=   then GET /recipes?q=
//	Recipe          GET /recipes/{id}
//	Favorites       GET /favorites[?username=]   then GET /saved
//	SaveFavorite    POST /favorites   then POST /saved
//	RemoveFavorite  DELETE /favorites/{id}[?username=]   then DELETE /saved/{id}
//	Register        POST /auth/register
//	Login           POST /auth/login
//	Me              GET /auth/me
//	Logout          POST /auth/logout
//
// # Sessions
//
// Every call takes a session.Session explicitly. When it carries a token the
// request gets an Authorization: Bearer header. The package never reads or
// writes the session file itself.
//
// # Errors
//
// Requests that exceed their timeout (20s unless overridden) return
// ErrTimeout. Non-2xx responses return *APIError with the server-provided
// message. A chain whose candidates all fail reports the preferred
// endpoint's error unless built with ReportingLast. Message turns any of
// these into a display string.
//
// # Response Shapes
//
// List endpoints may answer with a bare array or wrap it under results,
// recipes, items, data, favorites, saved or hits. Non-JSON bodies are kept
// as text and never fail decoding.
package recipes
