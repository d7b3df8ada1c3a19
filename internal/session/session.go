// Package session persists the signed-in user's access token and username.
// The session file lives at ~/.config/recipe-finder/session.toml.
package session

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	toml "github.com/pelletier/go-toml/v2"

	"github.com/kavia-common/recipe-finder-and-saver-207893-207903/internal/paths"
)

// Session is the explicit auth context handed to every API call.
type Session struct {
	Token    string `toml:"access_token"`
	Username string `toml:"username"`
}

const defaultSessionPath = "~/.config/recipe-finder/session.toml"

// DefaultPath returns the default session file path.
func DefaultPath() string {
	return defaultSessionPath
}

// SignedIn reports whether the session carries an access token.
func (s Session) SignedIn() bool {
	return strings.TrimSpace(s.Token) != ""
}

// WithUsername returns a copy of s with the username replaced.
func (s Session) WithUsername(name string) Session {
	s.Username = strings.TrimSpace(name)
	return s
}

// Load reads the session from path. A missing or unreadable file yields an
// empty session.
func Load(path string) Session {
	resolved, err := paths.Resolve(path, defaultSessionPath)
	if err != nil {
		return Session{}
	}

	file, err := os.Open(resolved)
	if err != nil {
		return Session{}
	}
	defer func() { _ = file.Close() }()

	bytes, err := io.ReadAll(file)
	if err != nil {
		return Session{}
	}

	var sess Session
	if err := toml.Unmarshal(bytes, &sess); err != nil {
		return Session{}
	}
	sess.Token = strings.TrimSpace(sess.Token)
	sess.Username = strings.TrimSpace(sess.Username)
	return sess
}

// Save writes the session to path with owner-only permissions.
func Save(path string, s Session) error {
	resolved, err := paths.Resolve(path, defaultSessionPath)
	if err != nil {
		return fmt.Errorf("resolve path: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(resolved), 0o700); err != nil {
		return fmt.Errorf("create session dir: %w", err)
	}

	bytes, err := toml.Marshal(s)
	if err != nil {
		return fmt.Errorf("marshal session: %w", err)
	}

	if err := os.WriteFile(resolved, bytes, 0o600); err != nil {
		return fmt.Errorf("write session: %w", err)
	}
	return nil
}

// Clear removes the session file. A missing file is not an error.
func Clear(path string) error {
	resolved, err := paths.Resolve(path, defaultSessionPath)
	if err != nil {
		return fmt.Errorf("resolve path: %w", err)
	}
	if err := os.Remove(resolved); err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("remove session: %w", err)
	}
	return nil
}
