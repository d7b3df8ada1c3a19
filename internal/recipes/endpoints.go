package recipes

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"github.com/kavia-common/recipe-finder-and-saver-207893-207903/internal/session"
)

// API is the set of backend operations the UI depends on. *Client
// implements it; tests substitute fakes.
type API interface {
	Health(ctx context.Context) (Health, error)
	Search(ctx context.Context, sess session.Session, query string) ([]Recipe, error)
	Recipe(ctx context.Context, sess session.Session, id string) (Recipe, error)
	Favorites(ctx context.Context, sess session.Session) ([]Recipe, error)
	SaveFavorite(ctx context.Context, sess session.Session, r Recipe) error
	RemoveFavorite(ctx context.Context, sess session.Session, id string) error
	Register(ctx context.Context, creds Credentials) (session.Session, error)
	Login(ctx context.Context, creds Credentials) (session.Session, error)
	Me(ctx context.Context, sess session.Session) (User, error)
	Logout(ctx context.Context, sess session.Session) error
}

var _ API = (*Client)(nil)

// Health is the backend's answer to GET /.
type Health struct {
	Status  string
	Message string
}

// Credentials are the login/register form values.
type Credentials struct {
	Username string
	Password string
	Email    string
}

// User is the profile returned by /auth/me.
type User struct {
	Username string
	Email    string
}

// Health pings the API root.
func (c *Client) Health(ctx context.Context) (Health, error) {
	resp, err := c.Do(ctx, session.Session{}, Request{Method: http.MethodGet, Path: "/"})
	if err != nil {
		return Health{}, err
	}
	h := Health{Status: "ok"}
	switch v := resp.JSON.(type) {
	case map[string]any:
		if s := firstString(v, []string{"status", "state"}); s != "" {
			h.Status = s
		}
		h.Message = firstString(v, []string{"message", "detail", "msg"})
	default:
		h.Message = strings.TrimSpace(resp.Text)
	}
	return h, nil
}

// Search queries the preferred search endpoint, falling back to the legacy
// list filter. A blank query returns no results without a request.
func (c *Client) Search(ctx context.Context, sess session.Session, query string) ([]Recipe, error) {
	q := strings.TrimSpace(query)
	if q == "" {
		return nil, nil
	}
	values := url.Values{"q": {q}}
	resp, err := c.Run(ctx, sess, NewChain(
		Request{Method: http.MethodGet, Path: "/recipes/search", Query: values},
		Request{Method: http.MethodGet, Path: "/recipes", Query: values},
	))
	if err != nil {
		return nil, err
	}
	return c.fields.NormalizeList(resp.JSON), nil
}

// Recipe fetches one recipe's detail.
func (c *Client) Recipe(ctx context.Context, sess session.Session, id string) (Recipe, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return Recipe{}, fmt.Errorf("recipe id required")
	}
	resp, err := c.Do(ctx, sess, Request{Method: http.MethodGet, Path: "/recipes/" + url.PathEscape(id)})
	if err != nil {
		return Recipe{}, err
	}
	r, ok := c.fields.Normalize(detailObject(resp.JSON))
	if !ok && r.Raw == nil {
		return Recipe{}, fmt.Errorf("decode recipe %s: unexpected response", id)
	}
	if r.ID == "" {
		r.ID = id
	}
	return r, nil
}

// Favorites lists the user's saved recipes.
func (c *Client) Favorites(ctx context.Context, sess session.Session) ([]Recipe, error) {
	var values url.Values
	if name := strings.TrimSpace(sess.Username); name != "" {
		values = url.Values{"username": {name}}
	}
	resp, err := c.Run(ctx, sess, NewChain(
		Request{Method: http.MethodGet, Path: "/favorites", Query: values},
		Request{Method: http.MethodGet, Path: "/saved"},
	))
	if err != nil {
		return nil, err
	}
	return c.fields.forFavorites().NormalizeList(resp.JSON), nil
}

// SaveFavorite adds r to the user's favorites. Signed-in users save by id;
// otherwise the full recipe is sent along with the username when known.
func (c *Client) SaveFavorite(ctx context.Context, sess session.Session, r Recipe) error {
	if strings.TrimSpace(r.ID) == "" {
		return fmt.Errorf("recipe id required")
	}
	var preferred map[string]any
	if sess.SignedIn() {
		preferred = map[string]any{"recipe_id": r.ID}
	} else {
		preferred = map[string]any{"recipe": r.payload()}
		if name := strings.TrimSpace(sess.Username); name != "" {
			preferred["username"] = name
		}
	}
	_, err := c.Run(ctx, sess, NewChain(
		Request{Method: http.MethodPost, Path: "/favorites", Body: preferred},
		Request{Method: http.MethodPost, Path: "/saved", Body: map[string]any{"recipe": r.payload()}},
	))
	return err
}

// RemoveFavorite deletes the favorite with the given recipe id.
func (c *Client) RemoveFavorite(ctx context.Context, sess session.Session, id string) error {
	id = strings.TrimSpace(id)
	if id == "" {
		return fmt.Errorf("recipe id required")
	}
	var values url.Values
	if name := strings.TrimSpace(sess.Username); name != "" {
		values = url.Values{"username": {name}}
	}
	escaped := url.PathEscape(id)
	_, err := c.Run(ctx, sess, NewChain(
		Request{Method: http.MethodDelete, Path: "/favorites/" + escaped, Query: values},
		Request{Method: http.MethodDelete, Path: "/saved/" + escaped},
	))
	return err
}

// Register creates an account. When the response carries no token the
// client signs in with the same credentials.
func (c *Client) Register(ctx context.Context, creds Credentials) (session.Session, error) {
	if err := creds.validate(); err != nil {
		return session.Session{}, err
	}
	body := map[string]any{"username": strings.TrimSpace(creds.Username), "password": creds.Password}
	if email := strings.TrimSpace(creds.Email); email != "" {
		body["email"] = email
	}
	resp, err := c.Do(ctx, session.Session{}, Request{Method: http.MethodPost, Path: "/auth/register", Body: body})
	if err != nil {
		return session.Session{}, err
	}
	if sess, ok := sessionFrom(resp.JSON, creds.Username); ok {
		return sess, nil
	}
	return c.Login(ctx, creds)
}

// Login exchanges credentials for an access token.
func (c *Client) Login(ctx context.Context, creds Credentials) (session.Session, error) {
	if err := creds.validate(); err != nil {
		return session.Session{}, err
	}
	body := map[string]any{"username": strings.TrimSpace(creds.Username), "password": creds.Password}
	resp, err := c.Do(ctx, session.Session{}, Request{Method: http.MethodPost, Path: "/auth/login", Body: body})
	if err != nil {
		return session.Session{}, err
	}
	sess, ok := sessionFrom(resp.JSON, creds.Username)
	if !ok {
		return session.Session{}, fmt.Errorf("login response carried no access token")
	}
	return sess, nil
}

// Me returns the profile for the session's token.
func (c *Client) Me(ctx context.Context, sess session.Session) (User, error) {
	resp, err := c.Do(ctx, sess, Request{Method: http.MethodGet, Path: "/auth/me"})
	if err != nil {
		return User{}, err
	}
	obj, _ := resp.JSON.(map[string]any)
	if inner, ok := obj["user"].(map[string]any); ok {
		obj = inner
	}
	u := User{
		Username: firstString(obj, []string{"username", "name", "sub"}),
		Email:    firstString(obj, []string{"email"}),
	}
	if u.Username == "" {
		u.Username = usernameFromToken(sess.Token)
	}
	return u, nil
}

// Logout revokes the session server-side. Callers drop the local session
// whatever the result.
func (c *Client) Logout(ctx context.Context, sess session.Session) error {
	_, err := c.Do(ctx, sess, Request{Method: http.MethodPost, Path: "/auth/logout"})
	return err
}

func (cr Credentials) validate() error {
	if strings.TrimSpace(cr.Username) == "" || cr.Password == "" {
		return ErrMissingCredentials
	}
	return nil
}

var tokenKeys = []string{"access_token", "token", "accessToken", "jwt"}

// sessionFrom reads the token and username out of an auth response.
func sessionFrom(payload any, fallbackUser string) (session.Session, bool) {
	obj, ok := payload.(map[string]any)
	if !ok {
		return session.Session{}, false
	}
	token := firstString(obj, tokenKeys)
	if token == "" {
		if inner, ok := obj["data"].(map[string]any); ok {
			obj = inner
			token = firstString(obj, tokenKeys)
		}
	}
	if token == "" {
		return session.Session{}, false
	}
	name := firstString(obj, []string{"username"})
	if user, ok := obj["user"].(map[string]any); ok && name == "" {
		name = firstString(user, []string{"username", "name"})
	}
	if name == "" {
		name = usernameFromToken(token)
	}
	if name == "" {
		name = fallbackUser
	}
	return session.Session{Token: token}.WithUsername(name), true
}
