package recipes

import (
	"strings"

	"github.com/golang-jwt/jwt/v5"
)

// usernameFromToken reads the username claim from a JWT without verifying
// it. The client only uses it for display; the server remains the authority.
func usernameFromToken(token string) string {
	token = strings.TrimSpace(token)
	if strings.Count(token, ".") != 2 {
		return ""
	}
	claims := jwt.MapClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(token, claims); err != nil {
		return ""
	}
	for _, key := range []string{"username", "preferred_username", "name"} {
		if v, ok := claims[key].(string); ok && strings.TrimSpace(v) != "" {
			return strings.TrimSpace(v)
		}
	}
	if sub, err := claims.GetSubject(); err == nil {
		return strings.TrimSpace(sub)
	}
	return ""
}
