package fakeapi

import (
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

type user struct {
	ID           string
	Username     string
	Email        string
	PasswordHash []byte
}

type credentialsRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
	Email    string `json:"email"`
}

const ctxUsername = "username"

var errInvalidToken = errors.New("invalid or expired token")

func (s *Server) register(c *gin.Context) {
	var req credentialsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		validationError(c, err)
		return
	}
	name := strings.TrimSpace(req.Username)
	key := strings.ToLower(name)

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"detail": "failed to hash password"})
		return
	}

	s.mu.Lock()
	if _, exists := s.users[key]; exists {
		s.mu.Unlock()
		c.JSON(http.StatusConflict, gin.H{"detail": "username already registered"})
		return
	}
	u := &user{ID: uuid.NewString(), Username: name, Email: strings.TrimSpace(req.Email), PasswordHash: hash}
	s.users[key] = u
	s.mu.Unlock()

	body := gin.H{"user": gin.H{"id": u.ID, "username": u.Username, "email": u.Email}}
	if s.opts.RegisterIssuesToken {
		token, err := s.issueToken(u.Username)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"detail": err.Error()})
			return
		}
		body["access_token"] = token
		body["token_type"] = "bearer"
	}
	c.JSON(http.StatusCreated, body)
}

func (s *Server) login(c *gin.Context) {
	var req credentialsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		validationError(c, err)
		return
	}

	s.mu.Lock()
	u := s.users[strings.ToLower(strings.TrimSpace(req.Username))]
	s.mu.Unlock()

	if u == nil || bcrypt.CompareHashAndPassword(u.PasswordHash, []byte(req.Password)) != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"detail": "invalid username or password"})
		return
	}

	token, err := s.issueToken(u.Username)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"detail": err.Error()})
		return
	}
	// The username is left out on purpose; clients read it from the token.
	c.JSON(http.StatusOK, gin.H{"access_token": token, "token_type": "bearer"})
}

func (s *Server) me(c *gin.Context) {
	name := c.GetString(ctxUsername)
	s.mu.Lock()
	u := s.users[strings.ToLower(name)]
	s.mu.Unlock()
	if u == nil {
		c.JSON(http.StatusUnauthorized, gin.H{"detail": "user no longer exists"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"id": u.ID, "username": u.Username, "email": u.Email})
}

func (s *Server) logout(c *gin.Context) {
	s.mu.Lock()
	s.revoked[c.GetString("jti")] = true
	s.mu.Unlock()
	c.JSON(http.StatusOK, gin.H{"detail": "logged out"})
}

// requireAuth rejects requests without a valid bearer token.
func (s *Server) requireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if header == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"detail": "missing authorization header"})
			return
		}
		if !s.authenticate(c, header) {
			return
		}
		c.Next()
	}
}

// optionalAuth authenticates when a bearer token is present and lets
// anonymous requests through.
func (s *Server) optionalAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		if header := c.GetHeader("Authorization"); header != "" && !s.authenticate(c, header) {
			return
		}
		c.Next()
	}
}

func (s *Server) authenticate(c *gin.Context, header string) bool {
	parts := strings.Split(header, " ")
	if len(parts) != 2 || parts[0] != "Bearer" {
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"detail": "invalid authorization header format"})
		return false
	}
	name, jti, err := s.validateToken(parts[1])
	if err != nil {
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"detail": err.Error()})
		return false
	}
	c.Set(ctxUsername, name)
	c.Set("jti", jti)
	return true
}

func (s *Server) issueToken(username string) (string, error) {
	now := time.Now()
	claims := jwt.MapClaims{
		"sub": username,
		"jti": uuid.NewString(),
		"iat": now.Unix(),
		"exp": now.Add(s.opts.TokenTTL).Unix(),
	}
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.opts.Secret)
	if err != nil {
		return "", fmt.Errorf("sign token: %w", err)
	}
	return signed, nil
}

func (s *Server) validateToken(raw string) (username, jti string, err error) {
	token, err := jwt.Parse(raw, func(*jwt.Token) (any, error) {
		return s.opts.Secret, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil || !token.Valid {
		return "", "", errInvalidToken
	}
	username, err = token.Claims.GetSubject()
	if err != nil || username == "" {
		return "", "", errInvalidToken
	}
	if claims, ok := token.Claims.(jwt.MapClaims); ok {
		jti, _ = claims["jti"].(string)
	}

	s.mu.Lock()
	revoked := s.revoked[jti]
	s.mu.Unlock()
	if revoked {
		return "", "", errInvalidToken
	}
	return username, jti, nil
}

// validationError mirrors the list-shaped detail validation failures use.
func validationError(c *gin.Context, err error) {
	c.JSON(http.StatusUnprocessableEntity, gin.H{
		"detail": []gin.H{{"loc": []string{"body"}, "msg": err.Error(), "type": "value_error"}},
	})
}
