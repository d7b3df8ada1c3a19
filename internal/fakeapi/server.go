// Package fakeapi is an in-memory recipe backend used by tests and for local
// development. It speaks the same routes the client negotiates and can be
// told to hide or break individual routes so fallback paths get exercised.
package fakeapi

import (
	"net/http"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"
)

// Options configure a Server.
type Options struct {
	Recipes []Recipe // empty seeds DefaultRecipes

	// Disabled routes answer 404 as if the backend did not implement them.
	// Keys are "METHOD /path" using gin's route pattern, e.g. "GET /recipes/search".
	Disabled []string
	// Failing routes answer with the given status.
	Failing map[string]int

	// RegisterIssuesToken makes /auth/register return an access token.
	// Otherwise clients must log in after registering.
	RegisterIssuesToken bool

	Secret   []byte        // JWT signing key; empty uses a fixed development key
	TokenTTL time.Duration // zero means one hour
	Delay    time.Duration // added to every request

	// RateLimit caps requests per second across all clients. Zero disables it.
	RateLimit rate.Limit
	Burst     int

	Logger bool // attach gin's request logger
}

// Server is the fake backend.
type Server struct {
	opts    Options
	engine  *gin.Engine
	limiter *rate.Limiter

	mu        sync.Mutex
	catalog   map[string]Recipe
	order     []string
	users     map[string]*user
	favorites map[string][]string // owner -> recipe ids
	revoked   map[string]bool     // token ids
	hits      map[string]int
}

const anonymousOwner = ""

// New builds a Server with its routes registered.
func New(opts Options) *Server {
	if len(opts.Secret) == 0 {
		opts.Secret = []byte("recipe-finder-dev-secret")
	}
	if opts.TokenTTL <= 0 {
		opts.TokenTTL = time.Hour
	}
	seed := opts.Recipes
	if len(seed) == 0 {
		seed = DefaultRecipes()
	}

	s := &Server{
		opts:      opts,
		catalog:   make(map[string]Recipe, len(seed)),
		users:     make(map[string]*user),
		favorites: make(map[string][]string),
		revoked:   make(map[string]bool),
		hits:      make(map[string]int),
	}
	for _, r := range seed {
		s.putRecipe(r)
	}
	if opts.RateLimit > 0 {
		burst := opts.Burst
		if burst <= 0 {
			burst = 1
		}
		s.limiter = rate.NewLimiter(opts.RateLimit, burst)
	}

	engine := gin.New()
	if opts.Logger {
		engine.Use(gin.Logger())
	}
	engine.Use(gin.Recovery(), s.control())
	s.routes(engine)
	s.engine = engine
	return s
}

// Handler returns the HTTP handler serving the backend.
func (s *Server) Handler() http.Handler {
	return s.engine
}

// Hits returns how many times the route ("METHOD /pattern") was requested,
// including requests refused as disabled or failing.
func (s *Server) Hits(route string) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.hits[route]
}

// FavoriteIDs returns the saved recipe ids of username, or of anonymous
// saves when username is empty. The result is sorted.
func (s *Server) FavoriteIDs(username string) []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	ids := append([]string(nil), s.favorites[strings.ToLower(username)]...)
	sort.Strings(ids)
	return ids
}

func (s *Server) routes(r *gin.Engine) {
	r.GET("/", s.health)

	r.GET("/recipes/search", s.searchRecipes)
	r.GET("/recipes", s.listRecipes)
	r.GET("/recipes/:id", s.getRecipe)

	favorites := r.Group("/favorites", s.optionalAuth())
	favorites.GET("", s.listFavorites)
	favorites.POST("", s.addFavorite)
	favorites.DELETE("/:id", s.removeFavorite)

	r.GET("/saved", s.listSaved)
	r.POST("/saved", s.addSaved)
	r.DELETE("/saved/:id", s.removeSaved)

	auth := r.Group("/auth")
	auth.POST("/register", s.register)
	auth.POST("/login", s.login)
	auth.GET("/me", s.requireAuth(), s.me)
	auth.POST("/logout", s.requireAuth(), s.logout)
}

// control applies the per-route switches from Options before any handler.
func (s *Server) control() gin.HandlerFunc {
	disabled := make(map[string]bool, len(s.opts.Disabled))
	for _, route := range s.opts.Disabled {
		disabled[route] = true
	}
	return func(c *gin.Context) {
		route := c.Request.Method + " " + c.FullPath()
		s.mu.Lock()
		s.hits[route]++
		s.mu.Unlock()

		if s.opts.Delay > 0 {
			select {
			case <-time.After(s.opts.Delay):
			case <-c.Request.Context().Done():
				c.AbortWithStatus(http.StatusServiceUnavailable)
				return
			}
		}
		if s.limiter != nil && !s.limiter.Allow() {
			c.AbortWithStatusJSON(http.StatusTooManyRequests, gin.H{"detail": "rate limit exceeded"})
			return
		}
		if disabled[route] {
			c.AbortWithStatusJSON(http.StatusNotFound, gin.H{"detail": "Not Found"})
			return
		}
		if status, ok := s.opts.Failing[route]; ok {
			c.AbortWithStatusJSON(status, gin.H{"detail": http.StatusText(status)})
			return
		}
		c.Next()
	}
}

func (s *Server) putRecipe(r Recipe) {
	if _, exists := s.catalog[r.ID]; !exists {
		s.order = append(s.order, r.ID)
	}
	s.catalog[r.ID] = r
}

func (s *Server) searchCatalog(query string) []map[string]any {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]map[string]any, 0)
	for _, id := range s.order {
		if r := s.catalog[id]; r.matches(query) {
			out = append(out, r.payload())
		}
	}
	return out
}
