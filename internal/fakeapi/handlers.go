package fakeapi

import (
	"net/http"
	"slices"
	"strings"

	"github.com/gin-gonic/gin"
)

func (s *Server) health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok", "message": "Recipe API is healthy"})
}

// searchRecipes is the preferred search endpoint. It wraps results in an
// envelope.
func (s *Server) searchRecipes(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"results": s.searchCatalog(c.Query("q"))})
}

// listRecipes is the legacy list endpoint; it answers with a bare array.
func (s *Server) listRecipes(c *gin.Context) {
	c.JSON(http.StatusOK, s.searchCatalog(c.Query("q")))
}

func (s *Server) getRecipe(c *gin.Context) {
	s.mu.Lock()
	r, ok := s.catalog[c.Param("id")]
	s.mu.Unlock()
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"detail": "recipe not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": r.payload()})
}

type favoriteRequest struct {
	RecipeID string         `json:"recipe_id"`
	Recipe   map[string]any `json:"recipe"`
	Username string         `json:"username"`
}

// owner picks whose favorites a request addresses: the token's user, else
// an explicit username, else the anonymous bucket.
func owner(c *gin.Context, explicit string) string {
	if name := c.GetString(ctxUsername); name != "" {
		return strings.ToLower(name)
	}
	return strings.ToLower(strings.TrimSpace(explicit))
}

func (s *Server) listFavorites(c *gin.Context) {
	who := owner(c, c.Query("username"))

	s.mu.Lock()
	entries := make([]gin.H, 0, len(s.favorites[who]))
	for _, id := range s.favorites[who] {
		entries = append(entries, gin.H{"recipe_id": id, "recipe": s.catalog[id].payload()})
	}
	s.mu.Unlock()

	c.JSON(http.StatusOK, gin.H{"favorites": entries})
}

func (s *Server) addFavorite(c *gin.Context) {
	var req favoriteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		validationError(c, err)
		return
	}
	id, status, detail := s.save(owner(c, req.Username), req)
	if status != http.StatusCreated {
		c.JSON(status, gin.H{"detail": detail})
		return
	}
	c.JSON(http.StatusCreated, gin.H{"recipe_id": id})
}

func (s *Server) removeFavorite(c *gin.Context) {
	if !s.unsave(owner(c, c.Query("username")), c.Param("id")) {
		c.JSON(http.StatusNotFound, gin.H{"detail": "favorite not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"removed": c.Param("id")})
}

// The /saved routes are the older anonymous-only variant.

func (s *Server) listSaved(c *gin.Context) {
	s.mu.Lock()
	saved := make([]map[string]any, 0, len(s.favorites[anonymousOwner]))
	for _, id := range s.favorites[anonymousOwner] {
		saved = append(saved, s.catalog[id].payload())
	}
	s.mu.Unlock()

	c.JSON(http.StatusOK, gin.H{"saved": saved})
}

func (s *Server) addSaved(c *gin.Context) {
	var req favoriteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		validationError(c, err)
		return
	}
	id, status, detail := s.save(anonymousOwner, req)
	if status != http.StatusCreated {
		c.JSON(status, gin.H{"detail": detail})
		return
	}
	c.JSON(http.StatusCreated, gin.H{"id": id})
}

func (s *Server) removeSaved(c *gin.Context) {
	if !s.unsave(anonymousOwner, c.Param("id")) {
		c.JSON(http.StatusNotFound, gin.H{"detail": "saved recipe not found"})
		return
	}
	c.Status(http.StatusNoContent)
}

// save records a favorite, adding a posted recipe to the catalog when it is
// not known yet. It returns the saved id or an error status and detail.
func (s *Server) save(who string, req favoriteRequest) (string, int, string) {
	id := strings.TrimSpace(req.RecipeID)
	var posted Recipe
	if req.Recipe != nil {
		posted = recipeFromPayload(req.Recipe)
		if id == "" {
			id = posted.ID
		}
	}
	if id == "" {
		return "", http.StatusUnprocessableEntity, "recipe_id or recipe.id is required"
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if _, known := s.catalog[id]; !known {
		if req.Recipe == nil {
			return "", http.StatusNotFound, "recipe not found"
		}
		posted.ID = id
		s.putRecipe(posted)
	}
	if !slices.Contains(s.favorites[who], id) {
		s.favorites[who] = append(s.favorites[who], id)
	}
	return id, http.StatusCreated, ""
}

func (s *Server) unsave(who, id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	ids := s.favorites[who]
	i := slices.Index(ids, id)
	if i < 0 {
		return false
	}
	s.favorites[who] = slices.Delete(ids, i, i+1)
	return true
}
