package handlers

import (
	"github.com/gin-gonic/gin"
)

// ListMovies - GET /api/movies
func (h *Handlers) ListMovies(c *gin.Context) {
	movies, err := h.services.Movies.List(c.Request.Context())
	if err != nil {
		fail(c, err)
		return
	}

	respondList(c, "Movies fetched successfully", len(movies), movies)
}

// SearchMovies - GET /api/movies/search?q=
// A search with no matching title creates the movie; see MovieService.Search.
func (h *Handlers) SearchMovies(c *gin.Context) {
	movies, err := h.services.Movies.Search(c.Request.Context(), c.Query("q"))
	if err != nil {
		fail(c, err)
		return
	}

	respondList(c, "Search completed", len(movies), movies)
}
