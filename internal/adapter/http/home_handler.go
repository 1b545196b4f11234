package http

import (
	"net/http"

	"github.com/Brayan008/cuack-stores/internal/store"
	"github.com/gin-gonic/gin"
)

// HomeHandler renders the landing page, which doubles as the auth callback
// target: the provider redirects back here with the id_token in the fragment.
type HomeHandler struct {
	store *store.Store
}

func NewHomeHandler(st *store.Store) *HomeHandler {
	return &HomeHandler{store: st}
}

func (h *HomeHandler) Page(c *gin.Context) {
	c.HTML(http.StatusOK, "home", gin.H{
		"Session": h.store.Session(),
	})
}
