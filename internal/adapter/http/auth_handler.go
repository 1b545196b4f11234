package http

import (
	"net/http"
	"time"

	"github.com/Brayan008/cuack-stores/internal/auth"
	"github.com/Brayan008/cuack-stores/internal/logging"
	"github.com/gin-gonic/gin"
)

// AuthHandler drives the redirect-based login flow. The provider returns the
// id_token in the URL fragment, so the home page forwards it here with a
// small fetch call.
type AuthHandler struct {
	ctrl *auth.Controller
}

func NewAuthHandler(ctrl *auth.Controller) *AuthHandler {
	return &AuthHandler{ctrl: ctrl}
}

// Login sends the browser to the provider's authorize endpoint.
func (h *AuthHandler) Login(c *gin.Context) {
	c.Redirect(http.StatusFound, h.ctrl.AuthorizeURL())
}

// Callback completes the login from the forwarded URL fragment.
func (h *AuthHandler) Callback(c *gin.Context) {
	fragment := c.PostForm("fragment")
	sess, err := h.ctrl.HandleCallback(c.Request.Context(), fragment, time.Now())
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
		return
	}
	logging.From(c).Info("login completed", "user", sess.User.Email)
	c.JSON(http.StatusOK, gin.H{"authenticated": true})
}

// Logout clears the session and sends the browser to the provider's logout
// endpoint, which returns it to the console.
func (h *AuthHandler) Logout(c *gin.Context) {
	h.ctrl.Logout(c.Request.Context())
	c.Redirect(http.StatusFound, h.ctrl.LogoutURL())
}
