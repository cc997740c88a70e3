package auth

import (
	"github.com/gin-gonic/gin"

	"github.com/ribgsilva/notes-web/platform/web/handler"
)

// Logout discards the session cookie and sends the user to the login page.
func (h *Handler) Logout(ctx *gin.Context) handler.Result {
	h.sessions.Clear(ctx)
	return handler.Result{Redirect: "/login"}
}
