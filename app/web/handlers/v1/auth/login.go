package auth

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/ribgsilva/notes-web/business/v1/auth"
	"github.com/ribgsilva/notes-web/platform/web/handler"
	"github.com/ribgsilva/notes-web/platform/web/render"
	"github.com/ribgsilva/notes-web/platform/web/session"
)

// LoginForm renders the login page.
func (h *Handler) LoginForm(ctx *gin.Context) handler.Result {
	return handler.Result{Template: render.PageLogin}
}

// Login verifies the submitted credentials, establishes the session cookie
// and sends the user to the dashboard.
func (h *Handler) Login(ctx *gin.Context) handler.Result {
	username := ctx.PostForm("username")
	password := ctx.PostForm("password")

	s, err := h.auth.Login(ctx, username, password)
	switch {
	case errors.Is(err, auth.ErrInvalidCredentials):
		return handler.Result{Text: "Invalid credentials."}
	case err != nil:
		h.log.Errorw("login", "ERROR", err)
		return handler.Result{Status: http.StatusInternalServerError, Text: "Something went wrong."}
	}

	if err := h.sessions.Establish(ctx, session.Session{UserID: s.UserID, Username: s.Username}); err != nil {
		h.log.Errorw("login", "ERROR", err)
		return handler.Result{Status: http.StatusInternalServerError, Text: "Something went wrong."}
	}
	return handler.Result{Redirect: "/"}
}
