package auth

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/ribgsilva/notes-web/business/v1/auth"
	"github.com/ribgsilva/notes-web/platform/web/handler"
	"github.com/ribgsilva/notes-web/platform/web/render"
)

// RegisterForm renders the registration page.
func (h *Handler) RegisterForm(ctx *gin.Context) handler.Result {
	return handler.Result{Template: render.PageRegister}
}

// Register creates a user from the submitted form and sends the new user to
// the login page.
func (h *Handler) Register(ctx *gin.Context) handler.Result {
	username := ctx.PostForm("username")
	password := ctx.PostForm("password")

	_, err := h.auth.Register(ctx, username, password)
	switch {
	case errors.Is(err, auth.ErrMissingField):
		return handler.Result{Text: "Username and password are required."}
	case errors.Is(err, auth.ErrUsernameTaken):
		return handler.Result{Text: "Username already exists."}
	case err != nil:
		h.log.Errorw("register", "ERROR", err)
		return handler.Result{Status: http.StatusInternalServerError, Text: "Something went wrong."}
	default:
		return handler.Result{Redirect: "/login"}
	}
}
