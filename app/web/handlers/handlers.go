package handlers

import (
	"github.com/gin-gonic/gin"

	authhandler "github.com/ribgsilva/notes-web/app/web/handlers/v1/auth"
	"github.com/ribgsilva/notes-web/app/web/handlers/v1/healthcheck"
	noteshandler "github.com/ribgsilva/notes-web/app/web/handlers/v1/notes"
	"github.com/ribgsilva/notes-web/platform/web/handler"
	"github.com/ribgsilva/notes-web/platform/web/session"
)

func MapDefaults(r *gin.Engine) {
	r.GET("/healthcheck", handler.Wrapper(healthcheck.Get))
}

// Map wires every route of the application. Registration and login stay
// outside the session gate; the dashboard sits behind it.
func Map(r *gin.Engine, a *authhandler.Handler, n *noteshandler.Handler, sessions *session.Manager) {
	r.GET("/register", handler.Wrapper(a.RegisterForm))
	r.POST("/register", handler.Wrapper(a.Register))
	r.GET("/login", handler.Wrapper(a.LoginForm))
	r.POST("/login", handler.Wrapper(a.Login))
	r.GET("/logout", handler.Wrapper(a.Logout))

	gate := sessions.Gate("/login")
	r.GET("/", gate, handler.Wrapper(n.Dashboard))
	r.POST("/", gate, handler.Wrapper(n.Dashboard))
}
