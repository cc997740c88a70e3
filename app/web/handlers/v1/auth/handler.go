package auth

import (
	"go.uber.org/zap"

	"github.com/ribgsilva/notes-web/business/v1/auth"
	"github.com/ribgsilva/notes-web/platform/web/session"
)

// Handler serves the registration, login and logout pages.
type Handler struct {
	auth     *auth.Service
	sessions *session.Manager
	log      *zap.SugaredLogger
}

func New(authService *auth.Service, sessions *session.Manager, log *zap.SugaredLogger) *Handler {
	return &Handler{auth: authService, sessions: sessions, log: log}
}
