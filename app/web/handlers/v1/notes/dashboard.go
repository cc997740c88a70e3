package notes

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/ribgsilva/notes-web/business/v1/note"
	"github.com/ribgsilva/notes-web/platform/web/handler"
	"github.com/ribgsilva/notes-web/platform/web/render"
	"github.com/ribgsilva/notes-web/platform/web/session"
)

// Handler serves the notes dashboard for authenticated users.
type Handler struct {
	notes *note.Service
	log   *zap.SugaredLogger
}

func New(notes *note.Service, log *zap.SugaredLogger) *Handler {
	return &Handler{notes: notes, log: log}
}

// Dashboard accepts an optional note submission and renders the user's
// notes, newest first. Whitespace-only submissions are skipped silently.
func (h *Handler) Dashboard(ctx *gin.Context) handler.Result {
	s, ok := session.Current(ctx)
	if !ok {
		return handler.Result{Redirect: "/login"}
	}

	if ctx.Request.Method == http.MethodPost {
		if content := strings.TrimSpace(ctx.PostForm("note")); content != "" {
			if _, err := h.notes.Create(ctx, s.UserID, content); err != nil {
				h.log.Errorw("create note", "user", s.UserID, "ERROR", err)
				return handler.Result{Status: http.StatusInternalServerError, Text: "Something went wrong."}
			}
		}
	}

	list, err := h.notes.ListByUser(ctx, s.UserID)
	if err != nil {
		h.log.Errorw("list notes", "user", s.UserID, "ERROR", err)
		return handler.Result{Status: http.StatusInternalServerError, Text: "Something went wrong."}
	}

	views := make([]render.NoteView, 0, len(list))
	for _, n := range list {
		views = append(views, render.NoteView{Content: n.Content, CreatedAt: n.CreatedAt})
	}

	return handler.Result{
		Template: render.PageDashboard,
		Data:     render.DashboardView{Username: s.Username, Notes: views},
	}
}
