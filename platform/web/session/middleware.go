package session

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

const contextKey = "session"

// Gate redirects requests without a valid session and stores the session in
// the gin context for the handlers behind it.
func (m *Manager) Gate(redirectTo string) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		s, ok := m.Validate(ctx)
		if !ok {
			ctx.Redirect(http.StatusFound, redirectTo)
			ctx.Abort()
			return
		}
		ctx.Set(contextKey, s)
		ctx.Next()
	}
}

// Current returns the session stored by Gate for this request.
func Current(ctx *gin.Context) (Session, bool) {
	v, ok := ctx.Get(contextKey)
	if !ok {
		return Session{}, false
	}
	s, ok := v.(Session)
	return s, ok
}
