package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Result is the outcome of a handler: a redirect, a rendered template, or a
// plain text body.
type Result struct {
	Status   int
	Redirect string
	Template string
	Data     any
	Text     string
}

// Handler is a gin handler that reports its outcome as a Result.
type Handler func(ctx *gin.Context) Result

// Wrapper adapts a Handler into a gin.HandlerFunc, turning the Result into
// the actual response.
func Wrapper(h Handler) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		r := h(ctx)
		if r.Status == 0 {
			r.Status = http.StatusOK
		}
		switch {
		case r.Redirect != "":
			ctx.Redirect(http.StatusFound, r.Redirect)
		case r.Template != "":
			ctx.HTML(r.Status, r.Template, r.Data)
		default:
			ctx.String(r.Status, r.Text)
		}
	}
}
