package healthcheck

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/ribgsilva/notes-web/platform/web/handler"
)

// Get reports process liveness.
func Get(ctx *gin.Context) handler.Result {
	return handler.Result{Status: http.StatusOK, Text: "OK"}
}
