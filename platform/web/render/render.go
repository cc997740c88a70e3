// Package render is the presentation layer: it turns structured view data
// into HTML pages and knows nothing about stores or sessions.
package render

import (
	"html/template"
	"time"

	"github.com/gin-gonic/gin"
)

// Page names, used by handlers when building their results.
const (
	PageRegister  = "register.html"
	PageLogin     = "login.html"
	PageDashboard = "dashboard.html"
)

// NoteView is a single note ready for display.
type NoteView struct {
	Content   string
	CreatedAt time.Time
}

// DashboardView is the data behind the dashboard page.
type DashboardView struct {
	Username string
	Notes    []NoteView
}

// Templates compiles every page into a single template set.
func Templates() *template.Template {
	t := template.New("")
	template.Must(t.New(PageRegister).Parse(registerPage))
	template.Must(t.New(PageLogin).Parse(loginPage))
	template.Must(t.New(PageDashboard).Parse(dashboardPage))
	return t
}

// Attach installs the template set on the router.
func Attach(r *gin.Engine) {
	r.SetHTMLTemplate(Templates())
}
