// Package session issues and validates the signed cookie token that binds a
// browser to a logged-in user. There is no server side session registry:
// every request is validated from the token alone.
package session

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"

	"github.com/ribgsilva/notes-web/sys"
)

// Session identifies the authenticated user bound to a request.
type Session struct {
	UserID   uint64
	Username string
}

type claims struct {
	jwt.RegisteredClaims
	UserID   uint64 `json:"uid"`
	Username string `json:"uname"`
}

// Manager signs and verifies session tokens with a server held secret.
type Manager struct {
	secret []byte
	ttl    time.Duration
	cookie string
}

func NewManager(cfg *sys.Config) *Manager {
	return &Manager{
		secret: []byte(cfg.Session.Secret),
		ttl:    cfg.Session.TTL,
		cookie: cfg.Session.CookieName,
	}
}

// Token serializes s into a signed token.
func (m *Manager) Token(s Session) (string, error) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims{
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(m.ttl)),
		},
		UserID:   s.UserID,
		Username: s.Username,
	})
	return token.SignedString(m.secret)
}

// Parse verifies a token and returns the session it carries. The second
// return is false for any invalid, expired or tampered token.
func (m *Manager) Parse(tokenString string) (Session, bool) {
	c := &claims{}
	token, err := jwt.ParseWithClaims(tokenString, c, func(t *jwt.Token) (any, error) {
		return m.secret, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil || !token.Valid {
		return Session{}, false
	}
	return Session{UserID: c.UserID, Username: c.Username}, true
}

// Establish signs a token for s and installs it as the session cookie.
func (m *Manager) Establish(ctx *gin.Context, s Session) error {
	token, err := m.Token(s)
	if err != nil {
		return err
	}
	ctx.SetCookie(m.cookie, token, int(m.ttl.Seconds()), "/", "", false, true)
	return nil
}

// Validate reads the session cookie of the request. A missing or corrupt
// cookie degrades silently to a logged-out request.
func (m *Manager) Validate(ctx *gin.Context) (Session, bool) {
	token, err := ctx.Cookie(m.cookie)
	if err != nil || token == "" {
		return Session{}, false
	}
	return m.Parse(token)
}

// Clear instructs the client to discard the session cookie.
func (m *Manager) Clear(ctx *gin.Context) {
	ctx.SetCookie(m.cookie, "", -1, "/", "", false, true)
}
