package session

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ribgsilva/notes-web/sys"
)

func testConfig(ttl time.Duration) *sys.Config {
	cfg := &sys.Config{}
	cfg.Session.Secret = "test-secret"
	cfg.Session.TTL = ttl
	cfg.Session.CookieName = "session"
	return cfg
}

func TestTokenRoundTrip(t *testing.T) {
	m := NewManager(testConfig(time.Hour))

	token, err := m.Token(Session{UserID: 42, Username: "alice"})
	require.NoError(t, err)

	got, ok := m.Parse(token)
	require.True(t, ok)
	assert.Equal(t, uint64(42), got.UserID)
	assert.Equal(t, "alice", got.Username)
}

func TestParseRejectsTamperedToken(t *testing.T) {
	m := NewManager(testConfig(time.Hour))

	token, err := m.Token(Session{UserID: 1, Username: "bob"})
	require.NoError(t, err)

	parts := strings.Split(token, ".")
	require.Len(t, parts, 3)
	tampered := parts[0] + "." + parts[1] + "x." + parts[2]

	_, ok := m.Parse(tampered)
	assert.False(t, ok)
}

func TestParseRejectsForeignSecret(t *testing.T) {
	cfg := testConfig(time.Hour)
	m := NewManager(cfg)

	other := testConfig(time.Hour)
	other.Session.Secret = "other-secret"

	token, err := NewManager(other).Token(Session{UserID: 7, Username: "eve"})
	require.NoError(t, err)

	_, ok := m.Parse(token)
	assert.False(t, ok)
}

func TestParseRejectsExpiredToken(t *testing.T) {
	m := NewManager(testConfig(-time.Minute))

	token, err := m.Token(Session{UserID: 3, Username: "carol"})
	require.NoError(t, err)

	_, ok := m.Parse(token)
	assert.False(t, ok)
}

func TestParseRejectsGarbage(t *testing.T) {
	m := NewManager(testConfig(time.Hour))

	for _, token := range []string{"", "not-a-token", "a.b.c"} {
		_, ok := m.Parse(token)
		assert.False(t, ok, "token %q should not validate", token)
	}
}
