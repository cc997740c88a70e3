package auth

import (
	"context"
	"database/sql"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ribgsilva/notes-web/persistence/v1/schema"
	"github.com/ribgsilva/notes-web/persistence/v1/user"
	"github.com/ribgsilva/notes-web/sys"

	_ "modernc.org/sqlite"
)

func newTestService(t *testing.T) (*Service, *sql.DB) {
	t.Helper()

	db, err := sql.Open("sqlite", "file:"+filepath.Join(t.TempDir(), "test.db")+"?_pragma=foreign_keys(1)")
	require.NoError(t, err)
	db.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = db.Close() })

	require.NoError(t, schema.NewManager(db, "sqlite").Create(context.Background()))

	cfg := &sys.Config{}
	cfg.Database.OperationTimeout = 5 * time.Second

	return NewService(user.NewStore(db, cfg)), db
}

func countUsers(t *testing.T, db *sql.DB) int {
	t.Helper()
	var n int
	require.NoError(t, db.QueryRow("SELECT COUNT(*) FROM users").Scan(&n))
	return n
}

func TestRegisterAndLogin(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	id, err := svc.Register(ctx, "alice", "s3cret")
	require.NoError(t, err)
	assert.NotZero(t, id)

	s, err := svc.Login(ctx, "alice", "s3cret")
	require.NoError(t, err)
	assert.Equal(t, id, s.UserID)
	assert.Equal(t, "alice", s.Username)
}

func TestRegisterDuplicateUsername(t *testing.T) {
	svc, db := newTestService(t)
	ctx := context.Background()

	_, err := svc.Register(ctx, "alice", "s3cret")
	require.NoError(t, err)

	_, err = svc.Register(ctx, "alice", "other")
	assert.ErrorIs(t, err, ErrUsernameTaken)
	assert.Equal(t, 1, countUsers(t, db))
}

func TestRegisterMissingFields(t *testing.T) {
	svc, db := newTestService(t)
	ctx := context.Background()

	tests := []struct {
		name     string
		username string
		password string
	}{
		{"empty username", "", "pass"},
		{"blank username", "   ", "pass"},
		{"empty password", "alice", ""},
		{"blank password", "alice", "   "},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := svc.Register(ctx, tc.username, tc.password)
			assert.ErrorIs(t, err, ErrMissingField)
		})
	}
	assert.Equal(t, 0, countUsers(t, db))
}

func TestRegisterTrimsUsername(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	_, err := svc.Register(ctx, "  alice  ", "s3cret")
	require.NoError(t, err)

	_, err = svc.Login(ctx, "alice", "s3cret")
	assert.NoError(t, err)
}

func TestLoginFailuresAreIndistinguishable(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	_, err := svc.Register(ctx, "alice", "s3cret")
	require.NoError(t, err)

	_, wrongPass := svc.Login(ctx, "alice", "nope")
	_, unknownUser := svc.Login(ctx, "bob", "nope")

	assert.ErrorIs(t, wrongPass, ErrInvalidCredentials)
	assert.ErrorIs(t, unknownUser, ErrInvalidCredentials)
	assert.Equal(t, wrongPass, unknownUser)
}

func TestPasswordIsStoredHashed(t *testing.T) {
	svc, db := newTestService(t)
	ctx := context.Background()

	_, err := svc.Register(ctx, "alice", "s3cret")
	require.NoError(t, err)

	var hash string
	require.NoError(t, db.QueryRow("SELECT password_hash FROM users WHERE username = ?", "alice").Scan(&hash))
	assert.NotEqual(t, "s3cret", hash)
	assert.False(t, strings.Contains(hash, "s3cret"))
	assert.True(t, strings.HasPrefix(hash, "$2"))
}
