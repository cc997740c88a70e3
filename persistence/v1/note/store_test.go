package note

import (
	"context"
	"database/sql"
	"fmt"
	"path/filepath"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/go-redis/redis/v8"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/ribgsilva/notes-web/persistence/v1/schema"
	"github.com/ribgsilva/notes-web/sys"

	_ "modernc.org/sqlite"
)

type fixture struct {
	store *Store
	db    *sql.DB
	redis *miniredis.Miniredis
}

func newFixture(t *testing.T) *fixture {
	t.Helper()

	db, err := sql.Open("sqlite", "file:"+filepath.Join(t.TempDir(), "test.db")+"?_pragma=foreign_keys(1)")
	require.NoError(t, err)
	db.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = db.Close() })

	require.NoError(t, schema.NewManager(db, "sqlite").Create(context.Background()))

	s := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: s.Addr()})
	t.Cleanup(func() { _ = rdb.Close() })

	cfg := &sys.Config{}
	cfg.Database.OperationTimeout = 5 * time.Second
	cfg.Cache.OperationTimeout = 5 * time.Second
	cfg.Cache.NotesTTL = time.Hour

	return &fixture{
		store: NewStore(db, rdb, cfg, zap.NewNop().Sugar()),
		db:    db,
		redis: s,
	}
}

func (f *fixture) createUser(t *testing.T, username string) uint64 {
	t.Helper()
	res, err := f.db.Exec("INSERT INTO users (username, password_hash) VALUES (?, ?)", username, "x")
	require.NoError(t, err)
	id, err := res.LastInsertId()
	require.NoError(t, err)
	return uint64(id)
}

func (f *fixture) insertNoteAt(t *testing.T, userID uint64, content string, at time.Time) {
	t.Helper()
	_, err := f.db.Exec("INSERT INTO notes (user_id, content, created_at) VALUES (?, ?, ?)", userID, content, at)
	require.NoError(t, err)
}

func contents(notes []Note) []string {
	out := make([]string, 0, len(notes))
	for _, n := range notes {
		out = append(out, n.Content)
	}
	return out
}

func TestListByUserEmpty(t *testing.T) {
	f := newFixture(t)
	uid := f.createUser(t, "alice")

	notes, err := f.store.ListByUser(context.Background(), uid)
	require.NoError(t, err)
	assert.Empty(t, notes)
}

func TestListByUserOrdersNewestFirst(t *testing.T) {
	f := newFixture(t)
	uid := f.createUser(t, "alice")

	base := time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC)
	f.insertNoteAt(t, uid, "first", base)
	f.insertNoteAt(t, uid, "second", base.Add(time.Second))
	f.insertNoteAt(t, uid, "third", base.Add(2*time.Second))

	notes, err := f.store.ListByUser(context.Background(), uid)
	require.NoError(t, err)
	assert.Equal(t, []string{"third", "second", "first"}, contents(notes))
}

func TestListByUserBreaksTiesByIdDescending(t *testing.T) {
	f := newFixture(t)
	uid := f.createUser(t, "alice")

	at := time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC)
	f.insertNoteAt(t, uid, "older insert", at)
	f.insertNoteAt(t, uid, "newer insert", at)

	notes, err := f.store.ListByUser(context.Background(), uid)
	require.NoError(t, err)
	assert.Equal(t, []string{"newer insert", "older insert"}, contents(notes))
}

func TestListByUserOnlyOwnNotes(t *testing.T) {
	f := newFixture(t)
	alice := f.createUser(t, "alice")
	bob := f.createUser(t, "bob")

	_, err := f.store.Insert(context.Background(), alice, "mine")
	require.NoError(t, err)

	notes, err := f.store.ListByUser(context.Background(), bob)
	require.NoError(t, err)
	assert.Empty(t, notes)
}

func TestInsertRejectsMissingUser(t *testing.T) {
	f := newFixture(t)

	_, err := f.store.Insert(context.Background(), 999, "orphan")
	assert.ErrorIs(t, err, ErrInvalidReference)
}

func TestInsertAssignsCreationTime(t *testing.T) {
	f := newFixture(t)
	uid := f.createUser(t, "alice")

	before := time.Now().UTC().Add(-time.Second)
	_, err := f.store.Insert(context.Background(), uid, "hello")
	require.NoError(t, err)

	notes, err := f.store.ListByUser(context.Background(), uid)
	require.NoError(t, err)
	require.Len(t, notes, 1)
	assert.False(t, notes[0].CreatedAt.Before(before))
}

func TestInsertInvalidatesCache(t *testing.T) {
	f := newFixture(t)
	uid := f.createUser(t, "alice")
	key := fmt.Sprintf(userNotesKey, uid)

	_, err := f.store.ListByUser(context.Background(), uid)
	require.NoError(t, err)
	require.True(t, f.redis.Exists(key), "listing should populate the cache")

	_, err = f.store.Insert(context.Background(), uid, "fresh")
	require.NoError(t, err)
	assert.False(t, f.redis.Exists(key), "insert should invalidate the cache")

	notes, err := f.store.ListByUser(context.Background(), uid)
	require.NoError(t, err)
	assert.Equal(t, []string{"fresh"}, contents(notes))
}

func TestListServesFromCache(t *testing.T) {
	f := newFixture(t)
	uid := f.createUser(t, "alice")

	_, err := f.store.Insert(context.Background(), uid, "cached")
	require.NoError(t, err)

	_, err = f.store.ListByUser(context.Background(), uid)
	require.NoError(t, err)

	// bypass the store so only the cache still has the row
	_, err = f.db.Exec("DELETE FROM notes WHERE user_id = ?", uid)
	require.NoError(t, err)

	notes, err := f.store.ListByUser(context.Background(), uid)
	require.NoError(t, err)
	assert.Equal(t, []string{"cached"}, contents(notes))
}
