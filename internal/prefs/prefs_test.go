package prefs

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func exerciseStore(t *testing.T, s Store) {
	t.Helper()
	ctx := context.Background()

	_, err := s.Get(ctx, "missing")
	assert.ErrorIs(t, err, ErrNotFound)

	require.NoError(t, s.Set(ctx, "k", "v1"))
	v, err := s.Get(ctx, "k")
	require.NoError(t, err)
	assert.Equal(t, "v1", v)

	require.NoError(t, s.Set(ctx, "k", "v2"))
	v, err = s.Get(ctx, "k")
	require.NoError(t, err)
	assert.Equal(t, "v2", v)
}

func TestMemoryStore(t *testing.T) {
	exerciseStore(t, NewMemoryStore())
}

func TestSQLiteStore(t *testing.T) {
	s, err := NewSQLiteStore(":memory:")
	require.NoError(t, err)
	defer s.Close()
	exerciseStore(t, s)
}

func TestRedisStore(t *testing.T) {
	url := os.Getenv("AIRDASH_TEST_REDIS_URL")
	if url == "" {
		t.Skip("AIRDASH_TEST_REDIS_URL not set, skipping")
	}
	s, err := NewRedisStore(url, nil)
	require.NoError(t, err)
	defer s.Close()
	require.NoError(t, s.client.Del(context.Background(), redisKeyPrefix+"missing", redisKeyPrefix+"k").Err())
	exerciseStore(t, s)
}

func TestThemeDefaultsToLight(t *testing.T) {
	theme, err := LoadTheme(context.Background(), NewMemoryStore())
	require.NoError(t, err)
	assert.Equal(t, Light, theme)
}

func TestThemeRejectsGarbage(t *testing.T) {
	s := NewMemoryStore()
	require.NoError(t, s.Set(context.Background(), ThemeKey, "sepia"))
	theme, err := LoadTheme(context.Background(), s)
	assert.Error(t, err)
	assert.Equal(t, Light, theme)
}

func TestThemeSurvivesReopen(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "nested", "prefs.db")

	s, err := Open(Config{Backend: "sqlite", Path: path}, nil)
	require.NoError(t, err)
	require.NoError(t, SaveTheme(ctx, s, Dark))
	require.NoError(t, s.Close())

	s, err = Open(Config{Backend: "sqlite", Path: path}, nil)
	require.NoError(t, err)
	defer s.Close()
	theme, err := LoadTheme(ctx, s)
	require.NoError(t, err)
	assert.Equal(t, Dark, theme)
}

func TestOpenFallsBackFromUnreachableRedis(t *testing.T) {
	path := filepath.Join(t.TempDir(), "prefs.db")
	s, err := Open(Config{Backend: "redis", RedisURL: "redis://127.0.0.1:1/0", Path: path}, nil)
	require.NoError(t, err)
	defer s.Close()
	_, ok := s.(*SQLiteStore)
	assert.True(t, ok)
}

func TestOpenUnknownBackend(t *testing.T) {
	_, err := Open(Config{Backend: "etcd"}, nil)
	assert.Error(t, err)
}

func TestParseAndToggleTheme(t *testing.T) {
	th, err := ParseTheme(" Dark")
	require.NoError(t, err)
	assert.Equal(t, Dark, th)
	assert.Equal(t, Light, th.Toggle())
	assert.Equal(t, Dark, Light.Toggle())
	_, err = ParseTheme("")
	assert.Error(t, err)
}
