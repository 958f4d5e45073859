package store

import (
	"context"
	"os"
	"path/filepath"
	"strconv"
	"testing"

	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lixenwraith/orchead/constants"
)

func TestMemoryStore(t *testing.T) {
	ctx := context.Background()
	m := NewMemory()

	v, err := m.Get(ctx, constants.KeyKills)
	require.NoError(t, err)
	assert.Zero(t, v)

	require.NoError(t, m.Set(ctx, constants.KeyKills, 7))
	v, err = m.Get(ctx, constants.KeyKills)
	require.NoError(t, err)
	assert.EqualValues(t, 7, v)
}

func TestMemoryFlags(t *testing.T) {
	ctx := context.Background()
	f := NewMemoryFlags()

	fresh, err := f.SetOnce(ctx, constants.KeySessionFlag)
	require.NoError(t, err)
	assert.True(t, fresh)

	fresh, err = f.SetOnce(ctx, constants.KeySessionFlag)
	require.NoError(t, err)
	assert.False(t, fresh)

	require.NoError(t, f.Clear(ctx, constants.KeySessionFlag))
	fresh, _ = f.SetOnce(ctx, constants.KeySessionFlag)
	assert.True(t, fresh)
}

func TestFileStoreRoundTrip(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "nested", "state.toml")

	st, err := OpenFile(path)
	require.NoError(t, err, "missing file should open empty")
	require.NoError(t, st.Set(ctx, constants.KeyKills, 1234))
	require.NoError(t, st.Set(ctx, constants.KeyVisitors, 5))

	reopened, err := OpenFile(path)
	require.NoError(t, err)
	kills, _ := reopened.Get(ctx, constants.KeyKills)
	visitors, _ := reopened.Get(ctx, constants.KeyVisitors)
	assert.EqualValues(t, 1234, kills)
	assert.EqualValues(t, 5, visitors)

	raw, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(raw), "orchead_kills = 1234")

	// No temp files left behind
	entries, err := os.ReadDir(filepath.Dir(path))
	require.NoError(t, err)
	assert.Len(t, entries, 1)
}

func TestFileStoreRejectsCorruptState(t *testing.T) {
	path := filepath.Join(t.TempDir(), "state.toml")
	require.NoError(t, os.WriteFile(path, []byte("orchead_kills = [not a number"), 0o600))

	_, err := OpenFile(path)
	assert.Error(t, err)
}

func TestFileFlagsPerSession(t *testing.T) {
	ctx := context.Background()
	dir := t.TempDir()

	a := NewFileFlags(dir, "101")
	b := NewFileFlags(dir, "202")

	fresh, err := a.SetOnce(ctx, constants.KeySessionFlag)
	require.NoError(t, err)
	assert.True(t, fresh)

	fresh, err = NewFileFlags(dir, "101").SetOnce(ctx, constants.KeySessionFlag)
	require.NoError(t, err)
	assert.False(t, fresh, "second process in the same session must not count")

	fresh, err = b.SetOnce(ctx, constants.KeySessionFlag)
	require.NoError(t, err)
	assert.True(t, fresh, "another session counts separately")

	require.NoError(t, a.Clear(ctx, constants.KeySessionFlag))
	require.NoError(t, a.Clear(ctx, constants.KeySessionFlag), "clearing twice is fine")
}

func TestOpenBackends(t *testing.T) {
	ctx := context.Background()

	st, flags, err := Open(ctx, Options{Backend: BackendMemory})
	require.NoError(t, err)
	assert.IsType(t, &Memory{}, st)
	assert.IsType(t, &MemoryFlags{}, flags)

	st, flags, err = Open(ctx, Options{
		Backend:   BackendFile,
		Path:      filepath.Join(t.TempDir(), "s.toml"),
		FlagDir:   t.TempDir(),
		SessionID: "1",
	})
	require.NoError(t, err)
	assert.IsType(t, &File{}, st)
	assert.IsType(t, &FileFlags{}, flags)

	_, _, err = Open(ctx, Options{Backend: "etcd"})
	assert.ErrorIs(t, err, ErrUnknownBackend)
}

// Runs against a live server when ORCHEAD_TEST_REDIS names one
func TestRedisBackend(t *testing.T) {
	addr := os.Getenv("ORCHEAD_TEST_REDIS")
	if addr == "" {
		t.Skip("ORCHEAD_TEST_REDIS not set")
	}
	ctx := context.Background()
	prefix := "orchead-test:" + strconv.Itoa(os.Getpid()) + ":"

	client := redis.NewClient(&redis.Options{Addr: addr})
	defer client.Close()
	require.NoError(t, client.Ping(ctx).Err())

	st := NewRedis(client, prefix)
	v, err := st.Get(ctx, constants.KeyKills)
	require.NoError(t, err)
	assert.Zero(t, v)
	require.NoError(t, st.Set(ctx, constants.KeyKills, 42))
	v, err = st.Get(ctx, constants.KeyKills)
	require.NoError(t, err)
	assert.EqualValues(t, 42, v)

	flags := NewRedisFlags(client, prefix, "s1")
	fresh, err := flags.SetOnce(ctx, constants.KeySessionFlag)
	require.NoError(t, err)
	assert.True(t, fresh)
	fresh, err = flags.SetOnce(ctx, constants.KeySessionFlag)
	require.NoError(t, err)
	assert.False(t, fresh)

	ttl, err := client.TTL(ctx, prefix+constants.KeySessionFlag+":s1").Result()
	require.NoError(t, err)
	assert.Positive(t, ttl)

	require.NoError(t, flags.Clear(ctx, constants.KeySessionFlag))
	client.Del(ctx, prefix+constants.KeyKills)
}
