package config

import (
	"flag"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lixenwraith/orchead/detect"
	"github.com/lixenwraith/orchead/effect"
	"github.com/lixenwraith/orchead/store"
	"github.com/lixenwraith/orchead/tally"
)

func writeFile(t *testing.T, name, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestDefaultsValidate(t *testing.T) {
	c := Default()
	require.NoError(t, c.Validate())
	assert.Equal(t, store.BackendFile, c.Backend)
	assert.True(t, c.Chaos)
	assert.NotEmpty(t, c.StatePath)
}

func TestFlagsOverrideDefaults(t *testing.T) {
	c := Default()
	fs := flag.NewFlagSet("run", flag.ContinueOnError)
	c.RegisterFlags(fs)

	require.NoError(t, fs.Parse([]string{"--store", "redis", "--redis-db", "3", "--reduced-motion", "--chaos=false"}))
	assert.Equal(t, store.BackendRedis, c.Backend)
	assert.Equal(t, 3, c.RedisDB)
	assert.True(t, c.ReducedMotion)
	assert.False(t, c.Chaos)

	opts := c.StoreOptions("sid42")
	assert.Equal(t, "sid42", opts.SessionID)
	assert.Equal(t, 3, opts.RedisDB)
}

func TestValidateRejectsUnknownBackend(t *testing.T) {
	c := Default()
	c.Backend = "floppy"
	assert.ErrorIs(t, c.Validate(), store.ErrUnknownBackend)

	c = Default()
	c.StatePath = ""
	assert.Error(t, c.Validate())
}

func TestLoadEnv(t *testing.T) {
	path := writeFile(t, ".env", "ORCHEAD_TEST_LOADENV=uruk\n")
	t.Setenv("ORCHEAD_TEST_LOADENV", "")
	os.Unsetenv("ORCHEAD_TEST_LOADENV")

	require.NoError(t, LoadEnv(path, filepath.Join(t.TempDir(), "absent.env")))
	assert.Equal(t, "uruk", os.Getenv("ORCHEAD_TEST_LOADENV"))
}

func TestLoadContent(t *testing.T) {
	path := writeFile(t, "content.toml", `
reduced_motion = true
quotes = ["Fly, you fools!"]
idle_messages = ["The orc dozes..."]

[phrases]
Fools = "shall-not-pass"

[[milestones]]
when = "count == 42"
effect = "party"

[[milestones]]
when = "count >= 1000"
effect = "frenzy"
latch = true
`)
	c, err := LoadContent(path)
	require.NoError(t, err)
	require.NoError(t, c.Validate(effect.DefaultRegistry()))

	assert.True(t, c.MotionPreference(false))
	assert.Equal(t, effect.ShallNotPass, c.PhraseTable()["fools"])
	assert.Equal(t, effect.Grond, c.PhraseTable()["grond"], "built-in phrases stay")
	assert.Len(t, c.Rules(), len(tally.DefaultRules)+2)
	assert.Equal(t, "Fly, you fools!", c.QuotePool()[len(c.QuotePool())-1])
	assert.Len(t, c.IdlePool(), len(detect.DefaultIdleMessages)+1)
}

func TestLoadContentEmptyPath(t *testing.T) {
	c, err := LoadContent("")
	require.NoError(t, err)
	assert.False(t, c.MotionPreference(false))
	assert.Len(t, c.PhraseTable(), len(detect.DefaultPhrases))
}

func TestLoadContentErrors(t *testing.T) {
	_, err := LoadContent(filepath.Join(t.TempDir(), "missing.toml"))
	assert.Error(t, err)

	_, err = LoadContent(writeFile(t, "bad.toml", "quotes = [\n"))
	assert.Error(t, err)

	_, err = LoadContent(writeFile(t, "typo.toml", "quotse = []\n"))
	assert.ErrorContains(t, err, "unknown key")
}

func TestContentValidation(t *testing.T) {
	reg := effect.DefaultRegistry()
	tests := []struct {
		name    string
		content Content
	}{
		{"unknown phrase effect", Content{Phrases: map[string]string{"fools": "nope"}}},
		{"non-letter phrase", Content{Phrases: map[string]string{"you shall": "grond"}}},
		{"bad milestone expression", Content{Milestones: []tally.Rule{{When: "count ==", Effect: "grond"}}}},
		{"milestone unknown effect", Content{Milestones: []tally.Rule{{When: "count == 1", Effect: "nope"}}}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Error(t, tt.content.Validate(reg))
		})
	}
}
