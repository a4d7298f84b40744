package lang

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Embedded(t *testing.T) {
	c, err := Load(Fallback, "")
	require.NoError(t, err)

	assert.Equal(t, "en-US", c.Get("lang_locale"))
	assert.Equal(t, "Quick Reply", c.Get("quick_reply"))
	assert.True(t, c.Has("calendar_month_12"))
}

func TestLoad_UnknownLanguageFallsBack(t *testing.T) {
	c, err := Load("klingon", "")
	require.NoError(t, err)

	assert.Equal(t, "klingon", c.Language)
	assert.Equal(t, "Quick Reply", c.Get("quick_reply"))
}

func TestLoad_Override(t *testing.T) {
	dir := t.TempDir()
	body := "quick_reply: \"Schnellantwort\"\nextra_key: \"extra\"\n"
	require.NoError(t, os.WriteFile(filepath.Join(dir, "german.yaml"), []byte(body), 0o600))

	c, err := Load("german", dir)
	require.NoError(t, err)

	assert.Equal(t, "Schnellantwort", c.Get("quick_reply"))
	assert.Equal(t, "extra", c.Get("extra_key"))
	assert.Equal(t, "Post", c.Get("post"), "untranslated keys come from english")
}

func TestLoad_OverrideMissingFile(t *testing.T) {
	c, err := Load(Fallback, t.TempDir())
	require.NoError(t, err)
	assert.Equal(t, "Post", c.Get("post"))
}

func TestLoad_BadOverride(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "english.yaml"), []byte("a: [1, 2"), 0o600))

	_, err := Load(Fallback, dir)
	assert.Error(t, err)
}

func TestGet_MissingKey(t *testing.T) {
	c := New("test", map[string]string{"known": "value"})

	assert.Equal(t, "value", c.Get("known"))
	assert.Equal(t, "unknown_key", c.Get("unknown_key"))
	assert.False(t, c.Has("unknown_key"))
}

func TestFormat(t *testing.T) {
	c := New("test", map[string]string{"greeting": "Hey, %s! You have %d messages."})

	assert.Equal(t, "Hey, ann! You have 3 messages.", c.Format("greeting", "ann", 3))
}
