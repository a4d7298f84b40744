package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := newRootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestRenderCmd_BuiltinSample(t *testing.T) {
	out, err := execute(t, "render", "--fixture", "boardindex")
	require.NoError(t, err)
	assert.Contains(t, out, "<!DOCTYPE html>")
	assert.Contains(t, out, "Sample Community")
}

func TestRenderCmd_FileToOut(t *testing.T) {
	dir := t.TempDir()
	src, err := os.ReadFile(filepath.Join("..", "..", "internal", "fixtures", "samples", "themes.yaml"))
	require.NoError(t, err)
	fixture := filepath.Join(dir, "mine.yaml")
	require.NoError(t, os.WriteFile(fixture, src, 0o600))
	target := filepath.Join(dir, "mine.html")

	_, err = execute(t, "render", "--fixture", fixture, "-o", target)
	require.NoError(t, err)

	html, err := os.ReadFile(target)
	require.NoError(t, err)
	assert.Contains(t, string(html), "Sample Community")
}

func TestRenderCmd_FailedRenderWritesNoFile(t *testing.T) {
	dir := t.TempDir()
	fixture := filepath.Join(dir, "nameless.yaml")
	require.NoError(t, os.WriteFile(fixture, []byte("page: themes\ndata:\n  section: list\n"), 0o600))
	target := filepath.Join(dir, "nameless.html")

	_, err := execute(t, "render", "--fixture", fixture, "-o", target)
	require.Error(t, err)

	_, statErr := os.Stat(target)
	assert.ErrorIs(t, statErr, os.ErrNotExist)
}

func TestRenderCmd_Errors(t *testing.T) {
	badLang := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(badLang, "english.yaml"), []byte("key: [\n"), 0o600))

	tests := []struct {
		name string
		args []string
	}{
		{"missing flag", []string{"render"}},
		{"unknown fixture", []string{"render", "--fixture", "no_such_fixture"}},
		{"broken language override", []string{"render", "--fixture", "boardindex", "--lang_dir", badLang}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := execute(t, tt.args...)
			assert.Error(t, err)
		})
	}
}

func TestXSLTCmd(t *testing.T) {
	out, err := execute(t, "xslt", "--script_url", "https://forum.example.org/index.php")
	require.NoError(t, err)
	assert.Contains(t, out, `<xsl:stylesheet version="1.0"`)
	assert.Contains(t, out, "https://forum.example.org/index.php")
}

func TestXSLTCmd_Embed(t *testing.T) {
	body := filepath.Join(t.TempDir(), "export.xml")
	require.NoError(t, os.WriteFile(body, []byte("<forum:member><forum:name>Alice</forum:name></forum:member>"), 0o600))

	out, err := execute(t, "xslt", "--embed", body)
	require.NoError(t, err)
	assert.Contains(t, out, `<?xml-stylesheet type="text/xsl" href="#stylesheet"?>`)
	assert.Contains(t, out, "<forum:name>Alice</forum:name>")
}
