package main

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/evship/internal/adapters/driving/cli"
	"github.com/custodia-labs/evship/internal/core/domain"
)

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0600))
	return path
}

func TestBuildServices_FromConfig(t *testing.T) {
	dir := t.TempDir()
	sources := writeFile(t, dir, "sources.txt",
		"x|srv1|acc|1|2|"+filepath.Join(dir, "absent.lgd")+"\n")
	config := writeFile(t, dir, "config.toml", `
sources_file = "`+sources+`"
error_log = "`+filepath.Join(dir, "errors.txt")+`"

[index]
url = "http://127.0.0.1:1"
timeout_seconds = 2
`)

	svc, err := buildServices(cli.Options{ConfigPath: config})
	require.NoError(t, err)
	defer svc.Close()

	assert.Equal(t, sources, svc.SourcesFile)

	settings, err := svc.Settings.Get()
	require.NoError(t, err)
	assert.Equal(t, 2*time.Second, settings.Index.Timeout)
	assert.Equal(t, config, svc.Settings.Path())

	got, err := svc.Batch.Sources(context.Background())
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "acc", got[0].Name)

	// The only source is absent, so nothing is sent.
	summary, err := svc.Batch.Run(context.Background())
	require.NoError(t, err)
	assert.True(t, summary.Sources[0].Skipped)
}

func TestBuildServices_SourcesOverride(t *testing.T) {
	dir := t.TempDir()
	config := writeFile(t, dir, "config.toml", "")
	override := writeFile(t, dir, "other.txt", "")

	svc, err := buildServices(cli.Options{ConfigPath: config, SourcesPath: override, Password: "pw"})
	require.NoError(t, err)
	defer svc.Close()

	assert.Equal(t, override, svc.SourcesFile)
	got, err := svc.Batch.Sources(context.Background())
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestBuildServices_InvalidConfig(t *testing.T) {
	dir := t.TempDir()
	config := writeFile(t, dir, "config.toml", "[index]\nurl = \"nope\"\n")

	_, err := buildServices(cli.Options{ConfigPath: config})

	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}
