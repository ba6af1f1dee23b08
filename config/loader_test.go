package config

import (
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestLoader(t *testing.T, home, work string) *Loader {
	t.Helper()
	l := NewLoader(slog.New(slog.NewTextHandler(io.Discard, nil)))
	l.homeDir = func() (string, error) { return home, nil }
	l.workDir = func() (string, error) { return work, nil }
	return l
}

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
}

func TestLoader_DefaultsOnly(t *testing.T) {
	l := newTestLoader(t, t.TempDir(), t.TempDir())

	cfg, err := l.Load()
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), cfg)
}

func TestLoader_Layering(t *testing.T) {
	home := t.TempDir()
	project := t.TempDir()
	work := filepath.Join(project, "nested", "dir")
	require.NoError(t, os.MkdirAll(work, 0755))

	writeFile(t, filepath.Join(home, UserConfigDir, UserConfigFile), `
fetch:
  user_agent: user-agent
  timeout: 5s
log:
  level: debug
`)
	writeFile(t, filepath.Join(project, ProjectConfigFile), `
fetch:
  user_agent: project-agent
`)

	l := newTestLoader(t, home, work)
	cfg, err := l.Load()
	require.NoError(t, err)

	assert.Equal(t, "project-agent", cfg.Fetch.UserAgent, "project overrides user")
	assert.Equal(t, "5s", cfg.Fetch.Timeout.String(), "user value survives project layer")
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, DefaultAccept, cfg.Fetch.Accept)
}

func TestLoader_ProjectDisablesFlags(t *testing.T) {
	home := t.TempDir()
	project := t.TempDir()

	writeFile(t, filepath.Join(home, UserConfigDir, UserConfigFile), `
fetch:
  block_private_networks: true
metrics:
  enabled: true
`)
	writeFile(t, filepath.Join(project, ProjectConfigFile), `
fetch:
  block_private_networks: false
metrics:
  enabled: false
`)

	cfg, err := newTestLoader(t, home, project).Load()
	require.NoError(t, err)
	assert.False(t, cfg.Fetch.PrivateNetworksBlocked())
	assert.False(t, cfg.Metrics.IsEnabled())
}

func TestLoader_Override(t *testing.T) {
	override := filepath.Join(t.TempDir(), "override.yaml")
	writeFile(t, override, `
fetch:
  accept: [application/n-triples]
`)

	l := newTestLoader(t, t.TempDir(), t.TempDir())
	cfg, err := l.LoadWithOverride(override)
	require.NoError(t, err)
	assert.Equal(t, []string{"application/n-triples"}, cfg.Fetch.Accept)
}

func TestLoader_OverrideMissing(t *testing.T) {
	l := newTestLoader(t, t.TempDir(), t.TempDir())
	_, err := l.LoadWithOverride(filepath.Join(t.TempDir(), "nope.yaml"))
	require.Error(t, err)
}

func TestLoader_InvalidResult(t *testing.T) {
	work := t.TempDir()
	writeFile(t, filepath.Join(work, ProjectConfigFile), `
log:
  level: chatty
`)

	l := newTestLoader(t, t.TempDir(), work)
	_, err := l.Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "log.level")
}

func TestLoader_EnsureUserConfig(t *testing.T) {
	home := t.TempDir()
	l := newTestLoader(t, home, t.TempDir())

	require.NoError(t, l.EnsureUserConfig())
	path := filepath.Join(home, UserConfigDir, UserConfigFile)
	_, err := os.Stat(path)
	require.NoError(t, err)

	// A second call leaves the existing file alone.
	writeFile(t, path, "log:\n  level: error\n")
	require.NoError(t, l.EnsureUserConfig())
	cfg, err := LoadFromFile(path)
	require.NoError(t, err)
	assert.Equal(t, "error", cfg.Log.Level)
}
