package cmd

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"

	"github.com/ziadkadry99/hvacpanel/internal/config"
	"github.com/ziadkadry99/hvacpanel/internal/prefs"
)

func run(t *testing.T, args ...string) string {
	t.Helper()
	color.NoColor = true

	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetArgs(args)
	t.Cleanup(func() { rootCmd.SetArgs(nil) })

	require.NoError(t, rootCmd.Execute(), out.String())
	return out.String()
}

func writeConfig(t *testing.T, mutate func(*config.Config)) string {
	t.Helper()
	cfg := config.DefaultConfig()
	cfg.Preferences.Backend = prefs.BackendMemory
	if mutate != nil {
		mutate(cfg)
	}
	path := filepath.Join(t.TempDir(), "hvacpanel.yml")
	require.NoError(t, cfg.Save(path))
	return path
}

func TestVersion(t *testing.T) {
	assert.Equal(t, "hvacpanel dev\n", run(t, "version"))
}

func TestResolveDetail(t *testing.T) {
	out := run(t, "resolve", "--config", writeConfig(t, nil), "#klienci/42")

	assert.Contains(t, out, "#/klienci/42")
	assert.Contains(t, out, "resource: id 42")
	assert.Contains(t, out, "klienci.detail")
	assert.Contains(t, out, "sidebar:  /klienci")
}

func TestResolveRoot(t *testing.T) {
	out := run(t, "resolve", "--config", writeConfig(t, nil))

	assert.Contains(t, out, "section:  pulpit")
	assert.Contains(t, out, "pulpit.list")
	assert.Contains(t, out, "sidebar:  /\n")
}

func TestResolveDeepPathPolicy(t *testing.T) {
	path := writeConfig(t, func(c *config.Config) {
		c.Navigation.UnmatchedDeepPath = map[string]string{"zlecenia": "not_found"}
	})

	out := run(t, "resolve", "--config", path, "#zlecenia/7/historia")
	assert.Contains(t, out, "extra:    7/historia")
	assert.Contains(t, out, "Not found (/zlecenia/7/historia)")

	out = run(t, "resolve", "--config", path, "#klienci/7/historia")
	assert.Contains(t, out, "klienci.list")
}

func TestResolveUnknownSection(t *testing.T) {
	out := run(t, "resolve", "--config", writeConfig(t, nil), "#nieznane")

	assert.Contains(t, out, "pulpit.list")
	assert.Contains(t, out, "no entry highlighted")
}

func TestRoutes(t *testing.T) {
	path := writeConfig(t, func(c *config.Config) {
		c.Navigation.DefaultSection = "zlecenia"
	})
	out := run(t, "routes", "--config", path)

	assert.Contains(t, out, "* zlecenia")
	assert.Contains(t, out, "  pulpit")
	assert.Contains(t, out, "list,detail,create")
	assert.Contains(t, out, "deep paths: list")
}

func TestInvalidConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.yml")
	require.NoError(t, os.WriteFile(path, []byte("navigation:\n  default_section: magazyny\n"), 0o644))

	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetArgs([]string{"routes", "--config", path})
	t.Cleanup(func() { rootCmd.SetArgs(nil) })

	err := rootCmd.Execute()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "default_section")
}

func TestOpenPrefsMemory(t *testing.T) {
	store, closeStore, err := openPrefs(context.Background(), config.PreferencesConfig{Backend: prefs.BackendMemory})
	require.NoError(t, err)
	defer closeStore()

	require.NoError(t, prefs.SaveFlag(context.Background(), store, prefs.SidebarCollapsedKey, true))
}

func TestOpenPrefsSQLite(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "data")
	store, closeStore, err := openPrefs(context.Background(), config.PreferencesConfig{Backend: prefs.BackendSQLite, DataDir: dir})
	require.NoError(t, err)
	require.NoError(t, prefs.SaveFlag(context.Background(), store, prefs.SidebarCollapsedKey, true))
	require.NoError(t, closeStore())

	assert.FileExists(t, filepath.Join(dir, "hvacpanel.db"))
}

func TestNewLoggerLevel(t *testing.T) {
	log, err := newLogger("warn", false)
	require.NoError(t, err)
	assert.False(t, log.Core().Enabled(zapcore.InfoLevel))
	assert.True(t, log.Core().Enabled(zapcore.WarnLevel))

	verbose = true
	t.Cleanup(func() { verbose = false })
	log, err = newLogger("warn", false)
	require.NoError(t, err)
	assert.True(t, log.Core().Enabled(zapcore.DebugLevel))

	_, err = newLogger("loud", false)
	assert.Error(t, err)
}
