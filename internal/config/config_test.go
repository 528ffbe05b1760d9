package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/ziadkadry99/hvacpanel/internal/routes"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	if cfg.Server.Port != 8080 {
		t.Errorf("expected default port 8080, got %d", cfg.Server.Port)
	}
	if cfg.Navigation.DefaultSection != "pulpit" {
		t.Errorf("expected default section pulpit, got %q", cfg.Navigation.DefaultSection)
	}
	if cfg.Preferences.Backend != "sqlite" {
		t.Errorf("expected sqlite backend, got %q", cfg.Preferences.Backend)
	}
	if len(cfg.Navigation.NewMarkers) != 2 {
		t.Errorf("expected 2 new markers, got %v", cfg.Navigation.NewMarkers)
	}
}

func TestSaveAndLoad(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "test.hvacpanel.yml")

	original := DefaultConfig()
	original.Server.Port = 9090
	original.Navigation.DefaultSection = "zlecenia"
	original.Navigation.NewMarkers = []string{"nowy"}
	original.Navigation.UnmatchedDeepPath = map[string]string{"zlecenia": "not_found"}
	original.Preferences.Backend = "redis"
	original.Preferences.RedisAddr = "redis:6379"

	if err := original.Save(path); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if loaded.Server.Port != 9090 {
		t.Errorf("port: got %d, want 9090", loaded.Server.Port)
	}
	if loaded.Navigation.DefaultSection != "zlecenia" {
		t.Errorf("default_section: got %q", loaded.Navigation.DefaultSection)
	}
	if len(loaded.Navigation.NewMarkers) != 1 || loaded.Navigation.NewMarkers[0] != "nowy" {
		t.Errorf("new_markers: got %v", loaded.Navigation.NewMarkers)
	}
	if loaded.Navigation.UnmatchedDeepPath["zlecenia"] != "not_found" {
		t.Errorf("unmatched_deep_path: got %v", loaded.Navigation.UnmatchedDeepPath)
	}
	if loaded.Preferences.Backend != "redis" || loaded.Preferences.RedisAddr != "redis:6379" {
		t.Errorf("preferences: got %+v", loaded.Preferences)
	}
}

func TestLoadMissingFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "nonexistent.yml")

	// Loading a missing file should return defaults, not an error.
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load should not fail for missing file: %v", err)
	}
	if cfg.Navigation.DefaultSection != "pulpit" {
		t.Errorf("expected default section, got %q", cfg.Navigation.DefaultSection)
	}
}

func TestLoadEnvOverride(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "test.yml")

	if err := DefaultConfig().Save(path); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	t.Setenv("HVACPANEL_SERVER__PORT", "7070")
	t.Setenv("HVACPANEL_PREFERENCES__BACKEND", "memory")
	t.Setenv("HVACPANEL_NAVIGATION__UNMATCHED_DEEP_PATH__KLIENCI", "not_found")

	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if loaded.Server.Port != 7070 {
		t.Errorf("env override failed: got port %d", loaded.Server.Port)
	}
	if loaded.Preferences.Backend != "memory" {
		t.Errorf("env override failed: got backend %q", loaded.Preferences.Backend)
	}
	if loaded.Navigation.UnmatchedDeepPath["klienci"] != "not_found" {
		t.Errorf("env override failed: got %v", loaded.Navigation.UnmatchedDeepPath)
	}
}

func TestLoadInvalidYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.yml")
	if err := os.WriteFile(path, []byte("server: [unclosed"), 0644); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(path); err == nil {
		t.Error("expected error for malformed yaml")
	}
}

func TestValidateValid(t *testing.T) {
	if err := DefaultConfig().Validate(); err != nil {
		t.Errorf("DefaultConfig should be valid, got: %v", err)
	}
}

func TestValidateInvalid(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"port", func(c *Config) { c.Server.Port = 70000 }},
		{"empty default section", func(c *Config) { c.Navigation.DefaultSection = "" }},
		{"unknown default section", func(c *Config) { c.Navigation.DefaultSection = "hangar" }},
		{"marker with slash", func(c *Config) { c.Navigation.NewMarkers = []string{"a/b"} }},
		{"deep path unknown section", func(c *Config) {
			c.Navigation.UnmatchedDeepPath = map[string]string{"hangar": "list"}
		}},
		{"deep path bad policy", func(c *Config) {
			c.Navigation.UnmatchedDeepPath = map[string]string{"klienci": "redirect"}
		}},
		{"backend", func(c *Config) { c.Preferences.Backend = "etcd" }},
		{"sqlite without dir", func(c *Config) { c.Preferences.DataDir = "" }},
		{"redis without addr", func(c *Config) {
			c.Preferences.Backend = "redis"
			c.Preferences.RedisAddr = ""
		}},
		{"log level", func(c *Config) { c.Log.Level = "loud" }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(cfg)
			if err := cfg.Validate(); err == nil {
				t.Error("expected validation error")
			}
		})
	}
}

func TestDeepPathPolicies(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Navigation.UnmatchedDeepPath = map[string]string{"zlecenia": "not_found"}
	got := cfg.DeepPathPolicies()
	if got["zlecenia"] != routes.FallbackNotFound {
		t.Errorf("expected not_found, got %q", got["zlecenia"])
	}
}

func TestParserFromConfig(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Navigation.NewMarkers = []string{"dodaj"}
	p := cfg.Parser()

	st := p.Parse("#/klienci/dodaj")
	if st.Ref.Kind.String() != "new" {
		t.Errorf("expected new marker, got %s", st.Ref.Kind)
	}
	if p.Parse("").Key != "pulpit" {
		t.Errorf("expected default key pulpit")
	}
}

func TestSplitAndTrim(t *testing.T) {
	tests := []struct {
		input string
		want  []string
	}{
		{"a,b,c", []string{"a", "b", "c"}},
		{" nowa , new ", []string{"nowa", "new"}},
		{"", nil},
		{"  ,  , ", nil},
	}
	for _, tt := range tests {
		got := splitAndTrim(tt.input)
		if len(got) != len(tt.want) {
			t.Errorf("splitAndTrim(%q) len = %d, want %d", tt.input, len(got), len(tt.want))
			continue
		}
		for i, v := range got {
			if v != tt.want[i] {
				t.Errorf("splitAndTrim(%q)[%d] = %q, want %q", tt.input, i, v, tt.want[i])
			}
		}
	}
}
