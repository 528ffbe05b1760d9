package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
	yamlv3 "gopkg.in/yaml.v3"

	"github.com/ziadkadry99/hvacpanel/internal/navigation"
	"github.com/ziadkadry99/hvacpanel/internal/prefs"
	"github.com/ziadkadry99/hvacpanel/internal/routes"
	"github.com/ziadkadry99/hvacpanel/internal/sections"
)

// EnvPrefix prefixes environment overrides. A double underscore separates
// nesting levels: HVACPANEL_SERVER__PORT -> server.port.
const EnvPrefix = "HVACPANEL_"

// Load reads configuration from the given YAML file, then overlays
// environment variable overrides (HVACPANEL_*).
func Load(path string) (*Config, error) {
	k := koanf.New(".")

	// Start from defaults.
	cfg := DefaultConfig()

	// Load YAML file if it exists.
	if _, err := os.Stat(path); err == nil {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("reading config %s: %w", path, err)
		}
	} else if !os.IsNotExist(err) {
		return nil, fmt.Errorf("accessing config %s: %w", path, err)
	}

	if err := k.Load(env.Provider(EnvPrefix, ".", envKey), nil); err != nil {
		return nil, fmt.Errorf("loading env overrides: %w", err)
	}

	if err := k.Unmarshal("", cfg); err != nil {
		return nil, fmt.Errorf("unmarshalling config: %w", err)
	}

	return cfg, nil
}

func envKey(s string) string {
	s = strings.ToLower(strings.TrimPrefix(s, EnvPrefix))
	return strings.ReplaceAll(s, "__", ".")
}

// Save writes the configuration to the given YAML file path.
func (c *Config) Save(path string) error {
	data, err := yamlv3.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshalling config: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("writing config to %s: %w", path, err)
	}
	return nil
}

// validBackends is the set of recognized preference backends.
var validBackends = map[string]bool{
	prefs.BackendMemory: true,
	prefs.BackendSQLite: true,
	prefs.BackendRedis:  true,
}

// Validate checks that the configuration contains valid values.
func (c *Config) Validate() error {
	if c.Server.Port < 0 || c.Server.Port > 65535 {
		return fmt.Errorf("server.port %d out of range", c.Server.Port)
	}

	if c.Navigation.DefaultSection == "" {
		return fmt.Errorf("navigation.default_section is required")
	}
	if _, ok := sections.Lookup(navigation.RouteKey(c.Navigation.DefaultSection)); !ok {
		return fmt.Errorf("invalid navigation.default_section %q: must be one of %s",
			c.Navigation.DefaultSection, strings.Join(sections.Keys(), ", "))
	}
	for _, m := range c.Navigation.NewMarkers {
		if m == "" || strings.Contains(m, "/") {
			return fmt.Errorf("invalid navigation.new_markers entry %q", m)
		}
	}
	for key, policy := range c.Navigation.UnmatchedDeepPath {
		if _, ok := sections.Lookup(navigation.RouteKey(key)); !ok {
			return fmt.Errorf("navigation.unmatched_deep_path: unknown section %q", key)
		}
		if !routes.Fallback(policy).Valid() {
			return fmt.Errorf("navigation.unmatched_deep_path.%s: invalid policy %q: must be list or not_found", key, policy)
		}
	}

	if !validBackends[c.Preferences.Backend] {
		return fmt.Errorf("invalid preferences.backend %q: must be one of memory, sqlite, redis", c.Preferences.Backend)
	}
	if c.Preferences.Backend == prefs.BackendSQLite && c.Preferences.DataDir == "" {
		return fmt.Errorf("preferences.data_dir is required for the sqlite backend")
	}
	if c.Preferences.Backend == prefs.BackendRedis && c.Preferences.RedisAddr == "" {
		return fmt.Errorf("preferences.redis_addr is required for the redis backend")
	}

	switch c.Log.Level {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("invalid log.level %q", c.Log.Level)
	}

	return nil
}

// DeepPathPolicies converts the configured policies for the route table.
func (c *Config) DeepPathPolicies() map[string]routes.Fallback {
	out := make(map[string]routes.Fallback, len(c.Navigation.UnmatchedDeepPath))
	for k, v := range c.Navigation.UnmatchedDeepPath {
		out[k] = routes.Fallback(v)
	}
	return out
}

// Parser returns the hash parser described by the navigation settings.
func (c *Config) Parser() navigation.Parser {
	return navigation.Parser{
		DefaultKey: navigation.RouteKey(c.Navigation.DefaultSection),
		NewMarkers: c.Navigation.NewMarkers,
	}
}
