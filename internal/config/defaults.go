package config

import (
	"github.com/ziadkadry99/hvacpanel/internal/navigation"
	"github.com/ziadkadry99/hvacpanel/internal/prefs"
	"github.com/ziadkadry99/hvacpanel/internal/sections"
)

// DefaultPath is the config file looked up when --config is not given.
const DefaultPath = ".hvacpanel.yml"

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() *Config {
	return &Config{
		Server: ServerConfig{
			Port: 8080,
		},
		Navigation: NavigationConfig{
			DefaultSection: string(sections.DefaultKey),
			NewMarkers:     append([]string(nil), navigation.DefaultNewMarkers...),
		},
		Preferences: PreferencesConfig{
			Backend:     prefs.BackendSQLite,
			DataDir:     ".hvacpanel",
			RedisAddr:   "localhost:6379",
			RedisPrefix: "hvacpanel",
		},
		Log: LogConfig{
			Level: "info",
		},
	}
}
