package config

// Config is the top-level hvacpanel configuration, corresponding to .hvacpanel.yml.
type Config struct {
	Server      ServerConfig      `yaml:"server" koanf:"server"`
	Navigation  NavigationConfig  `yaml:"navigation" koanf:"navigation"`
	Preferences PreferencesConfig `yaml:"preferences" koanf:"preferences"`
	Log         LogConfig         `yaml:"log" koanf:"log"`
}

// ServerConfig controls the HTTP listener.
type ServerConfig struct {
	Port            int  `yaml:"port" koanf:"port"`
	AllowAllOrigins bool `yaml:"allow_all_origins" koanf:"allow_all_origins"`
}

// NavigationConfig configures the route table.
type NavigationConfig struct {
	DefaultSection string   `yaml:"default_section" koanf:"default_section"`
	NewMarkers     []string `yaml:"new_markers" koanf:"new_markers"`
	// UnmatchedDeepPath maps a section key to "list" or "not_found".
	UnmatchedDeepPath map[string]string `yaml:"unmatched_deep_path,omitempty" koanf:"unmatched_deep_path"`
}

// PreferencesConfig selects where UI preferences are persisted.
type PreferencesConfig struct {
	Backend     string `yaml:"backend" koanf:"backend"`
	DataDir     string `yaml:"data_dir" koanf:"data_dir"`
	RedisAddr   string `yaml:"redis_addr" koanf:"redis_addr"`
	RedisPrefix string `yaml:"redis_prefix" koanf:"redis_prefix"`
}

// LogConfig controls the zap logger.
type LogConfig struct {
	Level       string `yaml:"level" koanf:"level"`
	Development bool   `yaml:"development" koanf:"development"`
}
