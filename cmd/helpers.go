package cmd

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/fatih/color"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/ziadkadry99/hvacpanel/internal/config"
	"github.com/ziadkadry99/hvacpanel/internal/db"
	"github.com/ziadkadry99/hvacpanel/internal/navigation"
	"github.com/ziadkadry99/hvacpanel/internal/prefs"
	"github.com/ziadkadry99/hvacpanel/internal/routes"
	"github.com/ziadkadry99/hvacpanel/internal/sections"
	"github.com/ziadkadry99/hvacpanel/internal/sidebar"
)

var (
	bold   = color.New(color.Bold)
	green  = color.New(color.FgGreen)
	yellow = color.New(color.FgYellow)
	red    = color.New(color.FgRed, color.Bold)
	cyan   = color.New(color.FgCyan)
)

// newLogger builds a zap logger at level. --verbose always wins.
func newLogger(level string, development bool) (*zap.Logger, error) {
	zc := zap.NewProductionConfig()
	if development {
		zc = zap.NewDevelopmentConfig()
	}
	lvl, err := zap.ParseAtomicLevel(level)
	if err != nil {
		return nil, err
	}
	if verbose {
		lvl = zap.NewAtomicLevelAt(zapcore.DebugLevel)
	}
	zc.Level = lvl
	return zc.Build()
}

// loadConfig loads and validates the config, providing a user-friendly error.
func loadConfig() (*config.Config, error) {
	cfg, err := config.Load(cfgFile)
	if err != nil {
		return nil, fmt.Errorf("loading config: %w\nRun `hvacpanel init` to create a config file", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", cfgFile, err)
	}
	return cfg, nil
}

// router is the navigation core assembled from configuration.
type router struct {
	parser     navigation.Parser
	dispatcher *routes.Dispatcher
	matcher    *sidebar.Matcher
}

func buildRouter(cfg *config.Config) (*router, error) {
	parser := cfg.Parser()
	table, err := sections.Table(parser.DefaultKey, cfg.DeepPathPolicies())
	if err != nil {
		return nil, fmt.Errorf("building route table: %w", err)
	}
	matcher, err := sidebar.NewMatcher(sections.NavEntries(parser.DefaultKey))
	if err != nil {
		return nil, fmt.Errorf("building sidebar: %w", err)
	}
	return &router{
		parser:     parser,
		dispatcher: routes.NewDispatcher(table),
		matcher:    matcher,
	}, nil
}

// openPrefs opens the configured preference backend. The returned close
// function is never nil.
func openPrefs(ctx context.Context, cfg config.PreferencesConfig) (prefs.Store, func() error, error) {
	switch cfg.Backend {
	case prefs.BackendMemory:
		return prefs.NewMemoryStore(), func() error { return nil }, nil
	case prefs.BackendRedis:
		store, err := prefs.NewRedisStore(ctx, &redis.Options{Addr: cfg.RedisAddr}, cfg.RedisPrefix)
		if err != nil {
			return nil, nil, err
		}
		return store, store.Close, nil
	default:
		database, err := db.Open(filepath.Join(cfg.DataDir, "hvacpanel.db"))
		if err != nil {
			return nil, nil, fmt.Errorf("opening database: %w", err)
		}
		return prefs.NewSQLiteStore(database), database.Close, nil
	}
}
