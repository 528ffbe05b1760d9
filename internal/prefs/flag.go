package prefs

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"go.uber.org/zap"
)

// SidebarCollapsedKey holds the desktop sidebar collapse flag.
const SidebarCollapsedKey = "sidebarCollapsed"

// LoadFlag reads a JSON boolean. A missing key, a failing store or a value
// that is not a JSON boolean all yield def; failures are logged, never
// returned.
func LoadFlag(ctx context.Context, store Store, key string, def bool, logger *zap.Logger) bool {
	raw, err := store.Get(ctx, key)
	if errors.Is(err, ErrNotFound) {
		return def
	}
	if err != nil {
		logger.Warn("preference read failed, using default",
			zap.String("key", key), zap.Bool("default", def), zap.Error(err))
		return def
	}
	var v *bool
	if err := json.Unmarshal(raw, &v); err != nil || v == nil {
		logger.Warn("preference value corrupt, using default",
			zap.String("key", key), zap.ByteString("value", raw), zap.Bool("default", def))
		return def
	}
	return *v
}

// SaveFlag writes v as "true" or "false".
func SaveFlag(ctx context.Context, store Store, key string, v bool) error {
	raw, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("encoding preference %s: %w", key, err)
	}
	return store.Set(ctx, key, raw)
}
