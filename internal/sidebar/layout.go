package sidebar

import (
	"context"
	"sync"

	"go.uber.org/zap"

	"github.com/ziadkadry99/hvacpanel/internal/prefs"
)

// Layout is the sidebar state sent to the browser.
type Layout struct {
	Collapsed  bool `json:"collapsed"`
	DrawerOpen bool `json:"drawer_open"`
}

// Controller owns the desktop collapse flag. The flag is read from the
// preference store once, at construction, and written back on every change.
type Controller struct {
	store  prefs.Store
	logger *zap.Logger

	mu        sync.Mutex
	collapsed bool
}

// NewController loads the persisted flag. An unreadable flag starts the
// sidebar expanded.
func NewController(ctx context.Context, store prefs.Store, logger *zap.Logger) *Controller {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Controller{
		store:     store,
		logger:    logger,
		collapsed: prefs.LoadFlag(ctx, store, prefs.SidebarCollapsedKey, false, logger),
	}
}

// Collapsed reports the current flag.
func (c *Controller) Collapsed() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.collapsed
}

// Toggle flips the flag and persists it. The in-memory flag changes even
// if the write fails, so the UI never disagrees with what the user did.
func (c *Controller) Toggle(ctx context.Context) (bool, error) {
	c.mu.Lock()
	c.collapsed = !c.collapsed
	v := c.collapsed
	err := prefs.SaveFlag(ctx, c.store, prefs.SidebarCollapsedKey, v)
	c.mu.Unlock()

	if err != nil {
		c.logger.Warn("persisting sidebar state failed", zap.Bool("collapsed", v), zap.Error(err))
	}
	return v, err
}

// Drawer is the mobile navigation drawer. Its state is never persisted:
// every new session starts with it closed.
type Drawer struct {
	mu   sync.Mutex
	open bool
}

func (d *Drawer) Open() {
	d.mu.Lock()
	d.open = true
	d.mu.Unlock()
}

func (d *Drawer) Close() {
	d.mu.Lock()
	d.open = false
	d.mu.Unlock()
}

func (d *Drawer) IsOpen() bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.open
}

// Snapshot combines the persisted and volatile halves of the layout.
func Snapshot(c *Controller, d *Drawer) Layout {
	return Layout{Collapsed: c.Collapsed(), DrawerOpen: d.IsOpen()}
}
