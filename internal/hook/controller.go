// Package hook wires the patch into the host process's windowing calls.
// It is the only active component: everything runs synchronously on
// whichever thread delivers the triggering event.
package hook

import (
	"sync"
	"sync/atomic"

	"go.uber.org/zap"

	"github.com/eliteGoblin/darkbar/internal/domain"
	"github.com/eliteGoblin/darkbar/internal/exclusion"
	"github.com/eliteGoblin/darkbar/internal/theme"
	"github.com/eliteGoblin/darkbar/internal/usecase"
)

// Controller owns the process-wide patch state: the cached theme, the
// memoized exclusion decision, and the resolved originals of both
// intercepted entry points. One Controller exists per process,
// constructed at attach and discarded at detach.
type Controller struct {
	interceptor domain.Interceptor
	oracle      *theme.Oracle
	applicator  *usecase.Applicator
	proc        domain.ProcessInfo
	denylist    *exclusion.List
	logger      *zap.Logger

	// dark is the cached theme state. Message hooks on different
	// threads may race on the compare-then-set; the worst case is a
	// redundant re-application of the same value.
	dark atomic.Bool

	gateOnce sync.Once
	gated    bool

	origCreate  domain.CreateWindowFunc
	origDefProc domain.WndProcFunc
}

// NewController creates the patch controller.
func NewController(
	interceptor domain.Interceptor,
	oracle *theme.Oracle,
	applicator *usecase.Applicator,
	proc domain.ProcessInfo,
	denylist *exclusion.List,
	logger *zap.Logger,
) *Controller {
	return &Controller{
		interceptor: interceptor,
		oracle:      oracle,
		applicator:  applicator,
		proc:        proc,
		denylist:    denylist,
		logger:      logger,
	}
}

// Excluded reports whether the current process is on the denylist.
// The decision is computed once per process lifetime; the executable
// identity cannot change underneath us.
func (c *Controller) Excluded() bool {
	c.gateOnce.Do(func() {
		name, err := c.proc.ExecutableBaseName()
		if err != nil {
			// Unknown identity is treated as not excluded.
			c.logger.Warn("cannot resolve executable name", zap.Error(err))
			return
		}
		if c.denylist.Match(name) {
			c.gated = true
			c.logger.Info("process excluded",
				zap.String("exe", name),
				zap.Int("pid", c.proc.PID()))
		}
	})
	return c.gated
}

// OnLoad runs the startup sequence: exclusion gate, initial theme read,
// hook installation. It always returns nil; a partially installed patch
// degrades to doing less, never destabilizes the host.
func (c *Controller) OnLoad() error {
	if c.Excluded() {
		c.logger.Info("skipping setup for excluded process",
			zap.Int("pid", c.proc.PID()))
		return nil
	}

	c.dark.Store(c.oracle.IsSystemDarkMode())
	c.logger.Info("initial theme",
		zap.Bool("dark", c.dark.Load()),
		zap.Int("pid", c.proc.PID()))

	// Each hook installs independently; losing one still leaves the
	// other functional.
	if orig, err := c.interceptor.InstallDefWindowProc(c.defWindowProcHook); err != nil {
		c.logger.Error("failed to hook default window procedure", zap.Error(err))
	} else {
		c.origDefProc = orig
		c.logger.Info("hooked default window procedure")
	}

	if orig, err := c.interceptor.InstallCreateWindow(c.createWindowHook); err != nil {
		c.logger.Error("failed to hook window creation", zap.Error(err))
	} else {
		c.origCreate = orig
		c.logger.Info("hooked window creation")
	}

	return nil
}

// OnLoadComplete sweeps windows that already existed before the patch
// was loaded into the process, applying the cached theme to each.
func (c *Controller) OnLoadComplete() {
	if c.Excluded() {
		return
	}
	c.logger.Info("applying theme to existing windows",
		zap.Bool("dark", c.dark.Load()))
	c.applicator.ApplyToAll(c.dark.Load())
}

// OnUnload restores default titlebar rendering on every top-level
// window of the process before the patch is removed.
func (c *Controller) OnUnload() {
	if c.Excluded() {
		return
	}
	c.logger.Info("restoring default titlebars")
	c.applicator.ApplyToAll(false)
}

// CurrentDark returns the cached theme state.
func (c *Controller) CurrentDark() bool {
	return c.dark.Load()
}
