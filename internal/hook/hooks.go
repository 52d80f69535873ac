package hook

import (
	"go.uber.org/zap"

	"github.com/eliteGoblin/darkbar/internal/domain"
)

// createWindowHook wraps the low-level window-creation entry point.
// Creation is always delegated first and obtained unconditionally;
// the new window then picks up the currently cached theme without
// polling.
func (c *Controller) createWindowHook(call *domain.WindowCreation) domain.Window {
	var w domain.Window
	if c.origCreate != nil {
		w = c.origCreate(call)
	}
	if w != 0 {
		c.newWindowShown(w)
	}
	return w
}

func (c *Controller) newWindowShown(w domain.Window) {
	if c.Excluded() {
		return
	}
	if !c.applicator.Eligible(w) {
		return
	}
	c.logger.Debug("new window",
		zap.Uintptr("hwnd", uintptr(w)),
		zap.Bool("dark", c.dark.Load()))
	c.applicator.ApplyDarkMode(w, c.dark.Load())
}

// defWindowProcHook observes theme-change notifications, then delegates
// to the original handler for the return value. Message processing is
// never short-circuited.
func (c *Controller) defWindowProcHook(w domain.Window, msg uint32, wparam, lparam uintptr) uintptr {
	if !c.Excluded() && isThemeChangeMessage(msg) {
		// These messages reach every window in the process, so compare
		// before applying: an unchanged theme must not re-style every
		// window on every duplicate notification.
		dark := c.oracle.IsSystemDarkMode()
		if dark != c.dark.Load() {
			c.dark.Store(dark)
			c.logger.Info("theme changed",
				zap.Bool("dark", dark),
				zap.Int("pid", c.proc.PID()))
			c.applicator.ApplyToAll(dark)
		}
	}

	if c.origDefProc == nil {
		return 0
	}
	return c.origDefProc(w, msg, wparam, lparam)
}

// isThemeChangeMessage matches the two notification kinds that can
// signal an appearance-mode change. The WM_SETTINGCHANGE payload is
// deliberately not inspected; unrelated settings changes trigger a
// harmless re-check.
func isThemeChangeMessage(msg uint32) bool {
	return msg == domain.WM_DWMCOLORIZATIONCOLORCHANGED || msg == domain.WM_SETTINGCHANGE
}
