// Package usecase contains the window styling logic.
package usecase

import (
	"go.uber.org/zap"

	"github.com/eliteGoblin/darkbar/internal/domain"
)

// Applicator applies or clears the dark-titlebar attribute on windows.
// Applications are idempotent per window: setting the attribute to the
// value it already holds is a harmless no-op, observable only as a
// repeated redraw.
type Applicator struct {
	windows domain.WindowSystem
	logger  *zap.Logger
}

// NewApplicator creates a styling applicator.
func NewApplicator(ws domain.WindowSystem, logger *zap.Logger) *Applicator {
	return &Applicator{windows: ws, logger: logger}
}

// Eligible reports whether w should receive the titlebar attribute:
// a live, captioned, top-level, non-tool window. Liveness is
// re-validated at call time; handles can go stale between enumeration
// and use.
func (a *Applicator) Eligible(w domain.Window) bool {
	if w == 0 || !a.windows.IsWindow(w) {
		return false
	}

	style := a.windows.QueryStyle(w)
	if !style.HasCaption() {
		return false
	}
	if style.IsToolWindow() {
		return false
	}
	if style.IsChild() {
		return false
	}

	return true
}

// ApplyDarkMode sets the immersive dark mode attribute on one window and
// forces a frame repaint so the titlebar updates immediately.
// Ineligible windows are left untouched. A failed attribute set is
// logged and not retried; a later create or theme notification will
// re-converge the window's state.
func (a *Applicator) ApplyDarkMode(w domain.Window, useDark bool) {
	if !a.Eligible(w) {
		return
	}

	var value int32
	if useDark {
		value = 1
	}

	if err := a.windows.SetAttribute(w, domain.DWMWA_USE_IMMERSIVE_DARK_MODE, value); err != nil {
		a.logger.Warn("failed to set titlebar attribute",
			zap.Uintptr("hwnd", uintptr(w)),
			zap.Bool("dark", useDark),
			zap.Error(err))
		return
	}

	a.windows.RequestRedraw(w)
	a.logger.Debug("applied titlebar mode",
		zap.Uintptr("hwnd", uintptr(w)),
		zap.Bool("dark", useDark))
}

// ApplyToAll applies the mode to every top-level window owned by the
// current process. Idempotent: a repeat call with the same argument
// produces no additional visible change.
func (a *Applicator) ApplyToAll(useDark bool) {
	for _, w := range a.windows.TopLevelWindows() {
		a.ApplyDarkMode(w, useDark)
	}
}
