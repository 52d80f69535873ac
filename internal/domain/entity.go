// Package domain contains core entities and interfaces.
// This is the innermost layer in Clean Architecture - no external dependencies.
package domain

// Window is an opaque OS-assigned window handle. The zero value means
// "no window". Windows are created and destroyed by the host process and
// other components; this system only observes and annotates them.
type Window uintptr

// Win32 ABI values mirrored here as part of the boundary contract.
// The eligibility and interception contracts are defined in terms of
// these, so they live with the entities rather than in the platform layer.
const (
	WS_CHILD   uint32 = 0x40000000
	WS_CAPTION uint32 = 0x00C00000

	WS_EX_TOOLWINDOW uint32 = 0x00000080

	WM_SETTINGCHANGE               uint32 = 0x001A
	WM_DWMCOLORIZATIONCOLORCHANGED uint32 = 0x0320

	// DWMWA_USE_IMMERSIVE_DARK_MODE controls whether the window frame
	// and titlebar render in dark styling.
	DWMWA_USE_IMMERSIVE_DARK_MODE uint32 = 20
)

// WindowStyle holds both style words of a window.
type WindowStyle struct {
	Style   uint32
	ExStyle uint32
}

// HasCaption reports whether the window has a titlebar region.
func (s WindowStyle) HasCaption() bool { return s.Style&WS_CAPTION != 0 }

// IsChild reports whether the window is a child window.
func (s WindowStyle) IsChild() bool { return s.Style&WS_CHILD != 0 }

// IsToolWindow reports whether the window is a floating utility palette.
func (s WindowStyle) IsToolWindow() bool { return s.ExStyle&WS_EX_TOOLWINDOW != 0 }

// WindowCreation is the abstracted argument record of the low-level
// window-creation entry point. Hooks pass it through to the original
// untouched; creation is never suppressed or altered.
type WindowCreation struct {
	ExStyle   uint32
	ClassName string
	Title     string
	Style     uint32
	X, Y      int32
	Width     int32
	Height    int32
	Parent    Window
	ShowMode  uint32
}

// CreateWindowFunc is the abstract signature of the low-level
// window-creation entry point.
type CreateWindowFunc func(call *WindowCreation) Window

// WndProcFunc is the abstract signature of the default window message
// handler.
type WndProcFunc func(w Window, msg uint32, wparam, lparam uintptr) uintptr

// ThemeProbe reports whether the system prefers dark mode. Resolved
// dynamically; may be unavailable on a given OS build.
type ThemeProbe func() bool
