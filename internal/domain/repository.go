package domain

import "errors"

// ErrInterceptorUnavailable is returned by Interceptor implementations
// when the hosting framework has not provided a patching service.
var ErrInterceptorUnavailable = errors.New("interception service not registered by host")

// WindowSystem handles window queries and mutation.
// Implementation: user32/dwmapi on Windows.
type WindowSystem interface {
	// IsWindow re-validates that w still refers to a live window.
	IsWindow(w Window) bool

	// QueryStyle returns both style words of w.
	QueryStyle(w Window) WindowStyle

	// SetAttribute sets a window attribute value on w.
	SetAttribute(w Window, attr uint32, value int32) error

	// RequestRedraw forces a frame-change repaint with no move, resize,
	// z-order, or activation side effects.
	RequestRedraw(w Window)

	// TopLevelWindows returns the top-level windows owned by the
	// current process. Windows of other processes are never returned.
	TopLevelWindows() []Window
}

// PreferenceReader reads persisted integer preferences from the user's
// system settings store.
type PreferenceReader interface {
	// ReadInteger reads the named integer value under path.
	ReadInteger(path, name string) (uint64, error)
}

// CapabilityResolver locates dynamically-exported OS capabilities.
// Known-fragile boundary: ordinal exports are undocumented and can move
// between OS builds.
type CapabilityResolver interface {
	// ResolveThemeProbe locates the ordinal export of module that
	// reports the system dark-mode preference.
	ResolveThemeProbe(module string, ordinal uint16) (ThemeProbe, error)
}

// ProcessInfo identifies the current process.
type ProcessInfo interface {
	// ExecutableBaseName returns the base file name of the current
	// executable (e.g. "notepad.exe").
	ExecutableBaseName() (string, error)

	// PID returns the current process ID.
	PID() int
}

// Interceptor is the function-patching service exposed by the hosting
// framework. Install returns the original entry point so the hook can
// delegate; hooks must always delegate.
type Interceptor interface {
	// InstallCreateWindow intercepts the low-level window-creation
	// entry point.
	InstallCreateWindow(hook CreateWindowFunc) (CreateWindowFunc, error)

	// InstallDefWindowProc intercepts the default window message
	// handler.
	InstallDefWindowProc(hook WndProcFunc) (WndProcFunc, error)
}
