package infra

import (
	"github.com/eliteGoblin/darkbar/internal/domain"
)

// FrameworkInterceptor adapts the hosting mod loader's function-patching
// service to domain.Interceptor. The loader shim registers the two
// install functions before OnLoad runs; they target
// win32u.dll!NtUserCreateWindowEx and user32.dll!DefWindowProcW
// respectively and hand back the original entry points.
//
// Without a host (plain CLI runs) both installs report
// domain.ErrInterceptorUnavailable and the patch degrades to doing
// nothing; the patching engine itself is the framework's concern, not
// the core's.
type FrameworkInterceptor struct {
	CreateWindowInstall  func(hook domain.CreateWindowFunc) (domain.CreateWindowFunc, error)
	DefWindowProcInstall func(hook domain.WndProcFunc) (domain.WndProcFunc, error)
}

// NewFrameworkInterceptor creates an interceptor with no registered
// install functions.
func NewFrameworkInterceptor() *FrameworkInterceptor {
	return &FrameworkInterceptor{}
}

// InstallCreateWindow intercepts the low-level window-creation entry
// point via the host-provided installer.
func (f *FrameworkInterceptor) InstallCreateWindow(hook domain.CreateWindowFunc) (domain.CreateWindowFunc, error) {
	if f.CreateWindowInstall == nil {
		return nil, domain.ErrInterceptorUnavailable
	}
	return f.CreateWindowInstall(hook)
}

// InstallDefWindowProc intercepts the default window message handler via
// the host-provided installer.
func (f *FrameworkInterceptor) InstallDefWindowProc(hook domain.WndProcFunc) (domain.WndProcFunc, error) {
	if f.DefWindowProcInstall == nil {
		return nil, domain.ErrInterceptorUnavailable
	}
	return f.DefWindowProcInstall(hook)
}

// Ensure FrameworkInterceptor implements domain.Interceptor.
var _ domain.Interceptor = (*FrameworkInterceptor)(nil)
