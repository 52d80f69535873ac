//go:build windows

package infra

import (
	"syscall"

	"golang.org/x/sys/windows"

	"github.com/eliteGoblin/darkbar/internal/domain"
)

// UxthemeResolver resolves undocumented theme exports by ordinal.
type UxthemeResolver struct{}

// NewUxthemeResolver creates the ordinal capability resolver.
func NewUxthemeResolver() *UxthemeResolver {
	return &UxthemeResolver{}
}

// ResolveThemeProbe locates the ordinal export of module and wraps it
// as a probe. The export takes no arguments and returns nonzero when
// the system prefers dark mode.
func (UxthemeResolver) ResolveThemeProbe(module string, ordinal uint16) (domain.ThemeProbe, error) {
	mod, err := windows.LoadLibraryEx(module, 0, windows.LOAD_LIBRARY_SEARCH_SYSTEM32)
	if err != nil {
		return nil, err
	}

	addr, err := windows.GetProcAddressByOrdinal(mod, uintptr(ordinal))
	if err != nil {
		return nil, err
	}

	return func() bool {
		r, _, _ := syscall.SyscallN(addr)
		return r != 0
	}, nil
}

// Ensure UxthemeResolver implements domain.CapabilityResolver.
var _ domain.CapabilityResolver = (*UxthemeResolver)(nil)
