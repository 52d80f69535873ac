//go:build !windows

package infra

import (
	"errors"

	"github.com/eliteGoblin/darkbar/internal/domain"
)

// errUnsupported is returned by the inert non-Windows implementations.
var errUnsupported = errors.New("titlebar styling requires Windows")

// NewPlatform returns inert implementations on non-Windows so the CLI
// harness builds and the patch degrades to doing nothing.
func NewPlatform() (domain.WindowSystem, domain.PreferenceReader, domain.CapabilityResolver) {
	return inertWindowSystem{}, inertPreferences{}, inertResolver{}
}

type inertWindowSystem struct{}

func (inertWindowSystem) IsWindow(domain.Window) bool { return false }

func (inertWindowSystem) QueryStyle(domain.Window) domain.WindowStyle {
	return domain.WindowStyle{}
}

func (inertWindowSystem) SetAttribute(domain.Window, uint32, int32) error {
	return errUnsupported
}

func (inertWindowSystem) RequestRedraw(domain.Window) {}

func (inertWindowSystem) TopLevelWindows() []domain.Window { return nil }

type inertPreferences struct{}

func (inertPreferences) ReadInteger(path, name string) (uint64, error) {
	return 0, errUnsupported
}

type inertResolver struct{}

func (inertResolver) ResolveThemeProbe(module string, ordinal uint16) (domain.ThemeProbe, error) {
	return nil, errUnsupported
}
