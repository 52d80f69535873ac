//go:build windows

package infra

import (
	"github.com/eliteGoblin/darkbar/internal/domain"
)

// NewPlatform returns the real Windows implementations of the OS-facing
// boundary interfaces.
func NewPlatform() (domain.WindowSystem, domain.PreferenceReader, domain.CapabilityResolver) {
	return NewWindowSystem(), NewRegistryPreferences(), NewUxthemeResolver()
}
