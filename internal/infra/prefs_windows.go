//go:build windows

package infra

import (
	"golang.org/x/sys/windows/registry"

	"github.com/eliteGoblin/darkbar/internal/domain"
)

// RegistryPreferences reads persisted preferences from the current
// user's registry hive.
type RegistryPreferences struct{}

// NewRegistryPreferences creates a registry-backed preference reader.
func NewRegistryPreferences() *RegistryPreferences {
	return &RegistryPreferences{}
}

// ReadInteger reads the named integer value under path in HKCU.
// Older OS builds may lack the key or value entirely.
func (RegistryPreferences) ReadInteger(path, name string) (uint64, error) {
	k, err := registry.OpenKey(registry.CURRENT_USER, path, registry.QUERY_VALUE)
	if err != nil {
		return 0, err
	}
	defer k.Close()

	v, _, err := k.GetIntegerValue(name)
	if err != nil {
		return 0, err
	}
	return v, nil
}

// Ensure RegistryPreferences implements domain.PreferenceReader.
var _ domain.PreferenceReader = (*RegistryPreferences)(nil)
