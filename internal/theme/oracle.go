// Package theme determines the system's current light/dark preference.
package theme

import (
	"sync"

	"go.uber.org/zap"

	"github.com/eliteGoblin/darkbar/internal/domain"
)

const (
	// HKCU key holding the user's persisted theme preference.
	personalizeKey = `Software\Microsoft\Windows\CurrentVersion\Themes\Personalize`

	// AppsUseLightTheme: 0 = dark mode, anything else = light mode.
	appsUseLightTheme = "AppsUseLightTheme"

	// Ordinal 138 of uxtheme.dll is ShouldSystemUseDarkMode.
	// Undocumented; may move in a future OS build.
	probeModule  = "uxtheme.dll"
	probeOrdinal = 138
)

// Oracle reports whether the system theme is dark. The persisted
// preference is authoritative and the common path; an undocumented
// uxtheme export serves as the fallback when the preference cannot be
// read. The fallback is resolved once and memoized for the process
// lifetime, including the unavailable state.
type Oracle struct {
	prefs    domain.PreferenceReader
	resolver domain.CapabilityResolver
	logger   *zap.Logger

	probeOnce sync.Once
	probe     domain.ThemeProbe // nil when resolution failed
}

// NewOracle creates a theme oracle.
func NewOracle(prefs domain.PreferenceReader, resolver domain.CapabilityResolver, logger *zap.Logger) *Oracle {
	return &Oracle{prefs: prefs, resolver: resolver, logger: logger}
}

// IsSystemDarkMode returns true when the system theme is dark.
// No side effects; safe to call from any context, including inside a
// message hook.
func (o *Oracle) IsSystemDarkMode() bool {
	if v, err := o.prefs.ReadInteger(personalizeKey, appsUseLightTheme); err == nil {
		return v == 0
	}

	o.probeOnce.Do(func() {
		p, err := o.resolver.ResolveThemeProbe(probeModule, probeOrdinal)
		if err != nil {
			o.logger.Warn("theme probe unavailable",
				zap.String("module", probeModule),
				zap.Uint16("ordinal", probeOrdinal),
				zap.Error(err))
			return
		}
		o.probe = p
	})

	if o.probe != nil {
		return o.probe()
	}

	// Light is the safe default when nothing can be read.
	return false
}
