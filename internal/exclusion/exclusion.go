// Package exclusion holds the compiled-in denylist of processes the
// patch must leave alone.
package exclusion

import (
	"sort"
	"strings"
)

// List is a fixed set of excluded executable base names.
// This is the in-memory rule set; it is not externally configurable.
type List struct {
	names map[string]struct{}
}

// Default returns the built-in denylist.
func Default() *List {
	return NewList(
		"systemsettings.exe",       // Settings manages its own theming
		"applicationframehost.exe", // UWP app host
	)
}

// NewList creates a denylist from the given base names (for testing).
func NewList(names ...string) *List {
	l := &List{names: make(map[string]struct{}, len(names))}
	for _, n := range names {
		l.names[strings.ToLower(n)] = struct{}{}
	}
	return l
}

// Match reports whether baseName is excluded. Comparison is a
// case-insensitive exact match; substrings do not match.
func (l *List) Match(baseName string) bool {
	_, ok := l.names[strings.ToLower(baseName)]
	return ok
}

// Names returns the excluded base names in sorted order.
func (l *List) Names() []string {
	out := make([]string, 0, len(l.names))
	for n := range l.names {
		out = append(out, n)
	}
	sort.Strings(out)
	return out
}
