// Package infra implements infrastructure concerns (process identity,
// window system, preferences, interception).
package infra

import (
	"os"
	"path/filepath"

	"github.com/shirou/gopsutil/v3/process"

	"github.com/eliteGoblin/darkbar/internal/domain"
)

// Process implements domain.ProcessInfo using gopsutil.
type Process struct{}

// NewProcess creates a process identity provider.
func NewProcess() *Process {
	return &Process{}
}

// ExecutableBaseName returns the base file name of the current
// executable (e.g. "notepad.exe").
func (Process) ExecutableBaseName() (string, error) {
	p, err := process.NewProcess(int32(os.Getpid()))
	if err == nil {
		if name, err := p.Name(); err == nil && name != "" {
			return name, nil
		}
	}

	// gopsutil can fail in stripped-down hosts; fall back to the
	// executable path.
	exe, err := os.Executable()
	if err != nil {
		return "", err
	}
	return filepath.Base(exe), nil
}

// PID returns the current process ID.
func (Process) PID() int {
	return os.Getpid()
}

// Ensure Process implements domain.ProcessInfo.
var _ domain.ProcessInfo = (*Process)(nil)
