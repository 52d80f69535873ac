//go:build windows

package infra

import (
	"fmt"
	"unsafe"

	"golang.org/x/sys/windows"

	"github.com/eliteGoblin/darkbar/internal/domain"
)

var (
	user32 = windows.NewLazySystemDLL("user32.dll")
	dwmapi = windows.NewLazySystemDLL("dwmapi.dll")

	procIsWindow                 = user32.NewProc("IsWindow")
	procGetWindowLongW           = user32.NewProc("GetWindowLongW")
	procSetWindowPos             = user32.NewProc("SetWindowPos")
	procEnumWindows              = user32.NewProc("EnumWindows")
	procGetAncestor              = user32.NewProc("GetAncestor")
	procGetDesktopWindow         = user32.NewProc("GetDesktopWindow")
	procGetWindowThreadProcessId = user32.NewProc("GetWindowThreadProcessId")

	procDwmSetWindowAttribute = dwmapi.NewProc("DwmSetWindowAttribute")
)

const (
	gwlStyle   int32 = -16
	gwlExStyle int32 = -20

	gaParent uintptr = 1

	swpNoSize        uintptr = 0x0001
	swpNoMove        uintptr = 0x0002
	swpNoZOrder      uintptr = 0x0004
	swpFrameChanged  uintptr = 0x0020
	swpNoOwnerZOrder uintptr = 0x0200
)

// User32WindowSystem implements domain.WindowSystem against user32 and
// dwmapi.
type User32WindowSystem struct{}

// NewWindowSystem creates the Windows window system.
func NewWindowSystem() *User32WindowSystem {
	return &User32WindowSystem{}
}

// IsWindow re-validates that w still refers to a live window.
func (User32WindowSystem) IsWindow(w domain.Window) bool {
	r, _, _ := procIsWindow.Call(uintptr(w))
	return r != 0
}

// QueryStyle returns both style words of w.
func (User32WindowSystem) QueryStyle(w domain.Window) domain.WindowStyle {
	return domain.WindowStyle{
		Style:   getWindowLong(w, gwlStyle),
		ExStyle: getWindowLong(w, gwlExStyle),
	}
}

// SetAttribute sets a DWM window attribute on w.
func (User32WindowSystem) SetAttribute(w domain.Window, attr uint32, value int32) error {
	hr, _, _ := procDwmSetWindowAttribute.Call(
		uintptr(w),
		uintptr(attr),
		uintptr(unsafe.Pointer(&value)),
		unsafe.Sizeof(value),
	)
	if hr != 0 {
		return fmt.Errorf("DwmSetWindowAttribute(%#x): HRESULT %#08x", attr, uint32(hr))
	}
	return nil
}

// RequestRedraw forces a frame-change repaint. No move, no resize, no
// z-order or activation change.
func (User32WindowSystem) RequestRedraw(w domain.Window) {
	procSetWindowPos.Call(uintptr(w), 0, 0, 0, 0, 0,
		swpFrameChanged|swpNoMove|swpNoSize|swpNoZOrder|swpNoOwnerZOrder)
}

type enumState struct {
	desktop uintptr
	pid     uint32
	out     []domain.Window
}

// Callbacks are a limited resource; create this one once.
var enumWindowsCallback = windows.NewCallback(func(hwnd, lparam uintptr) uintptr {
	st := (*enumState)(unsafe.Pointer(lparam))

	// Top-level only: parent must be the desktop (or absent).
	parent, _, _ := procGetAncestor.Call(hwnd, gaParent)
	if parent != 0 && parent != st.desktop {
		return 1
	}

	// Windows owned by other processes must never be touched.
	var owner uint32
	procGetWindowThreadProcessId.Call(hwnd, uintptr(unsafe.Pointer(&owner)))
	if owner != st.pid {
		return 1
	}

	st.out = append(st.out, domain.Window(hwnd))
	return 1
})

// TopLevelWindows enumerates the top-level windows owned by the current
// process. The process filter is applied during enumeration.
func (User32WindowSystem) TopLevelWindows() []domain.Window {
	desktop, _, _ := procGetDesktopWindow.Call()
	st := enumState{
		desktop: desktop,
		pid:     windows.GetCurrentProcessId(),
	}
	procEnumWindows.Call(enumWindowsCallback, uintptr(unsafe.Pointer(&st)))
	return st.out
}

func getWindowLong(w domain.Window, index int32) uint32 {
	r, _, _ := procGetWindowLongW.Call(uintptr(w), uintptr(index))
	return uint32(r)
}

// Ensure User32WindowSystem implements domain.WindowSystem.
var _ domain.WindowSystem = (*User32WindowSystem)(nil)
