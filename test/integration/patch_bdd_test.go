//go:build integration

package integration

import (
	"errors"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"go.uber.org/zap"

	"github.com/eliteGoblin/darkbar/internal/domain"
	"github.com/eliteGoblin/darkbar/internal/exclusion"
	"github.com/eliteGoblin/darkbar/internal/hook"
	"github.com/eliteGoblin/darkbar/internal/theme"
	"github.com/eliteGoblin/darkbar/internal/usecase"
)

const captioned = 0x00C00000 // WS_CAPTION

// simWindow is one window in the simulated desktop.
type simWindow struct {
	style   uint32
	exStyle uint32
	dark    *int32 // nil until the attribute is first set
}

// simDesktop simulates the window system for a single process.
type simDesktop struct {
	windows map[domain.Window]*simWindow
	order   []domain.Window
	sets    int
}

func newSimDesktop() *simDesktop {
	return &simDesktop{windows: make(map[domain.Window]*simWindow)}
}

func (d *simDesktop) add(w domain.Window, style, exStyle uint32) {
	d.windows[w] = &simWindow{style: style, exStyle: exStyle}
	d.order = append(d.order, w)
}

func (d *simDesktop) IsWindow(w domain.Window) bool {
	_, ok := d.windows[w]
	return ok
}

func (d *simDesktop) QueryStyle(w domain.Window) domain.WindowStyle {
	if sw, ok := d.windows[w]; ok {
		return domain.WindowStyle{Style: sw.style, ExStyle: sw.exStyle}
	}
	return domain.WindowStyle{}
}

func (d *simDesktop) SetAttribute(w domain.Window, attr uint32, value int32) error {
	d.sets++
	v := value
	d.windows[w].dark = &v
	return nil
}

func (d *simDesktop) RequestRedraw(domain.Window) {}

func (d *simDesktop) TopLevelWindows() []domain.Window {
	out := make([]domain.Window, len(d.order))
	copy(out, d.order)
	return out
}

// simPrefs is the persisted theme preference.
type simPrefs struct {
	light uint64
	err   error
}

func (p *simPrefs) ReadInteger(path, name string) (uint64, error) {
	if p.err != nil {
		return 0, p.err
	}
	return p.light, nil
}

type noResolver struct{}

func (noResolver) ResolveThemeProbe(string, uint16) (domain.ThemeProbe, error) {
	return nil, errors.New("unavailable")
}

type simProcess struct{ name string }

func (p simProcess) ExecutableBaseName() (string, error) { return p.name, nil }

func (simProcess) PID() int { return 1234 }

// simLoader simulates the hosting framework's patching service.
type simLoader struct {
	desktop *simDesktop
	next    domain.Window

	createHook domain.CreateWindowFunc
	defHook    domain.WndProcFunc
}

func (l *simLoader) InstallCreateWindow(hook domain.CreateWindowFunc) (domain.CreateWindowFunc, error) {
	l.createHook = hook
	return func(call *domain.WindowCreation) domain.Window {
		w := l.next
		if w != 0 {
			l.desktop.add(w, call.Style, call.ExStyle)
		}
		return w
	}, nil
}

func (l *simLoader) InstallDefWindowProc(hook domain.WndProcFunc) (domain.WndProcFunc, error) {
	l.defHook = hook
	return func(domain.Window, uint32, uintptr, uintptr) uintptr { return 0 }, nil
}

// createWindow drives window creation the way the host would: through
// the installed hook when present, directly otherwise.
func (l *simLoader) createWindow(w domain.Window, style, exStyle uint32) domain.Window {
	l.next = w
	call := &domain.WindowCreation{Style: style, ExStyle: exStyle}
	if l.createHook != nil {
		return l.createHook(call)
	}
	l.desktop.add(w, style, exStyle)
	return w
}

// broadcast delivers a message to every window, as the OS does for
// setting-change notifications.
func (l *simLoader) broadcast(msg uint32) {
	for _, w := range l.desktop.TopLevelWindows() {
		l.defHook(w, msg, 0, 0)
	}
}

func darkOf(d *simDesktop, w domain.Window) *int32 {
	return d.windows[w].dark
}

var _ = Describe("Titlebar patch", func() {
	var (
		desktop *simDesktop
		prefs   *simPrefs
		loader  *simLoader
		ctrl    *hook.Controller
	)

	build := func(exe string) {
		logger := zap.NewNop()
		loader = &simLoader{desktop: desktop}
		ctrl = hook.NewController(
			loader,
			theme.NewOracle(prefs, noResolver{}, logger),
			usecase.NewApplicator(desktop, logger),
			simProcess{name: exe},
			exclusion.Default(),
			logger,
		)
	}

	BeforeEach(func() {
		desktop = newSimDesktop()
		prefs = &simPrefs{light: 0} // system starts dark
	})

	Describe("loading into a normal process", func() {
		BeforeEach(func() {
			desktop.add(1, captioned, 0)
			desktop.add(2, captioned, domain.WS_EX_TOOLWINDOW)
			build("notepad.exe")

			Expect(ctrl.OnLoad()).To(Succeed())
			ctrl.OnLoadComplete()
		})

		It("applies dark mode to pre-existing eligible windows", func() {
			Expect(darkOf(desktop, 1)).To(HaveValue(Equal(int32(1))))
		})

		It("leaves tool windows untouched", func() {
			Expect(darkOf(desktop, 2)).To(BeNil())
		})

		Context("when a window is created after startup", func() {
			It("receives the cached theme during the creation call", func() {
				w := loader.createWindow(10, captioned, 0)
				Expect(w).To(Equal(domain.Window(10)))
				Expect(darkOf(desktop, 10)).To(HaveValue(Equal(int32(1))))
			})
		})

		Context("when the system theme flips to light", func() {
			BeforeEach(func() {
				prefs.light = 1
				loader.broadcast(domain.WM_SETTINGCHANGE)
			})

			It("clears the attribute on every eligible window", func() {
				Expect(darkOf(desktop, 1)).To(HaveValue(Equal(int32(0))))
			})

			It("absorbs the per-window notification fan-out", func() {
				sets := desktop.sets
				loader.broadcast(domain.WM_SETTINGCHANGE)
				loader.broadcast(domain.WM_SETTINGCHANGE)
				Expect(desktop.sets).To(Equal(sets), "repeat notifications with an unchanged theme apply nothing")
			})
		})

		Context("when the patch is unloaded", func() {
			It("restores default titlebars", func() {
				ctrl.OnUnload()
				Expect(darkOf(desktop, 1)).To(HaveValue(Equal(int32(0))))
			})
		})
	})

	Describe("loading into an excluded process", func() {
		BeforeEach(func() {
			desktop.add(1, captioned, 0)
			build("SystemSettings.exe")

			Expect(ctrl.OnLoad()).To(Succeed())
			ctrl.OnLoadComplete()
		})

		It("installs no hooks", func() {
			Expect(loader.createHook).To(BeNil())
			Expect(loader.defHook).To(BeNil())
		})

		It("never sets a window attribute", func() {
			w := loader.createWindow(10, captioned, 0)
			Expect(w).To(Equal(domain.Window(10)))
			ctrl.OnUnload()
			Expect(desktop.sets).To(BeZero())
		})
	})
})
