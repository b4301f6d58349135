package arbor

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
)

// RunConfig configures the window and loop started by Run.
type RunConfig struct {
	Title  string
	Width  int
	Height int
	// ClearColor fills the window before each frame is painted.
	ClearColor Color
	// ShowFPS draws an FPS/TPS counter over the UI.
	ShowFPS bool
	// ScreenshotDir is where Screenshot writes PNG files. Defaults to
	// "screenshots".
	ScreenshotDir string
	// Script, when set, is stepped once per frame and the window closes
	// once it is done.
	Script *TestRunner
}

// Run opens a window and drives u until the window is closed: each tick
// polls input and processes one injected event, each frame lays the root
// out to the window size and paints it.
func Run(u *UI, cfg RunConfig) error {
	if cfg.Width <= 0 || cfg.Height <= 0 {
		return fmt.Errorf("arbor: invalid window size %dx%d", cfg.Width, cfg.Height)
	}
	if cfg.ScreenshotDir == "" {
		cfg.ScreenshotDir = "screenshots"
	}
	ebiten.SetWindowSize(cfg.Width, cfg.Height)
	ebiten.SetWindowTitle(cfg.Title)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

	h := newHost(u, cfg)
	if err := ebiten.RunGame(h); err != nil && err != ebiten.Termination {
		return err
	}
	return nil
}

// host adapts a UI to ebiten.Game.
type host struct {
	ui    *UI
	cfg   RunConfig
	input inputPoller
	buf   *CommandBuffer
	fps   *fpsOverlay

	screenshotQueue []string
	// drawn is set after the first Draw; scripts wait for it so their
	// pointer events hit a laid-out tree.
	drawn           bool
}

func newHost(u *UI, cfg RunConfig) *host {
	h := &host{
		ui:  u,
		cfg: cfg,
		buf: NewCommandBuffer(Size{Coord(cfg.Width), Coord(cfg.Height)}),
	}
	h.buf.ClearColor = cfg.ClearColor
	if cfg.ShowFPS {
		h.fps = &fpsOverlay{}
	}
	if cfg.Script != nil && cfg.Script.Screenshot == nil {
		cfg.Script.Screenshot = h.Screenshot
	}
	return h
}

// Screenshot queues a labeled screenshot captured at the end of the next
// Draw.
func (h *host) Screenshot(label string) {
	h.screenshotQueue = append(h.screenshotQueue, label)
}

func (h *host) Update() error {
	if s := h.cfg.Script; s != nil && h.drawn {
		if s.Done() && h.ui.PendingInjected() == 0 && len(h.screenshotQueue) == 0 {
			return ebiten.Termination
		}
		s.Step(h.ui)
	}
	if !h.ui.ProcessInjected() {
		h.input.poll(h.ui)
	}
	if h.fps != nil {
		h.fps.update()
	}
	return nil
}

func (h *host) Draw(screen *ebiten.Image) {
	b := screen.Bounds()
	h.buf.Resize(Size{Coord(b.Dx()), Coord(b.Dy())})
	h.ui.Frame(h.buf)
	h.buf.Submit(screen)
	h.drawn = true
	if h.fps != nil {
		h.fps.draw(screen)
	}

	if len(h.screenshotQueue) > 0 {
		if err := writeScreenshots(screen, h.cfg.ScreenshotDir, h.screenshotQueue); err != nil {
			h.ui.logger.Error("screenshot failed", "err", err)
		}
		h.screenshotQueue = h.screenshotQueue[:0]
	}
}

func (h *host) Layout(outsideWidth, outsideHeight int) (int, int) {
	return outsideWidth, outsideHeight
}
