//go:build gl

// Package glview runs the universe in an SDL2 window with an OpenGL 3.2
// core context, drawing through the instanced adapter.
package glview

import (
	"fmt"
	"log/slog"
	"runtime"

	"github.com/go-gl/gl/v3.2-core/gl"
	"github.com/veandco/go-sdl2/sdl"

	"bitlife/internal/config"
	"bitlife/internal/frame"
	"bitlife/internal/render"
)

type window struct {
	win        *sdl.Window
	ctx        sdl.GLContext
	shouldStop bool
}

func newWindow(title string, w, h int) (*window, error) {
	runtime.LockOSThread()

	if err := sdl.Init(sdl.INIT_VIDEO); err != nil {
		return nil, fmt.Errorf("glview: failed to initialize SDL2: %w", err)
	}

	_ = sdl.GLSetAttribute(sdl.GL_CONTEXT_MAJOR_VERSION, 3)
	_ = sdl.GLSetAttribute(sdl.GL_CONTEXT_MINOR_VERSION, 2)
	_ = sdl.GLSetAttribute(sdl.GL_CONTEXT_FLAGS, sdl.GL_CONTEXT_FORWARD_COMPATIBLE_FLAG)
	_ = sdl.GLSetAttribute(sdl.GL_CONTEXT_PROFILE_MASK, sdl.GL_CONTEXT_PROFILE_CORE)
	_ = sdl.GLSetAttribute(sdl.GL_DOUBLEBUFFER, 1)

	win, err := sdl.CreateWindow(title, sdl.WINDOWPOS_CENTERED, sdl.WINDOWPOS_CENTERED, int32(w), int32(h), sdl.WINDOW_OPENGL)
	if err != nil {
		sdl.Quit()
		return nil, fmt.Errorf("glview: failed to create window: %w", err)
	}
	wnd := &window{win: win}

	wnd.ctx, err = win.GLCreateContext()
	if err != nil {
		wnd.destroy()
		return nil, fmt.Errorf("glview: failed to create OpenGL context: %w", err)
	}
	if err := win.GLMakeCurrent(wnd.ctx); err != nil {
		wnd.destroy()
		return nil, fmt.Errorf("glview: failed to set current OpenGL context: %w", err)
	}
	if err := gl.Init(); err != nil {
		wnd.destroy()
		return nil, fmt.Errorf("glview: failed to load OpenGL: %w", err)
	}
	_ = sdl.GLSetSwapInterval(1)
	return wnd, nil
}

func (w *window) destroy() {
	if w.ctx != nil {
		sdl.GLDeleteContext(w.ctx)
		w.ctx = nil
	}
	if w.win != nil {
		_ = w.win.Destroy()
		w.win = nil
	}
	sdl.Quit()
}

// processEvents drains the SDL queue into controller calls.
func (w *window) processEvents(ctrl *frame.Controller, cellSize int) {
	for event := sdl.PollEvent(); event != nil; event = sdl.PollEvent() {
		switch ev := event.(type) {
		case *sdl.QuitEvent:
			w.shouldStop = true
		case *sdl.TextInputEvent:
			for _, r := range ev.GetText() {
				a := frame.ActionForRune(r)
				if a == frame.ActionQuit {
					w.shouldStop = true
					continue
				}
				ctrl.Apply(a)
			}
		case *sdl.KeyboardEvent:
			if ev.Type == sdl.KEYDOWN && ev.Keysym.Sym == sdl.K_ESCAPE {
				w.shouldStop = true
			}
		case *sdl.MouseButtonEvent:
			if ev.Type == sdl.MOUSEBUTTONDOWN && ev.Button == sdl.BUTTON_LEFT {
				ctrl.ClickPixel(int(ev.X), int(ev.Y), cellSize, modifier())
			}
		}
	}
}

func modifier() frame.Modifier {
	mod := sdl.GetModState()
	switch {
	case mod&sdl.KMOD_CTRL != 0:
		return frame.ModCtrl
	case mod&sdl.KMOD_SHIFT != 0:
		return frame.ModShift
	}
	return frame.ModNone
}

// Run opens the window and runs the frame loop until it is closed. The
// window is sized like the immediate canvas so clicks map with CellAt.
func Run(cfg *config.Config, log *slog.Logger) error {
	if log == nil {
		log = slog.New(slog.DiscardHandler)
	}
	engine, err := cfg.NewEngine()
	if err != nil {
		return err
	}
	pal, err := cfg.Palette()
	if err != nil {
		return err
	}
	size := cfg.Size()
	w, h := render.CanvasSize(size, cfg.CellSize)

	wnd, err := newWindow(fmt.Sprintf("bitlife %dx%d (gl)", size.W, size.H), w, h)
	if err != nil {
		return err
	}
	defer wnd.destroy()

	dev, err := newDevice()
	if err != nil {
		return err
	}
	defer dev.destroy()

	adapter := render.NewInstanced(pal)
	res, err := adapter.InitGrid(dev, size)
	if err != nil {
		return err
	}
	defer adapter.Release(dev, res)

	opts := []frame.Option{frame.WithLogger(log)}
	if cfg.GPS > 0 {
		opts = append(opts, frame.WithPacing(cfg.GPS))
	}
	ctrl := frame.New(engine, render.BindInstanced(adapter, dev, res), opts...)
	log.Info("gl renderer started", "gl", gl.GoStr(gl.GetString(gl.VERSION)), "width", size.W, "height", size.H)

	for !wnd.shouldStop {
		wnd.processEvents(ctrl, cfg.CellSize)
		dw, dh := wnd.win.GLGetDrawableSize()
		gl.Viewport(0, 0, dw, dh)
		gl.ClearColor(float32(pal.Dead.R)/255, float32(pal.Dead.G)/255, float32(pal.Dead.B)/255, 1)
		gl.Clear(gl.COLOR_BUFFER_BIT)
		ctrl.Frame()
		wnd.win.GLSwap()
	}
	st := ctrl.Stats()
	log.Info("gl renderer stopped", "frames", st.Frames, "generation", st.Generation, "population", st.Population)
	return nil
}
