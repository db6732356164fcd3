//go:build ebiten

// Package app runs the universe in an ebiten window with both renderers.
package app

import (
	"errors"
	"fmt"
	"log/slog"

	"bitlife/internal/config"
	"bitlife/internal/core"
	"bitlife/internal/frame"
	"bitlife/internal/render"
	"bitlife/internal/ui"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

const hudWidth = 220

// Game adapts a frame controller to the ebiten.Game interface. Update
// handles input and advances the engine; Draw renders.
type Game struct {
	ctrl     *frame.Controller
	log      *slog.Logger
	size     core.Size
	cellSize int
	pal      render.Palette

	gridW, gridH int

	canvas    *screenCanvas
	immediate render.Target

	device    *ebitenDevice
	instanced *render.Instanced
	res       *render.Resources

	renderer string
	hud      *ui.HUD
	overlay  *ui.Overlay
	chars    []rune
	quit     bool
}

// New builds the engine described by cfg and wraps it in a Game.
func New(cfg *config.Config, log *slog.Logger) (*Game, error) {
	if log == nil {
		log = slog.New(slog.DiscardHandler)
	}
	engine, err := cfg.NewEngine()
	if err != nil {
		return nil, err
	}
	pal, err := cfg.Palette()
	if err != nil {
		return nil, err
	}
	opts := []frame.Option{frame.WithLogger(log)}
	if cfg.GPS > 0 {
		opts = append(opts, frame.WithPacing(cfg.GPS))
	}
	g := &Game{
		ctrl:      frame.New(engine, nil, opts...),
		log:       log,
		size:      cfg.Size(),
		cellSize:  cfg.CellSize,
		pal:       pal,
		canvas:    &screenCanvas{},
		device:    newEbitenDevice(),
		instanced: render.NewInstanced(pal),
	}
	g.gridW, g.gridH = render.CanvasSize(g.size, g.cellSize)
	g.immediate = render.BindImmediate(render.NewImmediate(g.canvas, g.cellSize, pal), g.size)
	g.hud = ui.NewHUD(g.ctrl, hudWidth)
	g.overlay = ui.NewOverlay(g.size, g.cellSize)
	if err := g.setRenderer(cfg.Renderer); err != nil {
		return nil, err
	}
	return g, nil
}

// Controller exposes the frame controller, mainly for tooling.
func (g *Game) Controller() *frame.Controller { return g.ctrl }

func (g *Game) setRenderer(name string) error {
	switch name {
	case config.RendererImmediate:
		g.ctrl.SetTarget(g.immediate)
	case config.RendererInstanced:
		if g.res == nil {
			res, err := g.instanced.InitGrid(g.device, g.size)
			if err != nil {
				return fmt.Errorf("app: init instanced grid: %w", err)
			}
			g.res = res
		}
		g.ctrl.SetTarget(render.BindInstanced(g.instanced, g.device, g.res))
	default:
		return fmt.Errorf("app: unknown renderer %q", name)
	}
	g.renderer = name
	g.hud.SetRenderer(name)
	g.log.Info("renderer selected", "renderer", name)
	return nil
}

func (g *Game) switchRenderer() {
	next := config.RendererInstanced
	if g.renderer == config.RendererInstanced {
		next = config.RendererImmediate
	}
	if err := g.setRenderer(next); err != nil {
		g.log.Error("renderer switch failed", "err", err)
	}
}

// Update handles per-frame input and advances the simulation.
func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyTab) {
		g.switchRenderer()
	}
	g.chars = ebiten.AppendInputChars(g.chars[:0])
	for _, r := range g.chars {
		a := frame.ActionForRune(r)
		if a == frame.ActionQuit {
			g.quit = true
			continue
		}
		g.ctrl.Apply(a)
	}
	if g.quit {
		return ebiten.Termination
	}

	mx, my := ebiten.CursorPosition()
	mod := modifier()
	g.overlay.Update(mx, my, mod)
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) && mx >= 0 && my >= 0 && mx < g.gridW && my < g.gridH {
		g.ctrl.ClickPixel(mx, my, g.cellSize, mod)
	}
	g.hud.Update(g.gridW)

	g.ctrl.Advance()
	return nil
}

func modifier() frame.Modifier {
	switch {
	case ebiten.IsKeyPressed(ebiten.KeyControl):
		return frame.ModCtrl
	case ebiten.IsKeyPressed(ebiten.KeyShift):
		return frame.ModShift
	}
	return frame.ModNone
}

// Draw renders the grid with the active renderer, then the overlay and HUD.
func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(g.pal.Dead)
	g.canvas.dst = screen
	g.device.begin(screen, g.gridW, g.gridH)
	g.ctrl.Render()
	g.overlay.Draw(screen)
	g.hud.Draw(screen, g.gridW, g.gridH, ebiten.ActualFPS())
}

// Layout returns the logical screen size: the grid plus the HUD panel.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.gridW + hudWidth, g.gridH
}

// Close releases renderer resources.
func (g *Game) Close() {
	g.instanced.Release(g.device, g.res)
	g.res = nil
}

// Run opens the window and blocks until it is closed.
func Run(cfg *config.Config, log *slog.Logger) error {
	g, err := New(cfg, log)
	if err != nil {
		return err
	}
	defer g.Close()
	w, h := g.Layout(0, 0)
	ebiten.SetWindowTitle(fmt.Sprintf("bitlife %dx%d", cfg.Width, cfg.Height))
	ebiten.SetTPS(ebiten.SyncWithFPS)
	ebiten.SetWindowSize(w, h)
	if err := ebiten.RunGame(g); err != nil && !errors.Is(err, ebiten.Termination) {
		return err
	}
	return nil
}
