package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"bitlife/internal/config"
	"bitlife/internal/frame"
	"bitlife/internal/render"
)

func newSnapshotCmd(opts *options) *cobra.Command {
	var (
		out         string
		generations int
	)
	cmd := &cobra.Command{
		Use:   "snapshot",
		Short: "advance headless and write the rendered grid as PNG",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if generations < 0 {
				return fmt.Errorf("--updates must not be negative, got %d", generations)
			}
			f, err := os.Create(out)
			if err != nil {
				return fmt.Errorf("create %s: %w", out, err)
			}
			st, err := writeSnapshot(opts.cfg, generations, f)
			if cerr := f.Close(); err == nil && cerr != nil {
				err = fmt.Errorf("close %s: %w", out, cerr)
			}
			if err != nil {
				return err
			}
			opts.log.Info("snapshot written",
				"path", out,
				"renderer", opts.cfg.Renderer,
				"generation", st.Generation,
				"population", st.Population)
			return nil
		},
	}
	cmd.Flags().StringVarP(&out, "out", "o", "life.png", "output PNG path")
	cmd.Flags().IntVarP(&generations, "updates", "n", 0, "updates to run before rendering")
	return cmd
}

// writeSnapshot runs updates on a fresh engine, renders one frame with the
// configured renderer and encodes it as PNG.
func writeSnapshot(cfg *config.Config, updates int, w io.Writer) (frame.Stats, error) {
	engine, err := cfg.NewEngine()
	if err != nil {
		return frame.Stats{}, err
	}
	pal, err := cfg.Palette()
	if err != nil {
		return frame.Stats{}, err
	}
	size := cfg.Size()
	cw, ch := render.CanvasSize(size, cfg.CellSize)
	ctrl := frame.New(engine, nil)
	for i := 0; i < updates; i++ {
		ctrl.Advance()
	}

	switch cfg.Renderer {
	case config.RendererInstanced:
		dev := render.NewRasterDevice(cw, ch)
		defer dev.Close()
		dev.Canvas().Clear(pal.Dead)
		adapter := render.NewInstanced(pal)
		res, err := adapter.InitGrid(dev, size)
		if err != nil {
			return frame.Stats{}, err
		}
		defer adapter.Release(dev, res)
		ctrl.SetTarget(render.BindInstanced(adapter, dev, res))
		ctrl.Render()
		if err := dev.Canvas().EncodePNG(w); err != nil {
			return frame.Stats{}, fmt.Errorf("encode png: %w", err)
		}
	default:
		canvas := render.NewGGCanvas(cw, ch)
		defer canvas.Close()
		canvas.Clear(pal.Dead)
		ctrl.SetTarget(render.BindImmediate(render.NewImmediate(canvas, cfg.CellSize, pal), size))
		ctrl.Render()
		if err := canvas.EncodePNG(w); err != nil {
			return frame.Stats{}, fmt.Errorf("encode png: %w", err)
		}
	}
	return ctrl.Stats(), nil
}
