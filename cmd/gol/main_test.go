package main

import (
	"bytes"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"bitlife/internal/config"
	"bitlife/internal/render"
)

func smallConfig(renderer string) *config.Config {
	cfg := config.DefaultConfig()
	cfg.Width, cfg.Height, cfg.CellSize = 10, 8, 3
	cfg.SeedPolicy = config.SeedDead
	cfg.Renderer = renderer
	cfg.Stamps = []string{"glider@0,0"}
	return cfg
}

func TestSnapshotRenderers(t *testing.T) {
	for _, renderer := range []string{config.RendererImmediate, config.RendererInstanced} {
		t.Run(renderer, func(t *testing.T) {
			cfg := smallConfig(renderer)
			var buf bytes.Buffer
			st, err := writeSnapshot(cfg, 4, &buf)
			if err != nil {
				t.Fatalf("writeSnapshot: %v", err)
			}
			if st.Generation != 4 || st.Population != 5 {
				t.Fatalf("unexpected stats %+v", st)
			}
			img, err := png.Decode(&buf)
			if err != nil {
				t.Fatalf("decode: %v", err)
			}
			w, h := render.CanvasSize(cfg.Size(), cfg.CellSize)
			if b := img.Bounds(); b.Dx() != w || b.Dy() != h {
				t.Fatalf("image %v want %dx%d", b, w, h)
			}
		})
	}
}

func TestInspectPrintsLayout(t *testing.T) {
	var buf bytes.Buffer
	if err := inspect(smallConfig(config.RendererImmediate), &buf); err != nil {
		t.Fatal(err)
	}
	out := buf.String()
	for _, want := range []string{"10x8", "bytes:       10", "population:  5"} {
		if !strings.Contains(out, want) {
			t.Fatalf("output missing %q:\n%s", want, out)
		}
	}
}

func TestDumpGraphWritesDot(t *testing.T) {
	var buf bytes.Buffer
	if err := dumpGraph(smallConfig(config.RendererImmediate), &buf); err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(buf.String(), "digraph") {
		t.Fatal("expected graphviz output")
	}
}

func TestRootCommandSnapshot(t *testing.T) {
	dir := t.TempDir()
	cfgPath := filepath.Join(dir, "gol.yaml")
	if err := os.WriteFile(cfgPath, []byte("width: 12\nheight: 12\nseed_policy: dead\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	out := filepath.Join(dir, "out.png")

	cmd := newRootCmd()
	cmd.SetArgs([]string{"snapshot", "--config", cfgPath, "--cell-size", "2", "-o", out, "-n", "2"})
	var stderr bytes.Buffer
	cmd.SetErr(&stderr)
	if err := cmd.Execute(); err != nil {
		t.Fatalf("execute: %v", err)
	}
	f, err := os.Open(out)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()
	img, err := png.Decode(f)
	if err != nil {
		t.Fatal(err)
	}
	if img.Bounds().Dx() != 3*12+1 {
		t.Fatalf("width %d want %d", img.Bounds().Dx(), 3*12+1)
	}
}

func TestRootCommandRejectsInvalidConfig(t *testing.T) {
	cmd := newRootCmd()
	cmd.SetArgs([]string{"inspect", "--renderer", "vulkan"})
	cmd.SetOut(&bytes.Buffer{})
	if err := cmd.Execute(); err == nil || !strings.Contains(err.Error(), "renderer") {
		t.Fatalf("expected renderer validation error, got %v", err)
	}
}
