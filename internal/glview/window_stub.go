//go:build !gl

// Package glview runs the universe in an SDL2 window with an OpenGL 3.2
// core context. It needs the gl build tag.
package glview

import (
	"errors"
	"log/slog"

	"bitlife/internal/config"
)

// ErrNoGL is returned when the binary was built without the gl tag.
var ErrNoGL = errors.New("glview: OpenGL support requires building with the 'gl' tag")

// Run always fails in builds without OpenGL.
func Run(*config.Config, *slog.Logger) error { return ErrNoGL }
