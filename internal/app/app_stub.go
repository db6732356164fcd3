//go:build !ebiten

package app

import (
	"errors"
	"log/slog"

	"bitlife/internal/config"
)

// ErrNoGUI is returned when the binary was built without the ebiten tag.
var ErrNoGUI = errors.New("app: window support requires building with the 'ebiten' tag")

// Run always fails in headless builds.
func Run(*config.Config, *slog.Logger) error { return ErrNoGUI }
