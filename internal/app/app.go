package app

import (
	"io"
	"log/slog"
	"os"
	"runtime"

	"github.com/StarCheater/SpargeAttn/internal/config"
	"github.com/StarCheater/SpargeAttn/internal/driver"
)

// App encapsulates the application's dependencies, configuration, and lifecycle.
type App struct {
	outW   io.Writer
	logger *slog.Logger
	config *Config
	loader config.Loader

	// Process-boundary seams. Production values are set by NewApp; tests
	// substitute them to run the pipeline hermetically.
	goos   string
	getenv func(string) string
	setenv func(string, string) error
	driver driver.Driver
}

// NewApp is the constructor for the main application. It returns a fully
// initialized App instance with its own isolated logger. The driver is
// chosen lazily in Run, once the plan destination and the validated nvcc
// path are known.
func NewApp(outW io.Writer, cfg *Config, loader config.Loader) *App {
	logger := newLogger(cfg.LogLevel, cfg.LogFormat, outW)
	logger.Debug("Logger configured successfully.")

	return &App{
		outW:   outW,
		logger: logger,
		config: cfg,
		loader: loader,
		goos:   runtime.GOOS,
		getenv: os.Getenv,
		setenv: os.Setenv,
	}
}
