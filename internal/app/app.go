package app

import (
	"io"
	"log/slog"

	"github.com/vk/hepnos-wizard/internal/backend"
	"github.com/vk/hepnos-wizard/internal/config"
	"github.com/vk/hepnos-wizard/internal/hepnos"
)

// App encapsulates the application's dependencies and configuration.
type App struct {
	outW      io.Writer
	logger    *slog.Logger
	config    *Config
	loader    config.Loader
	generator *hepnos.Generator
}

// NewApp is the constructor for the main application. The generated document
// goes to outW unless the config names an output file; logs go to logW.
func NewApp(outW, logW io.Writer, appConfig *Config, loader config.Loader) *App {
	logger := newLogger(appConfig.LogLevel, appConfig.LogFormat, logW)
	logger.Debug("Logger configured successfully.")

	return &App{
		outW:      outW,
		logger:    logger,
		config:    appConfig,
		loader:    loader,
		generator: hepnos.New(backend.Default()),
	}
}
