package app

import (
	"bytes"
	"context"
	"fmt"

	"github.com/vk/hepnos-wizard/internal/config"
	"github.com/vk/hepnos-wizard/internal/ctxlog"
	"github.com/vk/hepnos-wizard/internal/hepnos"
	"github.com/vk/hepnos-wizard/internal/output"
	"github.com/vk/hepnos-wizard/internal/render"
)

// Run generates the configuration and writes it out. Nothing is written, and
// an existing output file is left untouched, when generation fails.
func (a *App) Run(ctx context.Context) error {
	ctx = ctxlog.WithLogger(ctx, a.logger)
	a.logger.Debug("App.Run method started.")

	params, err := a.params(ctx)
	if err != nil {
		return err
	}

	doc, err := a.generator.Generate(ctx, params)
	if err != nil {
		return fmt.Errorf("failed to generate configuration: %w", err)
	}
	a.logger.Info("Configuration generated.", "pools", len(doc.Margo.Argobots.Pools), "xstreams", len(doc.Margo.Argobots.XStreams), "providers", len(doc.Providers))

	var buf bytes.Buffer
	if err := render.Render(&buf, a.config.Format, doc, params.PathPrefix); err != nil {
		return fmt.Errorf("failed to render configuration: %w", err)
	}

	w, err := output.Open(a.config.OutputPath, a.outW)
	if err != nil {
		return err
	}
	if _, err := w.Write(buf.Bytes()); err != nil {
		w.Close()
		return fmt.Errorf("failed to write configuration: %w", err)
	}
	if err := w.Close(); err != nil {
		return fmt.Errorf("failed to write configuration: %w", err)
	}

	a.logger.Debug("App.Run method finished.", "output", a.config.OutputPath, "format", a.config.Format)
	return nil
}

// params layers the profile, if any, and the overrides on top of the defaults.
func (a *App) params(ctx context.Context) (hepnos.Params, error) {
	var profile *config.Profile
	if a.config.ProfilePath != "" {
		if a.loader == nil {
			return hepnos.Params{}, fmt.Errorf("no profile loader configured for %s", a.config.ProfilePath)
		}
		var err error
		profile, err = a.loader.Load(ctx, a.config.ProfilePath)
		if err != nil {
			return hepnos.Params{}, fmt.Errorf("failed to load profile: %w", err)
		}
		a.logger.Debug("Profile loaded.", "path", a.config.ProfilePath)
	}
	return config.Params(profile, a.config.Overrides), nil
}
