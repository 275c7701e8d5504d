// Package app implements the application layer for stage.
package app

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/muesli/termenv"
	"go.trai.ch/stage/internal/adapters/detector"
	"go.trai.ch/stage/internal/adapters/linear"
	"go.trai.ch/stage/internal/adapters/presentation"
	"go.trai.ch/stage/internal/adapters/telemetry"
	"go.trai.ch/stage/internal/adapters/watcher"
	"go.trai.ch/stage/internal/core/domain"
	"go.trai.ch/stage/internal/core/ports"
	"go.trai.ch/stage/internal/engine/scene"
	"go.trai.ch/zerr"
)

// App drives the scene manager from scripted scenarios.
type App struct {
	manager *scene.Manager
	tracer  *telemetry.Tracer
	log     ports.Logger

	out io.Writer
}

// New creates a new App instance.
func New(manager *scene.Manager, tracer *telemetry.Tracer, log ports.Logger) *App {
	return &App{
		manager: manager,
		tracer:  tracer,
		log:     log,
		out:     os.Stdout,
	}
}

// WithOutput redirects scenario output. This is primarily used by tests.
func (a *App) WithOutput(w io.Writer) *App {
	if w != nil {
		a.out = w
	}
	return a
}

// RunOptions configures a scenario run.
type RunOptions struct {
	// OutputMode is "auto", "color", "plain", or "ci".
	OutputMode string
	// Watch invalidates preloaded scenes when their files change.
	Watch bool
}

// Run executes the scenario at scenarioPath against the scene manager.
func (a *App) Run(ctx context.Context, scenarioPath string, opts RunOptions) error {
	sc, err := LoadScenario(scenarioPath)
	if err != nil {
		return err
	}

	if sc.Async {
		a.manager.WithAsyncLoad()
	}
	if sc.InstanceCache > 0 {
		if err := a.manager.SetInstanceCacheSize(sc.InstanceCache); err != nil {
			return err
		}
	}
	if sc.PreloadCache > 0 {
		if err := a.manager.SetPreloadCacheSize(sc.PreloadCache); err != nil {
			return err
		}
	}

	renderer := linear.NewRenderer(a.out)
	if mode := detector.ResolveMode(detector.DetectEnvironment(), opts.OutputMode); mode == detector.ModePlain {
		renderer = renderer.WithProfile(termenv.Ascii)
	}
	a.manager.Subscribe(renderer)
	a.manager.Subscribe(a.tracer)

	if opts.Watch {
		w, err := watcher.New(a.manager, a.log)
		if err != nil {
			return err
		}
		cwd, err := os.Getwd()
		if err != nil {
			return err
		}
		if err := w.Start(ctx, cwd); err != nil {
			return err
		}
		defer func() { _ = w.Stop() }()
	}

	for i, step := range sc.Steps {
		if err := a.runStep(ctx, step); err != nil {
			return zerr.With(zerr.With(
				zerr.Wrap(err, domain.ErrScenarioFailed.Error()),
				"step", i), "op", step.Op)
		}
	}
	return nil
}

func (a *App) runStep(ctx context.Context, step Step) error {
	switch step.Op {
	case "switch":
		opts := scene.SwitchOptions{UseCache: step.Cache}
		if step.Fade > 0 {
			opts.Presentation = presentation.Timed{Duration: time.Duration(step.Fade)}
		}
		return a.manager.Switch(ctx, step.Path, opts)
	case "preload":
		return a.manager.Preload(ctx, step.Path)
	case "clear":
		a.manager.ClearCache()
		return nil
	case "info":
		a.printInfo()
		return nil
	default:
		return zerr.With(zerr.Wrap(domain.ErrUnknownScenarioStep, "running step"), "op", step.Op)
	}
}

func (a *App) printInfo() {
	info := a.manager.CacheInfo()
	fmt.Fprintf(a.out, "instances [%s] max=%d\n",
		strings.Join(entryPaths(info.InstanceEntries), " "), info.InstanceMax)
	fmt.Fprintf(a.out, "preloaded [%s] max=%d\n",
		strings.Join(entryPaths(info.PreloadEntries), " "), info.PreloadMax)
}

func entryPaths(entries []domain.CacheEntryInfo) []string {
	paths := make([]string, len(entries))
	for i, e := range entries {
		paths[i] = e.Path
	}
	return paths
}
