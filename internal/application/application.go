package application

import (
	"context"
	"fmt"
	"io"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/eugenenazirov/moving-manager/internal/config"
	"github.com/eugenenazirov/moving-manager/internal/manifest"
	"github.com/eugenenazirov/moving-manager/internal/storage"
)

// App encapsulates the loaded manifest and the objects built from it.
type App struct {
	cfg       config.Config
	manifest  *manifest.Manifest
	inventory *manifest.Inventory
	logger    *zap.Logger
	runID     string
}

// Report summarises the outcome of a run.
type Report struct {
	RunID    string
	Packed   int
	Unpacked int
	Rejected int
	// Empty counts unpack steps that found nothing to remove.
	Empty int
}

// New initializes the application with all dependencies from the provided configuration.
func New(cfg config.Config, logger *zap.Logger) (*App, error) {
	m, err := manifest.Load(cfg.ManifestPath)
	if err != nil {
		return nil, fmt.Errorf("failed to load manifest: %w", err)
	}

	inv, err := m.Build()
	if err != nil {
		return nil, fmt.Errorf("failed to build inventory: %w", err)
	}

	runID := uuid.NewString()
	return &App{
		cfg:       cfg,
		manifest:  m,
		inventory: inv,
		logger:    logger.With(zap.String("run_id", runID)),
		runID:     runID,
	}, nil
}

// Run executes the manifest steps in order and writes the final container
// trees to w. A rejected pack is logged and skipped unless FailFast is set.
func (a *App) Run(ctx context.Context, w io.Writer) (Report, error) {
	report := Report{RunID: a.runID}
	a.logger.Info("run started",
		zap.String("manifest", a.cfg.ManifestPath),
		zap.Int("steps", len(a.manifest.Steps)),
	)

	for i, step := range a.manifest.Steps {
		if err := ctx.Err(); err != nil {
			return report, fmt.Errorf("run interrupted before step %d: %w", i, err)
		}

		if !step.IsPack() {
			if err := a.unpack(i, step, &report); err != nil {
				return report, err
			}
			continue
		}

		if err := a.pack(i, step, &report); err != nil && a.cfg.FailFast {
			return report, err
		}
	}

	if err := a.render(w); err != nil {
		return report, err
	}

	a.logger.Info("run completed",
		zap.Int("packed", report.Packed),
		zap.Int("unpacked", report.Unpacked),
		zap.Int("rejected", report.Rejected),
		zap.Int("empty", report.Empty),
	)
	return report, nil
}

// RunID returns the identifier attached to every log line of this run.
func (a *App) RunID() string {
	return a.runID
}

func (a *App) pack(idx int, step manifest.Step, report *Report) error {
	target, err := a.container(step.Into)
	if err != nil {
		return err
	}
	candidate, ok := a.inventory.Lookup(step.Pack)
	if !ok {
		return fmt.Errorf("step %d: %w: %q", idx, manifest.ErrUnknownName, step.Pack)
	}

	fields := []zap.Field{
		zap.Int("step", idx),
		zap.String("item", step.Pack),
		zap.String("container", step.Into),
	}
	if err := target.Pack(candidate); err != nil {
		report.Rejected++
		a.logger.Warn("pack rejected", append(fields, zap.Error(err))...)
		return fmt.Errorf("step %d: pack %q into %q: %w", idx, step.Pack, step.Into, err)
	}

	report.Packed++
	a.logger.Info("packed", append(fields,
		zap.Int("occupied", target.OccupiedCapacity()),
		zap.Int("capacity", target.Capacity()),
	)...)
	return nil
}

func (a *App) unpack(idx int, step manifest.Step, report *Report) error {
	source, err := a.container(step.Unpack)
	if err != nil {
		return err
	}

	removed, ok := source.Unpack()
	if !ok {
		report.Empty++
		a.logger.Info("nothing to unpack",
			zap.Int("step", idx),
			zap.String("container", step.Unpack),
		)
		return nil
	}

	report.Unpacked++
	a.logger.Info("unpacked",
		zap.Int("step", idx),
		zap.String("container", step.Unpack),
		zap.String("item", fmt.Sprint(removed)),
		zap.Int("occupied", source.OccupiedCapacity()),
	)
	return nil
}

func (a *App) container(name string) (storage.Storage, error) {
	s, ok := a.inventory.Container(name)
	if !ok {
		return nil, fmt.Errorf("%w: container %q", manifest.ErrUnknownName, name)
	}
	return s, nil
}

// render writes the tree of every container not held by another one.
func (a *App) render(w io.Writer) error {
	for _, root := range a.inventory.Roots() {
		tree, err := root.Storage.Tree(a.cfg.TreeLevel)
		if err != nil {
			return fmt.Errorf("render %q: %w", root.Name, err)
		}
		if _, err := fmt.Fprintln(w, tree); err != nil {
			return fmt.Errorf("write %q: %w", root.Name, err)
		}
	}
	return nil
}
