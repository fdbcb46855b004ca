package cmd

import (
	"fmt"

	"inventory-manager/core/config"
	"inventory-manager/core/logger"
	"inventory-manager/core/metrics"
	"inventory-manager/feature/inventory"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// runtime is the state shared by every command of one invocation.
type runtime struct {
	cfg     *config.Config
	logger  *zap.Logger
	metrics *metrics.Metrics
	runID   string
}

func bootstrap() (*runtime, error) {
	cfg, err := config.LoadConfig(".")
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	logg, err := logger.New(&cfg.Log)
	if err != nil {
		return nil, fmt.Errorf("failed to create logger: %w", err)
	}

	runID := uuid.NewString()
	return &runtime{
		cfg:     cfg,
		logger:  logger.WithRunID(logg, runID),
		metrics: metrics.New(cfg.Metrics),
		runID:   runID,
	}, nil
}

// load builds the inventory from the configured input files.
func (rt *runtime) load() (*inventory.Service, error) {
	svc := inventory.NewService(rt.cfg.Inventory, rt.logger, rt.metrics)
	if err := svc.Load(); err != nil {
		return nil, err
	}
	return svc, nil
}

// pipeline loads the inventory and writes every report. Files that fail to
// write are reported in the summary, not as an error.
func (rt *runtime) pipeline() (*inventory.Service, inventory.Summary, error) {
	svc, err := rt.load()
	if err != nil {
		return nil, inventory.Summary{}, err
	}

	summary := svc.GenerateAll()
	if len(summary.Failed) > 0 {
		failed := make([]string, 0, len(summary.Failed))
		for file := range summary.Failed {
			failed = append(failed, file)
		}
		rt.logger.Warn("Some reports could not be written", zap.Strings("failed", failed))
	}
	rt.logger.Info("Reports generated",
		zap.Int("written", len(summary.Written)),
		zap.Int("failed", len(summary.Failed)),
		zap.String("output_dir", rt.cfg.Inventory.OutputDir),
	)
	return svc, summary, nil
}
