package services

import (
	"context"
	"fmt"
	"time"

	"bikeshare-explorer/models"
	"bikeshare-explorer/observability"
	"bikeshare-explorer/storage"
	"bikeshare-explorer/utils"

	"github.com/google/uuid"
)

// Analysis is the outcome of one run: the filtered table and its statistics
type Analysis struct {
	RunID    string
	Spec     models.FilterSpec
	Location string
	Table    *models.Table
	Report   *models.StatisticsReport
}

// Pipeline resolves, loads, filters and summarises one city per run
type Pipeline struct {
	registry *storage.Registry
	loader   *RecordLoader
	stats    *StatsEngine
	logger   *utils.Logger
}

// NewPipeline creates a new Pipeline
func NewPipeline(registry *storage.Registry, loader *RecordLoader, stats *StatsEngine, logger *utils.Logger) *Pipeline {
	return &Pipeline{registry: registry, loader: loader, stats: stats, logger: logger}
}

// Run executes one analysis. Registry and load errors abort the run; an empty
// filter result still produces a report made of "no data" outcomes.
func (p *Pipeline) Run(ctx context.Context, spec models.FilterSpec) (*Analysis, error) {
	runID := uuid.NewString()
	logger := p.logger.With("run_id", runID, "city", spec.City)

	location, err := p.registry.Lookup(spec.City)
	if err != nil {
		return nil, fmt.Errorf("resolve dataset: %w", err)
	}

	table, err := p.loader.Load(ctx, location)
	if err != nil {
		logger.Error("Load failed", "location", location, "error", err)
		return nil, fmt.Errorf("load %s: %w", spec.City, err)
	}

	start := time.Now()
	filtered, err := ApplyFilter(table, spec.Month, spec.Day)
	if err != nil {
		return nil, err
	}
	observability.ObserveStage(observability.StageFilter, time.Since(start))
	observability.RecordRowsFiltered(spec.City, filtered.Len())

	if filtered.Len() == 0 {
		logger.Warn("Filter matched no trips", "month", spec.Month, "day", spec.Day)
	} else {
		logger.Info("Filtered trips", "month", spec.Month, "day", spec.Day, "rows", filtered.Len(), "of", table.Len())
	}

	return &Analysis{
		RunID:    runID,
		Spec:     spec,
		Location: location,
		Table:    filtered,
		Report:   p.stats.Run(filtered, spec),
	}, nil
}
