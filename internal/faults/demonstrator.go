package faults

import (
	"context"
	"log/slog"

	"github.com/spf13/afero"

	"github.com/kula-app/car-rental-console/internal/config"
)

// Demonstrator holds the fault catalog shown by the menu
type Demonstrator struct {
	scenarios []Scenario
	logger    *slog.Logger
}

// NewDemonstrator builds the catalog. Files are opened on the given
// filesystem, which is normally an empty in-memory one.
func NewDemonstrator(cfg config.FaultConfig, files afero.Fs, logger *slog.Logger) *Demonstrator {
	scenarios := resourceScenarios(files, cfg.MissingFile, cfg.DatabaseURL, cfg.DriverName, cfg.ConnectTimeout)
	scenarios = append(scenarios, runtimeScenarios(cfg.Pause)...)

	return &Demonstrator{
		scenarios: scenarios,
		logger:    logger,
	}
}

// Scenarios returns the scenarios of a category in execution order
func (d *Demonstrator) Scenarios(category Category) []Scenario {
	var selected []Scenario
	for _, s := range d.scenarios {
		if s.Category == category {
			selected = append(selected, s)
		}
	}
	return selected
}

// Run evaluates every scenario of the category in order. A scenario's
// result never affects whether or how the following ones run.
func (d *Demonstrator) Run(ctx context.Context, category Category) []Outcome {
	scenarios := d.Scenarios(category)
	outcomes := make([]Outcome, 0, len(scenarios))

	for _, s := range scenarios {
		outcome := Evaluate(ctx, s)

		if outcome.Fault != nil {
			d.logger.Debug("fault caught",
				"scenario", s.Name,
				"category", s.Category,
				"kind", outcome.Fault.Kind.String(),
				"error", outcome.Fault.Err)
		} else {
			d.logger.Debug("scenario finished without a classified fault",
				"scenario", s.Name,
				"category", s.Category,
				"error", outcome.Err)
		}

		outcomes = append(outcomes, outcome)
	}

	return outcomes
}
