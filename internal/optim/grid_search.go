// Package optim sweeps solver parameters against a metric, picking the
// combination that minimizes it.
package optim

import (
	"context"
	"math"

	"sphfluid/internal/config"
	"sphfluid/internal/experiment"
)

// GridSearch exhaustively tries every combination of paramNames x ranges.
type GridSearch struct {
	paramNames []string
	ranges     [][]float64
}

func NewGridSearch(params []string, ranges [][]float64) *GridSearch {
	return &GridSearch{paramNames: params, ranges: ranges}
}

// Search evaluates buildConfig(params) for every grid point, running the
// resulting experiment and scoring it by metricName, and returns the
// parameter set minimizing that metric (e.g. "energy_drift").
func (g *GridSearch) Search(
	ctx context.Context,
	buildConfig func(params map[string]float64) (*config.Config, error),
	metricName string,
) (map[string]float64, float64, error) {
	best := math.Inf(1)
	var bestParams map[string]float64

	g.searchRecursive(ctx, 0, make(map[string]float64), buildConfig, metricName, &best, &bestParams)

	return bestParams, best, nil
}

func (g *GridSearch) searchRecursive(
	ctx context.Context,
	depth int,
	current map[string]float64,
	buildConfig func(map[string]float64) (*config.Config, error),
	metricName string,
	best *float64,
	bestParams *map[string]float64,
) {
	if depth == len(g.paramNames) {
		cfg, err := buildConfig(current)
		if err != nil {
			return
		}

		exp, err := experiment.New(cfg, false)
		if err != nil {
			return
		}

		result, err := exp.Run(ctx)
		if err != nil {
			return
		}

		val := result.Metrics[metricName]
		if val < *best {
			*best = val
			*bestParams = make(map[string]float64, len(current))
			for k, v := range current {
				(*bestParams)[k] = v
			}
		}
		return
	}

	paramName := g.paramNames[depth]
	for _, val := range g.ranges[depth] {
		newParams := make(map[string]float64, len(current)+1)
		for k, v := range current {
			newParams[k] = v
		}
		newParams[paramName] = val

		g.searchRecursive(ctx, depth+1, newParams, buildConfig, metricName, best, bestParams)
	}
}
