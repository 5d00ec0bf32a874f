package waveform

import (
	"context"
	"runtime"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// EvaluateBatch evaluates every parameter set concurrently and returns the
// strains in the order of sets. The first model error cancels the remaining
// evaluations and is returned. The source model function must be safe for
// concurrent use.
func (g *Generator) EvaluateBatch(ctx context.Context, sets []Parameters) ([]Strain, error) {
	// Workers only read the grid
	frequencies := g.FrequencyArray()
	res := make([]Strain, len(sets))

	eg, ctx := errgroup.WithContext(ctx)
	eg.SetLimit(runtime.GOMAXPROCS(0))
	for index := range sets {
		i := index
		p := sets[index]
		eg.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			strain, err := g.source.Func(frequencies, p)
			if err != nil {
				return err
			}
			res[i] = strain
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		g.logger.Debug("batch evaluation failed",
			zap.String("model", g.source.Name),
			zap.Int("sets", len(sets)),
			zap.Error(err))
		return nil, err
	}
	return res, nil
}
