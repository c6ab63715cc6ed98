package esp2kanji

import (
	"context"
	"strings"

	"golang.org/x/sync/errgroup"

	"github.com/takatakatake/go-esp2kanji/internal/pipeline"
)

// replaceParallel splits text into line-aligned chunks and runs the
// substitution engine per chunk, joining results in original order. Chunk
// boundaries fall only after newlines and marked spans are single-line, so
// no boundary severs a span; the span plan is computed once over the whole
// text, so bounded sentinel lists are budgeted across all chunks rather
// than per chunk. Together these make the output identical to a serial
// run. Rule and sentinel lists are read-only; workers share the engine and
// the plan without coordination.
func (c *Converter) replaceParallel(ctx context.Context, text string, workers int) (string, error) {
	chunks := pipeline.SplitChunks(text, workers)
	if len(chunks) == 1 {
		return c.engine.Replace(ctx, text), nil
	}

	plan := c.engine.PlanSpans(text)

	results := make([]string, len(chunks))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)

	for i, chunk := range chunks {
		i, chunk := i, chunk
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			results[i] = c.engine.ReplaceWithPlan(gctx, chunk, plan)
			return gctx.Err()
		})
	}

	if err := g.Wait(); err != nil {
		return "", err
	}
	return strings.Join(results, ""), nil
}
