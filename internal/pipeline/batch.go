package pipeline

import (
	"context"
	"sort"
	"sync"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/sells-group/offerscore/internal/model"
)

// SkippedProduct records a product excluded from the batch and why.
type SkippedProduct struct {
	Name   string `json:"name"`
	Reason string `json:"reason"`
}

// BatchResult is the ranked outcome of a batch evaluation.
type BatchResult struct {
	// Reports is sorted by TotalScore, best first.
	Reports []model.Report `json:"reports"`

	CostBenefit []string `json:"cost_benefit"`
	TotalScore  []string `json:"total_score"`
	Conclusion  []string `json:"conclusion"`

	Skipped []SkippedProduct `json:"skipped,omitempty"`
}

// EvaluateBatch scores up to the configured maximum of products concurrently,
// ranks them by total score, and generates the narrative blocks. Products that
// fail evaluation are skipped, not fatal.
func (p *Pipeline) EvaluateBatch(ctx context.Context, inputs []model.ProductInput) (*BatchResult, error) {
	log := zap.L()

	result := &BatchResult{}
	if limit := p.cfg.Evaluate.MaxProducts; len(inputs) > limit {
		log.Warn("pipeline: batch truncated",
			zap.Int("submitted", len(inputs)),
			zap.Int("max_products", limit),
		)
		for _, in := range inputs[limit:] {
			result.Skipped = append(result.Skipped, SkippedProduct{
				Name:   in.Name,
				Reason: "exceeds the product limit per batch",
			})
		}
		inputs = inputs[:limit]
	}

	var mu sync.Mutex
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(p.cfg.Evaluate.MaxConcurrentProducts)
	for _, in := range inputs {
		g.Go(func() error {
			report, err := p.Evaluate(gctx, in)
			mu.Lock()
			defer mu.Unlock()
			if err != nil {
				result.Skipped = append(result.Skipped, SkippedProduct{
					Name:   in.Name,
					Reason: err.Error(),
				})
				return nil
			}
			result.Reports = append(result.Reports, *report)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	sort.SliceStable(result.Reports, func(i, j int) bool {
		return result.Reports[i].TotalScore > result.Reports[j].TotalScore
	})

	if len(result.Reports) > 0 {
		result.CostBenefit = p.narrative.CostBenefit(result.Reports)
		result.TotalScore = p.narrative.TotalScore(result.Reports)
		result.Conclusion = p.narrative.Conclusion(result.Reports)
	}

	log.Info("pipeline: batch evaluated",
		zap.Int("scored", len(result.Reports)),
		zap.Int("skipped", len(result.Skipped)),
	)
	return result, nil
}
