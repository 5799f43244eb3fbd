// Package narrative renders comparison commentary for ranked product
// reports: cost-benefit positioning by CPC, total-score highlights, and a
// closing recommendation per product. Phrases are drawn from per-block pools
// without repetition within a generator's lifetime; an exhausted pool resets.
package narrative

import (
	"fmt"
	"math/rand"
	"sort"
	"strings"
	"sync"

	"github.com/sells-group/offerscore/internal/model"
)

// Phrase blocks.
const (
	blockCostBenefit = "cost_benefit"
	blockTotalScore  = "total_score"
	blockConclusion  = "conclusion"
)

// Generator produces narrative phrases. Safe for concurrent use.
type Generator struct {
	mu   sync.Mutex
	rand *rand.Rand
	used map[string]map[string]bool
}

// Option configures the generator.
type Option func(*Generator)

// WithRand sets the random source, used by tests for determinism.
func WithRand(r *rand.Rand) Option {
	return func(g *Generator) {
		g.rand = r
	}
}

// New creates a phrase generator.
func New(opts ...Option) *Generator {
	g := &Generator{
		rand: rand.New(rand.NewSource(rand.Int63())),
		used: map[string]map[string]bool{
			blockCostBenefit: {},
			blockTotalScore:  {},
			blockConclusion:  {},
		},
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// pick selects an unused phrase from the pool, resetting the block's used
// set once every phrase has been served.
func (g *Generator) pick(block string, pool []string) string {
	g.mu.Lock()
	defer g.mu.Unlock()

	used := g.used[block]
	var available []string
	for _, p := range pool {
		if !used[p] {
			available = append(available, p)
		}
	}
	if len(available) == 0 {
		g.used[block] = map[string]bool{}
		used = g.used[block]
		available = pool
	}

	phrase := available[g.rand.Intn(len(available))]
	used[phrase] = true
	return phrase
}

func fill(phrase string, pairs ...string) string {
	return strings.NewReplacer(pairs...).Replace(phrase)
}

// CostBenefit generates one phrase per product, ordered by average CPC from
// highest to lowest. The priciest product gets the experienced-affiliate
// angle, the cheapest the beginner angle, and everything in between a
// comparison of the two extremes.
func (g *Generator) CostBenefit(reports []model.Report) []string {
	ordered := sortBy(reports, func(a, b *model.Report) bool { return a.AvgCPC > b.AvgCPC })

	phrases := make([]string, 0, len(ordered))
	for i, r := range ordered {
		switch {
		case i == 0:
			phrase := g.pick(blockCostBenefit, costBenefitHighCPC)
			phrases = append(phrases, fill(phrase,
				"{name}", r.Name, "{cpcs}", FormatCPCs(r.CPCs)))
		case i == len(ordered)-1:
			phrase := g.pick(blockCostBenefit, costBenefitLowCPC)
			phrases = append(phrases, fill(phrase,
				"{name}", r.Name, "{cpcs}", FormatCPCs(r.CPCs)))
		default:
			top, bottom := ordered[0], ordered[len(ordered)-1]
			phrase := g.pick(blockCostBenefit, costBenefitComparative)
			phrases = append(phrases, fill(phrase,
				"{name_1}", top.Name, "{cpcs_1}", FormatCPCs(top.CPCs),
				"{name_2}", bottom.Name, "{cpcs_2}", FormatCPCs(bottom.CPCs)))
		}
	}
	return phrases
}

// TotalScore generates phrases for the best and worst scored products;
// middle-ranked products are skipped. A single product counts as best.
func (g *Generator) TotalScore(reports []model.Report) []string {
	ordered := sortBy(reports, func(a, b *model.Report) bool { return a.TotalScore > b.TotalScore })

	var phrases []string
	for i, r := range ordered {
		var pool []string
		format := "%.1f"
		switch {
		case i == 0:
			pool = totalScoreHigh
		case i == len(ordered)-1:
			pool = totalScoreLow
			format = "%.2f"
		default:
			continue
		}
		phrase := g.pick(blockTotalScore, pool)
		phrases = append(phrases, fill(phrase,
			"{name}", r.Name,
			"{total_score}", fmt.Sprintf(format, r.TotalScore)))
	}
	return phrases
}

// Conclusion generates a closing recommendation per product, ordered by
// average CPC from highest to lowest, with the pool chosen by CPC tier.
func (g *Generator) Conclusion(reports []model.Report) []string {
	ordered := sortBy(reports, func(a, b *model.Report) bool { return a.AvgCPC > b.AvgCPC })

	phrases := make([]string, 0, len(ordered))
	for i, r := range ordered {
		var pool []string
		switch {
		case i == 0:
			pool = conclusionHighCPC
		case i == len(ordered)-1:
			pool = conclusionLowCPC
		default:
			pool = conclusionMidCPC
		}
		phrase := g.pick(blockConclusion, pool)
		phrases = append(phrases, fill(phrase,
			"{name}", r.Name, "{cpcs}", FormatCPCs(r.CPCs)))
	}
	return phrases
}

// FormatCPCs renders up to seven positive CPC values as a dollar list, e.g.
// "$2.10, $3.50 and $4.00".
func FormatCPCs(cpcs []float64) string {
	var valid []float64
	for _, c := range cpcs {
		if c > 0 {
			valid = append(valid, c)
		}
		if len(valid) == 7 {
			break
		}
	}

	switch len(valid) {
	case 0:
		return "CPC not provided"
	case 1:
		return fmt.Sprintf("$%.2f", valid[0])
	default:
		parts := make([]string, len(valid)-1)
		for i, c := range valid[:len(valid)-1] {
			parts[i] = fmt.Sprintf("$%.2f", c)
		}
		return strings.Join(parts, ", ") + fmt.Sprintf(" and $%.2f", valid[len(valid)-1])
	}
}

func sortBy(reports []model.Report, less func(a, b *model.Report) bool) []model.Report {
	ordered := make([]model.Report, len(reports))
	copy(ordered, reports)
	sort.SliceStable(ordered, func(i, j int) bool { return less(&ordered[i], &ordered[j]) })
	return ordered
}
