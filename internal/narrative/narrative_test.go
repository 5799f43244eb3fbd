package narrative

import (
	"math/rand"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sells-group/offerscore/internal/model"
)

func testGenerator() *Generator {
	return New(WithRand(rand.New(rand.NewSource(1))))
}

func threeProducts() []model.Report {
	return []model.Report{
		{Name: "Alpha", TotalScore: 90, AvgCPC: 8.0, CPCs: []float64{7.5, 8.5}},
		{Name: "Bravo", TotalScore: 70, AvgCPC: 4.0, CPCs: []float64{4.0}},
		{Name: "Charlie", TotalScore: 50, AvgCPC: 1.0, CPCs: []float64{1.0}},
	}
}

func TestCostBenefit_TiersByCPC(t *testing.T) {
	g := testGenerator()
	phrases := g.CostBenefit(threeProducts())
	require.Len(t, phrases, 3)

	// Highest CPC first, lowest last, comparison in the middle.
	assert.Contains(t, phrases[0], "Alpha")
	assert.Contains(t, phrases[1], "Alpha")
	assert.Contains(t, phrases[1], "Charlie")
	assert.Contains(t, phrases[2], "Charlie")
}

func TestCostBenefit_NoUnresolvedPlaceholders(t *testing.T) {
	g := testGenerator()
	for _, phrase := range g.CostBenefit(threeProducts()) {
		assert.NotContains(t, phrase, "{")
	}
}

func TestTotalScore_SkipsMiddle(t *testing.T) {
	g := testGenerator()
	phrases := g.TotalScore(threeProducts())
	require.Len(t, phrases, 2)
	// Best score with one decimal, worst with two.
	assert.Contains(t, phrases[0], "Alpha")
	assert.Contains(t, phrases[0], "90.0")
	assert.NotContains(t, phrases[0], "90.00")
	assert.Contains(t, phrases[1], "Charlie")
	assert.Contains(t, phrases[1], "50.00")
}

func TestTotalScore_SingleProduct(t *testing.T) {
	g := testGenerator()
	phrases := g.TotalScore(threeProducts()[:1])
	require.Len(t, phrases, 1)
	assert.Contains(t, phrases[0], "Alpha")
}

func TestConclusion_OnePerProduct(t *testing.T) {
	g := testGenerator()
	phrases := g.Conclusion(threeProducts())
	require.Len(t, phrases, 3)
	assert.Contains(t, phrases[0], "Alpha")
	assert.Contains(t, phrases[1], "Bravo")
	assert.Contains(t, phrases[2], "Charlie")
}

func TestPick_NeverRepeatsUntilExhausted(t *testing.T) {
	g := testGenerator()
	pool := []string{"a", "b", "c"}

	seen := map[string]bool{}
	for range pool {
		seen[g.pick("cost_benefit", pool)] = true
	}
	assert.Len(t, seen, 3)
}

func TestPick_ResetsWhenExhausted(t *testing.T) {
	g := testGenerator()
	pool := []string{"a", "b"}

	g.pick("conclusion", pool)
	g.pick("conclusion", pool)
	// Pool exhausted; the next pick draws from a reset pool.
	third := g.pick("conclusion", pool)
	assert.Contains(t, pool, third)
}

func TestFormatCPCs(t *testing.T) {
	assert.Equal(t, "CPC not provided", FormatCPCs(nil))
	assert.Equal(t, "CPC not provided", FormatCPCs([]float64{0, -1}))
	assert.Equal(t, "$2.50", FormatCPCs([]float64{2.5}))
	assert.Equal(t, "$2.10, $3.50 and $4.00", FormatCPCs([]float64{2.1, 3.5, 4.0}))

	many := FormatCPCs([]float64{1, 2, 3, 4, 5, 6, 7, 8, 9})
	assert.Equal(t, 5, strings.Count(many, ","))
	assert.NotContains(t, many, "$8.00")
}
