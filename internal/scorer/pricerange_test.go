package scorer

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/sells-group/offerscore/pkg/pagefetch"
)

func TestPriceRange_NilPage(t *testing.T) {
	s := loadScorer(t)
	assert.Equal(t, 0.0, s.PriceRange(nil))
}

func TestPriceRange_ThemeCountsOnce(t *testing.T) {
	s := loadScorer(t)
	// Two refund phrases still award the theme weight a single time.
	page := &pagefetch.Page{Text: "satisfaction guarantee plus a refund guarantee"}
	assert.Equal(t, 3.0, s.PriceRange(page))
}

func TestPriceRange_SumsThemeWeights(t *testing.T) {
	s := loadScorer(t)
	page := &pagefetch.Page{Text: "satisfaction guarantee, buy one get one free, free shipping on all orders"}
	score := s.PriceRange(page)
	assert.Greater(t, score, 3.0)
	assert.LessOrEqual(t, score, priceRangeCap)
}
