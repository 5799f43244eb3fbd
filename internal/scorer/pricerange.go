package scorer

import (
	"math"

	"github.com/sells-group/offerscore/internal/textnorm"
	"github.com/sells-group/offerscore/pkg/pagefetch"
)

// priceRangeCap bounds the pricing-strategy score.
const priceRangeCap = 10.0

// PriceRange scores the pricing strategy of the page. Each theme contributes
// its full weight when any of its phrases is present. A nil page scores zero.
func (s *Scorer) PriceRange(page *pagefetch.Page) float64 {
	if page == nil {
		return 0
	}

	text := textnorm.Normalize(page.Text)
	score := 0.0

	for _, theme := range s.cat.PriceRange {
		for _, phrase := range theme.Phrases {
			if containsPhrase(text, phrase) {
				score += theme.Weight
				break
			}
		}
	}

	return round2(math.Min(score, priceRangeCap))
}
