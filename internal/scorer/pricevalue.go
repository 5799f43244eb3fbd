package scorer

import (
	"fmt"
	"math"

	"github.com/sells-group/offerscore/internal/textnorm"
	"github.com/sells-group/offerscore/pkg/pagefetch"
)

// priceValueCap bounds the price-to-value score.
const priceValueCap = 10.0

// PriceValue scores the value proposition of the page across five weighted
// subcriteria (time savings, trust, performance, added value, exclusivity)
// using fuzzy phrase matching, and returns per-match feedback lines. A nil
// page scores zero.
func (s *Scorer) PriceValue(page *pagefetch.Page) (float64, []string) {
	if page == nil {
		return 0, []string{"page content unavailable; price-to-value not evaluated"}
	}

	text := textnorm.Normalize(page.Text)
	total := 0.0
	var feedback []string

	for _, sub := range s.cat.PriceValue {
		score := 0.0
		for _, group := range sub.Groups {
			for _, phrase := range group.Phrases {
				if fuzzyContains(text, phrase) {
					score += 0.5
					feedback = append(feedback, fmt.Sprintf("keyword found in %q: %q", group.Name, phrase))
				}
			}
		}
		total += math.Min(score, sub.Weight)
	}

	return round2(math.Min(total, priceValueCap)), feedback
}
