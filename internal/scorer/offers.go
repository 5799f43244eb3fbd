package scorer

import (
	"github.com/sells-group/offerscore/internal/textnorm"
	"github.com/sells-group/offerscore/pkg/pagefetch"
)

// offersCap bounds the benefits-and-offers score.
const offersCap = 10.0

// BenefitsOffers scores how explicitly the page communicates benefits,
// special offers, and shipping or return terms. Each subcriterion carries a
// per-phrase weight. A nil page scores zero.
func (s *Scorer) BenefitsOffers(page *pagefetch.Page) float64 {
	if page == nil {
		return 0
	}

	text := textnorm.Normalize(page.Text)
	score := 0.0

	for _, sub := range s.cat.Offers {
		for _, group := range sub.Groups {
			for _, phrase := range group.Phrases {
				if containsPhrase(text, phrase) {
					score += sub.Weight
					if score >= offersCap {
						return offersCap
					}
				}
			}
		}
	}

	return round2(score)
}
