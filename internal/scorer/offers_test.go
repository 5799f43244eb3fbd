package scorer

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/sells-group/offerscore/pkg/pagefetch"
)

func TestBenefitsOffers_NilPage(t *testing.T) {
	s := loadScorer(t)
	assert.Equal(t, 0.0, s.BenefitsOffers(nil))
}

func TestBenefitsOffers_NoMatches(t *testing.T) {
	s := loadScorer(t)
	page := &pagefetch.Page{Text: "zzz qqq xxx"}
	assert.Equal(t, 0.0, s.BenefitsOffers(page))
}

func TestBenefitsOffers_AccumulatesWeights(t *testing.T) {
	s := loadScorer(t)
	page := &pagefetch.Page{Text: "energy boost for your vitality"}
	// "energy boost" matches two groups and "vitality" one, 0.4 each.
	assert.Equal(t, 1.2, s.BenefitsOffers(page))
}

func TestBenefitsOffers_ShortCircuitsAtCap(t *testing.T) {
	s := loadScorer(t)
	// Pile on enough benefit phrases to exceed the cap.
	page := &pagefetch.Page{Text: "energy boost well-being vitality reduce stress improve health " +
		"immunity better sleep relaxation easy to use hassle-free no setup quick and convenient " +
		"low maintenance stress-free save money affordable cost-effective time-saving quick results " +
		"budget-friendly safe trusted reliable secure certified trusted brand high performance " +
		"efficiency boost productivity optimized lose weight fat burning slim down get fit tone muscles"}
	assert.Equal(t, offersCap, s.BenefitsOffers(page))
}
