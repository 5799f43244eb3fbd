package scorer

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/sells-group/offerscore/internal/model"
)

func TestFinalGrade_WeightsSEOAndCTR(t *testing.T) {
	s := loadScorer(t)
	r := &model.Report{
		PageQuality: 10,
		SEOKeywords: 10, // contributes 15
		CTR:         20, // contributes 40
	}
	// (10 + 15 + 40) / 100 * 10 = 6.5
	assert.Equal(t, 6.5, s.FinalGrade(r))
}

func TestFinalGrade_ClampsToTen(t *testing.T) {
	s := loadScorer(t)
	r := &model.Report{
		PageQuality:    20,
		Copywriting:    20,
		BenefitsOffers: 10,
		PriceValue:     10,
		PriceRange:     10,
		Seasonality:    2,
		SEOKeywords:    40,
		CTR:            86.75,
		SocialPresence: 4,
	}
	assert.Equal(t, 10.0, s.FinalGrade(r))
}

func TestFinalGrade_ZeroReport(t *testing.T) {
	s := loadScorer(t)
	assert.Equal(t, 0.0, s.FinalGrade(&model.Report{}))
}
