package scorer

import "github.com/sells-group/offerscore/internal/model"

// Final-grade weights. SEO and CTR count more than the other criteria.
const (
	gradeWeightSEO = 1.5
	gradeWeightCTR = 2.0
)

// FinalGrade computes the weighted final grade on a 0-10 scale. The weighted
// criterion sum is rescaled from 0-100; the unweighted TotalScore stays the
// ranking key.
func (s *Scorer) FinalGrade(r *model.Report) float64 {
	weighted := r.PageQuality +
		r.Copywriting +
		r.BenefitsOffers +
		r.PriceValue +
		r.PriceRange +
		r.Seasonality +
		gradeWeightSEO*r.SEOKeywords +
		gradeWeightCTR*r.CTR +
		r.SocialPresence
	return round2(rescale(weighted, 0, 100))
}
