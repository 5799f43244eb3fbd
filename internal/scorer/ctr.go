package scorer

import (
	"math"

	"github.com/sells-group/offerscore/internal/catalog"
	"github.com/sells-group/offerscore/internal/model"
)

// ctrCap bounds the weighted CTR score.
const ctrCap = 86.75

// Volume and CPC ranges used to rescale keyword metrics onto 0-10.
const (
	ctrMinVolume = 100.0
	ctrMaxVolume = 10000.0
	ctrMinCPC    = 0.1
	ctrMaxCPC    = 15.0
)

// WeightedCTR estimates the expected click-through rate of the product's
// keyword portfolio. Each keyword's CTR combines the category's mean CTR,
// the keyword intent weight, a volume-to-CPC ratio, and the on-page SEO
// adjustment; keywords are weighted by volume. Zero total volume scores
// zero.
func (s *Scorer) WeightedCTR(p *model.ProductInput, cat *catalog.Category, basicSEO float64) float64 {
	if cat.MeanCTR == 0 {
		return 0
	}

	total := 0.0
	totalVolume := 0.0
	for _, kw := range p.Keywords {
		_, weight := s.ClassifyIntent(kw.Term, p.Name, p.FunnelBottomAllowed)

		volNorm := rescale(float64(kw.Volume), ctrMinVolume, ctrMaxVolume)
		cpcNorm := rescale(kw.CPC, ctrMinCPC, ctrMaxCPC)

		individual := cat.MeanCTR*weight*(volNorm/(cpcNorm+1)) + basicSEO

		total += individual * float64(kw.Volume)
		totalVolume += float64(kw.Volume)
	}

	if totalVolume == 0 {
		return 0
	}

	weighted := total / totalVolume
	return round2(math.Min(math.Max(weighted, 0), ctrCap))
}

// rescale maps value from [min, max] onto a 0-10 scale, clamping at the
// bounds.
func rescale(value, min, max float64) float64 {
	if max == min {
		return 0
	}
	if value <= min {
		return 0
	}
	if value >= max {
		return 10
	}
	return (value - min) / (max - min) * 10
}

type ctrBand struct {
	low, high   float64
	description string
}

var ctrBands = []ctrBand{
	{0, 10.99, "Very poor: the product's CTR is well below expectations, suggesting low appeal. Poorly optimized product with limited potential. Indicates badly chosen keywords, weak SEO, or a mismatch with search intent. Ads will see low ROI."},
	{11, 15.99, "Poor to moderate: an average product needing significant improvement. The CTR suggests weak intent or a poorly defined audience. It can work, but keywords and copy need careful adjustment before larger campaigns."},
	{16, 20.99, "Moderate to good: a reasonable product with solid structure and optimization. It can deliver consistent results, but there is room to improve the alignment between keywords and offer. Good candidate for paid traffic tests."},
	{21, 25.99, "Good: the CTR indicates solid relevance and engagement. A strong product, optimized for paid traffic. SEO and transactional keywords are effective and drive consistent clicks. Final tweaks are recommended to maximize campaign performance."},
	{26, 30.99, "Very good: a strong product, well optimized for conversion. Above-average CTR indicates a good fit with the target audience. A great pick for paid traffic campaigns and scaling."},
	{31, 40.99, "Excellent: the CTR is excellent, suggesting high appeal and ideal performance. A high-quality, competitive product. SEO, copywriting, and keyword intent are well tuned. Strong performance expected with paid traffic. Suited to aggressive campaigns."},
	{41, 50.99, "Top potential: an exceptional product in competitive niches. The high CTR reflects strong audience appeal and click rates. An excellent option for rapid scaling and aggressive ad spend."},
	{51, 70.99, "Golden niche (rare): extraordinary performance rarely seen in competitive markets. SEO, intent, and copywriting are perfectly aligned. A prime opportunity to capture paid traffic before the niche saturates."},
	{71, 86.75, "Exclusive / outlier: unmatched performance. Market demand, copy, and offer are perfectly tuned. Capable of exceptional results, but should be monitored closely to sustain it. Suited to maximum-scale campaigns."},
}

// DescribeCTR returns the qualitative reading for a weighted CTR score.
func DescribeCTR(score float64) string {
	for _, band := range ctrBands {
		if score >= band.low && score <= band.high {
			return band.description
		}
	}
	return "CTR score outside the expected ranges."
}
