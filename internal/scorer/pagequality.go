package scorer

import (
	"math"
	"regexp"
	"strings"

	"github.com/sells-group/offerscore/pkg/pagefetch"
)

// pageQualityCap bounds the structural quality score.
const pageQualityCap = 20.0

var (
	reTestimonials = regexp.MustCompile(`\b(testimonials|reviews)\b`)
	rePricing      = regexp.MustCompile(`\b(price|payment options|\$|purchase)\b`)
	reBonus        = regexp.MustCompile(`\b(bonus|free gift|freebie)\b`)
	reGuarantee    = regexp.MustCompile(`\b(guarantee|refund|money-back)\b`)
	reAuthenticity = regexp.MustCompile(`\b(certified|authentic|official)\b`)
	reContact      = regexp.MustCompile(`\b(contact|support|help|email|phone)\b`)
	reFAQ          = regexp.MustCompile(`\b(faq|questions|help)\b`)
)

// PageQuality scores structural and trust signals of a fetched sales page.
// A nil page (fetch failure) scores zero.
func (s *Scorer) PageQuality(page *pagefetch.Page) float64 {
	if page == nil {
		return 0
	}

	text := strings.ToLower(page.Text)
	score := 0.0

	if page.HasViewportMeta {
		score += 2.30
	}
	if reTestimonials.MatchString(text) {
		score += 2.07
	}
	if page.HasColorStyledAnchor {
		score += 1.38
	}
	if len(page.H1) > 5 {
		score += 2.30
	}
	if page.HasVideo {
		score += 1.84
	}
	if rePricing.MatchString(text) {
		score += 1.61
	}
	if page.AnchorCount > 2 {
		score += 1.38
	}
	if reBonus.MatchString(text) {
		score += 1.38
	}
	if reGuarantee.MatchString(text) {
		score += 2.30
	}
	if reAuthenticity.MatchString(text) {
		score += 0.92
	}
	if reContact.MatchString(text) {
		score += 1.38
	}
	if reFAQ.MatchString(text) {
		score += 1.15
	}

	return round2(math.Min(score, pageQualityCap))
}
