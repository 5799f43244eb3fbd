package scorer

import (
	"fmt"
	"math"
	"strings"

	"github.com/sells-group/offerscore/internal/catalog"
	"github.com/sells-group/offerscore/internal/model"
	"github.com/sells-group/offerscore/internal/textnorm"
	"github.com/sells-group/offerscore/pkg/pagefetch"
)

// Search intent classes, in matching priority order.
type IntentKind string

const (
	IntentBottomFunnelProduct IntentKind = "bottom_funnel_product"
	IntentTransactional       IntentKind = "transactional"
	IntentInformational       IntentKind = "informational"
	IntentAwareness           IntentKind = "awareness"
	IntentNeutral             IntentKind = "neutral"
)

// Intent class weights.
const (
	weightTransactional = 2.5
	weightInformational = 1.0
	weightAwareness     = 0.3
	weightNeutral       = 0.7
)

// Search volume and CPC competition multipliers.
const (
	volumeWeight = 4.0
	cpcWeight    = 5.0
)

// basicSEOCap bounds the on-page portion of the SEO score.
const basicSEOCap = 5.0

// ClassifyIntent classifies a keyword's search intent and returns its weight.
// A keyword containing the product name is bottom-funnel when bottom-funnel
// campaigns are allowed; transactional keywords are downgraded to the neutral
// weight when they are not.
func (s *Scorer) ClassifyIntent(keyword, productName string, funnelBottom bool) (IntentKind, float64) {
	kw := textnorm.Normalize(keyword)

	if funnelBottom && productName != "" && strings.Contains(kw, textnorm.Normalize(productName)) {
		return IntentBottomFunnelProduct, weightTransactional
	}
	for _, term := range s.cat.Intent.Transactional {
		if containsPhrase(kw, term) {
			if funnelBottom {
				return IntentTransactional, weightTransactional
			}
			return IntentTransactional, weightNeutral
		}
	}
	for _, term := range s.cat.Intent.Informational {
		if containsPhrase(kw, term) {
			return IntentInformational, weightInformational
		}
	}
	for _, term := range s.cat.Intent.Awareness {
		if containsPhrase(kw, term) {
			return IntentAwareness, weightAwareness
		}
	}
	return IntentNeutral, weightNeutral
}

// SEOKeywords scores the product's keyword portfolio plus on-page SEO. The
// total combines campaign permissions, search volume, CPC competition, a
// per-keyword intent average, and the basic on-page score; it has no upper
// cap. Per-component values are returned in the detail struct.
func (s *Scorer) SEOKeywords(p *model.ProductInput, cat *catalog.Category, page *pagefetch.Page) (float64, model.SEODetail) {
	detail := model.SEODetail{}

	if p.PaidTrafficAllowed {
		detail.Permission += 1.0
	}
	if p.FunnelBottomAllowed {
		detail.Permission += 1.0
	}

	categoryTerms := make(map[string]bool, len(cat.SEOTerms))
	for _, term := range cat.SEOTerms {
		categoryTerms[textnorm.Normalize(term)] = true
	}

	intentSum := 0.0
	for _, kw := range p.Keywords {
		_, weight := s.ClassifyIntent(kw.Term, p.Name, p.FunnelBottomAllowed)
		adjust := 1.0
		if categoryTerms[textnorm.Normalize(kw.Term)] {
			adjust = 1.5
		}
		intentSum += weight * adjust

		switch {
		case kw.Volume > 5000:
			detail.SearchVolume += volumeWeight * weight * adjust
		case kw.Volume >= 1500 && kw.Volume <= 4999:
			detail.SearchVolume += volumeWeight * 0.5 * weight * adjust
		default:
			detail.SearchVolume += volumeWeight * 0.25 * weight * adjust
		}

		if high, midLow, ok := cpcBracket(kw.Volume); ok {
			switch {
			case kw.CPC > high:
				detail.CPCCompetition += cpcWeight * 1.2 * weight * adjust
				detail.CPCAlerts = append(detail.CPCAlerts,
					fmt.Sprintf("keyword %q has a high CPC ($%.2f); consider cheaper alternatives", kw.Term, kw.CPC))
			case kw.CPC >= midLow:
				detail.CPCCompetition += cpcWeight * weight * adjust
			default:
				detail.CPCCompetition += cpcWeight * 0.8 * weight * adjust
			}
		}
	}

	if len(p.Keywords) > 0 {
		detail.KeywordIntent = intentSum / float64(len(p.Keywords))
	}

	detail.BasicSEO = s.BasicSEO(page, p.Name)

	total := round2(detail.Permission + detail.SearchVolume + detail.CPCCompetition +
		detail.KeywordIntent + detail.BasicSEO)
	return total, detail
}

// cpcBracket returns the high-CPC cutoff and the lower bound of the mid band
// for a search volume. CPC competition only applies to volumes in
// [100, 10000].
func cpcBracket(volume int) (high, midLow float64, ok bool) {
	switch {
	case volume < 100:
		return 0, 0, false
	case volume <= 999:
		return 3.0, 1.0, true
	case volume <= 1999:
		return 4.0, 1.5, true
	case volume <= 2999:
		return 5.0, 2.0, true
	case volume <= 3999:
		return 6.0, 2.5, true
	case volume <= 4999:
		return 8.0, 3.0, true
	case volume <= 6999:
		return 9.0, 3.5, true
	case volume <= 10000:
		return 12.0, 4.0, true
	default:
		return 0, 0, false
	}
}

// BasicSEO scores how prominently the product name appears on the page.
// Comparison squeezes whitespace so "Gluco Trust" matches "GlucoTrust".
func (s *Scorer) BasicSEO(page *pagefetch.Page, productName string) float64 {
	if page == nil || productName == "" {
		return 0
	}

	name := textnorm.Squeeze(productName)
	if name == "" {
		return 0
	}

	score := 0.0
	if strings.Contains(textnorm.Squeeze(page.Title), name) {
		score += 1.0
	}
	if strings.Contains(textnorm.Squeeze(page.MetaDescription), name) {
		score += 1.5
	}
	for _, header := range page.Headers {
		if strings.Contains(textnorm.Squeeze(header), name) {
			score += 1.0
		}
	}

	paragraphMatches := 0
	for _, para := range page.Paragraphs {
		if strings.Contains(textnorm.Squeeze(para), name) {
			paragraphMatches++
		}
	}
	score += math.Min(float64(paragraphMatches)*0.15, 3.0)

	return math.Min(round2(score), basicSEOCap)
}
