package scorer

import (
	"math"

	"github.com/sells-group/offerscore/internal/catalog"
	"github.com/sells-group/offerscore/internal/textnorm"
	"github.com/sells-group/offerscore/pkg/pagefetch"
)

// copywritingCap bounds the copywriting score.
const copywritingCap = 20.0

// Copywriting scores persuasive-writing signals: title themes, pain and
// desire language, benefits, calls to action, social proof, guarantees,
// scarcity, narrative hooks, and positive emotion. A nil page scores zero.
func (s *Scorer) Copywriting(page *pagefetch.Page) float64 {
	if page == nil {
		return 0
	}

	title := textnorm.Normalize(page.Title)
	text := textnorm.Normalize(page.Text)
	cw := &s.cat.Copywriting

	score := scoreTitleThemes(title, cw.TitleThemes)
	score += scorePhraseGroups(text, cw.PainDesire, 0.5, 4)
	score += scoreGroupPresence(text, cw.ExplicitBenefits, 1)
	score += math.Min(scoreGroupPresence(text, cw.CTA, 1), 2)
	score += scoreFlatList(text, cw.SocialProof, 0.5, 2)
	score += scoreFlatList(text, cw.Guarantee, 0.5, 2)
	score += scoreFlatList(text, cw.Scarcity, 0.5, 2)
	score += scoreFlatList(text, cw.Narrative, 0.1, 0.5)
	score += scoreFlatList(text, cw.PositiveEmotion, 0.5, 3)

	return round2(math.Min(score, copywritingCap))
}

// scoreTitleThemes awards one point per theme whose vocabulary appears in the
// title, up to four points.
func scoreTitleThemes(title string, themes []catalog.PhraseGroup) float64 {
	score := 0.0
	for _, theme := range themes {
		for _, phrase := range theme.Phrases {
			if containsPhrase(title, phrase) {
				score++
				break
			}
		}
		if score >= 4 {
			break
		}
	}
	return math.Min(score, 4)
}

// scorePhraseGroups awards per-phrase points across all groups, capped.
func scorePhraseGroups(text string, groups []catalog.PhraseGroup, per, limit float64) float64 {
	score := 0.0
	for _, group := range groups {
		for _, phrase := range group.Phrases {
			if containsPhrase(text, phrase) {
				score += per
				if score >= limit {
					return limit
				}
			}
		}
	}
	return score
}

// scoreGroupPresence awards half a point per group with at least one match,
// capped.
func scoreGroupPresence(text string, groups []catalog.PhraseGroup, limit float64) float64 {
	score := 0.0
	for _, group := range groups {
		for _, phrase := range group.Phrases {
			if containsPhrase(text, phrase) {
				score += 0.5
				break
			}
		}
		if score >= limit {
			return limit
		}
	}
	return score
}

// scoreFlatList awards per-phrase points from a flat list, capped.
func scoreFlatList(text string, phrases []string, per, limit float64) float64 {
	score := 0.0
	for _, phrase := range phrases {
		if containsPhrase(text, phrase) {
			score += per
			if score >= limit {
				return limit
			}
		}
	}
	return score
}
