// Package scorer implements the per-criterion scoring functions. Every scorer
// is pure: it consumes already-fetched page content or caller-supplied keyword
// data and returns a score clamped to the criterion's cap.
package scorer

import (
	"math"
	"strings"

	"github.com/agext/levenshtein"

	"github.com/sells-group/offerscore/internal/catalog"
	"github.com/sells-group/offerscore/internal/textnorm"
)

// fuzzyThreshold is the minimum partial-ratio similarity (0-100) for a
// phrase to count as a fuzzy match.
const fuzzyThreshold = 80

var fuzzyParams = levenshtein.NewParams()

// Scorer evaluates products against the loaded dictionaries.
type Scorer struct {
	cat *catalog.Catalog
}

// New returns a Scorer backed by the given catalog.
func New(cat *catalog.Catalog) *Scorer {
	return &Scorer{cat: cat}
}

// Catalog exposes the backing category catalog.
func (s *Scorer) Catalog() *catalog.Catalog {
	return s.cat
}

func round2(x float64) float64 {
	return math.Round(x*100) / 100
}

// containsPhrase reports whether the normalized phrase occurs as a substring
// of text. The text must already be normalized by the caller.
func containsPhrase(text, phrase string) bool {
	return strings.Contains(text, textnorm.Normalize(phrase))
}

// fuzzyContains reports whether phrase matches text approximately, using a
// partial-ratio similarity over normalized forms.
func fuzzyContains(text, phrase string) bool {
	return partialRatio(textnorm.Normalize(phrase), text) >= fuzzyThreshold
}

// partialRatio computes the best similarity (0-100) of phrase against any
// same-length window of text. An exact substring scores 100. Windows are
// aligned to word boundaries, which keeps the scan linear in the text size.
func partialRatio(phrase, text string) float64 {
	if phrase == "" || text == "" {
		return 0
	}
	if strings.Contains(text, phrase) {
		return 100
	}

	words := strings.Fields(text)
	if len(words) == 0 {
		return 0
	}

	best := 0.0
	for i := range words {
		n := -1 // account for the joining space added per word
		end := len(words)
		for j := i; j < len(words); j++ {
			n += len(words[j]) + 1
			if n >= len(phrase) {
				end = j + 1
				break
			}
		}
		window := strings.Join(words[i:end], " ")
		sim := levenshtein.Similarity(window, phrase, fuzzyParams) * 100
		if sim > best {
			best = sim
		}
		if best >= 100 {
			break
		}
		if end == len(words) && n < len(phrase) {
			break // remaining windows only get shorter
		}
	}
	return best
}
