package scorer

import (
	"math"

	"github.com/sells-group/offerscore/internal/model"
)

// socialCap bounds the social presence score.
const socialCap = 4.0

// SocialPresence scores the caller-reported social media footprint: half a
// point per platform present, 0.3 per platform with recent posts, and an
// engagement bonus.
func (s *Scorer) SocialPresence(sig model.SocialSignals) float64 {
	score := 0.0

	for _, present := range []bool{sig.InstagramPresent, sig.FacebookPresent, sig.YouTubePresent} {
		if present {
			score += 0.5
		}
	}
	for _, recent := range []bool{sig.InstagramRecentPost, sig.FacebookRecentPost, sig.YouTubeRecentPost} {
		if recent {
			score += 0.3
		}
	}

	switch sig.Engagement {
	case model.EngagementMedium:
		score += 0.8
	case model.EngagementHigh:
		score += 1.5
	}

	return round2(math.Min(score, socialCap))
}
