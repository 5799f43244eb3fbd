package scorer

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/sells-group/offerscore/internal/model"
)

func TestSocialPresence_NoSignals(t *testing.T) {
	s := loadScorer(t)
	assert.Equal(t, 0.0, s.SocialPresence(model.SocialSignals{}))
}

func TestSocialPresence_FullSignals(t *testing.T) {
	s := loadScorer(t)
	sig := model.SocialSignals{
		InstagramPresent:    true,
		FacebookPresent:     true,
		YouTubePresent:      true,
		InstagramRecentPost: true,
		FacebookRecentPost:  true,
		YouTubeRecentPost:   true,
		Engagement:          model.EngagementHigh,
	}
	// 1.5 presence + 0.9 recency + 1.5 engagement.
	assert.Equal(t, 3.9, s.SocialPresence(sig))
}

func TestSocialPresence_MediumEngagement(t *testing.T) {
	s := loadScorer(t)
	sig := model.SocialSignals{
		InstagramPresent: true,
		Engagement:       model.EngagementMedium,
	}
	assert.Equal(t, 1.3, s.SocialPresence(sig))
}
