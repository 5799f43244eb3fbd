// Package model defines the product records flowing through the scoring
// pipeline: caller-supplied inputs and the fully computed per-product report.
package model

import "time"

// EngagementLevel is the caller-reported social engagement tier.
type EngagementLevel string

const (
	EngagementLow    EngagementLevel = "low"
	EngagementMedium EngagementLevel = "medium"
	EngagementHigh   EngagementLevel = "high"
)

// Keyword is a single caller-supplied search term with its market data.
type Keyword struct {
	Term   string  `json:"term" yaml:"term"`
	Volume int     `json:"volume" yaml:"volume"`
	CPC    float64 `json:"cpc" yaml:"cpc"`
}

// SocialSignals holds the caller-reported social media flags per platform.
type SocialSignals struct {
	InstagramPresent bool `json:"instagram_present" yaml:"instagram_present"`
	FacebookPresent  bool `json:"facebook_present" yaml:"facebook_present"`
	YouTubePresent   bool `json:"youtube_present" yaml:"youtube_present"`

	InstagramRecentPost bool `json:"instagram_recent_post" yaml:"instagram_recent_post"`
	FacebookRecentPost  bool `json:"facebook_recent_post" yaml:"facebook_recent_post"`
	YouTubeRecentPost   bool `json:"youtube_recent_post" yaml:"youtube_recent_post"`

	Engagement EngagementLevel `json:"engagement" yaml:"engagement"`
}

// ProductInput is one candidate product submitted for evaluation.
type ProductInput struct {
	Name     string    `json:"name" yaml:"name"`
	URL      string    `json:"url" yaml:"url"`
	Category string    `json:"category" yaml:"category"`
	Keywords []Keyword `json:"keywords" yaml:"keywords"`

	PaidTrafficAllowed  bool `json:"paid_traffic_allowed" yaml:"paid_traffic_allowed"`
	FunnelBottomAllowed bool `json:"funnel_bottom_allowed" yaml:"funnel_bottom_allowed"`

	Social SocialSignals `json:"social" yaml:"social"`
}

// SEODetail breaks the SEO criterion into its additive components.
type SEODetail struct {
	Permission     float64  `json:"permission"`
	SearchVolume   float64  `json:"search_volume"`
	CPCCompetition float64  `json:"cpc_competition"`
	KeywordIntent  float64  `json:"keyword_intent"`
	BasicSEO       float64  `json:"basic_seo"`
	CPCAlerts      []string `json:"cpc_alerts,omitempty"`
}

// Report is the fully computed record for one product. Scores are immutable
// once set; every criterion field is bounded by its documented cap.
type Report struct {
	Name     string `json:"name"`
	URL      string `json:"url"`
	Category string `json:"category"` // canonical category key

	PageQuality    float64 `json:"page_quality"`
	Copywriting    float64 `json:"copywriting"`
	BenefitsOffers float64 `json:"benefits_offers"`
	PriceValue     float64 `json:"price_value"`
	PriceRange     float64 `json:"price_range"`
	Seasonality    float64 `json:"seasonality"`
	SEOKeywords    float64 `json:"seo_keywords"`
	CTR            float64 `json:"ctr"`
	SocialPresence float64 `json:"social_presence"`

	// TotalScore is the plain sum of the nine criterion scores and drives
	// ranking. FinalGrade applies the criterion weights and rescales to 0-10.
	TotalScore float64 `json:"total_score"`
	FinalGrade float64 `json:"final_grade"`

	SEODetail          SEODetail `json:"seo_detail"`
	PriceValueFeedback []string  `json:"price_value_feedback,omitempty"`
	SeasonalityNote    string    `json:"seasonality_note,omitempty"`
	CTRNote            string    `json:"ctr_note,omitempty"`

	// Community engagement is informational and excluded from TotalScore.
	CommunityEngagement float64  `json:"community_engagement"`
	CommunityErrors     []string `json:"community_errors,omitempty"`

	Keywords []Keyword `json:"keywords"`
	CPCs     []float64 `json:"cpcs,omitempty"` // positive CPC values, input order
	AvgCPC   float64   `json:"avg_cpc"`

	PaidTrafficAllowed  bool `json:"paid_traffic_allowed"`
	FunnelBottomAllowed bool `json:"funnel_bottom_allowed"`
}

// InterestPoint is one sample of a search-interest time series.
type InterestPoint struct {
	Date  time.Time `json:"date"`
	Value float64   `json:"value"`
}
