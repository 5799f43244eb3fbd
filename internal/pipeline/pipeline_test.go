package pipeline

import (
	"context"
	"fmt"
	"math/rand"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/sells-group/offerscore/internal/catalog"
	"github.com/sells-group/offerscore/internal/config"
	"github.com/sells-group/offerscore/internal/model"
	"github.com/sells-group/offerscore/internal/narrative"
	"github.com/sells-group/offerscore/internal/scorer"
	"github.com/sells-group/offerscore/pkg/pagefetch"
	"github.com/sells-group/offerscore/pkg/reddit"
	"github.com/sells-group/offerscore/pkg/trends"
)

func newTestPipeline(t *testing.T, fetcher pagefetch.Client, tr trends.Client, rd reddit.Client) *Pipeline {
	t.Helper()

	cat, err := catalog.Load()
	require.NoError(t, err)

	cfg := &config.Config{
		Evaluate: config.EvaluateConfig{MaxProducts: 5, MaxConcurrentProducts: 3},
	}
	gen := narrative.New(narrative.WithRand(rand.New(rand.NewSource(1))))
	return New(cfg, fetcher, tr, rd, scorer.New(cat), gen)
}

func samplePage(url string) *pagefetch.Page {
	return &pagefetch.Page{
		URL:             url,
		Title:           "GlucoTrust: natural blood sugar support",
		MetaDescription: "Support healthy blood sugar with GlucoTrust.",
		H1:              "GlucoTrust Official",
		Headers:         []string{"Why choose GlucoTrust", "Customer reviews"},
		Paragraphs: []string{
			"Thousands of verified reviews and testimonials from real customers.",
			"Try it risk free with our 180-day money-back guarantee.",
			"One-time price of $69 per bottle with free shipping included.",
		},
		Text: "GlucoTrust reviews testimonials 180-day money-back guarantee " +
			"price $69 free shipping buy now limited time offer natural " +
			"ingredients support healthy blood sugar energy boost",
		HasViewportMeta:      true,
		AnchorCount:          4,
		HasColorStyledAnchor: true,
		HasVideo:             true,
	}
}

// monthlyPoints returns one interest sample per month, oldest first.
func monthlyPoints(values []float64) []trends.Point {
	start := time.Date(2025, time.July, 1, 0, 0, 0, 0, time.UTC)
	points := make([]trends.Point, len(values))
	for i, v := range values {
		points[i] = trends.Point{Date: start.AddDate(0, i, 0), Value: v}
	}
	return points
}

func healthInput(name string) model.ProductInput {
	return model.ProductInput{
		Name:     name,
		URL:      "https://example.com/" + name,
		Category: "health",
		Keywords: []model.Keyword{
			{Term: "buy " + name, Volume: 6000, CPC: 2.5},
			{Term: name + " reviews", Volume: 2000, CPC: 1.5},
		},
		PaidTrafficAllowed:  true,
		FunnelBottomAllowed: true,
		Social: model.SocialSignals{
			InstagramPresent:    true,
			InstagramRecentPost: true,
			Engagement:          model.EngagementMedium,
		},
	}
}

func TestEvaluate_MissingName(t *testing.T) {
	p := newTestPipeline(t, &mockFetcher{}, nil, nil)

	_, err := p.Evaluate(context.Background(), model.ProductInput{URL: "https://example.com"})
	assert.ErrorIs(t, err, ErrMissingName)
}

func TestEvaluate_UnknownCategory(t *testing.T) {
	p := newTestPipeline(t, &mockFetcher{}, nil, nil)

	in := healthInput("GlucoTrust")
	in.Category = "underwater basket weaving"
	_, err := p.Evaluate(context.Background(), in)
	assert.ErrorIs(t, err, ErrUnknownCategory)
}

func TestEvaluate_FullProduct(t *testing.T) {
	in := healthInput("GlucoTrust")

	fetcher := &mockFetcher{}
	fetcher.On("Fetch", mock.Anything, in.URL).Return(samplePage(in.URL), nil)

	tr := &mockTrends{}
	tr.On("InterestOverTime", mock.Anything, "GlucoTrust").
		Return(monthlyPoints([]float64{80, 80, 10, 10, 10, 10, 10, 10, 10, 10, 10, 80}), nil)

	rd := &mockReddit{}
	rd.On("Search", mock.Anything, mock.Anything, mock.Anything, mock.Anything).
		Return([]reddit.Post{
			{Title: "GlucoTrust worked for me", Score: 40, NumComments: 20},
		}, nil)

	p := newTestPipeline(t, fetcher, tr, rd)
	report, err := p.Evaluate(context.Background(), in)
	require.NoError(t, err)

	assert.Equal(t, "Health and Wellness", report.Category)
	assert.Equal(t, 2.0, report.AvgCPC)
	assert.Equal(t, []float64{2.5, 1.5}, report.CPCs)

	assert.Greater(t, report.PageQuality, 0.0)
	assert.LessOrEqual(t, report.PageQuality, 20.0)
	assert.Greater(t, report.Copywriting, 0.0)
	assert.Greater(t, report.SEOKeywords, 0.0)
	assert.Greater(t, report.CTR, 0.0)
	assert.NotEmpty(t, report.CTRNote)
	assert.NotEmpty(t, report.SeasonalityNote)

	sum := report.PageQuality + report.Copywriting + report.BenefitsOffers +
		report.PriceValue + report.PriceRange + report.Seasonality +
		report.SEOKeywords + report.CTR + report.SocialPresence
	assert.InDelta(t, sum, report.TotalScore, 0.01)

	assert.GreaterOrEqual(t, report.FinalGrade, 0.0)
	assert.LessOrEqual(t, report.FinalGrade, 10.0)

	// Community engagement stays out of the total.
	assert.Greater(t, report.CommunityEngagement, 0.0)
	assert.InDelta(t, sum, report.TotalScore, 0.01)

	fetcher.AssertExpectations(t)
	tr.AssertExpectations(t)
}

func TestEvaluate_NoKeywordsExcluded(t *testing.T) {
	p := newTestPipeline(t, &mockFetcher{}, nil, nil)

	in := healthInput("GlucoTrust")
	in.Keywords = nil
	_, err := p.Evaluate(context.Background(), in)
	assert.ErrorIs(t, err, ErrNoKeywords)

	// Blank terms are dropped before the check, so a list of them is empty too.
	in.Keywords = []model.Keyword{{Term: "   "}, {Term: ""}}
	_, err = p.Evaluate(context.Background(), in)
	assert.ErrorIs(t, err, ErrNoKeywords)
}

func TestEvaluateBatch_SkipsNoKeywordProduct(t *testing.T) {
	inputs := []model.ProductInput{healthInput("Alpha"), healthInput("Bravo")}
	inputs[1].Keywords = nil

	fetcher := &mockFetcher{}
	fetcher.On("Fetch", mock.Anything, mock.Anything).Return(samplePage("https://example.com"), nil)

	p := newTestPipeline(t, fetcher, nil, nil)
	result, err := p.EvaluateBatch(context.Background(), inputs)
	require.NoError(t, err)

	require.Len(t, result.Reports, 1)
	assert.Equal(t, "Alpha", result.Reports[0].Name)
	require.Len(t, result.Skipped, 1)
	assert.Equal(t, "Bravo", result.Skipped[0].Name)
}

func TestEvaluate_FetchFailureScoresPageCriteriaZero(t *testing.T) {
	in := healthInput("GlucoTrust")

	fetcher := &mockFetcher{}
	fetcher.On("Fetch", mock.Anything, in.URL).Return(nil, fmt.Errorf("connection refused"))

	p := newTestPipeline(t, fetcher, nil, nil)
	report, err := p.Evaluate(context.Background(), in)
	require.NoError(t, err)

	assert.Zero(t, report.PageQuality)
	assert.Zero(t, report.Copywriting)
	assert.Zero(t, report.BenefitsOffers)
	assert.Zero(t, report.PriceValue)
	assert.NotEmpty(t, report.PriceValueFeedback)
	// Keyword-driven criteria still score.
	assert.Greater(t, report.SEOKeywords, 0.0)
}

func TestEvaluate_InterestRetryWithoutSpaces(t *testing.T) {
	in := healthInput("Gluco Trust")

	fetcher := &mockFetcher{}
	fetcher.On("Fetch", mock.Anything, in.URL).Return(samplePage(in.URL), nil)

	tr := &mockTrends{}
	tr.On("InterestOverTime", mock.Anything, "Gluco Trust").Return([]trends.Point{}, nil)
	tr.On("InterestOverTime", mock.Anything, "GlucoTrust").
		Return(monthlyPoints([]float64{10, 10, 10, 10, 10, 10, 10, 10, 10, 10, 10, 10}), nil)

	p := newTestPipeline(t, fetcher, tr, nil)
	report, err := p.Evaluate(context.Background(), in)
	require.NoError(t, err)

	assert.Equal(t, 1.0, report.Seasonality)
	tr.AssertExpectations(t)
}

func TestEvaluate_NilOptionalClients(t *testing.T) {
	in := healthInput("GlucoTrust")

	fetcher := &mockFetcher{}
	fetcher.On("Fetch", mock.Anything, in.URL).Return(samplePage(in.URL), nil)

	p := newTestPipeline(t, fetcher, nil, nil)
	report, err := p.Evaluate(context.Background(), in)
	require.NoError(t, err)

	assert.Zero(t, report.Seasonality)
	assert.Equal(t, "No seasonality data found for the product.", report.SeasonalityNote)
	assert.Zero(t, report.CommunityEngagement)
	assert.Contains(t, report.CommunityErrors, "community engagement lookup unavailable")
}

func TestEvaluateBatch_RanksAndSkips(t *testing.T) {
	inputs := []model.ProductInput{
		healthInput("Alpha"),
		healthInput("Bravo"),
		healthInput("Charlie"),
		healthInput("Delta"),
	}
	inputs[1].Category = "not a real category"

	fetcher := &mockFetcher{}
	fetcher.On("Fetch", mock.Anything, mock.Anything).Return(samplePage("https://example.com"), nil)

	p := newTestPipeline(t, fetcher, nil, nil)
	result, err := p.EvaluateBatch(context.Background(), inputs)
	require.NoError(t, err)

	require.Len(t, result.Reports, 3)
	require.Len(t, result.Skipped, 1)
	assert.Equal(t, "Bravo", result.Skipped[0].Name)

	for i := 1; i < len(result.Reports); i++ {
		assert.GreaterOrEqual(t, result.Reports[i-1].TotalScore, result.Reports[i].TotalScore)
	}

	assert.Len(t, result.CostBenefit, 3)
	assert.Len(t, result.Conclusion, 3)
	assert.NotEmpty(t, result.TotalScore)
}

func TestEvaluateBatch_TruncatesOverLimit(t *testing.T) {
	var inputs []model.ProductInput
	for _, name := range []string{"P1", "P2", "P3", "P4", "P5", "P6", "P7"} {
		inputs = append(inputs, healthInput(name))
	}

	fetcher := &mockFetcher{}
	fetcher.On("Fetch", mock.Anything, mock.Anything).Return(samplePage("https://example.com"), nil)

	p := newTestPipeline(t, fetcher, nil, nil)
	result, err := p.EvaluateBatch(context.Background(), inputs)
	require.NoError(t, err)

	assert.Len(t, result.Reports, 5)
	require.Len(t, result.Skipped, 2)
	assert.Equal(t, "exceeds the product limit per batch", result.Skipped[0].Reason)
}

func TestEvaluateBatch_Empty(t *testing.T) {
	p := newTestPipeline(t, &mockFetcher{}, nil, nil)

	result, err := p.EvaluateBatch(context.Background(), nil)
	require.NoError(t, err)
	assert.Empty(t, result.Reports)
	assert.Empty(t, result.CostBenefit)
}
