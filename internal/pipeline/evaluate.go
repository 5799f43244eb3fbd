package pipeline

import (
	"context"
	"math"
	"strings"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/sells-group/offerscore/internal/model"
	"github.com/sells-group/offerscore/internal/scorer"
	"github.com/sells-group/offerscore/pkg/pagefetch"
	"github.com/sells-group/offerscore/pkg/trends"
)

// Evaluate scores a single product across every criterion and returns its
// report. A missing name, unresolvable category, or empty keyword list
// excludes the product.
func (p *Pipeline) Evaluate(ctx context.Context, in model.ProductInput) (*model.Report, error) {
	log := zap.L().With(zap.String("product", in.Name), zap.String("url", in.URL))

	if strings.TrimSpace(in.Name) == "" {
		return nil, ErrMissingName
	}

	cat, ok := p.scorer.Catalog().Resolve(in.Category)
	if !ok {
		log.Warn("pipeline: category not recognized", zap.String("category", in.Category))
		return nil, ErrUnknownCategory
	}

	in.Keywords = cleanKeywords(in.Keywords)
	if len(in.Keywords) == 0 {
		log.Warn("pipeline: no usable keywords")
		return nil, ErrNoKeywords
	}

	var cpcs []float64
	for _, kw := range in.Keywords {
		if kw.CPC > 0 {
			cpcs = append(cpcs, kw.CPC)
		}
	}
	avgCPC := 0.0
	if len(cpcs) > 0 {
		sum := 0.0
		for _, c := range cpcs {
			sum += c
		}
		avgCPC = round2(sum / float64(len(cpcs)))
	}

	// Fetch the page, interest series, and community posts concurrently.
	var (
		page      *pagefetch.Page
		series    []model.InterestPoint
		community scorer.CommunityResult
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		fetched, err := p.fetcher.Fetch(gctx, in.URL)
		if err != nil {
			log.Warn("pipeline: page fetch failed", zap.Error(err))
			return nil
		}
		page = fetched
		return nil
	})
	g.Go(func() error {
		series = p.fetchInterest(gctx, in.Name, log)
		return nil
	})
	g.Go(func() error {
		if p.reddit == nil {
			community.Errors = []string{"community engagement lookup unavailable"}
			return nil
		}
		community = p.scorer.CommunityEngagement(gctx, p.reddit, in.Name, cat)
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	report := &model.Report{
		Name:                in.Name,
		URL:                 in.URL,
		Category:            cat.Display,
		Keywords:            in.Keywords,
		CPCs:                cpcs,
		AvgCPC:              avgCPC,
		PaidTrafficAllowed:  in.PaidTrafficAllowed,
		FunnelBottomAllowed: in.FunnelBottomAllowed,
	}

	report.PageQuality = p.scorer.PageQuality(page)
	report.Copywriting = p.scorer.Copywriting(page)
	report.BenefitsOffers = p.scorer.BenefitsOffers(page)
	report.PriceValue, report.PriceValueFeedback = p.scorer.PriceValue(page)
	report.PriceRange = p.scorer.PriceRange(page)
	report.Seasonality, report.SeasonalityNote = p.scorer.Seasonality(series)
	report.SEOKeywords, report.SEODetail = p.scorer.SEOKeywords(&in, cat, page)

	report.CTR = p.scorer.WeightedCTR(&in, cat, report.SEODetail.BasicSEO)
	report.CTRNote = scorer.DescribeCTR(report.CTR)

	report.SocialPresence = p.scorer.SocialPresence(in.Social)
	report.CommunityEngagement = community.Score
	report.CommunityErrors = community.Errors

	report.TotalScore = round2(report.PageQuality +
		report.Copywriting +
		report.BenefitsOffers +
		report.PriceValue +
		report.PriceRange +
		report.Seasonality +
		report.SEOKeywords +
		report.CTR +
		report.SocialPresence)
	report.FinalGrade = p.scorer.FinalGrade(report)

	log.Info("pipeline: product evaluated",
		zap.Float64("total_score", report.TotalScore),
		zap.Float64("final_grade", report.FinalGrade),
	)
	return report, nil
}

// fetchInterest retrieves the seasonality series, retrying the term without
// spaces when the first lookup comes back empty.
func (p *Pipeline) fetchInterest(ctx context.Context, name string, log *zap.Logger) []model.InterestPoint {
	if p.trends == nil {
		return nil
	}

	points, err := p.trends.InterestOverTime(ctx, name)
	if err != nil {
		log.Warn("pipeline: interest lookup failed", zap.Error(err))
		return nil
	}
	if len(points) == 0 {
		squeezed := strings.ReplaceAll(name, " ", "")
		if squeezed != name {
			points, err = p.trends.InterestOverTime(ctx, squeezed)
			if err != nil {
				log.Warn("pipeline: interest retry failed", zap.Error(err))
				return nil
			}
		}
	}
	return toInterestPoints(points)
}

func toInterestPoints(points []trends.Point) []model.InterestPoint {
	out := make([]model.InterestPoint, len(points))
	for i, pt := range points {
		out[i] = model.InterestPoint{Date: pt.Date, Value: pt.Value}
	}
	return out
}

func round2(x float64) float64 {
	return math.Round(x*100) / 100
}

// cleanKeywords drops entries without a term, keeping the rest.
func cleanKeywords(keywords []model.Keyword) []model.Keyword {
	out := keywords[:0:0]
	for _, kw := range keywords {
		kw.Term = strings.TrimSpace(kw.Term)
		if kw.Term == "" {
			continue
		}
		out = append(out, kw)
	}
	return out
}
