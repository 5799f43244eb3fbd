package main

import (
	"time"

	"github.com/sells-group/offerscore/internal/catalog"
	"github.com/sells-group/offerscore/internal/narrative"
	"github.com/sells-group/offerscore/internal/pipeline"
	"github.com/sells-group/offerscore/internal/scorer"
	"github.com/sells-group/offerscore/pkg/pagefetch"
	"github.com/sells-group/offerscore/pkg/reddit"
	"github.com/sells-group/offerscore/pkg/trends"
)

// buildPipeline wires the evaluation pipeline from global config. The trends
// client is only built when a base URL is configured, and the reddit client
// only when enabled; the pipeline tolerates both being nil.
func buildPipeline() (*pipeline.Pipeline, error) {
	cat, err := catalog.Load()
	if err != nil {
		return nil, err
	}

	fetcher := pagefetch.NewClient(
		pagefetch.WithTimeout(time.Duration(cfg.Fetch.TimeoutSecs)*time.Second),
		pagefetch.WithUserAgent(cfg.Fetch.UserAgent),
		pagefetch.WithRateLimit(cfg.Fetch.RateLimit),
		pagefetch.WithCacheSize(cfg.Fetch.CacheSize),
	)

	var trendsClient trends.Client
	if cfg.Trends.BaseURL != "" {
		trendsClient = trends.NewClient(cfg.Trends.BaseURL,
			trends.WithGeo(cfg.Trends.Geo),
			trends.WithRateLimit(cfg.Trends.RateLimit),
		)
	}

	var redditClient reddit.Client
	if cfg.Reddit.Enabled {
		redditClient = reddit.NewClient(
			reddit.WithBaseURL(cfg.Reddit.BaseURL),
			reddit.WithUserAgent(cfg.Reddit.UserAgent),
			reddit.WithRateLimit(cfg.Reddit.RateLimit),
		)
	}

	return pipeline.New(cfg, fetcher, trendsClient, redditClient,
		scorer.New(cat), narrative.New()), nil
}
