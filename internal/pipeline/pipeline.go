// Package pipeline orchestrates the product evaluation workflow: page
// fetching, criterion scoring, ranking, and narrative generation.
package pipeline

import (
	"github.com/rotisserie/eris"

	"github.com/sells-group/offerscore/internal/config"
	"github.com/sells-group/offerscore/internal/narrative"
	"github.com/sells-group/offerscore/internal/scorer"
	"github.com/sells-group/offerscore/pkg/pagefetch"
	"github.com/sells-group/offerscore/pkg/reddit"
	"github.com/sells-group/offerscore/pkg/trends"
)

// Evaluation errors that exclude a product from the results.
var (
	ErrMissingName     = eris.New("pipeline: product name is required")
	ErrUnknownCategory = eris.New("pipeline: unknown category")
	ErrNoKeywords      = eris.New("pipeline: no usable keywords")
)

// Pipeline evaluates products end to end.
type Pipeline struct {
	cfg       *config.Config
	fetcher   pagefetch.Client
	trends    trends.Client
	reddit    reddit.Client
	scorer    *scorer.Scorer
	narrative *narrative.Generator
}

// New creates a Pipeline. The trends and reddit clients may be nil; the
// corresponding criteria then score zero with an explanatory note.
func New(
	cfg *config.Config,
	fetcher pagefetch.Client,
	trendsClient trends.Client,
	redditClient reddit.Client,
	sc *scorer.Scorer,
	gen *narrative.Generator,
) *Pipeline {
	return &Pipeline{
		cfg:       cfg,
		fetcher:   fetcher,
		trends:    trendsClient,
		reddit:    redditClient,
		scorer:    sc,
		narrative: gen,
	}
}
