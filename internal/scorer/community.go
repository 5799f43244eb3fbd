package scorer

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"sync"

	"golang.org/x/sync/errgroup"

	"github.com/sells-group/offerscore/internal/catalog"
	"github.com/sells-group/offerscore/internal/textnorm"
	"github.com/sells-group/offerscore/pkg/reddit"
)

// communityPostLimit is how many posts are fetched per subreddit.
const communityPostLimit = 5

// communityConcurrency bounds parallel subreddit searches.
const communityConcurrency = 4

// ScoredPost is one community post with its engagement breakdown.
type ScoredPost struct {
	Subreddit  string `json:"subreddit"`
	Title      string `json:"title"`
	Votes      int    `json:"votes"`
	Comments   int    `json:"comments"`
	Mention    int    `json:"mention"`
	Engagement int    `json:"engagement"`
}

// CommunityResult is the community engagement outcome for one product.
// The score is informational and does not feed the total.
type CommunityResult struct {
	Score  float64      `json:"score"`
	Posts  []ScoredPost `json:"posts"`
	Errors []string     `json:"errors,omitempty"`
}

// CommunityEngagement searches the category's subreddits for the product and
// scores discussion activity. Each post earns a mention point when the title
// names the product and an engagement tier from its votes and comments; the
// score is the post total averaged over posts with engagement above one.
// Per-subreddit failures are collected, not fatal.
func (s *Scorer) CommunityEngagement(ctx context.Context, searcher reddit.Client, productName string, cat *catalog.Category) CommunityResult {
	name := textnorm.Normalize(productName)

	var mu sync.Mutex
	var posts []ScoredPost
	var errs []string

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(communityConcurrency)

	for _, sub := range cat.Subreddits() {
		g.Go(func() error {
			found, err := searcher.Search(ctx, sub, productName, communityPostLimit)
			mu.Lock()
			defer mu.Unlock()
			if err != nil {
				errs = append(errs, fmt.Sprintf("subreddit %s: %v", sub, err))
				return nil
			}
			for _, post := range found {
				scored := ScoredPost{
					Subreddit: post.Subreddit,
					Title:     post.Title,
					Votes:     post.Score,
					Comments:  post.NumComments,
				}
				if strings.Contains(textnorm.Normalize(post.Title), name) {
					scored.Mention = 1
				}
				activity := post.Score + post.NumComments
				switch {
				case activity > 50:
					scored.Engagement = 5
				case activity > 25:
					scored.Engagement = 3
				case activity > 10:
					scored.Engagement = 1
				}
				posts = append(posts, scored)
			}
			return nil
		})
	}
	_ = g.Wait() // workers report failures through errs

	total := 0
	valid := 0
	for _, post := range posts {
		total += post.Mention + post.Engagement
		if post.Engagement > 1 {
			valid++
		}
	}

	score := 0.0
	if valid > 0 {
		score = round2(float64(total) / float64(valid))
	}

	sort.SliceStable(posts, func(i, j int) bool {
		return posts[i].Engagement > posts[j].Engagement
	})

	return CommunityResult{Score: score, Posts: posts, Errors: errs}
}
