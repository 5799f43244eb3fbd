package pipeline

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/sells-group/offerscore/pkg/pagefetch"
	"github.com/sells-group/offerscore/pkg/reddit"
	"github.com/sells-group/offerscore/pkg/trends"
)

// --- Page Fetcher Mock ---

type mockFetcher struct {
	mock.Mock
}

func (m *mockFetcher) Fetch(ctx context.Context, url string) (*pagefetch.Page, error) {
	args := m.Called(ctx, url)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*pagefetch.Page), args.Error(1)
}

// --- Trends Mock ---

type mockTrends struct {
	mock.Mock
}

func (m *mockTrends) InterestOverTime(ctx context.Context, term string) ([]trends.Point, error) {
	args := m.Called(ctx, term)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]trends.Point), args.Error(1)
}

// --- Reddit Mock ---

type mockReddit struct {
	mock.Mock
}

func (m *mockReddit) Search(ctx context.Context, subreddit, query string, limit int) ([]reddit.Post, error) {
	args := m.Called(ctx, subreddit, query, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]reddit.Post), args.Error(1)
}
