package trends

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInterestOverTime_ParsesSeries(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/interest", r.URL.Path)
		assert.Equal(t, "GlucoTrust", r.URL.Query().Get("term"))
		assert.Equal(t, "today 12-m", r.URL.Query().Get("timeframe"))
		assert.Equal(t, "US", r.URL.Query().Get("geo"))

		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"points":[
			{"date":"2026-07-05T00:00:00Z","value":42},
			{"date":"2026-07-12T00:00:00Z","value":58}
		]}`))
	}))
	defer srv.Close()

	client := NewClient(srv.URL)
	points, err := client.InterestOverTime(context.Background(), "GlucoTrust")
	require.NoError(t, err)
	require.Len(t, points, 2)
	assert.Equal(t, 42.0, points[0].Value)
	assert.Equal(t, 58.0, points[1].Value)
}

func TestInterestOverTime_CachesSeries(t *testing.T) {
	var hits int
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits++
		w.Write([]byte(`{"points":[{"date":"2026-07-05T00:00:00Z","value":10}]}`))
	}))
	defer srv.Close()

	client := NewClient(srv.URL)
	_, err := client.InterestOverTime(context.Background(), "GlucoTrust")
	require.NoError(t, err)
	_, err = client.InterestOverTime(context.Background(), "GlucoTrust")
	require.NoError(t, err)
	assert.Equal(t, 1, hits)
}

func TestInterestOverTime_ServerError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer srv.Close()

	client := NewClient(srv.URL)
	_, err := client.InterestOverTime(context.Background(), "GlucoTrust")
	assert.Error(t, err)
}
