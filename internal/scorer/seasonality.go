package scorer

import (
	"fmt"
	"math"
	"sort"
	"strings"
	"time"

	"github.com/sells-group/offerscore/internal/model"
)

// Seasonality scores produced for rising, stable, and falling interest.
const (
	seasonalityRising  = 2.0
	seasonalityStable  = 1.0
	seasonalityFalling = 0.5
)

// Seasonality scores recent search-interest momentum from a 12-month weekly
// interest series. Monthly means more than one standard deviation from the
// overall mean mark high and low seasons; the last three raw samples against
// the three before them decide the trend. An empty series scores zero.
func (s *Scorer) Seasonality(series []model.InterestPoint) (float64, string) {
	if len(series) == 0 {
		return 0, "No seasonality data found for the product."
	}

	// Monthly means.
	sums := map[time.Month]float64{}
	counts := map[time.Month]int{}
	for _, pt := range series {
		m := pt.Date.Month()
		sums[m] += pt.Value
		counts[m]++
	}
	var months []time.Month
	for m := range sums {
		months = append(months, m)
	}
	sort.Slice(months, func(i, j int) bool { return months[i] < months[j] })

	means := make([]float64, len(months))
	overall := 0.0
	for i, m := range months {
		means[i] = sums[m] / float64(counts[m])
		overall += means[i]
	}
	overall /= float64(len(means))

	stddev := 0.0
	if len(means) > 1 {
		for _, v := range means {
			stddev += (v - overall) * (v - overall)
		}
		stddev = math.Sqrt(stddev / float64(len(means)-1))
	}

	var highMonths, lowMonths []time.Month
	for i, m := range months {
		if means[i] > overall+stddev {
			highMonths = append(highMonths, m)
		} else if means[i] < overall-stddev {
			lowMonths = append(lowMonths, m)
		}
	}

	// Recent trend: last three raw samples against the three before them.
	recent := tailMean(series, 0, 3)
	prior := tailMean(series, 3, 6)

	latestMonth := series[len(series)-1].Date.Month()

	var score float64
	var trend string
	switch {
	case recent > prior:
		score = seasonalityRising
		var upcoming []time.Month
		for _, m := range highMonths {
			if m > latestMonth {
				upcoming = append(upcoming, m)
			}
		}
		switch {
		case len(upcoming) > 0:
			trend = fmt.Sprintf("This product is trending up and should stay that way for %d more months (%s).",
				len(upcoming), monthNames(upcoming, 2))
		case len(highMonths) > 0:
			trend = "This product is trending up and should stay that way for a while."
		default:
			trend = "This product is trending up, but no high-season months are expected soon."
		}
	case recent < prior:
		score = seasonalityFalling
		if len(highMonths) > 0 {
			trend = fmt.Sprintf("This product is in a dip right now, but tends to rise in: %s.",
				monthNames(highMonths, 2))
		} else {
			trend = "This product is in a dip and interest should stay low over the coming months."
		}
	default:
		score = seasonalityStable
		trend = "Interest in the product is stable, with no major seasonal swings expected."
	}

	detail := fmt.Sprintf("Based on the last 12 months, the high-season months were: %s. The low-season months were: %s.",
		monthNamesOrNone(highMonths), monthNamesOrNone(lowMonths))

	return score, trend + " " + detail
}

// tailMean averages the raw values in series[len-to : len-from], counting
// from the end.
func tailMean(series []model.InterestPoint, from, to int) float64 {
	n := len(series)
	lo := n - to
	hi := n - from
	if lo < 0 {
		lo = 0
	}
	if hi <= lo {
		return 0
	}
	sum := 0.0
	for _, pt := range series[lo:hi] {
		sum += pt.Value
	}
	return sum / float64(hi-lo)
}

func monthNames(months []time.Month, limit int) string {
	if limit > 0 && len(months) > limit {
		months = months[:limit]
	}
	names := make([]string, len(months))
	for i, m := range months {
		names[i] = m.String()
	}
	return strings.Join(names, ", ")
}

func monthNamesOrNone(months []time.Month) string {
	if len(months) == 0 {
		return "none in particular"
	}
	return monthNames(months, 0)
}
