package analytics

import (
	"math"
	"time"

	"github.com/javiermolinar/tempo/internal/dateutil"
	"github.com/javiermolinar/tempo/internal/habit"
)

// TrendPoint is one day of the cumulative trend series.
type TrendPoint struct {
	Date  time.Time
	Score float64
}

// PillarRadar sums pillar scores over the input window and normalizes each
// pillar against the prorated monthly target, returning a 0-100 percentage
// per pillar, capped at 100. Pillars with no activity report 0.
func PillarRadar(in Inputs, cfg ScoringConfig) map[habit.Pillar]float64 {
	pillarOf := make(map[string]habit.Pillar, len(in.Habits))
	for _, h := range in.Habits {
		pillarOf[h.ID] = h.Pillar
	}

	sums := make(map[habit.Pillar]float64, len(habit.Pillars))
	for key, intensity := range in.CheckIns {
		habitID, date, err := habit.ParseKey(key)
		if err != nil || !in.Range.Contains(date) {
			continue
		}
		if p, ok := pillarOf[habitID]; ok {
			sums[p] += cfg.IntensityPoints * float64(intensity)
		}
	}

	target := cfg.PillarMonthlyTarget / 30 * float64(in.Range.Days())
	out := make(map[habit.Pillar]float64, len(habit.Pillars))
	for _, p := range habit.Pillars {
		if target <= 0 {
			out[p] = 0
			continue
		}
		out[p] = math.Min(sums[p]/target*100, 100)
	}
	return out
}

// CumulativeTrend walks each day of the window in order, maintaining a
// momentum score: a day with pillar activity adds its total pillar score,
// a day without decays the running score by the configured daily factor.
// Consistency compounds, a single missed day only dents the score.
func CumulativeTrend(in Inputs, cfg ScoringConfig) []TrendPoint {
	pillarOf := make(map[string]habit.Pillar, len(in.Habits))
	for _, h := range in.Habits {
		pillarOf[h.ID] = h.Pillar
	}

	dayScores := make(map[string]float64)
	for key, intensity := range in.CheckIns {
		habitID, date, err := habit.ParseKey(key)
		if err != nil || !in.Range.Contains(date) {
			continue
		}
		if _, ok := pillarOf[habitID]; ok {
			dayScores[dateutil.Key(date)] += cfg.IntensityPoints * float64(intensity)
		}
	}

	points := make([]TrendPoint, 0, in.Range.Days())
	running := 0.0
	in.Range.EachDay(func(day time.Time) {
		if score := dayScores[dateutil.Key(day)]; score > 0 {
			running += score
		} else {
			running *= cfg.DailyDecay
		}
		points = append(points, TrendPoint{Date: day, Score: running})
	})
	return points
}

// DayOverDay derives the percentage change between the last two trend
// points, treating a zero yesterday as +100% when today is positive.
func DayOverDay(points []TrendPoint) float64 {
	if len(points) < 2 {
		return 0
	}
	prev := points[len(points)-2].Score
	cur := points[len(points)-1].Score
	return periodDelta(prev, cur)
}
