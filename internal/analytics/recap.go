// Package analytics derives recap statistics and trend series from habit
// check-ins and scheduled block durations over rolling date ranges.
//
// Every function here is a pure function of its inputs: the reporting range
// already encodes "today", so callers inject the clock by constructing the
// range and the results are fully deterministic.
package analytics

import (
	"math"
	"sort"
	"time"

	"github.com/javiermolinar/tempo/internal/block"
	"github.com/javiermolinar/tempo/internal/dateutil"
	"github.com/javiermolinar/tempo/internal/habit"
	"github.com/javiermolinar/tempo/internal/slot"
)

// ScoringConfig names the scoring policy constants so they can be tuned and
// tested independently of the aggregation algorithm.
type ScoringConfig struct {
	// DailyDecay multiplies the cumulative trend score on inactive days.
	DailyDecay float64
	// IntensityPoints is the pillar score awarded per check-in intensity unit.
	IntensityPoints float64
	// PillarMonthlyTarget is the per-pillar score target over a 30-day month,
	// prorated to the window length when normalizing the radar.
	PillarMonthlyTarget float64
	// TargetHoursPerDay is the scheduled-hours goal backing the time score.
	TargetHoursPerDay float64
	// TimeWeight and HabitWeight blend the two ratios into the discipline
	// score; they should sum to 1.
	TimeWeight  float64
	HabitWeight float64
}

// DefaultScoring returns the stock scoring policy.
func DefaultScoring() ScoringConfig {
	return ScoringConfig{
		DailyDecay:          0.99,
		IntensityPoints:     5,
		PillarMonthlyTarget: 300, // 20 max-intensity check-ins at 15 points
		TargetHoursPerDay:   6,
		TimeWeight:          0.6,
		HabitWeight:         0.4,
	}
}

// Inputs bundles the source stores an aggregation reads.
type Inputs struct {
	Range        *dateutil.DateRange
	Habits       []*habit.Habit
	CheckIns     habit.CheckIns
	BlocksByDate map[string][]*block.Block
	Templates    []*block.Template
}

// Recap holds the derived statistics for one reporting range.
// Percentages are unrounded; rounding is a display concern.
type Recap struct {
	CheckIns         int
	CheckInDelta     float64 // percent vs the previous equal-length period
	ConsistencyPct   float64 // days with any check-in / days in range
	ActiveHabits     int
	PillarsCovered   int
	ScheduledHours   float64
	DisciplineScore  int // 0..100
	TimeDistribution []TitleDuration
}

// TitleDuration is one row of the time-distribution breakdown.
type TitleDuration struct {
	Title string
	Slots int
	Hours float64
	Color block.Color
}

// BuildRecap aggregates check-in and scheduling data over the input range.
func BuildRecap(in Inputs, cfg ScoringConfig) *Recap {
	r := &Recap{}
	days := in.Range.Days()

	pillarOf := make(map[string]habit.Pillar, len(in.Habits))
	for _, h := range in.Habits {
		pillarOf[h.ID] = h.Pillar
	}

	activeDays := make(map[string]bool)
	activeHabits := make(map[string]bool)
	coveredPillars := make(map[habit.Pillar]bool)
	prevCheckIns := 0
	prevRange := in.Range.Previous()

	for key := range in.CheckIns {
		habitID, date, err := habit.ParseKey(key)
		if err != nil {
			continue
		}
		switch {
		case in.Range.Contains(date):
			r.CheckIns++
			activeDays[dateutil.Key(date)] = true
			activeHabits[habitID] = true
			if p, ok := pillarOf[habitID]; ok {
				coveredPillars[p] = true
			}
		case prevRange.Contains(date):
			prevCheckIns++
		}
	}

	r.ActiveHabits = len(activeHabits)
	r.PillarsCovered = len(coveredPillars)
	r.ConsistencyPct = float64(len(activeDays)) / float64(days) * 100
	r.CheckInDelta = periodDelta(float64(prevCheckIns), float64(r.CheckIns))

	// Scheduled hours sum raw durations, deliberately without the resolver's
	// spillover and precedence rules: analytics measures planned minutes,
	// not deduplicated occupancy.
	totalSlots := 0
	in.Range.EachDay(func(day time.Time) {
		for _, b := range in.BlocksByDate[dateutil.Key(day)] {
			totalSlots += b.Duration
		}
		for _, t := range in.Templates {
			if templateOnWeekday(t, day.Weekday()) {
				totalSlots += t.Duration
			}
		}
	})
	r.ScheduledHours = float64(totalSlots) * slot.MinutesEach / 60

	timeScore := math.Min(r.ScheduledHours/(float64(days)*cfg.TargetHoursPerDay)*100, 100)
	r.DisciplineScore = int(math.Round(timeScore*cfg.TimeWeight + r.ConsistencyPct*cfg.HabitWeight))

	r.TimeDistribution = timeDistribution(in)
	return r
}

// periodDelta computes a period-over-period percentage change, treating a
// zero baseline as +100% when the current period has any activity and 0
// when both periods are empty.
func periodDelta(prev, cur float64) float64 {
	if prev == 0 {
		if cur > 0 {
			return 100
		}
		return 0
	}
	return (cur - prev) / prev * 100
}

// templateOnWeekday is the analytics applicability test: weekday membership
// only, without the resolver's date-window clipping. Kept separate so the
// approximation is explicit.
func templateOnWeekday(t *block.Template, w time.Weekday) bool {
	for _, d := range t.DaysOfWeek {
		if d == w {
			return true
		}
	}
	return false
}

// timeDistribution groups scheduled durations in the range by title,
// keeping the most recently seen color per title, sorted descending by
// total duration (title ascending on ties for determinism).
func timeDistribution(in Inputs) []TitleDuration {
	slotsByTitle := make(map[string]int)
	colorByTitle := make(map[string]block.Color)

	in.Range.EachDay(func(day time.Time) {
		for _, b := range in.BlocksByDate[dateutil.Key(day)] {
			slotsByTitle[b.Title] += b.Duration
			colorByTitle[b.Title] = b.Color
		}
		for _, t := range in.Templates {
			if templateOnWeekday(t, day.Weekday()) {
				slotsByTitle[t.Title] += t.Duration
				colorByTitle[t.Title] = t.Color
			}
		}
	})

	out := make([]TitleDuration, 0, len(slotsByTitle))
	for title, slots := range slotsByTitle {
		out = append(out, TitleDuration{
			Title: title,
			Slots: slots,
			Hours: float64(slots) * slot.MinutesEach / 60,
			Color: colorByTitle[title],
		})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Slots != out[j].Slots {
			return out[i].Slots > out[j].Slots
		}
		return out[i].Title < out[j].Title
	})
	return out
}
