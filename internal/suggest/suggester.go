package suggest

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/javiermolinar/tempo/internal/block"
	"github.com/javiermolinar/tempo/internal/habit"
	"github.com/javiermolinar/tempo/internal/schedule"
	"github.com/javiermolinar/tempo/internal/slot"
)

const systemPrompt = `You are a time-blocking assistant. The day is divided into 144 slots of 10 minutes each (slot 0 = 00:00, slot 143 = 23:50).

Context:
- Date: %s (%s)
- Occupied slots:
%s
- Active habits:
%s
%s

Rules:
1. Suggest time blocks only in free slots. Never overlap an occupied range.
2. "startTime" is a slot index (0-143) and "duration" is a slot count (>= 1).
3. startTime + duration must not exceed 144.
4. Allowed colors: %s.
5. Prefer mornings for demanding work and keep suggestions realistic for one day.
6. Each suggestion needs a short "reasoning" explaining the placement.

Respond ONLY with valid JSON (no markdown, no explanation):
{
  "suggestions": [
    {
      "title": "string",
      "startTime": 0,
      "duration": 6,
      "color": "blue",
      "reasoning": "string"
    }
  ]
}`

// Suggestion is one proposed time block from the model.
type Suggestion struct {
	Title     string `json:"title"`
	StartTime int    `json:"startTime"`
	Duration  int    `json:"duration"`
	Color     string `json:"color"`
	Reasoning string `json:"reasoning"`
}

type suggestionResponse struct {
	Suggestions []Suggestion `json:"suggestions"`
}

// Context carries everything the model needs to place blocks for one day.
type Context struct {
	Date     time.Time
	Schedule schedule.Schedule
	Habits   []*habit.Habit
	Goals    string
}

// Suggester asks an LLM for time block proposals and filters out anything
// that would not fit the day.
type Suggester struct {
	client Client
}

// NewSuggester creates a Suggester backed by the given client.
func NewSuggester(client Client) *Suggester {
	return &Suggester{client: client}
}

// Suggest returns validated block proposals for the day described by sctx.
// Invalid or overlapping suggestions are dropped rather than failing the call.
func (s *Suggester) Suggest(ctx context.Context, sctx Context) ([]Suggestion, error) {
	messages := []Message{
		{Role: "system", Content: buildPrompt(sctx)},
		{Role: "user", Content: "Suggest time blocks for the free slots in my day."},
	}

	var resp suggestionResponse
	if err := s.client.ChatJSON(ctx, messages, &resp); err != nil {
		return nil, fmt.Errorf("requesting suggestions: %w", err)
	}

	return filterValid(resp.Suggestions, sctx.Schedule), nil
}

func buildPrompt(sctx Context) string {
	return fmt.Sprintf(systemPrompt,
		sctx.Date.Format("2006-01-02"),
		sctx.Date.Weekday().String(),
		formatOccupied(sctx.Schedule),
		formatHabits(sctx.Habits),
		formatGoals(sctx.Goals),
		colorList(),
	)
}

// formatOccupied renders the occupied slot ranges in chronological order.
func formatOccupied(sched schedule.Schedule) string {
	entries := sched.Entries()
	if len(entries) == 0 {
		return "  (none)"
	}

	var b strings.Builder
	for _, e := range entries {
		fmt.Fprintf(&b, "  - slots %d-%d (%s): %s\n",
			e.StartTime, e.StartTime+e.Duration-1,
			slot.FormatRange(e.StartTime, e.Duration, slot.Format24h),
			e.Title)
	}
	return strings.TrimRight(b.String(), "\n")
}

func formatHabits(habits []*habit.Habit) string {
	if len(habits) == 0 {
		return "  (none)"
	}
	var b strings.Builder
	for _, h := range habits {
		fmt.Fprintf(&b, "  - %s (%s)\n", h.Name, h.Pillar)
	}
	return strings.TrimRight(b.String(), "\n")
}

func colorList() string {
	names := make([]string, len(block.Colors))
	for i, c := range block.Colors {
		names[i] = string(c)
	}
	return strings.Join(names, ", ")
}

func formatGoals(goals string) string {
	goals = strings.TrimSpace(goals)
	if goals == "" {
		return ""
	}
	return "- Goals: " + goals
}

// filterValid drops suggestions that are malformed or collide with the
// resolved schedule.
func filterValid(suggestions []Suggestion, sched schedule.Schedule) []Suggestion {
	valid := make([]Suggestion, 0, len(suggestions))
	for _, sg := range suggestions {
		if strings.TrimSpace(sg.Title) == "" {
			continue
		}
		if slot.Validate(sg.StartTime) != nil || slot.ValidateDuration(sg.Duration) != nil {
			continue
		}
		if sg.StartTime+sg.Duration > slot.PerDay {
			continue
		}
		if !block.Color(sg.Color).Valid() {
			sg.Color = string(block.ColorBlue)
		}
		if sched != nil && !sched.Free(sg.StartTime, sg.Duration) {
			continue
		}
		valid = append(valid, sg)
	}
	return valid
}
