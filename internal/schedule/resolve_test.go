package schedule

import (
	"testing"
	"time"

	"github.com/javiermolinar/tempo/internal/block"
	"github.com/javiermolinar/tempo/internal/slot"
)

// Fixed fixture dates with known weekdays.
var (
	monday  = time.Date(2026, 8, 31, 0, 0, 0, 0, time.UTC) // Monday
	tuesday = monday.AddDate(0, 0, 1)
)

func tpl(id, title string, start, duration int, days ...time.Weekday) *block.Template {
	return &block.Template{
		ID:         id,
		Title:      title,
		StartTime:  start,
		Duration:   duration,
		DaysOfWeek: days,
	}
}

func oneOff(id, title string, start, duration int) *block.Block {
	return &block.Block{ID: id, Title: title, StartTime: start, Duration: duration}
}

func TestResolve_Empty(t *testing.T) {
	sched := Resolve(monday, nil, nil)
	for i := 0; i < slot.PerDay; i++ {
		if sched.At(i) != nil {
			t.Fatalf("expected empty schedule, slot %d occupied", i)
		}
	}
}

func TestResolve_TemplateMaterializes(t *testing.T) {
	templates := []*block.Template{tpl("t1", "Gym", 108, 6, time.Monday)}

	sched := Resolve(monday, templates, nil)
	e := sched.At(108)
	if e == nil {
		t.Fatal("expected slot 108 occupied")
	}
	if e.ID != "t1-2026-08-31" {
		t.Errorf("entry id = %q, want t1-2026-08-31", e.ID)
	}
	if !e.IsRecurring || e.TemplateID != "t1" {
		t.Errorf("entry not marked recurring: %+v", e)
	}
	if sched.At(107) != nil || sched.At(114) != nil {
		t.Error("expected slots outside the span to stay free")
	}
}

func TestResolve_TemplateNotApplicable(t *testing.T) {
	templates := []*block.Template{tpl("t1", "Gym", 108, 6, time.Monday)}

	sched := Resolve(tuesday, templates, nil)
	if len(sched.Entries()) != 0 {
		t.Errorf("expected no entries on Tuesday, got %d", len(sched.Entries()))
	}
}

func TestResolve_OneOffOverridesTemplate(t *testing.T) {
	templates := []*block.Template{tpl("t1", "Focus", 60, 12, time.Monday)} // [60,72)
	blocks := []*block.Block{oneOff("b1", "Dentist", 66, 4)}               // [66,70)

	sched := Resolve(monday, templates, blocks)

	for i := 60; i < 66; i++ {
		if e := sched.At(i); e == nil || e.ID != "t1-2026-08-31" {
			t.Fatalf("slot %d: want template entry, got %+v", i, e)
		}
	}
	for i := 66; i < 70; i++ {
		if e := sched.At(i); e == nil || e.ID != "b1" {
			t.Fatalf("slot %d: want one-off entry, got %+v", i, e)
		}
	}
	for i := 70; i < 72; i++ {
		if e := sched.At(i); e == nil || e.ID != "t1-2026-08-31" {
			t.Fatalf("slot %d: want template entry after override, got %+v", i, e)
		}
	}
}

func TestResolve_FirstTemplateWins(t *testing.T) {
	templates := []*block.Template{
		tpl("t1", "Focus", 60, 6, time.Monday),
		tpl("t2", "Overlap", 60, 6, time.Monday),
	}

	sched := Resolve(monday, templates, nil)
	for i := 60; i < 66; i++ {
		if e := sched.At(i); e == nil || e.TemplateID != "t1" {
			t.Fatalf("slot %d: want first template, got %+v", i, e)
		}
	}
}

func TestResolve_Spillover(t *testing.T) {
	// 23:20 Monday for 100 minutes: 4 slots on Monday, 6 spill into Tuesday.
	templates := []*block.Template{tpl("t1", "Night shift", 140, 10, time.Monday)}

	mondaySched := Resolve(monday, templates, nil)
	for i := 140; i < 144; i++ {
		if mondaySched.At(i) == nil {
			t.Fatalf("Monday slot %d should be occupied", i)
		}
	}

	tuesdaySched := Resolve(tuesday, templates, nil)
	for i := 0; i < 6; i++ {
		e := tuesdaySched.At(i)
		if e == nil {
			t.Fatalf("Tuesday slot %d should hold spillover", i)
		}
		if !e.Spillover {
			t.Fatalf("Tuesday slot %d entry not marked spillover: %+v", i, e)
		}
		if e.ID != "t1-2026-09-01-spillover" {
			t.Fatalf("spillover id = %q", e.ID)
		}
	}
	if tuesdaySched.At(6) != nil {
		t.Error("Tuesday slot 6 should be free")
	}
}

func TestResolve_SpilloverYieldsToSameDayUsurpers(t *testing.T) {
	templates := []*block.Template{
		tpl("night", "Night shift", 140, 10, time.Monday), // spills [0,6) into Tuesday
		tpl("early", "Early run", 2, 4, time.Tuesday),     // overlaps the spillover
	}

	sched := Resolve(tuesday, templates, nil)
	// Spillover claims its slots before same-day templates.
	for i := 0; i < 6; i++ {
		if e := sched.At(i); e == nil || !e.Spillover {
			t.Fatalf("slot %d: want spillover, got %+v", i, e)
		}
	}
	// The same-day template keeps whatever the spillover left.
	if e := sched.At(5); e == nil || e.TemplateID != "night" {
		t.Errorf("slot 5: want night spillover, got %+v", sched.At(5))
	}
}

func TestResolve_Deterministic(t *testing.T) {
	templates := []*block.Template{
		tpl("t1", "Focus", 60, 12, time.Monday),
		tpl("t2", "Night", 140, 10, time.Sunday),
	}
	blocks := []*block.Block{oneOff("b1", "Dentist", 66, 4)}

	first := Resolve(monday, templates, blocks)
	second := Resolve(monday, templates, blocks)

	for i := 0; i < slot.PerDay; i++ {
		a, b := first.At(i), second.At(i)
		switch {
		case a == nil && b == nil:
		case a == nil || b == nil:
			t.Fatalf("slot %d differs between runs", i)
		case a.ID != b.ID:
			t.Fatalf("slot %d: %q vs %q", i, a.ID, b.ID)
		}
	}
}

func TestSchedule_Entries_SortedAndDistinct(t *testing.T) {
	templates := []*block.Template{tpl("t1", "Focus", 60, 12, time.Monday)}
	blocks := []*block.Block{oneOff("b1", "Early", 6, 3)}

	entries := Resolve(monday, templates, blocks).Entries()
	if len(entries) != 2 {
		t.Fatalf("expected 2 entries, got %d", len(entries))
	}
	if entries[0].ID != "b1" || entries[1].TemplateID != "t1" {
		t.Errorf("entries out of order: %+v", entries)
	}
}

func TestSchedule_Free(t *testing.T) {
	sched := Resolve(monday, nil, []*block.Block{oneOff("b1", "x", 60, 6)})
	if sched.Free(60, 1) {
		t.Error("expected slot 60 occupied")
	}
	if !sched.Free(66, 6) {
		t.Error("expected [66,72) free")
	}
	if sched.Free(58, 4) {
		t.Error("expected [58,62) to report the collision")
	}
}
