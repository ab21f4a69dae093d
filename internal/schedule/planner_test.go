package schedule

import (
	"errors"
	"testing"
	"time"

	"github.com/javiermolinar/tempo/internal/block"
)

func mustAdd(t *testing.T, p *Planner, date time.Time, title string, start, duration int) *block.Block {
	t.Helper()
	b, err := p.AddBlock(date, Draft{Title: title, StartTime: start, Duration: duration}, nil)
	if err != nil {
		t.Fatalf("adding %q: %v", title, err)
	}
	return b
}

func TestAddBlock(t *testing.T) {
	p := NewPlanner()
	b := mustAdd(t, p, monday, "Deep work", 54, 9)

	if got := p.BlocksOn(monday); len(got) != 1 || got[0].ID != b.ID {
		t.Fatalf("BlocksOn = %+v, want the added block", got)
	}
	if e := p.Resolve(monday).At(54); e == nil || e.ID != b.ID {
		t.Errorf("resolved slot 54 = %+v, want the added block", e)
	}
}

func TestAddBlock_ConflictWithoutHandler(t *testing.T) {
	p := NewPlanner()
	mustAdd(t, p, monday, "Deep work", 54, 9)

	_, err := p.AddBlock(monday, Draft{Title: "Call", StartTime: 60, Duration: 3}, nil)
	if !errors.Is(err, ErrSlotConflict) {
		t.Fatalf("error = %v, want ErrSlotConflict", err)
	}
	if len(p.BlocksOn(monday)) != 1 {
		t.Error("rejected add must not modify the store")
	}
}

func TestAddBlock_ConflictHandlerCommits(t *testing.T) {
	p := NewPlanner()
	existing := mustAdd(t, p, monday, "Deep work", 54, 9)

	var seen *Entry
	b, err := p.AddBlock(monday, Draft{Title: "Call", StartTime: 60, Duration: 3},
		func(conflict *Entry, commit func()) {
			seen = conflict
			commit()
		})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if seen == nil || seen.ID != existing.ID {
		t.Fatalf("handler saw %+v, want the existing entry", seen)
	}
	if len(p.BlocksOn(monday)) != 2 {
		t.Error("committed add should be stored")
	}
	// A one-off overrides the earlier block in the resolved view.
	if e := p.Resolve(monday).At(60); e == nil || e.ID != b.ID {
		t.Errorf("resolved slot 60 = %+v, want the new block", e)
	}
}

func TestAddBlock_ConflictHandlerDeclines(t *testing.T) {
	p := NewPlanner()
	mustAdd(t, p, monday, "Deep work", 54, 9)

	_, err := p.AddBlock(monday, Draft{Title: "Call", StartTime: 60, Duration: 3},
		func(*Entry, func()) {})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(p.BlocksOn(monday)) != 1 {
		t.Error("declined add must not modify the store")
	}
}

func TestCheckConflict_AddedBlockIsVisible(t *testing.T) {
	p := NewPlanner()
	b := mustAdd(t, p, monday, "Deep work", 54, 9)

	if got := p.CheckConflict(monday, 60, 3, ""); got == nil || got.ID != b.ID {
		t.Errorf("CheckConflict = %+v, want the added block", got)
	}
	if got := p.CheckConflict(monday, 60, 3, b.ID); got != nil {
		t.Errorf("CheckConflict ignoring self = %+v, want nil", got)
	}
	if got := p.CheckConflict(monday, 70, 3, ""); got != nil {
		t.Errorf("CheckConflict on free range = %+v, want nil", got)
	}
}

func TestUpdateBlock(t *testing.T) {
	p := NewPlanner()
	b := mustAdd(t, p, monday, "Deep work", 54, 9)

	title := "Deeper work"
	start := 72
	if err := p.UpdateBlock(monday, b.ID, Patch{Title: &title, StartTime: &start}, nil); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	got := p.BlocksOn(monday)[0]
	if got.Title != "Deeper work" || got.StartTime != 72 || got.Duration != 9 {
		t.Errorf("updated block = %+v", got)
	}
}

func TestUpdateBlock_NotFound(t *testing.T) {
	p := NewPlanner()
	title := "x"
	err := p.UpdateBlock(monday, "missing", Patch{Title: &title}, nil)
	if !errors.Is(err, ErrBlockNotFound) {
		t.Errorf("error = %v, want ErrBlockNotFound", err)
	}
}

func TestUpdateBlock_RecurringConflictIsHardError(t *testing.T) {
	p := NewPlanner()
	p.LoadTemplates([]*block.Template{tpl("t1", "Gym", 108, 6, time.Monday)})
	b := mustAdd(t, p, monday, "Call", 60, 3)

	start := 110
	handlerCalled := false
	err := p.UpdateBlock(monday, b.ID, Patch{StartTime: &start},
		func(*Entry, func()) { handlerCalled = true })
	if !errors.Is(err, ErrRecurringConflict) {
		t.Fatalf("error = %v, want ErrRecurringConflict", err)
	}
	if handlerCalled {
		t.Error("recurring conflicts must not reach the handler")
	}
	if got := p.BlocksOn(monday)[0].StartTime; got != 60 {
		t.Errorf("block moved to %d despite rejection", got)
	}
}

func TestDeleteBlock(t *testing.T) {
	p := NewPlanner()
	b := mustAdd(t, p, monday, "Call", 60, 3)

	p.DeleteBlock(monday, b.ID)
	if len(p.BlocksOn(monday)) != 0 {
		t.Error("block still present after delete")
	}
	// An emptied date leaves no tombstone behind.
	if byDate := p.BlocksByDate(); len(byDate) != 0 {
		t.Errorf("BlocksByDate = %+v, want empty map", byDate)
	}
}

func TestDeleteBlock_AbsentIsNoOp(t *testing.T) {
	p := NewPlanner()
	p.DeleteBlock(monday, "missing") // must not panic
	mustAdd(t, p, monday, "Call", 60, 3)
	p.DeleteBlock(tuesday, "missing")
	if len(p.BlocksOn(monday)) != 1 {
		t.Error("unrelated delete modified the store")
	}
}

func TestMoveBlock_SameDay(t *testing.T) {
	p := NewPlanner()
	b := mustAdd(t, p, monday, "Call", 60, 3)

	if err := p.MoveBlock(monday, monday, b.ID, 90, nil); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := p.BlocksOn(monday)[0].StartTime; got != 90 {
		t.Errorf("start = %d, want 90", got)
	}
}

func TestMoveBlock_AcrossDays(t *testing.T) {
	p := NewPlanner()
	b := mustAdd(t, p, monday, "Call", 60, 3)

	if err := p.MoveBlock(monday, tuesday, b.ID, 72, nil); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(p.BlocksOn(monday)) != 0 {
		t.Error("origin day still holds the block")
	}
	got := p.BlocksOn(tuesday)
	if len(got) != 1 || got[0].StartTime != 72 || got[0].ID != b.ID {
		t.Errorf("destination day = %+v", got)
	}
}

func TestMoveBlock_RefusedDestinationKeepsOrigin(t *testing.T) {
	p := NewPlanner()
	b := mustAdd(t, p, monday, "Call", 60, 3)
	mustAdd(t, p, tuesday, "Standup", 72, 3)

	t.Run("no handler", func(t *testing.T) {
		err := p.MoveBlock(monday, tuesday, b.ID, 72, nil)
		if !errors.Is(err, ErrSlotConflict) {
			t.Fatalf("error = %v, want ErrSlotConflict", err)
		}
		if len(p.BlocksOn(monday)) != 1 {
			t.Error("refused move removed the origin record")
		}
	})

	t.Run("handler declines", func(t *testing.T) {
		err := p.MoveBlock(monday, tuesday, b.ID, 72, func(*Entry, func()) {})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(p.BlocksOn(monday)) != 1 {
			t.Error("declined move removed the origin record")
		}
		if len(p.BlocksOn(tuesday)) != 1 {
			t.Error("declined move touched the destination")
		}
	})

	t.Run("handler commits", func(t *testing.T) {
		err := p.MoveBlock(monday, tuesday, b.ID, 72, func(_ *Entry, commit func()) { commit() })
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(p.BlocksOn(monday)) != 0 {
			t.Error("committed move left the origin record")
		}
		if len(p.BlocksOn(tuesday)) != 2 {
			t.Errorf("destination = %+v", p.BlocksOn(tuesday))
		}
	})
}

func TestMoveBlock_RecurringDestinationRejected(t *testing.T) {
	p := NewPlanner()
	p.LoadTemplates([]*block.Template{tpl("t1", "Gym", 72, 6, time.Tuesday)})
	b := mustAdd(t, p, monday, "Call", 60, 3)

	err := p.MoveBlock(monday, tuesday, b.ID, 74, func(*Entry, func()) {
		t.Error("recurring conflicts must not reach the handler")
	})
	if !errors.Is(err, ErrRecurringConflict) {
		t.Fatalf("error = %v, want ErrRecurringConflict", err)
	}
	if len(p.BlocksOn(monday)) != 1 {
		t.Error("refused move removed the origin record")
	}
}

func TestOnChange_FiresPerMutation(t *testing.T) {
	p := NewPlanner()
	count := 0
	p.OnChange(func() { count++ })

	b := mustAdd(t, p, monday, "Call", 60, 3)
	p.DeleteBlock(monday, b.ID)
	if count != 2 {
		t.Errorf("change hook fired %d times, want 2", count)
	}
}

func TestTemplates_AddDelete(t *testing.T) {
	p := NewPlanner()
	tp := tpl("t1", "Gym", 108, 6, time.Monday)

	if err := p.AddTemplate(tp); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(p.Templates()) != 1 {
		t.Fatal("template not stored")
	}
	if err := p.DeleteTemplate("t1"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := p.DeleteTemplate("t1"); !errors.Is(err, ErrTemplateNotFound) {
		t.Errorf("second delete error = %v, want ErrTemplateNotFound", err)
	}
}

func TestBlocksOn_SortedByStart(t *testing.T) {
	p := NewPlanner()
	mustAdd(t, p, monday, "Late", 90, 3)
	mustAdd(t, p, monday, "Early", 30, 3)

	got := p.BlocksOn(monday)
	if got[0].Title != "Early" || got[1].Title != "Late" {
		t.Errorf("blocks not sorted by start: %+v", got)
	}
}
