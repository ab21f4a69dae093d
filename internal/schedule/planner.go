package schedule

import (
	"errors"
	"fmt"
	"slices"
	"time"

	"github.com/javiermolinar/tempo/internal/block"
	"github.com/javiermolinar/tempo/internal/dateutil"
)

// Domain errors.
var (
	ErrBlockNotFound     = errors.New("block not found")
	ErrSlotConflict      = errors.New("slot range is already occupied")
	ErrRecurringConflict = errors.New("cannot overwrite a recurring block")
	ErrTemplateNotFound  = errors.New("template not found")
)

// ConflictFunc is the caller-supplied conflict policy. It receives the first
// conflicting entry and a commit function; invoking commit finalizes the
// deferred mutation, not invoking it cancels the operation. The caller may
// reschedule, overwrite, or drop the change before committing.
type ConflictFunc func(conflict *Entry, commit func())

// Draft holds the user-supplied fields for a new one-off block.
type Draft struct {
	Title            string
	StartTime        int
	Duration         int
	Color            block.Color
	ReminderLeadTime int
	DeadlineFor      string
}

// Patch holds optional field updates for an existing block.
// Nil fields are left unchanged.
type Patch struct {
	Title            *string
	StartTime        *int
	Duration         *int
	Color            *block.Color
	ReminderLeadTime *int
}

// Planner owns the in-memory date-keyed block store and the recurring
// templates, and guards every mutation with conflict detection against the
// resolved schedule. All mutation happens on a single logical thread (the
// event loop); persistence is the caller's concern via the change hook.
type Planner struct {
	blocks    map[string][]*block.Block // date key → blocks sorted by StartTime
	templates []*block.Template
	onChange  func()
}

// NewPlanner creates an empty Planner.
func NewPlanner() *Planner {
	return &Planner{blocks: make(map[string][]*block.Block)}
}

// OnChange registers a hook invoked after every successful mutation.
// The app wires this to the debounced persistence writer.
func (p *Planner) OnChange(fn func()) {
	p.onChange = fn
}

func (p *Planner) changed() {
	if p.onChange != nil {
		p.onChange()
	}
}

// LoadBlocks replaces the date-keyed block store, normalizing sort order.
// Used when hydrating from persistence.
func (p *Planner) LoadBlocks(byDate map[string][]*block.Block) {
	p.blocks = make(map[string][]*block.Block, len(byDate))
	for key, list := range byDate {
		if len(list) == 0 {
			continue
		}
		cp := slices.Clone(list)
		sortByStart(cp)
		p.blocks[key] = cp
	}
}

// LoadTemplates replaces the recurring template set.
func (p *Planner) LoadTemplates(templates []*block.Template) {
	p.templates = slices.Clone(templates)
}

// Templates returns a copy of the recurring template set.
func (p *Planner) Templates() []*block.Template {
	return slices.Clone(p.templates)
}

// AddTemplate appends a recurring template.
func (p *Planner) AddTemplate(t *block.Template) error {
	if err := t.Validate(); err != nil {
		return err
	}
	p.templates = append(p.templates, t)
	p.changed()
	return nil
}

// DeleteTemplate removes a recurring template by id.
func (p *Planner) DeleteTemplate(id string) error {
	for i, t := range p.templates {
		if t.ID == id {
			p.templates = append(p.templates[:i], p.templates[i+1:]...)
			p.changed()
			return nil
		}
	}
	return fmt.Errorf("%w: %s", ErrTemplateNotFound, id)
}

// BlocksOn returns a copy of the one-off blocks stored under the date.
func (p *Planner) BlocksOn(date time.Time) []*block.Block {
	return slices.Clone(p.blocks[dateutil.Key(date)])
}

// BlocksByDate returns a copy of the full date-keyed block store.
// Used when flushing to persistence.
func (p *Planner) BlocksByDate() map[string][]*block.Block {
	out := make(map[string][]*block.Block, len(p.blocks))
	for key, list := range p.blocks {
		out[key] = slices.Clone(list)
	}
	return out
}

// Resolve returns the resolved schedule for the date from the planner's
// current templates and one-off blocks.
func (p *Planner) Resolve(date time.Time) Schedule {
	return Resolve(date, p.templates, p.blocks[dateutil.Key(date)])
}

// CheckConflict resolves the date's schedule and scans the candidate range,
// returning the first occupied entry whose id differs from ignoreID, or nil
// when the whole range is clear.
func (p *Planner) CheckConflict(date time.Time, startTime, duration int, ignoreID string) *Entry {
	return findConflict(p.Resolve(date), startTime, duration, ignoreID)
}

func findConflict(sched Schedule, startTime, duration int, ignoreID string) *Entry {
	end := startTime + duration
	for i := startTime; i < end; i++ {
		e := sched.At(i)
		if e != nil && e.ID != ignoreID {
			return e
		}
	}
	return nil
}

// AddBlock constructs a one-off block from the draft and inserts it under
// the date, keeping the date's list sorted by start time.
//
// On collision the insertion is deferred to onConflict: the handler decides
// and calls commit to finalize. Without a handler a collision is returned
// as ErrSlotConflict. The constructed block is returned in both deferred
// and immediate cases so callers can reschedule it.
func (p *Planner) AddBlock(date time.Time, draft Draft, onConflict ConflictFunc) (*block.Block, error) {
	b, err := block.New(draft.Title, draft.StartTime, draft.Duration, draft.Color)
	if err != nil {
		return nil, err
	}
	b.ReminderLeadTime = draft.ReminderLeadTime
	b.DeadlineFor = draft.DeadlineFor
	if err := b.Validate(); err != nil {
		return nil, err
	}

	if conflict := p.CheckConflict(date, b.StartTime, b.Duration, ""); conflict != nil {
		if onConflict == nil {
			return nil, fmt.Errorf("%w: %q at %d", ErrSlotConflict, conflict.Title, conflict.StartTime)
		}
		onConflict(conflict, func() {
			p.insert(date, b)
		})
		return b, nil
	}

	p.insert(date, b)
	return b, nil
}

// UpdateBlock merges the patch over the stored block and re-checks the
// resulting range for conflicts, ignoring the block itself.
//
// A collision with recurring material is a hard rejection: templates cannot
// be overwritten from the daily view, so ErrRecurringConflict surfaces
// instead of the conflict handler. Other collisions follow the same
// deferred-commit protocol as AddBlock.
func (p *Planner) UpdateBlock(date time.Time, id string, patch Patch, onConflict ConflictFunc) error {
	existing := p.find(date, id)
	if existing == nil {
		return fmt.Errorf("%w: %s on %s", ErrBlockNotFound, id, dateutil.Key(date))
	}

	merged := existing.Clone()
	patch.apply(merged)
	if err := merged.Validate(); err != nil {
		return err
	}

	if conflict := p.CheckConflict(date, merged.StartTime, merged.Duration, id); conflict != nil {
		if conflict.IsRecurring {
			return fmt.Errorf("%w: %q", ErrRecurringConflict, conflict.Title)
		}
		if onConflict == nil {
			return fmt.Errorf("%w: %q at %d", ErrSlotConflict, conflict.Title, conflict.StartTime)
		}
		onConflict(conflict, func() {
			p.replace(date, id, merged)
		})
		return nil
	}

	p.replace(date, id, merged)
	return nil
}

// DeleteBlock removes the block from the date. Deleting an absent block or
// date is a safe no-op. An emptied date list drops the date key entirely,
// leaving no empty-array tombstones in the store.
func (p *Planner) DeleteBlock(date time.Time, id string) {
	key := dateutil.Key(date)
	list := p.blocks[key]
	for i, b := range list {
		if b.ID == id {
			list = append(list[:i], list[i+1:]...)
			if len(list) == 0 {
				delete(p.blocks, key)
			} else {
				p.blocks[key] = list
			}
			p.changed()
			return
		}
	}
}

// MoveBlock relocates a block, possibly across dates, as a staged
// transaction: the origin record is only removed once the destination
// insertion is committed. A refused destination (recurring collision, no
// handler, handler that never commits) leaves the origin untouched.
func (p *Planner) MoveBlock(fromDate, toDate time.Time, id string, newStart int, onConflict ConflictFunc) error {
	moved := p.find(fromDate, id)
	if moved == nil {
		return fmt.Errorf("%w: %s on %s", ErrBlockNotFound, id, dateutil.Key(fromDate))
	}

	sameDay := dateutil.Key(fromDate) == dateutil.Key(toDate)
	if sameDay {
		return p.UpdateBlock(fromDate, id, Patch{StartTime: &newStart}, onConflict)
	}

	candidate := moved.Clone()
	candidate.StartTime = newStart
	if err := candidate.Validate(); err != nil {
		return err
	}

	commit := func() {
		p.DeleteBlock(fromDate, id)
		p.insert(toDate, candidate)
	}

	if conflict := p.CheckConflict(toDate, candidate.StartTime, candidate.Duration, id); conflict != nil {
		if conflict.IsRecurring {
			return fmt.Errorf("%w: %q", ErrRecurringConflict, conflict.Title)
		}
		if onConflict == nil {
			return fmt.Errorf("%w: %q at %d", ErrSlotConflict, conflict.Title, conflict.StartTime)
		}
		onConflict(conflict, commit)
		return nil
	}

	commit()
	return nil
}

// find returns the stored block with the given id on the date, or nil.
func (p *Planner) find(date time.Time, id string) *block.Block {
	for _, b := range p.blocks[dateutil.Key(date)] {
		if b.ID == id {
			return b
		}
	}
	return nil
}

// insert adds a block under the date, keeping the list sorted by start time.
func (p *Planner) insert(date time.Time, b *block.Block) {
	key := dateutil.Key(date)
	list := append(p.blocks[key], b)
	sortByStart(list)
	p.blocks[key] = list
	p.changed()
}

// replace swaps the stored block with the given id for the updated copy.
func (p *Planner) replace(date time.Time, id string, updated *block.Block) {
	key := dateutil.Key(date)
	list := p.blocks[key]
	for i, b := range list {
		if b.ID == id {
			list[i] = updated
			break
		}
	}
	sortByStart(list)
	p.blocks[key] = list
	p.changed()
}

func sortByStart(list []*block.Block) {
	slices.SortStableFunc(list, func(a, b *block.Block) int {
		return a.StartTime - b.StartTime
	})
}

// apply merges non-nil patch fields over the block.
func (pa Patch) apply(b *block.Block) {
	if pa.Title != nil {
		b.Title = *pa.Title
	}
	if pa.StartTime != nil {
		b.StartTime = *pa.StartTime
	}
	if pa.Duration != nil {
		b.Duration = *pa.Duration
	}
	if pa.Color != nil {
		b.Color = *pa.Color
	}
	if pa.ReminderLeadTime != nil {
		b.ReminderLeadTime = *pa.ReminderLeadTime
	}
}
