package block

import "encoding/json"

// DefaultReminderLead is the lead time, in minutes, assigned to legacy
// records that carried only the old boolean reminder flag.
const DefaultReminderLead = 10

// legacyBlock mirrors Block but keeps the optional fields as pointers so the
// decoder can tell an absent reminderLeadTime apart from an explicit zero.
// Older records stored `"reminder": true` instead of a lead time.
type legacyBlock struct {
	ID               string `json:"id"`
	Title            string `json:"title"`
	StartTime        int    `json:"startTime"`
	Duration         int    `json:"duration"`
	Color            Color  `json:"color"`
	ReminderLeadTime *int   `json:"reminderLeadTime"`
	Reminder         *bool  `json:"reminder"`
	IsRecurring      bool   `json:"isRecurring"`
	DeadlineFor      string `json:"deadlineFor,omitempty"`
}

// UnmarshalJSON decodes a block record, normalizing legacy reminder flags to
// ReminderLeadTime. This is the single migration point for old records: every
// block enters memory already in the current schema, so no read site has to
// consult the legacy field.
func (b *Block) UnmarshalJSON(data []byte) error {
	var raw legacyBlock
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	b.ID = raw.ID
	b.Title = raw.Title
	b.StartTime = raw.StartTime
	b.Duration = raw.Duration
	b.Color = raw.Color
	b.IsRecurring = raw.IsRecurring
	b.DeadlineFor = raw.DeadlineFor

	switch {
	case raw.ReminderLeadTime != nil:
		b.ReminderLeadTime = *raw.ReminderLeadTime
	case raw.Reminder != nil && *raw.Reminder:
		b.ReminderLeadTime = DefaultReminderLead
	default:
		b.ReminderLeadTime = 0
	}

	return nil
}
