package slot

import "testing"

func TestClock_RoundTrip(t *testing.T) {
	for s := 0; s < PerDay; s++ {
		h, m := Clock(s)
		if got := FromClock(h, m); got != s {
			t.Fatalf("slot %d: Clock=%02d:%02d, FromClock=%d", s, h, m, got)
		}
	}
}

func TestClock(t *testing.T) {
	tests := []struct {
		slot         int
		hour, minute int
	}{
		{0, 0, 0},
		{1, 0, 10},
		{6, 1, 0},
		{54, 9, 0},
		{143, 23, 50},
	}
	for _, tt := range tests {
		h, m := Clock(tt.slot)
		if h != tt.hour || m != tt.minute {
			t.Errorf("Clock(%d) = %d:%d, want %d:%d", tt.slot, h, m, tt.hour, tt.minute)
		}
	}
}

func TestFromClock_MidSlotMinutes(t *testing.T) {
	// 09:05 falls inside the 09:00 slot.
	if got := FromClock(9, 5); got != 54 {
		t.Errorf("FromClock(9, 5) = %d, want 54", got)
	}
}

func TestValidate(t *testing.T) {
	if err := Validate(0); err != nil {
		t.Errorf("Validate(0) = %v, want nil", err)
	}
	if err := Validate(PerDay - 1); err != nil {
		t.Errorf("Validate(143) = %v, want nil", err)
	}
	if err := Validate(-1); err == nil {
		t.Error("Validate(-1) = nil, want error")
	}
	if err := Validate(PerDay); err == nil {
		t.Error("Validate(144) = nil, want error")
	}
}

func TestValidateDuration(t *testing.T) {
	if err := ValidateDuration(1); err != nil {
		t.Errorf("ValidateDuration(1) = %v, want nil", err)
	}
	if err := ValidateDuration(0); err == nil {
		t.Error("ValidateDuration(0) = nil, want error")
	}
}

func TestClampEnd(t *testing.T) {
	if got := ClampEnd(150); got != PerDay {
		t.Errorf("ClampEnd(150) = %d, want %d", got, PerDay)
	}
	if got := ClampEnd(-3); got != 0 {
		t.Errorf("ClampEnd(-3) = %d, want 0", got)
	}
	if got := ClampEnd(100); got != 100 {
		t.Errorf("ClampEnd(100) = %d, want 100", got)
	}
}

func TestFormat(t *testing.T) {
	tests := []struct {
		slot   int
		format TimeFormat
		want   string
	}{
		{0, Format24h, "00:00"},
		{54, Format24h, "09:00"},
		{143, Format24h, "23:50"},
		{0, Format12h, "12:00 AM"},
		{54, Format12h, "9:00 AM"},
		{72, Format12h, "12:00 PM"},
		{90, Format12h, "3:00 PM"},
	}
	for _, tt := range tests {
		if got := Format(tt.slot, tt.format); got != tt.want {
			t.Errorf("Format(%d, %s) = %q, want %q", tt.slot, tt.format, got, tt.want)
		}
	}
}

func TestFormatRange(t *testing.T) {
	if got := FormatRange(54, 1, Format24h); got != "09:00-09:10" {
		t.Errorf("single slot range = %q, want 09:00-09:10", got)
	}
	if got := FormatRange(54, 9, Format24h); got != "09:00-10:30" {
		t.Errorf("90 minute range = %q, want 09:00-10:30", got)
	}
	// A range reaching the end of the day renders as midnight.
	if got := FormatRange(138, 6, Format24h); got != "23:00-24:00" {
		t.Errorf("end of day range = %q, want 23:00-24:00", got)
	}
	if got := FormatRange(138, 6, Format12h); got != "11:00 PM-12:00 AM" {
		t.Errorf("end of day 12h range = %q, want 11:00 PM-12:00 AM", got)
	}
}

func TestMinuteConversions(t *testing.T) {
	if got := FromMinutes(95); got != 9 {
		t.Errorf("FromMinutes(95) = %d, want 9", got)
	}
	if got := ToMinutes(9); got != 90 {
		t.Errorf("ToMinutes(9) = %d, want 90", got)
	}
}
