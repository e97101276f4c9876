package carteira

import (
	"encoding/json"
	"testing"
	"time"
)

func TestParseDate(t *testing.T) {
	tests := []struct {
		in   string
		want Date
	}{
		{"2025-07-01", NewDate(2025, time.July, 1)},
		{"2025-7-1", NewDate(2025, time.July, 1)},
		{" 2025-12-31 ", NewDate(2025, time.December, 31)},
		{"2025-07-01T10:30:00-03:00", NewDate(2025, time.July, 1)},
	}
	for _, tt := range tests {
		got, err := ParseDate(tt.in)
		if err != nil {
			t.Errorf("ParseDate(%q) = %v", tt.in, err)
			continue
		}
		if got != tt.want {
			t.Errorf("ParseDate(%q) = %s, want %s", tt.in, got, tt.want)
		}
	}

	if _, err := ParseDate("not a date"); err == nil {
		t.Error("ParseDate of garbage succeeded")
	}
}

func TestDateJSON(t *testing.T) {
	d := NewDate(2026, time.January, 5)
	data, err := json.Marshal(d)
	if err != nil {
		t.Fatal(err)
	}
	if string(data) != `"2026-01-05"` {
		t.Errorf("marshal = %s", data)
	}
	var back Date
	if err := json.Unmarshal(data, &back); err != nil {
		t.Fatal(err)
	}
	if back != d {
		t.Errorf("round trip = %s, want %s", back, d)
	}
}

func TestDateNormalization(t *testing.T) {
	// Day overflow rolls into the next month.
	if got, want := NewDate(2025, time.January, 32), NewDate(2025, time.February, 1); got != want {
		t.Errorf("NewDate overflow = %s, want %s", got, want)
	}
	if got, want := NewDate(2025, time.March, 10).Add(25), NewDate(2025, time.April, 4); got != want {
		t.Errorf("Add(25) = %s, want %s", got, want)
	}
}

func TestRange(t *testing.T) {
	r := NewRange(NewDate(2025, time.March, 1), NewDate(2025, time.March, 31))
	if !r.Contains(NewDate(2025, time.March, 1)) || !r.Contains(NewDate(2025, time.March, 31)) {
		t.Error("range boundaries must be inclusive")
	}
	if r.Contains(NewDate(2025, time.April, 1)) {
		t.Error("range contains a day past its end")
	}

	// Swapped boundaries are reordered.
	swapped := NewRange(NewDate(2025, time.March, 31), NewDate(2025, time.March, 1))
	if swapped != r {
		t.Errorf("NewRange swapped = %+v, want %+v", swapped, r)
	}

	m := MonthOf(NewDate(2025, time.February, 15))
	if m.To != NewDate(2025, time.February, 28) {
		t.Errorf("MonthOf end = %s, want 2025-02-28", m.To)
	}
}
