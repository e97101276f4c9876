package carteira

import (
	"testing"
	"time"
)

func TestHistoryUpsert(t *testing.T) {
	var h History

	h = h.Upsert(Snapshot{Date: NewDate(2025, time.March, 2), TotalValue: BRL(100)})
	h = h.Upsert(Snapshot{Date: NewDate(2025, time.March, 1), TotalValue: BRL(50)})
	if len(h) != 2 {
		t.Fatalf("len = %d, want 2", len(h))
	}
	if h[0].Date != NewDate(2025, time.March, 1) {
		t.Errorf("history not sorted: first day is %s", h[0].Date)
	}

	// Same day overwrites instead of appending.
	h = h.Upsert(Snapshot{Date: NewDate(2025, time.March, 2), TotalValue: BRL(200)})
	if len(h) != 2 {
		t.Fatalf("len after overwrite = %d, want 2", len(h))
	}
	s, ok := h.Get(NewDate(2025, time.March, 2))
	if !ok || !s.TotalValue.Equal(BRL(200)) {
		t.Errorf("overwritten snapshot = %+v", s)
	}
}

func TestHistoryBetween(t *testing.T) {
	var h History
	for day := 1; day <= 10; day++ {
		h = h.Upsert(Snapshot{Date: NewDate(2025, time.March, day)})
	}

	got := h.Between(NewRange(NewDate(2025, time.March, 3), NewDate(2025, time.March, 5)))
	if len(got) != 3 {
		t.Fatalf("len = %d, want 3", len(got))
	}
	if got[0].Date != NewDate(2025, time.March, 3) || got[2].Date != NewDate(2025, time.March, 5) {
		t.Errorf("range = %s..%s", got[0].Date, got[2].Date)
	}
}
