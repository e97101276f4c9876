package carteira

import "sort"

// Snapshot is a single day's aggregate portfolio statistics, used to chart
// the evolution of the portfolio over time.
type Snapshot struct {
	Date           Date  `json:"date"`
	TotalValue     Money `json:"totalValue"`
	TotalInvested  Money `json:"totalInvested"`
	TotalDividends Money `json:"totalDividends"`
}

// History is a chronological series of daily snapshots, at most one per
// calendar day.
type History []Snapshot

// Upsert inserts a snapshot, overwriting any existing snapshot for the same
// day, and keeps the series sorted. It never backfills missed days.
func (h History) Upsert(s Snapshot) History {
	for i := range h {
		if h[i].Date == s.Date {
			h[i] = s
			return h
		}
	}
	h = append(h, s)
	sort.SliceStable(h, func(i, j int) bool { return h[i].Date.Before(h[j].Date) })
	return h
}

// Get returns the snapshot for a given day.
func (h History) Get(day Date) (Snapshot, bool) {
	for _, s := range h {
		if s.Date == day {
			return s, true
		}
	}
	return Snapshot{}, false
}

// Between returns the snapshots within the given range, in order.
func (h History) Between(r Range) History {
	var out History
	for _, s := range h {
		if r.Contains(s.Date) {
			out = append(out, s)
		}
	}
	return out
}
