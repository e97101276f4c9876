package carteira

import "sort"

// Summary is the aggregate view of the whole portfolio at a point in time.
type Summary struct {
	Date           Date
	Balance        Money
	TotalValue     Money
	TotalInvested  Money
	TotalDividends Money
	TotalReturn    Money
	Holdings       []Holding
	ByType         []TypeAllocation
}

// TypeAllocation is the portion of the portfolio's market value held in one
// asset type.
type TypeAllocation struct {
	Type  AssetType
	Value Money
}

// Summarize computes the aggregate view of the book's current state.
// Holdings are returned sorted by descending market value.
func (b *Book) Summarize() Summary {
	s := Summary{
		Date:     Today(),
		Balance:  b.balance,
		Holdings: b.Holdings(),
	}
	byType := make(map[string]Money, len(b.types))
	for _, h := range s.Holdings {
		s.TotalValue = s.TotalValue.Add(h.TotalValue)
		s.TotalInvested = s.TotalInvested.Add(h.TotalInvested)
		s.TotalDividends = s.TotalDividends.Add(h.Dividends)
		s.TotalReturn = s.TotalReturn.Add(h.Return)
		byType[h.Type] = byType[h.Type].Add(h.TotalValue)
	}
	sort.SliceStable(s.Holdings, func(i, j int) bool {
		return s.Holdings[j].TotalValue.LessThan(s.Holdings[i].TotalValue)
	})
	for _, t := range b.types {
		if v, ok := byType[t.ID]; ok && !v.IsZero() {
			s.ByType = append(s.ByType, TypeAllocation{Type: t, Value: v})
		}
	}
	sort.SliceStable(s.ByType, func(i, j int) bool {
		return s.ByType[j].Value.LessThan(s.ByType[i].Value)
	})
	return s
}

// TypeName resolves a type id to its display name, falling back to the id
// itself for types no longer in the registry.
func (b *Book) TypeName(id string) string {
	for _, t := range b.types {
		if t.ID == id {
			return t.Name
		}
	}
	return id
}
