package carteira

import (
	"strings"

	"github.com/google/uuid"
)

// Holding is a single owned position in one asset, aggregated across all
// purchases not yet fully sold.
type Holding struct {
	ID            string   `json:"id"`
	Name          string   `json:"name"`
	Type          string   `json:"type"`
	Quantity      Quantity `json:"quantity"`
	AveragePrice  Money    `json:"averagePrice"`
	CurrentPrice  Money    `json:"currentPrice"`
	TotalInvested Money    `json:"totalInvested"`
	TotalValue    Money    `json:"totalValue"`
	Dividends     Money    `json:"dividends"`
	Return        Money    `json:"return"`
}

// newHolding creates a holding from a first purchase.
func newHolding(name, typeID string, qty Quantity, unitPrice, currentPrice, initialDividends Money) Holding {
	h := Holding{
		ID:            uuid.NewString(),
		Name:          name,
		Type:          typeID,
		Quantity:      qty,
		AveragePrice:  unitPrice,
		CurrentPrice:  currentPrice,
		TotalInvested: unitPrice.Mul(qty),
		Dividends:     initialDividends,
	}
	h.refresh()
	return h
}

// refresh recomputes the derived fields from the stored ones. The invariant
// return == (totalValue + dividends) − totalInvested holds after every call.
func (h *Holding) refresh() {
	h.TotalValue = h.CurrentPrice.Mul(h.Quantity)
	h.Return = h.TotalValue.Add(h.Dividends).Sub(h.TotalInvested)
}

// matches reports whether the holding is the merge target for a purchase of
// (name, typeID). Names compare case-insensitively, types exactly.
func (h *Holding) matches(name, typeID string) bool {
	return strings.EqualFold(h.Name, name) && h.Type == typeID
}
