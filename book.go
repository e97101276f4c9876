package carteira

import (
	"encoding/json"
	"errors"
	"fmt"
	"sort"
	"strings"
)

// Book holds the whole state of the investment ledger: the holdings, the two
// entry logs, the brokerage cash balance, the type registry and the daily
// history. Every operation is synchronous and all-or-nothing: it validates
// against the current state, commits in memory, appends its ledger entry and
// only then notifies observers. Persistence is a separate concern (see Store).
type Book struct {
	holdings []Holding
	invLog   []Entry // purchase, sale and dividend entries
	genLog   []Entry // brokerage deposit and withdraw entries
	balance  Money
	types    []AssetType
	history  History

	// General transactions owned by other features of the application share
	// the "transactions" collection with the ledger. They are carried
	// verbatim so a save never drops them.
	foreign []json.RawMessage

	notifier *Notifier
}

// NewBook creates an empty book with the default type registry.
func NewBook() *Book {
	return &Book{
		types:    DefaultAssetTypes(),
		notifier: NewNotifier(),
	}
}

// Notifier returns the book's change notifier.
func (b *Book) Notifier() *Notifier { return b.notifier }

// Balance returns the current brokerage cash balance.
func (b *Book) Balance() Money { return b.balance }

// Holdings returns a copy of all holdings.
func (b *Book) Holdings() []Holding {
	out := make([]Holding, len(b.holdings))
	copy(out, b.holdings)
	return out
}

// Holding returns a copy of the holding with the given id.
func (b *Book) Holding(id string) (Holding, bool) {
	if i := b.findHolding(id); i >= 0 {
		return b.holdings[i], true
	}
	return Holding{}, false
}

// InvestmentEntries returns a copy of the investment log, in chronological order.
func (b *Book) InvestmentEntries() []Entry {
	out := make([]Entry, len(b.invLog))
	copy(out, b.invLog)
	return out
}

// GeneralEntries returns a copy of the ledger-owned entries of the general
// transaction log, in chronological order.
func (b *Book) GeneralEntries() []Entry {
	out := make([]Entry, len(b.genLog))
	copy(out, b.genLog)
	return out
}

// History returns a copy of the daily snapshot history.
func (b *Book) History() History {
	out := make(History, len(b.history))
	copy(out, b.history)
	return out
}

// Types returns a copy of the asset type registry.
func (b *Book) Types() []AssetType {
	out := make([]AssetType, len(b.types))
	copy(out, b.types)
	return out
}

func (b *Book) findHolding(id string) int {
	for i := range b.holdings {
		if b.holdings[i].ID == id {
			return i
		}
	}
	return -1
}

func (b *Book) typeExists(id string) bool {
	for _, t := range b.types {
		if t.ID == id {
			return true
		}
	}
	return false
}

// stableSortEntries keeps a log chronological. The sort is stable, so
// entries on the same day maintain their original relative order.
func stableSortEntries(log []Entry) {
	sort.SliceStable(log, func(i, j int) bool { return log[i].When().Before(log[j].When()) })
}

func (b *Book) appendInvestment(e Entry) {
	b.invLog = append(b.invLog, e)
	stableSortEntries(b.invLog)
}

func (b *Book) appendGeneral(e Entry) {
	b.genLog = append(b.genLog, e)
	stableSortEntries(b.genLog)
}

// --- Buy ---

// BuyOrder is the input of a purchase.
type BuyOrder struct {
	Date            Date
	Name            string
	Type            string
	Quantity        Quantity
	UnitPrice       Money
	CurrentPrice    Money // optional, defaults to UnitPrice
	PerUnitDividend Money // optional, dividends already received per unit
}

// Buy purchases units of an asset, paying from the brokerage balance.
//
// If a holding with the same name (case-insensitive) and type already exists,
// the purchase merges into it and the average price becomes the weighted
// average of all purchases. Otherwise a new holding is created. The whole
// operation fails without side effects if the cost exceeds the balance.
func (b *Book) Buy(o BuyOrder) (Holding, error) {
	if o.Date.IsZero() {
		o.Date = Today()
	}
	if o.Name == "" {
		o.Name = "Ativo Sem Nome"
	}
	if !b.typeExists(o.Type) {
		return Holding{}, fmt.Errorf("unknown asset type %q", o.Type)
	}
	if !o.Quantity.IsPositive() {
		return Holding{}, fmt.Errorf("purchase quantity must be positive, got %s", o.Quantity)
	}
	if o.UnitPrice.IsNegative() {
		return Holding{}, fmt.Errorf("purchase price cannot be negative, got %s", o.UnitPrice)
	}
	if o.PerUnitDividend.IsNegative() {
		return Holding{}, fmt.Errorf("per-unit dividend cannot be negative, got %s", o.PerUnitDividend)
	}
	if o.CurrentPrice.IsZero() {
		o.CurrentPrice = o.UnitPrice
	}

	cost := o.UnitPrice.Mul(o.Quantity)
	if b.balance.LessThan(cost) {
		return Holding{}, fmt.Errorf("cannot buy for %s, brokerage balance is %s", cost, b.balance)
	}

	dividends := o.PerUnitDividend.Mul(o.Quantity)

	target := -1
	for i := range b.holdings {
		if b.holdings[i].matches(o.Name, o.Type) {
			target = i
			break
		}
	}

	var h Holding
	if target >= 0 {
		// Merge into the existing position at the weighted average cost.
		held := &b.holdings[target]
		held.Quantity = held.Quantity.Add(o.Quantity)
		held.TotalInvested = held.TotalInvested.Add(cost)
		held.AveragePrice = held.TotalInvested.Div(held.Quantity)
		held.CurrentPrice = o.CurrentPrice
		held.Dividends = held.Dividends.Add(dividends)
		held.refresh()
		h = *held
	} else {
		h = newHolding(o.Name, o.Type, o.Quantity, o.UnitPrice, o.CurrentPrice, dividends)
		b.holdings = append(b.holdings, h)
	}

	b.balance = b.balance.Sub(cost)
	b.appendInvestment(NewPurchase(o.Date, h.ID, h.Name, o.Quantity, o.UnitPrice))
	b.snapshotToday()
	b.notifier.publish(ColHoldings, ColInvestmentLog, ColBalance, ColHistory)
	b.notifier.publishBalance(b.balance)
	return h, nil
}

// --- Sell ---

// Sell disposes of units of a holding, crediting the proceeds to the
// brokerage balance. The holding's cost basis and accumulated dividends are
// reduced by the exact sold fraction, preserving the average price. Selling
// the whole position deletes the holding. A zero quantity means "sell all".
func (b *Book) Sell(day Date, holdingID string, qty Quantity, unitPrice Money) error {
	if day.IsZero() {
		day = Today()
	}
	i := b.findHolding(holdingID)
	if i < 0 {
		return fmt.Errorf("holding %q not found", holdingID)
	}
	h := &b.holdings[i]
	if qty.IsZero() {
		qty = h.Quantity
	}
	if !qty.IsPositive() {
		return fmt.Errorf("sale quantity must be positive, got %s", qty)
	}
	if !unitPrice.IsPositive() {
		return fmt.Errorf("sale price must be positive, got %s", unitPrice)
	}
	if h.Quantity.LessThan(qty) {
		return fmt.Errorf("cannot sell %s of %s, position is only %s", qty, h.Name, h.Quantity)
	}

	proceeds := unitPrice.Mul(qty)
	entry := NewSale(day, h.ID, h.Name, qty, unitPrice)

	if h.Quantity.Equal(qty) {
		// Full sale: do not retain a zero-quantity record.
		b.holdings = append(b.holdings[:i], b.holdings[i+1:]...)
	} else {
		ratio := qty.Div(h.Quantity)
		h.TotalInvested = h.TotalInvested.Sub(h.TotalInvested.Mul(ratio))
		h.Dividends = h.Dividends.Sub(h.Dividends.Mul(ratio))
		h.Quantity = h.Quantity.Sub(qty)
		h.refresh()
	}

	b.balance = b.balance.Add(proceeds)
	b.appendInvestment(entry)
	b.snapshotToday()
	b.notifier.publish(ColHoldings, ColInvestmentLog, ColBalance, ColHistory)
	b.notifier.publishBalance(b.balance)
	return nil
}

// --- Dividend ---

// Dividend records a dividend of perUnit per held unit, crediting the total
// to the brokerage balance. The holding's market value is untouched: the
// cash flows only through the dividends and return fields.
func (b *Book) Dividend(day Date, holdingID string, perUnit Money) error {
	if day.IsZero() {
		day = Today()
	}
	i := b.findHolding(holdingID)
	if i < 0 {
		return fmt.Errorf("holding %q not found", holdingID)
	}
	if !perUnit.IsPositive() {
		return fmt.Errorf("dividend per unit must be positive, got %s", perUnit)
	}

	h := &b.holdings[i]
	total := perUnit.Mul(h.Quantity)
	h.Dividends = h.Dividends.Add(total)
	h.refresh()

	b.balance = b.balance.Add(total)
	b.appendInvestment(NewDividendPayment(day, h.ID, h.Name, h.Quantity, perUnit))
	b.snapshotToday()
	b.notifier.publish(ColHoldings, ColInvestmentLog, ColBalance, ColHistory)
	b.notifier.publishBalance(b.balance)
	return nil
}

// --- Brokerage transfers ---

// Deposit moves cash into the brokerage balance and records the companion
// expense entry in the general transaction log.
func (b *Book) Deposit(day Date, amount Money) error {
	if day.IsZero() {
		day = Today()
	}
	if !amount.IsPositive() {
		return fmt.Errorf("deposit amount must be positive, got %s", amount)
	}
	b.balance = b.balance.Add(amount)
	b.appendGeneral(NewBrokerageDeposit(day, amount))
	b.notifier.publish(ColTransactions, ColBalance)
	b.notifier.publishBalance(b.balance)
	return nil
}

// Withdraw moves cash out of the brokerage balance and records the companion
// income entry in the general transaction log. It fails if the amount
// exceeds the balance.
func (b *Book) Withdraw(day Date, amount Money) error {
	if day.IsZero() {
		day = Today()
	}
	if !amount.IsPositive() {
		return fmt.Errorf("withdraw amount must be positive, got %s", amount)
	}
	if b.balance.LessThan(amount) {
		return fmt.Errorf("cannot withdraw %s, brokerage balance is %s", amount, b.balance)
	}
	b.balance = b.balance.Sub(amount)
	b.appendGeneral(NewBrokerageWithdraw(day, amount))
	b.notifier.publish(ColTransactions, ColBalance)
	b.notifier.publishBalance(b.balance)
	return nil
}

// --- Edit ---

// HoldingEdit is the input of an in-place correction of a holding.
type HoldingEdit struct {
	Name            string
	Type            string
	Quantity        Quantity
	AveragePrice    Money
	CurrentPrice    Money
	PerUnitDividend Money // optional, added on top of accumulated dividends
}

// EditHolding replaces the stored fields of a holding. The difference
// between the new and old cost basis is settled against the brokerage
// balance; an increase larger than the balance is rejected. No ledger entry
// is written: an edit is a correction, not a trade.
func (b *Book) EditHolding(id string, e HoldingEdit) error {
	i := b.findHolding(id)
	if i < 0 {
		return fmt.Errorf("holding %q not found", id)
	}
	if !e.Quantity.IsPositive() {
		return fmt.Errorf("quantity must be positive, got %s", e.Quantity)
	}
	if e.AveragePrice.IsNegative() || e.CurrentPrice.IsNegative() || e.PerUnitDividend.IsNegative() {
		return errors.New("prices and dividends cannot be negative")
	}
	if e.Type != "" && !b.typeExists(e.Type) {
		return fmt.Errorf("unknown asset type %q", e.Type)
	}

	h := &b.holdings[i]
	newInvested := e.AveragePrice.Mul(e.Quantity)
	diff := newInvested.Sub(h.TotalInvested)
	if diff.IsPositive() && b.balance.LessThan(diff) {
		return fmt.Errorf("cannot cover cost increase of %s, brokerage balance is %s", diff, b.balance)
	}

	if e.Name != "" {
		h.Name = e.Name
	}
	if e.Type != "" {
		h.Type = e.Type
	}
	h.Quantity = e.Quantity
	h.AveragePrice = e.AveragePrice
	if e.CurrentPrice.IsZero() {
		h.CurrentPrice = e.AveragePrice
	} else {
		h.CurrentPrice = e.CurrentPrice
	}
	h.TotalInvested = newInvested
	h.Dividends = h.Dividends.Add(e.PerUnitDividend.Mul(e.Quantity))
	h.refresh()

	b.balance = b.balance.Sub(diff)
	b.snapshotToday()
	b.notifier.publish(ColHoldings, ColBalance, ColHistory)
	b.notifier.publishBalance(b.balance)
	return nil
}

// UpdatePrice records a manually observed market price for a holding.
func (b *Book) UpdatePrice(id string, price Money) error {
	i := b.findHolding(id)
	if i < 0 {
		return fmt.Errorf("holding %q not found", id)
	}
	if price.IsNegative() {
		return fmt.Errorf("price cannot be negative, got %s", price)
	}
	h := &b.holdings[i]
	h.CurrentPrice = price
	h.refresh()
	b.snapshotToday()
	b.notifier.publish(ColHoldings, ColHistory)
	return nil
}

// --- Delete holding ---

// DeleteHolding removes a holding outright, refunds its remaining cost basis
// to the brokerage balance net of the dividends already credited, and drops
// every ledger entry that referenced it.
func (b *Book) DeleteHolding(id string) error {
	i := b.findHolding(id)
	if i < 0 {
		return fmt.Errorf("holding %q not found", id)
	}
	h := b.holdings[i]
	b.balance = b.balance.Add(h.TotalInvested).Sub(h.Dividends)
	b.holdings = append(b.holdings[:i], b.holdings[i+1:]...)

	kept := b.invLog[:0]
	for _, e := range b.invLog {
		if ref, ok := entryAssetRef(e); ok && ref.InvestmentID == id {
			continue
		}
		kept = append(kept, e)
	}
	b.invLog = kept

	b.snapshotToday()
	b.notifier.publish(ColHoldings, ColInvestmentLog, ColBalance, ColHistory)
	b.notifier.publishBalance(b.balance)
	return nil
}

func entryAssetRef(e Entry) (assetRef, bool) {
	switch v := e.(type) {
	case Purchase:
		return v.assetRef, true
	case Sale:
		return v.assetRef, true
	case DividendPayment:
		return v.assetRef, true
	default:
		return assetRef{}, false
	}
}

// --- Delete entry (reversal) ---

// DeleteEntry removes a ledger entry from the given log and exactly undoes
// the effect the entry had on the balance and holdings.
//
// Reversing a sale whose holding was since fully liquidated is rejected:
// a single sale entry does not carry enough state to faithfully reconstruct
// a deleted holding.
func (b *Book) DeleteEntry(id string, source EntrySource) error {
	switch source {
	case SourceGeneral:
		return b.deleteGeneralEntry(id)
	case SourceInvestment:
		return b.deleteInvestmentEntry(id)
	default:
		return fmt.Errorf("unknown entry source %q", source)
	}
}

func (b *Book) deleteGeneralEntry(id string) error {
	for i, e := range b.genLog {
		if e.ID() != id {
			continue
		}
		switch v := e.(type) {
		case BrokerageDeposit:
			b.balance = b.balance.Sub(v.Amount)
		case BrokerageWithdraw:
			b.balance = b.balance.Add(v.Amount)
		}
		b.genLog = append(b.genLog[:i], b.genLog[i+1:]...)
		b.notifier.publish(ColTransactions, ColBalance)
		b.notifier.publishBalance(b.balance)
		return nil
	}
	return fmt.Errorf("entry %q not found in general log", id)
}

func (b *Book) deleteInvestmentEntry(id string) error {
	for i, e := range b.invLog {
		if e.ID() != id {
			continue
		}
		switch v := e.(type) {
		case Purchase:
			b.reversePurchase(v)
		case DividendPayment:
			b.reverseDividend(v)
		case Sale:
			if err := b.reverseSale(v); err != nil {
				return err
			}
		}
		b.invLog = append(b.invLog[:i], b.invLog[i+1:]...)
		b.snapshotToday()
		b.notifier.publish(ColHoldings, ColInvestmentLog, ColBalance, ColHistory)
		b.notifier.publishBalance(b.balance)
		return nil
	}
	return fmt.Errorf("entry %q not found in investment log", id)
}

func (b *Book) reversePurchase(e Purchase) {
	i := b.findHolding(e.InvestmentID)
	if i < 0 {
		// The holding is gone; there is nothing left to restore.
		return
	}
	b.balance = b.balance.Add(e.Amount)
	h := &b.holdings[i]
	h.Quantity = h.Quantity.Sub(e.Quantity)
	h.TotalInvested = h.TotalInvested.Sub(e.Amount)
	if !h.Quantity.IsPositive() {
		b.holdings = append(b.holdings[:i], b.holdings[i+1:]...)
		return
	}
	h.AveragePrice = h.TotalInvested.Div(h.Quantity)
	h.refresh()
}

func (b *Book) reverseDividend(e DividendPayment) {
	i := b.findHolding(e.InvestmentID)
	if i < 0 {
		return
	}
	b.balance = b.balance.Sub(e.Amount)
	h := &b.holdings[i]
	h.Dividends = h.Dividends.Sub(e.Amount)
	h.refresh()
}

func (b *Book) reverseSale(e Sale) error {
	i := b.findHolding(e.InvestmentID)
	if i < 0 {
		return fmt.Errorf("cannot reverse sale of %s: the holding was fully sold", e.InvestmentName)
	}
	b.balance = b.balance.Sub(e.Amount)
	h := &b.holdings[i]
	h.Quantity = h.Quantity.Add(e.Quantity)
	h.TotalInvested = h.TotalInvested.Add(e.Price.Mul(e.Quantity))
	h.AveragePrice = h.TotalInvested.Div(h.Quantity)
	h.refresh()
	return nil
}

// --- Type registry ---

// AddType registers a new asset type tag. The id is derived from the name.
func (b *Book) AddType(name string) (AssetType, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return AssetType{}, errors.New("type name is missing")
	}
	id := slugify(name)
	if id == "" {
		return AssetType{}, fmt.Errorf("type name %q has no usable characters", name)
	}
	if b.typeExists(id) {
		return AssetType{}, fmt.Errorf("type %q already exists", id)
	}
	t := AssetType{ID: id, Name: name}
	b.types = append(b.types, t)
	b.notifier.publish(ColTypes)
	return t, nil
}

// RenameType changes the display name of an asset type tag.
func (b *Book) RenameType(id, newName string) error {
	newName = strings.TrimSpace(newName)
	if newName == "" {
		return errors.New("type name is missing")
	}
	for i := range b.types {
		if b.types[i].ID == id {
			b.types[i].Name = newName
			b.notifier.publish(ColTypes)
			return nil
		}
	}
	return fmt.Errorf("type %q not found", id)
}

// RemoveType deletes an asset type tag. It is rejected while any holding
// still uses the type.
func (b *Book) RemoveType(id string) error {
	for _, h := range b.holdings {
		if h.Type == id {
			return fmt.Errorf("type %q is in use by %s", id, h.Name)
		}
	}
	for i := range b.types {
		if b.types[i].ID == id {
			b.types = append(b.types[:i], b.types[i+1:]...)
			b.notifier.publish(ColTypes)
			return nil
		}
	}
	return fmt.Errorf("type %q not found", id)
}

// --- History ---

// RecordSnapshot aggregates the current holdings and upserts the result into
// the history under the given day. Re-snapshotting the same day overwrites
// that day's entry; missed days are never backfilled.
func (b *Book) RecordSnapshot(day Date) Snapshot {
	s := Snapshot{Date: day}
	for _, h := range b.holdings {
		s.TotalValue = s.TotalValue.Add(h.TotalValue)
		s.TotalInvested = s.TotalInvested.Add(h.TotalInvested)
		s.TotalDividends = s.TotalDividends.Add(h.Dividends)
	}
	b.history = b.history.Upsert(s)
	return s
}

func (b *Book) snapshotToday() { b.RecordSnapshot(Today()) }
