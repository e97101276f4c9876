package carteira

import (
	"fmt"

	"github.com/google/uuid"
)

// EntryKind is a typed string identifying the effect of a ledger entry.
type EntryKind string

// Entry kinds. The first three live in the investment log, the last two in
// the general transaction log.
const (
	KindPurchase          EntryKind = "purchase"
	KindSale              EntryKind = "sale"
	KindDividend          EntryKind = "dividend"
	KindBrokerageDeposit  EntryKind = "brokerage_deposit"
	KindBrokerageWithdraw EntryKind = "brokerage_withdraw"
)

// EntrySource identifies which log an entry belongs to.
type EntrySource string

const (
	// SourceInvestment is the investment-specific log.
	SourceInvestment EntrySource = "investment"
	// SourceGeneral is the general transaction log, shared with non-ledger
	// features of the application.
	SourceGeneral EntrySource = "general"
)

// Entry is the common interface of all ledger entries. Entries are immutable
// once created; the only allowed mutation is deletion, which must reverse
// exactly the effect the entry had.
type Entry interface {
	Kind() EntryKind
	ID() string
	When() Date
	Equal(Entry) bool
}

type baseEntry struct {
	EntryID     string `json:"id"`
	Date        Date   `json:"date"`
	Description string `json:"description,omitempty"`
}

func (e baseEntry) ID() string { return e.EntryID }
func (e baseEntry) When() Date { return e.Date }

// assetRef ties an investment-log entry to the holding it affected.
type assetRef struct {
	InvestmentID   string `json:"investmentId"`
	InvestmentName string `json:"investmentName"`
}

// --- Purchase ---

// Purchase records the acquisition of units of an asset. Amount is the total
// cost debited from the brokerage balance (Quantity × Price).
type Purchase struct {
	baseEntry
	assetRef
	Quantity Quantity `json:"quantity"`
	Price    Money    `json:"price"`
	Amount   Money    `json:"amount"`
}

// NewPurchase creates a purchase entry for qty units at the given unit price.
func NewPurchase(day Date, investmentID, name string, qty Quantity, price Money) Purchase {
	return Purchase{
		baseEntry: baseEntry{
			EntryID:     uuid.NewString(),
			Date:        day,
			Description: fmt.Sprintf("Compra de %s %s", qty, name),
		},
		assetRef: assetRef{InvestmentID: investmentID, InvestmentName: name},
		Quantity: qty,
		Price:    price,
		Amount:   price.Mul(qty),
	}
}

func (e Purchase) Kind() EntryKind { return KindPurchase }

func (e Purchase) Equal(other Entry) bool {
	o, ok := other.(Purchase)
	return ok && e.baseEntry == o.baseEntry && e.assetRef == o.assetRef &&
		e.Quantity.Equal(o.Quantity) && e.Price.Equal(o.Price) && e.Amount.Equal(o.Amount)
}

// MarshalJSON implements the json.Marshaler interface for Purchase.
func (e Purchase) MarshalJSON() ([]byte, error) {
	var w jsonObjectWriter
	w.Append("id", e.EntryID)
	w.Append("date", e.Date)
	w.Append("transactionType", e.Kind())
	w.Optional("description", e.Description)
	w.Append("amount", e.Amount)
	w.Append("investmentId", e.InvestmentID)
	w.Append("investmentName", e.InvestmentName)
	w.Append("quantity", e.Quantity)
	w.Append("price", e.Price)
	return w.MarshalJSON()
}

// --- Sale ---

// Sale records the disposal of units of an asset. Amount is the total
// proceeds credited to the brokerage balance (Quantity × Price).
type Sale struct {
	baseEntry
	assetRef
	Quantity Quantity `json:"quantity"`
	Price    Money    `json:"price"`
	Amount   Money    `json:"amount"`
}

// NewSale creates a sale entry for qty units at the given unit price.
func NewSale(day Date, investmentID, name string, qty Quantity, price Money) Sale {
	return Sale{
		baseEntry: baseEntry{
			EntryID:     uuid.NewString(),
			Date:        day,
			Description: fmt.Sprintf("Venda de %s %s", qty, name),
		},
		assetRef: assetRef{InvestmentID: investmentID, InvestmentName: name},
		Quantity: qty,
		Price:    price,
		Amount:   price.Mul(qty),
	}
}

func (e Sale) Kind() EntryKind { return KindSale }

func (e Sale) Equal(other Entry) bool {
	o, ok := other.(Sale)
	return ok && e.baseEntry == o.baseEntry && e.assetRef == o.assetRef &&
		e.Quantity.Equal(o.Quantity) && e.Price.Equal(o.Price) && e.Amount.Equal(o.Amount)
}

// MarshalJSON implements the json.Marshaler interface for Sale.
func (e Sale) MarshalJSON() ([]byte, error) {
	var w jsonObjectWriter
	w.Append("id", e.EntryID)
	w.Append("date", e.Date)
	w.Append("transactionType", e.Kind())
	w.Optional("description", e.Description)
	w.Append("amount", e.Amount)
	w.Append("investmentId", e.InvestmentID)
	w.Append("investmentName", e.InvestmentName)
	w.Append("quantity", e.Quantity)
	w.Append("price", e.Price)
	return w.MarshalJSON()
}

// --- DividendPayment ---

// DividendPayment records a dividend received for a held asset. PerUnit is
// the amount received per unit; Amount is PerUnit × Quantity, the cash
// credited to the brokerage balance.
type DividendPayment struct {
	baseEntry
	assetRef
	Quantity Quantity `json:"quantity"`
	PerUnit  Money    `json:"dividendPerShare"`
	Amount   Money    `json:"amount"`
}

// NewDividendPayment creates a dividend entry for a holding of qty units.
func NewDividendPayment(day Date, investmentID, name string, qty Quantity, perUnit Money) DividendPayment {
	return DividendPayment{
		baseEntry: baseEntry{
			EntryID:     uuid.NewString(),
			Date:        day,
			Description: fmt.Sprintf("Dividendos de %s", name),
		},
		assetRef: assetRef{InvestmentID: investmentID, InvestmentName: name},
		Quantity: qty,
		PerUnit:  perUnit,
		Amount:   perUnit.Mul(qty),
	}
}

func (e DividendPayment) Kind() EntryKind { return KindDividend }

func (e DividendPayment) Equal(other Entry) bool {
	o, ok := other.(DividendPayment)
	return ok && e.baseEntry == o.baseEntry && e.assetRef == o.assetRef &&
		e.Quantity.Equal(o.Quantity) && e.PerUnit.Equal(o.PerUnit) && e.Amount.Equal(o.Amount)
}

// MarshalJSON implements the json.Marshaler interface for DividendPayment.
func (e DividendPayment) MarshalJSON() ([]byte, error) {
	var w jsonObjectWriter
	w.Append("id", e.EntryID)
	w.Append("date", e.Date)
	w.Append("transactionType", e.Kind())
	w.Optional("description", e.Description)
	w.Append("amount", e.Amount)
	w.Append("investmentId", e.InvestmentID)
	w.Append("investmentName", e.InvestmentName)
	w.Append("quantity", e.Quantity)
	w.Append("dividendPerShare", e.PerUnit)
	return w.MarshalJSON()
}

// --- BrokerageDeposit ---

// BrokerageDeposit records cash moved into the brokerage balance. In the
// shared general log it appears as an expense ("despesa") of category
// "transferencia_corretora", so budget views account for the outflow.
type BrokerageDeposit struct {
	baseEntry
	Amount Money `json:"amount"`
}

// NewBrokerageDeposit creates a deposit entry for the given amount.
func NewBrokerageDeposit(day Date, amount Money) BrokerageDeposit {
	return BrokerageDeposit{
		baseEntry: baseEntry{
			EntryID:     uuid.NewString(),
			Date:        day,
			Description: "Aporte para Saldo da Corretora",
		},
		Amount: amount,
	}
}

func (e BrokerageDeposit) Kind() EntryKind { return KindBrokerageDeposit }

// FlowType is the general-log direction tag of the entry.
func (e BrokerageDeposit) FlowType() string { return "despesa" }

// Category is the general-log category tag of the entry.
func (e BrokerageDeposit) Category() string { return "transferencia_corretora" }

func (e BrokerageDeposit) Equal(other Entry) bool {
	o, ok := other.(BrokerageDeposit)
	return ok && e.baseEntry == o.baseEntry && e.Amount.Equal(o.Amount)
}

// MarshalJSON implements the json.Marshaler interface for BrokerageDeposit.
func (e BrokerageDeposit) MarshalJSON() ([]byte, error) {
	return marshalGeneralEntry(e.baseEntry, e.Amount, e.FlowType(), e.Category(), e.Kind())
}

// --- BrokerageWithdraw ---

// BrokerageWithdraw records cash moved out of the brokerage balance. In the
// shared general log it appears as income ("receita") of category
// "resgate_corretora".
type BrokerageWithdraw struct {
	baseEntry
	Amount Money `json:"amount"`
}

// NewBrokerageWithdraw creates a withdrawal entry for the given amount.
func NewBrokerageWithdraw(day Date, amount Money) BrokerageWithdraw {
	return BrokerageWithdraw{
		baseEntry: baseEntry{
			EntryID:     uuid.NewString(),
			Date:        day,
			Description: "Retirada do Saldo da Corretora",
		},
		Amount: amount,
	}
}

func (e BrokerageWithdraw) Kind() EntryKind { return KindBrokerageWithdraw }

// FlowType is the general-log direction tag of the entry.
func (e BrokerageWithdraw) FlowType() string { return "receita" }

// Category is the general-log category tag of the entry.
func (e BrokerageWithdraw) Category() string { return "resgate_corretora" }

func (e BrokerageWithdraw) Equal(other Entry) bool {
	o, ok := other.(BrokerageWithdraw)
	return ok && e.baseEntry == o.baseEntry && e.Amount.Equal(o.Amount)
}

// MarshalJSON implements the json.Marshaler interface for BrokerageWithdraw.
func (e BrokerageWithdraw) MarshalJSON() ([]byte, error) {
	return marshalGeneralEntry(e.baseEntry, e.Amount, e.FlowType(), e.Category(), e.Kind())
}

// marshalGeneralEntry writes a general-log entry in the shared transaction
// shape, with the ledger's discriminator nested under "source".
func marshalGeneralEntry(base baseEntry, amount Money, flowType, category string, kind EntryKind) ([]byte, error) {
	var source jsonObjectWriter
	source.Append("type", kind)

	var w jsonObjectWriter
	w.Append("id", base.EntryID)
	w.Append("date", base.Date)
	w.Optional("description", base.Description)
	w.Append("amount", amount)
	w.Append("type", flowType)
	w.Append("category", category)
	w.Append("source", &source)
	return w.MarshalJSON()
}
