package carteira

import (
	"bytes"
	"encoding/json"
	"fmt"
	"sort"
)

// encodeEntries marshals a log as a JSON array, each entry in its own wire
// shape (see the MarshalJSON methods in entry.go).
func encodeEntries(log []Entry) ([]byte, error) {
	if len(log) == 0 {
		return []byte("[]"), nil
	}
	return json.Marshal(log)
}

// decodeInvestmentEntries parses the investment log collection. Entries are
// discriminated by their "transactionType" field.
func decodeInvestmentEntries(data []byte) ([]Entry, error) {
	var raws []json.RawMessage
	if err := json.Unmarshal(data, &raws); err != nil {
		return nil, fmt.Errorf("invalid investment log: %w", err)
	}
	var out []Entry
	for _, raw := range raws {
		var probe struct {
			TransactionType EntryKind `json:"transactionType"`
		}
		if err := json.Unmarshal(raw, &probe); err != nil {
			return nil, fmt.Errorf("invalid investment log entry: %w", err)
		}
		var (
			e   Entry
			err error
		)
		switch probe.TransactionType {
		case KindPurchase:
			var v Purchase
			err = json.Unmarshal(raw, &v)
			e = v
		case KindSale:
			var v Sale
			err = json.Unmarshal(raw, &v)
			e = v
		case KindDividend:
			var v DividendPayment
			err = json.Unmarshal(raw, &v)
			e = v
		default:
			return nil, fmt.Errorf("unknown transaction type %q", probe.TransactionType)
		}
		if err != nil {
			return nil, fmt.Errorf("invalid %s entry: %w", probe.TransactionType, err)
		}
		out = append(out, e)
	}
	stableSortEntries(out)
	return out, nil
}

// decodeGeneralEntries parses the shared general transaction collection. It
// returns the ledger-owned brokerage transfers as typed entries and carries
// every other transaction verbatim, so a later save never drops them.
//
// Transfers are discriminated by the nested "source.type" field; records
// written before that field existed are recognized by their category.
func decodeGeneralEntries(data []byte) (entries []Entry, foreign []json.RawMessage, err error) {
	var raws []json.RawMessage
	if err := json.Unmarshal(data, &raws); err != nil {
		return nil, nil, fmt.Errorf("invalid transaction log: %w", err)
	}
	for _, raw := range raws {
		var probe struct {
			Source struct {
				Type EntryKind `json:"type"`
			} `json:"source"`
			Category string `json:"category"`
		}
		if err := json.Unmarshal(raw, &probe); err != nil {
			return nil, nil, fmt.Errorf("invalid transaction log entry: %w", err)
		}
		kind := probe.Source.Type
		if kind == "" {
			switch probe.Category {
			case "transferencia_corretora":
				kind = KindBrokerageDeposit
			case "resgate_corretora":
				kind = KindBrokerageWithdraw
			}
		}
		switch kind {
		case KindBrokerageDeposit:
			var v BrokerageDeposit
			if err := json.Unmarshal(raw, &v); err != nil {
				return nil, nil, fmt.Errorf("invalid brokerage deposit entry: %w", err)
			}
			entries = append(entries, v)
		case KindBrokerageWithdraw:
			var v BrokerageWithdraw
			if err := json.Unmarshal(raw, &v); err != nil {
				return nil, nil, fmt.Errorf("invalid brokerage withdraw entry: %w", err)
			}
			entries = append(entries, v)
		default:
			foreign = append(foreign, raw)
		}
	}
	stableSortEntries(entries)
	return entries, foreign, nil
}

// encodeGeneralLog merges the ledger's brokerage transfers back with the
// foreign transactions and marshals the combined collection, ordered by
// date.
func encodeGeneralLog(entries []Entry, foreign []json.RawMessage) ([]byte, error) {
	type dated struct {
		date string
		raw  json.RawMessage
	}
	all := make([]dated, 0, len(entries)+len(foreign))
	for _, e := range entries {
		raw, err := json.Marshal(e)
		if err != nil {
			return nil, err
		}
		all = append(all, dated{date: e.When().String(), raw: raw})
	}
	for _, raw := range foreign {
		var probe struct {
			Date string `json:"date"`
		}
		// A foreign record with no parsable date sorts first rather than
		// being dropped.
		_ = json.Unmarshal(raw, &probe)
		all = append(all, dated{date: probe.Date, raw: raw})
	}
	// ISO dates sort chronologically as strings. The sort is stable so the
	// relative order within a day is preserved.
	sort.SliceStable(all, func(i, j int) bool { return all[i].date < all[j].date })

	var buf bytes.Buffer
	buf.WriteByte('[')
	for i, d := range all {
		if i > 0 {
			buf.WriteByte(',')
		}
		buf.Write(d.raw)
	}
	buf.WriteByte(']')
	return buf.Bytes(), nil
}
