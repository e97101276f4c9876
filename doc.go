// Package carteira provides the types and operations of a personal
// investment ledger in BRL. It is designed to be local-first and auditable:
// every movement of money is an explicit entry, and deleting an entry
// reverses exactly the effect it had.
//
// The core functionalities include:
//   - Holdings: aggregated positions per asset, carrying quantity, weighted
//     average price, current price, cost basis, accumulated dividends and
//     the derived market value and return.
//   - Brokerage balance: the cash account all purchases are paid from and
//     all sale proceeds and dividends are credited to, funded by explicit
//     transfers from the rest of the budget.
//   - Ledgers: an investment log (purchases, sales, dividends) and the
//     ledger-owned slice of a general transaction log shared with other
//     features (brokerage deposits and withdrawals).
//   - History: one aggregate snapshot per Brasília calendar day, upserted
//     on every operation and on every load of the book.
//   - Persistence: named JSON collections behind a small Store port, with a
//     directory-of-files backend and a SQLite backend.
//   - Notification: change hints published after every mutating operation,
//     so interested views can reload what they display.
//
// This package serves as the foundational logic for the `cta` command-line
// tool.
package carteira
