// Package daftar provides the data-management core of a single-page
// personal debt ledger: a fixed-size grid of 200 rows (name, lira amount,
// dollar amount, category, date), a name-based search and aggregation view,
// and a single-blob persistence layer with export/import for manual backup.
//
// The core functionalities include:
//   - Record Store: the fixed-length ordered sequence of ledger rows plus
//     the mutable settings (exchange rate, column labels, optional
//     password). Every mutation is a pure transformation producing a new
//     state snapshot.
//   - Persistence Gateway: serializing the full state to a single JSON
//     blob stored in a durable slot, with silent recovery to the default
//     state when the slot is missing or corrupt, and a repair-on-load step
//     that restores the fixed 200-row invariant.
//   - Aggregation Engine: deriving per-name summaries (row count, summed
//     lira, summed dollars) from a case-insensitive substring search.
//
// This package serves as the foundational logic for the `dz` command-line
// tool. The cosmetic AI features (meditation visuals and speech) live in
// the agent package and never affect the ledger state.
package daftar
