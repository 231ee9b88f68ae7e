// Package investidor provides the accounting and allocation engine for a
// personal investment portfolio organized by asset classes with target
// weights. It is designed to be local-first and auditable: every computation
// is a pure function over a snapshot of plain entity records, so results are
// deterministic and reproducible from the ledger file alone.
//
// The core functionalities include:
//   - Entity Model: validated records for asset classes, assets (merged
//     positions with weighted-average cost), income events, and capital
//     contributions.
//   - Historical Position Resolver: the number of units held of a ticker on
//     any past date, derived from lot purchase dates.
//   - Duplicate Detection: gating automatically ingested income records so
//     repeated syncs never create duplicates.
//   - Position Merge: folding a new lot into an existing position, keeping
//     the cost basis as a weighted average and attributing the cash source
//     through a Contribution record.
//   - Portfolio Accounting: summary metrics (wealth, real profit against
//     out-of-pocket capital, capital gain, yield on cost).
//   - Allocation Engine: a deterministic deficit-proportional split of a new
//     contribution across classes and assets toward their target weights.
//   - Data Persistence: encoding and decoding the ledger to a human-readable,
//     version-controllable JSONL file, plus single-document backup
//     import/export compatible with the original web application.
//
// This package serves as the foundational logic for the `ivd` command-line
// tool, ensuring that all operations are consistent and based on a single
// source of truth.
package investidor
