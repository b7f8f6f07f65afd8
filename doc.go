// Package networth provides the in-memory ledger behind a personal net worth tracker.
//
// Users record assets (cash, stocks, funds, real estate) and loans. The Ledger keeps
// both collections in insertion order and derives their aggregates:
//   - Totals: the sum of asset amounts, the sum of loan amounts and the net worth.
//   - Freshness: the time of the last asset mutation or refresh.
//   - History: period-over-period changes, a chart series and a return rate, all
//     answered by a pluggable HistoricalDataSource.
//
// Presentation layers bind to a Ledger by subscribing to its change notifications.
// Nothing in this package persists data or talks to the network.
package networth
