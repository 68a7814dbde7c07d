// Package arena defines the console's view of the Arena competition
// platform: sessions, attempts, and pot distributions as reported by the
// backend admin API, plus the pure decision rules the console applies to
// them. The backend is authoritative for every field; nothing in this
// package infers state transitions locally.
package arena
