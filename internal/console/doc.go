// Package console implements the operator dashboard over the Arena backend
// admin API.
//
// The package aggregates session listings with their details, gates the
// mutating actions (create, end, force-score) on local preconditions, and
// renders HTMX-aware pages. It holds no session state of its own; every page
// load reflects the backend.
package console
