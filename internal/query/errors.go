// Package query implements the read-only queries over the catalog: region and
// restaurant filtering, global search and the popularity ranking.
package query

import "errors"

var (
	// ErrEmptyResult reports a filter or search that ran and matched nothing.
	// It is distinct from a query that was never run.
	ErrEmptyResult = errors.New("no results")

	// ErrBlankQuery is returned for empty or whitespace-only search text. The
	// search is not performed; callers show the cleared state.
	ErrBlankQuery = errors.New("blank query")
)
