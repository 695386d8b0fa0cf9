package entity

import "errors"

// ErrNotFound is returned when a named client or keyword does not exist,
// or when the request cannot match anything (malformed input).
var ErrNotFound = errors.New("not found")

// Query is a logical query understood by the store adapter: a statement with
// :name placeholders and the values bound to them. Name identifies the
// query in logs and errors.
type Query struct {
	Name   string
	SQL    string
	Params map[string]any
}

// Row is one result row keyed by column name. Values are scalars:
// int64, float64, bool, string, time.Time or nil.
type Row map[string]any
