package history

import (
	"iter"
	"slices"
	"time"

	"github.com/tiendc/go-deepcopy"
)

// Value is a single opaque cell of a row. The history never inspects it.
type Value = any

// Row is an ordered, fixed-arity tuple of values.
type Row []Value

// Collection is the live, mutable, ordered sequence of rows the Manager
// snapshots and restores. The Manager does not own it.
type Collection interface {
	// All yields every row in order.
	All() iter.Seq[Row]

	// Clear removes every row.
	Clear()

	// Append adds a row at the end.
	Append(row Row)
}

// Snapshot is a captured copy of a collection.
type Snapshot struct {
	// Rows are the captured rows, in collection order.
	Rows []Row

	// Label names the action that produced this state.
	// Empty for the state before the first commit.
	Label string

	// Taken is when the snapshot was captured.
	Taken time.Time
}

// EntryInfo describes one recorded snapshot.
type EntryInfo struct {
	Label   string
	Rows    int
	Taken   time.Time
	Current bool // the live collection reflects this entry
}

// CloneRow returns a deep copy of row. Values that cannot be deep-copied
// are copied by assignment.
func CloneRow(row Row) Row {
	if row == nil {
		return nil
	}
	var dst Row
	if err := deepcopy.Copy(&dst, row); err != nil || len(dst) != len(row) {
		return slices.Clone(row)
	}
	return dst
}

// capture copies every row of c.
func capture(c Collection, clone func(Row) Row) []Row {
	var rows []Row
	for row := range c.All() {
		rows = append(rows, clone(row))
	}
	return rows
}
