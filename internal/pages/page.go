package pages

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/dshills/pagestack/internal/history"
)

// Column positions of a page row.
const (
	colID = iota
	colSource
	colNumber
	colRotation
	colScale
	rowArity
)

// Page is one page of a source document placed in the arrangement.
type Page struct {
	ID       uuid.UUID
	Source   string  // source file the page comes from
	Number   int     // 1-based page number within Source
	Rotation int     // clockwise degrees, one of 0, 90, 180, 270
	Scale    float64 // 1 is the original size
}

// NewPage creates a page with a fresh ID.
func NewPage(source string, number int) Page {
	return Page{
		ID:     uuid.New(),
		Source: source,
		Number: number,
		Scale:  1,
	}
}

// String returns a short description like "report.pdf:3".
func (p Page) String() string {
	return fmt.Sprintf("%s:%d", p.Source, p.Number)
}

// Row encodes p as a history row.
func (p Page) Row() history.Row {
	row := make(history.Row, rowArity)
	row[colID] = p.ID
	row[colSource] = p.Source
	row[colNumber] = p.Number
	row[colRotation] = p.Rotation
	row[colScale] = p.Scale
	return row
}

// PageFromRow decodes a row produced by Page.Row.
func PageFromRow(row history.Row) (Page, error) {
	if len(row) != rowArity {
		return Page{}, fmt.Errorf("%w: %d columns, want %d", ErrBadRow, len(row), rowArity)
	}

	var p Page
	var ok bool
	if p.ID, ok = row[colID].(uuid.UUID); !ok {
		return Page{}, fmt.Errorf("%w: id is %T", ErrBadRow, row[colID])
	}
	if p.Source, ok = row[colSource].(string); !ok {
		return Page{}, fmt.Errorf("%w: source is %T", ErrBadRow, row[colSource])
	}
	if p.Number, ok = row[colNumber].(int); !ok {
		return Page{}, fmt.Errorf("%w: number is %T", ErrBadRow, row[colNumber])
	}
	if p.Rotation, ok = row[colRotation].(int); !ok {
		return Page{}, fmt.Errorf("%w: rotation is %T", ErrBadRow, row[colRotation])
	}
	if p.Scale, ok = row[colScale].(float64); !ok {
		return Page{}, fmt.Errorf("%w: scale is %T", ErrBadRow, row[colScale])
	}
	return p, nil
}

// normalizeRotation maps any multiple of 90 into [0, 360).
func normalizeRotation(deg int) int {
	return ((deg % 360) + 360) % 360
}
