package pages

import (
	"iter"
	"slices"

	"github.com/dshills/pagestack/internal/history"
)

// Store is the ordered page collection. It satisfies history.Collection.
type Store struct {
	rows []history.Row
}

// NewStore creates a store holding pages in order.
func NewStore(pages ...Page) *Store {
	s := &Store{}
	for _, p := range pages {
		s.rows = append(s.rows, p.Row())
	}
	return s
}

// All yields every row in order.
func (s *Store) All() iter.Seq[history.Row] {
	return slices.Values(s.rows)
}

// Clear removes every row.
func (s *Store) Clear() {
	clear(s.rows)
	s.rows = s.rows[:0]
}

// Append adds a row at the end.
func (s *Store) Append(row history.Row) {
	s.rows = append(s.rows, row)
}

// Len returns the number of pages.
func (s *Store) Len() int {
	return len(s.rows)
}

// At returns the page at index i.
func (s *Store) At(i int) (Page, error) {
	if i < 0 || i >= len(s.rows) {
		return Page{}, ErrIndexOutOfRange
	}
	return PageFromRow(s.rows[i])
}

// Pages decodes every row. Rows that fail to decode are skipped.
func (s *Store) Pages() []Page {
	out := make([]Page, 0, len(s.rows))
	for _, row := range s.rows {
		if p, err := PageFromRow(row); err == nil {
			out = append(out, p)
		}
	}
	return out
}

func (s *Store) insert(at int, pages ...Page) {
	rows := make([]history.Row, len(pages))
	for i, p := range pages {
		rows[i] = p.Row()
	}
	s.rows = slices.Insert(s.rows, at, rows...)
}

func (s *Store) remove(i int) {
	s.rows = slices.Delete(s.rows, i, i+1)
}

func (s *Store) move(from, to int) {
	row := s.rows[from]
	s.rows = slices.Delete(s.rows, from, from+1)
	s.rows = slices.Insert(s.rows, to, row)
}

func (s *Store) set(i int, p Page) {
	s.rows[i] = p.Row()
}

func (s *Store) reverse() {
	slices.Reverse(s.rows)
}
