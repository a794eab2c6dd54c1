package pages

import (
	"errors"
	"testing"

	"github.com/dshills/pagestack/internal/history"
)

// Store must be usable wherever the history expects a live collection.
var _ history.Collection = (*Store)(nil)

func TestStore(t *testing.T) {
	a, b := NewPage("a.pdf", 1), NewPage("b.pdf", 1)
	s := NewStore(a, b)

	if s.Len() != 2 {
		t.Fatalf("Len() = %d, want 2", s.Len())
	}
	got, err := s.At(1)
	if err != nil || got != b {
		t.Errorf("At(1) = %+v, %v, want %+v", got, err, b)
	}
	if _, err := s.At(2); !errors.Is(err, ErrIndexOutOfRange) {
		t.Errorf("At(2) error = %v, want ErrIndexOutOfRange", err)
	}

	n := 0
	for row := range s.All() {
		if len(row) != rowArity {
			t.Errorf("row %d has %d columns", n, len(row))
		}
		n++
	}
	if n != 2 {
		t.Errorf("All() yielded %d rows, want 2", n)
	}

	s.Clear()
	if s.Len() != 0 {
		t.Errorf("Len() after Clear = %d", s.Len())
	}
	s.Append(a.Row())
	if pages := s.Pages(); len(pages) != 1 || pages[0] != a {
		t.Errorf("Pages() = %+v", pages)
	}
}

func TestStorePagesSkipsBadRows(t *testing.T) {
	s := NewStore(NewPage("a.pdf", 1))
	s.Append(history.Row{"junk"})

	if got := len(s.Pages()); got != 1 {
		t.Errorf("len(Pages()) = %d, want 1", got)
	}
}

func TestStoreMove(t *testing.T) {
	tests := []struct {
		from, to int
		want     []int
	}{
		{0, 2, []int{2, 3, 1, 4}},
		{3, 0, []int{4, 1, 2, 3}},
		{1, 2, []int{1, 3, 2, 4}},
	}

	for _, tt := range tests {
		s := NewStore(numbered(4)...)
		s.move(tt.from, tt.to)
		got := pageNumbers(s.Pages())
		if !equalInts(got, tt.want) {
			t.Errorf("move(%d, %d) = %v, want %v", tt.from, tt.to, got, tt.want)
		}
	}
}
