package pages

import (
	"bytes"
	"errors"
	"slices"
	"strings"
	"testing"

	"github.com/dshills/pagestack/internal/history"
	"github.com/dshills/pagestack/internal/logging"
)

func numbered(n int) []Page {
	pages := make([]Page, n)
	for i := range pages {
		pages[i] = NewPage("doc.pdf", i+1)
	}
	return pages
}

func pageNumbers(pages []Page) []int {
	out := make([]int, len(pages))
	for i, p := range pages {
		out[i] = p.Number
	}
	return out
}

func equalInts(a, b []int) bool {
	return slices.Equal(a, b)
}

func checkNumbers(t *testing.T, d *Document, want ...int) {
	t.Helper()
	if got := pageNumbers(d.Pages()); !equalInts(got, want) {
		t.Errorf("pages = %v, want %v", got, want)
	}
}

func TestDocumentEdits(t *testing.T) {
	tests := []struct {
		name  string
		edit  func(d *Document) error
		want  []int
		label string
	}{
		{"delete", func(d *Document) error { return d.Delete(3, 0, 3) }, []int{2, 3}, LabelDelete},
		{"move", func(d *Document) error { return d.Move(0, 3) }, []int{2, 3, 4, 1}, LabelMove},
		{"duplicate", func(d *Document) error { return d.Duplicate(0, 2) }, []int{1, 1, 2, 3, 3, 4}, LabelDuplicate},
		{"reverse", func(d *Document) error { return d.Reverse() }, []int{4, 3, 2, 1}, LabelReverse},
		{"insert", func(d *Document) error {
			return d.Insert(1, Page{Source: "x.pdf", Number: 9})
		}, []int{1, 9, 2, 3, 4}, LabelInsert},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := NewDocument(numbered(4))

			if err := tt.edit(d); err != nil {
				t.Fatalf("edit error = %v", err)
			}
			checkNumbers(t, d, tt.want...)
			if !d.IsModified() {
				t.Error("document should be modified")
			}
			if label, ok := d.History().UndoLabel(); !ok || label != tt.label {
				t.Errorf("UndoLabel() = %q, %v, want %q", label, ok, tt.label)
			}

			if err := d.Undo(); err != nil {
				t.Fatalf("Undo() error = %v", err)
			}
			checkNumbers(t, d, 1, 2, 3, 4)

			if err := d.Redo(); err != nil {
				t.Fatalf("Redo() error = %v", err)
			}
			checkNumbers(t, d, tt.want...)
		})
	}
}

func TestDocumentRotate(t *testing.T) {
	d := NewDocument(numbered(3))

	if err := d.Rotate(90, 0, 2); err != nil {
		t.Fatalf("Rotate() error = %v", err)
	}
	if err := d.Rotate(-180, 0); err != nil {
		t.Fatalf("Rotate() error = %v", err)
	}

	want := []int{270, 0, 90}
	for i, p := range d.Pages() {
		if p.Rotation != want[i] {
			t.Errorf("page %d rotation = %d, want %d", i, p.Rotation, want[i])
		}
	}

	_ = d.Undo()
	if p, _ := d.Page(0); p.Rotation != 90 {
		t.Errorf("after undo rotation = %d, want 90", p.Rotation)
	}
}

func TestDocumentDuplicateGetsNewID(t *testing.T) {
	d := NewDocument(numbered(1))
	if err := d.Duplicate(0); err != nil {
		t.Fatalf("Duplicate() error = %v", err)
	}
	a, _ := d.Page(0)
	b, _ := d.Page(1)
	if a.ID == b.ID {
		t.Error("duplicate shares the original's ID")
	}
}

func TestDocumentInvalidEditsLeaveHistory(t *testing.T) {
	tests := []struct {
		name    string
		edit    func(d *Document) error
		wantErr error
	}{
		{"delete out of range", func(d *Document) error { return d.Delete(5) }, ErrIndexOutOfRange},
		{"delete nothing", func(d *Document) error { return d.Delete() }, ErrNoPages},
		{"move out of range", func(d *Document) error { return d.Move(0, 3) }, ErrIndexOutOfRange},
		{"rotate odd angle", func(d *Document) error { return d.Rotate(45, 0) }, ErrInvalidRotation},
		{"rotate negative index", func(d *Document) error { return d.Rotate(90, -1) }, ErrIndexOutOfRange},
		{"duplicate out of range", func(d *Document) error { return d.Duplicate(3) }, ErrIndexOutOfRange},
		{"insert past end", func(d *Document) error { return d.Insert(4, NewPage("x.pdf", 1)) }, ErrIndexOutOfRange},
		{"insert nothing", func(d *Document) error { return d.Insert(0) }, ErrNoPages},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := NewDocument(numbered(3))

			if err := tt.edit(d); !errors.Is(err, tt.wantErr) {
				t.Errorf("error = %v, want %v", err, tt.wantErr)
			}
			if d.History().Len() != 0 || d.History().CanUndo() {
				t.Error("invalid edit recorded history")
			}
			checkNumbers(t, d, 1, 2, 3)
		})
	}
}

func TestDocumentNoopEdits(t *testing.T) {
	d := NewDocument(numbered(1))

	_ = d.Move(0, 0)
	_ = d.Rotate(360, 0)
	_ = d.Reverse()

	if d.History().CanUndo() {
		t.Error("no-op edits should not be undoable")
	}
}

func TestDocumentUndoBoundaries(t *testing.T) {
	d := NewDocument(numbered(2))

	if err := d.Undo(); !errors.Is(err, history.ErrNothingToUndo) {
		t.Errorf("Undo() error = %v, want ErrNothingToUndo", err)
	}
	if err := d.Redo(); !errors.Is(err, history.ErrNothingToRedo) {
		t.Errorf("Redo() error = %v, want ErrNothingToRedo", err)
	}
	if d.IsModified() {
		t.Error("failed undo/redo should not mark the document modified")
	}
}

func TestDocumentBranchAfterUndo(t *testing.T) {
	d := NewDocument(numbered(3))

	_ = d.Delete(0)
	_ = d.Reverse()
	_ = d.Undo()
	_ = d.Undo()
	checkNumbers(t, d, 1, 2, 3)

	if err := d.Move(2, 0); err != nil {
		t.Fatalf("Move() error = %v", err)
	}
	if d.History().CanRedo() {
		t.Error("new edit should discard redo history")
	}
	checkNumbers(t, d, 3, 1, 2)
	if n := d.History().Len(); n != 2 {
		t.Errorf("History().Len() = %d, want 2", n)
	}

	if err := d.Undo(); err != nil {
		t.Fatalf("Undo() error = %v", err)
	}
	checkNumbers(t, d, 1, 2, 3)
	if d.History().CanUndo() {
		t.Error("undo should stop at the state the branch started from")
	}
}

func TestDocumentReplace(t *testing.T) {
	d := NewDocument(numbered(2))
	_ = d.Delete(0)

	d.Replace(numbered(5))

	if d.Len() != 5 || d.History().Len() != 0 || d.IsModified() {
		t.Errorf("Replace() left Len=%d history=%d modified=%v", d.Len(), d.History().Len(), d.IsModified())
	}
}

func TestDocumentLogsCommits(t *testing.T) {
	var buf bytes.Buffer
	log := logging.New(logging.Config{Level: logging.LevelDebug, Output: &buf})
	d := NewDocument(numbered(2), WithLogger(log))

	_ = d.Delete(0)
	_ = d.Undo()

	out := buf.String()
	if !strings.Contains(out, "commit, cursor at 1/1") {
		t.Errorf("commit not logged: %q", out)
	}
	if !strings.Contains(out, "label=Delete pages") {
		t.Errorf("label not logged: %q", out)
	}
	if !strings.Contains(out, "undo, cursor at 0/2") {
		t.Errorf("undo not logged: %q", out)
	}
}

func TestDocumentName(t *testing.T) {
	d := NewDocument(nil)
	if d.Name() != "Untitled" {
		t.Errorf("Name() = %q", d.Name())
	}
	d.Path = "/tmp/work/book.yaml"
	if d.Name() != "book.yaml" {
		t.Errorf("Name() = %q", d.Name())
	}
}
