package pages

import (
	"errors"
	"io/fs"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestDecode(t *testing.T) {
	input := `
pages:
  - id: 0b0f4c52-6f5e-4f7d-9d35-1a3b0c1c2d3e
    source: a.pdf
    number: 2
    rotation: -90
  - source: b.pdf
    number: 1
    scale: 0.5
`
	pages, err := Decode(strings.NewReader(input))
	if err != nil {
		t.Fatalf("Decode() error = %v", err)
	}
	if len(pages) != 2 {
		t.Fatalf("len(pages) = %d, want 2", len(pages))
	}
	if pages[0].ID.String() != "0b0f4c52-6f5e-4f7d-9d35-1a3b0c1c2d3e" {
		t.Errorf("ID = %s", pages[0].ID)
	}
	if pages[0].Rotation != 270 || pages[0].Scale != 1 {
		t.Errorf("page 1 = %+v", pages[0])
	}
	if pages[1].ID.String() == "00000000-0000-0000-0000-000000000000" {
		t.Error("missing id should be generated")
	}
	if pages[1].Scale != 0.5 {
		t.Errorf("Scale = %v, want 0.5", pages[1].Scale)
	}
}

func TestDecodeEmpty(t *testing.T) {
	pages, err := Decode(strings.NewReader(""))
	if err != nil || len(pages) != 0 {
		t.Errorf("Decode(\"\") = %v, %v", pages, err)
	}
}

func TestDecodeErrors(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"no source", "pages:\n  - number: 1\n", "missing source"},
		{"bad number", "pages:\n  - source: a.pdf\n    number: 0\n", "invalid page number"},
		{"bad rotation", "pages:\n  - source: a.pdf\n    number: 1\n    rotation: 45\n", "multiple of 90"},
		{"bad id", "pages:\n  - id: nope\n    source: a.pdf\n    number: 1\n", "invalid id"},
		{"bad yaml", "pages: [", "decoding page list"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Decode(strings.NewReader(tt.input))
			if err == nil || !strings.Contains(err.Error(), tt.want) {
				t.Errorf("Decode() error = %v, want containing %q", err, tt.want)
			}
		})
	}
}

func TestSaveAndOpen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "book.yaml")

	d := NewDocument(numbered(3))
	_ = d.Rotate(90, 1)
	if err := d.SaveAs(path); err != nil {
		t.Fatalf("SaveAs() error = %v", err)
	}
	if d.IsModified() {
		t.Error("document still modified after save")
	}

	opened, err := OpenDocument(path)
	if err != nil {
		t.Fatalf("OpenDocument() error = %v", err)
	}
	if diff := cmp.Diff(d.Pages(), opened.Pages()); diff != "" {
		t.Errorf("round trip mismatch (-saved +opened):\n%s", diff)
	}
	if opened.History().CanUndo() {
		t.Error("history should not be persisted")
	}
	if opened.Path != path {
		t.Errorf("Path = %q, want %q", opened.Path, path)
	}
}

func TestSaveWithoutPath(t *testing.T) {
	if err := NewDocument(nil).Save(); err == nil {
		t.Error("Save() without path should fail")
	}
}

func TestOpenDocumentMissing(t *testing.T) {
	_, err := OpenDocument(filepath.Join(t.TempDir(), "missing.yaml"))
	if !errors.Is(err, fs.ErrNotExist) {
		t.Errorf("OpenDocument() error = %v, want not-exist", err)
	}
}
