package pages

import (
	"path/filepath"
	"slices"

	"github.com/google/uuid"

	"github.com/dshills/pagestack/internal/history"
	"github.com/dshills/pagestack/internal/logging"
)

// Action labels recorded in the history.
const (
	LabelInsert    = "Insert pages"
	LabelDelete    = "Delete pages"
	LabelMove      = "Move page"
	LabelRotate    = "Rotate pages"
	LabelDuplicate = "Duplicate pages"
	LabelReverse   = "Reverse order"
)

// Document is a page arrangement with undoable edits.
type Document struct {
	// Path is the file the document was loaded from (empty if new).
	Path string

	store    *Store
	hist     *history.Manager
	log      *logging.Logger
	modified bool
}

// DocumentOption configures a Document.
type DocumentOption func(*Document)

// WithLogger sets the document's logger.
func WithLogger(log *logging.Logger) DocumentOption {
	return func(d *Document) {
		if log != nil {
			d.log = log.WithComponent("document")
		}
	}
}

// NewDocument creates a document holding pages.
func NewDocument(pages []Page, opts ...DocumentOption) *Document {
	store := NewStore(pages...)
	d := &Document{
		store: store,
		hist:  history.New(store),
		log:   logging.Nop(),
	}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// Name returns the display name.
func (d *Document) Name() string {
	if d.Path == "" {
		return "Untitled"
	}
	return filepath.Base(d.Path)
}

// History returns the document's undo history.
func (d *Document) History() *history.Manager {
	return d.hist
}

// Len returns the number of pages.
func (d *Document) Len() int {
	return d.store.Len()
}

// Page returns the page at index i.
func (d *Document) Page(i int) (Page, error) {
	return d.store.At(i)
}

// Pages returns every page in order.
func (d *Document) Pages() []Page {
	return d.store.Pages()
}

// IsModified returns true if the document has unsaved changes.
func (d *Document) IsModified() bool {
	return d.modified
}

// Replace swaps in a new page list and forgets all history.
func (d *Document) Replace(pages []Page) {
	d.store.Clear()
	d.store.insert(0, pages...)
	d.hist.Reset()
	d.modified = false
	d.log.Info("loaded %d pages", len(pages))
}

// Insert adds pages at index at. Pages without an ID get a new one.
func (d *Document) Insert(at int, pages ...Page) error {
	if len(pages) == 0 {
		return ErrNoPages
	}
	if at < 0 || at > d.store.Len() {
		return ErrIndexOutOfRange
	}

	added := make([]Page, len(pages))
	for i, p := range pages {
		if p.ID == uuid.Nil {
			p.ID = uuid.New()
		}
		if p.Scale == 0 {
			p.Scale = 1
		}
		p.Rotation = normalizeRotation(p.Rotation)
		added[i] = p
	}

	d.commit(LabelInsert)
	d.store.insert(at, added...)
	return nil
}

// Delete removes the pages at the given indices.
func (d *Document) Delete(indices ...int) error {
	sorted, err := d.selection(indices)
	if err != nil {
		return err
	}

	d.commit(LabelDelete)
	for _, i := range slices.Backward(sorted) {
		d.store.remove(i)
	}
	return nil
}

// Move moves the page at from so that it ends up at index to.
func (d *Document) Move(from, to int) error {
	n := d.store.Len()
	if from < 0 || from >= n || to < 0 || to >= n {
		return ErrIndexOutOfRange
	}
	if from == to {
		return nil
	}

	d.commit(LabelMove)
	d.store.move(from, to)
	return nil
}

// Rotate turns the given pages clockwise by angle degrees.
func (d *Document) Rotate(angle int, indices ...int) error {
	if angle%90 != 0 {
		return ErrInvalidRotation
	}
	sorted, err := d.selection(indices)
	if err != nil {
		return err
	}

	pages := make([]Page, len(sorted))
	for k, i := range sorted {
		p, err := d.store.At(i)
		if err != nil {
			return err
		}
		p.Rotation = normalizeRotation(p.Rotation + angle)
		pages[k] = p
	}
	if normalizeRotation(angle) == 0 {
		return nil
	}

	d.commit(LabelRotate)
	for k, i := range sorted {
		d.store.set(i, pages[k])
	}
	return nil
}

// Duplicate inserts a copy of each given page right after it.
func (d *Document) Duplicate(indices ...int) error {
	sorted, err := d.selection(indices)
	if err != nil {
		return err
	}

	copies := make([]Page, len(sorted))
	for k, i := range sorted {
		p, err := d.store.At(i)
		if err != nil {
			return err
		}
		p.ID = uuid.New()
		copies[k] = p
	}

	d.commit(LabelDuplicate)
	for k := len(sorted) - 1; k >= 0; k-- {
		d.store.insert(sorted[k]+1, copies[k])
	}
	return nil
}

// Reverse reverses the page order.
func (d *Document) Reverse() error {
	if d.store.Len() < 2 {
		return nil
	}

	d.commit(LabelReverse)
	d.store.reverse()
	return nil
}

// Undo reverts the last edit.
func (d *Document) Undo() error {
	label, _ := d.hist.UndoLabel()
	if err := d.hist.Undo(); err != nil {
		return err
	}
	d.modified = true
	d.log.WithField("label", label).Debug("undo, cursor at %d/%d", d.hist.Current(), d.hist.Len())
	return nil
}

// Redo reapplies the last undone edit.
func (d *Document) Redo() error {
	label, _ := d.hist.RedoLabel()
	if err := d.hist.Redo(); err != nil {
		return err
	}
	d.modified = true
	d.log.WithField("label", label).Debug("redo, cursor at %d/%d", d.hist.Current(), d.hist.Len())
	return nil
}

func (d *Document) commit(label string) {
	d.hist.Commit(label)
	d.modified = true
	d.log.WithField("label", label).Debug("commit, cursor at %d/%d", d.hist.Current(), d.hist.Len())
}

// selection validates indices and returns them sorted without duplicates.
func (d *Document) selection(indices []int) ([]int, error) {
	if len(indices) == 0 {
		return nil, ErrNoPages
	}
	n := d.store.Len()
	for _, i := range indices {
		if i < 0 || i >= n {
			return nil, ErrIndexOutOfRange
		}
	}
	sorted := slices.Clone(indices)
	slices.Sort(sorted)
	return slices.Compact(sorted), nil
}
