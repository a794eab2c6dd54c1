package pages

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/google/uuid"
	"gopkg.in/yaml.v3"
)

// pageList is the on-disk form of a document.
type pageList struct {
	Pages []pageEntry `yaml:"pages"`
}

type pageEntry struct {
	ID       string  `yaml:"id,omitempty"`
	Source   string  `yaml:"source"`
	Number   int     `yaml:"number"`
	Rotation int     `yaml:"rotation,omitempty"`
	Scale    float64 `yaml:"scale,omitempty"`
}

// Decode reads a YAML page list.
func Decode(r io.Reader) ([]Page, error) {
	var list pageList
	if err := yaml.NewDecoder(r).Decode(&list); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, nil
		}
		return nil, fmt.Errorf("decoding page list: %w", err)
	}

	pages := make([]Page, 0, len(list.Pages))
	for i, e := range list.Pages {
		p, err := e.page()
		if err != nil {
			return nil, fmt.Errorf("page %d: %w", i+1, err)
		}
		pages = append(pages, p)
	}
	return pages, nil
}

// Encode writes pages as a YAML page list.
func Encode(w io.Writer, pages []Page) error {
	list := pageList{Pages: make([]pageEntry, len(pages))}
	for i, p := range pages {
		list.Pages[i] = pageEntry{
			ID:       p.ID.String(),
			Source:   p.Source,
			Number:   p.Number,
			Rotation: p.Rotation,
			Scale:    p.Scale,
		}
	}

	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(&list); err != nil {
		return fmt.Errorf("encoding page list: %w", err)
	}
	return enc.Close()
}

// LoadFile reads a page list from path.
func LoadFile(path string) ([]Page, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening page list %s: %w", path, err)
	}
	defer f.Close()

	return Decode(f)
}

// OpenDocument loads path into a new document.
func OpenDocument(path string, opts ...DocumentOption) (*Document, error) {
	pages, err := LoadFile(path)
	if err != nil {
		return nil, err
	}
	d := NewDocument(pages, opts...)
	d.Path = path
	d.log.Info("opened %s with %d pages", path, len(pages))
	return d, nil
}

// Save writes the document to its Path.
func (d *Document) Save() error {
	if d.Path == "" {
		return errors.New("document has no path")
	}
	return d.SaveAs(d.Path)
}

// SaveAs writes the document to path and makes it the document's Path.
func (d *Document) SaveAs(path string) error {
	var buf bytes.Buffer
	if err := Encode(&buf, d.Pages()); err != nil {
		return err
	}
	if err := os.WriteFile(path, buf.Bytes(), 0o644); err != nil {
		return fmt.Errorf("writing page list %s: %w", path, err)
	}

	d.Path = path
	d.modified = false
	d.log.Info("saved %d pages to %s", d.Len(), path)
	return nil
}

func (e pageEntry) page() (Page, error) {
	if e.Source == "" {
		return Page{}, errors.New("missing source")
	}
	if e.Number < 1 {
		return Page{}, fmt.Errorf("invalid page number %d", e.Number)
	}
	if e.Rotation%90 != 0 {
		return Page{}, ErrInvalidRotation
	}

	p := Page{
		Source:   e.Source,
		Number:   e.Number,
		Rotation: normalizeRotation(e.Rotation),
		Scale:    e.Scale,
	}
	if p.Scale == 0 {
		p.Scale = 1
	}
	if p.Scale < 0 {
		return Page{}, fmt.Errorf("invalid scale %v", e.Scale)
	}

	if e.ID == "" {
		p.ID = uuid.New()
	} else {
		id, err := uuid.Parse(e.ID)
		if err != nil {
			return Page{}, fmt.Errorf("invalid id %q: %w", e.ID, err)
		}
		p.ID = id
	}
	return p, nil
}
