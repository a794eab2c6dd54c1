package history

import "time"

// Manager records snapshots of a Collection and moves it backward and
// forward through them.
type Manager struct {
	coll    Collection
	history []Snapshot

	// current is how many commits deep the live collection is.
	// 0 <= current <= len(history). When current < len(history),
	// history[current] is the state the live collection was restored to.
	current int

	// label is the most recently committed action, not yet attached to
	// a snapshot. Undo and Redo leave it alone.
	label string

	// restored is set while the live collection holds history[current].
	restored bool

	undoSink Sink
	redoSink Sink

	clone func(Row) Row
	now   func() time.Time
}

// New creates a history manager for c.
func New(c Collection, opts ...Option) *Manager {
	m := &Manager{
		coll:     c,
		undoSink: nopSink{},
		redoSink: nopSink{},
		clone:    CloneRow,
		now:      time.Now,
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// Commit records the current state of the collection.
// It must be called before each undoable action; label names that action.
// Snapshots beyond the cursor are discarded.
func (m *Manager) Commit(label string) {
	keep := min(m.current+1, len(m.history))
	clear(m.history[keep:])
	m.history = m.history[:keep]

	m.history = append(m.history, m.snapshot())
	m.current++
	m.label = label
	m.restored = false
	m.refresh()
}

// Undo restores the state before the last committed action.
func (m *Manager) Undo() error {
	if m.current < 1 {
		return ErrNothingToUndo
	}

	// The live state was never captured; keep it so it can be redone.
	if m.current == len(m.history) {
		m.history = append(m.history, m.snapshot())
	}

	m.restore(m.history[m.current-1])
	m.current--
	m.restored = true
	m.refresh()
	return nil
}

// Redo restores the state undone by the last Undo.
func (m *Manager) Redo() error {
	if m.current+1 >= len(m.history) {
		return ErrNothingToRedo
	}

	m.restore(m.history[m.current+1])
	m.current++
	m.restored = true
	m.refresh()
	return nil
}

// SetSinks registers the receivers of undo and redo availability and
// immediately reports the current state to them. A nil sink is ignored.
func (m *Manager) SetSinks(undo, redo Sink) {
	if undo == nil {
		undo = nopSink{}
	}
	if redo == nil {
		redo = nopSink{}
	}
	m.undoSink = undo
	m.redoSink = redo
	m.refresh()
}

// Reset forgets all history. The collection is left as is.
func (m *Manager) Reset() {
	clear(m.history)
	m.history = nil
	m.current = 0
	m.label = ""
	m.restored = false
	m.refresh()
}

// CanUndo returns true if undo is available.
func (m *Manager) CanUndo() bool {
	return m.current >= 1
}

// CanRedo returns true if redo is available.
func (m *Manager) CanRedo() bool {
	return m.current+1 < len(m.history)
}

// Len returns the number of recorded snapshots.
func (m *Manager) Len() int {
	return len(m.history)
}

// Current returns the cursor position.
func (m *Manager) Current() int {
	return m.current
}

// UndoLabel returns the label of the action the next Undo reverts.
// After a commit that is the pending label; after Undo or Redo it is the
// label stored with the snapshot at the cursor.
func (m *Manager) UndoLabel() (string, bool) {
	if !m.CanUndo() {
		return "", false
	}
	if !m.restored {
		return m.label, true
	}
	return m.history[m.current].Label, true
}

// RedoLabel returns the label of the action the next Redo reapplies.
func (m *Manager) RedoLabel() (string, bool) {
	if !m.CanRedo() {
		return "", false
	}
	return m.history[m.current+1].Label, true
}

// Entries returns info about every recorded snapshot, oldest first.
func (m *Manager) Entries() []EntryInfo {
	result := make([]EntryInfo, len(m.history))
	for i, s := range m.history {
		result[i] = EntryInfo{
			Label:   s.Label,
			Rows:    len(s.Rows),
			Taken:   s.Taken,
			Current: i == m.current,
		}
	}
	return result
}

func (m *Manager) snapshot() Snapshot {
	return Snapshot{
		Rows:  capture(m.coll, m.clone),
		Label: m.label,
		Taken: m.now(),
	}
}

// restore replaces the collection contents with copies of s.Rows.
func (m *Manager) restore(s Snapshot) {
	rows := make([]Row, len(s.Rows))
	for i, row := range s.Rows {
		rows[i] = m.clone(row)
	}

	m.coll.Clear()
	for _, row := range rows {
		m.coll.Append(row)
	}
}

func (m *Manager) refresh() {
	m.undoSink.SetEnabled(m.CanUndo())
	m.redoSink.SetEnabled(m.CanRedo())
}
