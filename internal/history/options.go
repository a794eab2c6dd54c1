package history

import "time"

// Option configures a Manager.
type Option func(*Manager)

// WithCloner sets the function used to copy rows into and out of snapshots.
// The default is CloneRow.
func WithCloner(clone func(Row) Row) Option {
	return func(m *Manager) {
		if clone != nil {
			m.clone = clone
		}
	}
}

// WithClock sets the time source used to stamp snapshots.
func WithClock(now func() time.Time) Option {
	return func(m *Manager) {
		if now != nil {
			m.now = now
		}
	}
}
