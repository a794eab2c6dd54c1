package history

// Sink receives the availability of undo or redo.
type Sink interface {
	SetEnabled(enabled bool)
}

// SinkFunc adapts a plain function to the Sink interface.
type SinkFunc func(enabled bool)

// SetEnabled calls f(enabled).
func (f SinkFunc) SetEnabled(enabled bool) {
	f(enabled)
}

type nopSink struct{}

func (nopSink) SetEnabled(bool) {}
