package history

import (
	"errors"
	"fmt"
)

// ErrOutOfRange indicates a history step outside the recorded snapshots.
var ErrOutOfRange = errors.New("history index out of range")

// Common errors for history operations.
var (
	ErrNothingToUndo = fmt.Errorf("nothing to undo: %w", ErrOutOfRange)
	ErrNothingToRedo = fmt.Errorf("nothing to redo: %w", ErrOutOfRange)
)
