// Package action provides named, enable-able user actions and a registry
// that maps keys to them.
//
// An Action satisfies history.Sink, so undo and redo actions can be handed
// straight to a history manager and are disabled whenever the history says
// the step is unavailable. The Registry refuses to run disabled actions.
package action

import (
	"errors"
	"fmt"
)

// Registry errors.
var (
	// ErrNoAction indicates no action is registered under an ID or key.
	ErrNoAction = errors.New("action: no such action")

	// ErrActionDisabled indicates the action is currently disabled.
	ErrActionDisabled = errors.New("action: action is disabled")

	// ErrDuplicate indicates an action ID is already registered.
	ErrDuplicate = errors.New("action: duplicate action id")
)

// Handler runs an action.
type Handler func() error

// Action is a user command that can be enabled or disabled.
type Action struct {
	// ID is the unique action identifier (e.g., "edit.undo").
	ID string

	// Title is the display name.
	Title string

	// Handler executes the action.
	Handler Handler

	enabled   bool
	listeners []func(*Action)
}

// New creates an enabled action.
func New(id, title string, h Handler) *Action {
	return &Action{
		ID:      id,
		Title:   title,
		Handler: h,
		enabled: true,
	}
}

// Enabled reports whether the action may run.
func (a *Action) Enabled() bool {
	return a.enabled
}

// SetEnabled enables or disables the action. Listeners are told about
// changes only.
func (a *Action) SetEnabled(enabled bool) {
	if a.enabled == enabled {
		return
	}
	a.enabled = enabled
	for _, fn := range a.listeners {
		fn(a)
	}
}

// OnChange registers fn to be called when the enabled state changes.
func (a *Action) OnChange(fn func(*Action)) {
	a.listeners = append(a.listeners, fn)
}

// Run executes the action.
func (a *Action) Run() error {
	if !a.enabled {
		return fmt.Errorf("%w: %s", ErrActionDisabled, a.ID)
	}
	if a.Handler == nil {
		return fmt.Errorf("action %q has no handler", a.ID)
	}
	return a.Handler()
}
