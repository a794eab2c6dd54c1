package action

import (
	"fmt"
	"slices"
)

// Registry holds actions by ID and key binding.
type Registry struct {
	actions map[string]*Action
	order   []string
	keys    map[string]string // key -> action ID
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{
		actions: make(map[string]*Action),
		keys:    make(map[string]string),
	}
}

// Register adds actions. IDs must be unique.
func (r *Registry) Register(actions ...*Action) error {
	for _, a := range actions {
		if _, exists := r.actions[a.ID]; exists {
			return fmt.Errorf("%w: %s", ErrDuplicate, a.ID)
		}
		r.actions[a.ID] = a
		r.order = append(r.order, a.ID)
	}
	return nil
}

// Get returns the action registered under id.
func (r *Registry) Get(id string) (*Action, bool) {
	a, ok := r.actions[id]
	return a, ok
}

// All returns every action in registration order.
func (r *Registry) All() []*Action {
	out := make([]*Action, 0, len(r.order))
	for _, id := range r.order {
		out = append(out, r.actions[id])
	}
	return out
}

// Bind maps key to the action id, replacing any previous binding of key.
func (r *Registry) Bind(key, id string) error {
	if _, ok := r.actions[id]; !ok {
		return fmt.Errorf("%w: %s", ErrNoAction, id)
	}
	r.keys[key] = id
	return nil
}

// BindAll replaces every key binding with bindings (action ID -> key).
// Bindings naming unknown actions are reported and skipped.
func (r *Registry) BindAll(bindings map[string]string) error {
	r.keys = make(map[string]string, len(bindings))
	var unknown []string
	for id, key := range bindings {
		if err := r.Bind(key, id); err != nil {
			unknown = append(unknown, id)
		}
	}
	if len(unknown) > 0 {
		slices.Sort(unknown)
		return fmt.Errorf("%w: %v", ErrNoAction, unknown)
	}
	return nil
}

// KeyFor returns the key bound to id, if any.
func (r *Registry) KeyFor(id string) (string, bool) {
	for key, bound := range r.keys {
		if bound == id {
			return key, true
		}
	}
	return "", false
}

// ForKey returns the action bound to key.
func (r *Registry) ForKey(key string) (*Action, bool) {
	id, ok := r.keys[key]
	if !ok {
		return nil, false
	}
	return r.Get(id)
}

// Trigger runs the action registered under id.
func (r *Registry) Trigger(id string) error {
	a, ok := r.actions[id]
	if !ok {
		return fmt.Errorf("%w: %s", ErrNoAction, id)
	}
	return a.Run()
}

// TriggerKey runs the action bound to key.
func (r *Registry) TriggerKey(key string) error {
	a, ok := r.ForKey(key)
	if !ok {
		return fmt.Errorf("%w: key %q", ErrNoAction, key)
	}
	return a.Run()
}
